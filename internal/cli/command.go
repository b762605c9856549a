package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	flag "github.com/spf13/pflag"
)

// Command is one pathfinder sub-command such as show, solve or import.
type Command struct {
	// Flags holds the sub-command's own flags. Global flags like --maze are
	// parsed by [Run] before the sub-command is picked.
	Flags *flag.FlagSet

	// Usage starts with the sub-command name, e.g. "verify <file|->".
	Usage string

	// Short is listed next to Usage in the top-level help.
	Short string

	// Long replaces Short in "pathfinder <cmd> --help" when set.
	Long string

	Exec func(ctx context.Context, o *IO, args []string) error
}

// Name is the first word of Usage.
func (c *Command) Name() string {
	name, _, _ := strings.Cut(c.Usage, " ")
	return name
}

// HelpLine formats the command for the "Commands:" list.
func (c *Command) HelpLine() string {
	return fmt.Sprintf("  %-22s %s", c.Usage, c.Short)
}

// PrintHelp writes usage, description and flag defaults to stdout.
func (c *Command) PrintHelp(o *IO) {
	o.Println("Usage: pathfinder", c.Usage)
	o.Println()

	if c.Long != "" {
		o.Println(c.Long)
	} else {
		o.Println(c.Short)
	}

	if c.Flags == nil || !c.Flags.HasFlags() {
		return
	}

	var defaults strings.Builder

	c.Flags.SetOutput(&defaults)
	c.Flags.PrintDefaults()

	o.Println()
	o.Println("Flags:")
	o.Printf("%s", defaults.String())
}

// Run parses args into c.Flags and calls Exec with what is left.
//
// The exit code is 0 for --help, 1 for a flag or Exec error, and otherwise
// whatever [IO.Finish] returns, so a queued warning such as a missing maze
// file still fails the command.
func (c *Command) Run(ctx context.Context, o *IO, args []string) int {
	// pflag prints its own errors; they are reported below instead.
	c.Flags.SetOutput(&strings.Builder{})

	if err := c.Flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			c.PrintHelp(o)
			return 0
		}

		o.ErrPrintln("error:", err)
		o.ErrPrintln()
		c.PrintHelp(o)

		return 1
	}

	if err := c.Exec(ctx, o, c.Flags.Args()); err != nil {
		o.ErrPrintln("error:", err)
		return 1
	}

	return o.Finish()
}
