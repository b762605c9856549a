package cli

import (
	"fmt"
	"io"
)

// IO is the output side of a command. Maze text and paths go to out;
// errors and warnings go to errOut.
//
// Warnings are held until the first write to out and repeated by
// [IO.Finish], so a "no maze at ..." notice shows both above and below a
// long solve listing.
type IO struct {
	out      io.Writer
	errOut   io.Writer
	warnings []string
	started  bool
}

func NewIO(out, errOut io.Writer) *IO {
	return &IO{out: out, errOut: errOut}
}

// Warn queues "issue: action". A command that warned exits 1 even though
// its output is complete.
func (o *IO) Warn(issue string, action string) {
	o.warnings = append(o.warnings, fmt.Sprintf("%s: %s", issue, action))
}

func (o *IO) Println(a ...any) {
	o.leadWarnings()
	_, _ = fmt.Fprintln(o.out, a...)
}

func (o *IO) Printf(format string, a ...any) {
	o.leadWarnings()
	_, _ = fmt.Fprintf(o.out, format, a...)
}

// ErrPrintln writes to errOut without touching the warning queue.
func (o *IO) ErrPrintln(a ...any) {
	_, _ = fmt.Fprintln(o.errOut, a...)
}

// Finish repeats the queued warnings and returns the exit code: 1 if any
// warning was queued, 0 otherwise.
func (o *IO) Finish() int {
	o.leadWarnings()
	o.printWarnings()

	if len(o.warnings) > 0 {
		return 1
	}

	return 0
}

// leadWarnings prints queued warnings once, ahead of the first output.
func (o *IO) leadWarnings() {
	if o.started || len(o.warnings) == 0 {
		return
	}

	o.printWarnings()
	o.started = true
}

func (o *IO) printWarnings() {
	for _, w := range o.warnings {
		_, _ = fmt.Fprintln(o.errOut, "warning:", w)
	}
}
