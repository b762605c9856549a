package cli_test

import (
	"strings"
	"testing"

	"github.com/calvinalkan/pathfinder/internal/cli"
)

func Test_Random_Stores_Maze_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stdout := c.MustRun("random", "--seed", "42")

	if got, want := c.ReadMaze(), stdout; got != want {
		t.Errorf("maze file=%q, want=%q", got, want)
	}

	rows := strings.Split(stdout, "\n")
	if got, want := len(rows), 29; got != want {
		t.Fatalf("rows=%d, want=%d", got, want)
	}

	if !strings.HasPrefix(rows[0], "1") || !strings.HasSuffix(rows[28], "1") {
		t.Errorf("entrance or exit not open:\n%s", stdout)
	}
}

func Test_Random_Is_Reproducible_When_Seed_Given(t *testing.T) {
	t.Parallel()

	a, b := cli.NewCLI(t), cli.NewCLI(t)

	if got, want := a.MustRun("random", "--seed", "7"), b.MustRun("random", "--seed", "7"); got != want {
		t.Errorf("seeded mazes differ:\n%s\n---\n%s", got, want)
	}
}

func Test_Random_Uses_Config_Seed_When_Flag_Missing(t *testing.T) {
	t.Parallel()

	a, b := cli.NewCLI(t), cli.NewCLI(t)
	a.WriteFile(".pathfinder.json", `{"seed": 7}`)

	if got, want := a.MustRun("random"), b.MustRun("random", "--seed", "7"); got != want {
		t.Errorf("config seed ignored:\n%s\n---\n%s", got, want)
	}
}

func Test_Random_Writes_Override_Path_When_Maze_Flag_Given(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	generated := c.MustRun("--maze", "sub/other.txt", "random", "--seed", "5")

	if got, want := c.MustRun("--maze", "sub/other.txt", "show"), generated; got != want {
		t.Errorf("show=%q, want=%q", got, want)
	}
}
