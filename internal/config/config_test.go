package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/pathfinder/internal/config"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func Test_Load_Returns_Defaults_When_No_Files(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	cfg, err := config.Load(config.LoadInput{WorkDirOverride: dir, Env: map[string]string{}})
	require.NoError(t, err)

	want := config.Config{
		MazeFile:     "maze.txt",
		EffectiveCwd: dir,
		MazeFileAbs:  filepath.Join(dir, "maze.txt"),
	}

	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func Test_Load_Applies_Precedence_When_All_Layers_Present(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	xdg := t.TempDir()

	writeFile(t, filepath.Join(xdg, "pathfinder", "config.json"), `{"maze_file": "global.txt", "seed": 5}`)
	writeFile(t, filepath.Join(dir, config.FileName), `{
		// project maze
		"maze_file": "project.txt",
	}`)

	cfg, err := config.Load(config.LoadInput{
		WorkDirOverride: dir,
		Env:             map[string]string{"XDG_CONFIG_HOME": xdg},
	})
	require.NoError(t, err)

	assert.Equal(t, "project.txt", cfg.MazeFile)
	assert.Equal(t, int64(5), cfg.Seed)
	assert.Equal(t, filepath.Join(xdg, "pathfinder", "config.json"), cfg.Sources.Global)
	assert.Equal(t, filepath.Join(dir, config.FileName), cfg.Sources.Project)

	cfg, err = config.Load(config.LoadInput{
		WorkDirOverride:  dir,
		MazeFileOverride: "/abs/cli.txt",
		Env:              map[string]string{"XDG_CONFIG_HOME": xdg},
	})
	require.NoError(t, err)

	assert.Equal(t, "/abs/cli.txt", cfg.MazeFileAbs)
}

func Test_Load_Uses_Home_Config_When_XDG_Unset(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	home := t.TempDir()

	writeFile(t, filepath.Join(home, ".config", "pathfinder", "config.json"), `{"seed": 9}`)

	cfg, err := config.Load(config.LoadInput{WorkDirOverride: dir, Env: map[string]string{"HOME": home}})
	require.NoError(t, err)

	assert.Equal(t, int64(9), cfg.Seed)
	assert.Equal(t, "maze.txt", cfg.MazeFile)
}

func Test_Load_Reads_Explicit_Config_When_Flag_Given(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	writeFile(t, filepath.Join(dir, config.FileName), `{"maze_file": "project.txt"}`)
	writeFile(t, filepath.Join(dir, "alt.json"), `{"maze_file": "alt.txt"}`)

	cfg, err := config.Load(config.LoadInput{WorkDirOverride: dir, ConfigPath: "alt.json"})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "alt.txt"), cfg.MazeFileAbs)
	assert.Equal(t, filepath.Join(dir, "alt.json"), cfg.Sources.Project)
}

func Test_Load_Returns_Error_When_Config_Bad(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		content string
		input   func(dir string) config.LoadInput
		want    error
	}{
		{
			name:    "MissingExplicit",
			content: "",
			input: func(dir string) config.LoadInput {
				return config.LoadInput{WorkDirOverride: dir, ConfigPath: "nope.json"}
			},
			want: config.ErrFileNotFound,
		},
		{
			name:    "Syntax",
			content: `{"maze_file": `,
			input: func(dir string) config.LoadInput {
				return config.LoadInput{WorkDirOverride: dir}
			},
			want: config.ErrInvalid,
		},
		{
			name:    "EmptyMazeFile",
			content: `{"maze_file": ""}`,
			input: func(dir string) config.LoadInput {
				return config.LoadInput{WorkDirOverride: dir}
			},
			want: config.ErrMazeFileEmpty,
		},
		{
			name:    "WrongType",
			content: `{"seed": "abc"}`,
			input: func(dir string) config.LoadInput {
				return config.LoadInput{WorkDirOverride: dir}
			},
			want: config.ErrInvalid,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			if tc.content != "" {
				writeFile(t, filepath.Join(dir, config.FileName), tc.content)
			}

			_, err := config.Load(tc.input(dir))
			require.ErrorIs(t, err, tc.want)
		})
	}
}
