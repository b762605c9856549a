package mazefile_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/pathfinder/internal/maze"
	"github.com/calvinalkan/pathfinder/internal/mazefile"
)

func Test_Save_Then_Load_Round_Trips_When_Maze_Valid(t *testing.T) {
	t.Parallel()

	src := maze.NewStore()
	src.Randomize(17)

	path := filepath.Join(t.TempDir(), "nested", "maze.txt")
	require.NoError(t, mazefile.Save(path, src.Text()))

	dst := maze.NewStore()
	loaded, err := mazefile.Load(dst, path)
	require.NoError(t, err)

	assert.True(t, loaded)
	assert.Equal(t, src.Text(), dst.Text())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func Test_Load_Leaves_Store_Empty_When_File_Missing(t *testing.T) {
	t.Parallel()

	s := maze.NewStore()
	loaded, err := mazefile.Load(s, filepath.Join(t.TempDir(), "maze.txt"))

	require.NoError(t, err)
	assert.False(t, loaded)
	assert.False(t, s.Loaded())
}

func Test_Load_Returns_Import_Error_When_File_Corrupt(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "maze.txt")
	require.NoError(t, os.WriteFile(path, []byte("1 1 1"), 0o600))

	_, err := mazefile.Load(maze.NewStore(), path)
	require.ErrorIs(t, err, maze.ErrTooFewValues)
	assert.Contains(t, err.Error(), path)
}

func Test_Save_Removes_Lock_File_When_Done(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "maze.txt")

	require.NoError(t, mazefile.Save(path, maze.NewStore().Text()))

	_, err := os.Stat(filepath.Join(dir, ".locks", "maze.txt.lock"))
	assert.True(t, os.IsNotExist(err), "lock file should be removed, stat err=%v", err)
}

func Test_WithLock_Serializes_Handlers_When_Concurrent(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "maze.txt")

	var (
		mu      sync.Mutex
		active  int
		overlap bool
		wg      sync.WaitGroup
	)

	for range 8 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			err := mazefile.WithLock(path, func() error {
				mu.Lock()
				active++
				if active > 1 {
					overlap = true
				}
				mu.Unlock()

				mu.Lock()
				active--
				mu.Unlock()

				return nil
			})
			assert.NoError(t, err)
		}()
	}

	wg.Wait()

	assert.False(t, overlap, "handlers ran concurrently")
}
