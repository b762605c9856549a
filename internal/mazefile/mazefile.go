// Package mazefile stores the current maze as a flat text file.
//
// Writes hold an exclusive flock on a lock file in a .locks subdirectory
// next to the maze and replace the maze file atomically, so readers see
// either the old or the new maze.
package mazefile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/natefinch/atomic"
	"golang.org/x/sys/unix"

	"github.com/calvinalkan/pathfinder/internal/maze"
)

const (
	locksDirName = ".locks"
	dirPerms     = 0o755
	filePerms    = 0o644
	pollInterval = 10 * time.Millisecond
)

// LockTimeout is how long [WithLock] waits for a held lock.
const LockTimeout = 2 * time.Second

// Errors.
var (
	ErrLockTimeout  = errors.New("lock timeout")
	errLockFileOpen = errors.New("failed to open lock file")
)

// Exists reports whether a maze file is present at path.
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}

	if os.IsNotExist(err) {
		return false, nil
	}

	return false, err
}

// Importer is satisfied by [maze.Store] and anything wrapping one.
type Importer interface {
	ImportFile(path string) error
}

// Load imports the maze file at path into dst. A missing file leaves dst
// untouched and reports loaded=false without error.
func Load(dst Importer, path string) (bool, error) {
	exists, err := Exists(path)
	if err != nil {
		return false, fmt.Errorf("%w: %w", maze.ErrSourceUnavailable, err)
	}

	if !exists {
		return false, nil
	}

	if err := dst.ImportFile(path); err != nil {
		return false, fmt.Errorf("maze file %s: %w", path, err)
	}

	return true, nil
}

// Save writes text to path under the maze lock.
func Save(path, text string) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPerms); err != nil {
		return fmt.Errorf("creating maze dir: %w", err)
	}

	return WithLock(path, func() error {
		if err := atomic.WriteFile(path, strings.NewReader(text)); err != nil {
			return fmt.Errorf("writing maze: %w", err)
		}

		// atomic.WriteFile leaves new files with the temp file's 0600 mode.
		if err := os.Chmod(path, filePerms); err != nil {
			return fmt.Errorf("chmod maze: %w", err)
		}

		return nil
	})
}

// WithLock runs handler while holding an exclusive lock for path.
func WithLock(path string, handler func() error) error {
	lock, err := acquireLock(path, LockTimeout)
	if err != nil {
		return fmt.Errorf("acquiring lock: %w", err)
	}

	defer lock.release()

	return handler()
}

type fileLock struct {
	path string
	file *os.File
}

// release removes the lock file while still holding the lock, then unlocks.
func (l *fileLock) release() {
	if l.file != nil {
		_ = os.Remove(l.path)
		_ = unix.Flock(int(l.file.Fd()), unix.LOCK_UN)
		_ = l.file.Close()
		l.file = nil
	}
}

func lockPath(path string) string {
	return filepath.Join(filepath.Dir(path), locksDirName, filepath.Base(path)+".lock")
}

// acquireLock polls a non-blocking flock until timeout. After locking it
// checks that the lock file was not replaced by a concurrent release.
func acquireLock(path string, timeout time.Duration) (*fileLock, error) {
	lp := lockPath(path)
	deadline := time.Now().Add(timeout)

	for {
		if err := os.MkdirAll(filepath.Dir(lp), dirPerms); err != nil {
			return nil, fmt.Errorf("creating locks dir: %w", err)
		}

		file, err := os.OpenFile(lp, os.O_CREATE|os.O_RDWR, filePerms)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errLockFileOpen, err)
		}

		var openStat unix.Stat_t

		if err := unix.Fstat(int(file.Fd()), &openStat); err != nil {
			_ = file.Close()

			return nil, fmt.Errorf("fstat lock file: %w", err)
		}

		err = unix.Flock(int(file.Fd()), unix.LOCK_EX|unix.LOCK_NB)

		switch {
		case err == nil:
			var pathStat unix.Stat_t

			statErr := unix.Stat(lp, &pathStat)
			if statErr == nil && pathStat.Ino == openStat.Ino {
				return &fileLock{path: lp, file: file}, nil
			}

			_ = unix.Flock(int(file.Fd()), unix.LOCK_UN)
			_ = file.Close()
		case errors.Is(err, unix.EWOULDBLOCK):
			_ = file.Close()

			if time.Now().After(deadline) {
				return nil, fmt.Errorf("%w: %s", ErrLockTimeout, path)
			}

			time.Sleep(pollInterval)
		default:
			_ = file.Close()

			return nil, fmt.Errorf("flock: %w", err)
		}
	}
}
