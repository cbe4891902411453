// Package filelock provides an advisory lock guarding a generated document so
// that two dir2md processes never write into the same output file at once.
package filelock

import (
	"errors"
	"fmt"
	"os"

	"github.com/gofrs/flock"
)

// ErrLocked is returned by Acquire when another process holds the lock
var ErrLocked = errors.New("lock is held by another process")

// LockSuffix is appended to a target path to derive its lock file
const LockSuffix = ".lock"

// FileLock wraps a flock file lock for coordinating access to a target file.
type FileLock struct {
	flock *flock.Flock
	path  string
}

// PathFor returns the lock file path used for target
func PathFor(target string) string {
	return target + LockSuffix
}

// NewFileLock creates a new file lock for the given lock file path.
func NewFileLock(path string) *FileLock {
	return &FileLock{
		flock: flock.New(path),
		path:  path,
	}
}

// Acquire takes the lock guarding target without blocking.
// Returns ErrLocked (wrapped) if it is already held elsewhere.
func Acquire(target string) (*FileLock, error) {
	fl := NewFileLock(PathFor(target))
	acquired, err := fl.TryLock()
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, fmt.Errorf("%s: %w", fl.path, ErrLocked)
	}
	return fl, nil
}

// Path returns the lock file path
func (fl *FileLock) Path() string {
	return fl.path
}

// TryLock attempts to acquire an exclusive lock on the file without blocking.
// Returns true if the lock was acquired, false if the lock is held by another process.
func (fl *FileLock) TryLock() (bool, error) {
	acquired, err := fl.flock.TryLock()
	if err != nil {
		return false, fmt.Errorf("failed to try lock on %s: %w", fl.path, err)
	}
	return acquired, nil
}

// Unlock releases the lock.
func (fl *FileLock) Unlock() error {
	if err := fl.flock.Unlock(); err != nil {
		return fmt.Errorf("failed to release lock on %s: %w", fl.path, err)
	}
	return nil
}

// Release unlocks and removes the lock file.
func (fl *FileLock) Release() error {
	if err := fl.Unlock(); err != nil {
		return err
	}
	if err := os.Remove(fl.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove lock file %s: %w", fl.path, err)
	}
	return nil
}
