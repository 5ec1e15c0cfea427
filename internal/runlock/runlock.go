// Package runlock serializes tidy runs against a single target directory.
//
// Two processes moving the same files at once would race each other's
// renames, so live runs take a non-blocking exclusive lock keyed by the
// target path before touching anything. The lock file lives under the user
// cache directory, never inside the target, so it cannot show up in the scan.
package runlock

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// Lock holds an exclusive run lock for one target directory.
type Lock struct {
	path string
	fl   *flock.Flock
}

// Acquire takes the lock for targetDir, failing fast when another tidy run
// already holds it.
func Acquire(targetDir string) (*Lock, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		base = os.TempDir()
	}
	lockDir := filepath.Join(base, "tidy")
	if err := os.MkdirAll(lockDir, 0o755); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}

	digest := sha256.Sum256([]byte(targetDir))
	path := filepath.Join(lockDir, fmt.Sprintf("%x.lock", digest[:8]))

	fl := flock.New(path)
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("another tidy run is already organizing %s", targetDir)
	}
	return &Lock{path: path, fl: fl}, nil
}

// Path returns the lock file location.
func (l *Lock) Path() string {
	return l.path
}

// Release gives the lock back.
func (l *Lock) Release() error {
	return l.fl.Unlock()
}
