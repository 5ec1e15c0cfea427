package organizer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const maxNameAttempts = 10000

// nextAvailablePath returns the first destination path in dir that neither
// exists on disk nor has been claimed earlier in this run. Colliding names
// get a numeric disambiguator before the extension: report.txt becomes
// report (1).txt, then report (2).txt, and so on.
//
// The claimed set makes dry-run plans match a subsequent live run when two
// sources share a base name, and covers live moves before the destination
// becomes visible to os.Stat.
func nextAvailablePath(dir, name string, claimed map[string]struct{}) (string, error) {
	stem, ext := splitName(name)
	for attempt := 0; attempt <= maxNameAttempts; attempt++ {
		candidate := filepath.Join(dir, name)
		if attempt > 0 {
			candidate = filepath.Join(dir, fmt.Sprintf("%s (%d)%s", stem, attempt, ext))
		}
		if _, taken := claimed[candidate]; taken {
			continue
		}
		if _, err := os.Stat(candidate); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return candidate, nil
			}
			return "", err
		}
	}
	return "", fmt.Errorf("exhausted destination names for %s in %s", name, dir)
}

// splitName separates a file name into stem and dot-prefixed extension.
// Dotfiles such as .bashrc count as extension-less.
func splitName(name string) (stem, ext string) {
	ext = filepath.Ext(name)
	if ext == name {
		return name, ""
	}
	return strings.TrimSuffix(name, ext), ext
}

// entryExtension normalizes an entry name to the lowercase extension used for
// classification, without the leading dot.
func entryExtension(name string) string {
	_, ext := splitName(name)
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
