package platform

import (
	"fmt"
	"os"
	"runtime"
)

// Chmod restricts path to mode. Windows has no Unix permission bits, so
// there it only checks that path exists.
func Chmod(path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("stat %s: %w", path, err)
		}
		return nil
	}
	if err := os.Chmod(path, mode); err != nil {
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	return nil
}
