//go:build windows

package ops

import "os"

// openFileNoFollow opens a file for writing.
// Windows has no O_NOFOLLOW; ValidateExportPath rejects symlinks beforehand.
func openFileNoFollow(path string, flag int, perm os.FileMode) (*os.File, error) {
	return os.OpenFile(path, flag, perm)
}
