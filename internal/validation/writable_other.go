//go:build !unix

package validation

import "os"

// isWritable falls back to the owner write bit where access(2) is missing.
func isWritable(dir string) bool {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return false
	}
	return info.Mode().Perm()&0o200 != 0
}
