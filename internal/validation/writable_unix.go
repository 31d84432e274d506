//go:build unix

package validation

import "golang.org/x/sys/unix"

// isWritable asks the kernel whether entries may be created in dir.
// Nothing is written.
func isWritable(dir string) bool {
	return unix.Access(dir, unix.W_OK) == nil
}
