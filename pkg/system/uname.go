package system

import "golang.org/x/sys/unix"

// KernelRelease returns the running kernel release, or "" if unknown.
func KernelRelease() string {
	var uname unix.Utsname
	if err := unix.Uname(&uname); err != nil {
		return ""
	}
	return unix.ByteSliceToString(uname.Release[:])
}
