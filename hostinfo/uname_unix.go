//go:build linux || darwin

package hostinfo

import (
	"runtime"
	"strings"

	"golang.org/x/sys/unix"
)

// rawIdentity returns "sysname release machine" from uname(2), or the Go
// platform pair when the call fails.
func rawIdentity() string {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return runtime.GOOS + " " + runtime.GOARCH
	}

	parts := []string{
		unix.ByteSliceToString(u.Sysname[:]),
		unix.ByteSliceToString(u.Release[:]),
		unix.ByteSliceToString(u.Machine[:]),
	}
	return strings.Join(parts, " ")
}
