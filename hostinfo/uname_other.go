//go:build !linux && !darwin

package hostinfo

import "runtime"

// rawIdentity returns the Go platform pair on systems without uname(2).
// Windows reports "Windows <arch>" so it classifies as Windows.
func rawIdentity() string {
	if runtime.GOOS == "windows" {
		return "Windows " + runtime.GOARCH
	}
	return runtime.GOOS + " " + runtime.GOARCH
}
