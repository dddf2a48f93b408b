//go:build !unix

package terminal

// sizeFromFd is unavailable without TIOCGWINSZ.
func sizeFromFd(uintptr) (Size, bool) {
	return Size{}, false
}
