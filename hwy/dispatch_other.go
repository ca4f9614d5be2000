//go:build !amd64 && !arm64

package hwy

func init() {
	// Other architectures report scalar mode.
	setScalarMode()
}
