package hwy

import (
	"os"
	"runtime"
	"strconv"
)

// DispatchLevel represents the widest vector instruction set detected on
// the running CPU. The sorting engine is written in portable Go; the level is
// reported for diagnostics and benchmarks.
type DispatchLevel int

const (
	// DispatchScalar indicates no vector extensions were detected.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates SSE2 instructions (x86-64 baseline).
	DispatchSSE2

	// DispatchAVX2 indicates AVX2 instructions (256-bit).
	DispatchAVX2

	// DispatchAVX512 indicates AVX-512 instructions (512-bit).
	DispatchAVX512

	// DispatchNEON indicates ARM NEON instructions (128-bit).
	DispatchNEON

	// DispatchSVE indicates ARM SVE instructions (scalable vector).
	DispatchSVE
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	case DispatchSVE:
		return "sve"
	default:
		return "unknown"
	}
}

// currentLevel is the detected level for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// currentWidth is the vector register width in bytes for the current level.
// Set by init() in dispatch_*.go files.
var currentWidth int

// CurrentLevel returns the detected instruction set. It is a diagnostics
// report only: the sorting engine runs the same portable code at every
// level. amd64 builds report scalar through avx512, arm64 builds scalar,
// neon or sve, and other architectures always scalar.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the vector register width in bytes.
// For example: 16 for SSE2/NEON, 32 for AVX2, 64 for AVX-512.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns a human-readable name for the detected target.
// For example: "avx2", "neon", "scalar".
func CurrentName() string {
	return currentLevel.String()
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = 16 // Report 16-byte vectors even in scalar mode for consistency
}

// NoSimdEnv checks if the HWY_NO_SIMD environment variable is set.
// When set, detection reports scalar regardless of CPU capabilities.
func NoSimdEnv() bool {
	return envFlag("HWY_NO_SIMD")
}

// NoParallelEnv checks if the HWY_NO_PARALLEL environment variable is set.
// When set, whole-slice parallel sorts run on the calling goroutine only.
// This is useful for profiling and debugging.
func NoParallelEnv() bool {
	return envFlag("HWY_NO_PARALLEL")
}

// DefaultParallelism returns the parallelism hint used when the caller does
// not supply one: GOMAXPROCS, or 1 when HWY_NO_PARALLEL is set.
func DefaultParallelism() int {
	if NoParallelEnv() {
		return 1
	}
	return runtime.GOMAXPROCS(0)
}

func envFlag(name string) bool {
	val := os.Getenv(name)
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
