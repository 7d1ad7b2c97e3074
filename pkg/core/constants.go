package core

// Compile-time rendering constants, ported from the reference renderer's
// constants.h.
const (
	MaxBounces   = 20      // hard path-length cap
	TotalSamples = 10      // Monte-Carlo samples per pixel by default
	RayEpsilon   = 1e-3    // near-clip / origin-offset epsilon used everywhere
	MaxDist      = 1e20    // effectively-infinite far clip for scene queries
	Gamma        = 1 / 2.2 // display gamma exponent
	DefaultFOV   = 39.0    // degrees, set by camera.NewCamera
)
