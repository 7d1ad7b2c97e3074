// Package renderer drives the render loop: for each pixel it averages
// TotalSamples jittered path-traced samples, gamma-corrects, and writes
// 8-bit RGBA into a PixelBuffer. Tiles of scanlines render in parallel,
// each worker owning a private RNG so no mutable state is shared.
package renderer

import "github.com/wrenfield/gopathtracer/pkg/core"

// PixelBuffer is a row-major RGBA raster, top-left origin, A=255 after
// gamma correction.
type PixelBuffer struct {
	Width, Height int
	Pixels        []byte // 4*Width*Height bytes, R,G,B,A per pixel
}

// NewPixelBuffer allocates a zeroed buffer of the given dimensions.
func NewPixelBuffer(width, height int) *PixelBuffer {
	return &PixelBuffer{Width: width, Height: height, Pixels: make([]byte, 4*width*height)}
}

// Set writes a gamma-corrected color to pixel (x,y), with alpha=255.
func (b *PixelBuffer) Set(x, y int, color core.Vec3) {
	corrected := color.GammaCorrect(core.Gamma)
	offset := 4 * (y*b.Width + x)
	b.Pixels[offset+0] = to8Bit(corrected.X)
	b.Pixels[offset+1] = to8Bit(corrected.Y)
	b.Pixels[offset+2] = to8Bit(corrected.Z)
	b.Pixels[offset+3] = 255
}

func to8Bit(channel float64) byte {
	return byte(channel*255 + 0.5)
}
