// Package camera turns pixel coordinates into primary rays. The camera
// auto-frames itself from a scene's bounding box rather than accepting an
// explicit user-specified transform.
package camera

import (
	"math"

	"github.com/wrenfield/gopathtracer/pkg/core"
)

// Camera holds the image dimensions, an orthonormal view basis, and the
// precomputed half-tangent of the vertical field of view.
type Camera struct {
	Width, Height int

	Position core.Vec3
	Right    core.Vec3
	Up       core.Vec3
	Forward  core.Vec3

	FOV        float64
	HalfTanFOV float64
}

// NewCamera builds a Camera framed on boundingBox, using the default
// field of view.
func NewCamera(width, height int, boundingBox core.AABB) *Camera {
	c := &Camera{Width: width, Height: height, FOV: core.DefaultFOV}
	c.FrameScene(boundingBox)
	return c
}

// FrameScene auto-positions the camera so that the scene's bounding box
// fills the frame: it is centered on the box in X/Y and sits in front of
// the box's max-Z face by enough distance to fit the box's larger
// horizontal/vertical extent at the camera's field of view, looking
// toward the box's center.
func (c *Camera) FrameScene(boundingBox core.AABB) {
	c.HalfTanFOV = math.Tan(c.FOV * math.Pi / 360)

	center := boundingBox.Center()
	extent := boundingBox.Size()
	half := math.Max(extent.X, extent.Y) / 2
	distance := half / c.HalfTanFOV

	c.Position = core.NewVec3(center.X, center.Y, boundingBox.Max.Z+distance)
	c.Forward = center.Subtract(c.Position).Normalize()
	c.Right = c.Forward.Cross(core.NewVec3(0, 1, 0)).Normalize()
	c.Up = c.Right.Cross(c.Forward)
}

// PrimaryRay returns the ray through image-plane coordinates (px, py),
// which may carry sub-pixel jitter for anti-aliasing.
func (c *Camera) PrimaryRay(px, py float64) core.Ray {
	aspect := float64(c.Width) / float64(c.Height)

	nx := 2*(px+0.5)/float64(c.Width) - 1
	ny := 1 - 2*(py+0.5)/float64(c.Height)

	x := nx * aspect * c.HalfTanFOV
	y := ny * c.HalfTanFOV

	direction := c.Forward.Add(c.Right.Multiply(x)).Add(c.Up.Multiply(y)).Normalize()
	return core.NewRay(c.Position, direction)
}
