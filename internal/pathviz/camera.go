package pathviz

import "math"

// Vec3 is a plain 3D point, used here as (Re x, Im x, -log10|t|) so a
// path's descent toward t=0 reads as depth.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Camera projects a Vec3 onto the 2D canvas plane with a fixed
// isometric-ish rotation, trimmed from render3d.go's full
// position/target/up camera model down to the rotate+scale a single
// static path view needs.
type Camera struct {
	RotX, RotY float64
	Zoom       float64
}

func NewCamera() *Camera {
	return &Camera{RotX: math.Pi / 6, RotY: math.Pi / 4, Zoom: 1.0}
}

func (c *Camera) rotate(p Vec3) Vec3 {
	cx, sx := math.Cos(c.RotX), math.Sin(c.RotX)
	p.Y, p.Z = p.Y*cx-p.Z*sx, p.Y*sx+p.Z*cx
	cy, sy := math.Cos(c.RotY), math.Sin(c.RotY)
	p.X, p.Z = p.X*cy+p.Z*sy, -p.X*sy+p.Z*cy
	return p
}

// Project maps p into sub-pixel coordinates of a sw x sh canvas.
func (c *Camera) Project(p Vec3, sw, sh int) (int, int) {
	rot := c.rotate(p).Scale(c.Zoom)
	x := int(rot.X) + sw/2
	y := int(-rot.Y) + sh/2
	return x, y
}
