package viz

import (
	"math"
	"sort"

	"github.com/san-kum/nucviz/internal/physics"
)

type Vec3 struct {
	X, Y, Z float64
}

// Vec3 methods.
func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{v.Y*o.Z - v.Z*o.Y, v.Z*o.X - v.X*o.Z, v.X*o.Y - v.Y*o.X}
}

// Default view, matching the usual 3D axes orientation: 30° elevation,
// azimuth -60°.
const (
	DefaultElevation = 30 * math.Pi / 180
	DefaultAzimuth   = -60 * math.Pi / 180
)

// Camera projects world points onto a 2D plane. World coordinates use the
// physics convention (z is the symmetry axis and points up on screen).
type Camera struct {
	Distance   float64
	Elevation  float64
	Azimuth    float64
	Zoom       float64
	Orthogonal bool
}

func NewCamera() *Camera {
	return &Camera{Distance: 10, Elevation: DefaultElevation, Azimuth: DefaultAzimuth, Zoom: 1.0}
}

func (c *Camera) RotateAzimuth(a float64) { c.Azimuth += a }
func (c *Camera) RotateElevation(a float64) {
	c.Elevation = math.Max(-math.Pi/2, math.Min(math.Pi/2, c.Elevation+a))
}
func (c *Camera) ZoomIn()  { c.Zoom = math.Min(10, c.Zoom*1.2) }
func (c *Camera) ZoomOut() { c.Zoom = math.Max(0.1, c.Zoom/1.2) }

// Fit sets the zoom so a body of the given radius fills the view.
func (c *Camera) Fit(radius float64) {
	if radius > 0 {
		c.Zoom = 1.3 / radius
	}
}

// View rotates a world point into view space: x right, y up, z toward the
// viewer.
func (c *Camera) View(p Vec3) Vec3 {
	// azimuth about the world z axis
	ca, sa := math.Cos(c.Azimuth), math.Sin(c.Azimuth)
	x, y := p.X*ca-p.Y*sa, p.X*sa+p.Y*ca
	// world z up, world -y toward the viewer
	v := Vec3{X: x, Y: p.Z, Z: -y}
	// tilt by elevation about the screen x axis
	ce, se := math.Cos(c.Elevation), math.Sin(c.Elevation)
	v.Y, v.Z = v.Y*ce-v.Z*se, v.Y*se+v.Z*ce
	return v
}

// Project converts a world point to screen coordinates on a sw×sh plane.
// Returns x, y, depth (larger is nearer), and visibility.
func (c *Camera) Project(p Vec3, sw, sh int) (float64, float64, float64, bool) {
	v := c.View(p).Scale(c.Zoom)
	scale := 1.0
	if !c.Orthogonal {
		if v.Z >= c.Distance {
			return 0, 0, 0, false
		}
		scale = c.Distance / (c.Distance - v.Z)
	}
	minDim := math.Min(float64(sw), float64(sh))
	pScale := minDim / 3.0
	sx := v.X*scale*pScale + float64(sw)/2
	sy := -v.Y*scale*pScale + float64(sh)/2
	return sx, sy, v.Z, sx >= 0 && sx < float64(sw) && sy >= 0 && sy < float64(sh)
}

// Quad is one patch of a sampled surface; corners run along theta first,
// then phi, so Normal points outward for a star-shaped body.
type Quad struct {
	Corners [4]Vec3
	Tone    float64
}

func (q Quad) Normal() Vec3 {
	return q.Corners[2].Sub(q.Corners[0]).Cross(q.Corners[3].Sub(q.Corners[1]))
}

func (q Quad) Center() Vec3 {
	var s Vec3
	for _, c := range q.Corners {
		s = s.Add(c)
	}
	return s.Scale(0.25)
}

// Facing reports whether q is turned toward the camera.
func (c *Camera) Facing(q Quad) bool {
	n := c.View(q.Normal())
	return n.Z > 0
}

// Mesh is a surface decimated into quads.
type Mesh struct {
	Quads  []Quad
	Radius float64
}

// strideIndices returns 0, s, 2s, ... always ending at n-1.
func strideIndices(n, s int) []int {
	if s < 1 {
		s = 1
	}
	idx := make([]int, 0, n/s+2)
	for i := 0; i < n-1; i += s {
		idx = append(idx, i)
	}
	return append(idx, n-1)
}

// NewMesh samples every stride-th grid line of s, like rstride/cstride in
// surface plotting.
func NewMesh(s *physics.Surface, stride int) *Mesh {
	rows, cols := s.Shape()
	ri := strideIndices(rows, stride)
	ci := strideIndices(cols, stride)

	point := func(i, j int) Vec3 {
		x, y, z := s.Point(i, j)
		return Vec3{x, y, z}
	}

	_, hi := s.Extent()
	m := &Mesh{Quads: make([]Quad, 0, len(ri)*len(ci)), Radius: hi}
	for a := 0; a+1 < len(ri); a++ {
		for b := 0; b+1 < len(ci); b++ {
			i0, i1 := ri[a], ri[a+1]
			j0, j1 := ci[b], ci[b+1]
			tone := (s.Color[i0][j0] + s.Color[i0][j1] + s.Color[i1][j1] + s.Color[i1][j0]) / 4
			m.Quads = append(m.Quads, Quad{
				Corners: [4]Vec3{point(i0, j0), point(i0, j1), point(i1, j1), point(i1, j0)},
				Tone:    tone,
			})
		}
	}
	return m
}

// ProjectedQuad is a quad in screen space.
type ProjectedQuad struct {
	X, Y  [4]float64
	Depth float64
	Tone  float64
}

// Project returns the camera-facing quads of m in back-to-front order.
func (m *Mesh) Project(cam *Camera, sw, sh int) []ProjectedQuad {
	out := make([]ProjectedQuad, 0, len(m.Quads)/2)
	for _, q := range m.Quads {
		if !cam.Facing(q) {
			continue
		}
		var pq ProjectedQuad
		visible := false
		for k, c := range q.Corners {
			x, y, _, ok := cam.Project(c, sw, sh)
			pq.X[k], pq.Y[k] = x, y
			visible = visible || ok
		}
		if !visible {
			continue
		}
		pq.Depth = cam.View(q.Center()).Z
		pq.Tone = q.Tone
		out = append(out, pq)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Depth < out[j].Depth })
	return out
}

// RenderMesh draws the visible quad edges onto the canvas.
func RenderMesh(c *Canvas, m *Mesh, cam *Camera) {
	if c == nil || m == nil || cam == nil {
		return
	}
	sw, sh := c.PixelSize()
	for _, q := range m.Project(cam, sw, sh) {
		for k := 0; k < 4; k++ {
			n := (k + 1) % 4
			c.DrawLine(int(q.X[k]), int(q.Y[k]), int(q.X[n]), int(q.Y[n]), q.Tone, q.Depth)
		}
	}
}

// TerminalStride picks a stride that keeps roughly lines grid lines per
// axis, so a Braille canvas is not saturated.
func TerminalStride(points, lines int) int {
	if lines < 1 {
		lines = 1
	}
	s := points / lines
	if s < 2 {
		s = 2
	}
	return s
}
