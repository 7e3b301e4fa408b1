// Package render draws a mesh and its medial-axis estimate as an orthographic
// 2D projection, using the gg software rasterizer.
package render

import (
	"fmt"
	"io"
	"math"

	"github.com/akmonengine/medial"
	"github.com/akmonengine/medial/mesh"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/gogpu/gg"
)

// View selects the two world axes mapped on the image.
type View int

const (
	ViewXY View = iota
	ViewXZ
	ViewYZ
)

// ParseView maps "xy", "xz" or "yz" to a View.
func ParseView(s string) (View, error) {
	switch s {
	case "xy":
		return ViewXY, nil
	case "xz":
		return ViewXZ, nil
	case "yz":
		return ViewYZ, nil
	}
	return ViewXY, fmt.Errorf("render: unknown view %q", s)
}

// axes returns the world coordinates drawn horizontally and vertically.
func (v View) axes() (int, int) {
	switch v {
	case ViewXZ:
		return 0, 2
	case ViewYZ:
		return 1, 2
	default:
		return 0, 1
	}
}

// Painter holds the image settings.
type Painter struct {
	Width, Height int
	View          View
	Margin        float64 // in pixels

	scale            float64
	originX, originY float64
	centerU, centerV float64
}

// NewPainter returns a Painter with a 20 pixels margin.
func NewPainter(width, height int, view View) *Painter {
	return &Painter{Width: width, Height: height, View: view, Margin: 20}
}

// Render draws the mesh edges, then the samples, the balls, the probes and the
// medial axis polyline joining consecutive ball centers. result may be nil.
func (p *Painter) Render(m *mesh.Mesh, result *medial.Result) *gg.Context {
	p.fit(m.Bounds())

	dc := gg.NewContext(p.Width, p.Height)
	dc.ClearWithColor(gg.White)

	dc.SetRGBA(0.2, 0.2, 0.2, 0.35)
	dc.SetLineWidth(1)
	for _, tri := range m.Triangles {
		a, b, c := m.Corners(tri)
		p.line(dc, a, b)
		p.line(dc, b, c)
		p.line(dc, c, a)
	}
	_ = dc.Stroke()

	if result == nil {
		return dc
	}

	dc.SetRGB(0.1, 0.4, 0.9)
	for _, s := range result.Samples {
		x, y := p.project(s.Position)
		dc.DrawCircle(x, y, 2)
	}
	_ = dc.Fill()

	dc.SetRGBA(0.9, 0.2, 0.2, 0.6)
	dc.SetLineWidth(1.5)
	for _, ball := range result.Balls {
		x, y := p.project(ball.Center.Position)
		dc.DrawCircle(x, y, ball.Radius*p.scale)
	}
	_ = dc.Stroke()

	dc.SetRGB(0.1, 0.7, 0.2)
	for _, probe := range result.Probes {
		x, y := p.project(probe.Position)
		dc.DrawCircle(x, y, 2)
	}
	_ = dc.Fill()

	if len(result.Balls) > 1 {
		dc.SetRGB(0, 0, 0)
		dc.SetLineWidth(2)
		x, y := p.project(result.Balls[0].Center.Position)
		dc.MoveTo(x, y)
		for _, ball := range result.Balls[1:] {
			x, y = p.project(ball.Center.Position)
			dc.LineTo(x, y)
		}
		_ = dc.Stroke()
	}

	return dc
}

// EncodePNG renders and writes the image to w.
func (p *Painter) EncodePNG(w io.Writer, m *mesh.Mesh, result *medial.Result) error {
	dc := p.Render(m, result)
	defer dc.Close()

	return dc.EncodePNG(w)
}

// SavePNG renders and writes the image to path.
func (p *Painter) SavePNG(path string, m *mesh.Mesh, result *medial.Result) error {
	dc := p.Render(m, result)
	defer dc.Close()

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("render: save %s: %w", path, err)
	}
	return nil
}

// fit scales the projected bounds to the image, keeping the aspect ratio.
func (p *Painter) fit(bounds mesh.AABB) {
	u, v := p.View.axes()
	width := math.Max(bounds.Max[u]-bounds.Min[u], 1e-9)
	height := math.Max(bounds.Max[v]-bounds.Min[v], 1e-9)

	available := func(size int) float64 {
		return math.Max(float64(size)-2*p.Margin, 1)
	}
	p.scale = math.Min(available(p.Width)/width, available(p.Height)/height)
	p.centerU = (bounds.Min[u] + bounds.Max[u]) / 2
	p.centerV = (bounds.Min[v] + bounds.Max[v]) / 2
	p.originX = float64(p.Width) / 2
	p.originY = float64(p.Height) / 2
}

// project maps a world point to pixels, with the vertical axis pointing up.
func (p *Painter) project(point mgl64.Vec3) (float64, float64) {
	u, v := p.View.axes()
	return p.originX + (point[u]-p.centerU)*p.scale,
		p.originY - (point[v]-p.centerV)*p.scale
}

func (p *Painter) line(dc *gg.Context, a, b mgl64.Vec3) {
	x1, y1 := p.project(a)
	x2, y2 := p.project(b)
	dc.MoveTo(x1, y1)
	dc.LineTo(x2, y2)
}
