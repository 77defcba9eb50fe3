package components

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
)

// ProjectionKind distinguishes perspective from orthographic cameras.
type ProjectionKind int

const (
	Perspective ProjectionKind = iota
	Orthographic
)

// ProjectionData holds the camera's projection parameters. The orbit system
// reads FOV/aspect (perspective) or the visible area (orthographic) to scale
// panning, and writes Scale for orthographic zoom.
type ProjectionData struct {
	Kind        ProjectionKind
	FOV         float32 // vertical field of view, radians (perspective)
	AspectRatio float32
	Near        float32
	Far         float32
	Scale       float32    // orthographic zoom factor
	Area        mgl32.Vec2 // visible width/height at Scale 1 (orthographic)
}

var Projection = donburi.NewComponentType[ProjectionData]()

// NewPerspective returns a perspective projection.
func NewPerspective(fov, aspect, near, far float32) ProjectionData {
	return ProjectionData{Kind: Perspective, FOV: fov, AspectRatio: aspect, Near: near, Far: far}
}

// NewOrthographic returns an orthographic projection covering area at scale 1.
func NewOrthographic(area mgl32.Vec2, near, far float32) ProjectionData {
	return ProjectionData{Kind: Orthographic, Area: area, Near: near, Far: far, Scale: 1}
}

// EyeDistance returns the distance from focus to place the camera at. True
// distance is meaningless under orthographic projection, so a fixed mid-range
// value keeps the scene between the clip planes while Scale does the zooming.
func (p *ProjectionData) EyeDistance(radius float32) float32 {
	if p.Kind == Orthographic {
		return (p.Near + p.Far) / 2
	}
	return radius
}

// Matrix returns the projection matrix.
func (p *ProjectionData) Matrix() mgl32.Mat4 {
	if p.Kind == Orthographic {
		w := p.Area.X() * p.Scale / 2
		h := p.Area.Y() * p.Scale / 2
		return mgl32.Ortho(-w, w, -h, h, p.Near, p.Far)
	}
	return mgl32.Perspective(p.FOV, p.AspectRatio, p.Near, p.Far)
}
