package systems

import (
	"image"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/vantor3d/orbitcam/components"
)

var (
	gridColor  = color.RGBA{60, 60, 70, 255}
	axisColor  = color.RGBA{120, 120, 140, 255}
	cubeColor  = color.RGBA{240, 170, 50, 255}
	focusColor = color.RGBA{90, 200, 120, 255}
)

const gridHalfSize = 5

// DrawScene renders a reference scene (ground grid, unit cube, focus marker)
// through every camera's viewport, so the motion of the camera is visible.
// Cameras draw in ascending viewport order.
func DrawScene(ecs *ecs.ECS, screen *ebiten.Image) {
	type view struct {
		entry *donburi.Entry
		order int
	}
	var views []view
	components.OrbitCamera.Each(ecs.World, func(e *donburi.Entry) {
		order := 0
		if e.HasComponent(components.Viewport) {
			order = components.Viewport.Get(e).Order
		}
		views = append(views, view{entry: e, order: order})
	})
	for i := 1; i < len(views); i++ {
		for j := i; j > 0 && views[j].order < views[j-1].order; j-- {
			views[j], views[j-1] = views[j-1], views[j]
		}
	}

	for _, v := range views {
		drawCameraView(v.entry, screen)
	}
}

func drawCameraView(entry *donburi.Entry, screen *ebiten.Image) {
	cam := components.OrbitCamera.Get(entry)
	transform := components.Transform.Get(entry)
	projection := components.Projection.Get(entry)

	target := screen
	vpMin := mgl32.Vec2{0, 0}
	vpMax := mgl32.Vec2{float32(screen.Bounds().Dx()), float32(screen.Bounds().Dy())}
	if entry.HasComponent(components.Viewport) {
		vp := components.Viewport.Get(entry)
		vpMin, vpMax = vp.Min, vp.Max
		rect := image.Rect(int(vpMin.X()), int(vpMin.Y()), int(vpMax.X()), int(vpMax.Y()))
		target = screen.SubImage(rect).(*ebiten.Image)
	}

	viewProj := projection.Matrix().Mul4(transform.ViewMatrix())
	p := painter{screen: target, viewProj: viewProj, min: vpMin, max: vpMax}

	for i := -gridHalfSize; i <= gridHalfSize; i++ {
		c := gridColor
		if i == 0 {
			c = axisColor
		}
		f := float32(i)
		p.line(mgl32.Vec3{f, 0, -gridHalfSize}, mgl32.Vec3{f, 0, gridHalfSize}, c)
		p.line(mgl32.Vec3{-gridHalfSize, 0, f}, mgl32.Vec3{gridHalfSize, 0, f}, c)
	}

	drawWireCube(&p, mgl32.Vec3{0, 0.5, 0}, 0.5, cubeColor)
	drawWireCube(&p, cam.Focus, 0.08, focusColor)
}

func drawWireCube(p *painter, center mgl32.Vec3, half float32, c color.RGBA) {
	var corners [8]mgl32.Vec3
	for i := 0; i < 8; i++ {
		sx, sy, sz := float32(-1), float32(-1), float32(-1)
		if i&1 != 0 {
			sx = 1
		}
		if i&2 != 0 {
			sy = 1
		}
		if i&4 != 0 {
			sz = 1
		}
		corners[i] = center.Add(mgl32.Vec3{sx * half, sy * half, sz * half})
	}
	// Connect corners differing in exactly one bit.
	for i := 0; i < 8; i++ {
		for _, bit := range []int{1, 2, 4} {
			if i&bit == 0 {
				p.line(corners[i], corners[i|bit], c)
			}
		}
	}
}

type painter struct {
	screen   *ebiten.Image
	viewProj mgl32.Mat4
	min, max mgl32.Vec2
}

// line projects a world-space segment and strokes it. Segments fully behind
// the camera are dropped; partially-behind ones are clipped to the near
// plane first so they do not flip across the screen.
func (p *painter) line(a, b mgl32.Vec3, c color.RGBA) {
	ca := p.viewProj.Mul4x1(a.Vec4(1))
	cb := p.viewProj.Mul4x1(b.Vec4(1))

	const nearW = 1e-4
	if ca.W() < nearW && cb.W() < nearW {
		return
	}
	if ca.W() < nearW {
		t := (nearW - ca.W()) / (cb.W() - ca.W())
		ca = ca.Add(cb.Sub(ca).Mul(t))
	} else if cb.W() < nearW {
		t := (nearW - cb.W()) / (ca.W() - cb.W())
		cb = cb.Add(ca.Sub(cb).Mul(t))
	}

	ax, ay := p.toScreen(ca)
	bx, by := p.toScreen(cb)
	vector.StrokeLine(p.screen, ax, ay, bx, by, 1, c, true)
}

func (p *painter) toScreen(clip mgl32.Vec4) (float32, float32) {
	ndcX := clip.X() / clip.W()
	ndcY := clip.Y() / clip.W()
	size := p.max.Sub(p.min)
	x := p.min.X() + (ndcX+1)*0.5*size.X()
	y := p.min.Y() + (1-ndcY)*0.5*size.Y()
	return x, y
}
