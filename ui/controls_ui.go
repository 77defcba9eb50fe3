package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/vantor3d/orbitcam/components"
)

// ControlsUI holds the ebitenui panel for camera control preferences
type ControlsUI struct {
	UI     *ebitenui.UI
	Camera *components.OrbitCameraData

	// Callbacks
	OnSave func()

	// Widget references for updates
	touchButton    *widget.Button
	trackpadButton *widget.Button
	zoomDirButton  *widget.Button
	pinchButton    *widget.Button
	orbitSensLabel *widget.Label
	panSensLabel   *widget.Label
	zoomSensLabel  *widget.Label

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

var sensitivitySteps = []float32{0.25, 0.5, 1.0, 1.5, 2.0}

// NewControlsUI creates the controls panel bound to a camera's tunables
func NewControlsUI(camera *components.OrbitCameraData, onSave func()) *ControlsUI {
	cui := &ControlsUI{
		Camera: camera,
		OnSave: onSave,
	}

	cui.loadFonts()
	cui.buildUI()

	return cui
}

func (cui *ControlsUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	cui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   16,
	}
	cui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   12,
	}
	cui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   10,
	}
}

func (cui *ControlsUI) buildUI() {
	// Root container anchors the panel to the top-right corner, leaving the
	// rest of the screen to the camera.
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 230})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(4),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("CAMERA CONTROLS", &cui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	panel.AddChild(titleLabel)

	cui.touchButton = cui.cycleButton(touchControlsName(cui.Camera.TouchControls), func() {
		if cui.Camera.TouchControls == components.OneFingerOrbit {
			cui.Camera.TouchControls = components.TwoFingerOrbit
		} else {
			cui.Camera.TouchControls = components.OneFingerOrbit
		}
		cui.UpdateUI()
	})
	panel.AddChild(cui.labeledRow("Touch:", cui.touchButton))

	cui.trackpadButton = cui.cycleButton(trackpadBehaviorName(cui.Camera.TrackpadBehavior), func() {
		if cui.Camera.TrackpadBehavior == components.TrackpadZoom {
			cui.Camera.TrackpadBehavior = components.TrackpadBlenderLike
		} else {
			cui.Camera.TrackpadBehavior = components.TrackpadZoom
		}
		cui.UpdateUI()
	})
	panel.AddChild(cui.labeledRow("Trackpad:", cui.trackpadButton))

	cui.zoomDirButton = cui.cycleButton(zoomDirName(cui.Camera.ReversedZoom), func() {
		cui.Camera.ReversedZoom = !cui.Camera.ReversedZoom
		cui.UpdateUI()
	})
	panel.AddChild(cui.labeledRow("Zoom dir:", cui.zoomDirButton))

	cui.pinchButton = cui.cycleButton(onOffName(cui.Camera.TrackpadPinchToZoom), func() {
		cui.Camera.TrackpadPinchToZoom = !cui.Camera.TrackpadPinchToZoom
		cui.UpdateUI()
	})
	panel.AddChild(cui.labeledRow("Pinch zoom:", cui.pinchButton))

	cui.orbitSensLabel = cui.sensitivityRow(panel, "Orbit speed:", &cui.Camera.OrbitSensitivity)
	cui.panSensLabel = cui.sensitivityRow(panel, "Pan speed:", &cui.Camera.PanSensitivity)
	cui.zoomSensLabel = cui.sensitivityRow(panel, "Zoom speed:", &cui.Camera.ZoomSensitivity)

	saveButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(90, 22),
		),
		widget.ButtonOpts.Image(cui.buttonImage()),
		widget.ButtonOpts.Text("Save", &cui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if cui.OnSave != nil {
				cui.OnSave()
			}
		}),
	)
	panel.AddChild(saveButton)

	rootContainer.AddChild(panel)

	cui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (cui *ControlsUI) labeledRow(label string, button *widget.Button) *widget.Container {
	padding := widget.Insets{Top: 2, Bottom: 2, Left: 4, Right: 4}
	row := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{40, 40, 50, 255})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)
	row.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(label, &cui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{180, 180, 180, 255},
		}),
	))
	row.AddChild(button)
	return row
}

// sensitivityRow builds a row that cycles a sensitivity value through the
// preset steps, returning its value label for updates.
func (cui *ControlsUI) sensitivityRow(panel *widget.Container, label string, value *float32) *widget.Label {
	valueLabel := widget.NewLabel(
		widget.LabelOpts.Text(fmt.Sprintf("%.2fx", *value), &cui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)

	button := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(40, 20),
		),
		widget.ButtonOpts.Image(cui.buttonImage()),
		widget.ButtonOpts.Text("+", &cui.smallFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			*value = nextSensitivity(*value)
			valueLabel.Label = fmt.Sprintf("%.2fx", *value)
		}),
	)

	padding := widget.Insets{Top: 2, Bottom: 2, Left: 4, Right: 4}
	row := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{40, 40, 50, 255})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)
	row.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(label, &cui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{180, 180, 180, 255},
		}),
	))
	row.AddChild(valueLabel)
	row.AddChild(button)
	panel.AddChild(row)
	return valueLabel
}

func (cui *ControlsUI) cycleButton(initial string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(110, 20),
		),
		widget.ButtonOpts.Image(cui.buttonImage()),
		widget.ButtonOpts.Text(initial, &cui.smallFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (cui *ControlsUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

// UpdateUI refreshes widget text from the bound camera state
func (cui *ControlsUI) UpdateUI() {
	if cui.touchButton != nil {
		if textWidget := cui.touchButton.Text(); textWidget != nil {
			textWidget.Label = touchControlsName(cui.Camera.TouchControls)
		}
	}
	if cui.trackpadButton != nil {
		if textWidget := cui.trackpadButton.Text(); textWidget != nil {
			textWidget.Label = trackpadBehaviorName(cui.Camera.TrackpadBehavior)
		}
	}
	if cui.zoomDirButton != nil {
		if textWidget := cui.zoomDirButton.Text(); textWidget != nil {
			textWidget.Label = zoomDirName(cui.Camera.ReversedZoom)
		}
	}
	if cui.pinchButton != nil {
		if textWidget := cui.pinchButton.Text(); textWidget != nil {
			textWidget.Label = onOffName(cui.Camera.TrackpadPinchToZoom)
		}
	}
	if cui.orbitSensLabel != nil {
		cui.orbitSensLabel.Label = fmt.Sprintf("%.2fx", cui.Camera.OrbitSensitivity)
	}
	if cui.panSensLabel != nil {
		cui.panSensLabel.Label = fmt.Sprintf("%.2fx", cui.Camera.PanSensitivity)
	}
	if cui.zoomSensLabel != nil {
		cui.zoomSensLabel.Label = fmt.Sprintf("%.2fx", cui.Camera.ZoomSensitivity)
	}
}

// Update runs the ebitenui layout and input pass
func (cui *ControlsUI) Update() {
	cui.UI.Update()
}

func nextSensitivity(v float32) float32 {
	for i, step := range sensitivitySteps {
		if v < step || (v == step && i < len(sensitivitySteps)-1) {
			if v == step {
				return sensitivitySteps[i+1]
			}
			return step
		}
	}
	return sensitivitySteps[0]
}

func touchControlsName(t components.TouchControls) string {
	if t == components.TwoFingerOrbit {
		return "Two-finger orbit"
	}
	return "One-finger orbit"
}

func trackpadBehaviorName(t components.TrackpadBehavior) string {
	if t == components.TrackpadBlenderLike {
		return "Blender-like"
	}
	return "Scroll zooms"
}

func zoomDirName(reversed bool) string {
	if reversed {
		return "Reversed"
	}
	return "Normal"
}

func onOffName(on bool) string {
	if on {
		return "On"
	}
	return "Off"
}
