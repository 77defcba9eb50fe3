package systems

import (
	"github.com/ebitenui/ebitenui"
	ebuiinput "github.com/ebitenui/ebitenui/input"
	"github.com/yohamta/donburi/ecs"

	"github.com/vantor3d/orbitcam/components"
)

// overlayUI is the UI whose focus state suppresses camera input. Nil means
// no overlay.
var overlayUI *ebitenui.UI

// RegisterUI points the focus system at the host's ebitenui overlay so
// interacting with widgets does not also move the camera.
func RegisterUI(ui *ebitenui.UI) {
	overlayUI = ui
}

// UpdateUIFocus records whether the overlay UI wants input this tick and
// shifts the previous tick's answer back one slot. Consumers look at both
// ticks: focus lost mid-drag would otherwise let the tail of a widget drag
// leak into the camera. Must run before UpdateInput.
func UpdateUIFocus(e *ecs.ECS) {
	focusEntry, ok := components.UIFocus.First(e.World)
	if !ok {
		return
	}
	focus := components.UIFocus.Get(focusEntry)

	curr := false
	if overlayUI != nil {
		curr = overlayUI.GetFocusedWidget() != nil
		if focus.IncludeHover {
			curr = curr || ebuiinput.UIHovered
		}
	}

	focus.Prev = focus.Curr
	focus.Curr = curr
}
