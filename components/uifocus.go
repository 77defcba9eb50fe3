package components

import "github.com/yohamta/donburi"

// UIFocusData records whether an overlay UI wants input focus on the current
// and previous frames. The previous frame matters because a click that lands
// on a UI widget is reported one frame late; suppressing on either flag keeps
// the camera and the UI from consuming the same press. Any host can write
// this directly; the ui package feeds it from ebitenui.
type UIFocusData struct {
	Prev bool
	Curr bool
	// IncludeHover also suppresses camera input while the pointer merely
	// hovers a UI area, not just while a widget is focused.
	IncludeHover bool
}

var UIFocus = donburi.NewComponentType[UIFocusData]()

// WantsFocus reports whether camera input should be suppressed this tick.
func (u *UIFocusData) WantsFocus() bool {
	return u.Curr || u.Prev
}
