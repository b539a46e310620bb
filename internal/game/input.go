package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type pointerKind uint8

const (
	pointerNone pointerKind = iota
	pointerMouse
	pointerTouch
)

// pointerInput is one frame of pointer activity relevant to the heart
// gesture.
type pointerInput struct {
	mousePressed  bool
	mouseReleased bool
	mouseX        int
	mouseY        int

	touchPressed  bool
	touchID       ebiten.TouchID
	touchX        int
	touchY        int
	touchReleased func(ebiten.TouchID) bool
}

// gestureEvent is what a frame of input means for the scene.
type gestureEvent uint8

const (
	gestureNone gestureEvent = iota
	gestureStart
	gestureEnd
)

// gesture follows the single pointer that started the heart. Other
// pointers are ignored until it is released.
type gesture struct {
	kind  pointerKind
	touch ebiten.TouchID
	x, y  int
}

func (g *gesture) held() bool { return g.kind != pointerNone }

func (g *gesture) step(in pointerInput) gestureEvent {
	switch g.kind {
	case pointerNone:
		if in.mousePressed {
			g.kind = pointerMouse
			g.x, g.y = in.mouseX, in.mouseY
			return gestureStart
		}
		if in.touchPressed {
			g.kind = pointerTouch
			g.touch = in.touchID
			g.x, g.y = in.touchX, in.touchY
			return gestureStart
		}
	case pointerMouse:
		if in.mouseReleased {
			g.kind = pointerNone
			return gestureEnd
		}
	case pointerTouch:
		if in.touchReleased != nil && in.touchReleased(g.touch) {
			g.kind = pointerNone
			return gestureEnd
		}
	}
	return gestureNone
}

// pollPointer reads this frame's mouse and touch edges from ebiten.
func pollPointer(touchBuf []ebiten.TouchID) (pointerInput, []ebiten.TouchID) {
	in := pointerInput{
		mousePressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		mouseReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		touchReleased: inpututil.IsTouchJustReleased,
	}
	in.mouseX, in.mouseY = ebiten.CursorPosition()

	touchBuf = inpututil.AppendJustPressedTouchIDs(touchBuf[:0])
	if len(touchBuf) > 0 {
		in.touchPressed = true
		in.touchID = touchBuf[0]
		in.touchX, in.touchY = ebiten.TouchPosition(in.touchID)
	}
	return in, touchBuf
}
