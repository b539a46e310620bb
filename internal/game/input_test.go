package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestGestureMouse(t *testing.T) {
	var g gesture
	if ev := g.step(pointerInput{}); ev != gestureNone {
		t.Fatalf("idle step = %v, want none", ev)
	}
	if ev := g.step(pointerInput{mousePressed: true, mouseX: 10, mouseY: 20}); ev != gestureStart {
		t.Fatalf("press = %v, want start", ev)
	}
	if !g.held() || g.x != 10 || g.y != 20 {
		t.Errorf("gesture = %+v, want held at (10, 20)", g)
	}
	if ev := g.step(pointerInput{mousePressed: true}); ev != gestureNone {
		t.Errorf("second press while held = %v, want none", ev)
	}
	if ev := g.step(pointerInput{mouseReleased: true}); ev != gestureEnd {
		t.Errorf("release = %v, want end", ev)
	}
	if g.held() {
		t.Error("gesture still held after release")
	}
}

func TestGestureReleaseWithoutPressIgnored(t *testing.T) {
	var g gesture
	if ev := g.step(pointerInput{mouseReleased: true}); ev != gestureNone {
		t.Errorf("stray release = %v, want none", ev)
	}
}

func TestGestureTouchFollowsFirstFinger(t *testing.T) {
	var g gesture
	released := map[ebiten.TouchID]bool{}
	isReleased := func(id ebiten.TouchID) bool { return released[id] }

	ev := g.step(pointerInput{touchPressed: true, touchID: 3, touchX: 5, touchY: 6, touchReleased: isReleased})
	if ev != gestureStart || g.touch != 3 {
		t.Fatalf("touch press = %v on %d, want start on 3", ev, g.touch)
	}

	released[7] = true
	if ev := g.step(pointerInput{touchReleased: isReleased, mouseReleased: true}); ev != gestureNone {
		t.Errorf("other pointer released = %v, want none", ev)
	}

	released[3] = true
	if ev := g.step(pointerInput{touchReleased: isReleased}); ev != gestureEnd {
		t.Errorf("first finger released = %v, want end", ev)
	}
}
