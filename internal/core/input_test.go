package core

import "testing"

func TestInputFrameAxis(t *testing.T) {
	tests := []struct {
		name   string
		frame  InputFrame
		dx, dy float64
	}{
		{"idle", NewInputFrame(), 0, 0},
		{"right", FrameOf(ActionRight), 1, 0},
		{"up-left", FrameOf(ActionUp, ActionLeft), -1, -1},
		{"opposing pair cancels", FrameOf(ActionLeft, ActionRight, ActionDown), 0, 1},
		{"all four", FrameOf(ActionLeft, ActionRight, ActionUp, ActionDown), 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dx, dy := tc.frame.Axis()
			if dx != tc.dx || dy != tc.dy {
				t.Errorf("Axis() = (%v, %v), expected (%v, %v)", dx, dy, tc.dx, tc.dy)
			}
		})
	}
}

func TestInputFrameSetClearClone(t *testing.T) {
	var f InputFrame // zero value must be usable
	f.Set(ActionFire)
	if !f.Has(ActionFire) {
		t.Fatal("Has(Fire) should be true after Set")
	}

	clone := f.Clone()
	f.Clear()

	if f.Has(ActionFire) {
		t.Error("Clear should remove all actions")
	}
	if !clone.Has(ActionFire) {
		t.Error("Clone should be independent of the original")
	}
}

func TestActionString(t *testing.T) {
	if ActionFire.String() != "Fire" {
		t.Errorf("ActionFire.String() = %q", ActionFire.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
}
