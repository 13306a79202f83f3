package core

import "testing"

func TestInputFrameSetHas(t *testing.T) {
	f := NewInputFrame()

	if f.Has(ActionUp) {
		t.Error("new frame should have no actions")
	}

	f.Set(ActionUp)
	f.Set(ActionLeft)

	if !f.Has(ActionUp) || !f.Has(ActionLeft) {
		t.Error("Set actions should be reported by Has")
	}
	if f.Has(ActionDown) {
		t.Error("Has(ActionDown) = true, expected false")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame

	if f.Has(ActionRight) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionRight)
	if !f.Has(ActionRight) {
		t.Error("Set on zero frame should allocate and record the action")
	}
}

func TestInputFrameIgnoresNone(t *testing.T) {
	f := InputOf(ActionNone)

	if len(f.Actions) != 0 {
		t.Errorf("ActionNone should not be recorded, got %d actions", len(f.Actions))
	}
}

func TestInputFrameClear(t *testing.T) {
	f := InputOf(ActionUp, ActionDown, ActionQuit)
	f.Clear()

	for _, a := range []Action{ActionUp, ActionDown, ActionQuit} {
		if f.Has(a) {
			t.Errorf("Clear should remove %s", a)
		}
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionUp, "Up"},
		{ActionDown, "Down"},
		{ActionLeft, "Left"},
		{ActionRight, "Right"},
		{ActionQuit, "Quit"},
		{Action(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", int(tc.action), got, tc.expected)
		}
	}
}
