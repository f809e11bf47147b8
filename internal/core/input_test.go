package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionJump) || len(f.Actions) != 0 {
		t.Fatal("zero-value frame should be empty")
	}

	f.Set(ActionJump)
	f.Set(ActionPause)
	if !f.Has(ActionJump) || !f.Has(ActionPause) {
		t.Error("Set actions should be reported by Has")
	}
	if f.Has(ActionRestart) {
		t.Error("unset action should not be reported")
	}

	f.Clear()
	if len(f.Actions) != 0 {
		t.Errorf("Clear should remove all actions, still have %v", f.Actions)
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionJump:    "Jump",
		ActionRestart: "Restart",
		Action(99):    "Unknown",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, expected %q", int(a), got, want)
		}
	}
}
