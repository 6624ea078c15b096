package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()

	if f.Has(ActionHit) {
		t.Error("new frame should be empty")
	}

	f.Set(ActionHit)
	f.Set(ActionPause)
	if !f.Has(ActionHit) || !f.Has(ActionPause) {
		t.Error("Set actions should be reported by Has")
	}
	if f.Has(ActionQuit) {
		t.Error("unset action reported")
	}

	f.Clear()
	if f.Has(ActionHit) || f.Has(ActionPause) {
		t.Error("Clear should drop all actions")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionHit) {
		t.Error("zero frame should be empty")
	}
	f.Set(ActionHit)
	if !f.Has(ActionHit) {
		t.Error("Set on a zero frame should allocate")
	}
}

func TestActionString(t *testing.T) {
	if ActionHit.String() != "Hit" || Action(99).String() != "Unknown" {
		t.Error("unexpected action names")
	}
}
