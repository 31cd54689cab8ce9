package core

import (
	"testing"
	"time"
)

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestRectCentered(t *testing.T) {
	outer := NewRect(0, 0, 80, 24)
	got := outer.Centered(26, 22)
	expected := NewRect(27, 1, 26, 22)

	if got != expected {
		t.Errorf("Centered() = %+v, expected %+v", got, expected)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestTickInterval(t *testing.T) {
	tests := []struct {
		rate     int
		expected time.Duration
	}{
		{60, time.Second / 60},
		{30, time.Second / 30},
		{0, time.Second / 60},
	}

	for _, tc := range tests {
		cfg := RuntimeConfig{TickRate: tc.rate}
		if got := cfg.TickInterval(); got != tc.expected {
			t.Errorf("TickInterval() at %d = %v, expected %v", tc.rate, got, tc.expected)
		}
	}
}

func TestInputFrameKeepsOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionMoveLeft)
	f.Set(ActionNone)
	f.Set(ActionRotateCW)
	f.Set(ActionMoveLeft)

	got := f.Actions()
	expected := []Action{ActionMoveLeft, ActionRotateCW, ActionMoveLeft}
	if len(got) != len(expected) {
		t.Fatalf("Actions() = %v, expected %v", got, expected)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Actions()[%d] = %v, expected %v", i, got[i], expected[i])
		}
	}

	if !f.Has(ActionRotateCW) || f.Has(ActionPause) {
		t.Error("Has() does not match recorded actions")
	}

	clone := f.Clone()
	f.Clear()
	if len(f.Actions()) != 0 {
		t.Error("Clear() should drop all actions")
	}
	if len(clone.Actions()) != 3 {
		t.Error("Clone() should not share storage")
	}
}

func TestColorByName(t *testing.T) {
	if ColorByName("violet") != ColorViolet {
		t.Error("violet should resolve")
	}
	if ColorByName("black") != ColorDefault {
		t.Error("black should render as the default color")
	}
	if ColorByName("chartreuse") != ColorDefault {
		t.Error("unknown names should fall back to the default color")
	}
}
