package core

import "testing"

func TestRectClip(t *testing.T) {
	bounds := NewRect(0, 0, 10, 10)
	tests := []struct {
		name     string
		r        Rect
		expected Rect
		empty    bool
	}{
		{
			name:     "fully inside",
			r:        NewRect(2, 2, 3, 3),
			expected: NewRect(2, 2, 3, 3),
		},
		{
			name:     "overhangs right and bottom",
			r:        NewRect(8, 8, 5, 5),
			expected: NewRect(8, 8, 2, 2),
		},
		{
			name:     "overhangs left and top",
			r:        NewRect(-3, -1, 5, 4),
			expected: NewRect(0, 0, 2, 3),
		},
		{
			name:  "completely outside",
			r:     NewRect(15, 0, 5, 5),
			empty: true,
		},
		{
			name:  "adjacent (no overlap)",
			r:     NewRect(10, 0, 5, 5),
			empty: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.r.Clip(bounds)
			if result.Empty() != tc.empty {
				t.Fatalf("Clip().Empty() = %v, expected %v", result.Empty(), tc.empty)
			}
			if !tc.empty && result != tc.expected {
				t.Errorf("Clip() = %v, expected %v", result, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.lo, tc.hi)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, result, tc.expected)
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in       string
		expected Color
		ok       bool
	}{
		{"red", ColorRed, true},
		{"White", ColorWhite, true},
		{"dark_grey", ColorDarkGray, true},
		{"pink", ColorPink, true},
		{"chartreuse", ColorDefault, false},
	}

	for _, tc := range tests {
		c, ok := ParseColor(tc.in)
		if c != tc.expected || ok != tc.ok {
			t.Errorf("ParseColor(%q) = %v, %v, expected %v, %v", tc.in, c, ok, tc.expected, tc.ok)
		}
	}
	if ColorDarkGray.String() != "darkgray" {
		t.Errorf("ColorDarkGray.String() = %q, expected darkgray", ColorDarkGray.String())
	}
}

func TestInputFrameSteer(t *testing.T) {
	f := NewInputFrame()
	if f.Steer() != 0 {
		t.Errorf("Steer() on empty frame = %d, expected 0", f.Steer())
	}
	f.Set(ActionLeft)
	if f.Steer() != -1 {
		t.Errorf("Steer() with left = %d, expected -1", f.Steer())
	}
	f.Set(ActionRight)
	if f.Steer() != 0 {
		t.Errorf("Steer() with both = %d, expected 0", f.Steer())
	}
	f.Clear()
	f.Set(ActionRight)
	if f.Steer() != 1 {
		t.Errorf("Steer() with right = %d, expected 1", f.Steer())
	}
}

func TestInputFrameSet(t *testing.T) {
	var f InputFrame
	if !f.Empty() {
		t.Error("zero InputFrame should be empty")
	}

	f.Set(ActionNone)
	if !f.Empty() {
		t.Error("Set(ActionNone) should not hold anything")
	}

	f.Set(ActionPause)
	f.Set(ActionPause)
	if !f.Has(ActionPause) || f.Has(ActionRestart) {
		t.Errorf("Has() after Set(Pause) = pause %v, restart %v", f.Has(ActionPause), f.Has(ActionRestart))
	}

	f.Clear()
	if !f.Empty() || f.Has(ActionPause) {
		t.Error("Clear() should drop every action")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionLeft, "Left"},
		{ActionPause, "Pause"},
		{Action(200), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.action.String(); got != tt.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", tt.action, got, tt.expected)
		}
	}
}

func TestRuntimeConfigWithDefaults(t *testing.T) {
	cfg := RuntimeConfig{ScreenW: 100, ScreenH: 30}.WithDefaults()
	if cfg.TickRate != DefaultTickRate {
		t.Errorf("TickRate = %d, expected %d", cfg.TickRate, DefaultTickRate)
	}
	if cfg.ScreenW != 100 || cfg.ScreenH != 30 {
		t.Errorf("WithDefaults() changed the screen size to %dx%d", cfg.ScreenW, cfg.ScreenH)
	}

	if got := (RuntimeConfig{TickRate: 30}).WithDefaults().TickRate; got != 30 {
		t.Errorf("TickRate = %d, expected 30 to be kept", got)
	}
}
