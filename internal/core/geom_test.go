package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestRectTranslate(t *testing.T) {
	r := NewRect(100, 200, 32, 32)
	moved := r.Translate(4, -4)

	if moved.X != 104 || moved.Y != 196 {
		t.Errorf("Translate(4, -4) = (%d, %d), expected (104, 196)", moved.X, moved.Y)
	}
	if moved.W != 32 || moved.H != 32 {
		t.Errorf("Translate should keep size, got %dx%d", moved.W, moved.H)
	}
	if r.X != 100 || r.Y != 200 {
		t.Error("Translate should not modify the receiver")
	}
}

func TestViewportCenteredRect(t *testing.T) {
	vp := Viewport{W: 800, H: 600}
	r := vp.CenteredRect(32, 32)

	if r.X != 384 || r.Y != 284 {
		t.Errorf("CenteredRect(32, 32) = (%d, %d), expected (384, 284)", r.X, r.Y)
	}
}

func TestScale(t *testing.T) {
	tests := []struct {
		name                   string
		val, from, n, expected int
	}{
		{"origin", 0, 800, 80, 0},
		{"exact", 400, 800, 80, 40},
		{"truncates", 799, 800, 80, 79},
		{"negative floors", -1, 800, 80, -1},
		{"negative exact", -40, 800, 80, -4},
		{"zero source", 10, 0, 80, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := Scale(tc.val, tc.from, tc.n)
			if result != tc.expected {
				t.Errorf("Scale(%d, %d, %d) = %d, expected %d", tc.val, tc.from, tc.n, result, tc.expected)
			}
		})
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
