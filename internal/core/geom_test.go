package core

import "testing"

func TestBoxEdges(t *testing.T) {
	b := NewBox(100, 200, 40, 60)

	if b.Left() != 80 {
		t.Errorf("Left() = %v, expected 80", b.Left())
	}
	if b.Right() != 120 {
		t.Errorf("Right() = %v, expected 120", b.Right())
	}
	if b.Top() != 170 {
		t.Errorf("Top() = %v, expected 170", b.Top())
	}
	if b.Bottom() != 230 {
		t.Errorf("Bottom() = %v, expected 230", b.Bottom())
	}
}

func TestBoxOverlaps(t *testing.T) {
	player := NewBox(100, 100, 40, 60)

	tests := []struct {
		name  string
		other Box
		want  bool
	}{
		{"identical", NewBox(100, 100, 40, 60), true},
		{"clearly overlapping", NewBox(110, 110, 40, 60), true},
		{"overlap by one unit both axes", NewBox(139, 159, 40, 60), true},
		{"far away", NewBox(300, 300, 40, 60), false},
		{"touching right edge", NewBox(140, 100, 40, 60), false},
		{"touching left edge", NewBox(60, 100, 40, 60), false},
		{"touching bottom edge", NewBox(100, 160, 40, 60), false},
		{"touching top edge", NewBox(100, 40, 40, 60), false},
		{"overlap x only", NewBox(110, 300, 40, 60), false},
		{"overlap y only", NewBox(300, 110, 40, 60), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := player.Overlaps(tt.other); got != tt.want {
				t.Errorf("Overlaps(%+v) = %v, expected %v", tt.other, got, tt.want)
			}
			// Overlap is symmetric
			if got := tt.other.Overlaps(player); got != tt.want {
				t.Errorf("reverse Overlaps(%+v) = %v, expected %v", tt.other, got, tt.want)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(10, 20, 30, 40)

	if r.Right() != 40 {
		t.Errorf("Right() = %d, expected 40", r.Right())
	}
	if r.Bottom() != 60 {
		t.Errorf("Bottom() = %d, expected 60", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 10) != 5 {
		t.Error("Clamp(5, 0, 10) should be 5")
	}
	if Clamp(-5, 0, 10) != 0 {
		t.Error("Clamp(-5, 0, 10) should be 0")
	}
	if Clamp(15, 0, 10) != 10 {
		t.Error("Clamp(15, 0, 10) should be 10")
	}
}

func TestClampF(t *testing.T) {
	if ClampF(0.5, 0, 1) != 0.5 {
		t.Error("ClampF(0.5, 0, 1) should be 0.5")
	}
	if ClampF(-0.5, 0, 1) != 0 {
		t.Error("ClampF(-0.5, 0, 1) should be 0")
	}
	if ClampF(1.5, 0, 1) != 1 {
		t.Error("ClampF(1.5, 0, 1) should be 1")
	}
}
