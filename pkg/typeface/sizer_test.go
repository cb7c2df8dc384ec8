package typeface

import "testing"

func TestSize(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		want          int
	}{
		{"tiny clamps to minimum", 1, 1, 12},
		{"small tier below minimum", 40, 40, 12},
		{"small tier", 50, 50, 12},
		{"small tier upper edge", 99, 500, 24},
		{"medium tier lower edge", 100, 100, 16},
		{"medium tier", 600, 300, 50},
		{"medium tier upper edge", 1000, 1000, 166},
		{"large tier lower edge", 1001, 1001, 125},
		{"large tier", 1200, 1600, 150},
		{"large tier clamps to maximum", 3000, 3000, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Size(tt.width, tt.height); got != tt.want {
				t.Errorf("Size(%d, %d) = %d, want %d", tt.width, tt.height, got, tt.want)
			}
		})
	}
}

func TestSize_UsesShorterSide(t *testing.T) {
	if Size(300, 3000) != Size(300, 300) {
		t.Errorf("expected size to depend only on the shorter side")
	}
	if Size(3000, 300) != Size(300, 3000) {
		t.Errorf("expected size to be symmetric")
	}
}

func TestSize_RangeAndMonotonicWithinTier(t *testing.T) {
	prev := map[string]int{}
	for side := 1; side <= 3000; side++ {
		got := Size(side, side)
		if got < MinSize || got > MaxSize {
			t.Fatalf("Size(%d, %d) = %d outside [%d, %d]", side, side, got, MinSize, MaxSize)
		}
		name := tierFor(side).name
		if p, ok := prev[name]; ok && got < p {
			t.Fatalf("Size decreased within tier %s at side %d: %d < %d", name, side, got, p)
		}
		prev[name] = got
	}
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		side int
		want string
	}{
		{99, "small"},
		{100, "medium"},
		{1000, "medium"},
		{1001, "large"},
	}
	for _, tt := range tests {
		if got := tierFor(tt.side).name; got != tt.want {
			t.Errorf("tierFor(%d) = %s, want %s", tt.side, got, tt.want)
		}
	}
}
