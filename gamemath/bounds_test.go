package gamemath

import "testing"

func TestClampCamera(t *testing.T) {
	tests := []struct {
		name                string
		target, view, world float64
		want                float64
	}{
		{"inside", 1000, 1024, 2048, 1000},
		{"low edge", 100, 1024, 2048, 512},
		{"high edge", 2000, 1024, 2048, 1536},
		{"exact low bound", 512, 1024, 2048, 512},
		{"world smaller than view pins low", 300, 1024, 896, 512},
		{"world equals view", 700, 1024, 1024, 512},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampCamera(tt.target, tt.view, tt.world); got != tt.want {
				t.Errorf("ClampCamera(%v, %v, %v) = %v, want %v", tt.target, tt.view, tt.world, got, tt.want)
			}
		})
	}
}

func TestClampBox(t *testing.T) {
	tests := []struct {
		name         string
		x, y         float64
		wantX, wantY float64
	}{
		{"inside", 100, 200, 100, 200},
		{"left and top", -5, -12, 0, 0},
		{"right and bottom", 990, 770, 960, 760},
		{"exactly at max", 960, 760, 960, 760},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotX, gotY := ClampBox(tt.x, tt.y, 40, 40, 1000, 800)
			if gotX != tt.wantX || gotY != tt.wantY {
				t.Errorf("ClampBox(%v, %v) = (%v, %v), want (%v, %v)", tt.x, tt.y, gotX, gotY, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestShrinkRect(t *testing.T) {
	x, y, w, h := ShrinkRect(64, 128, 64, 64, 0.5)
	if x != 80 || y != 144 || w != 32 || h != 32 {
		t.Fatalf("ShrinkRect = (%v, %v, %v, %v), want (80, 144, 32, 32)", x, y, w, h)
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name   string
		bx, by float64
		want   bool
	}{
		{"same spot", 0, 0, true},
		{"partial", 30, 30, true},
		{"touching right edge", 40, 0, false},
		{"touching bottom edge", 0, 40, false},
		{"far away", 200, 200, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(0, 0, 40, 40, tt.bx, tt.by, 40, 40); got != tt.want {
				t.Errorf("Overlaps with (%v, %v) = %v, want %v", tt.bx, tt.by, got, tt.want)
			}
		})
	}
}
