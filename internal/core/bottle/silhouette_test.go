package bottle

import "testing"

func TestSilhouette_Contains(t *testing.T) {
	silhouette := Fit(200, 400)

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{name: "body centre", x: 100, y: 300, want: true},
		{name: "neck", x: 100, y: 40, want: true},
		{name: "beside cap", x: 20, y: 10, want: false},
		{name: "left of body", x: 10, y: 300, want: false},
		{name: "right of body", x: 195, y: 300, want: false},
		{name: "below bottle", x: 100, y: 405, want: false},
		{name: "waist notch", x: 24, y: 200, want: false},
		{name: "inside waist", x: 40, y: 200, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := silhouette.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestFit_Scales(t *testing.T) {
	silhouette := Fit(50, 80)
	if len(silhouette.Points) != len(unitOutline) {
		t.Fatalf("got %d points, want %d", len(silhouette.Points), len(unitOutline))
	}
	for i, point := range silhouette.Points {
		if point.X < 0 || point.X > 50 || point.Y < 0 || point.Y > 80 {
			t.Errorf("point %d out of viewport: %+v", i, point)
		}
	}
}
