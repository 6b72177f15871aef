package ggrad

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGenerateStops(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want []float64
	}{
		{"negative", -1, nil},
		{"zero", 0, nil},
		{"one", 1, []float64{0}},
		{"two", 2, []float64{0, 0.5}},
		{"four", 4, []float64{0, 0.25, 0.5, 0.75}},
		{"eight", 8, []float64{0, 0.125, 0.25, 0.375, 0.5, 0.625, 0.75, 0.875}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateStops(tt.n)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("GenerateStops(%d) mismatch (-want +got):\n%s", tt.n, diff)
			}
		})
	}
}

func TestGenerateStopsNeverReachesOne(t *testing.T) {
	for n := 1; n <= 500; n++ {
		stops := GenerateStops(n)
		if len(stops) != n {
			t.Fatalf("GenerateStops(%d) len = %d", n, len(stops))
		}
		if stops[0] != 0 {
			t.Errorf("GenerateStops(%d)[0] = %v, want 0", n, stops[0])
		}
		for i := 1; i < n; i++ {
			if stops[i] <= stops[i-1] {
				t.Fatalf("GenerateStops(%d) not increasing at %d", n, i)
			}
		}
		if last := stops[n-1]; last >= 1 {
			t.Errorf("GenerateStops(%d) last = %v, want < 1", n, last)
		}
	}
}
