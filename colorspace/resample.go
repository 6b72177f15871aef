package colorspace

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/gogpu/ggrad"
)

// Resampler implements ggrad.Resampler with this package's color models.
// The zero value is ready to use and safe for concurrent use.
type Resampler struct{}

var _ ggrad.Resampler = Resampler{}

// Resample returns n colors for the evenly spaced positions k/n.
// See ggrad.Resampler for the segment and space selection rules.
func (Resampler) Resample(stops []ggrad.ColorStop, space ggrad.ColorSpace, invert bool, n int) ([]ggrad.RGBA, error) {
	if err := checkResample(stops, n); err != nil {
		return nil, err
	}
	if space != ggrad.ColorSpaceNone && !space.Valid() {
		return nil, fmt.Errorf("colorspace: interpolate in %v: %w", space, ggrad.ErrUnsupportedColorSpace)
	}

	offsets := make([]float64, len(stops))
	for i, s := range stops {
		offsets[i] = s.Offset
	}

	out := make([]ggrad.RGBA, n)
	seg := segment{index: -1}
	for k := range out {
		i, u := Segment(offsets, float64(k)/float64(n))
		if i != seg.index {
			var err error
			seg, err = newSegment(stops, i, space, invert)
			if err != nil {
				ggrad.Logger().Debug("colorspace: segment conversion failed",
					slog.Int("segment", i),
					slog.String("space", space.String()),
					slog.Any("error", err))
				return nil, err
			}
		}
		out[k] = seg.at(u)
	}
	return out, nil
}

// checkResample verifies the caller's preconditions.
func checkResample(stops []ggrad.ColorStop, n int) error {
	if len(stops) < 2 {
		return fmt.Errorf("colorspace: %d stops: %w", len(stops), ggrad.ErrInvalidSpecification)
	}
	if n < len(stops) {
		return fmt.Errorf("colorspace: resample %d stops to %d colors: %w", len(stops), n, ggrad.ErrInvalidSpecification)
	}
	for i := 1; i < len(stops); i++ {
		if !(stops[i].Offset >= stops[i-1].Offset) {
			return fmt.Errorf("colorspace: stop %d offset %v not sorted: %w", i, stops[i].Offset, ggrad.ErrInvalidSpecification)
		}
	}
	return nil
}

// segment caches one segment's endpoints converted into its
// interpolation space.
type segment struct {
	index      int
	space      ggrad.ColorSpace
	start, end channels
}

func newSegment(stops []ggrad.ColorStop, i int, space ggrad.ColorSpace, invert bool) (segment, error) {
	a, b := stops[i].Color, stops[i+1].Color
	if space == ggrad.ColorSpaceNone {
		space = AnchorSpace(a, b, invert)
	}
	ca, err := Convert(a, space)
	if err != nil {
		return segment{}, fmt.Errorf("colorspace: segment %d: %w", i, err)
	}
	cb, err := Convert(b, space)
	if err != nil {
		return segment{}, fmt.Errorf("colorspace: segment %d: %w", i, err)
	}
	return segment{index: i, space: space, start: channelsOf(ca), end: channelsOf(cb)}, nil
}

func (s segment) at(u float64) ggrad.RGBA {
	return fromChannels(s.space, s.start.lerp(s.end, u)).Native()
}

// AnchorSpace returns the space a segment from start to end interpolates
// in when no fixed space is set: start's space, or end's when invert is
// true.
func AnchorSpace(start, end ggrad.Color, invert bool) ggrad.ColorSpace {
	if invert {
		return end.Space()
	}
	return start.Space()
}

// Segment locates position t among sorted offsets. It returns the index i
// of the segment with offsets[i] <= t < offsets[i+1] and the local
// parameter u within it. The last segment is closed on the right; t
// outside the offsets clamps to the first or last segment. A zero-width
// segment yields u = 0. offsets must hold at least two values.
func Segment(offsets []float64, t float64) (int, float64) {
	last := len(offsets) - 2

	// First offset strictly greater than t.
	i := sort.Search(len(offsets), func(j int) bool {
		return offsets[j] > t
	}) - 1
	if i < 0 {
		i = 0
	}
	if i > last {
		i = last
	}

	width := offsets[i+1] - offsets[i]
	if width == 0 {
		return i, 0
	}
	return i, clamp01((t - offsets[i]) / width)
}
