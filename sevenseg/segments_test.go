package sevenseg

import (
	"testing"

	"gotest.tools/assert"
)

func TestMaskTable(t *testing.T) {
	want := []byte{0x3F, 0x06, 0x5B, 0x4F, 0x66, 0x6D, 0x7D, 0x07, 0x7F, 0x6F}
	for d, m := range want {
		got, err := Mask(d)
		assert.NilError(t, err)
		assert.Equal(t, got, m, "digit %d", d)
	}
}

func TestMaskOutOfRange(t *testing.T) {
	for _, d := range []int{-1, 10, 42} {
		_, err := Mask(d)
		assert.Equal(t, err, ErrBadDigit)
	}
}

func TestSegmentNames(t *testing.T) {
	assert.Equal(t, SegA.String(), "A")
	assert.Equal(t, SegG.String(), "G")
	assert.Equal(t, Segment(9).String(), "?")
}

func TestThickSegmentStrokes(t *testing.T) {
	g := Geometry{X: 10, Y: 20, Width: 16, Height: 32, LedWidth: 3}
	const c = Color(7)

	tests := []struct {
		seg  Segment
		want []call
	}{
		{SegA, []call{h(13, 20, 11, c), h(14, 21, 9, c), h(15, 22, 7, c)}},
		{SegD, []call{h(13, 52, 11, c), h(14, 51, 9, c), h(15, 50, 7, c)}},
		{SegF, []call{v(10, 20, 16, c), v(11, 21, 14, c), v(12, 22, 12, c)}},
		{SegE, []call{v(10, 37, 16, c), v(11, 38, 14, c), v(12, 39, 12, c)}},
		{SegB, []call{v(26, 20, 16, c), v(25, 21, 14, c), v(24, 22, 12, c)}},
		{SegC, []call{v(26, 37, 16, c), v(25, 38, 14, c), v(24, 39, 12, c)}},
		{SegG, []call{h(12, 36, 12, c), h(12, 37, 12, c), h(13, 35, 10, c), h(13, 38, 10, c)}},
	}
	for _, tc := range tests {
		t.Run(tc.seg.String(), func(t *testing.T) {
			r := &recorder{}
			assert.NilError(t, drawSegment(r, g, tc.seg, c))
			assert.DeepEqual(t, r.calls, tc.want)
			assert.Equal(t, r.starts, 1)
			assert.Equal(t, r.ends, 1)
			assert.Equal(t, r.outside, 0)
		})
	}
}

func TestEvenMiddleSegment(t *testing.T) {
	r := &recorder{}
	g := Geometry{X: 0, Y: 0, Width: 20, Height: 40, LedWidth: 4}
	assert.NilError(t, drawSegment(r, g, SegG, 1))
	// two lines above the centre and two below
	assert.DeepEqual(t, r.calls, []call{
		h(2, 20, 16, 1), h(2, 21, 16, 1),
		h(3, 19, 14, 1), h(3, 22, 14, 1),
	})
}

func TestThinSegmentStrokes(t *testing.T) {
	g := Geometry{X: 5, Y: 5, Width: 10, Height: 20, LedWidth: 1}
	tests := []struct {
		seg  Segment
		want []call
	}{
		{SegA, []call{h(5, 5, 10, 1)}},
		{SegD, []call{h(5, 25, 10, 1)}},
		{SegG, []call{h(6, 15, 10, 1)}},
		{SegF, []call{v(5, 5, 10, 1)}},
		{SegC, []call{v(15, 16, 10, 1)}},
	}
	for _, tc := range tests {
		r := &recorder{}
		assert.NilError(t, drawSegment(r, g, tc.seg, 1))
		assert.DeepEqual(t, r.calls, tc.want)
	}
}

func TestZeroLedWidth(t *testing.T) {
	g := Geometry{X: 0, Y: 0, Width: 10, Height: 20, LedWidth: 0}
	r := &recorder{}
	assert.NilError(t, drawSegment(r, g, SegB, 1))
	// the vertical loop never runs but the bracket is still paired
	assert.Equal(t, len(r.calls), 0)
	assert.Equal(t, r.starts, 1)
	assert.Equal(t, r.ends, 1)

	assert.NilError(t, drawSegment(r, g, SegA, 1))
	assert.DeepEqual(t, r.calls, []call{h(0, 0, 10, 1)})
}

func TestOversizedLedSkipsCollapsedSpans(t *testing.T) {
	g := Geometry{X: 0, Y: 0, Width: 16, Height: 32, LedWidth: 20}
	r := &recorder{}
	for seg := SegA; seg < segCount; seg++ {
		assert.NilError(t, drawSegment(r, g, seg, 1))
	}
	assert.Assert(t, len(r.calls) > 0)
	for _, c := range r.calls {
		assert.Assert(t, c.W > 0 || c.H > 0, "non-positive span %+v", c)
	}
	assert.Equal(t, r.starts, int(segCount))
	assert.Equal(t, r.ends, int(segCount))
	assert.Equal(t, r.depth, 0)
}

func TestBatchReportsEndError(t *testing.T) {
	r := &recorder{endError: errFlush}
	err := drawSegment(r, Geometry{Width: 16, Height: 32, LedWidth: 3}, SegA, 1)
	assert.Equal(t, err, errFlush)
	assert.Equal(t, r.depth, 0)
}

func TestRGB565(t *testing.T) {
	assert.Equal(t, RGB565(0xFF, 0, 0), Red)
	assert.Equal(t, RGB565(0, 0xFF, 0), Green)
	assert.Equal(t, RGB565(0, 0, 0xFF), Blue)
	assert.Equal(t, RGB565(0xFF, 0xFF, 0xFF), White)

	r, g, b := White.RGB()
	assert.Equal(t, [3]uint8{r, g, b}, [3]uint8{0xFF, 0xFF, 0xFF})
	r, g, b = Red.RGB()
	assert.Equal(t, [3]uint8{r, g, b}, [3]uint8{0xFF, 0, 0})
}
