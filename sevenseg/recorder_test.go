package sevenseg

import "errors"

// call is one recorded draw, exported fields for assert.DeepEqual
type call struct {
	Op   string
	X, Y int
	W, H int
	C    Color
}

// recorder is a Surface that keeps every draw for inspection
type recorder struct {
	calls    []call
	depth    int
	starts   int
	ends     int
	outside  int // draws issued outside a batch
	endError error
}

func (r *recorder) StartWrite() {
	r.depth++
	r.starts++
}

func (r *recorder) EndWrite() error {
	r.depth--
	r.ends++
	return r.endError
}

func (r *recorder) add(c call) {
	if r.depth <= 0 {
		r.outside++
	}
	r.calls = append(r.calls, c)
}

func (r *recorder) DrawHLine(x, y, w int, c Color) { r.add(call{Op: "h", X: x, Y: y, W: w, C: c}) }
func (r *recorder) DrawVLine(x, y, h int, c Color) { r.add(call{Op: "v", X: x, Y: y, H: h, C: c}) }
func (r *recorder) FillRect(x, y, w, h int, c Color) {
	r.add(call{Op: "f", X: x, Y: y, W: w, H: h, C: c})
}

func (r *recorder) reset() {
	r.calls = nil
	r.starts = 0
	r.ends = 0
}

func (r *recorder) colored(c Color) int {
	n := 0
	for _, cl := range r.calls {
		if cl.C == c {
			n++
		}
	}
	return n
}

func (r *recorder) fills() []call {
	var ret []call
	for _, cl := range r.calls {
		if cl.Op == "f" {
			ret = append(ret, cl)
		}
	}
	return ret
}

var errFlush = errors.New("flush failed")

func h(x, y, w int, c Color) call { return call{Op: "h", X: x, Y: y, W: w, C: c} }
func v(x, y, h int, c Color) call { return call{Op: "v", X: x, Y: y, H: h, C: c} }
