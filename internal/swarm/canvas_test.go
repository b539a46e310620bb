package swarm

import "image/color"

type op struct {
	kind       string
	x, y, a, b float64
	c          color.NRGBA
}

// recorder is a Canvas that remembers every call.
type recorder struct {
	ops []op
}

func (r *recorder) FillRect(x, y, w, h float64, c color.NRGBA) {
	r.ops = append(r.ops, op{"rect", x, y, w, h, c})
}

func (r *recorder) FillCircle(cx, cy, rad float64, c color.NRGBA) {
	r.ops = append(r.ops, op{"circle", cx, cy, rad, 0, c})
}

func (r *recorder) StrokeCircle(cx, cy, rad, width float64, c color.NRGBA) {
	r.ops = append(r.ops, op{"ring", cx, cy, rad, width, c})
}

func (r *recorder) count(kind string) int {
	n := 0
	for _, o := range r.ops {
		if o.kind == kind {
			n++
		}
	}
	return n
}

func (r *recorder) reset() { r.ops = r.ops[:0] }
