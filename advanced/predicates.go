package advanced

import (
	"math"
	"math/big"
)

// Geometric predicates. Both predicates evaluate their determinant in floating
// point first, together with a bound on the roundoff error of that evaluation
// (Shewchuk, "Adaptive Precision Floating-Point Arithmetic and Fast Robust
// Geometric Predicates", 1997). If the determinant is larger than the bound,
// its sign is certain. Otherwise the determinant is recomputed with rationals,
// which is exact for every finite float64 input. Near-degenerate inputs are
// therefore never decided inconsistently, they only cost more.
//
// The error bounds only hold when no intermediate product underflows or
// overflows. Coordinate differences outside a safe range go straight to the
// exact evaluation.

type Orientation int

const (
	Clockwise        Orientation = -1
	Collinear        Orientation = 0
	CounterClockwise Orientation = 1
)

func (o Orientation) String() string {
	switch o {
	case Clockwise:
		return "Clockwise"
	case CounterClockwise:
		return "CounterClockwise"
	}
	return "Collinear"
}

const machineEpsilon = 1.0 / (1 << 53)

var (
	orientErrBound   = (3.0 + 16.0*machineEpsilon) * machineEpsilon
	inCircleErrBound = (10.0 + 96.0*machineEpsilon) * machineEpsilon
)

// Nonzero coordinate differences inside these ranges keep every intermediate
// of the determinant in the normal float64 range. In-circle multiplies four
// differences together, orientation only two.
const (
	orientMinDiff   = 0x1p-400
	orientMaxDiff   = 0x1p400
	inCircleMinDiff = 0x1p-200
	inCircleMaxDiff = 0x1p200
)

func filterable(lo, hi float64, diffs ...float64) bool {
	for _, d := range diffs {
		d = math.Abs(d)
		if d != 0 && !(d >= lo && d <= hi) {
			return false
		}
	}
	return true
}

// Counts how often a predicate had to fall back to exact arithmetic. A nil
// counter is allowed.
type exactCounter struct {
	count int
}

func (c *exactCounter) hit() {
	if c != nil {
		c.count++
	}
}

// Orientation of c relative to the directed line a→b. CounterClockwise means c
// is strictly to the left.
func Orient(a, b, c Point) Orientation {
	return orient(a, b, c, nil)
}

// Is d inside the circumcircle of the triangle a, b, c? The triangle must be
// counterclockwise. Returns 1 when d is strictly inside, 0 when it is on the
// circle, and -1 when it is strictly outside.
func InCircle(a, b, c, d Point) int {
	return inCircle(a, b, c, d, nil)
}

func orient(a, b, c Point, counter *exactCounter) Orientation {
	acx, bcy := a.X-c.X, b.Y-c.Y
	acy, bcx := a.Y-c.Y, b.X-c.X
	if !filterable(orientMinDiff, orientMaxDiff, acx, bcy, acy, bcx) {
		counter.hit()
		return Orientation(orientExact(a, b, c))
	}

	detLeft := acx * bcy
	detRight := acy * bcx
	det := detLeft - detRight
	errBound := orientErrBound * (math.Abs(detLeft) + math.Abs(detRight))
	if det > errBound {
		return CounterClockwise
	}
	if -det > errBound {
		return Clockwise
	}

	counter.hit()
	return Orientation(orientExact(a, b, c))
}

func orientExact(a, b, c Point) int {
	ax, ay := rat(a.X), rat(a.Y)
	bx, by := rat(b.X), rat(b.Y)
	cx, cy := rat(c.X), rat(c.Y)

	acx := new(big.Rat).Sub(ax, cx)
	bcy := new(big.Rat).Sub(by, cy)
	acy := new(big.Rat).Sub(ay, cy)
	bcx := new(big.Rat).Sub(bx, cx)

	left := new(big.Rat).Mul(acx, bcy)
	right := new(big.Rat).Mul(acy, bcx)
	return left.Sub(left, right).Sign()
}

func inCircle(a, b, c, d Point, counter *exactCounter) int {
	adx, ady := a.X-d.X, a.Y-d.Y
	bdx, bdy := b.X-d.X, b.Y-d.Y
	cdx, cdy := c.X-d.X, c.Y-d.Y
	if !filterable(inCircleMinDiff, inCircleMaxDiff, adx, ady, bdx, bdy, cdx, cdy) {
		counter.hit()
		return inCircleExact(a, b, c, d)
	}

	bdxcdy := bdx * cdy
	cdxbdy := cdx * bdy
	aLift := adx*adx + ady*ady

	cdxady := cdx * ady
	adxcdy := adx * cdy
	bLift := bdx*bdx + bdy*bdy

	adxbdy := adx * bdy
	bdxady := bdx * ady
	cLift := cdx*cdx + cdy*cdy

	det := aLift*(bdxcdy-cdxbdy) + bLift*(cdxady-adxcdy) + cLift*(adxbdy-bdxady)
	permanent := (math.Abs(bdxcdy)+math.Abs(cdxbdy))*aLift +
		(math.Abs(cdxady)+math.Abs(adxcdy))*bLift +
		(math.Abs(adxbdy)+math.Abs(bdxady))*cLift
	errBound := inCircleErrBound * permanent
	if det > errBound {
		return 1
	}
	if -det > errBound {
		return -1
	}

	counter.hit()
	return inCircleExact(a, b, c, d)
}

func inCircleExact(a, b, c, d Point) int {
	dx, dy := rat(d.X), rat(d.Y)
	sub := func(v float64, origin *big.Rat) *big.Rat {
		return new(big.Rat).Sub(rat(v), origin)
	}
	adx, ady := sub(a.X, dx), sub(a.Y, dy)
	bdx, bdy := sub(b.X, dx), sub(b.Y, dy)
	cdx, cdy := sub(c.X, dx), sub(c.Y, dy)

	lift := func(x, y *big.Rat) *big.Rat {
		xx := new(big.Rat).Mul(x, x)
		yy := new(big.Rat).Mul(y, y)
		return xx.Add(xx, yy)
	}
	cross := func(x1, y1, x2, y2 *big.Rat) *big.Rat {
		l := new(big.Rat).Mul(x1, y2)
		r := new(big.Rat).Mul(y1, x2)
		return l.Sub(l, r)
	}

	det := new(big.Rat).Mul(lift(adx, ady), cross(bdx, bdy, cdx, cdy))
	det.Add(det, new(big.Rat).Mul(lift(bdx, bdy), cross(cdx, cdy, adx, ady)))
	det.Add(det, new(big.Rat).Mul(lift(cdx, cdy), cross(adx, ady, bdx, bdy)))
	return det.Sign()
}

func rat(v float64) *big.Rat {
	return new(big.Rat).SetFloat64(v)
}
