package field

import "math"

// Simplex lattice constants: (3-√3)/6, (√3-1)/2, -1+2·(3-√3)/6, 1/41.
const (
	skewC0 = 0.211324865405187
	skewC1 = 0.366025403784439
	skewC2 = -0.577350269189626
	skewC3 = 0.024390243902439
)

// mod289 follows GLSL mod: the result takes the sign of the divisor.
func mod289(x float64) float64 {
	return x - 289*math.Floor(x/289)
}

func permute(x float64) float64 {
	return mod289((x*34 + 1) * x)
}

func fract(x float64) float64 {
	return x - math.Floor(x)
}

// Simplex2 is 2D simplex gradient noise in roughly [-1, 1]. It evaluates
// the same lattice, hash and gradients as the aurora fragment program so CPU
// and GPU renders agree.
func Simplex2(vx, vy float64) float64 {
	// skew to find the simplex cell
	s := (vx + vy) * skewC1
	ix := math.Floor(vx + s)
	iy := math.Floor(vy + s)

	u := (ix + iy) * skewC0
	x0 := vx - ix + u
	y0 := vy - iy + u

	var i1x, i1y float64
	if x0 > y0 {
		i1x = 1
	} else {
		i1y = 1
	}

	x1 := x0 + skewC0 - i1x
	y1 := y0 + skewC0 - i1y
	x2 := x0 + skewC2
	y2 := y0 + skewC2

	ix = mod289(ix)
	iy = mod289(iy)
	p0 := permute(permute(iy) + ix)
	p1 := permute(permute(iy+i1y) + ix + i1x)
	p2 := permute(permute(iy+1) + ix + 1)

	m0 := math.Max(0.5-(x0*x0+y0*y0), 0)
	m1 := math.Max(0.5-(x1*x1+y1*y1), 0)
	m2 := math.Max(0.5-(x2*x2+y2*y2), 0)
	m0 *= m0
	m0 *= m0
	m1 *= m1
	m1 *= m1
	m2 *= m2
	m2 *= m2

	g0 := corner(p0, x0, y0, &m0)
	g1 := corner(p1, x1, y1, &m1)
	g2 := corner(p2, x2, y2, &m2)

	return 130 * (m0*g0 + m1*g1 + m2*g2)
}

// corner returns the gradient dot product of one simplex corner and applies
// the gradient normalisation to its falloff weight.
func corner(p, x, y float64, m *float64) float64 {
	gx := 2*fract(p*skewC3) - 1
	h := math.Abs(gx) - 0.5
	a0 := gx - math.Floor(gx+0.5)
	*m *= 1.79284291400159 - 0.85373472095314*(a0*a0+h*h)
	return a0*x + h*y
}
