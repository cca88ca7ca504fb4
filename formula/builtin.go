package formula

import "math"

// sgn returns -1, 0 or 1 according to the sign of v.
func sgn(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// hop is the Hopalong core term sqrt(|b*x - c|).
func hop(x, b, c float64) float64 {
	return math.Sqrt(math.Abs(b*x - c))
}

// hopalongDomain is the starting territory shared by most Hopalong variants;
// only the d range differs between them.
func hopalongDomain(dmin, dmax float64) Domain {
	return Domain{
		A: Range{-80, 80},
		B: Range{-3, 3},
		C: Range{-80, 80},
		D: Range{dmin, dmax},
	}
}

func symmetric(a, b, c, d float64) Domain {
	return Domain{A: Range{-a, a}, B: Range{-b, b}, C: Range{-c, c}, D: Range{-d, d}}
}

// builtins returns the built-in catalogue, Hopalong family first.
func builtins() []Formula {
	return []Formula{
		{
			ID:   "classic_sqrt",
			Name: "Classic (sqrt)",
			Desc: "x' = y - sgn(x)*sqrt(|b*x - c|), y' = a - x",
			Step: func(x, y, a, b, c, d float64) (float64, float64) {
				return y - sgn(x)*hop(x, b, c), a - x
			},
			Domain: hopalongDomain(-2, 2),
		},
		{
			ID:   "sqrt_plus_dy",
			Name: "Classic + d*y",
			Desc: "x' = y - sgn(x)*sqrt(|b*x - c|) + d*y, y' = a - x",
			Step: func(x, y, a, b, c, d float64) (float64, float64) {
				return y - sgn(x)*hop(x, b, c) + d*y, a - x
			},
			Domain: hopalongDomain(-1, 1),
		},
		{
			ID:   "sqrt_plus_dx",
			Name: "Classic + d*x",
			Desc: "x' = y - sgn(x)*sqrt(|b*x - c|) + d*x, y' = a - x",
			Step: func(x, y, a, b, c, d float64) (float64, float64) {
				return y - sgn(x)*hop(x, b, c) + d*x, a - x
			},
			Domain: hopalongDomain(-1, 1),
		},
		{
			ID:   "mix_inside",
			Name: "sqrt(|b(x + d*y) - c|)",
			Desc: "x' = y - sgn(x)*sqrt(|b(x + d*y) - c|), y' = a - x",
			Step: func(x, y, a, b, c, d float64) (float64, float64) {
				return y - sgn(x)*math.Sqrt(math.Abs(b*(x+d*y)-c)), a - x
			},
			Domain: hopalongDomain(-0.05, 0.05),
		},
		{
			ID:   "trig_kick_x",
			Name: "Trig kick (sin x)",
			Desc: "x' = y - sgn(x)*sqrt(|b*x - c|) + d*sin(x), y' = a - x",
			Step: func(x, y, a, b, c, d float64) (float64, float64) {
				return y - sgn(x)*hop(x, b, c) + d*math.Sin(x), a - x
			},
			Domain: hopalongDomain(-5, 5),
		},
		{
			ID:   "trig_kick_y",
			Name: "Trig kick (sin y)",
			Desc: "x' = y - sgn(x)*sqrt(|b*x - c|) + d*sin(y), y' = a - x",
			Step: func(x, y, a, b, c, d float64) (float64, float64) {
				return y - sgn(x)*hop(x, b, c) + d*math.Sin(y), a - x
			},
			Domain: hopalongDomain(-5, 5),
		},
		{
			ID:   "classic_plus_yy",
			Name: "Classic + d*y^2",
			Desc: "x' = y - sgn(x)*sqrt(|b*x - c|) + d*y^2, y' = a - x",
			Step: func(x, y, a, b, c, d float64) (float64, float64) {
				return y - sgn(x)*hop(x, b, c) + d*(y*y), a - x
			},
			Domain: hopalongDomain(-0.02, 0.02),
		},
		{
			ID:   "cos_xy_kick",
			Name: "Trig kick (cos(x+y))",
			Desc: "x' = y - sgn(x)*sqrt(|b*x - c|) + d*cos(x+y), y' = a - x",
			Step: func(x, y, a, b, c, d float64) (float64, float64) {
				return y - sgn(x)*hop(x, b, c) + d*math.Cos(x+y), a - x
			},
			Domain: hopalongDomain(-5, 5),
		},
		{
			ID:   "inside_sin_y",
			Name: "Inside sqrt sin(y)",
			Desc: "x' = y - sgn(x)*sqrt(|b(x + d*sin(y)) - c|), y' = a - x",
			Step: func(x, y, a, b, c, d float64) (float64, float64) {
				return y - sgn(x)*hop(x+d*math.Sin(y), b, c), a - x
			},
			Domain: hopalongDomain(-10, 10),
		},
		{
			ID:   "inside_cos_x",
			Name: "Inside sqrt cos(x)",
			Desc: "x' = y - sgn(x)*sqrt(|b(x + d*cos(x)) - c|), y' = a - x",
			Step: func(x, y, a, b, c, d float64) (float64, float64) {
				return y - sgn(x)*hop(x+d*math.Cos(x), b, c), a - x
			},
			Domain: hopalongDomain(-10, 10),
		},
		{
			ID:   "softsign_kick",
			Name: "Softsign kick",
			Desc: "x' = y - sgn(x)*sqrt(|b*x - c|) + d*(x/(1+|x|)), y' = a - x",
			Step: func(x, y, a, b, c, d float64) (float64, float64) {
				k := x / (1 + math.Abs(x))
				return y - sgn(x)*hop(x, b, c) + d*k, a - x
			},
			Domain: hopalongDomain(-20, 20),
		},
		{
			ID:   "tanh_kick",
			Name: "Tanh kick",
			Desc: "x' = y - sgn(x)*sqrt(|b*x - c|) + d*tanh(x), y' = a - x",
			Step: func(x, y, a, b, c, d float64) (float64, float64) {
				return y - sgn(x)*hop(x, b, c) + d*math.Tanh(x), a - x
			},
			Domain: hopalongDomain(-20, 20),
		},
		{
			ID:   "sign_xy",
			Name: "Sign of (x*y)",
			Desc: "x' = y - sgn(x*y)*sqrt(|b*x - c|), y' = a - x",
			Step: func(x, y, a, b, c, d float64) (float64, float64) {
				return y - sgn(x*y)*hop(x, b, c), a - x
			},
			Domain: hopalongDomain(-2, 2),
		},
		{
			ID:   "double_root",
			Name: "Double-root kick",
			Desc: "x' = y - sgn(x)*(sqrt(|b*x - c|) + d*sqrt(|b*y - c|)), y' = a - x",
			Step: func(x, y, a, b, c, d float64) (float64, float64) {
				return y - sgn(x)*(hop(x, b, c)+d*hop(y, b, c)), a - x
			},
			Domain: hopalongDomain(-2, 2),
		},
		{
			ID:   "xy_coupling",
			Name: "XY coupling",
			Desc: "x' = y - sgn(x)*sqrt(|b*x - c|) + d*(x*y/50), y' = a - x",
			Step: func(x, y, a, b, c, d float64) (float64, float64) {
				return y - sgn(x)*hop(x, b, c) + d*(x*y/50), a - x
			},
			Domain: hopalongDomain(-2, 2),
		},
		{
			ID:   "positive_hopalong",
			Name: "Positive Hopalong",
			Desc: "x' = y + sgn(x)*sqrt(|b*x - c|), y' = a - x",
			Step: func(x, y, a, b, c, d float64) (float64, float64) {
				return y + sgn(x)*hop(x, b, c), a - x
			},
			Domain: hopalongDomain(-2, 2),
		},
		{
			ID:   "sinusoidal_hopalong",
			Name: "Sinusoidal Hopalong",
			Desc: "x' = y + sin(b*x - c), y' = a - x",
			Step: func(x, y, a, b, c, d float64) (float64, float64) {
				return y + math.Sin(b*x-c), a - x
			},
			Domain: Domain{A: Range{-80, 80}, B: Range{-10, 10}, C: Range{-10, 10}, D: Range{-2, 2}},
		},
		{
			ID:   "peter_de_jong",
			Name: "Peter de Jong",
			Desc: "x' = sin(a*y) - cos(b*x), y' = sin(c*x) - cos(d*y)",
			Step: func(x, y, a, b, c, d float64) (float64, float64) {
				return math.Sin(a*y) - math.Cos(b*x), math.Sin(c*x) - math.Cos(d*y)
			},
			Domain: symmetric(3, 3, 3, 3),
		},
		{
			ID:   "clifford",
			Name: "Clifford (Pickover)",
			Desc: "x' = sin(a*y) + c*cos(a*x), y' = sin(b*x) + d*cos(b*y)",
			Step: func(x, y, a, b, c, d float64) (float64, float64) {
				return math.Sin(a*y) + c*math.Cos(a*x), math.Sin(b*x) + d*math.Cos(b*y)
			},
			Domain: symmetric(3, 3, 3, 3),
		},
		{
			ID:   "tinkerbell",
			Name: "Tinkerbell map",
			Desc: "x' = x^2 - y^2 + a*x + b*y, y' = 2xy + c*x + d*y",
			Step: func(x, y, a, b, c, d float64) (float64, float64) {
				return x*x - y*y + a*x + b*y, 2*x*y + c*x + d*y
			},
			Domain: Domain{A: Range{-1.5, 1.5}, B: Range{-1.5, 1.5}, C: Range{-1, 3}, D: Range{-1.5, 1.5}},
		},
		{
			ID:   "henon",
			Name: "Henon (with offsets)",
			Desc: "x' = 1 - a*x^2 + y + c, y' = b*x + d",
			Step: func(x, y, a, b, c, d float64) (float64, float64) {
				return 1 - a*x*x + y + c, b*x + d
			},
			Domain: Domain{A: Range{0, 2}, B: Range{-1, 1}, C: Range{-0.5, 0.5}, D: Range{-0.5, 0.5}},
		},
		{
			ID:   "lozi",
			Name: "Lozi (with offsets)",
			Desc: "x' = 1 - a*|x| + y + c, y' = b*x + d",
			Step: func(x, y, a, b, c, d float64) (float64, float64) {
				return 1 - a*math.Abs(x) + y + c, b*x + d
			},
			Domain: Domain{A: Range{0, 2}, B: Range{-1, 1}, C: Range{-0.5, 0.5}, D: Range{-0.5, 0.5}},
		},
		{
			ID:   "ikeda",
			Name: "Ikeda (4-param)",
			Desc: "t = c - d/(1 + x^2 + y^2); x' = a + b(x cos t - y sin t); y' = b(x sin t + y cos t)",
			Step: func(x, y, a, b, c, d float64) (float64, float64) {
				t := c - d/(1+x*x+y*y)
				st, ct := math.Sincos(t)
				return a + b*(x*ct-y*st), b * (x*st + y*ct)
			},
			Domain: Domain{A: Range{0, 1.5}, B: Range{0.5, 0.99}, C: Range{-1, 1}, D: Range{0, 10}},
		},
		{
			ID:   "gingerbread",
			Name: "Gingerbreadman (generalized)",
			Desc: "x' = a - y + b*|x|, y' = c*x + d",
			Step: func(x, y, a, b, c, d float64) (float64, float64) {
				return a - y + b*math.Abs(x), c*x + d
			},
			Domain: Domain{A: Range{-2, 2}, B: Range{0, 2}, C: Range{-1.2, 1.2}, D: Range{-2, 2}},
		},
		{
			ID:   "zaslavsky_web",
			Name: "Zaslavsky Web",
			Desc: "t = y + d*sin(x+c); x' = x + a*sin(t); y' = t + b",
			Step: func(x, y, a, b, c, d float64) (float64, float64) {
				t := y + d*math.Sin(x+c)
				return x + a*math.Sin(t), t + b
			},
			Domain: Domain{A: Range{0, 2}, B: Range{0, 2}, C: Range{0, 2 * math.Pi}, D: Range{0, 2}},
		},
		{
			ID:   "popcorn",
			Name: "Popcorn",
			Desc: "x' = x - a*sin(y + tan(3y)) + c, y' = y - b*sin(x + tan(3x)) + d",
			Step: func(x, y, a, b, c, d float64) (float64, float64) {
				x1 := x - a*math.Sin(y+math.Tan(3*y))
				y1 := y - b*math.Sin(x+math.Tan(3*x))
				return x1 + c, y1 + d
			},
			Domain: Domain{A: Range{0, 0.2}, B: Range{0, 0.2}, C: Range{-2, 2}, D: Range{-2, 2}},
		},
		{
			ID:   "bedhead",
			Name: "Bedhead",
			Desc: "x' = sin(xy/b)*y + cos(ax - y) + d, y' = x + sin(y)/c",
			Step: func(x, y, a, b, c, d float64) (float64, float64) {
				b, c = awayFromZero(b), awayFromZero(c)
				x1 := math.Sin(x*y/b)*y + math.Cos(a*x-y)
				y1 := x + math.Sin(y)/c
				return x1 + d, y1
			},
			Domain: symmetric(2, 2, 2, 2),
		},
		{
			ID:   "gumowski_mira",
			Name: "Gumowski-Mira",
			Desc: "f(u) = c*u + 2(1-c)u^2/(1+u^2); x' = y + a(1 - b*y^2)y + f(x), y' = -x + d*f(x')",
			Step: func(x, y, a, b, c, d float64) (float64, float64) {
				f := func(u float64) float64 {
					return c*u + 2*(1-c)*u*u/(1+u*u)
				}
				x1 := y + a*(1-b*y*y)*y + f(x)
				return x1, -x + f(x1)*d
			},
			Domain: Domain{A: Range{-1, 1}, B: Range{-1, 1}, C: Range{0, 1}, D: Range{0, 1}},
		},
		{
			ID:   "shifted_hopalong",
			Name: "Shifted Hopalong",
			Desc: "s = x + c; x' = y - sgn(s)*sqrt(|b*s - a|), y' = a - s + d",
			Step: func(x, y, a, b, c, d float64) (float64, float64) {
				s := x + c
				sign := 1.0
				if s < 0 {
					sign = -1
				}
				return y - sign*math.Sqrt(math.Abs(b*s-a)), a - s + d
			},
			Domain: symmetric(5, 5, 5, 5),
		},
	}
}

// awayFromZero keeps divisors at least 1e-9 in magnitude, preserving sign.
func awayFromZero(v float64) float64 {
	const eps = 1e-9
	if math.Abs(v) >= eps {
		return v
	}
	if v < 0 {
		return -eps
	}
	return eps
}
