package section

// Compute derives the cross-section properties of g. No validation is
// performed: a geometry without web height yields a negative web area and
// the numbers that follow from it.
func Compute(g Geometry) Properties {
	p := Properties{}

	p.WebHeight = g.H - g.Tlf - g.Tuf

	p.ALf = g.Blf * g.Tlf
	p.AUf = g.Buf * g.Tuf
	p.AW = p.WebHeight * g.Tw
	p.Area = p.ALf + p.AUf + p.AW

	p.ZLf = g.Tlf / 2
	p.ZUf = g.H - g.Tuf/2
	p.ZW = (g.Tlf + g.H - g.Tuf) / 2

	// Σ aᵢ zᵢ / Σ aᵢ
	p.Cg = (p.ZUf*p.AUf + p.ZW*p.AW + p.ZLf*p.ALf) / p.Area

	p.Iyy = p.bendingInertia(g)
	p.It = torsionalInertia(g)

	return p
}

// bendingInertia sums own-axis and parallel-axis terms part by part:
// upper flange, lower flange, web.
func (p Properties) bendingInertia(g Geometry) float64 {
	i := g.Buf * g.Tuf * g.Tuf * g.Tuf / 12
	i += p.AUf * sq(p.ZUf-p.Cg)

	i += g.Blf * g.Tlf * g.Tlf * g.Tlf / 12
	i += p.ALf * sq(p.ZLf-p.Cg)

	i += g.Tw * p.WebHeight * p.WebHeight * p.WebHeight / 12
	i += p.AW * sq(p.ZW-p.Cg)

	return i
}

// torsionalInertia uses the open thin-walled section approximation
// It = Σ t³·b / 3. The web strip is taken over the overall height.
func torsionalInertia(g Geometry) float64 {
	return (g.Tw*g.Tw*g.Tw*g.H + g.Tlf*g.Tlf*g.Tlf*g.Blf + g.Tuf*g.Tuf*g.Tuf*g.Buf) / 3
}

func sq(x float64) float64 {
	return x * x
}
