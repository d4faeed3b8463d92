package cantilever

// BilletPad is the machining allowance added on every side of the finished
// envelope when sizing the raw billet (mm).
const BilletPad = 3.0

// Mass returns the beam mass (kg).
func (c *Cantilever) Mass() float64 {
	return c.Material.Rho * c.L * c.Props.Area
}

// BilletMass returns the mass of the rectangular raw billet the beam is
// machined from (kg).
func (c *Cantilever) BilletMass() float64 {
	return c.Material.Rho *
		(c.L + 2*BilletPad) *
		(c.Section.Width() + 2*BilletPad) *
		(c.Section.H + 2*BilletPad)
}

// Cost returns the procurement cost (€): the whole billet is paid at the
// material rate, the removed material at the machining rate.
func (c *Cantilever) Cost() float64 {
	mbox := c.BilletMass()
	return mbox*c.Material.CMat + (mbox-c.Mass())*c.Material.CProd
}
