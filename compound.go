package distrib

// Dice returns sum of rolling dice with given number of faces (aka NdM).
//
// Each die is uniform in range [1, faces], so the result is in range [dice, dice*faces]. Non-positive dice gives 0.
func (p *Provider) Dice(dice, faces int) int {
	p.mw.ProviderCall(OpDice)
	var acc int
	for i := 0; i < dice; i++ {
		acc += 1 + p.intn(faces)
	}
	return acc
}

// Bates returns sample of Bates distribution with default parameter (4) rescaled to range [min, max).
func (p *Provider) Bates(min, max float64) float64 {
	return p.BatesN(min, max, defaultBatesN)
}

// BatesN returns sample of Bates distribution with parameter n rescaled to range [min, max).
//
// The sample is an average of n uniform draws: bell-shaped, centered at the middle of the range, variance
// (max-min)^2/(12n). n < 1 uses default parameter.
func (p *Provider) BatesN(min, max float64, n int) float64 {
	p.mw.ProviderCall(OpBates)
	if n < 1 {
		n = defaultBatesN
	}
	var acc float64
	for i := 0; i < n; i++ {
		acc += p.draw()
	}
	return interpolate(min, max, acc/float64(n))
}
