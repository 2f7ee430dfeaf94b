package distrib

import "slices"

// Weight describes numeric types allowed as weights of PickWeighted.
type Weight interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Pick returns random element of options with uniform probability.
// Options remain untouched.
func Pick[T any](p *Provider, options []T) (T, error) {
	var x T
	if len(options) == 0 {
		p.mw.ProviderFail(OpPick)
		return x, ErrEmptyOptions
	}
	p.mw.ProviderCall(OpPick)
	return options[p.intn(len(options))], nil
}

// Pop removes random element from options and returns it.
// Order of the rest elements keeps.
func Pop[T any](p *Provider, options *[]T) (T, error) {
	var x T
	if options == nil || len(*options) == 0 {
		p.mw.ProviderFail(OpPop)
		return x, ErrEmptyOptions
	}
	p.mw.ProviderCall(OpPop)
	i := p.intn(len(*options))
	x = (*options)[i]
	*options = slices.Delete(*options, i, i+1)
	return x, nil
}

// PickWeightedIndex returns random index of weights with probability proportional to weights[i].
//
// Weights must be non-negative and don't need to be normalized; negative weights give undefined distribution.
// The first index which cumulative sum exceeds the threshold wins. If no index reached the threshold (float
// rounding, all-zero weights) the last index returns.
func PickWeightedIndex[W Weight](p *Provider, weights []W) (int, error) {
	if len(weights) == 0 {
		p.mw.ProviderFail(OpPickWeighted)
		return 0, ErrEmptyWeights
	}
	p.mw.ProviderCall(OpPickWeighted)
	return weightedIndex(p, weights), nil
}

// PickWeighted returns random element of options with probability proportional to corresponding weight.
// Options and weights must have the same non-zero length.
func PickWeighted[T any, W Weight](p *Provider, options []T, weights []W) (T, error) {
	var x T
	if len(options) == 0 {
		p.mw.ProviderFail(OpPickWeighted)
		return x, ErrEmptyOptions
	}
	if len(options) != len(weights) {
		p.mw.ProviderFail(OpPickWeighted)
		return x, ErrLengthMismatch
	}
	p.mw.ProviderCall(OpPickWeighted)
	return options[weightedIndex(p, weights)], nil
}

// Shuffle shuffles values in-place (Fisher-Yates). All permutations are equiprobable.
func Shuffle[T any](p *Provider, values []T) {
	p.mw.ProviderCall(OpShuffle)
	for i := len(values) - 1; i > 0; i-- {
		j := p.intBetween(0, i)
		values[i], values[j] = values[j], values[i]
	}
}

func weightedIndex[W Weight](p *Provider, weights []W) int {
	var total float64
	for _, w := range weights {
		total += float64(w)
	}
	threshold := p.draw() * total
	var acc float64
	for i, w := range weights {
		acc += float64(w)
		if threshold < acc {
			return i
		}
	}
	p.mw.WeightsFallback()
	p.logf("provider %s: weighted pick fell back to last index (total weight %g)", p.key, total)
	return len(weights) - 1
}
