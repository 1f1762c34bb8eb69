package ratio

import "primefrac/internal/domain"

// Reduce cancels the common prime factors of two ascending factor
// multisets. A side left with nothing after cancellation becomes [1], the
// identity multiset, so products downstream stay valid. When the sides
// share no factor both inputs are returned unchanged.
func Reduce(num, den domain.Factors) (domain.Factors, domain.Factors) {
	common := intersect(num, den)
	if len(common) == 0 {
		return num, den
	}

	left := subtract(num, common)
	if len(left) == 0 {
		left = domain.Factors{1}
	}

	right := subtract(den, common)
	if len(right) == 0 {
		right = domain.Factors{1}
	}

	return left, right
}

// intersect walks two ascending multisets with a two-pointer merge and
// keeps each common value the minimum number of times it occurs in both.
func intersect(a, b domain.Factors) domain.Factors {
	var out domain.Factors
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	return out
}

// subtract removes one occurrence from a for every element of sub. Both
// are ascending and sub is a sub-multiset of a; the order of what remains
// is preserved.
func subtract(a, sub domain.Factors) domain.Factors {
	var out domain.Factors
	j := 0
	for _, v := range a {
		if j < len(sub) && v == sub[j] {
			j++
			continue
		}
		out = append(out, v)
	}
	return out
}
