package compat

import "overcast/internal/types"

// rate scores one candidate signature against the call signature. The scan
// stops at the first impossible argument: no match, or an unsafe conversion
// when unsafe conversions are disallowed.
func (m *Manager) rate(sig, candidate []types.TypeID, allowUnsafe bool) Rating {
	var rating Rating
	for i, arg := range sig {
		switch m.IsCompatible(arg, candidate[i]) {
		case Exact, Subtype:
			// cost-free
		case Promote:
			rating.Promote++
		case SafeConvert:
			rating.SafeConvert++
		case UnsafeConvert:
			if !allowUnsafe {
				rating.Bad()
				return rating
			}
			rating.UnsafeConvert++
		default:
			rating.Bad()
			return rating
		}
	}
	return rating
}

func (m *Manager) rateAll(sig, candidates []types.TypeID, count int, allowUnsafe bool) []Rating {
	width := len(sig)
	ratings := make([]Rating, count)
	for c := 0; c < count; c++ {
		ratings[c] = m.rate(sig, candidates[c*width:(c+1)*width], allowUnsafe)
	}
	return ratings
}

// SelectOverload picks the best candidate for the call signature sig.
// Candidate signatures are flattened into candidates: candidate c occupies
// candidates[c*len(sig) : (c+1)*len(sig)], for count candidates in total.
//
// It returns the number of candidates tying for the best rating, and the
// index of the first of them in declaration order (-1 when no candidate is
// viable). A match count above one means the call is ambiguous; the returned
// index is then only good for diagnostics. Ambiguity and no-match are
// ordinary outcomes, never errors.
func (m *Manager) SelectOverload(sig, candidates []types.TypeID, count int, allowUnsafe bool) (matches, selected int) {
	selected = -1
	var best Rating
	for c, r := range m.rateAll(sig, candidates, count, allowUnsafe) {
		if r.Impossible() {
			continue
		}
		switch {
		case selected == -1 || r.Less(best):
			best = r
			selected = c
			matches = 1
		case r == best:
			matches++
		}
	}
	return matches, selected
}

// ResolveOverload is SelectOverload with the full tied set: it returns every
// candidate index achieving the best rating, in declaration order. An empty
// result means no viable candidate.
func (m *Manager) ResolveOverload(sig, candidates []types.TypeID, count int, allowUnsafe bool) []int {
	ratings := m.rateAll(sig, candidates, count, allowUnsafe)
	var best Rating
	found := false
	for _, r := range ratings {
		if r.Impossible() {
			continue
		}
		if !found || r.Less(best) {
			best = r
			found = true
		}
	}
	if !found {
		return nil
	}
	var tied []int
	for c, r := range ratings {
		if r == best {
			tied = append(tied, c)
		}
	}
	return tied
}
