package compat

import (
	"testing"

	"overcast/internal/types"
)

// Handles used across the selection tests.
const (
	tInt32 types.TypeID = iota
	tInt64
	tFloat64
	tBool
)

func newConversionManager() *Manager {
	mgr := NewManager()
	mgr.AddSafeConversion(tInt32, tFloat64)
	mgr.AddUnsafeConversion(tInt64, tFloat64)
	return mgr
}

func TestSelectPrefersExactOverConversion(t *testing.T) {
	mgr := newConversionManager()
	sig := []types.TypeID{tInt32}
	candidates := []types.TypeID{tFloat64, tInt32}

	matches, selected := mgr.SelectOverload(sig, candidates, 2, false)
	if matches != 1 || selected != 1 {
		t.Fatalf("expected the exact candidate to win alone, got matches=%d selected=%d", matches, selected)
	}
}

func TestSelectRejectsUnsafeWhenDisallowed(t *testing.T) {
	mgr := newConversionManager()
	sig := []types.TypeID{tInt64}
	candidates := []types.TypeID{tFloat64}

	matches, selected := mgr.SelectOverload(sig, candidates, 1, false)
	if matches != 0 || selected != -1 {
		t.Fatalf("unsafe conversion must not be viable, got matches=%d selected=%d", matches, selected)
	}
}

func TestSelectAcceptsUnsafeWhenAllowed(t *testing.T) {
	mgr := newConversionManager()
	sig := []types.TypeID{tInt64}
	candidates := []types.TypeID{tFloat64}

	matches, selected := mgr.SelectOverload(sig, candidates, 1, true)
	if matches != 1 || selected != 0 {
		t.Fatalf("expected the unsafe candidate to win, got matches=%d selected=%d", matches, selected)
	}
}

func TestSelectReportsTiesAtFirstIndex(t *testing.T) {
	mgr := newConversionManager()
	sig := []types.TypeID{tInt32}
	// Both candidates need one safe conversion's worth of nothing: they are
	// the same signature, so their ratings are identical.
	candidates := []types.TypeID{tFloat64, tFloat64}

	matches, selected := mgr.SelectOverload(sig, candidates, 2, false)
	if matches != 2 {
		t.Fatalf("identical candidates must tie, got matches=%d", matches)
	}
	if selected != 0 {
		t.Fatalf("the tie-break index must be the lower candidate, got %d", selected)
	}
}

func TestSelectNoViableCandidate(t *testing.T) {
	mgr := newConversionManager()
	sig := []types.TypeID{tBool}
	candidates := []types.TypeID{tFloat64, tInt32}

	matches, selected := mgr.SelectOverload(sig, candidates, 2, true)
	if matches != 0 || selected != -1 {
		t.Fatalf("no candidate is viable, got matches=%d selected=%d", matches, selected)
	}
}

func TestSelectImpossibleArgumentExcludesCandidate(t *testing.T) {
	mgr := newConversionManager()
	// Second argument has no relation for the first candidate; the first
	// candidate must not contribute to the match count however good its
	// first argument is.
	sig := []types.TypeID{tInt32, tBool}
	candidates := []types.TypeID{
		tInt32, tFloat64, // arg 0 exact, arg 1 no match
		tFloat64, tBool, // arg 0 safe convert, arg 1 exact
	}

	matches, selected := mgr.SelectOverload(sig, candidates, 2, false)
	if matches != 1 || selected != 1 {
		t.Fatalf("the partially-impossible candidate leaked in: matches=%d selected=%d", matches, selected)
	}
}

func TestSelectFewerUnsafeBeatsFewerSafe(t *testing.T) {
	mgr := NewManager()
	mgr.AddSafeConversion(tInt32, tFloat64)
	mgr.AddUnsafeConversion(tInt32, tInt64)

	// Candidate 0 needs two safe conversions; candidate 1 needs one unsafe.
	sig := []types.TypeID{tInt32, tInt32}
	candidates := []types.TypeID{
		tFloat64, tFloat64,
		tInt64, tInt32,
	}

	matches, selected := mgr.SelectOverload(sig, candidates, 2, true)
	if matches != 1 || selected != 0 {
		t.Fatalf("two safe conversions must beat one unsafe, got matches=%d selected=%d", matches, selected)
	}
}

func TestSelectPromotionBeatsSafeConversion(t *testing.T) {
	mgr := NewManager()
	mgr.AddPromotion(tInt32, tInt64)
	mgr.AddSafeConversion(tInt32, tFloat64)

	sig := []types.TypeID{tInt32}
	candidates := []types.TypeID{tFloat64, tInt64}

	matches, selected := mgr.SelectOverload(sig, candidates, 2, false)
	if matches != 1 || selected != 1 {
		t.Fatalf("promotion must beat safe conversion, got matches=%d selected=%d", matches, selected)
	}
}

func TestSelectSubtypeIsCostFree(t *testing.T) {
	mgr := NewManager()
	mgr.AddCompatibility(tInt32, tInt64, Subtype)
	mgr.AddPromotion(tInt32, tFloat64)

	sig := []types.TypeID{tInt32}
	candidates := []types.TypeID{tFloat64, tInt64}

	matches, selected := mgr.SelectOverload(sig, candidates, 2, false)
	if matches != 1 || selected != 1 {
		t.Fatalf("a subtype match costs nothing, got matches=%d selected=%d", matches, selected)
	}
}

func TestResolveOverloadReturnsTiedSet(t *testing.T) {
	mgr := newConversionManager()
	sig := []types.TypeID{tInt32}
	candidates := []types.TypeID{tFloat64, tInt64, tFloat64}
	// Candidate 1 is unrelated; 0 and 2 tie on one safe conversion each.

	tied := mgr.ResolveOverload(sig, candidates, 3, false)
	if len(tied) != 2 || tied[0] != 0 || tied[1] != 2 {
		t.Fatalf("expected tied set [0 2], got %v", tied)
	}
}

func TestResolveOverloadEmptyWhenNothingViable(t *testing.T) {
	mgr := newConversionManager()
	sig := []types.TypeID{tBool}
	candidates := []types.TypeID{tFloat64}

	if tied := mgr.ResolveOverload(sig, candidates, 1, true); tied != nil {
		t.Fatalf("expected no tied set, got %v", tied)
	}
}

func TestResolveOverloadSingleWinnerMatchesSelect(t *testing.T) {
	mgr := newConversionManager()
	sig := []types.TypeID{tInt32}
	candidates := []types.TypeID{tFloat64, tInt32}

	tied := mgr.ResolveOverload(sig, candidates, 2, false)
	matches, selected := mgr.SelectOverload(sig, candidates, 2, false)
	if len(tied) != matches || tied[0] != selected {
		t.Fatalf("ResolveOverload %v disagrees with SelectOverload (%d, %d)", tied, matches, selected)
	}
}
