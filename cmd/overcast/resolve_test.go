package main

import (
	"testing"

	"overcast/internal/types"
)

func TestParseSignatureSplitsAndInterns(t *testing.T) {
	reg := types.NewRegistry()
	sig, err := parseSignature(reg, " int32 , float64 ")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(sig) != 2 {
		t.Fatalf("expected 2 handles, got %d", len(sig))
	}
	if id, _ := reg.Lookup("int32"); id != sig[0] {
		t.Fatalf("first handle mismatch")
	}
}

func TestParseSignatureRejectsEmptyInput(t *testing.T) {
	reg := types.NewRegistry()
	if _, err := parseSignature(reg, "   "); err == nil {
		t.Fatalf("expected an error for an empty signature")
	}
	if _, err := parseSignature(reg, "int32,,bool"); err == nil {
		t.Fatalf("expected an error for an empty type name")
	}
}
