package ui

import (
	"strings"
	"testing"
)

func TestValidateName(t *testing.T) {
	ok, replacement := validateName("Mia")
	if !ok || replacement != nil {
		t.Errorf("validateName(Mia) = %v, %v; want accepted as is", ok, replacement)
	}

	ok, replacement = validateName(strings.Repeat("a", 21))
	if ok || replacement == nil {
		t.Fatal("21 runes should be replaced")
	}
	if *replacement != strings.Repeat("a", 20) {
		t.Errorf("replacement = %q, want 20 runes", *replacement)
	}

	ok, replacement = validateName("Mi\x7fa")
	if ok || replacement == nil || *replacement != "Mia" {
		t.Errorf("control characters should be dropped, got %v %v", ok, replacement)
	}
}

func TestSubmittedFiresOnce(t *testing.T) {
	ui := &NameUI{submitted: "Zoe", pending: true}

	if name, ok := ui.Submitted(); !ok || name != "Zoe" {
		t.Fatalf("Submitted() = %q, %v; want Zoe, true", name, ok)
	}
	if _, ok := ui.Submitted(); ok {
		t.Error("second Submitted() should report nothing")
	}
}
