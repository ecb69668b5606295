package types

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorKindMatching(t *testing.T) {
	wrapped := fmt.Errorf("view: off=99 width=4 len=10: %w", ErrOutOfBounds)
	if !errors.Is(wrapped, ErrOutOfBounds) {
		t.Error("wrapped bounds error must match the sentinel")
	}
	if errors.Is(wrapped, ErrNotSave) {
		t.Error("bounds error must not match a format sentinel")
	}

	// Distinct *Error values of the same kind match each other.
	custom := &Error{Kind: ErrKindBounds, Msg: "record slice"}
	if !errors.Is(custom, ErrOutOfBounds) {
		t.Error("same-kind errors must match")
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("short read")
	e := &Error{Kind: ErrKindFormat, Msg: "sector 3", Err: cause}
	if !errors.Is(e, cause) {
		t.Error("Unwrap must expose the cause")
	}
	if got := e.Error(); got != "sector 3: short read" {
		t.Errorf("Error() = %q", got)
	}
}

func TestNatureOf(t *testing.T) {
	if n := NatureOf(0); n.Name != "Hardy" || !n.Neutral() {
		t.Errorf("NatureOf(0) = %+v", n)
	}
	if n := NatureOf(3); n.Name != "Adamant" || n.Increased != StatAttack || n.Decreased != StatSpAttack {
		t.Errorf("NatureOf(3) = %+v", n)
	}
	if n := NatureOf(24); n.Name != "Quirky" {
		t.Errorf("NatureOf(24) = %+v", n)
	}
	// Wraps at 25.
	if NatureOf(25) != NatureOf(0) {
		t.Error("NatureOf(25) must equal NatureOf(0)")
	}
	if NatureOf(0xFFFFFFFF) != NatureOf(0xFFFFFFFF%25) {
		t.Error("nature must be personality mod 25")
	}
}

func TestNatureByIndex(t *testing.T) {
	n, ok := NatureByIndex(10)
	if !ok || n.Name != "Timid" {
		t.Errorf("NatureByIndex(10) = %+v, %v", n, ok)
	}
	if _, ok := NatureByIndex(25); ok {
		t.Error("index 25 must be rejected")
	}
	if _, ok := NatureByIndex(-1); ok {
		t.Error("negative index must be rejected")
	}
}

func TestShinyValue(t *testing.T) {
	if v := ShinyValue(0, 0); v != 0 {
		t.Errorf("ShinyValue(0,0) = %d", v)
	}
	if !IsShiny(0x12341234, 0x56785678) {
		t.Error("xor-fold of identical halves must be shiny")
	}
	if IsShiny(0x12341234, 0x56785670) {
		t.Error("shiny value 8 must not be shiny")
	}
}

func TestHPStat(t *testing.T) {
	// Level 100, base 70, IV 31, EV 252: (140+31+63)*100/100 + 110 = 344.
	if got := HPStat(70, 31, 252, 100); got != 344 {
		t.Errorf("HPStat = %d, want 344", got)
	}
}

func TestStatNatureMultiplier(t *testing.T) {
	adamant := NatureOf(3) // +Attack -SpAttack
	base := Stat(85, 31, 252, 100, adamant, StatDefense)
	up := Stat(85, 31, 252, 100, adamant, StatAttack)
	down := Stat(85, 31, 252, 100, adamant, StatSpAttack)
	if up <= base {
		t.Errorf("increased stat %d must exceed neutral %d", up, base)
	}
	if down >= base {
		t.Errorf("decreased stat %d must undercut neutral %d", down, base)
	}
}
