package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Variant is the build configuration selected for an invocation.
type Variant int

const (
	// VariantDebug builds without optimizations and favors fast iteration
	// (assets are symlinked rather than copied).
	VariantDebug Variant = iota
	// VariantRelease builds with optimizations and produces relocatable,
	// standalone output.
	VariantRelease
)

// ParseVariant normalizes a command-line variant selector. Matching is
// case-insensitive; anything other than debug/release is an argument error.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(s) {
	case "debug":
		return VariantDebug, nil
	case "release":
		return VariantRelease, nil
	default:
		return 0, zerr.With(ErrUnknownVariant, "variant", s)
	}
}

// ID returns the canonical lowercase identifier used for output-directory
// naming.
func (v Variant) ID() string {
	if v == VariantRelease {
		return "release"
	}
	return "debug"
}

// CargoFlag returns the compiler optimization flag for the variant: empty
// for Debug, "--release" for Release.
func (v Variant) CargoFlag() string {
	if v == VariantRelease {
		return "--release"
	}
	return ""
}

// String implements fmt.Stringer.
func (v Variant) String() string {
	return v.ID()
}
