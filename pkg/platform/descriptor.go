package platform

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Type is the device category of a Descriptor.
type Type string

const (
	// TypeDesktop identifies desktop computers and laptops
	TypeDesktop Type = "desktop"

	// TypeMobile identifies smartphones and feature phones
	TypeMobile Type = "mobile"

	// TypeTablet identifies tablet devices
	TypeTablet Type = "tablet"

	// TypeBot identifies crawlers
	TypeBot Type = "bot"
)

// ParseType resolves a type name case-insensitively.
func ParseType(s string) (Type, error) {
	switch t := Type(cases.Fold().String(strings.TrimSpace(s))); t {
	case TypeDesktop, TypeMobile, TypeTablet, TypeBot:
		return t, nil
	default:
		return "", ErrUnknownType
	}
}

// Descriptor is the result of a classification. Type is always set on a
// match; Vendor and Model are set only when a rule can determine them.
type Descriptor struct {
	Type   Type   `json:"type" yaml:"type"`
	Vendor string `json:"vendor,omitempty" yaml:"vendor,omitempty"`
	Model  string `json:"model,omitempty" yaml:"model,omitempty"`
}

// IsZero reports whether d is the empty "no match" descriptor.
func (d Descriptor) IsZero() bool {
	return d == Descriptor{}
}

// String returns a short human-readable label, e.g. "Tablet (Apple iPad)".
func (d Descriptor) String() string {
	if d.IsZero() {
		return "Unknown device"
	}

	label := cases.Title(language.English).String(string(d.Type))

	var details []string
	if d.Vendor != "" {
		details = append(details, d.Vendor)
	}
	if d.Model != "" {
		details = append(details, d.Model)
	}
	if len(details) == 0 {
		return label
	}
	return label + " (" + strings.Join(details, " ") + ")"
}
