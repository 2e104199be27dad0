package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidProfile is returned when a BusinessProfile is missing required fields.
var ErrInvalidProfile = errors.New("invalid business profile")

// BusinessProfile is the identity and description of the business the
// assistant speaks for. It is read-only once onboarding hands it on.
type BusinessProfile struct {
	Name        string       `yaml:"name"`
	Industry    string       `yaml:"industry"`
	Description string       `yaml:"description"`
	Contact     *ContactInfo `yaml:"contact,omitempty"`
}

// ContactInfo holds how customers reach the business. Nil Phone or Address
// means the operator did not provide one, which is different from "".
type ContactInfo struct {
	Email   string  `yaml:"email"`
	Phone   *string `yaml:"phone,omitempty"`
	Address *string `yaml:"address,omitempty"`
}

// Validate checks the fields every later stage relies on.
func (p *BusinessProfile) Validate() error {
	var missing []string
	if strings.TrimSpace(p.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(p.Industry) == "" {
		missing = append(missing, "industry")
	}
	if strings.TrimSpace(p.Description) == "" {
		missing = append(missing, "description")
	}
	if p.Contact != nil && strings.TrimSpace(p.Contact.Email) == "" {
		missing = append(missing, "contact.email")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrInvalidProfile, strings.Join(missing, ", "))
	}
	return nil
}

// OptionalString returns nil for blank input so "not provided" survives
// trimming, otherwise a pointer to the trimmed value.
func OptionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// CoalesceStr returns the first non-empty string from vals.
func CoalesceStr(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
