package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/alexanderramin/frontdesk/internal/domain"
	"gopkg.in/yaml.v3"
)

// LoadProfile reads and validates a BusinessProfile from a YAML file.
func LoadProfile(path string) (domain.BusinessProfile, error) {
	var p domain.BusinessProfile

	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("reading profile: %w", err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("parsing profile %s: %w", path, err)
	}
	p.Name = strings.TrimSpace(p.Name)
	p.Industry = strings.TrimSpace(p.Industry)
	p.Description = strings.TrimSpace(p.Description)
	if err := p.Validate(); err != nil {
		return p, err
	}
	return p, nil
}

// profileValues holds raw form or prompt input before it becomes a profile.
type profileValues struct {
	Name        string
	Industry    string
	Description string
	Email       string
	Phone       string
	Address     string
}

func (v profileValues) profile() domain.BusinessProfile {
	p := domain.BusinessProfile{
		Name:        strings.TrimSpace(v.Name),
		Industry:    strings.TrimSpace(v.Industry),
		Description: strings.TrimSpace(v.Description),
	}
	// Contact details hang off the email; without one they are dropped.
	if v.hasEmail() {
		p.Contact = &domain.ContactInfo{
			Email:   strings.TrimSpace(v.Email),
			Phone:   domain.OptionalString(v.Phone),
			Address: domain.OptionalString(v.Address),
		}
	}
	return p
}

func (v profileValues) hasEmail() bool {
	return strings.TrimSpace(v.Email) != ""
}

// promptProfile collects the profile with plain line prompts. Required
// fields are asked again until answered.
func promptProfile(_ context.Context, c *Console) (domain.BusinessProfile, error) {
	var v profileValues
	var err error

	required := []struct {
		label string
		dst   *string
	}{
		{"Business name: ", &v.Name},
		{"Industry: ", &v.Industry},
		{"Describe the business (services, prices, hours): ", &v.Description},
	}
	for _, f := range required {
		for strings.TrimSpace(*f.dst) == "" {
			if *f.dst, err = c.Prompt(f.label); err != nil {
				return domain.BusinessProfile{}, fmt.Errorf("reading profile: %w", err)
			}
		}
	}

	optional := []struct {
		label string
		dst   *string
	}{
		{"Contact email (blank to skip contact details): ", &v.Email},
		{"Phone (optional): ", &v.Phone},
		{"Address (optional): ", &v.Address},
	}
	for i, f := range optional {
		if *f.dst, err = c.Prompt(f.label); err != nil {
			return domain.BusinessProfile{}, fmt.Errorf("reading profile: %w", err)
		}
		if i == 0 && strings.TrimSpace(v.Email) == "" {
			break
		}
	}

	p := v.profile()
	return p, p.Validate()
}
