package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/alexanderramin/frontdesk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadProfile(t *testing.T) {
	t.Parallel()

	p, err := LoadProfile(writeProfile(t, harborYAML))

	require.NoError(t, err)
	assert.Equal(t, "Harbor Bikes", p.Name)
	assert.Equal(t, "bicycle repair", p.Industry)
	require.NotNil(t, p.Contact)
	assert.Equal(t, "hello@harborbikes.test", p.Contact.Email)
	require.NotNil(t, p.Contact.Phone)
	assert.Equal(t, "+44 20 7946 0000", *p.Contact.Phone)
	assert.Nil(t, p.Contact.Address)
}

func TestLoadProfile_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		invalid bool
	}{
		{"missing description", "name: A\nindustry: B\n", true},
		{"blank name", "name: '  '\nindustry: B\ndescription: C\n", true},
		{"contact without email", "name: A\nindustry: B\ndescription: C\ncontact:\n  phone: '123'\n", true},
		{"malformed yaml", "name: [unclosed\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := LoadProfile(writeProfile(t, tt.body))
			require.Error(t, err)
			if tt.invalid {
				assert.ErrorIs(t, err, domain.ErrInvalidProfile)
			}
		})
	}
}

func TestLoadProfile_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadProfile("/nonexistent/profile.yaml")
	assert.Error(t, err)
}

func TestPromptProfile_ReasksRequiredFields(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	c := NewConsole(strings.NewReader(lines("", "Harbor Bikes", "bicycle repair", "  ", "We fix bikes.", "")), &out)

	p, err := promptProfile(context.Background(), c)

	require.NoError(t, err)
	assert.Equal(t, domain.BusinessProfile{Name: "Harbor Bikes", Industry: "bicycle repair", Description: "We fix bikes."}, p)
	assert.Equal(t, 2, strings.Count(out.String(), "Business name: "))
	assert.NotContains(t, out.String(), "Phone")
}

func TestPromptProfile_WithContact(t *testing.T) {
	t.Parallel()

	c := NewConsole(strings.NewReader(lines("A", "B", "C", "a@b.test", "", "1 Quay St")), io.Discard)

	p, err := promptProfile(context.Background(), c)

	require.NoError(t, err)
	require.NotNil(t, p.Contact)
	assert.Equal(t, "a@b.test", p.Contact.Email)
	assert.Nil(t, p.Contact.Phone)
	require.NotNil(t, p.Contact.Address)
	assert.Equal(t, "1 Quay St", *p.Contact.Address)
}

func TestPromptProfile_EOF(t *testing.T) {
	t.Parallel()

	_, err := promptProfile(context.Background(), NewConsole(strings.NewReader("A\n"), io.Discard))
	assert.ErrorIs(t, err, io.EOF)
}

func TestProfileValues(t *testing.T) {
	t.Parallel()

	p := profileValues{Name: " A ", Industry: "B", Description: "C", Phone: "  "}.profile()
	assert.Nil(t, p.Contact)
	assert.Equal(t, "A", p.Name)

	p = profileValues{Name: "A", Industry: "B", Description: "C", Email: "a@b.test", Phone: "123"}.profile()
	require.NotNil(t, p.Contact)
	require.NotNil(t, p.Contact.Phone)
	assert.Equal(t, "123", *p.Contact.Phone)
	assert.NoError(t, p.Validate())
}

func TestProfileValues_ContactWithoutEmailIsDropped(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		v    profileValues
	}{
		{"phone only", profileValues{Phone: "555 0100"}},
		{"address only", profileValues{Address: "1 Quay St"}},
		{"blank email with details", profileValues{Email: "   ", Phone: "555 0100", Address: "1 Quay St"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			v := tt.v
			v.Name, v.Industry, v.Description = "A", "B", "C"

			p := v.profile()

			assert.Nil(t, p.Contact)
			assert.NoError(t, p.Validate())
		})
	}
}

func TestProfileValues_HasEmail(t *testing.T) {
	t.Parallel()

	assert.False(t, profileValues{}.hasEmail())
	assert.False(t, profileValues{Email: "  "}.hasEmail())
	assert.True(t, profileValues{Email: "a@b.test"}.hasEmail())
}

func TestValidators(t *testing.T) {
	t.Parallel()

	assert.Error(t, validateRequired("name")(" "))
	assert.NoError(t, validateRequired("name")("x"))
	assert.NoError(t, validateOptionalEmail(""))
	assert.NoError(t, validateOptionalEmail("hello@harborbikes.test"))
	assert.Error(t, validateOptionalEmail("not an email"))
}

func TestProfileForm_Builds(t *testing.T) {
	t.Parallel()

	var v profileValues
	assert.NotNil(t, profileForm(&v))
	assert.NotNil(t, frontdeskHuhTheme())
}
