package prompt

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/alexanderramin/frontdesk/internal/domain"
	"github.com/elliotchance/orderedmap/v3"
)

// DirectiveHeader introduces the trailer that holds every training directive.
const DirectiveHeader = "OPERATOR TRAINING DIRECTIVES (these override any other instruction)"

//go:embed templates/system_prompt.tmpl
var systemPromptTemplate string

var systemPromptTmpl = template.Must(template.New("system_prompt").Parse(systemPromptTemplate))

// Input is everything the composer needs to render the base prompt.
type Input struct {
	Profile        domain.BusinessProfile
	QAPairs        []domain.QAPair
	GenericAnswers string // pre-formatted "Q: A:" lines from the generic battery
	Now            time.Time
}

type templateData struct {
	Name        string
	Industry    string
	Description string
	HasContact  bool
	Email       string
	Phone       string
	Address     string
	Knowledge   string
	CurrentTime string
}

// SystemPrompt is the live system prompt of a conversation: ordered base
// sections plus training overrides keyed by trigger input. Overrides keep
// the position of their first insertion; a later directive for the same
// trigger replaces the reply in place.
type SystemPrompt struct {
	sections  []string
	overrides *orderedmap.OrderedMap[string, string]
}

// New creates a SystemPrompt from already-rendered base sections.
func New(sections ...string) *SystemPrompt {
	return &SystemPrompt{
		sections:  append([]string(nil), sections...),
		overrides: orderedmap.NewOrderedMap[string, string](),
	}
}

// Compose renders the base prompt for a business. The output depends only
// on its input, so identical input (including Now) yields identical text.
func Compose(in Input) (*SystemPrompt, error) {
	data := templateData{
		Name:        in.Profile.Name,
		Industry:    in.Profile.Industry,
		Description: in.Profile.Description,
		Knowledge:   knowledge(in.QAPairs, in.GenericAnswers),
		CurrentTime: in.Now.Format(time.RFC3339),
	}
	if c := in.Profile.Contact; c != nil {
		data.HasContact = true
		data.Email = c.Email
		if c.Phone != nil {
			data.Phone = *c.Phone
		}
		if c.Address != nil {
			data.Address = *c.Address
		}
	}

	names := []string{"identity"}
	if data.Knowledge != "" {
		names = append(names, "knowledge")
	}
	names = append(names, "policy")

	sections := make([]string, 0, len(names))
	for _, name := range names {
		var buf bytes.Buffer
		if err := systemPromptTmpl.ExecuteTemplate(&buf, name, data); err != nil {
			return nil, fmt.Errorf("rendering %s section: %w", name, err)
		}
		sections = append(sections, strings.TrimSpace(buf.String()))
	}

	return New(sections...), nil
}

func knowledge(pairs []domain.QAPair, generic string) string {
	var parts []string
	if qa := domain.FormatQAPairs(pairs); qa != "" {
		parts = append(parts, qa)
	}
	if generic = strings.TrimSpace(generic); generic != "" {
		parts = append(parts, generic)
	}
	return strings.Join(parts, "\n")
}

// Amend records a training directive. The trailer header is rendered once
// no matter how many directives exist.
func (p *SystemPrompt) Amend(d domain.TrainingDirective) {
	p.overrides.Set(d.TriggerInput, d.RequiredReply)
}

// Directives returns the active directives in the order they were first issued.
func (p *SystemPrompt) Directives() []domain.TrainingDirective {
	out := make([]domain.TrainingDirective, 0, p.overrides.Len())
	for trigger, reply := range p.overrides.AllFromFront() {
		out = append(out, domain.TrainingDirective{TriggerInput: trigger, RequiredReply: reply})
	}
	return out
}

// Render produces the text sent as the leading system message.
func (p *SystemPrompt) Render() string {
	var b strings.Builder
	b.WriteString(strings.Join(p.sections, "\n\n"))

	if p.overrides.Len() == 0 {
		return b.String()
	}

	b.WriteString("\n\n")
	b.WriteString(DirectiveHeader)
	b.WriteString(":")
	for _, d := range p.Directives() {
		b.WriteString("\n")
		b.WriteString(FormatDirective(d))
	}
	return b.String()
}

// FormatDirective renders one directive as a trailer line.
func FormatDirective(d domain.TrainingDirective) string {
	return fmt.Sprintf("- When a customer says \"%s\", reply with exactly: \"%s\"", d.TriggerInput, d.RequiredReply)
}
