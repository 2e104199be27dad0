package intelligence

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/frontdesk/internal/domain"
)

// MaxGeneratedQuestions is the cap the question prompt asks the model to respect.
// The parser does not truncate.
const MaxGeneratedQuestions = 15

const vaguenessSystemPrompt = `You review business descriptions written by business owners for a customer service assistant.
Answer with a single word: "yes" if the description is too vague or thin for an assistant to answer typical customer questions (services, prices, opening hours, bookings), or "no" if it is detailed enough.
Output ONLY yes or no.`

const questionsPromptTemplate = `You are a customer helper AI, designed to assist with customer service for a business named %s, in the industry %s. Your job is to learn and understand as much about this business as possible so that you can help its customers well. Big parts of this are learning what services the business provides, how its booking system (if any) works, how long services take, and how much they cost.

The business has provided this summary of itself: '%s'.
%s
Based on this, what specific questions do you want to ask the business so that you can help its customers at a better level? List the questions in order, one per line, without numbering ("1.", "2.", ...), each written like this: "- Question?". Ask at most %d questions, and cover essential information that has not been given yet before getting into other questions.`

const genericAnswersPreamble = `
The business also answered these general questions:
%s
Do not ask again about anything these answers already cover.
`

// GenericQuestions is the fixed battery put to the operator when the
// profile is judged vague, before any model-generated question.
var GenericQuestions = []string{
	"What products or services do you offer, and roughly what does each cost?",
	"What are your opening hours, including weekends and public holidays?",
	"Where are you located, and do you serve customers in person, online, or both?",
	"How do customers book an appointment or place an order, and how far ahead should they do it?",
	"What is your cancellation, refund or returns policy?",
	"Which payment methods do you accept?",
	"Who are your typical customers, and what do they ask about most often?",
	"Is there anything customers should know before their first visit or purchase?",
}

func buildVaguenessUserPrompt(profile domain.BusinessProfile) string {
	var b strings.Builder
	b.WriteString("Business name: ")
	b.WriteString(profile.Name)
	b.WriteString("\nIndustry: ")
	b.WriteString(profile.Industry)
	b.WriteString("\nDescription: ")
	b.WriteString(profile.Description)
	b.WriteString("\n\nIs this description too vague?")
	return b.String()
}

// buildQuestionsPrompt renders the question-generation prompt. The two
// variants differ only in whether the generic answers block is embedded.
func buildQuestionsPrompt(profile domain.BusinessProfile, genericAnswers string) string {
	generic := ""
	if strings.TrimSpace(genericAnswers) != "" {
		generic = fmt.Sprintf(genericAnswersPreamble, genericAnswers)
	}
	return fmt.Sprintf(questionsPromptTemplate,
		profile.Name, profile.Industry, profile.Description, generic, MaxGeneratedQuestions)
}
