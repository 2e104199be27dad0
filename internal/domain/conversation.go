package domain

// Role identifies who authored a conversation turn.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one role-tagged message in the replayed conversation history.
// Sentiment is only set on user turns.
type Turn struct {
	Role      Role
	Content   string
	Sentiment string
}

// LogEntry pairs a customer input with the reply that answered it. The
// conversation log is what training mode lists for correction.
type LogEntry struct {
	Input string
	Reply string
}

// TrainingDirective binds a verbatim customer input to the reply the
// operator wants for it from now on.
type TrainingDirective struct {
	TriggerInput  string
	RequiredReply string
}
