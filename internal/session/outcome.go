package session

import (
	"errors"

	"github.com/alexanderramin/frontdesk/internal/domain"
)

// ErrInvalidSelection is reported when a training-mode selection is not a
// number within the conversation log, or the replacement reply is empty.
var ErrInvalidSelection = errors.New("invalid training selection")

// OutcomeKind identifies what a submitted line did.
type OutcomeKind int

const (
	// OutcomeReply is an answered customer turn.
	OutcomeReply OutcomeKind = iota
	// OutcomeTrainingMenu lists the conversation log for selection.
	OutcomeTrainingMenu
	// OutcomeAwaitingReply means an entry was selected and the next line is its new reply.
	OutcomeAwaitingReply
	// OutcomeTrained means a directive was recorded.
	OutcomeTrained
	// OutcomeTrainingExit means training mode was left without changes.
	OutcomeTrainingExit
	// OutcomeInvalidSelection means the selection was rejected and nothing changed.
	OutcomeInvalidSelection
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeReply:
		return "reply"
	case OutcomeTrainingMenu:
		return "training_menu"
	case OutcomeAwaitingReply:
		return "awaiting_reply"
	case OutcomeTrained:
		return "trained"
	case OutcomeTrainingExit:
		return "training_exit"
	case OutcomeInvalidSelection:
		return "invalid_selection"
	default:
		return "unknown"
	}
}

// Outcome describes the effect of one submitted line. Only the fields
// relevant to Kind are set.
type Outcome struct {
	Kind OutcomeKind

	// OutcomeReply
	Reply     string
	Sentiment string

	// OutcomeTrainingMenu
	Log []domain.LogEntry

	// OutcomeAwaitingReply, OutcomeTrained
	Selection int // 1-based
	Entry     domain.LogEntry

	// OutcomeTrained
	Directive domain.TrainingDirective

	// OutcomeInvalidSelection
	Err error
}
