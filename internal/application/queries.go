package application

import "github.com/bnema/careerbot/internal/domain"

// TurnResult describes one completed (or failed) conversation turn.
type TurnResult struct {
	Reply     domain.Utterance
	Extracted domain.ContextAttributes
	Context   domain.ContextAttributes
	// Warnings are non-fatal user-facing messages, e.g. a history save
	// that failed.
	Warnings []string
}

// Outcome mirrors the (success, message) pair shown after account actions.
type Outcome struct {
	OK      bool
	Message string
}

func failure(err error) Outcome {
	return Outcome{OK: false, Message: domain.Describe(err)}
}
