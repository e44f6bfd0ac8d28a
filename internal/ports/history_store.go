package ports

import (
	"context"

	"github.com/bnema/careerbot/internal/domain"
)

type HistoryStore interface {
	Save(ctx context.Context, userID domain.UserID, message domain.HistoryMessage) error
	// List returns the user's messages oldest first.
	List(ctx context.Context, userID domain.UserID) ([]domain.HistoryMessage, error)
}
