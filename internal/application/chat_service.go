package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/careerbot/internal/domain"
	"github.com/bnema/careerbot/internal/ports"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ChatService runs conversation turns. Without a model provider it answers
// from the keyword advisor; without a history store nothing is persisted.
type ChatService struct {
	model   ports.ModelProvider
	history ports.HistoryStore
	params  domain.SamplingParams
	clock   ports.Clock
	logger  *zap.Logger
	newID   func() string
}

func NewChatService(model ports.ModelProvider, history ports.HistoryStore, params domain.SamplingParams, clock ports.Clock, logger *zap.Logger) *ChatService {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &ChatService{
		model:   model,
		history: history,
		params:  params,
		clock:   clock,
		logger:  logger,
		newID:   func() string { return uuid.Must(uuid.NewV7()).String() },
	}
}

// Offline reports whether replies come from the keyword advisor.
func (s *ChatService) Offline() bool {
	return s.model == nil
}

// NewConversation starts a session seeded with the growing-industries
// greeting. For a logged-in identity the stored history is replayed, user
// messages included in context extraction. A history failure still returns
// a usable conversation together with a HISTORY_UNAVAILABLE error.
func (s *ChatService) NewConversation(ctx context.Context, identity *domain.Identity) (*domain.Conversation, error) {
	var userID domain.UserID
	if identity != nil {
		userID = identity.UserID
	}

	conv := domain.NewConversation(s.newID(), string(userID))
	conv.Append(domain.RoleAssistant, domain.IndustriesGreeting(domain.GrowingIndustries()))

	if conv.IsGuest() || s.history == nil {
		return conv, nil
	}

	messages, err := s.history.List(ctx, userID)
	if err != nil {
		s.logger.Warn("load chat history", zap.String("user_id", string(userID)), zap.Error(err))
		return conv, domain.NewExternalError(domain.CodeHistoryUnavailable, fmt.Errorf("list history: %w", err))
	}

	for _, message := range messages {
		if message.Role == domain.RoleUser {
			conv.Observe(message.Content)
			continue
		}
		conv.Append(message.Role, message.Content)
	}
	s.logger.Debug("history replayed",
		zap.String("session_id", conv.ID),
		zap.Int("messages", len(messages)))

	return conv, nil
}

// Send runs one turn: extract and merge context, record the user message,
// ask the model (or the keyword advisor) and record the reply. onDelta
// receives streamed fragments and may be nil. Model failures are returned as
// MODEL_UNAVAILABLE and are never retried; the conversation stays usable.
func (s *ChatService) Send(ctx context.Context, conv *domain.Conversation, text string, onDelta func(string)) (TurnResult, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return TurnResult{}, &domain.ServiceError{
			Kind:    domain.ErrorKindValidation,
			Message: domain.Describe(domain.ErrEmptyMessage),
			Err:     domain.ErrEmptyMessage,
		}
	}

	result := TurnResult{Extracted: conv.Observe(text)}
	s.logger.Debug("context extracted",
		zap.String("session_id", conv.ID),
		zap.String("grade_level", result.Extracted.GradeLevel),
		zap.String("career_interest", result.Extracted.CareerInterest),
		zap.Strings("activities", result.Extracted.Activities))

	if warning := s.persist(ctx, conv, domain.RoleUser, text); warning != "" {
		result.Warnings = append(result.Warnings, warning)
	}

	reply, err := s.reply(ctx, conv, text, onDelta)
	if err != nil {
		s.logger.Error("model call failed", zap.String("session_id", conv.ID), zap.Error(err))
		result.Context = conv.Context()
		return result, domain.NewExternalError(domain.CodeModelUnavailable, err)
	}

	result.Reply = conv.Append(domain.RoleAssistant, reply)
	result.Context = conv.Context()

	if warning := s.persist(ctx, conv, domain.RoleAssistant, reply); warning != "" {
		result.Warnings = append(result.Warnings, warning)
	}

	return result, nil
}

func (s *ChatService) reply(ctx context.Context, conv *domain.Conversation, text string, onDelta func(string)) (string, error) {
	if s.model == nil {
		advice := domain.Advise(text)
		if onDelta != nil {
			onDelta(advice)
		}
		return advice, nil
	}

	req := domain.NewCompletionRequest(conv.RenderPrompt(), s.params)
	if !req.Stream {
		reply, err := s.model.Complete(ctx, req)
		if err != nil {
			return "", fmt.Errorf("complete: %w", err)
		}
		if onDelta != nil {
			onDelta(reply)
		}
		return reply, nil
	}

	var reply strings.Builder
	err := s.model.Stream(ctx, req, func(delta string) {
		reply.WriteString(delta)
		if onDelta != nil {
			onDelta(delta)
		}
	})
	if err != nil {
		return "", fmt.Errorf("stream: %w", err)
	}

	return reply.String(), nil
}

// persist saves a message for logged-in users and returns a user-facing
// warning when that fails.
func (s *ChatService) persist(ctx context.Context, conv *domain.Conversation, role domain.Role, content string) string {
	if conv.IsGuest() || s.history == nil {
		return ""
	}

	err := s.history.Save(ctx, domain.UserID(conv.UserID), domain.HistoryMessage{
		Role:      role,
		Content:   content,
		CreatedAt: s.clock.Now(),
	})
	if err != nil {
		s.logger.Warn("save chat message",
			zap.String("session_id", conv.ID),
			zap.String("role", string(role)),
			zap.Error(err))
		return domain.UserMessage(domain.CodeHistorySaveFailed)
	}

	return ""
}

// History returns a user's stored messages.
func (s *ChatService) History(ctx context.Context, userID domain.UserID) ([]domain.HistoryMessage, error) {
	if s.history == nil {
		return nil, nil
	}

	messages, err := s.history.List(ctx, userID)
	if err != nil {
		return nil, domain.NewExternalError(domain.CodeHistoryUnavailable, fmt.Errorf("list history: %w", err))
	}

	return messages, nil
}
