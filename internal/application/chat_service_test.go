package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bnema/careerbot/internal/domain"
	"github.com/bnema/careerbot/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

var testParams = domain.SamplingParams{
	Model:       "llama-3.3-70b-versatile",
	Temperature: 1,
	TopP:        1,
	MaxTokens:   1024,
	Stream:      true,
}

func newTestChatService(t *testing.T, model *mocks.MockModelProvider, history *mocks.MockHistoryStore, params domain.SamplingParams) *ChatService {
	t.Helper()

	clock := mocks.NewMockClock(t)
	clock.EXPECT().Now().Return(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)).Maybe()

	var service *ChatService
	switch {
	case model == nil && history == nil:
		service = NewChatService(nil, nil, params, clock, zaptest.NewLogger(t))
	case model == nil:
		service = NewChatService(nil, history, params, clock, zaptest.NewLogger(t))
	case history == nil:
		service = NewChatService(model, nil, params, clock, zaptest.NewLogger(t))
	default:
		service = NewChatService(model, history, params, clock, zaptest.NewLogger(t))
	}
	service.newID = func() string { return "session-1" }
	return service
}

func TestChatServiceNewConversationSeedsGreetingForGuest(t *testing.T) {
	t.Parallel()

	service := newTestChatService(t, nil, nil, testParams)

	conv, err := service.NewConversation(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, "session-1", conv.ID)
	assert.True(t, conv.IsGuest())
	transcript := conv.Transcript()
	require.Len(t, transcript, 1)
	assert.Equal(t, domain.RoleAssistant, transcript[0].Role)
	assert.Contains(t, transcript[0].Content, "growing industries")
}

func TestChatServiceNewConversationReplaysHistory(t *testing.T) {
	t.Parallel()

	history := mocks.NewMockHistoryStore(t)
	service := newTestChatService(t, nil, history, testParams)

	history.EXPECT().List(mock.Anything, domain.UserID("u-1")).Return([]domain.HistoryMessage{
		{Role: domain.RoleUser, Content: "I'm in 11th grade and want to be an engineer"},
		{Role: domain.RoleAssistant, Content: "Great choice."},
	}, nil).Once()

	conv, err := service.NewConversation(context.Background(), &domain.Identity{UserID: "u-1"})
	require.NoError(t, err)

	transcript := conv.Transcript()
	require.Len(t, transcript, 3)
	assert.Equal(t, "Great choice.", transcript[2].Content)
	assert.Equal(t, "11th", conv.Context().GradeLevel)
	assert.Equal(t, "engineer", conv.Context().CareerInterest)
}

func TestChatServiceNewConversationSurvivesHistoryFailure(t *testing.T) {
	t.Parallel()

	history := mocks.NewMockHistoryStore(t)
	service := newTestChatService(t, nil, history, testParams)

	history.EXPECT().List(mock.Anything, domain.UserID("u-1")).Return(nil, errors.New("disk gone")).Once()

	conv, err := service.NewConversation(context.Background(), &domain.Identity{UserID: "u-1"})
	require.Error(t, err)
	require.NotNil(t, conv)
	assert.Len(t, conv.Transcript(), 1)
	assert.Equal(t, domain.UserMessage(domain.CodeHistoryUnavailable), domain.Describe(err))
}

func TestChatServiceSendStreamsAndAccumulatesContext(t *testing.T) {
	t.Parallel()

	model := mocks.NewMockModelProvider(t)
	service := newTestChatService(t, model, nil, testParams)
	conv, err := service.NewConversation(context.Background(), nil)
	require.NoError(t, err)

	model.EXPECT().Stream(mock.Anything, mock.MatchedBy(func(req domain.CompletionRequest) bool {
		return req.Model == "llama-3.3-70b-versatile" &&
			req.Stream &&
			req.MaxTokens == 1024 &&
			len(req.Messages) == 2 &&
			req.Messages[1].Content == "I'm in 11th grade and did an internship"
	}), mock.Anything).RunAndReturn(func(_ context.Context, req domain.CompletionRequest, onDelta func(string)) error {
		assert.Contains(t, req.System, "- Grade level: 11th")
		assert.Contains(t, req.System, "- Activities: internship")
		onDelta("Internships ")
		onDelta("are great.")
		return nil
	}).Once()

	var deltas []string
	result, err := service.Send(context.Background(), conv, "  I'm in 11th grade and did an internship ", func(delta string) {
		deltas = append(deltas, delta)
	})
	require.NoError(t, err)

	assert.Equal(t, "Internships are great.", result.Reply.Content)
	assert.Equal(t, domain.RoleAssistant, result.Reply.Role)
	assert.Equal(t, 3, result.Reply.Seq)
	assert.Equal(t, []string{"Internships ", "are great."}, deltas)
	assert.Equal(t, "11th", result.Extracted.GradeLevel)
	assert.Equal(t, []string{"internship"}, result.Context.Activities)
	assert.Empty(t, result.Warnings)
}

func TestChatServiceSendCompletesWhenStreamingDisabled(t *testing.T) {
	t.Parallel()

	params := testParams
	params.Stream = false
	model := mocks.NewMockModelProvider(t)
	service := newTestChatService(t, model, nil, params)
	conv, err := service.NewConversation(context.Background(), nil)
	require.NoError(t, err)

	model.EXPECT().Complete(mock.Anything, mock.Anything).Return("Become a nurse.", nil).Once()

	result, err := service.Send(context.Background(), conv, "what about nursing?", nil)
	require.NoError(t, err)
	assert.Equal(t, "Become a nurse.", result.Reply.Content)
}

func TestChatServiceSendMapsModelFailure(t *testing.T) {
	t.Parallel()

	model := mocks.NewMockModelProvider(t)
	service := newTestChatService(t, model, nil, testParams)
	conv, err := service.NewConversation(context.Background(), nil)
	require.NoError(t, err)

	model.EXPECT().Stream(mock.Anything, mock.Anything, mock.Anything).Return(errors.New("503 overloaded")).Once()

	result, err := service.Send(context.Background(), conv, "I want to be a doctor", nil)
	require.Error(t, err)

	var serviceErr *domain.ServiceError
	require.ErrorAs(t, err, &serviceErr)
	assert.Equal(t, domain.ErrorKindExternal, serviceErr.Kind)
	assert.Equal(t, domain.CodeModelUnavailable, serviceErr.Code)
	assert.Equal(t, "doctor", result.Context.CareerInterest)

	_, hasReply := conv.LastReply()
	assert.True(t, hasReply, "greeting is still the last reply")
	assert.Len(t, conv.Transcript(), 2)
}

func TestChatServiceSendRejectsEmptyMessage(t *testing.T) {
	t.Parallel()

	service := newTestChatService(t, nil, nil, testParams)
	conv, err := service.NewConversation(context.Background(), nil)
	require.NoError(t, err)

	_, err = service.Send(context.Background(), conv, "   ", nil)
	require.ErrorIs(t, err, domain.ErrEmptyMessage)
	assert.Len(t, conv.Transcript(), 1)
}

func TestChatServiceSendOfflineUsesKeywordAdvisor(t *testing.T) {
	t.Parallel()

	service := newTestChatService(t, nil, nil, testParams)
	require.True(t, service.Offline())
	conv, err := service.NewConversation(context.Background(), nil)
	require.NoError(t, err)

	result, err := service.Send(context.Background(), conv, "I want to learn coding", nil)
	require.NoError(t, err)
	assert.Equal(t, "Have you considered learning programming languages like Python or Java?", result.Reply.Content)
}

func TestChatServiceSendPersistsForLoggedInUsers(t *testing.T) {
	t.Parallel()

	model := mocks.NewMockModelProvider(t)
	history := mocks.NewMockHistoryStore(t)
	service := newTestChatService(t, model, history, testParams)

	history.EXPECT().List(mock.Anything, domain.UserID("u-1")).Return(nil, nil).Once()
	conv, err := service.NewConversation(context.Background(), &domain.Identity{UserID: "u-1"})
	require.NoError(t, err)

	model.EXPECT().Stream(mock.Anything, mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, _ domain.CompletionRequest, onDelta func(string)) error {
		onDelta("Try tutoring.")
		return nil
	}).Once()
	history.EXPECT().Save(mock.Anything, domain.UserID("u-1"), mock.MatchedBy(func(m domain.HistoryMessage) bool {
		return m.Role == domain.RoleUser && m.Content == "hello" && !m.CreatedAt.IsZero()
	})).Return(nil).Once()
	history.EXPECT().Save(mock.Anything, domain.UserID("u-1"), mock.MatchedBy(func(m domain.HistoryMessage) bool {
		return m.Role == domain.RoleAssistant && m.Content == "Try tutoring."
	})).Return(errors.New("locked")).Once()

	result, err := service.Send(context.Background(), conv, "hello", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{domain.UserMessage(domain.CodeHistorySaveFailed)}, result.Warnings)
}

func TestChatServiceHistoryWithoutStore(t *testing.T) {
	t.Parallel()

	service := newTestChatService(t, nil, nil, testParams)

	messages, err := service.History(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Empty(t, messages)
}
