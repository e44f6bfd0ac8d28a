package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/anthropics/anthropic-sdk-go/option"
	historysqlite "github.com/bnema/careerbot/internal/adapters/history/sqlite"
	"github.com/bnema/careerbot/internal/adapters/identity/firebase"
	"github.com/bnema/careerbot/internal/adapters/identity/local"
	anthropicmodel "github.com/bnema/careerbot/internal/adapters/model/anthropic"
	geminimodel "github.com/bnema/careerbot/internal/adapters/model/gemini"
	openaimodel "github.com/bnema/careerbot/internal/adapters/model/openai"
	chatrender "github.com/bnema/careerbot/internal/adapters/render/chat"
	chainstore "github.com/bnema/careerbot/internal/adapters/secrets/chain"
	verificationfile "github.com/bnema/careerbot/internal/adapters/verification/file"
	"github.com/bnema/careerbot/internal/application"
	"github.com/bnema/careerbot/internal/config"
	"github.com/bnema/careerbot/internal/domain"
	"github.com/bnema/careerbot/internal/ports"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type app struct {
	cfg         config.Config
	logger      *zap.Logger
	secretStore ports.SecretStore
	identity    ports.IdentityProvider
	accounts    *application.AccountService
	httpClient  *http.Client
	clock       ports.Clock
}

func (a *app) wire() error {
	if a.logger == nil {
		a.logger = zap.NewNop()
	}

	cfg, err := config.Load(viper.New())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	a.cfg = cfg
	a.clock = ports.SystemClock{}
	a.httpClient = http.DefaultClient

	secretStore, err := chainstore.NewPassFirstWithFileFallback(cfg.SecretsDir)
	if err != nil {
		return fmt.Errorf("wire secret store chain: %w", err)
	}
	a.secretStore = secretStore

	identity, err := a.newIdentityProvider()
	if err != nil {
		return fmt.Errorf("wire identity provider: %w", err)
	}
	a.identity = identity

	attempts, err := verificationfile.NewStore(cfg.Identity.VerificationPath)
	if err != nil {
		return fmt.Errorf("wire verification store: %w", err)
	}
	tracker := application.NewVerificationTracker(a.clock, attempts)
	a.accounts = application.NewAccountService(identity, tracker, a.logger.Named("accounts"))

	a.logger.Debug("configuration loaded",
		zap.String("model_provider", cfg.Model.Provider),
		zap.String("model", cfg.Model.Name),
		zap.String("identity_backend", cfg.Identity.Backend),
		zap.String("history_backend", cfg.History.Backend))

	return nil
}

func (a *app) close() {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

func (a *app) newIdentityProvider() (ports.IdentityProvider, error) {
	switch a.cfg.Identity.Backend {
	case config.IdentityFirebase:
		return &firebase.Client{
			APIKey:     a.cfg.Identity.FirebaseAPIKey,
			BaseURL:    a.cfg.Identity.FirebaseBaseURL,
			HTTPClient: a.httpClient,
		}, nil
	default:
		return local.NewStore(a.cfg.Identity.UsersPath, a.clock)
	}
}

// newChatService builds the chat service with the configured model and
// history store. The returned cleanup closes the history database.
func (a *app) newChatService(ctx context.Context) (*application.ChatService, func(), error) {
	model, err := a.newModelProvider(ctx)
	if err != nil {
		return nil, nil, err
	}

	history, cleanup, err := a.openHistory()
	if err != nil {
		return nil, nil, err
	}

	service := application.NewChatService(model, history, a.cfg.Model.Sampling(), a.clock, a.logger.Named("chat"))
	return service, cleanup, nil
}

// openHistory returns a nil interface when history is disabled.
func (a *app) openHistory() (ports.HistoryStore, func(), error) {
	if a.cfg.History.Backend == config.HistoryNone {
		return nil, func() {}, nil
	}

	store, err := historysqlite.Open(a.cfg.History.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("open chat history: %w", err)
	}

	return store, func() {
		if err := store.Close(); err != nil {
			a.logger.Warn("close chat history", zap.Error(err))
		}
	}, nil
}

// newModelProvider returns nil for the offline provider.
func (a *app) newModelProvider(ctx context.Context) (ports.ModelProvider, error) {
	model := a.cfg.Model
	if model.Provider == config.ProviderOffline {
		return nil, nil
	}

	apiKey, err := a.resolveAPIKey(ctx, model)
	if err != nil {
		return nil, err
	}

	switch model.Provider {
	case config.ProviderGroq, config.ProviderOpenAI:
		baseURL := model.BaseURL
		if baseURL == "" && model.Provider == config.ProviderOpenAI {
			baseURL = openaimodel.OpenAIBaseURL
		}
		return &openaimodel.Provider{BaseURL: baseURL, APIKey: apiKey, HTTPClient: a.httpClient}, nil
	case config.ProviderAnthropic:
		var opts []option.RequestOption
		if model.BaseURL != "" {
			opts = append(opts, option.WithBaseURL(model.BaseURL))
		}
		return anthropicmodel.New(apiKey, opts...), nil
	case config.ProviderGemini:
		provider, err := geminimodel.New(ctx, geminimodel.Options{
			APIKey:     apiKey,
			BaseURL:    model.BaseURL,
			HTTPClient: a.httpClient,
		})
		if err != nil {
			return nil, fmt.Errorf("create gemini client: %w", err)
		}
		return provider, nil
	default:
		return nil, fmt.Errorf("unsupported model provider %q", model.Provider)
	}
}

// resolveAPIKey prefers the provider's environment variable and falls back
// to the secret store.
func (a *app) resolveAPIKey(ctx context.Context, model config.Model) (string, error) {
	envName := model.APIKeyEnv()
	if value := strings.TrimSpace(os.Getenv(envName)); value != "" {
		return value, nil
	}

	value, err := a.secretStore.Get(ctx, ports.APIKeyRef(model.Provider))
	if err == nil && value != "" {
		return value, nil
	}
	if err != nil && !errors.Is(err, domain.ErrSecretNotFound) {
		a.logger.Warn("read api key from secret store", zap.String("provider", model.Provider), zap.Error(err))
	}

	return "", fmt.Errorf("no API key for %s: set %s or run `careerbot key set %s`", model.Provider, envName, model.Provider)
}

func (a *app) newRenderer(plain bool) (*chatrender.Renderer, error) {
	return chatrender.NewRenderer(chatrender.Options{Plain: plain})
}
