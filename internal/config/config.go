package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/careerbot/internal/domain"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".careerbot"
	envPrefix  = "CAREERBOT"
	dotEnvFile = ".env"
)

const (
	ProviderGroq      = "groq"
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"
	ProviderOffline   = "offline"

	IdentityLocal    = "local"
	IdentityFirebase = "firebase"

	HistorySQLite = "sqlite"
	HistoryNone   = "none"
)

const (
	keyModelProvider    = "model.provider"
	keyModelName        = "model.name"
	keyModelTemperature = "model.temperature"
	keyModelTopP        = "model.top_p"
	keyModelMaxTokens   = "model.max_tokens"
	keyModelStream      = "model.stream"
	keyModelBaseURL     = "model.base_url"
	keyIdentityBackend  = "identity.backend"
	keyIdentityUsers    = "identity.users_path"
	keyVerification     = "identity.verification_path"
	keyFirebaseAPIKey   = "firebase.api_key"
	keyFirebaseBaseURL  = "firebase.base_url"
	keyHistoryBackend   = "history.backend"
	keyHistoryPath      = "history.path"
	keyServerAddr       = "server.addr"
	keyServerSessions   = "server.max_sessions"
	keyServerSessionTTL = "server.session_ttl"
	keySecretsDir       = "secrets.dir"
)

// apiKeyEnv names the conventional environment variable per provider.
var apiKeyEnv = map[string]string{
	ProviderGroq:      "GROQ_API_KEY",
	ProviderOpenAI:    "OPENAI_API_KEY",
	ProviderAnthropic: "ANTHROPIC_API_KEY",
	ProviderGemini:    "GEMINI_API_KEY",
}

var defaultModels = map[string]string{
	ProviderGroq:      "llama-3.3-70b-versatile",
	ProviderOpenAI:    "gpt-4o-mini",
	ProviderAnthropic: "claude-3-5-haiku-latest",
	ProviderGemini:    "gemini-2.0-flash",
}

type Model struct {
	Provider    string
	Name        string
	Temperature float64
	TopP        float64
	MaxTokens   int
	Stream      bool
	BaseURL     string
}

// Sampling converts the model settings to the parameters sent on each turn.
func (m Model) Sampling() domain.SamplingParams {
	return domain.SamplingParams{
		Model:       m.Name,
		Temperature: m.Temperature,
		TopP:        m.TopP,
		MaxTokens:   m.MaxTokens,
		Stream:      m.Stream,
	}
}

// APIKeyEnv returns the environment variable holding the provider key.
func (m Model) APIKeyEnv() string {
	return apiKeyEnv[m.Provider]
}

type Identity struct {
	Backend          string
	UsersPath        string
	VerificationPath string
	FirebaseAPIKey   string
	FirebaseBaseURL  string
}

type History struct {
	Backend string
	Path    string
}

type Config struct {
	Model      Model
	Identity   Identity
	History    History
	ServerAddr string
	Sessions   Sessions
	SecretsDir string
}

// Sessions bounds the HTTP server's in-memory conversations.
type Sessions struct {
	Max int
	TTL time.Duration
}

// Load reads ~/.careerbot/config.toml, a .env file in the working directory
// and CAREERBOT_* environment variables, in increasing precedence.
func Load(v *viper.Viper) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}
	baseDir := filepath.Join(homeDir, configDir)

	if err := loadDotEnv(dotEnvFile); err != nil {
		return Config{}, err
	}

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(baseDir)
	setDefaults(v, baseDir)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := Config{
		Model: Model{
			Provider:    strings.ToLower(strings.TrimSpace(v.GetString(keyModelProvider))),
			Name:        strings.TrimSpace(v.GetString(keyModelName)),
			Temperature: v.GetFloat64(keyModelTemperature),
			TopP:        v.GetFloat64(keyModelTopP),
			MaxTokens:   v.GetInt(keyModelMaxTokens),
			Stream:      v.GetBool(keyModelStream),
			BaseURL:     strings.TrimSpace(v.GetString(keyModelBaseURL)),
		},
		Identity: Identity{
			Backend:          strings.ToLower(strings.TrimSpace(v.GetString(keyIdentityBackend))),
			UsersPath:        v.GetString(keyIdentityUsers),
			VerificationPath: v.GetString(keyVerification),
			FirebaseAPIKey:   v.GetString(keyFirebaseAPIKey),
			FirebaseBaseURL:  strings.TrimSpace(v.GetString(keyFirebaseBaseURL)),
		},
		History: History{
			Backend: strings.ToLower(strings.TrimSpace(v.GetString(keyHistoryBackend))),
			Path:    v.GetString(keyHistoryPath),
		},
		ServerAddr: v.GetString(keyServerAddr),
		Sessions: Sessions{
			Max: v.GetInt(keyServerSessions),
			TTL: v.GetDuration(keyServerSessionTTL),
		},
		SecretsDir: v.GetString(keySecretsDir),
	}
	if cfg.Model.Name == "" {
		cfg.Model.Name = defaultModels[cfg.Model.Provider]
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, baseDir string) {
	v.SetDefault(keyModelProvider, ProviderGroq)
	v.SetDefault(keyModelTemperature, 1.0)
	v.SetDefault(keyModelTopP, 1.0)
	v.SetDefault(keyModelMaxTokens, 1024)
	v.SetDefault(keyModelStream, true)
	v.SetDefault(keyModelBaseURL, "")
	v.SetDefault(keyIdentityBackend, IdentityLocal)
	v.SetDefault(keyIdentityUsers, filepath.Join(baseDir, "users.toml"))
	v.SetDefault(keyVerification, filepath.Join(baseDir, "verification.toml"))
	v.SetDefault(keyFirebaseAPIKey, "")
	v.SetDefault(keyFirebaseBaseURL, "")
	v.SetDefault(keyHistoryBackend, HistorySQLite)
	v.SetDefault(keyHistoryPath, filepath.Join(baseDir, "history.db"))
	v.SetDefault(keyServerAddr, "127.0.0.1:8080")
	v.SetDefault(keyServerSessions, 1000)
	v.SetDefault(keyServerSessionTTL, 30*time.Minute)
	v.SetDefault(keySecretsDir, filepath.Join(baseDir, "secrets"))
}

func (c Config) Validate() error {
	switch c.Model.Provider {
	case ProviderGroq, ProviderOpenAI, ProviderAnthropic, ProviderGemini, ProviderOffline:
	default:
		return fmt.Errorf("unsupported model provider %q", c.Model.Provider)
	}
	if c.Model.Provider != ProviderOffline && c.Model.Name == "" {
		return errors.New("model name is empty")
	}
	if c.Model.MaxTokens <= 0 {
		return fmt.Errorf("model max tokens must be positive, got %d", c.Model.MaxTokens)
	}
	if c.Model.Temperature < 0 || c.Model.Temperature > 2 {
		return fmt.Errorf("model temperature %.2f out of range [0, 2]", c.Model.Temperature)
	}
	if c.Model.TopP <= 0 || c.Model.TopP > 1 {
		return fmt.Errorf("model top_p %.2f out of range (0, 1]", c.Model.TopP)
	}

	switch c.Identity.Backend {
	case IdentityLocal:
		if c.Identity.UsersPath == "" {
			return errors.New("identity users path is empty")
		}
	case IdentityFirebase:
		if c.Identity.FirebaseAPIKey == "" {
			return errors.New("firebase api key is required for the firebase identity backend")
		}
	default:
		return fmt.Errorf("unsupported identity backend %q", c.Identity.Backend)
	}

	if c.Identity.VerificationPath == "" {
		return errors.New("identity verification path is empty")
	}
	if c.Sessions.Max <= 0 {
		return fmt.Errorf("server max sessions must be positive, got %d", c.Sessions.Max)
	}
	if c.Sessions.TTL <= 0 {
		return fmt.Errorf("server session ttl must be positive, got %s", c.Sessions.TTL)
	}

	switch c.History.Backend {
	case HistorySQLite:
		if c.History.Path == "" {
			return errors.New("history path is empty")
		}
	case HistoryNone:
	default:
		return fmt.Errorf("unsupported history backend %q", c.History.Backend)
	}

	return nil
}
