package config

import (
	"fmt"
	"strings"

	"github.com/Veraticus/statement-roast/internal/common"
	"github.com/spf13/viper"
)

// Configuration keys.
const (
	KeyDatabasePath  = "database.path"
	KeySessionID     = "session.id"
	KeyTopAwards     = "display.top_awards"
	KeyLLMProvider   = "llm.provider"
	KeyLLMAPIKey     = "llm.api_key"
	KeyLLMModel      = "llm.model"
	KeyLLMBaseURL    = "llm.base_url"
	KeyLLMMaxRetries = "llm.max_retries"
	KeyLogLevel      = "logging.level"
	KeyLogFormat     = "logging.format"
)

// DefaultDatabasePath is where summaries live unless configured otherwise.
const DefaultDatabasePath = "~/.local/share/roast/roast.db"

// LLMSettings configures the document extraction client.
type LLMSettings struct {
	Provider   string
	APIKey     string
	Model      string
	BaseURL    string
	MaxRetries int
}

// Settings is the resolved application configuration.
type Settings struct {
	LLM          LLMSettings
	DatabasePath string
	SessionID    string
	LogLevel     string
	LogFormat    string
	TopAwards    int
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyDatabasePath, DefaultDatabasePath)
	v.SetDefault(KeySessionID, "default")
	v.SetDefault(KeyTopAwards, 4)
	v.SetDefault(KeyLLMProvider, "anthropic")
	v.SetDefault(KeyLLMMaxRetries, 3)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
}

// Load reads Settings from v and validates them. The Anthropic key falls
// back to ANTHROPIC_API_KEY when llm.api_key is unset.
func Load(v *viper.Viper) (Settings, error) {
	s := Settings{
		DatabasePath: ExpandPath(v.GetString(KeyDatabasePath)),
		SessionID:    strings.TrimSpace(v.GetString(KeySessionID)),
		TopAwards:    v.GetInt(KeyTopAwards),
		LogLevel:     v.GetString(KeyLogLevel),
		LogFormat:    v.GetString(KeyLogFormat),
		LLM: LLMSettings{
			Provider:   v.GetString(KeyLLMProvider),
			APIKey:     v.GetString(KeyLLMAPIKey),
			Model:      v.GetString(KeyLLMModel),
			BaseURL:    v.GetString(KeyLLMBaseURL),
			MaxRetries: v.GetInt(KeyLLMMaxRetries),
		},
	}

	if s.LLM.APIKey == "" {
		_ = v.BindEnv("anthropic_api_key", "ANTHROPIC_API_KEY")
		s.LLM.APIKey = v.GetString("anthropic_api_key")
	}

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate reports every invalid setting at once.
func (s Settings) Validate() error {
	var problems []string

	if s.DatabasePath == "" {
		problems = append(problems, "database.path cannot be empty")
	}
	if s.SessionID == "" {
		problems = append(problems, "session.id cannot be empty")
	}
	if s.TopAwards < 0 {
		problems = append(problems, fmt.Sprintf("display.top_awards must be >= 0, got %d", s.TopAwards))
	}
	if s.LLM.MaxRetries < 0 {
		problems = append(problems, fmt.Sprintf("llm.max_retries must be >= 0, got %d", s.LLM.MaxRetries))
	}
	if _, err := common.ParseLevel(s.LogLevel); err != nil {
		problems = append(problems, err.Error())
	}
	switch s.LogFormat {
	case "console", "json":
	default:
		problems = append(problems, fmt.Sprintf("invalid log format: %s", s.LogFormat))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", common.ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}
