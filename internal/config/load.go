package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for all environment variables consumed by the
// service, e.g. SLIDECAST_LLM_GEMINI_API_KEY.
const EnvPrefix = "SLIDECAST"

// Load reads configuration from environment variables and an optional config
// file, applies defaults, and validates the result. Environment variables
// take precedence over file values. Returns a populated Config or an error
// if loading or validation fails. A missing Gemini API key is a validation
// failure and therefore fatal at startup.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	// Optional config file in the working directory.
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv does not pick up keys that are absent from both defaults
	// and the config file, so bind the credential keys explicitly.
	bindEnvs := []struct {
		key    string
		envVar string
	}{
		{"llm.gemini_api_key", EnvPrefix + "_LLM_GEMINI_API_KEY"},
		{"tts.eleven_labs_api_key", EnvPrefix + "_TTS_ELEVEN_LABS_API_KEY"},
		{"server.base_url", EnvPrefix + "_SERVER_BASE_URL"},
	}
	for _, env := range bindEnvs {
		if err := v.BindEnv(env.key, env.envVar); err != nil {
			return nil, fmt.Errorf("failed to bind env var %s: %w", env.envVar, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.base_url", "http://127.0.0.1:8080")
	v.SetDefault("server.static_dir", "static")

	v.SetDefault("llm.model_name", "gemini-2.0-flash")
	v.SetDefault("llm.slide_count", 5)
	v.SetDefault("llm.words_per_slide", 40)
	v.SetDefault("llm.quiz_question_count", 10)
	v.SetDefault("llm.request_timeout_seconds", 60)

	v.SetDefault("tts.eleven_labs_voice_id", "21m00Tcm4TlvDq8ikWAM")
	v.SetDefault("tts.eleven_labs_model_id", "eleven_multilingual_v2")
	v.SetDefault("tts.language", "pt")
	v.SetDefault("tts.request_timeout_seconds", 30)
	v.SetDefault("tts.pacing_ms", 500)
}
