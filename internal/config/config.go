package config

// Config holds all application configuration, grouped by concern.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm"    validate:"required"`
	TTS    TTSConfig    `mapstructure:"tts"    validate:"required"`
}

// ServerConfig contains HTTP server and asset-hosting settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// BaseURL is the externally visible address used to build absolute
	// audio links. Defaults to the local loopback address when the
	// deployment environment does not provide one.
	BaseURL string `mapstructure:"base_url" validate:"required,url"`

	// StaticDir is where generated audio files are written; it is served
	// under the /static/ route. Created at startup if missing.
	StaticDir string `mapstructure:"static_dir" validate:"required"`
}

// LLMConfig contains the text-generation model settings, including the
// cardinalities the prompt asks for.
type LLMConfig struct {
	GeminiAPIKey          string `mapstructure:"gemini_api_key"          validate:"required"`
	ModelName             string `mapstructure:"model_name"              validate:"required"`
	SlideCount            int    `mapstructure:"slide_count"             validate:"required,gte=1,lte=12"`
	WordsPerSlide         int    `mapstructure:"words_per_slide"         validate:"required,gte=10,lte=200"`
	QuizQuestionCount     int    `mapstructure:"quiz_question_count"     validate:"required,gte=1,lte=50"`
	RequestTimeoutSeconds int    `mapstructure:"request_timeout_seconds" validate:"required,gt=0"`
}

// TTSConfig contains the speech-synthesis provider settings.
type TTSConfig struct {
	// ElevenLabsAPIKey is optional. When empty the premium provider is
	// skipped and every synthesis call goes straight to the fallback.
	ElevenLabsAPIKey  string `mapstructure:"eleven_labs_api_key"`
	ElevenLabsVoiceID string `mapstructure:"eleven_labs_voice_id" validate:"required"`
	ElevenLabsModelID string `mapstructure:"eleven_labs_model_id" validate:"required"`

	// Language is the tag passed to the fallback provider (e.g. "pt", "en").
	Language string `mapstructure:"language" validate:"required"`

	RequestTimeoutSeconds int `mapstructure:"request_timeout_seconds" validate:"required,gt=0"`

	// PacingMs is the fixed delay between successive synthesis calls
	// within one request; the first call is never delayed.
	PacingMs int `mapstructure:"pacing_ms" validate:"gte=0"`
}
