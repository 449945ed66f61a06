package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	App        `yaml:"app"`
	Logger     `yaml:"log"`
	HTTPServer `yaml:"http_server"`
	LLM        `yaml:"llm"`
	Sink       `yaml:"sink"`
	Kafka      `yaml:"kafka"`
}

type App struct {
	ServiceName string `env:"SERVICE_NAME" env-default:"actionlog" yaml:"service_name"`
	Version     string `env:"SERVICE_VERSION" env-default:"0.1.0" yaml:"version"`
}

type Logger struct {
	Level      string   `env:"LOG_LEVEL" env-default:"info" yaml:"level"`
	FormatJSON bool     `env:"LOG_FORMAT_JSON" env-default:"true" yaml:"format_json"`
	Rotation   Rotation `yaml:"rotation"`
}

type Rotation struct {
	File       string `env:"LOG_FILE" yaml:"file"`
	MaxSize    int    `env:"LOG_MAX_SIZE" env-default:"100" yaml:"max_size"`
	MaxBackups int    `env:"LOG_MAX_BACKUPS" env-default:"3" yaml:"max_backups"`
	MaxAge     int    `env:"LOG_MAX_AGE" env-default:"28" yaml:"max_age"`
}

type HTTPServer struct {
	Host    string  `env:"HTTP_HOST" yaml:"host"`
	Port    uint16  `env:"PORT" env-default:"3000" yaml:"port"`
	Timeout Timeout `yaml:"timeout"`
	CORS    CORS    `yaml:"cors"`
}

type Timeout struct {
	Request time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"25s" yaml:"request"`
	Read    time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"10s" yaml:"read"`
	Write   time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"30s" yaml:"write"`
	Idle    time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"60s" yaml:"idle"`
}

type CORS struct {
	Enabled          bool          `env:"CORS_ENABLED" yaml:"enabled"`
	AllowAllOrigins  bool          `env:"CORS_ALLOW_ALL_ORIGINS" yaml:"allow_all_origins"`
	AllowOrigins     []string      `env:"CORS_ALLOW_ORIGINS" yaml:"allow_origins"`
	AllowMethods     []string      `env:"CORS_ALLOW_METHODS" env-default:"GET,POST" yaml:"allow_methods"`
	AllowHeaders     []string      `env:"CORS_ALLOW_HEADERS" env-default:"Content-Type" yaml:"allow_headers"`
	ExposeHeaders    []string      `env:"CORS_EXPOSE_HEADERS" yaml:"expose_headers"`
	AllowCredentials bool          `env:"CORS_ALLOW_CREDENTIALS" yaml:"allow_credentials"`
	MaxAge           time.Duration `env:"CORS_MAX_AGE" env-default:"12h" yaml:"max_age"`
}

type LLM struct {
	APIKey      string        `env:"OPENAI_API_KEY" yaml:"api_key"`
	BaseURL     string        `env:"OPENAI_BASE_URL" yaml:"base_url"`
	Model       string        `env:"OPENAI_MODEL" env-default:"gpt-4o-mini" yaml:"model"`
	Temperature float64       `env:"LLM_TEMPERATURE" env-default:"0.3" yaml:"temperature"`
	MaxTokens   int64         `env:"LLM_MAX_TOKENS" env-default:"200" yaml:"max_tokens"`
	Timeout     time.Duration `env:"LLM_TIMEOUT" env-default:"20s" yaml:"timeout"`
}

type Sink struct {
	WebhookURL string        `env:"SHEET_WEBHOOK_URL" yaml:"webhook_url"`
	Timeout    time.Duration `env:"SINK_TIMEOUT" env-default:"10s" yaml:"timeout"`
}

type Kafka struct {
	Enabled bool     `env:"KAFKA_ENABLED" yaml:"enabled"`
	Brokers []string `env:"KAFKA_BROKERS" yaml:"brokers"`
	Topic   string   `env:"KAFKA_TOPIC" env-default:"action-items" yaml:"topic"`
}

func MustLoadConfig() *Config {
	cfg, err := LoadConfig()
	if err != nil {
		panic(err)
	}

	return cfg
}

// LoadConfig reads the YAML file named by -config / CONFIG_PATH when one is
// given; otherwise the whole configuration comes from the environment.
func LoadConfig() (*Config, error) {
	var config Config

	path := fetchConfigPath()
	if path == "" {
		if err := cleanenv.ReadEnv(&config); err != nil {
			return nil, fmt.Errorf("failed to read config from env: %w", err)
		}

		return &config, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", path)
	}

	if err := cleanenv.ReadConfig(path, &config); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return &config, nil
}

func MustPrintConfig(cfg *Config) {
	if err := PrintConfig(cfg); err != nil {
		panic(err)
	}
}

func PrintConfig(cfg *Config) error {
	printable := *cfg
	if printable.LLM.APIKey != "" {
		printable.LLM.APIKey = "***"
	}

	data, err := yaml.Marshal(printable)
	if err != nil {
		return err
	}

	println(string(data))

	return nil
}

func fetchConfigPath() string {
	var result string

	flag.StringVar(&result, "config", "", "Path to config file")
	flag.Parse()

	if result == "" {
		result = os.Getenv("CONFIG_PATH")
	}

	return result
}
