package shared

import (
	"encoding/json"
	"log"
	"os"

	"github.com/tailscale/hujson"
)

const (
	configVarName  = "POST_LATER_CONFIG"             // If set, will load config.json from this path and not from devConfigPath
	secretsVarName = "POST_LATER_SECRETS"            // If set, will load secrets.json from this path and not from devSecretsPath
	devConfigPath  = "../../dev/config.dev.jsonc"    // Path to config.json in development environment
	devSecretsPath = "../../dev/secrets.dev.jsonc"   // Path to secrets.json in development environment
)

type Config struct {
	Secrets              Secrets        `json:"-"`
	LogFile              string         `json:"log_file"`
	LogLevel             string         `json:"log_level"`
	ServicePort          uint           `json:"service_port"`
	Host                 string         `json:"host"`
	DbFile               string         `json:"db_file"`
	Media                MediaConfig    `json:"media"`
	Schedule             ScheduleConfig `json:"schedule"`
	Retry                RetryConfig    `json:"retry"`
	Provider             ProviderConfig `json:"provider"`
	BlockedInstancesFile string         `json:"blocked_instances_file"`
	ProfileDir           string         `json:"profile_dir"`
	ProfileKeepDays      int            `json:"profile_keep_days"`
}

type MediaConfig struct {
	Dir                 string `json:"dir"`
	MaxImageMb          int64  `json:"max_image_mb"`
	MaxVideoMb          int64  `json:"max_video_mb"`
	OrphanRetentionDays int    `json:"orphan_retention_days"`
}

type ScheduleConfig struct {
	TickSecs               int `json:"tick_secs"`
	MaxParallelSends       int `json:"max_parallel_sends"`
	JobLeaseSecs           int `json:"job_lease_secs"`
	MinSecsBetweenSends    int `json:"min_secs_between_sends"`
	SecsBetweenThreadPosts int `json:"secs_between_thread_posts"`
}

type RetryConfig struct {
	MaxRetries   int     `json:"max_retries"`
	BaseWaitSecs int     `json:"base_wait_secs"`
	MaxWaitSecs  int     `json:"max_wait_secs"`
	Jitter       float64 `json:"jitter"`
}

type ProviderConfig struct {
	ClientName  string   `json:"client_name"`
	Website     string   `json:"website"`
	Scopes      []string `json:"scopes"`
	TimeoutSecs int      `json:"timeout_secs"`
}

type Secrets struct {
	ApiKeys      []string `json:"api_keys"`
	MetricsAuth  string   `json:"metrics_auth"`
	TokenSealKey string   `json:"token_seal_key"`
	KeyStorePass string   `json:"key_store_passphrase"`
}

func LoadConfig() *Config {

	// Where are our config and secrets files?
	cfgPath := os.Getenv(configVarName)
	if len(cfgPath) == 0 {
		cfgPath = devConfigPath
	}
	secretsPath := os.Getenv(secretsVarName)
	if len(secretsPath) == 0 {
		secretsPath = devSecretsPath
	}

	// Read config file
	var config Config
	mustDeserializeFile(cfgPath, &config)
	// Read secrets member from secrets file
	mustDeserializeFile(secretsPath, &config.Secrets)
	applyDefaults(&config)
	return &config
}

// applyDefaults fills in the values that an abbreviated config file may omit.
func applyDefaults(cfg *Config) {
	if cfg.Media.MaxImageMb == 0 {
		cfg.Media.MaxImageMb = 8
	}
	if cfg.Media.MaxVideoMb == 0 {
		cfg.Media.MaxVideoMb = 40
	}
	if cfg.Media.OrphanRetentionDays == 0 {
		cfg.Media.OrphanRetentionDays = 7
	}
	if cfg.Schedule.TickSecs == 0 {
		cfg.Schedule.TickSecs = 60
	}
	if cfg.Schedule.MaxParallelSends == 0 {
		cfg.Schedule.MaxParallelSends = 4
	}
	if cfg.Schedule.JobLeaseSecs == 0 {
		cfg.Schedule.JobLeaseSecs = 4800
	}
	if cfg.Schedule.SecsBetweenThreadPosts == 0 {
		cfg.Schedule.SecsBetweenThreadPosts = 60
	}
	if cfg.Retry.MaxRetries == 0 {
		cfg.Retry.MaxRetries = 20
	}
	if cfg.Retry.BaseWaitSecs == 0 {
		cfg.Retry.BaseWaitSecs = 4800
	}
	if cfg.Retry.MaxWaitSecs == 0 {
		cfg.Retry.MaxWaitSecs = 86400
	}
	if cfg.Retry.Jitter == 0 {
		cfg.Retry.Jitter = 0.2
	}
	if cfg.Provider.ClientName == "" {
		cfg.Provider.ClientName = "Post Later"
	}
	if len(cfg.Provider.Scopes) == 0 {
		cfg.Provider.Scopes = []string{"read", "write"}
	}
	if cfg.Provider.TimeoutSecs == 0 {
		cfg.Provider.TimeoutSecs = 60
	}
	if cfg.ProfileKeepDays == 0 {
		cfg.ProfileKeepDays = 7
	}
}

func mustDeserializeFile[T any](fileName string, obj *T) {
	var err error
	var cfgJson []byte
	cfgJson, err = os.ReadFile(fileName)
	if err != nil {
		log.Fatal(err)
	}
	// JSONC => JSON
	cfgJson, err = standardizeJSON(cfgJson)
	if err != nil {
		log.Fatal(err)
	}
	// Parse
	if err := json.Unmarshal(cfgJson, obj); err != nil {
		log.Fatal(err)
	}
}

func standardizeJSON(b []byte) ([]byte, error) {
	ast, err := hujson.Parse(b)
	if err != nil {
		return b, err
	}
	ast.Standardize()
	return ast.Pack(), nil
}
