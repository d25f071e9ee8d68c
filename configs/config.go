package configs

import (
	"errors"
	"log"
	"os"
	"strings"
	"sync"

	"conversationLogger/internal/enums"

	"github.com/spf13/viper"
)

var (
	config *Config
	once   sync.Once
)

type Config struct {
	Viper *viper.Viper
}

func GetConfig() *Config {
	once.Do(func() {
		cfg, err := Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
		config = cfg
	})
	return config
}

// Load reads config.yaml from CONFIG_PATH (a file or a directory) or the working
// directory. A missing file is fine, defaults and CONVLOG_* env vars still apply.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			v.SetConfigFile(path)
		} else {
			v.AddConfigPath(path)
		}
	}
	v.AddConfigPath(".")

	v.SetEnvPrefix("CONVLOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	return &Config{Viper: v}, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8000)

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "user")
	v.SetDefault("database.password", "password")
	v.SetDefault("database.name", "botpress_logs")
	v.SetDefault("database.ssl", "disable")
	v.SetDefault("database.timezone", "UTC")

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.channel", "conversation_logs")

	v.SetDefault("minio.endpoint", "localhost:9000")
	v.SetDefault("minio.use_ssl", false)
	v.SetDefault("minio.bucket", enums.FILE_BUCKET_CONVERSATION_ARCHIVES)

	v.SetDefault("fetcher.scheme", "http")
	v.SetDefault("fetcher.host", "54.71.183.198")
	v.SetDefault("fetcher.port", 8000)
	v.SetDefault("fetcher.path", "/api/conversations")
	v.SetDefault("fetcher.timeout", "0s")

	v.SetDefault("log.level", "info")
}
