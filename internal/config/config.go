// internal/config/config.go
package config

import (
	"log"

	"github.com/spf13/viper"
)

type BucketConfig struct {
	Endpoint        string `mapstructure:"endpoint"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	Name            string `mapstructure:"name"`
	UseSSL          bool   `mapstructure:"use_ssl"`
}

type Config struct {
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	CORS struct {
		AllowedOrigins   []string `mapstructure:"allowed_origins"`
		AllowedMethods   []string `mapstructure:"allowed_methods"`
		AllowedHeaders   []string `mapstructure:"allowed_headers"`
		AllowCredentials bool     `mapstructure:"allow_credentials"`
		MaxAge           int      `mapstructure:"max_age"`
	} `mapstructure:"cors"`
	Bucket BucketConfig `mapstructure:"bucket"`
	Local  struct {
		// ローカル(ファイル)バックエンドの進捗ディレクトリ
		ProgressDir string `mapstructure:"progress_dir"`
	} `mapstructure:"local"`
}

var Cfg Config

func LoadConfig(path string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("APP")
	viper.AutomaticEnv()
	viper.BindEnv("bucket.endpoint", "BUCKET_ENDPOINT")
	viper.BindEnv("bucket.access_key_id", "BUCKET_ACCESS_KEY_ID")
	viper.BindEnv("bucket.secret_access_key", "BUCKET_SECRET_ACCESS_KEY")
	viper.BindEnv("bucket.name", "BUCKET_NAME")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	if err := viper.Unmarshal(&Cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	// --- デフォルト値の設定 ---
	if Cfg.Server.Port == "" {
		log.Println("Server port not set, using default ':8080'")
		Cfg.Server.Port = ":8080"
	}
	if Cfg.Log.Level == "" {
		Cfg.Log.Level = "info"
	}
	// CORSは未設定なら全許可 (既存クライアントのデプロイ形態に合わせる)
	if len(Cfg.CORS.AllowedOrigins) == 0 {
		Cfg.CORS.AllowedOrigins = []string{"*"}
	}
	if len(Cfg.CORS.AllowedMethods) == 0 {
		Cfg.CORS.AllowedMethods = []string{"GET", "POST", "OPTIONS"}
	}
	if len(Cfg.CORS.AllowedHeaders) == 0 {
		Cfg.CORS.AllowedHeaders = []string{"Content-Type"}
	}
	if Cfg.Local.ProgressDir == "" {
		Cfg.Local.ProgressDir = "data/qa-progress"
	}
	if Cfg.Bucket.Name == "" {
		log.Println("Warning: Bucket name is not set in config.")
	}

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Bucket: %s (endpoint: %s)", Cfg.Bucket.Name, Cfg.Bucket.Endpoint)

	return nil
}
