package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

// Config собирается один раз при старте и передается по ссылке
// компонентам, которым он нужен. После Load окружение больше не читается.
type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		Type string `yaml:"type"` // postgres | sqlite
		DSN  string `yaml:"dsn"`
	} `yaml:"database"`

	JWT struct {
		Secret     string `yaml:"secret"`
		TTLMinutes int    `yaml:"ttl_minutes"`
	} `yaml:"jwt"`

	OAuth struct {
		Google   OAuthProvider `yaml:"google"`
		LinkedIn OAuthProvider `yaml:"linkedin"`
	} `yaml:"oauth"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUser     string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		AdminEmail   string `yaml:"admin_email"`
	} `yaml:"email"`

	Frontend struct {
		URL string `yaml:"url"`
	} `yaml:"frontend"`
}

// OAuthProvider - креды одного идентити-провайдера.
// Провайдер считается выключенным, если ClientID или ClientSecret пусты.
type OAuthProvider struct {
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
	CallbackURL  string `yaml:"callback_url"`
}

func (p OAuthProvider) Enabled() bool {
	return p.ClientID != "" && p.ClientSecret != ""
}

// Load читает config.yaml (путь из CONFIG_PATH, файл необязателен),
// затем накладывает переменные окружения и подставляет значения
// по умолчанию.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	if f, err := os.Open(configPath); err == nil {
		defer f.Close()
		if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
		}
	}

	applyEnv(&cfg)
	applyDefaults(&cfg)

	if cfg.Database.Type != "postgres" && cfg.Database.Type != "sqlite" {
		return nil, fmt.Errorf("unsupported database type: %q", cfg.Database.Type)
	}

	return &cfg, nil
}

func applyEnv(cfg *Config) {
	setStr(&cfg.Server.Host, "SERVER_HOST")
	setInt(&cfg.Server.Port, "SERVER_PORT")
	setStr(&cfg.Server.Env, "SERVER_ENV")

	setStr(&cfg.Database.Type, "DB_TYPE")
	setStr(&cfg.Database.DSN, "DATABASE_URL")

	setStr(&cfg.JWT.Secret, "JWT_SECRET")

	setStr(&cfg.OAuth.Google.ClientID, "GOOGLE_CLIENT_ID")
	setStr(&cfg.OAuth.Google.ClientSecret, "GOOGLE_CLIENT_SECRET")
	setStr(&cfg.OAuth.Google.CallbackURL, "GOOGLE_CALLBACK_URL")
	setStr(&cfg.OAuth.LinkedIn.ClientID, "LINKEDIN_CLIENT_ID")
	setStr(&cfg.OAuth.LinkedIn.ClientSecret, "LINKEDIN_CLIENT_SECRET")
	setStr(&cfg.OAuth.LinkedIn.CallbackURL, "LINKEDIN_CALLBACK_URL")

	setStr(&cfg.Email.SMTPHost, "SMTP_HOST")
	setInt(&cfg.Email.SMTPPort, "SMTP_PORT")
	setStr(&cfg.Email.SMTPUser, "SMTP_USER")
	setStr(&cfg.Email.SMTPPassword, "SMTP_PASSWORD")
	setStr(&cfg.Email.FromEmail, "EMAIL_FROM")
	setStr(&cfg.Email.AdminEmail, "ADMIN_EMAIL")

	setStr(&cfg.Frontend.URL, "FRONTEND_URL")
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 3000
	}
	if cfg.Server.Env == "" {
		cfg.Server.Env = "development"
	}
	if cfg.Database.Type == "" {
		cfg.Database.Type = "sqlite"
	}
	if cfg.Database.DSN == "" {
		if cfg.Database.Type == "sqlite" {
			cfg.Database.DSN = "database.sqlite"
		} else {
			cfg.Database.DSN = "host=localhost port=5432 user=postgres password=postgrespassword dbname=render_agency sslmode=disable"
		}
	}
	if cfg.JWT.Secret == "" {
		cfg.JWT.Secret = "supersecret"
	}
	if cfg.JWT.TTLMinutes == 0 {
		cfg.JWT.TTLMinutes = 60
	}
	if cfg.OAuth.Google.CallbackURL == "" {
		cfg.OAuth.Google.CallbackURL = "http://localhost:3000/auth/google/callback"
	}
	if cfg.OAuth.LinkedIn.CallbackURL == "" {
		cfg.OAuth.LinkedIn.CallbackURL = "http://localhost:3000/auth/linkedin/callback"
	}
	if cfg.Frontend.URL == "" {
		cfg.Frontend.URL = "http://localhost:3001"
	}
}

func setStr(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

// IsProduction сообщает, работаем ли мы в продакшене.
// Влияет на формат логов и флаг Secure у auth-куки.
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}
