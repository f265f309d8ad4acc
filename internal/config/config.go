package config

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

// Resolver policies and trigger policies for alert notifications.
// The defaults mirror the documented behavior: notify every community
// member on any public alert.
const (
	ResolverMembership = "membership"
	ResolverRadius     = "radius"

	TriggerAllPublic    = "all_public"
	TriggerHighSeverity = "high_severity"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"dsn"`
	} `yaml:"database"`

	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
	} `yaml:"email"`

	Push struct {
		FCMServerKey   string `yaml:"fcm_server_key"`
		Endpoint       string `yaml:"endpoint"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
		TTLHours       int    `yaml:"ttl_hours"`
	} `yaml:"push"`

	JWT struct {
		Secret string `yaml:"secret"`
		TTL    int    `yaml:"ttl"` // hours
	} `yaml:"jwt"`

	Notify struct {
		Resolver    string  `yaml:"resolver"`      // membership | radius
		Trigger     string  `yaml:"trigger"`       // all_public | high_severity
		MaxRadiusKm float64 `yaml:"max_radius_km"` // system-wide cap on user radii
		BaseURL     string  `yaml:"base_url"`      // used in notification links
	} `yaml:"notify"`
}

var AppConfig *Config

// LoadConfig reads config.yaml (path from CONFIG_PATH) and then lets
// environment variables override the values that matter in deployment.
func LoadConfig() {
	var cfg Config

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	if f, err := os.Open(configPath); err == nil {
		if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file %s: %v", configPath, err)
		}
		f.Close()
	}

	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Database.DSN = v
	}
	if v := os.Getenv("SERVER_ENV"); v != "" {
		cfg.Server.Env = v
	}
	if v := os.Getenv("SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.JWT.Secret = v
	}
	if v := os.Getenv("SMTP_HOST"); v != "" {
		cfg.Email.SMTPHost = v
	}
	if v := os.Getenv("SMTP_PASSWORD"); v != "" {
		cfg.Email.SMTPPassword = v
	}
	if v := os.Getenv("FCM_SERVER_KEY"); v != "" {
		cfg.Push.FCMServerKey = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}

	applyDefaults(&cfg)
	AppConfig = &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 4000
	}
	if cfg.Server.Env == "" {
		cfg.Server.Env = "development"
	}
	if cfg.JWT.TTL == 0 {
		cfg.JWT.TTL = 24
	}
	if cfg.Push.TimeoutSeconds == 0 {
		cfg.Push.TimeoutSeconds = 10
	}
	if cfg.Push.TTLHours == 0 {
		cfg.Push.TTLHours = 24
	}
	if cfg.Notify.Resolver == "" {
		cfg.Notify.Resolver = ResolverMembership
	}
	if cfg.Notify.Trigger == "" {
		cfg.Notify.Trigger = TriggerAllPublic
	}
	if cfg.Notify.MaxRadiusKm == 0 {
		cfg.Notify.MaxRadiusKm = 10
	}
	if cfg.Notify.BaseURL == "" {
		cfg.Notify.BaseURL = "http://localhost:4000"
	}
}
