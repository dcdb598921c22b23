package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Log       LogConfig
	CORS      CORSConfig
	Generator GeneratorConfig
	Queue     QueueConfig
	Redis     RedisConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type LogConfig struct {
	Level string
}

type CORSConfig struct {
	AllowedOrigins []string
}

// GeneratorConfig controls the synthetic facilities returned for a location.
// RadiusDeg is in degrees; 0.045 is roughly 5 km.
type GeneratorConfig struct {
	Count       int
	RadiusDeg   float64
	UniformArea bool
	Seed        uint64
}

type QueueConfig struct {
	LowThreshold    int
	MediumThreshold int
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	DB       int
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "3000")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("GENERATOR_COUNT", 7)
	v.SetDefault("GENERATOR_RADIUS_DEG", 0.045)
	v.SetDefault("GENERATOR_UNIFORM_AREA", false)
	v.SetDefault("GENERATOR_SEED", 0)
	v.SetDefault("QUEUE_THRESHOLD_LOW", 3)
	v.SetDefault("QUEUE_THRESHOLD_MEDIUM", 6)
	v.SetDefault("REDIS_ENABLED", false)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
}

// LoadConfig reads an optional .env file, then the environment.
// Environment variables win over .env values.
func LoadConfig() (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Port: v.GetString("APP_PORT"),
			Env:  v.GetString("APP_ENV"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Generator: GeneratorConfig{
			Count:       v.GetInt("GENERATOR_COUNT"),
			RadiusDeg:   v.GetFloat64("GENERATOR_RADIUS_DEG"),
			UniformArea: v.GetBool("GENERATOR_UNIFORM_AREA"),
			Seed:        v.GetUint64("GENERATOR_SEED"),
		},
		Queue: QueueConfig{
			LowThreshold:    v.GetInt("QUEUE_THRESHOLD_LOW"),
			MediumThreshold: v.GetInt("QUEUE_THRESHOLD_MEDIUM"),
		},
		Redis: RedisConfig{
			Enabled:  v.GetBool("REDIS_ENABLED"),
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the values that would otherwise produce nonsense at runtime
func (c *Config) Validate() error {
	var errs []error
	if c.Generator.Count <= 0 {
		errs = append(errs, fmt.Errorf("GENERATOR_COUNT must be positive, got %d", c.Generator.Count))
	}
	if c.Generator.RadiusDeg <= 0 || math.IsInf(c.Generator.RadiusDeg, 0) || math.IsNaN(c.Generator.RadiusDeg) {
		errs = append(errs, fmt.Errorf("GENERATOR_RADIUS_DEG must be a positive number, got %v", c.Generator.RadiusDeg))
	}
	if c.Queue.LowThreshold < 0 || c.Queue.MediumThreshold <= c.Queue.LowThreshold {
		errs = append(errs, fmt.Errorf("queue thresholds must satisfy 0 <= low < medium, got low=%d medium=%d",
			c.Queue.LowThreshold, c.Queue.MediumThreshold))
	}
	return errors.Join(errs...)
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
