package core

import (
	"log"
	"net/mail"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		AppName          string
		Env              string
		Build            string
		Debug            bool
		TestMode         bool
		WorkDir          string
		SecretKey        string
		DefaultFromEmail mail.Address
		SendgridAPIKey   string
		RollbarToken     string

		Server struct {
			Host               string
			DebugHost          string
			ShutdownTimeout    time.Duration
			ReadTimeout        time.Duration
			WriteTimeout       time.Duration
			JWTExpirationDelta time.Duration
			BodyLimit          string
			RateLimit          int // requests per RateLimitWindow and IP; 0 disables
			RateLimitWindow    time.Duration
			CORSOrigins        []string
		}

		Redis struct {
			Addr      string // empty disables the report cache
			Password  string
			DB        int
			ReportTTL time.Duration
		}

		Seed struct {
			Enabled           bool
			RandomSeed        int64
			AdminPasswordHash string
		}
	}
)

// NewConfig reads the configuration from defaults, config/.env.<env> and the environment, in that order.
func NewConfig() *Config {
	vpr := viper.New()

	// defaults
	vpr.SetTypeByDefaultValue(true)
	vpr.SetDefault("appName", "EAME")
	vpr.SetDefault("build", "dev")
	vpr.SetDefault("debug", true)
	vpr.SetDefault("testMode", false)
	vpr.SetDefault("secretKey", "eame_secret_key_2024")
	vpr.SetDefault("defaultFromEmail", "noreply@eame.mil.bo")
	vpr.SetDefault("sendgridApiKey", "")
	vpr.SetDefault("rollbarToken", "")
	vpr.SetDefault("server.host", ":3001")
	vpr.SetDefault("server.debugHost", ":4001")
	vpr.SetDefault("server.shutdownTimeout", 5*time.Second)
	vpr.SetDefault("server.readTimeout", 5*time.Second)
	vpr.SetDefault("server.writeTimeout", 5*time.Second)
	vpr.SetDefault("server.jwtExpirationDelta", 24*time.Hour)
	vpr.SetDefault("server.bodyLimit", "10M")
	vpr.SetDefault("server.rateLimit", 100)
	vpr.SetDefault("server.rateLimitWindow", 15*time.Minute)
	vpr.SetDefault("server.corsOrigins", []string{"*"})
	vpr.SetDefault("redis.addr", "")
	vpr.SetDefault("redis.password", "")
	vpr.SetDefault("redis.db", 0)
	vpr.SetDefault("redis.reportTTL", 5*time.Minute)
	vpr.SetDefault("seed.enabled", true)
	vpr.SetDefault("seed.randomSeed", int64(0))
	vpr.SetDefault("seed.adminPasswordHash", "")

	env := strings.ToUpper(os.Getenv("ENV")) // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		vpr.SetDefault("testMode", true)
		vpr.SetDefault("server.rateLimit", 0)
	}
	vpr.SetEnvPrefix(env)
	vpr.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	workDir := Getwd()

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(workDir, "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	vpr.AutomaticEnv()

	conf := &Config{
		AppName:        vpr.GetString("appName"),
		Env:            env,
		Build:          vpr.GetString("build"),
		Debug:          vpr.GetBool("debug"),
		TestMode:       vpr.GetBool("testMode"),
		WorkDir:        workDir,
		SecretKey:      vpr.GetString("secretKey"),
		SendgridAPIKey: vpr.GetString("sendgridApiKey"),
		RollbarToken:   vpr.GetString("rollbarToken"),
	}
	conf.DefaultFromEmail = mail.Address{Name: conf.AppName, Address: vpr.GetString("defaultFromEmail")}

	conf.Server.Host = vpr.GetString("server.host")
	conf.Server.DebugHost = vpr.GetString("server.debugHost")
	conf.Server.ShutdownTimeout = vpr.GetDuration("server.shutdownTimeout")
	conf.Server.ReadTimeout = vpr.GetDuration("server.readTimeout")
	conf.Server.WriteTimeout = vpr.GetDuration("server.writeTimeout")
	conf.Server.JWTExpirationDelta = vpr.GetDuration("server.jwtExpirationDelta")
	conf.Server.BodyLimit = vpr.GetString("server.bodyLimit")
	conf.Server.RateLimit = vpr.GetInt("server.rateLimit")
	conf.Server.RateLimitWindow = vpr.GetDuration("server.rateLimitWindow")
	conf.Server.CORSOrigins = vpr.GetStringSlice("server.corsOrigins")

	conf.Redis.Addr = vpr.GetString("redis.addr")
	conf.Redis.Password = vpr.GetString("redis.password")
	conf.Redis.DB = vpr.GetInt("redis.db")
	conf.Redis.ReportTTL = vpr.GetDuration("redis.reportTTL")

	conf.Seed.Enabled = vpr.GetBool("seed.enabled")
	conf.Seed.RandomSeed = vpr.GetInt64("seed.randomSeed")
	conf.Seed.AdminPasswordHash = vpr.GetString("seed.adminPasswordHash")

	return conf
}

// NewTestConfig returns the configuration used by tests: no seed, no rate limit, no request logs.
func NewTestConfig() *Config {
	conf := NewConfig()
	conf.Debug = false
	conf.TestMode = true
	conf.SecretKey = "test-secret"
	conf.Server.RateLimit = 0
	conf.Redis.Addr = ""
	conf.Seed.Enabled = false
	return conf
}
