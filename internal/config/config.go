package config

import (
	"fmt"

	env "github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Cfg holds all runtime configuration loaded from environment variables.
type Cfg struct {
	// Server
	Port int `env:"PORT,default=8080" validate:"min=1,max=65535"`

	// Identity fields echoed on every successful classification response.
	UserName   string `env:"USER_NAME,default=john_doe" validate:"required"`
	UserEmail  string `env:"USER_EMAIL,default=john@xyz.com" validate:"required,email"`
	RollNumber string `env:"ROLL_NUMBER,default=ABCD123" validate:"required"`

	// SignPrivateKey enables response signing when set.
	// Hex secp256k1 private key, 0x prefix optional.
	SignPrivateKey string `env:"SIGN_PRIVATE_KEY"`

	// GenerateMaxCount caps the size of synthetic data sets served by
	// GET /bfhl/generate.
	GenerateMaxCount int `env:"GENERATE_MAX_COUNT,default=50" validate:"min=1"`
}

var validate = validator.New()

// Load reads .env (if present) then environment variables and returns Cfg.
func Load() (*Cfg, error) {
	// Best-effort: load .env from current directory
	_ = godotenv.Load()

	var cfg Cfg
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// ListenAddr returns the address to bind the HTTP server to.
func (c *Cfg) ListenAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}
