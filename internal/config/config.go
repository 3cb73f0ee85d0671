package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration values.
type Config struct {
	// StrictStatusFlow enforces forward-only order status progression.
	// When false, staff may move an order to any non-terminal status,
	// which matches the historical tracker behaviour.
	StrictStatusFlow bool

	// Attachment size limits, in bytes.
	MaxImageAttachmentBytes int64
	MaxDocAttachmentBytes   int64
	MaxOrderScreenshotBytes int64

	// ProcessorEmail optionally pins which order processor receives
	// customer messages. Empty means the longest-serving processor.
	ProcessorEmail string
}

// Load reads environment variables and returns a populated Config.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		StrictStatusFlow:        getEnvBool("STRICT_STATUS_FLOW", false),
		MaxImageAttachmentBytes: getEnvBytes("MAX_IMAGE_ATTACHMENT_BYTES", 5*1024*1024),
		MaxDocAttachmentBytes:   getEnvBytes("MAX_DOC_ATTACHMENT_BYTES", 2*1024*1024),
		MaxOrderScreenshotBytes: getEnvBytes("MAX_ORDER_SCREENSHOT_BYTES", 40*1024),
		ProcessorEmail:          getEnv("PROCESSOR_EMAIL", ""),
	}

	if cfg.MaxImageAttachmentBytes <= 0 || cfg.MaxDocAttachmentBytes <= 0 || cfg.MaxOrderScreenshotBytes <= 0 {
		log.Fatal("attachment size limits must be positive")
	}

	return cfg
}

// Default returns the configuration used when no environment is present.
func Default() *Config {
	return &Config{
		MaxImageAttachmentBytes: 5 * 1024 * 1024,
		MaxDocAttachmentBytes:   2 * 1024 * 1024,
		MaxOrderScreenshotBytes: 40 * 1024,
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvBytes(key string, fallback int64) int64 {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			return parsed
		}
	}
	return fallback
}
