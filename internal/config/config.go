package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Registration service
	BaseURL     string
	Term        string
	HTTPTimeout time.Duration

	// Pipeline
	PageSize       int
	PageWorkers    int
	PrereqWorkers  int
	IncludePrereqs bool

	// Output
	OutDir  string
	RawFile string

	// Logging
	LogLevel  string
	LogFormat string

	// SFTP publish
	SFTPHost                  string
	SFTPPort                  int
	SFTPUser                  string
	SFTPPass                  string
	SFTPDir                   string
	SFTPInsecureIgnoreHostKey bool
}

func Load() Config {
	// .env is optional; real env always wins.
	_ = godotenv.Load()

	return Config{
		BaseURL:     getenv("REGISTRATION_BASE_URL", "https://registrationssb.ucr.edu"),
		Term:        getenv("TERM", "202440"),
		HTTPTimeout: getenvDuration("HTTP_TIMEOUT", 30*time.Second),

		PageSize:       getenvInt("PAGE_SIZE", 500),
		PageWorkers:    getenvInt("PAGE_WORKERS", 20),
		PrereqWorkers:  getenvInt("PREREQ_WORKERS", 20),
		IncludePrereqs: getenvBool("INCLUDE_PREREQS", true),

		OutDir:  getenv("OUT_DIR", "data/processed/subjects"),
		RawFile: getenv("RAW_FILE", "data/raw/course_catalog.json"),

		LogLevel:  getenv("LOG_LEVEL", "info"),
		LogFormat: getenv("LOG_FORMAT", "console"),

		SFTPHost:                  os.Getenv("SFTP_HOST"),
		SFTPPort:                  getenvInt("SFTP_PORT", 22),
		SFTPUser:                  os.Getenv("SFTP_USER"),
		SFTPPass:                  os.Getenv("SFTP_PASS"),
		SFTPDir:                   getenv("SFTP_DIR", "/"),
		SFTPInsecureIgnoreHostKey: getenvBool("SFTP_INSECURE_HOSTKEY", false),
	}
}

func getenv(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func getenvInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getenvBool(k string, def bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func getenvDuration(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
