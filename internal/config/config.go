package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	LogLevel string

	// Collector selects where documents come from: "imap" or "localdir".
	Collector string

	IMAPAddr             string
	IMAPUsername         string
	IMAPPassword         string
	IMAPMailbox          string
	IMAPLookbackHours    int
	AttachmentExtensions string
	AttachmentSkipWords  string

	// Resume keyword lists gating mail attachments; empty values fall back
	// to the collector's built-in lists.
	AttachmentNameKeywords string
	SubjectKeywords        string
	BodyKeywords           string

	DropDir     string
	StoragePath string

	// Store selects the record backend: "excel" or "postgres".
	Store          string
	ExcelPath      string
	DetailsPath    string
	PostgresDSN    string
	VocabularyPath string

	ParserURL     string
	ParserTimeout time.Duration
	ParserRPS     float64

	NATSURL     string
	NATSSubject string

	MetricsPort   string
	CycleInterval time.Duration
	RunOnce       bool
}

func Load() Config {
	return Config{
		LogLevel: mustEnv("LOG_LEVEL", "info"),

		Collector: mustEnv("COLLECTOR", "imap"),

		IMAPAddr:             mustEnv("IMAP_ADDR", "imap.gmail.com:993"),
		IMAPUsername:         mustEnv("IMAP_USERNAME", ""),
		IMAPPassword:         mustEnv("IMAP_PASSWORD", ""),
		IMAPMailbox:          mustEnv("IMAP_MAILBOX", "INBOX"),
		IMAPLookbackHours:    mustEnvInt("IMAP_LOOKBACK_HOURS", 24),
		AttachmentExtensions: mustEnv("ATTACHMENT_EXTENSIONS", ".pdf,.docx"),
		AttachmentSkipWords:  mustEnv("ATTACHMENT_SKIP_WORDS", "jd,job description"),

		AttachmentNameKeywords: mustEnv("ATTACHMENT_NAME_KEYWORDS", ""),
		SubjectKeywords:        mustEnv("SUBJECT_KEYWORDS", ""),
		BodyKeywords:           mustEnv("BODY_KEYWORDS", ""),

		DropDir:     mustEnv("DROP_DIR", "./data/drop"),
		StoragePath: mustEnv("STORAGE_PATH", "./data/resumes"),

		Store:          mustEnv("STORE", "excel"),
		ExcelPath:      mustEnv("EXCEL_PATH", "./data/candidates.xlsx"),
		DetailsPath:    mustEnv("DETAILS_PATH", ""),
		PostgresDSN:    mustEnv("POSTGRES_DSN", ""),
		VocabularyPath: mustEnv("VOCABULARY_PATH", ""),

		ParserURL:     mustEnv("PARSER_URL", ""),
		ParserTimeout: time.Duration(mustEnvInt("PARSER_TIMEOUT_SECONDS", 30)) * time.Second,
		ParserRPS:     mustEnvFloat("PARSER_RPS", 2),

		NATSURL:     mustEnv("NATS_URL", ""),
		NATSSubject: mustEnv("NATS_SUBJECT", "intake.batch.processed"),

		MetricsPort:   mustEnv("METRICS_PORT", "9090"),
		CycleInterval: time.Duration(mustEnvInt("CYCLE_INTERVAL_MINUTES", 30)) * time.Minute,
		RunOnce:       mustEnvBool("RUN_ONCE", false),
	}
}

func mustEnv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func mustEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func mustEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

func mustEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}
