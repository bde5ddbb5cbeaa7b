package main

import "os"

// Configuration holds the resolved settings for a run.
type Configuration struct {
	ServerURL string
	OutputDir string
	LogFile   string
	Debug     bool
}

// defaultConfig reads settings from the environment with sane defaults.
// CLI flags override these in main.
func defaultConfig() *Configuration {
	return &Configuration{
		ServerURL: envOr("SCRAPEDECK_SERVER", "http://localhost:8000"),
		OutputDir: envOr("SCRAPEDECK_OUTPUT", "exports"),
		LogFile:   os.Getenv("SCRAPEDECK_LOG_FILE"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
