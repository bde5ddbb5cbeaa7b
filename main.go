package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/go-scripts/scrapedeck/internal/api"
	"github.com/go-scripts/scrapedeck/internal/export"
)

// CLI flags structure
type CLIFlags struct {
	Server  string `help:"Scraper backend base URL" short:"s"`
	URL     string `help:"Scrape one URL and print the result without the TUI" short:"u"`
	Output  string `help:"Directory for exported JSON files" short:"o"`
	Export  bool   `help:"In one-shot mode, also export the result to a file"`
	Check   bool   `help:"Probe the backend health endpoint and exit"`
	Debug   bool   `help:"Enable debug logging" default:"false"`
	LogFile string `help:"Write logs to this file (keeps the TUI clean)"`
}

func main() {
	var flags CLIFlags
	kong.Parse(&flags,
		kong.Name("scrapedeck"),
		kong.Description("Terminal front-end for the website scraper backend."))

	config := defaultConfig()
	if flags.Server != "" {
		config.ServerURL = flags.Server
	}
	if flags.Output != "" {
		config.OutputDir = flags.Output
	}
	if flags.LogFile != "" {
		config.LogFile = flags.LogFile
	}
	config.Debug = flags.Debug

	closeLog, err := setupLogging(config, flags.URL != "" || flags.Check)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error setting up logging: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	if flags.Check {
		if err := runCheck(config); err != nil {
			log.Error("Backend unhealthy", "error", err)
			os.Exit(1)
		}
		return
	}

	if flags.URL != "" {
		if err := runPlain(config, flags.URL, flags.Export); err != nil {
			log.Error("Scrape failed", "error", err)
			os.Exit(1)
		}
		return
	}

	exporter, err := export.NewWriter(config.OutputDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error preparing output directory: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(newModel(config, exporter), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}

// setupLogging configures the global logger. In TUI mode stdout belongs to
// bubbletea, so logs go to a file or are discarded.
func setupLogging(config *Configuration, plainMode bool) (func(), error) {
	if config.Debug {
		log.SetLevel(log.DebugLevel)
	}

	if config.LogFile != "" {
		f, err := os.OpenFile(config.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, err
		}
		log.SetOutput(f)
		return func() { f.Close() }, nil
	}

	if !plainMode {
		devnull, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
		if err != nil {
			return nil, err
		}
		log.SetOutput(devnull)
		return func() { devnull.Close() }, nil
	}

	log.SetOutput(os.Stderr)
	return func() {}, nil
}

// runCheck probes GET /healthz and reports the backend state.
func runCheck(config *Configuration) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client := api.NewClient(config.ServerURL)
	status, err := client.Health(ctx)
	if err != nil {
		return err
	}

	log.Info("Backend healthy", "status", status.Status, "version", status.Version)
	for name, state := range status.Services {
		log.Info("Service", "name", name, "state", state)
	}
	return nil
}
