package main

import (
	"context"
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/charmbracelet/log"

	"github.com/go-scripts/scrapedeck/internal/api"
	"github.com/go-scripts/scrapedeck/internal/export"
	"github.com/go-scripts/scrapedeck/ui"
)

// runPlain scrapes one URL without the TUI: a wait spinner while the
// request is in flight, then the structured render printed to stdout.
func runPlain(config *Configuration, rawURL string, doExport bool) error {
	client := api.NewClient(config.ServerURL)

	sp := spinner.New(spinner.CharSets[9], 100*time.Millisecond)
	sp.Suffix = " scraping " + rawURL
	sp.Start()

	result, err := client.Submit(context.Background(), rawURL)
	sp.Stop()
	if err != nil {
		return err
	}

	printResult(result)

	if doExport {
		writer, err := export.NewWriter(config.OutputDir)
		if err != nil {
			return err
		}
		path, err := writer.Write(result)
		if err != nil {
			return err
		}
		log.Info("Exported result", "path", path)
	}
	return nil
}

func printResult(result *api.ScrapeResult) {
	fmt.Printf("\n%s\n", result.URL)
	if result.ScrapedAt != "" {
		fmt.Printf("scraped at %s\n", result.ScrapedAt)
	}
	fmt.Println()
	fmt.Println(ui.RenderMeta(result.Meta))

	if len(result.Sections) == 0 {
		fmt.Println("No sections extracted")
	}
	for _, sec := range result.Sections {
		label := sec.Label
		if label == "" {
			label = sec.ID
		}
		fmt.Printf("%s %s\n", ui.TypeBadge(sec.Type), label)
		fmt.Println(ui.RenderSection(sec, ui.ModeStructured, 100))
	}

	if result.Performance != nil {
		fmt.Println(ui.RenderPerformance(result.Performance))
	}
	fmt.Println(ui.RenderInteractions(result.Interactions))

	for _, e := range result.Errors {
		fmt.Printf("error [%s] %s\n", e.Phase, e.Message)
	}
	for _, w := range result.Warnings {
		fmt.Printf("warning: %s\n", w)
	}
}
