package main

import (
	"flag"
	"log"
	"os"
	"time"

	"gfg-scraper/config"
	"gfg-scraper/db"
	"gfg-scraper/fetcher"
	"gfg-scraper/models"
	"gfg-scraper/notify"
	"gfg-scraper/scraper"
	"gfg-scraper/sheets"
	"gfg-scraper/writer"
)

func main() {
	// Parse command line arguments
	url := flag.String("url", "", "Single topic URL to scrape (overrides the configured list)")
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	outputDir := flag.String("output", "", "Output directory for markdown files (overrides config)")
	history := flag.Bool("history", false, "Record scrape runs in Postgres (DATABASE_URL or DB_* env vars)")
	spreadsheetURL := flag.String("spreadsheet", "", "Google Sheets URL for the run summary (optional)")
	credentialsPath := flag.String("credentials", "", "Path to Google service account credentials JSON file (or use GOOGLE_SHEETS_CREDENTIALS env var)")
	flag.Parse()

	cfg := loadConfig(*configPath)

	urls := cfg.Scraper.URLs
	if *url != "" {
		urls = []string{*url}
	}
	if len(urls) == 0 {
		log.Fatalln("No topic URLs to scrape: provide -url or configure scraper.urls")
	}
	if *outputDir != "" {
		cfg.Scraper.OutputDir = *outputDir
	}

	opts := fetcher.Options{
		UserAgent: cfg.Scraper.UserAgent,
		Timeout:   time.Duration(cfg.Scraper.TimeoutSeconds) * time.Second,
		DelayMin:  time.Duration(cfg.Scraper.DelayMinSeconds * float64(time.Second)),
		DelayMax:  time.Duration(cfg.Scraper.DelayMaxSeconds * float64(time.Second)),
	}

	var pageFetcher fetcher.Fetcher
	switch cfg.Scraper.Fetcher {
	case "colly":
		pageFetcher = fetcher.NewCollyFetcher(opts)
	case "http":
		pageFetcher = fetcher.NewHTTPFetcher(opts)
	default:
		log.Fatalf("Unknown fetcher %q (expected \"colly\" or \"http\")\n", cfg.Scraper.Fetcher)
	}

	topicScraper, err := scraper.NewScraper(pageFetcher, cfg.Scraper.BaseURL)
	if err != nil {
		log.Fatalf("Failed to create scraper: %v\n", err)
	}

	fileWriter := writer.NewWriter(cfg.Scraper.OutputDir)

	results := scrapeAll(topicScraper, fileWriter, urls)

	saved, failed := 0, 0
	var files []string
	for _, r := range results {
		if r.Status == "saved" {
			saved++
			files = append(files, r.OutputFile)
		} else {
			failed++
		}
	}
	log.Printf("Run finished: %d topics saved, %d failed\n", saved, failed)

	recordHistory(*history, results, saved, failed)
	exportSummary(*spreadsheetURL, *credentialsPath, results)
	notifyCompletion(cfg, saved, failed, files)
}

// scrapeAll processes each topic URL in order. A failure on one URL is
// reported and the run continues with the next.
func scrapeAll(topicScraper *scraper.Scraper, fileWriter *writer.Writer, urls []string) []models.TopicResult {
	var results []models.TopicResult

	for _, topicURL := range urls {
		fragments, result, err := topicScraper.ScrapeTopic(topicURL)
		if err != nil {
			log.Printf("Failed to scrape content from %s: %v\n", topicURL, err)
			results = append(results, models.TopicResult{URL: topicURL, Status: "failed"})
			continue
		}

		path, err := fileWriter.Save(fragments, writer.FilenameFromURL(topicURL))
		if err != nil {
			log.Printf("Failed to save content for %s: %v\n", topicURL, err)
			result.Status = "failed"
		} else {
			result.Status = "saved"
			result.OutputFile = path
		}
		results = append(results, *result)
	}

	return results
}

// recordHistory persists run and topic rows to Postgres when enabled
func recordHistory(enabled bool, results []models.TopicResult, saved, failed int) {
	if !enabled {
		return
	}

	database, err := db.NewDB()
	if err != nil {
		log.Printf("Warning: Failed to connect to history database: %v\n", err)
		return
	}
	defer database.Close()

	runID, err := database.CreateRun()
	if err != nil {
		log.Printf("Warning: Failed to create run record: %v\n", err)
		return
	}

	for _, r := range results {
		if err := database.RecordTopic(runID, r); err != nil {
			log.Printf("Warning: Failed to record topic %s: %v\n", r.URL, err)
		}
	}
	if err := database.FinishRun(runID, saved, failed); err != nil {
		log.Printf("Warning: Failed to finish run record: %v\n", err)
	}
}

// exportSummary writes the run summary to Google Sheets when configured
func exportSummary(spreadsheetURL, credentialsPath string, results []models.TopicResult) {
	if spreadsheetURL == "" {
		return
	}

	spreadsheetID := sheets.ExtractSpreadsheetID(spreadsheetURL)
	if spreadsheetID == "" {
		log.Printf("Warning: Could not extract spreadsheet ID from URL: %s\n", spreadsheetURL)
		return
	}

	sheetWriter, err := sheets.NewWriter(spreadsheetID, credentialsPath)
	if err != nil {
		log.Printf("Warning: Failed to create sheets writer: %v\n", err)
		return
	}

	if err := sheetWriter.WriteRunSummary(results); err != nil {
		log.Printf("Warning: Failed to write run summary: %v\n", err)
	}
}

// notifyCompletion sends a Telegram summary when a bot token is configured
func notifyCompletion(cfg *config.ScraperConfig, saved, failed int, files []string) {
	if cfg.Telegram.BotToken == "" || cfg.Telegram.ChatID == 0 {
		return
	}

	notifier, err := notify.NewNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
	if err != nil {
		log.Printf("Warning: Failed to create notifier: %v\n", err)
		return
	}
	if err := notifier.RunComplete(saved, failed, files); err != nil {
		log.Printf("Warning: Failed to send notification: %v\n", err)
	}
}

// loadConfig loads configuration from file or returns defaults
func loadConfig(configPath string) *config.ScraperConfig {
	var cfg *config.ScraperConfig
	if _, err := os.Stat(configPath); err == nil {
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			log.Printf("Warning: Failed to load config file: %v. Using defaults.\n", err)
			cfg = config.GetDefaultConfig()
		}
	} else {
		log.Println("Config file not found. Using default configuration.")
		cfg = config.GetDefaultConfig()
	}
	return cfg
}
