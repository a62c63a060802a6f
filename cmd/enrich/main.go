// Package main provides the enrich command, a text enrichment pipeline
// combining extractive summarization, named-entity recognition, and
// sentiment analysis into JSON and HTML reports.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/hardiksingh171819/Text-Enrichment-Pipeline/internal/config"
	"github.com/hardiksingh171819/Text-Enrichment-Pipeline/internal/enrich"
	"github.com/hardiksingh171819/Text-Enrichment-Pipeline/internal/entities"
	"github.com/hardiksingh171819/Text-Enrichment-Pipeline/internal/input"
	"github.com/hardiksingh171819/Text-Enrichment-Pipeline/internal/logger"
	"github.com/hardiksingh171819/Text-Enrichment-Pipeline/internal/report"
	"github.com/hardiksingh171819/Text-Enrichment-Pipeline/internal/textstats"
)

type runOptions struct {
	inputPath    string
	outputPath   string
	configPath   string
	logLevel     string
	sentences    int
	sentencesSet bool
	noHTML       bool
}

func newRootCmd() *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:          "enrich",
		Short:        "Lightweight text enrichment pipeline",
		Long:         "Summarizes text, extracts named entities, and scores sentiment, writing the combined results as JSON and an HTML report.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.sentencesSet = cmd.Flags().Changed("sentences")

			return run(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.inputPath, "input", "i", "", "Input text file (optional, omit for interactive entry)")
	cmd.Flags().StringVarP(&opts.outputPath, "output", "o", "", "Explicit JSON output filename (default: timestamped)")
	cmd.Flags().IntVarP(&opts.sentences, "sentences", "s", config.DefaultSummarySentences, "Number of sentences for summary")
	cmd.Flags().BoolVar(&opts.noHTML, "no-html", false, "Skip HTML report")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "Path to YAML config file")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")

	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig merges the config file (or defaults) with CLI overrides.
func resolveConfig(opts *runOptions) (*config.Config, error) {
	cfg := config.Default()

	if opts.configPath != "" {
		loaded, err := config.LoadConfig(opts.configPath)
		if err != nil {
			return nil, err
		}

		cfg = loaded
	}

	if opts.sentencesSet || opts.configPath == "" {
		cfg.Pipeline.Summary.Sentences = opts.sentences
	}

	if opts.noHTML {
		cfg.Pipeline.Output.HTML = false
	}

	if opts.logLevel != "" {
		cfg.Pipeline.Logging.Level = opts.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func run(opts *runOptions) error {
	cfg, err := resolveConfig(opts)
	if err != nil {
		return err
	}

	log := logger.NewLogger(cfg.Pipeline.Logging.Level)

	log.Info("🚀 Starting text enrichment pipeline")

	startTime := time.Now()

	// 1. Input acquisition
	// --------------------
	log.Info("Phase 1: Input acquisition...")

	reader := input.NewReader()

	var text string

	if opts.inputPath != "" {
		content, size, readDuration, err := reader.ReadFileWithMetrics(opts.inputPath)
		if err != nil {
			log.Error(fmt.Sprintf("❌ Input failed: %v", err))

			return err
		}

		text = content

		log.Info(fmt.Sprintf("✅ Read %d bytes in %v", size, readDuration))
	} else {
		content, err := reader.ReadConsole()
		if err != nil {
			log.Error(fmt.Sprintf("❌ Input failed: %v", err))

			return err
		}

		text = content
	}

	stats := textstats.Compute(text)
	log.Info(fmt.Sprintf("ℹ️  Input: %d words, %d sentences", stats.Words, stats.Sentences))

	// 2. Model resolution
	// -------------------
	log.Info("Phase 2: Loading entity model...")

	store := entities.NewModelStore(cfg.Pipeline.Entities, log)

	model, err := store.Load()
	if err != nil {
		log.Error(fmt.Sprintf("❌ Model load failed: %v", err))

		return err
	}

	// 3. Enrichment
	// -------------
	log.Info("Phase 3: Enrichment...")

	enricher := enrich.NewEnricher(entities.NewExtractorWithModel(model), cfg.Pipeline.Summary.Sentences, log)

	result, err := enricher.Enrich(text)
	if err != nil {
		log.Error(fmt.Sprintf("❌ Enrichment failed: %v", err))

		return err
	}

	// 4. Output
	// ---------
	log.Info("Phase 4: Writing artifacts...")

	jsonPath, htmlPath := report.ArtifactNames(cfg.Pipeline.Output.Dir, opts.outputPath, startTime)

	if err := report.WriteJSON(result, jsonPath); err != nil {
		log.Error(fmt.Sprintf("❌ JSON write failed: %v", err))

		return err
	}

	log.Info(fmt.Sprintf("✅ JSON saved as %s", jsonPath))

	if !cfg.Pipeline.Output.HTML {
		htmlPath = ""
	} else {
		if err := report.WriteHTML(result, stats, htmlPath); err != nil {
			log.Error(fmt.Sprintf("❌ HTML write failed: %v", err))

			return err
		}

		log.Info(fmt.Sprintf("✅ HTML report saved as %s", htmlPath))
	}

	// 5. Final report
	// ---------------
	log.Info("✨ Pipeline complete!")
	report.PrintRunReport(os.Stdout, result, stats, jsonPath, htmlPath, time.Since(startTime))

	return nil
}
