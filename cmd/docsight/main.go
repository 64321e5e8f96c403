package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"docsight/internal/analyzer"
	"docsight/internal/config"
	"docsight/internal/knowledge"
	"docsight/internal/rank"
	"docsight/internal/reader"
	"docsight/internal/refine"
	"docsight/internal/storage"

	"github.com/spf13/cobra"
)

// maxDocuments caps how many PDFs one run processes.
const maxDocuments = 10

// timeBudget is observed informally; exceeding it warns, never fails.
const timeBudget = 60 * time.Second

var (
	rootCmd = &cobra.Command{
		Use:   "docsight",
		Short: "Persona-driven document intelligence",
	}
	inputDir   string
	outputDir  string
	configPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&inputDir, "input", "i", "input", "Directory containing the PDF collection")
	rootCmd.PersistentFlags().StringVarP(&outputDir, "output", "o", "output", "Directory for the analysis artifact")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "Path to the tool configuration file")

	rootCmd.AddCommand(analyzeCmd)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Extract, rank and summarize document sections for a persona",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runAnalyze(); err != nil {
			if errors.Is(err, context.Canceled) {
				fmt.Fprintln(os.Stderr, "Operation cancelled by user")
			} else {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			os.Exit(1)
		}
	},
}

func runAnalyze() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if _, err := os.Stat(inputDir); err != nil {
		return fmt.Errorf("input directory %s not found", inputDir)
	}

	q := config.LoadQuery(inputDir)
	fmt.Printf("Persona: %s\n", q.Persona)
	fmt.Printf("Job to be done: %s\n", q.JobToBeDone)

	paths, total, err := reader.FindPDFs(inputDir, maxDocuments)
	if err != nil {
		return fmt.Errorf("find documents: %w", err)
	}
	if total == 0 {
		return fmt.Errorf("no PDF files found in %s", inputDir)
	}
	if total > len(paths) {
		fmt.Printf("Warning: found %d PDFs, using first %d\n", total, len(paths))
	}
	fmt.Printf("Processing %d documents\n", len(paths))

	embedder, err := knowledge.NewEmbedder(ctx, knowledge.EmbedderOptions{
		Provider:  cfg.AI.Provider,
		APIKey:    cfg.AI.APIKey,
		Model:     cfg.AI.Model,
		Dimension: cfg.AI.Dimension,
		BaseURL:   cfg.AI.BaseURL,
	})
	if err != nil {
		return fmt.Errorf("create embedder: %w", err)
	}

	if cfg.Cache.Path != "" {
		store, err := storage.NewSQLiteStore(cfg.Cache.Path)
		if err != nil {
			log.Printf("embedding cache disabled: %v", err)
		} else {
			defer store.Close()
			embedder = knowledge.NewCachedEmbedder(embedder, store, cfg.AI.Model)
		}
	}

	summarizer, err := knowledge.NewSummarizer(ctx, knowledge.SummarizerOptions{
		Provider: cfg.AI.Provider,
		APIKey:   cfg.AI.APIKey,
		Model:    cfg.AI.SummaryModel,
		BaseURL:  cfg.AI.BaseURL,
	})
	if err != nil {
		return fmt.Errorf("create summarizer: %w", err)
	}

	a := analyzer.New(
		&reader.PDFReader{FallbackPdftotext: true},
		rank.NewRanker(embedder),
		refine.NewRefiner(summarizer),
	)

	start := time.Now()
	result, err := a.ProcessCollection(ctx, paths, q)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	outPath := filepath.Join(outputDir, "analysis.json")
	if err := analyzer.WriteResult(outPath, result); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	if elapsed > timeBudget {
		fmt.Printf("Warning: processing time %.2fs exceeded %s budget\n", elapsed.Seconds(), timeBudget)
	}
	fmt.Printf("Results saved to %s (%d ranked sections, %d analyses, %.2fs)\n",
		outPath, len(result.ExtractedSections), len(result.SubSectionAnalysis), elapsed.Seconds())
	return nil
}
