// Command batch runs the listing generation pipeline offline: a products CSV
// plus a category-prompts YAML file in, the merged output CSV out. It needs
// no database; only OPENAI_API_KEY must be set.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"listingforge/internal/domain"
	"listingforge/internal/export"
	"listingforge/internal/infra"
	"listingforge/internal/ingest"
	"listingforge/internal/pipeline"
	"listingforge/internal/providers/copywriter"
)

type promptsFile struct {
	Categories []domain.CategoryPrompt `yaml:"categories"`
}

func main() {
	var (
		inputPath   string
		outputPath  string
		promptsPath string
		category    string
		retries     int
	)

	cmd := &cobra.Command{
		Use:          "batch",
		Short:        "Generate marketplace listing copy for a products CSV",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load(".env", ".env.local")
			logger := infra.NewLogger(os.Getenv("APP_ENV"))

			template, err := loadTemplate(promptsPath, category)
			if err != nil {
				return err
			}

			in, err := os.Open(inputPath)
			if err != nil {
				return fmt.Errorf("open input: %w", err)
			}
			defer in.Close()

			rows, err := ingest.ReadProducts(in)
			if err != nil {
				return fmt.Errorf("read products: %w", err)
			}

			generator, err := copywriter.NewOpenAIGenerator(copywriter.OpenAIOptions{
				APIKey:  os.Getenv("OPENAI_API_KEY"),
				Model:   os.Getenv("OPENAI_MODEL"),
				BaseURL: os.Getenv("OPENAI_BASE_URL"),
			})
			if err != nil {
				return err
			}

			runner := pipeline.NewRunner(generator, logger, pipeline.Options{Retries: retries})
			result := runner.Run(cmd.Context(), rows, template)

			out, err := os.Create(outputPath)
			if err != nil {
				return fmt.Errorf("create output: %w", err)
			}
			defer out.Close()

			if err := export.WriteCSV(out, result.Rows); err != nil {
				return fmt.Errorf("write output: %w", err)
			}

			for _, report := range result.Reports {
				logger.Info().
					Str("brand", report.Brand).
					Str("name", report.Name).
					Str("status", string(report.Status)).
					Msg("group processed")
			}
			logger.Info().Int("rows", len(result.Rows)).Str("output", outputPath).Msg("done")
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "products CSV to process")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "gpt_preview.csv", "merged output CSV path")
	cmd.Flags().StringVarP(&promptsPath, "prompts", "p", "prompts.yaml", "category prompts YAML file")
	cmd.Flags().StringVarP(&category, "category", "c", "", "product category to generate for")
	cmd.Flags().IntVar(&retries, "retries", 1, "retry budget per group for empty or refused responses")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("category")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadTemplate(path, category string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read prompts file: %w", err)
	}
	var prompts promptsFile
	if err := yaml.Unmarshal(data, &prompts); err != nil {
		return "", fmt.Errorf("parse prompts file: %w", err)
	}
	want := strings.TrimSpace(category)
	for _, cat := range prompts.Categories {
		if strings.TrimSpace(cat.Name) == want {
			return cat.Template, nil
		}
	}
	return "", fmt.Errorf("category %q not found in %s", category, path)
}
