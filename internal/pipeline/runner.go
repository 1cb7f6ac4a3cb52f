package pipeline

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"listingforge/internal/domain"
	"listingforge/internal/ingest"
	"listingforge/internal/providers/copywriter"
)

// Pacing delay inserted after every group, regardless of outcome, to stay
// inside the generation service's rate limits.
const defaultGroupDelay = 1500 * time.Millisecond

// SleepFunc is the blocking delay used between attempts and between groups.
// Tests inject a recording fake; production uses time.Sleep.
type SleepFunc func(time.Duration)

// Options tunes a Runner. Zero values fall back to the fixed defaults.
type Options struct {
	Retries    int
	RetryDelay time.Duration
	GroupDelay time.Duration
	Sleep      SleepFunc
}

// Runner drives the per-group generation loop: group, prompt, generate with
// retry, parse, fan out, merge. Groups are processed strictly one at a time.
type Runner struct {
	generator  copywriter.Generator
	logger     zerolog.Logger
	retries    int
	retryDelay time.Duration
	groupDelay time.Duration
	sleep      SleepFunc
}

// Result is the explicit output of one pipeline run. Nothing is retained
// across runs; the caller decides what to keep.
type Result struct {
	Rows    []domain.OutputRow   `json:"rows"`
	Reports []domain.GroupReport `json:"reports"`
}

// NewRunner builds a Runner around a generator.
func NewRunner(generator copywriter.Generator, logger zerolog.Logger, opts Options) *Runner {
	if opts.Retries <= 0 {
		opts.Retries = defaultRetries
	}
	if opts.RetryDelay <= 0 {
		opts.RetryDelay = defaultRetryDelay
	}
	if opts.GroupDelay <= 0 {
		opts.GroupDelay = defaultGroupDelay
	}
	if opts.Sleep == nil {
		opts.Sleep = time.Sleep
	}
	return &Runner{
		generator:  generator,
		logger:     logger,
		retries:    opts.Retries,
		retryDelay: opts.RetryDelay,
		groupDelay: opts.GroupDelay,
		sleep:      opts.Sleep,
	}
}

// Run executes the pipeline over normalized rows using the category's prompt
// template and returns the merged output table plus per-group reports.
func (r *Runner) Run(ctx context.Context, rows []domain.ProductRow, template string) Result {
	groups := ingest.GroupRows(rows)

	var generated []domain.OutputRow
	var reports []domain.GroupReport

	for _, group := range groups {
		r.sleep(r.groupDelay)

		imageURL := group.RepresentativeImage()
		if imageURL == "" {
			r.logger.Warn().
				Str("brand", group.Brand).
				Str("name", group.Name).
				Msg("group has no image, skipping generation")
			generated = append(generated, fanOut(group, domain.GenerationResult{}, domain.StatusSkippedNoImage)...)
			reports = append(reports, report(group, domain.GenerationResult{}, domain.StatusSkippedNoImage))
			continue
		}

		prompt := BuildPrompt(template, group)
		result := r.generateWithRetry(ctx, copywriter.Request{Prompt: prompt, ImageURL: imageURL})

		r.logger.Info().
			Str("brand", group.Brand).
			Str("name", group.Name).
			Int("rows", len(group.Rows)).
			Int("titles", len(result.Titles)).
			Msg("group generated")

		generated = append(generated, fanOut(group, result, domain.StatusGenerated)...)
		reports = append(reports, report(group, result, domain.StatusGenerated))
	}

	return Result{
		Rows:    Merge(rows, generated),
		Reports: reports,
	}
}

func report(group domain.ProductGroup, result domain.GenerationResult, status domain.Status) domain.GroupReport {
	rep := group.Representative()
	return domain.GroupReport{
		Brand:       group.Brand,
		Name:        group.Name,
		SKU:         rep.SKU,
		Status:      status,
		RawResponse: result.RawResponse,
	}
}
