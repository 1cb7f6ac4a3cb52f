package pipeline

import (
	"context"
	"time"

	"listingforge/internal/domain"
	"listingforge/internal/providers/copywriter"
)

const (
	defaultRetries    = 1
	defaultRetryDelay = 1 * time.Second
)

// generateOnce runs a single generation attempt and parses it. Provider
// errors are captured as data in RawResponse rather than returned: one
// group's failure must never interrupt the rest of the batch.
func (r *Runner) generateOnce(ctx context.Context, req copywriter.Request) domain.GenerationResult {
	resp, err := r.generator.Generate(ctx, req)
	raw := resp.Text
	if err != nil {
		raw = "GPT API Error: " + err.Error()
	}
	titles, description := ParseResponse(raw)
	return domain.GenerationResult{
		Titles:      titles,
		Description: description,
		RawResponse: raw,
	}
}

// generateWithRetry re-invokes generation up to the retry budget when the raw
// response is empty or carries the refusal marker, sleeping the fixed delay
// between attempts. The last attempt's result is returned regardless of
// quality; a degraded result is data, not an error.
func (r *Runner) generateWithRetry(ctx context.Context, req copywriter.Request) domain.GenerationResult {
	var result domain.GenerationResult
	for attempt := 0; attempt <= r.retries; attempt++ {
		result = r.generateOnce(ctx, req)
		if result.Accepted() {
			return result
		}
		if attempt < r.retries {
			r.sleep(r.retryDelay)
		}
	}
	return result
}
