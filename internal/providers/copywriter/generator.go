// Package copywriter holds the generative-service clients that turn a product
// prompt plus a representative image into marketplace listing copy.
package copywriter

import "context"

// Request is one generation call: the composed prompt and the group's
// representative image URL.
type Request struct {
	Prompt   string
	ImageURL string
}

// Response carries the raw text returned by the service, verbatim.
type Response struct {
	Text string
}

// Generator produces listing copy for a single product group.
type Generator interface {
	Generate(ctx context.Context, req Request) (Response, error)
}
