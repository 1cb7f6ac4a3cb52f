// Package storage stages product images for external hosting and derives the
// public URLs recorded against listings.
package storage

import (
	"context"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Uploader stages one image under a folder and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, folder, filename string, data []byte, contentType string) (string, error)
}

// FolderName derives the staging folder for a listing selection: each of
// category, name and colour word-capitalized with whitespace removed, joined
// by hyphens ("Rugs-Shaggy Rug-Deep Red" -> "Rugs-ShaggyRug-DeepRed").
func FolderName(category, name, colour string) string {
	return formatSegment(category) + "-" + formatSegment(name) + "-" + formatSegment(colour)
}

func formatSegment(text string) string {
	caser := cases.Title(language.Und)
	words := strings.Fields(text)
	for i, w := range words {
		words[i] = caser.String(strings.ToLower(w))
	}
	return strings.Join(words, "")
}
