// Package storage abstracts document uploads for onboarding flows. There is
// no real upload pipeline; Placeholder stands in until one exists.
package storage

import (
	"context"
	"strings"
)

// Uploader stores a document and returns a serveable URL.
type Uploader interface {
	Upload(ctx context.Context, filename string, content []byte) (string, error)
}

// Placeholder returns deterministic URLs without persisting anything.
type Placeholder struct {
	BaseURL string
}

func NewPlaceholder(baseURL string) *Placeholder {
	return &Placeholder{BaseURL: strings.TrimSuffix(baseURL, "/")}
}

func (p *Placeholder) Upload(_ context.Context, filename string, _ []byte) (string, error) {
	return p.BaseURL + "/" + filename, nil
}
