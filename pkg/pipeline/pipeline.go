// Package pipeline provides the core generation pipeline for racklabel.
//
// This package implements the complete load → layout → render pipeline
// shared by the CLI and the HTTP server. Centralizing it here keeps
// behavior identical across entry points.
//
// # Architecture
//
// The pipeline consists of two stages over an already-loaded table:
//
//  1. Layout: run the label engine (column inference, grouping,
//     typography, block building, pagination) into a render-ready
//     document description.
//  2. Render: serialize the document in the requested formats (PDF,
//     JSON), with artifact caching keyed by a content hash of the input
//     table and the generation options.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{Variant: "v1", Formats: []string{"pdf"}}
//	result, err := runner.Execute(ctx, table, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if result.Document == nil {
//	    // nothing generated - empty input or every group skipped
//	}
//	pdf := result.Artifacts["pdf"]
package pipeline

import (
	"encoding/json"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/agilomatrix/racklabel/pkg/errors"
	"github.com/agilomatrix/racklabel/pkg/label"
	"github.com/agilomatrix/racklabel/pkg/render"
)

// DefaultVariant is the layout used when none is requested.
const DefaultVariant = label.VariantMulti

// Format constants for output formats.
const (
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatPDF:  true,
	FormatJSON: true,
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// Options contains all configuration for the generation pipeline.
type Options struct {
	// Variant selects the label layout ("v1" or "v2").
	Variant label.Variant `json:"variant"`

	// Formats lists the artifacts to render. Defaults to PDF only.
	Formats []string `json:"formats,omitempty"`

	// Styles overrides the built-in style configuration for the chosen
	// variant. Nil means DefaultStyles(Variant).
	Styles *label.StyleSet `json:"styles,omitempty"`

	// Refresh bypasses the artifact cache.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger   *log.Logger    `json:"-"`
	Progress label.Progress `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Variant == "" {
		o.Variant = DefaultVariant
	}
	if err := label.ValidateVariant(o.Variant); err != nil {
		return err
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatPDF}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// StyleSet resolves the effective style configuration.
func (o *Options) StyleSet() label.StyleSet {
	if o.Styles != nil {
		return *o.Styles
	}
	return label.DefaultStyles(o.Variant)
}

// styleHash fingerprints the effective styles for cache keying.
func (o *Options) styleHash() string {
	data, _ := json.Marshal(o.StyleSet())
	return shortHash(data)
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Document is the render-ready document description, nil when no
	// location group produced a block.
	Document *render.Document

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Skipped lists location groups that failed to build and were
	// dropped from the document.
	Skipped []label.SkippedGroup

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which artifacts came from cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Rows       int
	Groups     int
	Pages      int
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for the render stage.
type CacheInfo struct {
	RenderHit bool // Whether all artifacts came from cache
}
