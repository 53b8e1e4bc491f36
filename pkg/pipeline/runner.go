package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"

	"github.com/agilomatrix/racklabel/pkg/cache"
	"github.com/agilomatrix/racklabel/pkg/errors"
	"github.com/agilomatrix/racklabel/pkg/label"
	"github.com/agilomatrix/racklabel/pkg/render"
	"github.com/agilomatrix/racklabel/pkg/render/sink"
	"github.com/agilomatrix/racklabel/pkg/tabular"
)

// Runner encapsulates pipeline execution with artifact caching.
// Both CLI and server use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete layout → render pipeline over a loaded table.
//
// A nil Result.Document with a nil error means nothing was generated
// (empty input or every group skipped); per-group failures appear in
// Result.Skipped without failing the run.
func (r *Runner) Execute(ctx context.Context, t tabular.Table, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{
		Artifacts: make(map[string][]byte),
	}
	result.Stats.Rows = len(t.Rows)

	// Stage 1: Layout
	layoutStart := time.Now()
	progress := r.countingProgress(&result.Stats, opts.Progress)
	doc, skipped, err := label.BuildDocument(t, opts.Variant, opts.StyleSet(), progress)
	if err != nil {
		return nil, err
	}
	result.Document = doc
	result.Skipped = skipped
	result.Stats.LayoutTime = time.Since(layoutStart)
	if doc != nil {
		result.Stats.Pages = len(doc.Pages)
	}

	for _, s := range skipped {
		opts.Logger.Warn("skipped location group", "location", s.Location, "err", s.Err)
	}
	opts.Logger.Info("built layout",
		"rows", result.Stats.Rows,
		"groups", result.Stats.Groups,
		"pages", result.Stats.Pages,
		"skipped", len(skipped),
		"duration", result.Stats.LayoutTime)

	if doc == nil {
		opts.Logger.Warn("no labels generated")
		return result, nil
	}

	// Stage 2: Render
	renderStart := time.Now()
	hit, err := r.renderArtifacts(ctx, t, doc, opts, result)
	if err != nil {
		return nil, err
	}
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = hit

	opts.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", hit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// renderArtifacts fills result.Artifacts for every requested format,
// consulting the artifact cache first. Returns whether every artifact was
// served from cache.
func (r *Runner) renderArtifacts(ctx context.Context, t tabular.Table, doc *render.Document, opts Options, result *Result) (bool, error) {
	tableHash := tableHash(t)
	styleHash := opts.styleHash()

	allCached := true
	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(tableHash, cache.ArtifactKeyOpts{
			Format:    format,
			Variant:   string(opts.Variant),
			StyleHash: styleHash,
		})

		if !opts.Refresh {
			if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
				result.Artifacts[format] = data
				continue
			}
		}
		allCached = false

		data, err := renderFormat(doc, format)
		if err != nil {
			return false, err
		}
		result.Artifacts[format] = data
		_ = r.Cache.Set(ctx, key, data, cache.TTLArtifact)
	}
	return allCached, nil
}

// renderFormat dispatches to the sink for one output format.
func renderFormat(doc *render.Document, format string) ([]byte, error) {
	switch format {
	case FormatPDF:
		return sink.RenderPDF(doc)
	case FormatJSON:
		return sink.RenderJSON(doc)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %s", format)
	}
}

// countingProgress wraps the caller's progress callback to also record
// the group count in the stats.
func (r *Runner) countingProgress(stats *Stats, inner label.Progress) label.Progress {
	return func(index, total int, location string) {
		stats.Groups = total
		if inner != nil {
			inner(index, total, location)
		}
	}
}

// tableHash fingerprints the input table for cache keying.
func tableHash(t tabular.Table) string {
	data, _ := json.Marshal(t)
	return cache.Hash(data)
}

// shortHash returns an abbreviated content hash for cache key options.
func shortHash(data []byte) string {
	return cache.Hash(data)[:16]
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
