package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/planview/pkg/cache"
	"github.com/matzehuels/planview/pkg/observability"
	"github.com/matzehuels/planview/pkg/scene"
)

// Runner encapsulates pipeline execution with caching. The CLI and the HTTP
// service both use it so that caching behaves the same everywhere.
//
// A Runner holds no per-run state; several goroutines may share one.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner. A nil cache disables caching, a nil keyer means
// cache.DefaultKeyer and a nil logger means log.Default().
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

// Execute runs layout then render for every view of the document.
func (r *Runner) Execute(ctx context.Context, doc map[string]any, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{}

	layoutStart := time.Now()
	views, err := r.Layout(ctx, doc, opts)
	if err != nil {
		return nil, err
	}
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.SceneCount = len(views)
	for _, v := range views {
		result.Stats.PrimitiveCount += v.Scene.Len()
	}

	r.Logger.Info("derived layout",
		"kind", opts.Kind,
		"scenes", len(views),
		"primitives", result.Stats.PrimitiveCount,
		"duration", result.Stats.LayoutTime)

	renderStart := time.Now()
	allHit := true
	for i := range views {
		artifacts, hit, err := r.renderView(ctx, views[i].Name, views[i].Scene, opts)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", views[i].Name, err)
		}
		views[i].Artifacts = artifacts
		views[i].CacheHit = hit
		allHit = allHit && hit
	}
	result.Views = views
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = allHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", allHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Layout derives the scenes of a document and reports it to the pipeline
// hooks.
func (r *Runner) Layout(ctx context.Context, doc map[string]any, opts Options) ([]View, error) {
	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, string(opts.Kind))
	start := time.Now()

	views, err := Layout(doc, opts)
	hooks.OnLayoutComplete(ctx, string(opts.Kind), len(views), time.Since(start), err)
	return views, err
}

// RenderWithCacheInfo encodes a scene in every requested format and reports
// whether all artifacts came from the cache.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, s scene.Scene, opts Options) (map[string][]byte, bool, error) {
	return r.renderView(ctx, s.Title(), s, opts)
}

// Render is RenderWithCacheInfo without the cache hit info.
func (r *Runner) Render(ctx context.Context, s scene.Scene, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, s, opts)
	return artifacts, err
}

func (r *Runner) renderView(ctx context.Context, name string, s scene.Scene, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, name, opts.Formats)
	start := time.Now()

	artifacts, hit, err := r.renderCached(ctx, s, opts)
	hooks.OnRenderComplete(ctx, name, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}
	r.Logger.Debug("rendered view", "view", name, "cached", hit)
	return artifacts, hit, nil
}

// renderCached serves each format from the cache when possible and renders
// only the missing ones.
func (r *Runner) renderCached(ctx context.Context, s scene.Scene, opts Options) (map[string][]byte, bool, error) {
	sceneData, err := json.Marshal(s)
	if err != nil {
		return nil, false, fmt.Errorf("serialize scene for cache key: %w", err)
	}
	sceneHash := cache.Hash(sceneData)
	cacheHooks := observability.Cache()

	artifacts := make(map[string][]byte, len(opts.Formats))
	var missing []string
	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(sceneHash, opts.ArtifactKeyOpts(format))
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			artifacts[format] = data
			cacheHooks.OnCacheHit(ctx, "artifact")
			continue
		} else if err != nil {
			r.Logger.Warn("cache read failed", "format", format, "err", err)
		}
		cacheHooks.OnCacheMiss(ctx, "artifact")
		missing = append(missing, format)
	}
	if len(missing) == 0 {
		return artifacts, true, nil
	}

	rendered, err := renderFormats(s, missing, opts)
	if err != nil {
		return nil, false, err
	}
	for format, data := range rendered {
		artifacts[format] = data
		key := r.Keyer.ArtifactKey(sceneHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
			r.Logger.Warn("cache write failed", "format", format, "err", err)
			continue
		}
		cacheHooks.OnCacheSet(ctx, "artifact", len(data))
	}
	return artifacts, false, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
