package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/ganttline/pkg/cache"
	"github.com/matzehuels/ganttline/pkg/dag"
	"github.com/matzehuels/ganttline/pkg/observability"
	"github.com/matzehuels/ganttline/pkg/task"
	"github.com/matzehuels/ganttline/pkg/timeline"
	"github.com/matzehuels/ganttline/pkg/validate"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
	TTL    time.Duration
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
		TTL:    cache.DefaultTTL,
	}
}

// Execute runs the complete load → check → layout → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{}

	// Stage 1: Load
	loadStart := time.Now()
	s, err := r.Load(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Schedule = s
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.TaskCount = len(s.Tasks)
	result.Stats.EdgeCount = dag.New(s.Tasks, s.Dependencies).EdgeCount()

	r.Logger.Info("loaded schedule",
		"tasks", result.Stats.TaskCount,
		"edges", result.Stats.EdgeCount,
		"duration", result.Stats.LoadTime)

	hash, err := cache.HashJSON(s)
	if err != nil {
		return nil, fmt.Errorf("hash schedule: %w", err)
	}
	result.ScheduleHash = hash

	// Stage 2: Check
	if !opts.SkipCheck {
		checkStart := time.Now()
		problems, hit, err := r.CheckWithCacheInfo(ctx, s, hash, opts)
		result.Stats.CheckTime = time.Since(checkStart)
		result.CacheInfo.CheckHit = hit
		observability.Pipeline().OnCheckComplete(ctx, len(problems), result.Stats.CheckTime, err)
		if err != nil {
			return nil, err
		}
		result.Problems = problems
		for _, p := range problems {
			r.Logger.Warn(p.Message, "code", p.Code)
		}
	}

	// Stage 3: Layout
	var layoutKey string
	if opts.NeedsLayout() {
		layoutStart := time.Now()
		l, key, hit, err := r.LayoutWithCacheInfo(ctx, s, hash, opts)
		if err != nil {
			return nil, fmt.Errorf("layout: %w", err)
		}
		result.Layout = l
		result.Stats.LayoutTime = time.Since(layoutStart)
		result.CacheInfo.LayoutHit = hit
		layoutKey = key

		r.Logger.Info("computed layout",
			"view", opts.View,
			"bars", len(l.Bars),
			"connectors", len(l.Connectors),
			"cached", hit,
			"duration", result.Stats.LayoutTime)
	}

	// Stage 4: Render
	renderStart := time.Now()
	artifacts, hit, err := r.RenderWithCacheInfo(ctx, result.Layout, s, hash, layoutKey, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = hit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", hit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Load reads the schedule and reports the stage to the pipeline hooks.
func (r *Runner) Load(ctx context.Context, opts Options) (task.Schedule, error) {
	source := opts.Path
	if opts.Schedule != nil {
		source = "memory"
	}
	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, source)

	start := time.Now()
	s, err := Load(opts)
	hooks.OnLoadComplete(ctx, source, len(s.Tasks), time.Since(start), err)
	return s, err
}

// CheckWithCacheInfo audits the schedule, reusing a stored audit for the
// same schedule hash. Error-severity problems come back as a *CheckError
// whether or not the audit was cached.
func (r *Runner) CheckWithCacheInfo(ctx context.Context, s task.Schedule, scheduleHash string, opts Options) ([]validate.Problem, bool, error) {
	key := r.Keyer.GraphKey(scheduleHash)
	cacheHooks := observability.Cache()

	var problems []validate.Problem
	hit := false
	if !opts.Refresh {
		if ok, err := cache.GetJSON(ctx, r.Cache, key, &problems); err == nil && ok {
			cacheHooks.OnCacheHit(ctx, "check")
			hit = true
		} else {
			cacheHooks.OnCacheMiss(ctx, "check")
		}
	}
	if !hit {
		problems = validate.Check(s)
		if err := cache.SetJSON(ctx, r.Cache, key, problems, r.TTL); err != nil {
			r.Logger.Debug("cache write failed", "key", key, "err", err)
		} else {
			cacheHooks.OnCacheSet(ctx, "check", 0)
		}
	}

	if validate.HasErrors(problems) {
		return nil, hit, &CheckError{Problems: problems}
	}
	return problems, hit, nil
}

// LayoutWithCacheInfo computes the layout with caching. It returns the
// layout, the cache key it is stored under, and whether it was a cache hit.
func (r *Runner) LayoutWithCacheInfo(ctx context.Context, s task.Schedule, scheduleHash string, opts Options) (*timeline.Layout, string, bool, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return nil, "", false, err
	}

	cacheKey := r.Keyer.LayoutKey(scheduleHash, opts.LayoutKeyOpts())
	cacheHooks := observability.Cache()

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		var cached timeline.Layout
		if hit, err := cache.GetJSON(ctx, r.Cache, cacheKey, &cached); err == nil && hit {
			cacheHooks.OnCacheHit(ctx, "layout")
			return &cached, cacheKey, true, nil
		}
		cacheHooks.OnCacheMiss(ctx, "layout")
	}

	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, opts.View, len(s.Tasks))
	start := time.Now()
	l, err := ComputeLayout(s, opts)
	hooks.OnLayoutComplete(ctx, opts.View, time.Since(start), err)
	if err != nil {
		return nil, "", false, err
	}

	if err := cache.SetJSON(ctx, r.Cache, cacheKey, l, r.TTL); err != nil {
		r.Logger.Debug("cache write failed", "key", cacheKey, "err", err)
	} else {
		cacheHooks.OnCacheSet(ctx, "layout", 0)
	}
	return l, cacheKey, false, nil
}

// RenderWithCacheInfo generates artifacts with caching and reports whether
// every one of them came from the cache.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, l *timeline.Layout, s task.Schedule, scheduleHash, layoutKey string, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	cacheHooks := observability.Cache()

	// Try to get all formats from cache
	if !opts.Refresh {
		artifacts := make(map[string][]byte, len(opts.Formats))
		for _, format := range opts.Formats {
			key := r.Keyer.ArtifactKey(scheduleHash, opts.ArtifactKeyOpts(format, layoutKey))
			data, hit, err := r.Cache.Get(ctx, key)
			if err != nil || !hit {
				cacheHooks.OnCacheMiss(ctx, "artifact")
				break
			}
			cacheHooks.OnCacheHit(ctx, "artifact")
			artifacts[format] = data
		}
		if len(artifacts) == len(opts.Formats) {
			return artifacts, true, nil
		}
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()
	rendered, err := Render(ctx, l, s, opts)
	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	// Cache each format
	for format, data := range rendered {
		key := r.Keyer.ArtifactKey(scheduleHash, opts.ArtifactKeyOpts(format, layoutKey))
		if err := r.Cache.Set(ctx, key, data, r.TTL); err == nil {
			cacheHooks.OnCacheSet(ctx, "artifact", len(data))
		}
	}

	return rendered, false, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
