package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/ganttline/pkg/cache"
	gerrors "github.com/matzehuels/ganttline/pkg/errors"
	"github.com/matzehuels/ganttline/pkg/readonly"
	"github.com/matzehuels/ganttline/pkg/timeline"
)

// Cache backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// Defaults for values the file leaves out.
const (
	DefaultView      = "day"
	DefaultBackend   = BackendFile
	DefaultRedisAddr = "localhost:6379"
)

// projectFiles are looked up in the current directory, in order.
var projectFiles = []string{".ganttline.toml", "ganttline.toml"}

// Config holds all file-level settings.
type Config struct {
	Timeline TimelineConfig `toml:"timeline"`
	Policy   PolicyConfig   `toml:"policy"`
	Cache    CacheConfig    `toml:"cache"`

	// Path is the file the config was read from, empty for defaults.
	Path string `toml:"-"`
}

// TimelineConfig holds layout defaults.
type TimelineConfig struct {
	View          string  `toml:"view"`
	ColumnWidth   float64 `toml:"column_width"`
	RowHeight     float64 `toml:"row_height"`
	BarHeight     float64 `toml:"bar_height"`
	ViewportWidth float64 `toml:"viewport_width"`
}

// PolicyConfig describes the read-only policy applied to edits.
type PolicyConfig struct {
	Mode        string   `toml:"mode"`
	RequireRole string   `toml:"require_role"`
	Deny        []string `toml:"deny"`
}

// CacheConfig selects and configures the cache backend.
type CacheConfig struct {
	Backend       string `toml:"backend"`
	Dir           string `toml:"dir"`
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
	TTL           string `toml:"ttl"`

	// Prefix scopes keys so several projects can share one backend.
	Prefix string `toml:"prefix"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Timeline: TimelineConfig{
			View:          DefaultView,
			ColumnWidth:   timeline.DefaultColumnWidth,
			RowHeight:     timeline.DefaultRowHeight,
			BarHeight:     timeline.DefaultBarHeight,
			ViewportWidth: timeline.DefaultViewportWidth,
		},
		Policy: PolicyConfig{Mode: string(readonly.KindEditable)},
		Cache: CacheConfig{
			Backend:   DefaultBackend,
			RedisAddr: DefaultRedisAddr,
		},
	}
}

// Load reads the config at path, or the first file [Find] returns when
// path is empty. Values missing from the file keep their defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = Find()
		if path == "" {
			return cfg, nil
		}
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, gerrors.Wrap(gerrors.ErrCodeFileNotFound, err, "config file not found: %s", path)
		}
		return nil, gerrors.Wrap(gerrors.ErrCodeInvalidFormat, err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, gerrors.New(gerrors.ErrCodeInvalidFormat, "unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}
	cfg.Path = path

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Find returns the first config file that exists, or "" if there is none.
func Find() string {
	for _, name := range projectFiles {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	if dir, err := os.UserConfigDir(); err == nil {
		p := filepath.Join(dir, "ganttline", "config.toml")
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// Validate checks every field that has a closed set of values.
func (c *Config) Validate() error {
	if _, err := c.ViewMode(); err != nil {
		return err
	}
	if c.Timeline.ColumnWidth < 0 || c.Timeline.RowHeight < 0 || c.Timeline.BarHeight < 0 || c.Timeline.ViewportWidth < 0 {
		return gerrors.New(gerrors.ErrCodeInvalidInput, "timeline sizes must not be negative")
	}
	if _, err := c.EditPolicy(); err != nil {
		return err
	}
	switch c.Cache.Backend {
	case "", BackendFile, BackendRedis, BackendNone:
	default:
		return gerrors.New(gerrors.ErrCodeInvalidInput, "unknown cache backend %q (want file, redis or none)", c.Cache.Backend)
	}
	if _, err := c.CacheTTL(); err != nil {
		return err
	}
	return nil
}

// ViewMode returns the configured default zoom level.
func (c *Config) ViewMode() (timeline.ViewMode, error) {
	if c.Timeline.View == "" {
		return timeline.ParseViewMode(DefaultView)
	}
	return timeline.ParseViewMode(c.Timeline.View)
}

// CacheTTL returns the configured entry lifetime, [cache.DefaultTTL] when
// unset.
func (c *Config) CacheTTL() (time.Duration, error) {
	if c.Cache.TTL == "" {
		return cache.DefaultTTL, nil
	}
	d, err := time.ParseDuration(c.Cache.TTL)
	if err != nil || d < 0 {
		return 0, gerrors.New(gerrors.ErrCodeInvalidInput, "invalid cache ttl %q", c.Cache.TTL)
	}
	return d, nil
}

// CacheDir returns the file cache directory, expanding a leading "~/".
func (c *Config) CacheDir() (string, error) {
	dir := c.Cache.Dir
	if dir == "" {
		return cache.DefaultDir()
	}
	if rest, ok := strings.CutPrefix(dir, "~/"); ok {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(home, rest)
	}
	return dir, nil
}

// EditPolicy builds the read-only policy. A plain mode maps to the fixed
// policy of that name. Deny entries and a required role narrow it further.
func (c *Config) EditPolicy() (readonly.Mode, error) {
	base, err := readonly.ParseMode(c.Policy.Mode)
	if err != nil {
		return readonly.Mode{}, gerrors.Wrap(gerrors.ErrCodeInvalidPolicy, err, "policy")
	}
	if len(c.Policy.Deny) == 0 && c.Policy.RequireRole == "" {
		return base, nil
	}

	b := readonly.NewBuilder().RequireRole(c.Policy.RequireRole)
	for _, name := range c.Policy.Deny {
		e, err := readonly.ParseEditType(name)
		if err != nil {
			return readonly.Mode{}, gerrors.Wrap(gerrors.ErrCodeInvalidPolicy, err, "policy deny")
		}
		b.Deny(e)
	}
	narrowed := b.Build()

	return readonly.Custom(readonly.PredicateFunc(func(ctx readonly.EditContext) bool {
		return base.IsEditAllowed(ctx) && narrowed.IsEditAllowed(ctx)
	})), nil
}
