package muxer

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/metafates/gache"
	"github.com/spf13/afero"

	"github.com/ytget/ytfetch/internal/platform"
)

// FFmpeg executable and probe constants
const (
	FFmpegCommand   = "ffmpeg"
	VersionFlag     = "-version"
	VersionPrefix   = "ffmpeg version "
	DefaultProbeTTL = 5 * time.Minute
	probeTimeout    = 10 * time.Second
	cacheFile       = "ffmpeg-probe.json"
)

// ErrNotInstalled means no ffmpeg executable was found
var ErrNotInstalled = errors.New("ffmpeg was not found in PATH")

// Status is the outcome of a probe
type Status struct {
	Available bool   `json:"available"`
	Path      string `json:"path,omitempty"`
	Version   string `json:"version,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Replaced in tests
var (
	lookPath   = exec.LookPath
	runVersion = func(ctx context.Context, path string) ([]byte, error) {
		return exec.CommandContext(ctx, path, VersionFlag).Output()
	}
)

type statusCache interface {
	Get() (Status, bool, error)
	Set(Status) error
}

// Probe checks whether ffmpeg can merge separate video and audio tracks
type Probe struct {
	executable string

	mu    sync.Mutex
	cache statusCache
}

// ProbeOption configures a Probe
type ProbeOption func(*probeOptions)

type probeOptions struct {
	fs  afero.Fs
	dir string
	ttl time.Duration
}

// WithCacheDir keeps probe results in dir on fs. Without it results live in
// memory for the lifetime of the process.
func WithCacheDir(fs afero.Fs, dir string) ProbeOption {
	return func(o *probeOptions) {
		o.fs = fs
		o.dir = dir
	}
}

// WithTTL sets how long a probe result is reused
func WithTTL(ttl time.Duration) ProbeOption {
	return func(o *probeOptions) {
		o.ttl = ttl
	}
}

// NewProbe creates a probe for executable, or "ffmpeg" from PATH when empty
func NewProbe(executable string, opts ...ProbeOption) *Probe {
	if executable == "" {
		executable = FFmpegCommand
	}

	o := probeOptions{fs: afero.NewMemMapFs(), dir: "/", ttl: DefaultProbeTTL}
	for _, opt := range opts {
		opt(&o)
	}

	return &Probe{
		executable: executable,
		cache: gache.New[Status](&gache.Options{
			Path:       filepath.Join(o.dir, cacheFile),
			Lifetime:   o.ttl,
			FileSystem: platform.GacheFs{Fs: o.fs},
		}),
	}
}

// Check returns the cached status, probing again once it has expired
func (p *Probe) Check(ctx context.Context) Status {
	p.mu.Lock()
	defer p.mu.Unlock()

	if cached, expired, err := p.cache.Get(); err == nil && !expired && cached.probed() {
		return cached
	}

	status := p.probe(ctx)
	_ = p.cache.Set(status)
	return status
}

// Available is shorthand for Check(ctx).Available
func (p *Probe) Available(ctx context.Context) bool {
	return p.Check(ctx).Available
}

func (p *Probe) probe(ctx context.Context) Status {
	path, err := lookPath(p.executable)
	if err != nil {
		return Status{Error: ErrNotInstalled.Error()}
	}

	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	out, err := runVersion(ctx, path)
	if err != nil {
		return Status{Path: path, Error: fmt.Sprintf("failed to run %s %s: %v", path, VersionFlag, err)}
	}

	return Status{Available: true, Path: path, Version: ParseVersion(string(out))}
}

// probed reports whether s came from a finished probe rather than an empty cache
func (s Status) probed() bool {
	return s.Available || s.Error != ""
}

// ParseVersion extracts the version token from `ffmpeg -version` output
func ParseVersion(output string) string {
	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, VersionPrefix) {
			continue
		}
		fields := strings.Fields(strings.TrimPrefix(line, VersionPrefix))
		if len(fields) > 0 {
			return fields[0]
		}
	}
	return ""
}
