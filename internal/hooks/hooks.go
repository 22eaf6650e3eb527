// Package hooks runs user scripts at fixed points of the favorites and catalog
// lifecycle.
//
// Scripts live in <hooks_dir>/<hook-point>/ and run in name order. A script
// must be executable to be picked up. Each script receives HOOK_POINT,
// HOOK_TIMESTAMP, DEXVIEW_BINARY and the point specific variables in its
// environment.
package hooks

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/cristianoliveira/dexview/internal/config"
	"github.com/cristianoliveira/dexview/internal/logging"
	"github.com/sourcegraph/conc"
)

// Hook points.
const (
	PreToggleFavorite  = "pre-toggle-favorite"
	PostToggleFavorite = "post-toggle-favorite"
	PostClearFavorites = "post-clear-favorites"
	PostCatalogLoad    = "post-catalog-load"
)

// Failure modes.
const (
	FailureAbort  = "abort"
	FailureWarn   = "warn"
	FailureIgnore = "ignore"
)

// waitDelay bounds how long a killed script may hold its output pipes open.
const waitDelay = time.Second

// Options configures a Runner.
type Options struct {
	Dir          string
	FailureMode  string
	Async        bool
	AsyncTimeout time.Duration
	MaxAsync     int
}

// OptionsFromConfig reads the hooks_* configuration keys.
func OptionsFromConfig() Options {
	return Options{
		Dir:          config.Get("hooks_dir", ""),
		FailureMode:  config.Get("hooks_failure_mode", FailureWarn),
		Async:        config.GetBool("hooks_async", false),
		AsyncTimeout: time.Duration(config.GetInt("hooks_async_timeout", 30)) * time.Second,
		MaxAsync:     config.GetInt("hooks_max_async", 10),
	}
}

// Runner executes hook scripts.
type Runner struct {
	opts Options

	mu      sync.Mutex
	pending int
	wg      conc.WaitGroup
}

// New creates a runner. Zero values fall back to warn mode, a 30s async
// timeout and at most 10 pending async scripts.
func New(opts Options) *Runner {
	if opts.FailureMode == "" {
		opts.FailureMode = FailureWarn
	}
	if opts.AsyncTimeout <= 0 {
		opts.AsyncTimeout = 30 * time.Second
	}
	if opts.MaxAsync <= 0 {
		opts.MaxAsync = 10
	}
	return &Runner{opts: opts}
}

// NewFromConfig creates a runner from the loaded configuration.
func NewFromConfig() *Runner {
	return New(OptionsFromConfig())
}

// Run executes the scripts registered for hookPoint. In abort mode the first
// failing synchronous script stops the run and its error is returned; other
// modes only log failures. A missing hook directory means no hooks.
func (r *Runner) Run(ctx context.Context, hookPoint string, env map[string]string) error {
	scripts := r.scripts(hookPoint)
	if len(scripts) == 0 {
		return nil
	}

	environ := buildEnv(hookPoint, env)
	logging.Debug("running hooks", "hook_point", hookPoint, "scripts", len(scripts), "async", r.opts.Async)

	for _, script := range scripts {
		if r.opts.Async {
			r.startAsync(script, environ)
			continue
		}
		if err := r.runSync(ctx, script, environ); err != nil && r.opts.FailureMode == FailureAbort {
			return err
		}
	}
	return nil
}

// Wait blocks until every async script has finished.
func (r *Runner) Wait() {
	r.wg.Wait()
}

// Pending returns the number of async scripts still running.
func (r *Runner) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pending
}

func (r *Runner) scripts(hookPoint string) []string {
	if r.opts.Dir == "" {
		return nil
	}
	hookDir := filepath.Join(r.opts.Dir, hookPoint)
	entries, err := os.ReadDir(hookDir)
	if err != nil {
		return nil
	}

	scripts := []string{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		path := filepath.Join(hookDir, e.Name())
		info, err := os.Stat(path)
		if err != nil || info.Mode()&0111 == 0 {
			continue
		}
		scripts = append(scripts, path)
	}
	sort.Strings(scripts)
	return scripts
}

func (r *Runner) runSync(ctx context.Context, script string, environ []string) error {
	name := filepath.Base(script)
	start := time.Now()
	cmd := exec.CommandContext(ctx, script)
	cmd.Env = environ
	cmd.WaitDelay = waitDelay
	output, err := cmd.CombinedOutput()
	duration := time.Since(start)

	if err == nil {
		logging.Debug("hook completed", "hook", name, "duration_ms", duration.Milliseconds(), "output", strings.TrimSpace(string(output)))
		return nil
	}

	hookErr := fmt.Errorf("hook %s failed: %w, output: %s", name, err, strings.TrimSpace(string(output)))
	switch r.opts.FailureMode {
	case FailureAbort:
		logging.Error("hook aborted operation", "hook", name, "error", err)
	case FailureWarn:
		logging.Warn("hook failed", "hook", name, "error", err, "output", strings.TrimSpace(string(output)))
	}
	return hookErr
}

func (r *Runner) startAsync(script string, environ []string) {
	name := filepath.Base(script)

	r.mu.Lock()
	if r.pending >= r.opts.MaxAsync {
		r.mu.Unlock()
		logging.Warn("too many async hooks pending, skipping", "hook", name, "max", r.opts.MaxAsync)
		return
	}
	r.pending++
	r.mu.Unlock()

	r.wg.Go(func() {
		defer func() {
			r.mu.Lock()
			r.pending--
			r.mu.Unlock()
		}()

		ctx, cancel := context.WithTimeout(context.Background(), r.opts.AsyncTimeout)
		defer cancel()

		start := time.Now()
		cmd := exec.CommandContext(ctx, script)
		cmd.Env = environ
		cmd.WaitDelay = waitDelay
		output, err := cmd.CombinedOutput()
		duration := time.Since(start)

		if ctx.Err() == context.DeadlineExceeded {
			logging.Warn("async hook timed out", "hook", name, "timeout", r.opts.AsyncTimeout)
		}
		if err != nil && r.opts.FailureMode != FailureIgnore {
			logging.Warn("async hook failed", "hook", name, "error", err, "duration_ms", duration.Milliseconds())
			return
		}
		if err == nil {
			logging.Debug("async hook completed", "hook", name, "duration_ms", duration.Milliseconds(), "output", strings.TrimSpace(string(output)))
		}
	})
}

func buildEnv(hookPoint string, env map[string]string) []string {
	environ := os.Environ()
	environ = append(environ,
		"HOOK_POINT="+hookPoint,
		"HOOK_TIMESTAMP="+time.Now().Format(time.RFC3339),
	)
	if exe, err := os.Executable(); err == nil {
		environ = append(environ, "DEXVIEW_BINARY="+exe)
	}

	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		environ = append(environ, k+"="+env[k])
	}
	return environ
}
