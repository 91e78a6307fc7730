package app

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"

	"vpath-go/internal/config"
	"vpath-go/internal/database"
	"vpath-go/internal/filter"
	"vpath-go/internal/model"
	"vpath-go/internal/mount"
	"vpath-go/internal/vpath"
)

// VPathApp is the application layer between the CLI and the path core.
// It constructs all dependencies from config, exposes operations that
// accept raw strings, and manages the store lifecycle on Close.
type VPathApp struct {
	cfg     *config.Config
	store   mount.Store
	service *mount.Service
	matcher *filter.Matcher
	logger  *slog.Logger
	op      *Operation
	logFile *os.File
}

// Inspection is the full breakdown of a parsed path.
type Inspection struct {
	Origin     string
	Normalized string
	Relative   bool
	Root       bool
	Segments   []string
}

// NewVPathApp creates a fully wired VPathApp from the given config.
// operation identifies the CLI command being run (e.g. "Normalize", "AddMount").
// The caller must call Close when done.
func NewVPathApp(cfg *config.Config, operation string) (*VPathApp, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	level, err := parseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	opID := uuid.New().String()[:8]
	logger, logFile, err := newLogger(cfg.LogDir, opID, level)
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}

	store, err := database.NewStoreFromConfig(cfg.Database)
	if err != nil {
		logFile.Close()
		return nil, fmt.Errorf("creating store: %w", err)
	}

	if err := store.CheckMigrations(); err != nil {
		store.Close()
		logFile.Close()
		return nil, fmt.Errorf("database schema out of date: %w", err)
	}

	patterns := cfg.Filter.Ignore
	if cfg.Filter.IgnoreFile != "" {
		fromFile, err := filter.ParseIgnoreFile(cfg.Filter.IgnoreFile)
		if err != nil {
			store.Close()
			logFile.Close()
			return nil, fmt.Errorf("reading ignore file: %w", err)
		}
		patterns = append(append([]string{}, patterns...), fromFile...)
	}

	static := make([]*model.Mount, 0, len(cfg.Mounts))
	for _, m := range cfg.Mounts {
		static = append(static, &model.Mount{
			ID:      mount.StaticMountID,
			Virtual: m.Virtual,
			Target:  m.Target,
			Static:  true,
		})
	}

	svc := mount.NewService(store, static, &slogAdapter{l: logger}, mount.RealClock{}, mount.UUIDGenerator{})

	logger.Debug("app initialized", "operation", operation, "mounts", len(static), "patterns", len(patterns))

	return &VPathApp{
		cfg:     cfg,
		store:   store,
		service: svc,
		matcher: filter.NewMatcher(patterns),
		logger:  logger,
		op:      NewOperation(operation, ""),
		logFile: logFile,
	}, nil
}

// persistOperation records the operation in the store, giving it an ID.
// Only mutating commands call this.
func (a *VPathApp) persistOperation(parameters string) error {
	if a.op.Persisted() {
		return nil
	}
	a.op.Parameters = parameters
	stored, err := a.store.CreateOperation(a.op.Operation, a.op.Parameters)
	if err != nil {
		return fmt.Errorf("persisting operation: %w", err)
	}
	a.op.ID = stored.ID
	return nil
}

// Display renders p with the configured separator.
func (a *VPathApp) Display(p vpath.Path) string {
	return a.displayString(p.Normalized())
}

func (a *VPathApp) displayString(s string) string {
	if a.cfg.Separator == "\\" {
		return strings.ReplaceAll(s, string(vpath.Separator), "\\")
	}
	return s
}

// Normalize parses each raw path.
func (a *VPathApp) Normalize(rawPaths []string) []vpath.Path {
	paths := make([]vpath.Path, len(rawPaths))
	for i, raw := range rawPaths {
		paths[i] = vpath.New(raw)
		a.logger.Debug("normalized", "origin", raw, "normalized", paths[i].String())
	}
	return paths
}

// Inspect returns every derived property of raw.
func (a *VPathApp) Inspect(raw string) *Inspection {
	p := vpath.New(raw)
	return &Inspection{
		Origin:     p.Origin(),
		Normalized: p.Normalized(),
		Relative:   p.IsRelative(),
		Root:       p.IsRoot(),
		Segments:   p.Segments(),
	}
}

// Join joins elems onto base.
func (a *VPathApp) Join(base string, elems []string) vpath.Path {
	return vpath.JoinAll(base, elems...)
}

// CommonPath returns the common path of left and right, or "" when it is undefined.
func (a *VPathApp) CommonPath(left, right string) string {
	common := vpath.New(left).CommonPath(vpath.New(right))
	if common == "" {
		a.logger.Debug("no common path", "left", left, "right", right)
	}
	return common
}

// SegmentAt returns the segment of raw at depth, or "" when out of range.
func (a *VPathApp) SegmentAt(raw string, depth int) string {
	return vpath.New(raw).SegmentAt(depth)
}

// Resolve rewrites raw through the mount table.
func (a *VPathApp) Resolve(raw string) (vpath.Path, *model.Mount, error) {
	return a.service.Resolve(vpath.New(raw))
}

// AddMount mounts the virtual prefix onto target.
func (a *VPathApp) AddMount(virtual, target string) (*model.Mount, error) {
	if err := a.persistOperation(virtual + " -> " + target); err != nil {
		return nil, err
	}
	m, err := a.service.AddMount(vpath.New(virtual), vpath.New(target))
	return m, a.op.Fail(err)
}

// RemoveMount unmounts the virtual prefix.
func (a *VPathApp) RemoveMount(virtual string) error {
	if err := a.persistOperation(virtual); err != nil {
		return err
	}
	return a.op.Fail(a.service.RemoveMount(vpath.New(virtual)))
}

// ListMounts returns stored and static mounts.
func (a *VPathApp) ListMounts() ([]*model.Mount, error) {
	return a.service.ListMounts()
}

// Filter parses rawPaths and drops the ones matched by the ignore patterns.
func (a *VPathApp) Filter(rawPaths []string) []vpath.Path {
	kept := a.matcher.Filter(a.Normalize(rawPaths))
	a.logger.Debug("filtered", "in", len(rawPaths), "kept", len(kept))
	return kept
}

// GetHistory returns the most recent mutating operations.
func (a *VPathApp) GetHistory(limit int) ([]*model.Operation, error) {
	return a.service.GetHistory(limit)
}

// Close finishes a persisted operation and closes all resources.
// Every resource is closed even when an earlier one fails.
func (a *VPathApp) Close() error {
	var merr error

	if a.op.Persisted() {
		if err := a.store.FinishOperation(a.op.ID, a.op.Status); err != nil {
			merr = multierror.Append(merr, fmt.Errorf("finishing operation: %w", err))
		}
	}

	if err := a.store.Close(); err != nil {
		merr = multierror.Append(merr, fmt.Errorf("closing store: %w", err))
	}

	if a.logFile != nil {
		if err := a.logFile.Close(); err != nil {
			merr = multierror.Append(merr, fmt.Errorf("closing log file: %w", err))
		}
	}

	return merr
}
