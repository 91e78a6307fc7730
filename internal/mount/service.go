package mount

import (
	"fmt"
	"slices"

	"vpath-go/internal/model"
	"vpath-go/internal/vpath"
)

// StaticMountID is the ID given to mounts declared in the config file.
const StaticMountID = "config"

// Service manages the mount table and resolves virtual paths through it.
type Service struct {
	store  Store
	static []*model.Mount
	logger Logger
	clock  Clock
	idgen  IDGenerator
}

// NewService creates a Service with the provided dependencies.
// static holds mounts declared in config; they are never written to the store.
func NewService(store Store, static []*model.Mount, logger Logger, clock Clock, idgen IDGenerator) *Service {
	return &Service{
		store:  store,
		static: static,
		logger: logger,
		clock:  clock,
		idgen:  idgen,
	}
}

// AddMount maps the absolute virtual prefix onto target.
// A virtual prefix can only be mounted once, whether stored or static.
func (s *Service) AddMount(virtual, target vpath.Path) (*model.Mount, error) {
	if virtual.IsRelative() {
		return nil, fmt.Errorf("virtual path must be absolute: %q", virtual.Origin())
	}

	existing, err := s.findMount(virtual)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("already mounted: %s -> %s", existing.Virtual, existing.Target)
	}

	m := &model.Mount{
		ID:        s.idgen.New(),
		Virtual:   virtual,
		Target:    target,
		CreatedAt: s.clock.Now(),
	}
	if err := s.store.CreateMount(m); err != nil {
		return nil, fmt.Errorf("creating mount: %w", err)
	}

	s.logger.Info("mount added", "virtual", virtual.String(), "target", target.String())
	return m, nil
}

// RemoveMount removes the stored mount for virtual.
// Static mounts can only be removed by editing the config file.
func (s *Service) RemoveMount(virtual vpath.Path) error {
	existing, err := s.findMount(virtual)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("not mounted: %s", virtual)
	}
	if existing.Static {
		return fmt.Errorf("mount is declared in config: %s", virtual)
	}

	if err := s.store.DeleteMount(existing.ID); err != nil {
		return fmt.Errorf("deleting mount: %w", err)
	}

	s.logger.Info("mount removed", "virtual", virtual.String())
	return nil
}

// ListMounts returns stored and static mounts ordered by virtual prefix.
// A stored mount shadows a static one with the same virtual prefix.
func (s *Service) ListMounts() ([]*model.Mount, error) {
	stored, err := s.store.ListMounts()
	if err != nil {
		return nil, fmt.Errorf("listing mounts: %w", err)
	}

	mounts := slices.Clone(stored)
	for _, m := range s.static {
		shadowed := slices.ContainsFunc(stored, func(o *model.Mount) bool {
			return o.Virtual.Equal(m.Virtual)
		})
		if shadowed {
			s.logger.Debug("static mount shadowed", "virtual", m.Virtual.String())
			continue
		}
		mounts = append(mounts, m)
	}

	slices.SortFunc(mounts, func(a, b *model.Mount) int {
		return a.Virtual.Compare(b.Virtual)
	})
	return mounts, nil
}

// Resolve rewrites p through the mount with the longest matching virtual
// prefix. Paths outside every mount resolve to themselves with a nil mount.
func (s *Service) Resolve(p vpath.Path) (vpath.Path, *model.Mount, error) {
	if p.IsRelative() {
		return vpath.Path{}, nil, fmt.Errorf("cannot resolve relative path: %q", p.Origin())
	}

	mounts, err := s.ListMounts()
	if err != nil {
		return vpath.Path{}, nil, err
	}

	var best *model.Mount
	for _, m := range mounts {
		if !p.HasPrefix(m.Virtual) {
			continue
		}
		if best == nil || m.Virtual.Len() > best.Virtual.Len() {
			best = m
		}
	}

	if best == nil {
		s.logger.Debug("no mount matched", "path", p.String())
		return p, nil, nil
	}

	rest, _ := p.TrimPrefix(best.Virtual)
	resolved := best.Target
	if rest.Len() > 0 {
		resolved = best.Target.JoinPath(rest)
	}

	s.logger.Debug("path resolved", "path", p.String(), "mount", best.Virtual.String(), "resolved", resolved.String())
	return resolved, best, nil
}

// GetHistory returns the most recent mount table operations, newest first.
func (s *Service) GetHistory(limit int) ([]*model.Operation, error) {
	ops, err := s.store.ListOperations(limit)
	if err != nil {
		return nil, fmt.Errorf("listing operations: %w", err)
	}
	return ops, nil
}

// findMount looks up virtual in the store first, then among static mounts.
func (s *Service) findMount(virtual vpath.Path) (*model.Mount, error) {
	m, err := s.store.FindMount(virtual)
	if err != nil {
		return nil, fmt.Errorf("finding mount: %w", err)
	}
	if m != nil {
		return m, nil
	}

	for _, sm := range s.static {
		if sm.Virtual.Equal(virtual) {
			return sm, nil
		}
	}
	return nil, nil
}
