package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ShadowySupercode/gc-alexandria-sub004/internal/asciidoc"
	"github.com/ShadowySupercode/gc-alexandria-sub004/internal/compiler"
	"github.com/ShadowySupercode/gc-alexandria-sub004/internal/core/domain"
	"github.com/ShadowySupercode/gc-alexandria-sub004/internal/core/ports/driven"
	"github.com/ShadowySupercode/gc-alexandria-sub004/internal/core/ports/driving"
	"github.com/ShadowySupercode/gc-alexandria-sub004/internal/logger"
)

// Ensure PublishService implements the interface.
var _ driving.Publisher = (*PublishService)(nil)

// Configuration keys consulted for compile defaults.
const (
	configKeyParseLevel   = "compile.parse_level"
	configKeyPreambleMode = "compile.preamble_mode"
	configKeyAuthorKey    = "publish.author_key"
)

// PublishService drives the document-to-event pipeline.
type PublishService struct {
	store  driven.EventStore  // nil disables the archive (compile-only mode)
	config driven.ConfigStore // nil means built-in defaults
	now    func() int64
}

// NewPublishService creates a publish service. Both dependencies are
// optional: without a store, Save requests fail with ErrStoreUnavailable;
// without config, built-in defaults apply.
func NewPublishService(store driven.EventStore, config driven.ConfigStore) *PublishService {
	return &PublishService{
		store:  store,
		config: config,
		now:    func() int64 { return time.Now().Unix() },
	}
}

// Validate runs the pre-flight structure check without compiling.
func (s *PublishService) Validate(_ context.Context, text string) domain.ValidationResult {
	return asciidoc.Validate(text)
}

// Compile validates and compiles a document, optionally persisting the
// emitted events to the local archive.
func (s *PublishService) Compile(ctx context.Context, req driving.CompileRequest) (*driving.CompileResult, error) {
	opts := compiler.Options{
		AuthorKey:  req.AuthorKey,
		CreatedAt:  req.CreatedAt,
		ParseLevel: req.ParseLevel,
		ExtraTags:  req.ExtraTags,
	}

	if opts.AuthorKey == "" && s.config != nil {
		opts.AuthorKey = s.config.GetString(configKeyAuthorKey)
	}
	if opts.CreatedAt == 0 {
		opts.CreatedAt = s.now()
	}
	if opts.ParseLevel == 0 {
		opts.ParseLevel = s.defaultParseLevel()
	}
	if req.AttachPreamble || s.defaultPreambleAttach() {
		opts.Preamble = compiler.PreambleAttach
	}

	result, err := compiler.Compile(req.Text, opts)
	if err != nil {
		return nil, err
	}
	logger.Debug("compiled %s document at parse level %d: %d events", result.Class, opts.ParseLevel, len(result.All()))

	for _, coord := range result.Collisions {
		logger.Warn("duplicate coordinate %s: colliding sibling titles share a slug", coord)
	}

	out := &driving.CompileResult{
		Index:      result.Index,
		Events:     result.Events,
		Collisions: result.Collisions,
		Class:      result.Class.String(),
	}

	if req.Save {
		saved, err := s.saveAll(ctx, result)
		if err != nil {
			return nil, err
		}
		out.Saved = saved
	}

	return out, nil
}

// saveAll persists every compiled event to the archive.
func (s *PublishService) saveAll(ctx context.Context, result *compiler.Result) (int, error) {
	if s.store == nil {
		return 0, domain.ErrStoreUnavailable
	}

	all := result.All()
	for i := range all {
		if err := s.store.Save(ctx, &all[i]); err != nil {
			return i, fmt.Errorf("saving event %s: %w", all[i].Slug(), err)
		}
	}

	logger.Info("saved %d events to the archive", len(all))
	return len(all), nil
}

// Get retrieves a stored event by draft ID.
func (s *PublishService) Get(ctx context.Context, id string) (*domain.Event, error) {
	if s.store == nil {
		return nil, domain.ErrStoreUnavailable
	}
	return s.store.Get(ctx, id)
}

// List returns all stored event versions.
func (s *PublishService) List(ctx context.Context) ([]domain.Event, error) {
	if s.store == nil {
		return nil, domain.ErrStoreUnavailable
	}
	return s.store.List(ctx)
}

// Resolve returns the most recent stored version of a coordinate.
func (s *PublishService) Resolve(ctx context.Context, coord domain.Coordinate) (*domain.Event, error) {
	if s.store == nil {
		return nil, domain.ErrStoreUnavailable
	}

	versions, err := s.store.Versions(ctx, coord)
	if err != nil {
		return nil, err
	}
	if len(versions) == 0 {
		return nil, fmt.Errorf("coordinate %s: %w", coord, domain.ErrNotFound)
	}

	resolved := compiler.Resolve(versions)
	ev := resolved[coord]
	return &ev, nil
}

// ResolveAll deduplicates the whole archive, one surviving version per
// coordinate, ordered by coordinate.
func (s *PublishService) ResolveAll(ctx context.Context) ([]domain.Event, error) {
	if s.store == nil {
		return nil, domain.ErrStoreUnavailable
	}

	all, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	return compiler.ResolveOrdered(all), nil
}

// defaultParseLevel returns the configured parse level, falling back to the
// minimum when unset or out of range.
func (s *PublishService) defaultParseLevel() int {
	if s.config != nil {
		if level := s.config.GetInt(configKeyParseLevel); level >= compiler.MinParseLevel && level <= compiler.MaxParseLevel {
			return level
		}
	}
	return compiler.MinParseLevel
}

// defaultPreambleAttach reports whether config asks for preamble attachment.
func (s *PublishService) defaultPreambleAttach() bool {
	return s.config != nil && s.config.GetString(configKeyPreambleMode) == "attach"
}
