package content

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/llehouerou/showcase/internal/errmsg"
)

// maxSlugAttempts bounds the "-2", "-3"... suffix search.
const maxSlugAttempts = 100

// Populator returns starter content for a new industry page.
type Populator func(name, slug string) (map[string]any, error)

// Service applies validation and defaults on top of a Store.
type Service struct {
	store    Store
	log      *zap.Logger
	populate Populator
}

// NewService wraps store. populate may be nil to disable industry templates.
func NewService(store Store, log *zap.Logger, populate Populator) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{store: store, log: log, populate: populate}
}

// Store returns the underlying store.
func (s *Service) Store() Store { return s.store }

// List returns the records of kind, filtered.
func (s *Service) List(ctx context.Context, kind Kind, filter Filter) ([]Record, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalid, kind)
	}
	recs, err := s.store.List(ctx, kind, filter)
	if err != nil {
		s.fail(errmsg.OpContentList, kind, err)
		return nil, err
	}
	return recs, nil
}

// Get returns one record by ID.
func (s *Service) Get(ctx context.Context, kind Kind, id string) (Record, error) {
	if !kind.Valid() {
		return Record{}, fmt.Errorf("%w: unknown kind %q", ErrInvalid, kind)
	}
	return s.store.Get(ctx, kind, id)
}

// Published returns a published record by slug. Drafts are reported as not found.
func (s *Service) Published(ctx context.Context, kind Kind, slug string) (Record, error) {
	if !kind.Valid() {
		return Record{}, fmt.Errorf("%w: unknown kind %q", ErrInvalid, kind)
	}
	r, err := s.store.GetBySlug(ctx, kind, slug)
	if err != nil {
		return Record{}, err
	}
	if !r.Published {
		return Record{}, ErrNotFound
	}
	return r, nil
}

// BySlug returns a record by slug regardless of its published state.
func (s *Service) BySlug(ctx context.Context, kind Kind, slug string) (Record, error) {
	if !kind.Valid() {
		return Record{}, fmt.Errorf("%w: unknown kind %q", ErrInvalid, kind)
	}
	return s.store.GetBySlug(ctx, kind, slug)
}

// Create validates r, fills in the slug and order when missing and stores it.
// An explicit slug that is taken yields ErrConflict; a generated one is
// suffixed until free. New industries without content get template content.
func (s *Service) Create(ctx context.Context, r Record) (Record, error) {
	r.Title = strings.TrimSpace(r.Title)
	if err := validate(r.Kind, r.Title); err != nil {
		return Record{}, err
	}

	if r.Slug == "" {
		slug, err := s.freeSlug(ctx, r.Kind, Slugify(r.Title))
		if err != nil {
			return Record{}, err
		}
		r.Slug = slug
	} else if !ValidSlug(r.Slug) {
		return Record{}, fmt.Errorf("%w: slug %q must be lowercase letters, digits and hyphens", ErrInvalid, r.Slug)
	}

	if r.Order == 0 {
		order, err := s.nextOrder(ctx, r.Kind)
		if err != nil {
			return Record{}, err
		}
		r.Order = order
	}

	if r.Kind == KindIndustry && len(r.Content) == 0 && s.populate != nil {
		c, err := s.populate(r.Title, r.Slug)
		if err != nil {
			s.fail(errmsg.OpTemplateApply, r.Kind, err)
			return Record{}, errmsg.Wrap(errmsg.OpTemplateApply, err)
		}
		r.Content = c
	}

	created, err := s.store.Create(ctx, r)
	if err != nil {
		s.fail(errmsg.OpContentCreate, r.Kind, err)
		return Record{}, err
	}
	s.log.Info("content created",
		zap.String("kind", string(created.Kind)),
		zap.String("id", created.ID),
		zap.String("slug", created.Slug),
	)
	return created, nil
}

// Update applies p to the record. Title and slug are validated when set.
func (s *Service) Update(ctx context.Context, kind Kind, id string, p Patch) (Record, error) {
	if !kind.Valid() {
		return Record{}, fmt.Errorf("%w: unknown kind %q", ErrInvalid, kind)
	}
	if p.Title != nil {
		title := strings.TrimSpace(*p.Title)
		if title == "" {
			return Record{}, fmt.Errorf("%w: title is required", ErrInvalid)
		}
		p.Title = &title
	}
	if p.Slug != nil && !ValidSlug(*p.Slug) {
		return Record{}, fmt.Errorf("%w: slug %q must be lowercase letters, digits and hyphens", ErrInvalid, *p.Slug)
	}

	r, err := s.store.Update(ctx, kind, id, p)
	if err != nil {
		s.fail(errmsg.OpContentUpdate, kind, err)
		return Record{}, err
	}
	s.log.Info("content updated", zap.String("kind", string(kind)), zap.String("id", id))
	return r, nil
}

// Delete removes a record.
func (s *Service) Delete(ctx context.Context, kind Kind, id string) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: unknown kind %q", ErrInvalid, kind)
	}
	if err := s.store.Delete(ctx, kind, id); err != nil {
		s.fail(errmsg.OpContentDelete, kind, err)
		return err
	}
	s.log.Info("content deleted", zap.String("kind", string(kind)), zap.String("id", id))
	return nil
}

// Reorder assigns new orders atomically. Duplicate IDs are rejected.
func (s *Service) Reorder(ctx context.Context, kind Kind, updates []OrderUpdate) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: unknown kind %q", ErrInvalid, kind)
	}
	if len(updates) == 0 {
		return fmt.Errorf("%w: no updates", ErrInvalid)
	}
	seen := make(map[string]struct{}, len(updates))
	for _, u := range updates {
		if u.ID == "" {
			return fmt.Errorf("%w: empty id", ErrInvalid)
		}
		if _, dup := seen[u.ID]; dup {
			return fmt.Errorf("%w: duplicate id %q", ErrInvalid, u.ID)
		}
		seen[u.ID] = struct{}{}
	}
	if err := s.store.Reorder(ctx, kind, updates); err != nil {
		s.fail(errmsg.OpContentReorder, kind, err)
		return err
	}
	s.log.Info("content reordered", zap.String("kind", string(kind)), zap.Int("count", len(updates)))
	return nil
}

// ReorderIDs assigns orders 1..n following the given ID sequence.
func (s *Service) ReorderIDs(ctx context.Context, kind Kind, ids []string) error {
	updates := make([]OrderUpdate, len(ids))
	for i, id := range ids {
		updates[i] = OrderUpdate{ID: id, Order: i + 1}
	}
	return s.Reorder(ctx, kind, updates)
}

func (s *Service) freeSlug(ctx context.Context, kind Kind, base string) (string, error) {
	if base == "" {
		base = string(kind)
	}
	for i := 1; i <= maxSlugAttempts; i++ {
		candidate := base
		if i > 1 {
			candidate = base + "-" + strconv.Itoa(i)
		}
		_, err := s.store.GetBySlug(ctx, kind, candidate)
		if errors.Is(err, ErrNotFound) {
			return candidate, nil
		}
		if err != nil {
			return "", err
		}
	}
	return "", fmt.Errorf("%w: no free slug for %q", ErrConflict, base)
}

func (s *Service) nextOrder(ctx context.Context, kind Kind) (int, error) {
	recs, err := s.store.List(ctx, kind, Filter{})
	if err != nil {
		return 0, err
	}
	last := 0
	for _, r := range recs {
		if r.Order > last {
			last = r.Order
		}
	}
	return last + 1, nil
}

// fail logs unexpected store errors. Domain errors are the caller's business.
func (s *Service) fail(op errmsg.Op, kind Kind, err error) {
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrConflict) || errors.Is(err, ErrInvalid) {
		return
	}
	s.log.Error(errmsg.Format(op, err), zap.String("op", string(op)), zap.String("kind", string(kind)))
}

func validate(kind Kind, title string) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: unknown kind %q", ErrInvalid, kind)
	}
	if title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalid)
	}
	return nil
}
