// Package content defines the editable records behind the marketing site
// (services, industries and pages) and the store contract they live in.
package content

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("slug already in use")
	ErrInvalid  = errors.New("invalid record")
)

// Kind is a record collection.
type Kind string

const (
	KindService  Kind = "service"
	KindIndustry Kind = "industry"
	KindPage     Kind = "page"
)

// Kinds lists every collection in display order.
var Kinds = []Kind{KindService, KindIndustry, KindPage}

// Valid reports whether k is a known collection.
func (k Kind) Valid() bool {
	switch k {
	case KindService, KindIndustry, KindPage:
		return true
	}
	return false
}

// Plural returns the URL segment for the kind ("services", "industries", "pages").
func (k Kind) Plural() string {
	if k == KindIndustry {
		return "industries"
	}
	return string(k) + "s"
}

// ParseKind accepts singular or plural names.
func ParseKind(s string) (Kind, bool) {
	for _, k := range Kinds {
		if s == string(k) || s == k.Plural() {
			return k, true
		}
	}
	return "", false
}

// Record is one editable content entry. Content holds freeform JSON blocks,
// typically {"sections": [...]}.
type Record struct {
	ID        string         `json:"id"`
	Kind      Kind           `json:"kind"`
	Title     string         `json:"title"`
	Slug      string         `json:"slug"`
	Order     int            `json:"order"`
	Published bool           `json:"isPublished"`
	Content   map[string]any `json:"content,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// Patch is a partial update; nil fields are left unchanged.
type Patch struct {
	Title     *string         `json:"title,omitempty"`
	Slug      *string         `json:"slug,omitempty"`
	Order     *int            `json:"order,omitempty"`
	Published *bool           `json:"isPublished,omitempty"`
	Content   *map[string]any `json:"content,omitempty"`
}

// Apply copies the set fields of p onto r.
func (p Patch) Apply(r *Record) {
	if p.Title != nil {
		r.Title = *p.Title
	}
	if p.Slug != nil {
		r.Slug = *p.Slug
	}
	if p.Order != nil {
		r.Order = *p.Order
	}
	if p.Published != nil {
		r.Published = *p.Published
	}
	if p.Content != nil {
		r.Content = *p.Content
	}
}

// OrderUpdate assigns a new sort order to one record.
type OrderUpdate struct {
	ID    string `json:"id"`
	Order int    `json:"order"`
}

// Filter narrows List results. A nil Published returns every record.
type Filter struct {
	Published *bool
}

// Matches reports whether r passes the filter.
func (f Filter) Matches(r Record) bool {
	return f.Published == nil || *f.Published == r.Published
}

// PublishedOnly is the filter used by public pages.
func PublishedOnly() Filter {
	published := true
	return Filter{Published: &published}
}

// Store persists records. List results are sorted by Order, then Title.
// Reorder is all-or-nothing: if any ID is unknown nothing is changed and
// ErrNotFound is returned.
type Store interface {
	List(ctx context.Context, kind Kind, filter Filter) ([]Record, error)
	Get(ctx context.Context, kind Kind, id string) (Record, error)
	GetBySlug(ctx context.Context, kind Kind, slug string) (Record, error)
	Create(ctx context.Context, r Record) (Record, error)
	Update(ctx context.Context, kind Kind, id string, p Patch) (Record, error)
	Delete(ctx context.Context, kind Kind, id string) error
	Reorder(ctx context.Context, kind Kind, updates []OrderUpdate) error
	Close() error
}
