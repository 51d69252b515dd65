// Package docstore is a Firestore-backed content store. Each kind lives in
// its own collection ("<prefix>services", "<prefix>industries", ...).
package docstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/llehouerou/showcase/internal/content"
)

// Store implements content.Store on Firestore.
type Store struct {
	Client *firestore.Client
	prefix string
	now    func() time.Time
}

// Verify Store implements content.Store at compile time.
var _ content.Store = (*Store)(nil)

// Open connects to the project. FIRESTORE_EMULATOR_HOST is honored by the client.
func Open(ctx context.Context, projectID, prefix string) (*Store, error) {
	if strings.TrimSpace(projectID) == "" {
		return nil, errors.New("firestore project id is required")
	}
	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("firestore client: %w", err)
	}
	return New(client, prefix), nil
}

// New wraps an existing client.
func New(client *firestore.Client, prefix string) *Store {
	return &Store{Client: client, prefix: prefix, now: time.Now}
}

func (s *Store) col(kind content.Kind) *firestore.CollectionRef {
	return s.Client.Collection(s.prefix + kind.Plural())
}

// record is the stored document shape.
type record struct {
	Kind      string         `firestore:"kind"`
	Title     string         `firestore:"title"`
	Slug      string         `firestore:"slug"`
	Order     int            `firestore:"order"`
	Published bool           `firestore:"published"`
	Content   map[string]any `firestore:"content,omitempty"`
	CreatedAt time.Time      `firestore:"createdAt"`
	UpdatedAt time.Time      `firestore:"updatedAt"`
}

func toDoc(r content.Record) record {
	return record{
		Kind:      string(r.Kind),
		Title:     r.Title,
		Slug:      r.Slug,
		Order:     r.Order,
		Published: r.Published,
		Content:   r.Content,
		CreatedAt: r.CreatedAt.UTC(),
		UpdatedAt: r.UpdatedAt.UTC(),
	}
}

func fromSnapshot(snap *firestore.DocumentSnapshot) (content.Record, error) {
	var d record
	if err := snap.DataTo(&d); err != nil {
		return content.Record{}, fmt.Errorf("decode %s: %w", snap.Ref.ID, err)
	}
	return content.Record{
		ID:        snap.Ref.ID,
		Kind:      content.Kind(d.Kind),
		Title:     d.Title,
		Slug:      d.Slug,
		Order:     d.Order,
		Published: d.Published,
		Content:   d.Content,
		CreatedAt: d.CreatedAt.UTC(),
		UpdatedAt: d.UpdatedAt.UTC(),
	}, nil
}

func notFound(err error) error {
	if status.Code(err) == codes.NotFound {
		return content.ErrNotFound
	}
	return err
}

func collect(iter *firestore.DocumentIterator) ([]content.Record, error) {
	defer iter.Stop()
	var out []content.Record
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}
		r, err := fromSnapshot(snap)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

// List sorts in memory so published filtering needs no composite index.
func (s *Store) List(ctx context.Context, kind content.Kind, filter content.Filter) ([]content.Record, error) {
	q := s.col(kind).Query
	if filter.Published != nil {
		q = q.Where("published", "==", *filter.Published)
	}
	out, err := collect(q.Documents(ctx))
	if err != nil {
		return nil, err
	}
	content.SortRecords(out)
	return out, nil
}

func (s *Store) Get(ctx context.Context, kind content.Kind, id string) (content.Record, error) {
	if strings.TrimSpace(id) == "" {
		return content.Record{}, content.ErrNotFound
	}
	snap, err := s.col(kind).Doc(id).Get(ctx)
	if err != nil {
		return content.Record{}, notFound(err)
	}
	return fromSnapshot(snap)
}

func (s *Store) GetBySlug(ctx context.Context, kind content.Kind, slug string) (content.Record, error) {
	out, err := collect(s.col(kind).Where("slug", "==", slug).Limit(1).Documents(ctx))
	if err != nil {
		return content.Record{}, err
	}
	if len(out) == 0 {
		return content.Record{}, content.ErrNotFound
	}
	return out[0], nil
}

// slugTaken checks uniqueness inside tx; Firestore has no unique indexes.
func (s *Store) slugTaken(tx *firestore.Transaction, kind content.Kind, slug, exceptID string) (bool, error) {
	iter := tx.Documents(s.col(kind).Where("slug", "==", slug).Limit(2))
	defer iter.Stop()
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		if snap.Ref.ID != exceptID {
			return true, nil
		}
	}
}

func (s *Store) Create(ctx context.Context, r content.Record) (content.Record, error) {
	now := s.now().UTC()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	r.UpdatedAt = now

	var ref *firestore.DocumentRef
	if strings.TrimSpace(r.ID) == "" {
		ref = s.col(r.Kind).NewDoc()
		r.ID = ref.ID
	} else {
		ref = s.col(r.Kind).Doc(r.ID)
	}

	err := s.Client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		taken, err := s.slugTaken(tx, r.Kind, r.Slug, "")
		if err != nil {
			return err
		}
		if taken {
			return content.ErrConflict
		}
		return tx.Create(ref, toDoc(r))
	})
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return content.Record{}, content.ErrConflict
		}
		return content.Record{}, err
	}
	return r, nil
}

func (s *Store) Update(ctx context.Context, kind content.Kind, id string, p content.Patch) (content.Record, error) {
	if strings.TrimSpace(id) == "" {
		return content.Record{}, content.ErrNotFound
	}
	ref := s.col(kind).Doc(id)

	var out content.Record
	err := s.Client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			return notFound(err)
		}
		cur, err := fromSnapshot(snap)
		if err != nil {
			return err
		}
		oldSlug := cur.Slug
		p.Apply(&cur)
		if cur.Slug != oldSlug {
			taken, err := s.slugTaken(tx, kind, cur.Slug, id)
			if err != nil {
				return err
			}
			if taken {
				return content.ErrConflict
			}
		}
		cur.UpdatedAt = s.now().UTC()
		out = cur
		return tx.Set(ref, toDoc(cur))
	})
	if err != nil {
		return content.Record{}, err
	}
	return out, nil
}

func (s *Store) Delete(ctx context.Context, kind content.Kind, id string) error {
	if strings.TrimSpace(id) == "" {
		return content.ErrNotFound
	}
	ref := s.col(kind).Doc(id)
	if _, err := ref.Get(ctx); err != nil {
		return notFound(err)
	}
	_, err := ref.Delete(ctx)
	return err
}

// Reorder reads every document before writing, as Firestore transactions require.
func (s *Store) Reorder(ctx context.Context, kind content.Kind, updates []content.OrderUpdate) error {
	now := s.now().UTC()
	return s.Client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		refs := make([]*firestore.DocumentRef, len(updates))
		for i, u := range updates {
			if strings.TrimSpace(u.ID) == "" {
				return content.ErrNotFound
			}
			refs[i] = s.col(kind).Doc(u.ID)
			if _, err := tx.Get(refs[i]); err != nil {
				if status.Code(err) == codes.NotFound {
					return fmt.Errorf("%w: %s", content.ErrNotFound, u.ID)
				}
				return err
			}
		}
		for i, u := range updates {
			if err := tx.Update(refs[i], []firestore.Update{
				{Path: "order", Value: u.Order},
				{Path: "updatedAt", Value: now},
			}); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Store) Close() error {
	return s.Client.Close()
}
