package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/llehouerou/showcase/internal/content"
	"github.com/llehouerou/showcase/internal/db"
)

const recordColumns = `id, kind, title, slug, sort_order, published, content, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (content.Record, error) {
	var (
		r           content.Record
		kind        string
		published   int
		contentJSON sql.NullString
		created     int64
		updated     int64
	)
	if err := row.Scan(&r.ID, &kind, &r.Title, &r.Slug, &r.Order, &published,
		&contentJSON, &created, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return content.Record{}, content.ErrNotFound
		}
		return content.Record{}, err
	}
	r.Kind = content.Kind(kind)
	r.Published = published != 0
	r.CreatedAt = db.UnixTime(created)
	r.UpdatedAt = db.UnixTime(updated)

	if raw := db.NullStringValue(contentJSON); raw != "" {
		if err := json.Unmarshal([]byte(raw), &r.Content); err != nil {
			return content.Record{}, fmt.Errorf("decode content of %s: %w", r.ID, err)
		}
	}
	return r, nil
}

func encodeContent(c map[string]any) (sql.NullString, error) {
	if len(c) == 0 {
		return sql.NullString{}, nil
	}
	b, err := json.Marshal(c)
	if err != nil {
		return sql.NullString{}, fmt.Errorf("encode content: %w", err)
	}
	return sql.NullString{String: string(b), Valid: true}, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func (s *Store) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Second)
}

func (s *Store) List(ctx context.Context, kind content.Kind, filter content.Filter) ([]content.Record, error) {
	query := `SELECT ` + recordColumns + ` FROM records WHERE kind = ?`
	args := []any{string(kind)}
	if filter.Published != nil {
		query += ` AND published = ?`
		args = append(args, boolToInt(*filter.Published))
	}
	query += ` ORDER BY sort_order, title, id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []content.Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) Get(ctx context.Context, kind content.Kind, id string) (content.Record, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+recordColumns+` FROM records WHERE kind = ? AND id = ?`, string(kind), id)
	return scanRecord(row)
}

func (s *Store) GetBySlug(ctx context.Context, kind content.Kind, slug string) (content.Record, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+recordColumns+` FROM records WHERE kind = ? AND slug = ?`, string(kind), slug)
	return scanRecord(row)
}

func (s *Store) Create(ctx context.Context, r content.Record) (content.Record, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	now := s.timestamp()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	} else {
		r.CreatedAt = r.CreatedAt.UTC().Truncate(time.Second)
	}
	r.UpdatedAt = now

	c, err := encodeContent(r.Content)
	if err != nil {
		return content.Record{}, err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO records (`+recordColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, r.ID, string(r.Kind), r.Title, r.Slug, r.Order, boolToInt(r.Published), c,
		db.Unix(r.CreatedAt), db.Unix(r.UpdatedAt))
	if err != nil {
		if db.IsUniqueViolation(err) {
			return content.Record{}, content.ErrConflict
		}
		return content.Record{}, err
	}
	return r, nil
}

func (s *Store) Update(ctx context.Context, kind content.Kind, id string, p content.Patch) (content.Record, error) {
	var out content.Record
	err := db.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		r, err := scanRecord(tx.QueryRowContext(ctx,
			`SELECT `+recordColumns+` FROM records WHERE kind = ? AND id = ?`, string(kind), id))
		if err != nil {
			return err
		}
		p.Apply(&r)
		r.UpdatedAt = s.timestamp()

		c, err := encodeContent(r.Content)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, `
			UPDATE records
			SET title = ?, slug = ?, sort_order = ?, published = ?, content = ?, updated_at = ?
			WHERE id = ?
		`, r.Title, r.Slug, r.Order, boolToInt(r.Published), c, db.Unix(r.UpdatedAt), id)
		if err != nil {
			if db.IsUniqueViolation(err) {
				return content.ErrConflict
			}
			return err
		}
		out = r
		return nil
	})
	return out, err
}

func (s *Store) Delete(ctx context.Context, kind content.Kind, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM records WHERE kind = ? AND id = ?`, string(kind), id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return content.ErrNotFound
	}
	return nil
}

func (s *Store) Reorder(ctx context.Context, kind content.Kind, updates []content.OrderUpdate) error {
	now := db.Unix(s.timestamp())
	return db.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx,
			`UPDATE records SET sort_order = ?, updated_at = ? WHERE kind = ? AND id = ?`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, u := range updates {
			res, err := stmt.ExecContext(ctx, u.Order, now, string(kind), u.ID)
			if err != nil {
				return err
			}
			n, err := res.RowsAffected()
			if err != nil {
				return err
			}
			if n == 0 {
				return fmt.Errorf("%w: %s", content.ErrNotFound, u.ID)
			}
		}
		return nil
	})
}
