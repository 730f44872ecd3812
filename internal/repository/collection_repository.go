// Package repository realizes the document-store side of the application:
// two collections of movie records ("movies" and "favorites") with opaque
// store-assigned ids, equality-filtered listing by owner, full-record
// replace and delete-by-id. Both collections share one implementation since
// a favorite is a copied movie record with the same field shape.
package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/jotarsh7/Assignment-3/internal/model"
)

// CollectionRepo encapsulates the queries for one movie collection. The
// table name is fixed at construction; it is never taken from input.
type CollectionRepo struct {
	db    *sql.DB
	table string
}

// NewCatalogRepo returns the repository backed by the primary movies table.
func NewCatalogRepo(db *sql.DB) *CollectionRepo {
	return &CollectionRepo{db: db, table: "movies"}
}

// NewFavoritesRepo returns the repository backed by the favorites table.
func NewFavoritesRepo(db *sql.DB) *CollectionRepo {
	return &CollectionRepo{db: db, table: "favorites"}
}

// ListByOwner returns every record whose owner_id equals ownerID. Ordering
// follows insertion order (created_at, id); callers must not rely on more
// than that.
func (r *CollectionRepo) ListByOwner(ctx context.Context, ownerID string) ([]model.Movie, error) {
	q := `SELECT id, owner_id, title, studio, description, image_url, critics_rating
	      FROM ` + r.table + ` WHERE owner_id = ? ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, q, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Movie
	for rows.Next() {
		var m model.Movie
		if err := rows.Scan(&m.ID, &m.OwnerID, &m.Title, &m.Studio,
			&m.Description, &m.ImageURL, &m.CriticsRating); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Insert persists a new record, assigning it a fresh id. The returned movie
// is the input with the id populated; any caller-supplied id is ignored.
func (r *CollectionRepo) Insert(ctx context.Context, m model.Movie) (model.Movie, error) {
	m.ID = uuid.NewString()
	q := `INSERT INTO ` + r.table + ` (id, owner_id, title, studio, description, image_url, critics_rating)
	      VALUES (?,?,?,?,?,?,?)`
	if _, err := r.db.ExecContext(ctx, q,
		m.ID, m.OwnerID, m.Title, m.Studio, m.Description, m.ImageURL, m.CriticsRating); err != nil {
		return model.Movie{}, err
	}
	return m, nil
}

// Replace overwrites the full record at m.ID, provided it belongs to
// m.OwnerID. ErrNotFound is returned when no row matches.
func (r *CollectionRepo) Replace(ctx context.Context, m model.Movie) error {
	q := `UPDATE ` + r.table + `
	      SET title = ?, studio = ?, description = ?, image_url = ?, critics_rating = ?
	      WHERE id = ? AND owner_id = ?`
	res, err := r.db.ExecContext(ctx, q,
		m.Title, m.Studio, m.Description, m.ImageURL, m.CriticsRating, m.ID, m.OwnerID)
	if err != nil {
		return err
	}
	// RowsAffected is 0 both for a missing row and for an identical rewrite;
	// MySQL reports changed rows by default, so check existence explicitly.
	if n, _ := res.RowsAffected(); n == 0 {
		var one int
		err := r.db.QueryRowContext(ctx,
			`SELECT 1 FROM `+r.table+` WHERE id = ? AND owner_id = ? LIMIT 1`,
			m.ID, m.OwnerID).Scan(&one)
		if err == sql.ErrNoRows {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// Delete removes the record at id for the given owner. Deleting an id that
// does not exist is a no-op.
func (r *CollectionRepo) Delete(ctx context.Context, ownerID, id string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM `+r.table+` WHERE id = ? AND owner_id = ?`, id, ownerID)
	return err
}
