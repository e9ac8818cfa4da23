package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/oakinyemi/masjid-receipts/internal/entity"
)

type TagRepository interface {
	Create(ctx context.Context, t *entity.Tag) (*entity.Tag, error)
	GetByID(ctx context.Context, id int64) (*entity.Tag, error)
	GetByName(ctx context.Context, name string) (*entity.Tag, error)
	ListWithCounts(ctx context.Context) ([]*entity.TagWithCount, error)
	ListAll(ctx context.Context) ([]*entity.Tag, error)
	Delete(ctx context.Context, id int64) error
	Assign(ctx context.Context, receiptID, tagID int64) error
	Unassign(ctx context.Context, receiptID, tagID int64) error
	Assigned(ctx context.Context, receiptID, tagID int64) (bool, error)
}

type tagRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewTagRepository(db *sql.DB, logger *slog.Logger) TagRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &tagRepository{db: db, logger: logger}
}

func (r *tagRepository) Create(ctx context.Context, t *entity.Tag) (*entity.Tag, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO tags (name, description) VALUES ($1, $2)
		RETURNING id, name, COALESCE(description, '')`,
		t.Name, nullable(t.Description))
	var created entity.Tag
	if err := row.Scan(&created.ID, &created.Name, &created.Description); err != nil {
		r.logger.Error("failed to create tag", "name", t.Name, "error", err)
		return nil, err
	}
	return &created, nil
}

func (r *tagRepository) GetByID(ctx context.Context, id int64) (*entity.Tag, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT id, name, COALESCE(description, '') FROM tags WHERE id = $1", id)
	return scanTag(row)
}

// GetByName is case-sensitive, matching storage uniqueness. Case-insensitive
// search happens in the report engine over the snapshot.
func (r *tagRepository) GetByName(ctx context.Context, name string) (*entity.Tag, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT id, name, COALESCE(description, '') FROM tags WHERE name = $1", name)
	return scanTag(row)
}

func (r *tagRepository) ListWithCounts(ctx context.Context) ([]*entity.TagWithCount, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT t.id, t.name, COALESCE(t.description, ''), COUNT(rt.receipt_id)
		FROM tags t
		LEFT JOIN receipt_tags rt ON rt.tag_id = t.id
		GROUP BY t.id, t.name, t.description
		ORDER BY t.name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tags []*entity.TagWithCount
	for rows.Next() {
		var t entity.TagWithCount
		if err := rows.Scan(&t.ID, &t.Name, &t.Description, &t.ReceiptCount); err != nil {
			return nil, err
		}
		tags = append(tags, &t)
	}
	return tags, rows.Err()
}

func (r *tagRepository) ListAll(ctx context.Context) ([]*entity.Tag, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, name, COALESCE(description, '') FROM tags ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tags []*entity.Tag
	for rows.Next() {
		var t entity.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.Description); err != nil {
			return nil, err
		}
		tags = append(tags, &t)
	}
	return tags, rows.Err()
}

// Delete removes the tag and its receipt links. Links go explicitly rather
// than by cascade since sqlite only cascades with the foreign_keys pragma on.
func (r *tagRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM receipt_tags WHERE tag_id = $1", id); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx, "DELETE FROM tags WHERE id = $1", id)
	return err
}

func (r *tagRepository) Assign(ctx context.Context, receiptID, tagID int64) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO receipt_tags (receipt_id, tag_id) VALUES ($1, $2)", receiptID, tagID)
	return err
}

func (r *tagRepository) Unassign(ctx context.Context, receiptID, tagID int64) error {
	_, err := r.db.ExecContext(ctx,
		"DELETE FROM receipt_tags WHERE receipt_id = $1 AND tag_id = $2", receiptID, tagID)
	return err
}

func (r *tagRepository) Assigned(ctx context.Context, receiptID, tagID int64) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM receipt_tags WHERE receipt_id = $1 AND tag_id = $2",
		receiptID, tagID).Scan(&n)
	return n > 0, err
}

func scanTag(row rowScanner) (*entity.Tag, error) {
	var t entity.Tag
	err := row.Scan(&t.ID, &t.Name, &t.Description)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}
