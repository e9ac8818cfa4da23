package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/oakinyemi/masjid-receipts/internal/entity"
)

// ReceiptListFilter narrows List to exact-match criteria. Scope restricts
// the result to one uploader regardless of the other filters; it is how the
// service applies imam visibility at the storage level.
type ReceiptListFilter struct {
	Category    string
	PaymentMode *entity.PaymentMode
	UploadedBy  *int64
	Scope       *int64
	Skip        int
	Limit       int
}

type ReceiptRepository interface {
	Create(ctx context.Context, r *entity.Receipt) (*entity.Receipt, error)
	GetByID(ctx context.Context, id int64) (*entity.Receipt, error)
	List(ctx context.Context, f ReceiptListFilter) ([]*entity.Receipt, error)
	Delete(ctx context.Context, id int64) error
	Snapshot(ctx context.Context) ([]*entity.Receipt, error)
}

type receiptRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewReceiptRepository(db *sql.DB, logger *slog.Logger) ReceiptRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &receiptRepository{db: db, logger: logger}
}

const receiptColumns = "id, amount, category, payment_mode, COALESCE(note, ''), COALESCE(store_name, ''), COALESCE(image_path, ''), receipt_date, created_at, uploaded_by"

func (r *receiptRepository) Create(ctx context.Context, rec *entity.Receipt) (*entity.Receipt, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO receipts (amount, category, payment_mode, note, store_name, image_path, receipt_date, created_at, uploaded_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+receiptColumns,
		rec.Amount, rec.Category, string(rec.PaymentMode), nullable(rec.Note), nullable(rec.StoreName),
		nullable(rec.ImagePath), rec.ReceiptDate.UTC(), time.Now().UTC(), rec.UploadedBy,
	)
	created, err := scanReceipt(row)
	if err != nil {
		r.logger.Error("failed to create receipt", "error", err)
		return nil, err
	}
	return created, nil
}

func (r *receiptRepository) GetByID(ctx context.Context, id int64) (*entity.Receipt, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+receiptColumns+" FROM receipts WHERE id = $1", id)
	rec, err := scanReceipt(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := r.attachTags(ctx, []*entity.Receipt{rec}); err != nil {
		return nil, err
	}
	return rec, nil
}

func (r *receiptRepository) List(ctx context.Context, f ReceiptListFilter) ([]*entity.Receipt, error) {
	query := "SELECT " + receiptColumns + " FROM receipts WHERE 1=1"
	var args []any
	add := func(clause string, v any) {
		args = append(args, v)
		query += fmt.Sprintf(" AND %s = $%d", clause, len(args))
	}
	if f.Scope != nil {
		add("uploaded_by", *f.Scope)
	}
	if f.Category != "" {
		add("category", f.Category)
	}
	if f.PaymentMode != nil {
		add("payment_mode", string(*f.PaymentMode))
	}
	if f.UploadedBy != nil {
		add("uploaded_by", *f.UploadedBy)
	}
	query += " ORDER BY id"
	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if f.Skip > 0 {
		args = append(args, f.Skip)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("failed to list receipts", "error", err)
		return nil, err
	}
	defer rows.Close()

	recs, err := scanReceipts(rows)
	if err != nil {
		return nil, err
	}
	if err := r.attachTags(ctx, recs); err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *receiptRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM receipt_tags WHERE receipt_id = $1", id); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx, "DELETE FROM receipts WHERE id = $1", id)
	return err
}

// Snapshot loads every receipt with tags attached. Reports compute over this
// in memory; the engine never queries again mid-computation.
func (r *receiptRepository) Snapshot(ctx context.Context) ([]*entity.Receipt, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+receiptColumns+" FROM receipts ORDER BY id")
	if err != nil {
		r.logger.Error("failed to snapshot receipts", "error", err)
		return nil, err
	}
	defer rows.Close()

	recs, err := scanReceipts(rows)
	if err != nil {
		return nil, err
	}
	if err := r.attachTags(ctx, recs); err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *receiptRepository) attachTags(ctx context.Context, recs []*entity.Receipt) error {
	if len(recs) == 0 {
		return nil
	}
	byID := make(map[int64]*entity.Receipt, len(recs))
	args := make([]any, 0, len(recs))
	for _, rec := range recs {
		byID[rec.ID] = rec
		args = append(args, rec.ID)
	}

	query := fmt.Sprintf(`
		SELECT rt.receipt_id, t.id, t.name, COALESCE(t.description, '')
		FROM receipt_tags rt
		JOIN tags t ON t.id = rt.tag_id
		WHERE rt.receipt_id IN (%s)
		ORDER BY t.name`, placeholders(len(args), 0))
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("load receipt tags: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var receiptID int64
		var tag entity.Tag
		if err := rows.Scan(&receiptID, &tag.ID, &tag.Name, &tag.Description); err != nil {
			return err
		}
		if rec, ok := byID[receiptID]; ok {
			rec.Tags = append(rec.Tags, tag)
		}
	}
	return rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReceipt(row rowScanner) (*entity.Receipt, error) {
	var rec entity.Receipt
	var mode string
	if err := row.Scan(&rec.ID, &rec.Amount, &rec.Category, &mode, &rec.Note, &rec.StoreName,
		&rec.ImagePath, &rec.ReceiptDate, &rec.CreatedAt, &rec.UploadedBy); err != nil {
		return nil, err
	}
	rec.PaymentMode = entity.PaymentMode(strings.TrimSpace(mode))
	return &rec, nil
}

func scanReceipts(rows *sql.Rows) ([]*entity.Receipt, error) {
	var recs []*entity.Receipt
	for rows.Next() {
		rec, err := scanReceipt(rows)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
