package receipts

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/oakinyemi/masjid-receipts/internal/common"
	"github.com/oakinyemi/masjid-receipts/internal/entity"
	"github.com/oakinyemi/masjid-receipts/internal/report"
	"github.com/oakinyemi/masjid-receipts/internal/repository"
)

// Service handles receipt business logic. Listing and search apply imam
// visibility before any user-supplied filter.
type Service struct {
	receiptRepo repository.ReceiptRepository
	tagRepo     repository.TagRepository
	userRepo    repository.UserRepository
	logger      *slog.Logger
}

func NewService(receiptRepo repository.ReceiptRepository, tagRepo repository.TagRepository, userRepo repository.UserRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{receiptRepo: receiptRepo, tagRepo: tagRepo, userRepo: userRepo, logger: logger}
}

// CreateRequest represents receipt creation parameters. ReceiptDate is
// lenient: a malformed value falls back to the current time, matching the
// default when it is absent.
type CreateRequest struct {
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	PaymentMode string  `json:"payment_mode"`
	Note        string  `json:"note"`
	StoreName   string  `json:"store_name"`
	ImagePath   string  `json:"image_path"`
	ReceiptDate string  `json:"receipt_date"`
}

// Create records a new receipt uploaded by the viewer. Any authenticated
// role may upload.
func (s *Service) Create(ctx context.Context, viewer *entity.User, req CreateRequest) (*entity.Receipt, error) {
	if req.Amount < 0 {
		return nil, common.InvalidArgumentError("amount must be non-negative")
	}
	if strings.TrimSpace(req.Category) == "" {
		return nil, common.InvalidArgumentError("category is required")
	}
	mode, err := entity.ParsePaymentMode(req.PaymentMode)
	if err != nil {
		return nil, common.InvalidArgumentError(err.Error())
	}

	receiptDate := time.Now().UTC()
	if req.ReceiptDate != "" {
		if t, err := time.Parse("2006-01-02", req.ReceiptDate); err == nil {
			receiptDate = t
		} else if t, err := time.Parse(time.RFC3339, req.ReceiptDate); err == nil {
			receiptDate = t
		}
	}

	created, err := s.receiptRepo.Create(ctx, &entity.Receipt{
		Amount:      req.Amount,
		Category:    req.Category,
		PaymentMode: mode,
		Note:        req.Note,
		StoreName:   req.StoreName,
		ImagePath:   req.ImagePath,
		ReceiptDate: receiptDate,
		UploadedBy:  viewer.ID,
	})
	if err != nil {
		s.logger.Error("failed to create receipt", "uploaded_by", viewer.ID, "error", err)
		return nil, common.InternalErrorf("create receipt: %v", err)
	}

	s.logger.Info("receipt created", "id", created.ID, "amount", created.Amount, "uploaded_by", viewer.ID)
	return created, nil
}

// ListRequest represents exact-match listing parameters with pagination.
type ListRequest struct {
	Skip        int
	Limit       int
	Category    string
	PaymentMode string
	UploadedBy  *int64
}

const defaultListLimit = 100

// List returns receipts visible to the viewer, uploader names resolved.
func (s *Service) List(ctx context.Context, viewer *entity.User, req ListRequest) ([]*entity.ReceiptWithUploader, error) {
	filter := repository.ReceiptListFilter{
		Category:   req.Category,
		UploadedBy: req.UploadedBy,
		Skip:       req.Skip,
		Limit:      req.Limit,
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}
	if req.PaymentMode != "" {
		mode, err := entity.ParsePaymentMode(req.PaymentMode)
		if err != nil {
			return nil, common.InvalidArgumentError(err.Error())
		}
		filter.PaymentMode = &mode
	}
	if viewer.Role == entity.RoleImam {
		filter.Scope = &viewer.ID
	}

	recs, err := s.receiptRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("failed to list receipts", "viewer", viewer.ID, "error", err)
		return nil, common.InternalErrorf("list receipts: %v", err)
	}
	return s.withUploaders(ctx, recs)
}

// SearchRequest represents the advanced search criteria. All fields are
// optional and conjunctive.
type SearchRequest struct {
	StoreName   string
	Category    string
	TagName     string
	MinAmount   *float64
	MaxAmount   *float64
	StartDate   string
	EndDate     string
	PaymentMode string
}

// Search runs the filter engine over a snapshot of the viewer's visible
// receipts. An unresolvable tag name yields an empty result, not an error.
func (s *Service) Search(ctx context.Context, viewer *entity.User, req SearchRequest) ([]*entity.ReceiptWithUploader, error) {
	criteria := report.Criteria{
		StoreName: req.StoreName,
		Category:  req.Category,
		TagName:   req.TagName,
		MinAmount: req.MinAmount,
		MaxAmount: req.MaxAmount,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}
	if req.MinAmount != nil && req.MaxAmount != nil && *req.MinAmount > *req.MaxAmount {
		return nil, common.InvalidArgumentError("min_amount must not exceed max_amount")
	}
	if req.PaymentMode != "" {
		mode, err := entity.ParsePaymentMode(req.PaymentMode)
		if err != nil {
			return nil, common.InvalidArgumentError(err.Error())
		}
		criteria.PaymentMode = &mode
	}

	recs, err := s.receiptRepo.Snapshot(ctx)
	if err != nil {
		return nil, common.InternalErrorf("snapshot receipts: %v", err)
	}
	tags, err := s.tagRepo.ListAll(ctx)
	if err != nil {
		return nil, common.InternalErrorf("list tags: %v", err)
	}

	scoped := report.Scope(recs, viewer.Role, viewer.ID)
	matched := report.Filter(scoped, report.Build(criteria, tags))

	s.logger.Info("receipts searched", "viewer", viewer.ID, "matched", len(matched))
	return s.withUploaders(ctx, matched)
}

// Get returns one receipt. Imam may only read their own.
func (s *Service) Get(ctx context.Context, viewer *entity.User, id int64) (*entity.ReceiptWithUploader, error) {
	rec, err := s.receiptRepo.GetByID(ctx, id)
	if err != nil {
		return nil, common.InternalErrorf("get receipt: %v", err)
	}
	if rec == nil {
		return nil, common.NotFoundError("receipt not found")
	}
	if viewer.Role == entity.RoleImam && rec.UploadedBy != viewer.ID {
		return nil, common.PermissionDeniedError("you can only view your own receipts")
	}
	projected, err := s.withUploaders(ctx, []*entity.Receipt{rec})
	if err != nil {
		return nil, err
	}
	return projected[0], nil
}

// Delete removes a receipt. Only the finance secretary may delete.
func (s *Service) Delete(ctx context.Context, viewer *entity.User, id int64) error {
	if viewer.Role != entity.RoleFinanceSecretary {
		return common.PermissionDeniedError("not enough permissions")
	}
	rec, err := s.receiptRepo.GetByID(ctx, id)
	if err != nil {
		return common.InternalErrorf("get receipt: %v", err)
	}
	if rec == nil {
		return common.NotFoundError("receipt not found")
	}
	if err := s.receiptRepo.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete receipt", "id", id, "error", err)
		return common.InternalErrorf("delete receipt: %v", err)
	}
	s.logger.Info("receipt deleted", "id", id, "by", viewer.ID)
	return nil
}

// withUploaders builds the projection structs by value instead of patching
// storage records.
func (s *Service) withUploaders(ctx context.Context, recs []*entity.Receipt) ([]*entity.ReceiptWithUploader, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, common.InternalErrorf("list users: %v", err)
	}
	byID := make(map[int64]*entity.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	out := make([]*entity.ReceiptWithUploader, 0, len(recs))
	for _, rec := range recs {
		name := ""
		if u, ok := byID[rec.UploadedBy]; ok {
			name = u.FullName
		}
		out = append(out, &entity.ReceiptWithUploader{Receipt: *rec, UploaderName: name})
	}
	return out, nil
}
