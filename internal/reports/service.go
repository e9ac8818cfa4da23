package reports

import (
	"context"
	"log/slog"
	"time"

	"github.com/oakinyemi/masjid-receipts/internal/common"
	"github.com/oakinyemi/masjid-receipts/internal/entity"
	"github.com/oakinyemi/masjid-receipts/internal/export"
	"github.com/oakinyemi/masjid-receipts/internal/report"
	"github.com/oakinyemi/masjid-receipts/internal/repository"
)

// Service runs the report engine over a fresh storage snapshot. Every
// operation checks the viewer's entitlement before fetching anything.
type Service struct {
	receiptRepo repository.ReceiptRepository
	tagRepo     repository.TagRepository
	userRepo    repository.UserRepository
	encode      func([]report.Sheet) ([]byte, error)
	logger      *slog.Logger
}

func NewService(receiptRepo repository.ReceiptRepository, tagRepo repository.TagRepository, userRepo repository.UserRepository, encode func([]report.Sheet) ([]byte, error), logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		receiptRepo: receiptRepo,
		tagRepo:     tagRepo,
		userRepo:    userRepo,
		encode:      encode,
		logger:      logger,
	}
}

const (
	minReportYear = 2000
	maxReportYear = 2100
)

func (s *Service) authorize(viewer *entity.User, op report.Operation) error {
	if !report.Allowed(viewer.Role, op) {
		return common.PermissionDeniedError("not enough permissions")
	}
	return nil
}

func validateMonth(month *int) error {
	if month != nil && (*month < 1 || *month > 12) {
		return common.InvalidArgumentError("month must be between 1 and 12")
	}
	return nil
}

func validateYear(year *int) error {
	if year != nil && (*year < minReportYear || *year > maxReportYear) {
		return common.InvalidArgumentErrorf("year must be between %d and %d", minReportYear, maxReportYear)
	}
	return nil
}

// snapshot loads the full record set one report computes over.
func (s *Service) snapshot(ctx context.Context) (*report.Snapshot, error) {
	recs, err := s.receiptRepo.Snapshot(ctx)
	if err != nil {
		return nil, common.InternalErrorf("snapshot receipts: %v", err)
	}
	tags, err := s.tagRepo.ListAll(ctx)
	if err != nil {
		return nil, common.InternalErrorf("list tags: %v", err)
	}
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, common.InternalErrorf("list users: %v", err)
	}
	return &report.Snapshot{Receipts: recs, Tags: tags, Users: users}, nil
}

// TallyRequest narrows a tally to a period and, optionally, one tag.
type TallyRequest struct {
	Month   *int
	Year    *int
	TagID   *int64
	TagName string
}

// Tally returns grouped totals by category and payment mode.
func (s *Service) Tally(ctx context.Context, viewer *entity.User, req TallyRequest) (*report.Tally, error) {
	if err := s.authorize(viewer, report.OpTally); err != nil {
		return nil, err
	}
	if err := validateMonth(req.Month); err != nil {
		return nil, err
	}
	if err := validateYear(req.Year); err != nil {
		return nil, err
	}

	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	t := report.BuildTally(snap, viewer.Role, viewer.ID, report.Criteria{
		Month:   req.Month,
		Year:    req.Year,
		TagID:   req.TagID,
		TagName: req.TagName,
	})
	s.logger.Info("tally computed", "viewer", viewer.ID, "receipts", t.ReceiptCount)
	return &t, nil
}

// ReceiptsByTag returns every visible receipt carrying the named tag. Unlike
// tag filtering inside search, an unknown name here is an error.
func (s *Service) ReceiptsByTag(ctx context.Context, viewer *entity.User, tagName string) ([]*entity.ReceiptWithUploader, error) {
	if err := s.authorize(viewer, report.OpReceiptsByTag); err != nil {
		return nil, err
	}
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	tag := report.ResolveTag(snap.Tags, nil, tagName)
	if tag == nil {
		return nil, common.NotFoundError("tag '" + tagName + "' not found")
	}

	scoped := report.Scope(snap.Receipts, viewer.Role, viewer.ID)
	id := tag.ID
	matched := report.Filter(scoped, report.Build(report.Criteria{TagID: &id}, snap.Tags))

	byID := snap.UserByID()
	out := make([]*entity.ReceiptWithUploader, 0, len(matched))
	for _, rec := range matched {
		name := ""
		if u, ok := byID[rec.UploadedBy]; ok {
			name = u.FullName
		}
		out = append(out, &entity.ReceiptWithUploader{Receipt: *rec, UploaderName: name})
	}
	return out, nil
}

// MonthlyBreakdown returns per-month totals for one calendar year.
func (s *Service) MonthlyBreakdown(ctx context.Context, viewer *entity.User, year int) (*report.MonthlyBreakdown, error) {
	if err := s.authorize(viewer, report.OpMonthlyBreakdown); err != nil {
		return nil, err
	}
	if err := validateYear(&year); err != nil {
		return nil, err
	}
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	b := report.BuildMonthlyBreakdown(snap, viewer.Role, viewer.ID, year)
	return &b, nil
}

// Summary returns the all-time dashboard summary.
func (s *Service) Summary(ctx context.Context, viewer *entity.User) (*report.Summary, error) {
	if err := s.authorize(viewer, report.OpSummary); err != nil {
		return nil, err
	}
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	sum := report.BuildSummary(snap, viewer.Role, viewer.ID)
	return &sum, nil
}

// Charts returns the dashboard chart payload for an optional period.
func (s *Service) Charts(ctx context.Context, viewer *entity.User, month, year *int) (*report.ChartData, error) {
	if err := s.authorize(viewer, report.OpCharts); err != nil {
		return nil, err
	}
	if err := validateMonth(month); err != nil {
		return nil, err
	}
	if err := validateYear(year); err != nil {
		return nil, err
	}
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	data := report.BuildChartData(snap, viewer.Role, viewer.ID, month, year)
	return &data, nil
}

// Export carries an encoded spreadsheet and the filename to serve it under.
type Export struct {
	Filename string
	Content  []byte
}

// ExportReceipts encodes the visible, filtered receipts as a spreadsheet.
func (s *Service) ExportReceipts(ctx context.Context, viewer *entity.User, req TallyRequest) (*Export, error) {
	if err := s.authorize(viewer, report.OpExport); err != nil {
		return nil, err
	}
	if err := validateMonth(req.Month); err != nil {
		return nil, err
	}
	if err := validateYear(req.Year); err != nil {
		return nil, err
	}

	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	scoped := report.Scope(snap.Receipts, viewer.Role, viewer.ID)
	matched := report.Filter(scoped, report.Build(report.Criteria{
		Month:   req.Month,
		Year:    req.Year,
		TagID:   req.TagID,
		TagName: req.TagName,
	}, snap.Tags))

	content, err := s.encode([]report.Sheet{report.ReceiptListing(matched, snap.Users)})
	if err != nil {
		return nil, common.InternalErrorf("encode export: %v", err)
	}
	s.logger.Info("receipts exported", "viewer", viewer.ID, "receipts", len(matched))
	return &Export{Filename: export.Filename("masjid_receipts", time.Now().UTC()), Content: content}, nil
}

// ExportTally encodes the tally report as a two-sheet spreadsheet.
func (s *Service) ExportTally(ctx context.Context, viewer *entity.User, req TallyRequest) (*Export, error) {
	if err := s.authorize(viewer, report.OpExport); err != nil {
		return nil, err
	}
	if err := validateMonth(req.Month); err != nil {
		return nil, err
	}
	if err := validateYear(req.Year); err != nil {
		return nil, err
	}

	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	t := report.BuildTally(snap, viewer.Role, viewer.ID, report.Criteria{
		Month:   req.Month,
		Year:    req.Year,
		TagID:   req.TagID,
		TagName: req.TagName,
	})

	content, err := s.encode(report.TallySheets(t, time.Now().UTC()))
	if err != nil {
		return nil, common.InternalErrorf("encode export: %v", err)
	}
	s.logger.Info("tally exported", "viewer", viewer.ID, "receipts", t.ReceiptCount)
	return &Export{Filename: export.Filename("masjid_tally_report", time.Now().UTC()), Content: content}, nil
}
