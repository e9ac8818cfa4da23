package tags

import (
	"context"
	"log/slog"
	"strings"

	"github.com/oakinyemi/masjid-receipts/internal/common"
	"github.com/oakinyemi/masjid-receipts/internal/entity"
	"github.com/oakinyemi/masjid-receipts/internal/repository"
)

// Service handles tag management. Mutations are restricted to the finance
// secretary; any authenticated role may read.
type Service struct {
	tagRepo     repository.TagRepository
	receiptRepo repository.ReceiptRepository
	logger      *slog.Logger
}

func NewService(tagRepo repository.TagRepository, receiptRepo repository.ReceiptRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{tagRepo: tagRepo, receiptRepo: receiptRepo, logger: logger}
}

func requireFinanceSecretary(viewer *entity.User) error {
	if viewer.Role != entity.RoleFinanceSecretary {
		return common.PermissionDeniedError("not enough permissions")
	}
	return nil
}

// Create adds a tag with a unique name.
func (s *Service) Create(ctx context.Context, viewer *entity.User, name, description string) (*entity.Tag, error) {
	if err := requireFinanceSecretary(viewer); err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) == "" {
		return nil, common.InvalidArgumentError("name is required")
	}
	existing, err := s.tagRepo.GetByName(ctx, name)
	if err != nil {
		return nil, common.InternalErrorf("lookup tag: %v", err)
	}
	if existing != nil {
		return nil, common.AlreadyExistsError("tag '" + name + "' already exists")
	}

	created, err := s.tagRepo.Create(ctx, &entity.Tag{Name: name, Description: description})
	if err != nil {
		s.logger.Error("failed to create tag", "name", name, "error", err)
		return nil, common.InternalErrorf("create tag: %v", err)
	}
	s.logger.Info("tag created", "id", created.ID, "name", created.Name)
	return created, nil
}

// List returns every tag with its derived receipt count.
func (s *Service) List(ctx context.Context) ([]*entity.TagWithCount, error) {
	tags, err := s.tagRepo.ListWithCounts(ctx)
	if err != nil {
		return nil, common.InternalErrorf("list tags: %v", err)
	}
	return tags, nil
}

// Get returns one tag by id.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Tag, error) {
	tag, err := s.tagRepo.GetByID(ctx, id)
	if err != nil {
		return nil, common.InternalErrorf("get tag: %v", err)
	}
	if tag == nil {
		return nil, common.NotFoundError("tag not found")
	}
	return tag, nil
}

// Delete removes a tag; receipt links go with it.
func (s *Service) Delete(ctx context.Context, viewer *entity.User, id int64) error {
	if err := requireFinanceSecretary(viewer); err != nil {
		return err
	}
	tag, err := s.tagRepo.GetByID(ctx, id)
	if err != nil {
		return common.InternalErrorf("get tag: %v", err)
	}
	if tag == nil {
		return common.NotFoundError("tag not found")
	}
	if err := s.tagRepo.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete tag", "id", id, "error", err)
		return common.InternalErrorf("delete tag: %v", err)
	}
	s.logger.Info("tag deleted", "id", id, "name", tag.Name)
	return nil
}

// Assign links a tag to a receipt.
func (s *Service) Assign(ctx context.Context, viewer *entity.User, receiptID, tagID int64) error {
	if err := requireFinanceSecretary(viewer); err != nil {
		return err
	}
	tag, err := s.checkPair(ctx, receiptID, tagID)
	if err != nil {
		return err
	}
	assigned, err := s.tagRepo.Assigned(ctx, receiptID, tagID)
	if err != nil {
		return common.InternalErrorf("check assignment: %v", err)
	}
	if assigned {
		return common.AlreadyExistsError("tag '" + tag.Name + "' is already assigned to this receipt")
	}
	if err := s.tagRepo.Assign(ctx, receiptID, tagID); err != nil {
		return common.InternalErrorf("assign tag: %v", err)
	}
	s.logger.Info("tag assigned", "receipt_id", receiptID, "tag_id", tagID)
	return nil
}

// Unassign removes a tag from a receipt.
func (s *Service) Unassign(ctx context.Context, viewer *entity.User, receiptID, tagID int64) error {
	if err := requireFinanceSecretary(viewer); err != nil {
		return err
	}
	tag, err := s.checkPair(ctx, receiptID, tagID)
	if err != nil {
		return err
	}
	assigned, err := s.tagRepo.Assigned(ctx, receiptID, tagID)
	if err != nil {
		return common.InternalErrorf("check assignment: %v", err)
	}
	if !assigned {
		return common.InvalidArgumentError("tag '" + tag.Name + "' is not assigned to this receipt")
	}
	if err := s.tagRepo.Unassign(ctx, receiptID, tagID); err != nil {
		return common.InternalErrorf("unassign tag: %v", err)
	}
	s.logger.Info("tag unassigned", "receipt_id", receiptID, "tag_id", tagID)
	return nil
}

func (s *Service) checkPair(ctx context.Context, receiptID, tagID int64) (*entity.Tag, error) {
	rec, err := s.receiptRepo.GetByID(ctx, receiptID)
	if err != nil {
		return nil, common.InternalErrorf("get receipt: %v", err)
	}
	if rec == nil {
		return nil, common.NotFoundError("receipt not found")
	}
	tag, err := s.tagRepo.GetByID(ctx, tagID)
	if err != nil {
		return nil, common.InternalErrorf("get tag: %v", err)
	}
	if tag == nil {
		return nil, common.NotFoundError("tag not found")
	}
	return tag, nil
}
