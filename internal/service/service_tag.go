package service

import (
	"context"
	"strings"

	"github.com/jacklucas/notes-api/internal/logger"
	"github.com/jacklucas/notes-api/internal/store"
	"github.com/jacklucas/notes-api/internal/utils"
	"github.com/jacklucas/notes-api/models"
)

// tagService implements [TagService]. Unlike the tag resolver used during
// note tagging, the explicit tag endpoints treat an existing name as a
// conflict rather than silently reusing the tag.
type tagService struct {
	tagRepository store.TagRepository
	uuid          *utils.UUIDGenerator

	logger *logger.Logger
}

func NewTagService(tagRepository store.TagRepository, logger *logger.Logger) TagService {
	return &tagService{
		tagRepository: tagRepository,
		uuid:          utils.NewUUIDGenerator(),
		logger:        logger,
	}
}

func (s *tagService) CreateTag(ctx context.Context, userID string, req models.CreateTagRequest) (*models.Tag, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, newValidationError(fieldError("name", "must not be blank"))
	}

	tag := models.NewTag(userID, name)
	tag.ID = s.uuid.Generate()

	if err := s.tagRepository.Create(ctx, tag); err != nil {
		return nil, err
	}

	return tag, nil
}

func (s *tagService) GetTag(ctx context.Context, userID string, tagID string) (*models.Tag, error) {
	return s.tagRepository.GetByID(ctx, tagID, userID)
}

func (s *tagService) ListTags(ctx context.Context, userID string, req models.PageRequest) (models.Page[*models.Tag], error) {
	req = req.Normalize()

	tags, total, err := s.tagRepository.List(ctx, userID, req)
	if err != nil {
		return models.Page[*models.Tag]{}, err
	}

	return models.NewPage(tags, req, total), nil
}

// RenameTag changes the tag's name. Renaming a tag to the name it already
// has succeeds without touching the database.
func (s *tagService) RenameTag(ctx context.Context, userID string, tagID string, req models.PutTagRequest) (*models.Tag, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, newValidationError(fieldError("name", "must not be blank"))
	}

	tag, err := s.tagRepository.GetByID(ctx, tagID, userID)
	if err != nil {
		return nil, err
	}

	if tag.Name == name {
		return tag, nil
	}

	if err := s.tagRepository.Rename(ctx, tagID, userID, name); err != nil {
		return nil, err
	}

	tag.Name = name
	return tag, nil
}

func (s *tagService) DeleteTag(ctx context.Context, userID string, tagID string) error {
	return s.tagRepository.Delete(ctx, tagID, userID)
}
