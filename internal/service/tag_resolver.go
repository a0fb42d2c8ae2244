package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jacklucas/notes-api/internal/logger"
	"github.com/jacklucas/notes-api/internal/store"
	"github.com/jacklucas/notes-api/internal/utils"
	"github.com/jacklucas/notes-api/models"
)

// tagResolver turns a raw list of tag names into persisted [models.Tag]
// records owned by one user, creating tags that do not exist yet.
//
// Normalization: each name is trimmed, blank names are discarded, and
// duplicates collapse to a single tag while the first occurrence keeps its
// position. Matching is exact and case-sensitive, so "Work" and "work"
// resolve to two different tags.
type tagResolver struct {
	tagRepository store.TagRepository
	uuid          *utils.UUIDGenerator
	logger        *logger.Logger
}

func newTagResolver(tagRepository store.TagRepository, uuid *utils.UUIDGenerator, logger *logger.Logger) *tagResolver {
	return &tagResolver{
		tagRepository: tagRepository,
		uuid:          uuid,
		logger:        logger,
	}
}

// Resolve maps the given names to the owner's tags, creating missing ones.
// Two concurrent resolutions of the same new name may both try the insert;
// the loser of that race re-reads the row the winner created, so the call
// still succeeds.
func (r *tagResolver) Resolve(ctx context.Context, userID string, names []string) ([]models.Tag, error) {
	normalized := normalizeTagNames(names)
	if len(normalized) == 0 {
		return nil, nil
	}

	tags := make([]models.Tag, 0, len(normalized))

	for _, name := range normalized {
		tag, err := r.findOrCreate(ctx, userID, name)
		if err != nil {
			return nil, err
		}
		tags = append(tags, *tag)
	}

	return tags, nil
}

func (r *tagResolver) findOrCreate(ctx context.Context, userID string, name string) (*models.Tag, error) {
	log := logger.FromContext(ctx)

	existing, err := r.tagRepository.FindByName(ctx, userID, name)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, store.ErrTagNotFound) {
		return nil, fmt.Errorf("failed to look up tag %q: %w", name, err)
	}

	tag := models.NewTag(userID, name)
	tag.ID = r.uuid.Generate()

	createErr := r.tagRepository.Create(ctx, tag)
	if createErr == nil {
		return tag, nil
	}

	// Lost the race to a concurrent insert: the tag now exists, use it.
	if errors.Is(createErr, store.ErrTagNameTaken) {
		log.Debug().
			Str("func", "tagResolver.findOrCreate").
			Str("user_id", userID).
			Str("name", name).
			Msg("tag created concurrently, re-reading")
		return r.tagRepository.FindByName(ctx, userID, name)
	}

	return nil, fmt.Errorf("failed to create tag %q: %w", name, createErr)
}

// normalizeTagNames trims every name, drops blanks, and removes duplicates
// while preserving first-occurrence order.
func normalizeTagNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	normalized := make([]string, 0, len(names))

	for _, name := range names {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			continue
		}
		if _, dup := seen[trimmed]; dup {
			continue
		}
		seen[trimmed] = struct{}{}
		normalized = append(normalized, trimmed)
	}

	return normalized
}
