package service

import (
	"github.com/jacklucas/notes-api/internal/config"
	"github.com/jacklucas/notes-api/internal/logger"
	"github.com/jacklucas/notes-api/internal/store"
)

type Services struct {
	NoteService    NoteService
	TagService     TagService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		NoteService:    NewNoteService(storages.NoteRepository, storages.TagRepository, logger),
		TagService:     NewTagService(storages.TagRepository, logger),
		AppInfoService: appInfoService,
	}, nil
}
