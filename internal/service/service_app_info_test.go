package service

import (
	"context"
	"testing"

	"github.com/jacklucas/notes-api/internal/config"
	"github.com/jacklucas/notes-api/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppInfoService_ReturnsVersion(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.2.3"}, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", svc.GetAppVersion(context.Background()))
}

func TestNewAppInfoService_MissingVersion(t *testing.T) {
	_, err := NewAppInfoService(config.App{}, logger.Nop())
	require.ErrorIs(t, err, ErrVersionIsNotSpecified)
}
