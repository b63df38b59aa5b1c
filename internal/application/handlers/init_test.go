package handlers

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/flight-desk/internal/domain/mocks"
	"github.com/ersonp/flight-desk/internal/domain/ports"
	"github.com/ersonp/flight-desk/internal/infrastructure/config"
)

func TestInitHandler_Handle_Success(t *testing.T) {
	tmpDir := t.TempDir()
	resLog := mocks.NewResolutionLog()
	var openedPath string

	handler := NewInitHandler(func(path string) (ports.ResolutionLog, error) {
		openedPath = path
		return resLog, nil
	})

	result, err := handler.Handle(t.Context(), tmpDir)

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, config.ConfigFilePath(tmpDir), result.ConfigPath)
	assert.Equal(t, filepath.Join(tmpDir, ".flight", "resolutions.db"), result.DatabasePath)
	assert.Equal(t, result.DatabasePath, openedPath)

	// Verify config was created
	assert.True(t, config.Exists(tmpDir))
}

func TestInitHandler_Handle_WithoutLog(t *testing.T) {
	tmpDir := t.TempDir()

	result, err := NewInitHandler(nil).Handle(t.Context(), tmpDir)

	require.NoError(t, err)
	assert.True(t, config.Exists(tmpDir))
	assert.NotEmpty(t, result.DatabasePath)
}

func TestInitHandler_Handle_AlreadyInitialized(t *testing.T) {
	tmpDir := t.TempDir()

	// Initialize first
	err := config.WriteDefault(tmpDir)
	require.NoError(t, err)

	_, err = NewInitHandler(nil).Handle(t.Context(), tmpDir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "already initialized")
}

func TestInitHandler_Handle_SchemaError(t *testing.T) {
	resLog := mocks.NewResolutionLog()
	resLog.Err = errors.New("disk full")

	handler := NewInitHandler(func(string) (ports.ResolutionLog, error) { return resLog, nil })

	_, err := handler.Handle(t.Context(), t.TempDir())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating resolution log schema")
}

func TestInitHandler_Handle_OpenError(t *testing.T) {
	handler := NewInitHandler(func(string) (ports.ResolutionLog, error) { return nil, errors.New("locked") })

	_, err := handler.Handle(t.Context(), t.TempDir())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening resolution log")
}
