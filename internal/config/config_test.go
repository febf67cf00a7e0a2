package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/prabhavk/entwine/internal/placement"
)

func TestDefaultUsesPlacementDefaultBound(t *testing.T) {
	cfg := Default()
	require.Equal(t, placement.DefaultBoundMultiplier, cfg.SearchBoundMultiplier)
	require.Empty(t, cfg.PlaceholderDate)
}

func TestLoadEmptyPathReturnsDefault(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadParsesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "entwine.yaml")
	require.NoError(t, os.WriteFile(path, []byte("placeholderDate: \"0000-00-30\"\nsearchBoundMultiplier: 50\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "0000-00-30", cfg.PlaceholderDate)
	require.Equal(t, 50, cfg.SearchBoundMultiplier)
}

func TestLoadRejectsNonPositiveBoundByFallingBackToDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "entwine.yaml")
	require.NoError(t, os.WriteFile(path, []byte("searchBoundMultiplier: 0\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, placement.DefaultBoundMultiplier, cfg.SearchBoundMultiplier)
}
