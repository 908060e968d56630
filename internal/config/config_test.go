package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default("./archivo", "./public/data/clients")
	cfg.Clients = append(cfg.Clients, Client{
		Folder: "Jose Manuel Luengas", ID: "luengas",
		Name: "José Manuel Luengas", LegalName: "José Manuel Luengas S.A. de C.V.",
	})

	path := filepath.Join(t.TempDir(), "balanza.yaml")
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg.SourceDir, got.SourceDir)
	assert.Equal(t, cfg.OutputDir, got.OutputDir)
	assert.Equal(t, cfg.LogDir, got.LogDir)
	require.Len(t, got.Clients, 2)
	assert.Equal(t, "luengas", got.Clients[1].ID)
	assert.Equal(t, "José Manuel Luengas", got.Clients[1].Name)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate(t *testing.T) {
	cfg := Default("src", "out")
	require.NoError(t, cfg.Validate())

	cfg.SourceDir = ""
	assert.Error(t, cfg.Validate())

	cfg = Default("src", "out")
	cfg.Clients = append(cfg.Clients, Client{Folder: "X", ID: "fiduz"})
	assert.Error(t, cfg.Validate(), "duplicate id")

	cfg = Default("src", "out")
	cfg.Clients[0].ID = ""
	assert.Error(t, cfg.Validate())
}
