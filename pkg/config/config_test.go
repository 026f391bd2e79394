package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("BOOTHTRACK_APP_ENV", "development")
	t.Setenv("BOOTHTRACK_MONGODB_URI", "mongodb://localhost:27017/boothtrack")
}

func TestLoadParsesDatabaseFromURI(t *testing.T) {
	setBaseEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "boothtrack", cfg.Mongo.Database)
	require.Equal(t, "8080", cfg.App.Port)
	require.True(t, cfg.App.IsDev())
}

func TestLoadPrefersExplicitDatabase(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("BOOTHTRACK_MONGODB_DATABASE", "expo_demo")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "expo_demo", cfg.Mongo.Database)
}

func TestLoadRejectsURIWithoutDatabase(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("BOOTHTRACK_MONGODB_URI", "mongodb://localhost:27017")

	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "database name not found")
}

func TestLoadRequiresURI(t *testing.T) {
	t.Setenv("BOOTHTRACK_APP_ENV", "development")
	t.Setenv("BOOTHTRACK_MONGODB_URI", "")

	_, err := Load()
	require.Error(t, err)
}
