package genconfig

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultValues(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 500, cfg.NumPoints)
	assert.Equal(t, "normal", cfg.Distribution)
	assert.True(t, cfg.Deduplicate)
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gen.yml")

	want := Config{
		NumPoints:        123,
		Distribution:     "uniform",
		SmoothIterations: 7,
		ExtentX:          4,
		ExtentY:          5,
		Deduplicate:      false,
	}

	assert.NoError(t, Save(path, want))

	got, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestExistsDistinguishesMissingFromPresent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gen.yml")

	ok, err := Exists(path)
	assert.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, Save(path, Default()))

	ok, err = Exists(path)
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestLoadMissingFileReturnsDefaultsAndError(t *testing.T) {
	cfg, err := Load("/nonexistent/path/gen.yml")
	assert.Error(t, err)
	assert.Equal(t, Default(), cfg)
}
