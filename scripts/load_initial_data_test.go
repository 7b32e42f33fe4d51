package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedDataIsValid(t *testing.T) {
	seed, err := loadSeedFiles("data")
	require.NoError(t, err)

	assert.NotEmpty(t, seed.Users)
	assert.NotEmpty(t, seed.Teams)
	assert.NotEmpty(t, seed.Questions)
	assert.NoError(t, validateSeed(seed))
}

func TestLoadSeedFiles_MergesFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.yaml"), []byte("users:\n  - email: a@example.com\n"), 0o600))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nested", "b.yml"), []byte("users:\n  - email: b@example.com\nquestions:\n  - text: Q\n    type: text\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("ignored"), 0o600))

	seed, err := loadSeedFiles(dir)
	require.NoError(t, err)
	assert.Len(t, seed.Users, 2)
	assert.Len(t, seed.Questions, 1)
}

func TestValidateSeed(t *testing.T) {
	seed := &SeedFile{
		Users: []UserData{{Email: "Boss@Example.com", Role: "manager"}, {Email: "x@example.com", Role: "intern"}},
		Teams: []TeamData{{Name: "Core", ManagerEmail: "boss@example.com", Members: []string{"ghost@example.com"}}},
		Questions: []QuestionData{
			{Text: "Rate it", Type: "rating_1_7"},
			{Text: "Team one", Type: "text", Team: "Missing"},
		},
	}

	err := validateSeed(seed)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid role "intern"`)
	assert.Contains(t, err.Error(), "unknown member ghost@example.com")
	assert.Contains(t, err.Error(), `invalid type "rating_1_7"`)
	assert.Contains(t, err.Error(), "unknown team Missing")
	assert.NotContains(t, err.Error(), "unknown manager")
}
