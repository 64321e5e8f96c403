package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeQueryFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoadQuery_FromConfigJSON(t *testing.T) {
	dir := t.TempDir()
	writeQueryFile(t, dir, "config.json", `{"persona":"PhD Researcher","job_to_be_done":"Prepare a literature review"}`)

	q := LoadQuery(dir)
	assert.Equal(t, "PhD Researcher", q.Persona)
	assert.Equal(t, "Prepare a literature review", q.JobToBeDone)
}

func TestLoadQuery_FileOrder(t *testing.T) {
	dir := t.TempDir()
	writeQueryFile(t, dir, "persona.json", `{"persona":"From persona.json"}`)
	writeQueryFile(t, dir, "input.json", `{"persona":"From input.json"}`)

	q := LoadQuery(dir)
	assert.Equal(t, "From input.json", q.Persona, "input.json wins over persona.json")
}

func TestLoadQuery_MalformedFileFallsThrough(t *testing.T) {
	dir := t.TempDir()
	writeQueryFile(t, dir, "config.json", `{not json`)
	writeQueryFile(t, dir, "input.json", `{"persona":"Recovered"}`)

	q := LoadQuery(dir)
	assert.Equal(t, "Recovered", q.Persona)
}

func TestLoadQuery_Defaults(t *testing.T) {
	q := LoadQuery(t.TempDir())
	assert.Equal(t, DefaultPersona, q.Persona)
	assert.Equal(t, DefaultJob, q.JobToBeDone)
}

func TestLoadQuery_EnvFallback(t *testing.T) {
	t.Setenv("PERSONA", "Travel Planner")
	t.Setenv("JOB_DESCRIPTION", "Plan a trip")

	q := LoadQuery(t.TempDir())
	assert.Equal(t, "Travel Planner", q.Persona)
	assert.Equal(t, "Plan a trip", q.JobToBeDone)
}

func TestLoadQuery_MissingFieldsFilled(t *testing.T) {
	dir := t.TempDir()
	writeQueryFile(t, dir, "config.json", `{"persona":"Only Persona"}`)

	q := LoadQuery(dir)
	assert.Equal(t, "Only Persona", q.Persona)
	assert.Equal(t, DefaultJob, q.JobToBeDone)
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "text-embedding-004", cfg.AI.Model)
	assert.Equal(t, "gemini-2.0-flash", cfg.AI.SummaryModel)
	assert.Equal(t, "docsight.db", cfg.Cache.Path)
}

func TestLoadConfig_YAMLAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"ai:\n  provider: openai\n  model: text-embedding-3-small\n  api_key: from-file\n"), 0o644))

	t.Setenv("DOCSIGHT_API_KEY", "from-env")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "openai", cfg.AI.Provider)
	assert.Equal(t, "text-embedding-3-small", cfg.AI.Model)
	assert.Equal(t, "from-env", cfg.AI.APIKey, "environment wins over file")
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ai: [unbalanced"), 0o644))

	_, err := LoadConfig(path)
	require.Error(t, err)
}
