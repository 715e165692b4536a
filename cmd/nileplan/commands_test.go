package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "config.toml")}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestAttractionsFilter(t *testing.T) {
	out, err := run(t, "attractions", "--governorate", "Luxor")
	require.NoError(t, err)
	assert.Contains(t, out, "GOVERNORATE")
	for _, line := range strings.Split(strings.TrimSpace(out), "\n")[1:] {
		assert.Contains(t, line, "Luxor")
	}
}

func TestPlanPrintsDays(t *testing.T) {
	out, err := run(t, "plan", "--days", "2", "--select", "egyptian-museum,karnak")
	require.NoError(t, err)
	assert.Contains(t, out, "Day 1")
	assert.Contains(t, out, "Day 2")

	out, err = run(t, "plan")
	require.NoError(t, err)
	assert.Contains(t, out, "Nothing selected.")
}

func TestExportJSON(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, "export", "--format", "json", "--out", dir, "--select", "egyptian-museum")
	require.NoError(t, err)

	path := strings.TrimSpace(out)
	assert.Equal(t, dir, filepath.Dir(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc struct {
		Summary struct {
			TotalActivities int `json:"totalActivities"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, 1, doc.Summary.TotalActivities)
}

func TestExportRejectsEmptyPDF(t *testing.T) {
	_, err := run(t, "--store", "memory", "export", "--format", "pdf", "--out", t.TempDir())
	assert.Error(t, err)

	_, err = run(t, "export", "--format", "docx")
	assert.Error(t, err)
}

func TestProductsPriceFilter(t *testing.T) {
	out, err := run(t, "products", "--max", "0.01")
	require.NoError(t, err)
	assert.Equal(t, 1, len(strings.Split(strings.TrimSpace(out), "\n")))
}

func TestImportScraperFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scraped.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"name":"Khan Pottery","governorate":"Cairo","handicraft_types":["Pottery"]},
		{"name":"","governorate":"Giza","handicraft_types":["Glass"]}
	]`), 0o644))

	out, err := run(t, "import", path)
	require.NoError(t, err)
	assert.Contains(t, out, "khan-pottery")
	assert.Contains(t, out, "1 locations")
}

func TestInitWritesConfigOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg", "config.toml")
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", path, "init"})
	require.NoError(t, cmd.Execute())
	assert.FileExists(t, path)

	cmd = newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", path, "init"})
	assert.Error(t, cmd.Execute())
}
