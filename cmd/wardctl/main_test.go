package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wardfinder/backend/internal/domain/entities"
	apperrors "github.com/wardfinder/backend/pkg/errors"
)

// writeFixtures creates a data dir and a two-hospital registry file
func writeFixtures(t *testing.T) (dataDir, hospitalsFile string) {
	t.Helper()

	dataDir = t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "imaging.json"),
		[]byte(`{"Level 1":[{"name":"X-Ray","color":"Blue"},{"name":"MRI","color":"Green"}]}`), 0o644))

	hospitalsFile = filepath.Join(t.TempDir(), "hospitals.yaml")
	require.NoError(t, os.WriteFile(hospitalsFile, []byte(`hospitals:
  - id: "1"
    name: Imaging Centre
    file: imaging.json
  - id: "2"
    name: Missing
    file: missing.json
`), 0o644))
	return dataDir, hospitalsFile
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dataDir, hospitalsFile := writeFixtures(t)

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--data-dir", dataDir, "--hospitals-file", hospitalsFile}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func TestSearchCommand(t *testing.T) {
	out, err := run(t, "search", "1", "RAY")
	require.NoError(t, err)

	var records []entities.LocationRecord
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "X-Ray", records[0].Name)
	assert.Equal(t, entities.LocationTypeArea, records[0].Type)
}

func TestSearchCommand_UnknownHospital(t *testing.T) {
	_, err := run(t, "search", "9", "ray")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeNotFound, apperrors.TypeOf(err))
}

func TestSearchCommand_RequiresTwoArgs(t *testing.T) {
	_, err := run(t, "search", "1")
	assert.Error(t, err)
}

func TestInspectCommand(t *testing.T) {
	out, err := run(t, "inspect", "1")
	require.NoError(t, err)

	var summary entities.HospitalSummary
	require.NoError(t, json.Unmarshal([]byte(out), &summary))
	assert.Equal(t, 2, summary.Count)
	assert.Len(t, summary.Sample, 2)
}

func TestVerifyCommand_ReportsMissingFile(t *testing.T) {
	out, err := run(t, "verify")
	require.Error(t, err)

	assert.Contains(t, err.Error(), "1 of 2")
	assert.Contains(t, out, "MISSING")
	assert.Contains(t, out, "imaging.json")
}

func TestHospitalsCommand(t *testing.T) {
	out, err := run(t, "hospitals")
	require.NoError(t, err)

	var hospitals []entities.Hospital
	require.NoError(t, json.Unmarshal([]byte(out), &hospitals))
	require.Len(t, hospitals, 2)
	assert.Equal(t, "Imaging Centre", hospitals[0].Name)
}

func TestSearchCommand_HelpListsSearchedFields(t *testing.T) {
	search, _, err := newRootCmd().Find([]string{"search"})
	require.NoError(t, err)

	for _, field := range []string{"name", "floor", "area colour", "entrance", "location", "type"} {
		assert.Contains(t, search.Long, field)
	}
}

func TestSearchCommand_MatchesType(t *testing.T) {
	out, err := run(t, "search", "1", "area")
	require.NoError(t, err)

	var records []entities.LocationRecord
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	assert.Len(t, records, 2)
}
