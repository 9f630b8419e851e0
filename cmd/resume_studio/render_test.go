package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadDataFile_Valid(t *testing.T) {
	path := writeTempJSON(t, "resume.json", `{"personal": {"name": "Ada"}, "skills": ["Go"]}`)

	raw, err := readDataFile(path)
	require.NoError(t, err)
	assert.Contains(t, raw, "personal")
	assert.Contains(t, raw, "skills")
}

func TestReadDataFile_Empty(t *testing.T) {
	path := writeTempJSON(t, "resume.json", `{}`)

	_, err := readDataFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "contains no resume data")
}

func TestReadDataFile_Missing(t *testing.T) {
	_, err := readDataFile(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")
}

func TestReadDataFile_Malformed(t *testing.T) {
	path := writeTempJSON(t, "resume.json", `{broken`)

	_, err := readDataFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestTemplatesCommand_ListsRegisteredTemplates(t *testing.T) {
	var buf bytes.Buffer
	templatesCmd.SetOut(&buf)
	defer templatesCmd.SetOut(nil)

	require.NoError(t, runTemplates(templatesCmd, nil))

	out := buf.String()
	assert.Contains(t, out, "Resume templates:")
	assert.Contains(t, out, "* government_job")
	assert.Contains(t, out, "software_developer")
	assert.Contains(t, out, "Cover letter templates:")
	assert.Contains(t, out, "* classic")
}
