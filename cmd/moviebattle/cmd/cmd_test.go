package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cit5940-25sp/cit-5940-final-project-warriors/internal/catalog"
	"github.com/cit5940-25sp/cit-5940-final-project-warriors/internal/config"
)

const testCSV = `title,people,genres,release_date
Titanic,"actor: Leonardo DiCaprio, director: James Cameron","{'genres: Drama'}",1997-11-18
Titans,"actor: Denzel Washington","{'genres: Drama'}",2000-09-29
The Revenant,"actor: Leonardo DiCaprio","{'genres: Western'}",2015-12-25
`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeDataset(t *testing.T) (dir, csvPath string) {
	t.Helper()
	dir = t.TempDir()
	csvPath = filepath.Join(dir, "movies.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte(testCSV), 0644))
	return dir, csvPath
}

func TestSuggest(t *testing.T) {
	dir, csvPath := writeDataset(t)
	cfgPath := filepath.Join(dir, "none.yaml")

	out, err := run(t, "suggest", "titan", "--limit", "1", "--catalog", csvPath, "--config", cfgPath)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, `2 titles match "titan"`, lines[0])
	assert.Equal(t, "0\tTitanic (1997)", lines[1])
}

func TestSuggest_InvalidLimit(t *testing.T) {
	dir, csvPath := writeDataset(t)

	_, err := run(t, "suggest", "titan", "--limit", "many", "--catalog", csvPath, "--config", filepath.Join(dir, "none.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid argument")
}

func TestImport(t *testing.T) {
	dir, csvPath := writeDataset(t)
	dbPath := filepath.Join(dir, "movies.db")

	out, err := run(t, "import", csvPath, dbPath, "--config", filepath.Join(dir, "none.yaml"))
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 3 movies (2 genres)")

	cat, err := catalog.LoadSQLite(t.Context(), dbPath)
	require.NoError(t, err)
	assert.Equal(t, 3, cat.Len())
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", config.FileName)

	out, err := run(t, "init", "--config", path, "--force=false")
	require.NoError(t, err)
	assert.Contains(t, out, "Created "+path)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	_, err = run(t, "init", "--config", path, "--force=false")
	assert.ErrorContains(t, err, "already exists")

	_, err = run(t, "init", "--config", path, "--force")
	assert.NoError(t, err)
}
