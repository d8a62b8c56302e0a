package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitSQL(t *testing.T) {
	stmts := splitSQL(`
-- header comment
CREATE TABLE IF NOT EXISTS a (id INT);

  -- indented comment
INSERT INTO a VALUES (1);
;
`)
	assert.Equal(t, []string{
		"CREATE TABLE IF NOT EXISTS a (id INT)",
		"INSERT INTO a VALUES (1)",
	}, stmts)
}

func TestExtractTables(t *testing.T) {
	tables, err := extractTables(filepath.Join("..", "..", "migrations", "0001_station_distances.sql"))
	require.NoError(t, err)
	assert.Equal(t, []string{"station_distances"}, tables)

	path := filepath.Join(t.TempDir(), "m.sql")
	require.NoError(t, os.WriteFile(path, []byte("create table if not exists One (x int);\nCREATE TABLE IF NOT EXISTS two_2 (y int);"), 0o600))
	tables, err = extractTables(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"One", "two_2"}, tables)

	_, err = extractTables(filepath.Join(t.TempDir(), "missing.sql"))
	assert.Error(t, err)
}

func TestContains(t *testing.T) {
	assert.True(t, contains([]int{200, 201}, 201))
	assert.False(t, contains(nil, 200))
}
