package cutoffs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscoverFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b_2024.xlsx", "a_2023.xlsx", "~$a_2023.xlsx", "c.xls", "d.csv"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.xlsx"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nested.xlsx", "e_2025.xlsx"), nil, 0644))

	files, err := DiscoverFiles(dir, DefaultPattern)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a_2023.xlsx"),
		filepath.Join(dir, "b_2024.xlsx"),
	}, files)
}

func TestDiscoverFilesErrors(t *testing.T) {
	_, err := DiscoverFiles(filepath.Join(t.TempDir(), "missing"), DefaultPattern)
	assert.Error(t, err)

	_, err = DiscoverFiles(t.TempDir(), "[")
	assert.Error(t, err)
}
