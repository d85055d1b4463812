package migrations

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersion(t *testing.T) {
	assert.Equal(t, "001", Version("sql/001_durable_slices.sql"))
	assert.Equal(t, "002", Version("002_add_index.sql"))
}

func TestPendingEmbedsDurableTable(t *testing.T) {
	files, err := Pending()
	require.NoError(t, err)
	require.NotEmpty(t, files)
	assert.Equal(t, "sql/001_durable_slices.sql", files[0])

	content, err := embedded.ReadFile(files[0])
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(content), "durable_slices"))
}
