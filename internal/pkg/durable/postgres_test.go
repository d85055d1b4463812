package durable

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRow struct {
	value string
	err   error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*string)) = r.value
	return nil
}

type recordingExecutor struct {
	sql  []string
	args [][]any
	row  fakeRow
}

func (e *recordingExecutor) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	e.sql = append(e.sql, sql)
	e.args = append(e.args, args)
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func (e *recordingExecutor) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	e.sql = append(e.sql, sql)
	e.args = append(e.args, args)
	return e.row
}

func TestPostgresBackend_Get(t *testing.T) {
	exec := &recordingExecutor{row: fakeRow{value: "[]"}}
	b := NewPostgresBackend(exec, "")

	v, err := b.Get(context.Background(), "globalAnnouncements")
	require.NoError(t, err)
	assert.Equal(t, "[]", v)
	assert.Equal(t, "SELECT value FROM durable_slices WHERE key = $1", exec.sql[0])
	assert.Equal(t, []any{"globalAnnouncements"}, exec.args[0])
}

func TestPostgresBackend_GetMissing(t *testing.T) {
	b := NewPostgresBackend(&recordingExecutor{row: fakeRow{err: pgx.ErrNoRows}}, "")

	_, err := b.Get(context.Background(), "globalAnnouncements")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPostgresBackend_SetUpserts(t *testing.T) {
	exec := &recordingExecutor{}
	b := NewPostgresBackend(exec, "state")

	require.NoError(t, b.Set(context.Background(), "k", `{"a":1}`))
	require.Len(t, exec.sql, 1)
	assert.Contains(t, exec.sql[0], "INSERT INTO state (key,value,updated_at) VALUES ($1,$2,NOW())")
	assert.Contains(t, exec.sql[0], "ON CONFLICT (key) DO UPDATE")
	assert.Equal(t, []any{"k", `{"a":1}`}, exec.args[0])
}
