package legacy

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

// scriptedDriver replays a fixed sequence of result sets for any query,
// standing in for the MySQL driver's multi-statement responses.
type scriptedDriver struct {
	sets []scriptedSet
}

type scriptedSet struct {
	cols []string
	rows [][]driver.Value
}

func (d *scriptedDriver) Open(string) (driver.Conn, error) {
	return &scriptedConn{sets: d.sets}, nil
}

type scriptedConn struct {
	sets []scriptedSet
}

func (c *scriptedConn) Prepare(string) (driver.Stmt, error) {
	return &scriptedStmt{sets: c.sets}, nil
}
func (c *scriptedConn) Close() error              { return nil }
func (c *scriptedConn) Begin() (driver.Tx, error) { return nil, errors.New("transactions not supported") }

type scriptedStmt struct {
	sets []scriptedSet
}

func (s *scriptedStmt) Close() error  { return nil }
func (s *scriptedStmt) NumInput() int { return 0 }
func (s *scriptedStmt) Exec([]driver.Value) (driver.Result, error) {
	return nil, errors.New("exec not supported")
}
func (s *scriptedStmt) Query([]driver.Value) (driver.Rows, error) {
	return &scriptedRows{sets: s.sets}, nil
}

type scriptedRows struct {
	sets []scriptedSet
	cur  int
	row  int
}

func (r *scriptedRows) Columns() []string { return r.sets[r.cur].cols }
func (r *scriptedRows) Close() error      { return nil }

func (r *scriptedRows) Next(dest []driver.Value) error {
	set := r.sets[r.cur]
	if r.row >= len(set.rows) {
		return io.EOF
	}
	copy(dest, set.rows[r.row])
	r.row++
	return nil
}

func (r *scriptedRows) HasNextResultSet() bool { return r.cur+1 < len(r.sets) }

func (r *scriptedRows) NextResultSet() error {
	if !r.HasNextResultSet() {
		return io.EOF
	}
	r.cur++
	r.row = 0
	return nil
}

var scripted = &scriptedDriver{}

func init() {
	sql.Register("scripted-legacy", scripted)
}

func queryScripted(t *testing.T, sets []scriptedSet) []Row {
	t.Helper()
	scripted.sets = sets

	db, err := sql.Open("scripted-legacy", "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	result, err := NewMySQLExecutor(db).Query(context.Background(), "irrelevant")
	require.NoError(t, err)
	return result
}

func TestMySQLExecutorTakesLastRowShapedSet(t *testing.T) {
	result := queryScripted(t, []scriptedSet{
		{cols: nil}, // session variable statement
		{cols: []string{"id", "title"}, rows: [][]driver.Value{
			{[]byte("AP-1"), []byte("первый")},
			{[]byte("AP-2"), []byte("второй")},
		}},
	})

	require.Len(t, result, 2)
	require.Equal(t, "AP-1", result[0]["id"])
	require.Equal(t, "первый", result[0]["title"])
}

func TestMySQLExecutorEmptyFinalSelectWins(t *testing.T) {
	// A final SELECT that matches nothing must not be shadowed by rows from
	// an earlier statement in the same template.
	result := queryScripted(t, []scriptedSet{
		{cols: []string{"id"}, rows: [][]driver.Value{{[]byte("stale")}}},
		{cols: []string{"id", "title"}},
	})

	require.Empty(t, result)
	require.NotNil(t, result)
}

func TestMySQLExecutorSingleSet(t *testing.T) {
	result := queryScripted(t, []scriptedSet{
		{cols: []string{"n"}, rows: [][]driver.Value{{int64(7)}}},
	})

	require.Len(t, result, 1)
	require.Equal(t, int64(7), result[0]["n"])
}
