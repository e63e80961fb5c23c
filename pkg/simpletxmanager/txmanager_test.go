package simpletxmanager

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Стаб-драйвер: транзакции всегда открываются и завершаются успешно,
// запросы не поддерживаются

type stubDriver struct{}

func (stubDriver) Open(string) (driver.Conn, error) { return stubConn{}, nil }

type stubConn struct{}

func (stubConn) Prepare(string) (driver.Stmt, error) { return nil, errors.New("not supported") }
func (stubConn) Close() error                        { return nil }
func (stubConn) Begin() (driver.Tx, error)           { return stubTx{}, nil }

func (stubConn) BeginTx(context.Context, driver.TxOptions) (driver.Tx, error) {
	return stubTx{}, nil
}

type stubTx struct{}

func (stubTx) Commit() error   { return nil }
func (stubTx) Rollback() error { return nil }

func init() {
	sql.Register("simpletxstub", stubDriver{})
}

func newStubDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("simpletxstub", "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestDoSerializable_RetriesSerializationFailure(t *testing.T) {
	m := NewTransactionManager(newStubDB(t))

	attempts := 0
	err := m.DoSerializable(context.Background(), func(context.Context) error {
		attempts++
		if attempts < 3 {
			return &pq.Error{Code: "40001"}
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestDoSerializable_GivesUpAfterMaxRetries(t *testing.T) {
	m := NewTransactionManager(newStubDB(t))

	attempts := 0
	err := m.DoSerializable(context.Background(), func(context.Context) error {
		attempts++
		return &pq.Error{Code: "40001"}
	})

	var pqErr *pq.Error
	require.ErrorAs(t, err, &pqErr)
	assert.Equal(t, maxSerializableRetries, attempts)
}

func TestDoSerializable_NoRetryOnOtherErrors(t *testing.T) {
	m := NewTransactionManager(newStubDB(t))

	wantErr := errors.New("usecase failed")
	attempts := 0
	err := m.DoSerializable(context.Background(), func(context.Context) error {
		attempts++
		return wantErr
	})
	assert.ErrorIs(t, err, wantErr)
	assert.Equal(t, 1, attempts)
}
