package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/a7jazili/hall-booking-service/pkg/dbmetrics"
)

type fakeTx struct {
	commits   int
	rollbacks int
}

func (t *fakeTx) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, nil
}

func (t *fakeTx) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (t *fakeTx) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return nil
}

func (t *fakeTx) Commit() error {
	t.commits++
	return nil
}

func (t *fakeTx) Rollback() error {
	t.rollbacks++
	return nil
}

type fakeBeginner struct {
	tx     *fakeTx
	begins int
}

func (b *fakeBeginner) BeginTx(context.Context, *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	b.begins++
	return b.tx, nil
}

func TestDoSerializable_CommitsOnSuccess(t *testing.T) {
	tx := &fakeTx{}
	m := NewTransactionManager(&fakeBeginner{tx: tx})

	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		// транзакция доступна репозиториям через контекст
		assert.True(t, dbmetrics.IsInTransaction(ctx))
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, 1, tx.commits)
	assert.Equal(t, 0, tx.rollbacks)
}

func TestDoSerializable_RollsBackOnError(t *testing.T) {
	tx := &fakeTx{}
	m := NewTransactionManager(&fakeBeginner{tx: tx})

	wantErr := errors.New("usecase failed")
	err := m.DoSerializable(context.Background(), func(context.Context) error {
		return wantErr
	})
	assert.ErrorIs(t, err, wantErr)

	assert.Equal(t, 0, tx.commits)
	assert.Equal(t, 1, tx.rollbacks)
}

func TestDoSerializable_RetriesSerializationFailure(t *testing.T) {
	tx := &fakeTx{}
	beginner := &fakeBeginner{tx: tx}
	m := NewTransactionManager(beginner)

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
	assert.Equal(t, 3, beginner.begins)
	assert.Equal(t, 1, tx.commits)
	assert.Equal(t, 2, tx.rollbacks)
}

func TestDoSerializable_GivesUpAfterMaxRetries(t *testing.T) {
	tx := &fakeTx{}
	m := NewTransactionManager(&fakeBeginner{tx: tx})

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
	m := NewTransactionManager(&fakeBeginner{tx: &fakeTx{}})

	attempts := 0
	err := m.DoSerializable(context.Background(), func(context.Context) error {
		attempts++
		return &pq.Error{Code: "23505"}
	})
	require.Error(t, err)
	assert.Equal(t, 1, attempts)
}
