package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maineblanc/camping-booking/pkg/dbmetrics"
)

type fakeTx struct {
	committed  bool
	rolledBack bool
	commitErr  error
}

func (t *fakeTx) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, nil
}
func (t *fakeTx) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, nil
}
func (t *fakeTx) QueryRowContext(context.Context, string, ...interface{}) *sql.Row { return nil }

func (t *fakeTx) Commit() error {
	t.committed = true
	return t.commitErr
}

func (t *fakeTx) Rollback() error {
	t.rolledBack = true
	return nil
}

type fakeBeginner struct {
	txs   []*fakeTx
	opts  []*sql.TxOptions
	begin error
}

func (b *fakeBeginner) BeginTx(_ context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	if b.begin != nil {
		return nil, b.begin
	}
	tx := &fakeTx{}
	b.txs = append(b.txs, tx)
	b.opts = append(b.opts, opts)
	return tx, nil
}

func TestDoSerializable_Commit(t *testing.T) {
	db := &fakeBeginner{}
	m := NewTransactionManager(db)

	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		assert.True(t, dbmetrics.IsInTransaction(ctx))
		return nil
	})

	require.NoError(t, err)
	require.Len(t, db.txs, 1)
	assert.True(t, db.txs[0].committed)
	assert.False(t, db.txs[0].rolledBack)
	assert.Equal(t, sql.LevelSerializable, db.opts[0].Isolation)
}

func TestDoSerializable_RollbackOnBusinessError(t *testing.T) {
	db := &fakeBeginner{}
	m := NewTransactionManager(db)
	errFull := errors.New("full")

	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		return errFull
	})

	assert.ErrorIs(t, err, errFull)
	require.Len(t, db.txs, 1, "business errors must not be retried")
	assert.True(t, db.txs[0].rolledBack)
	assert.False(t, db.txs[0].committed)
}

func TestDoSerializable_RetriesSerializationFailure(t *testing.T) {
	db := &fakeBeginner{}
	m := NewTransactionManager(db).WithMaxAttempts(3)

	calls := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return fmt.Errorf("insert booking: %w", &pq.Error{Code: "40001"})
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	require.Len(t, db.txs, 3)
	assert.True(t, db.txs[2].committed)
}

func TestDoSerializable_GivesUpAfterMaxAttempts(t *testing.T) {
	db := &fakeBeginner{}
	m := NewTransactionManager(db).WithMaxAttempts(2)

	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		return &pq.Error{Code: "40P01"}
	})

	assert.True(t, IsRetryable(err))
	assert.Len(t, db.txs, 2)
}

func TestDo_NestedReusesOuterTx(t *testing.T) {
	db := &fakeBeginner{}
	m := NewTransactionManager(db)

	err := m.Do(context.Background(), func(ctx context.Context) error {
		return m.DoSerializable(ctx, func(ctx context.Context) error { return nil })
	})

	require.NoError(t, err)
	assert.Len(t, db.txs, 1)
}

func TestDo_BeginError(t *testing.T) {
	m := NewTransactionManager(&fakeBeginner{begin: errors.New("conn refused")})

	err := m.Do(context.Background(), func(ctx context.Context) error { return nil })

	assert.ErrorIs(t, err, ErrBeginTx)
}
