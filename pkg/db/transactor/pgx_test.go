package transactor

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type txMock struct {
	pgx.Tx
	mock.Mock
}

func (m *txMock) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *txMock) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func TestFinishCommitsOnSuccess(t *testing.T) {
	ctx := context.Background()
	tx := &txMock{}
	commitErr := errors.New("commit failed")
	tx.On("Commit", ctx).Return(commitErr).Once()

	err := finish(ctx, tx, nil)
	require.ErrorIs(t, err, commitErr, "commit failure must be reported")
	tx.AssertNotCalled(t, "Rollback", ctx)
	tx.AssertExpectations(t)
}

func TestFinishRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	tx := &txMock{}
	fnErr := errors.New("callback failed")
	tx.On("Rollback", ctx).Return(errors.New("rollback failed")).Once()

	err := finish(ctx, tx, fnErr)
	require.ErrorIs(t, err, fnErr, "callback error must win over rollback error")
	tx.AssertNotCalled(t, "Commit", ctx)
	tx.AssertExpectations(t)
}

func TestExecutorPrefersContextTx(t *testing.T) {
	tx := &txMock{}
	e := NewPgxWithinTransactionExecutor(nil)

	require.Equal(t, tx, e.Executor(ctxWithTx(context.Background(), tx)), "tx from context must be used")

	_, ok := txFromCtx(context.Background())
	require.False(t, ok, "no tx expected in bare context")
}
