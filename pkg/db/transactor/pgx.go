package transactor

import (
	"context"

	"github.com/jackc/pgtype/pgxtype"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

type activeTxKey struct{}

func ctxWithTx(ctx context.Context, tx pgx.Tx) context.Context {
	return context.WithValue(ctx, activeTxKey{}, tx)
}

func txFromCtx(ctx context.Context) (pgx.Tx, bool) {
	tx, ok := ctx.Value(activeTxKey{}).(pgx.Tx)
	return tx, ok && tx != nil
}

// PgxTransactor runs functions within pgx transaction stored in context
type PgxTransactor interface {
	Transactor
	WithinTransactionWithOptions(context.Context, func(context.Context) error, pgx.TxOptions) error
}

type pgxTransactor struct {
	pool *pgxpool.Pool
}

func NewPgxTransactor(p *pgxpool.Pool) PgxTransactor {
	return &pgxTransactor{pool: p}
}

func (t *pgxTransactor) WithinTransaction(ctx context.Context, fn func(context.Context) error) error {
	return t.WithinTransactionWithOptions(ctx, fn, pgx.TxOptions{})
}

// WithinTransactionWithOptions joins the transaction already carried by ctx,
// options are ignored in that case.
func (t *pgxTransactor) WithinTransactionWithOptions(ctx context.Context, fn func(context.Context) error, opts pgx.TxOptions) error {
	if _, ok := txFromCtx(ctx); ok {
		return fn(ctx)
	}

	tx, err := t.pool.BeginTx(ctx, opts)
	if err != nil {
		return err
	}
	return finish(ctx, tx, fn(ctxWithTx(ctx, tx)))
}

// finish commits tx when fnErr is nil and rolls it back otherwise.
// The error of fn wins over a rollback failure.
func finish(ctx context.Context, tx pgx.Tx, fnErr error) error {
	if fnErr != nil {
		_ = tx.Rollback(ctx)
		return fnErr
	}
	return tx.Commit(ctx)
}

// PgxWithinTransactionExecutor resolves what queries run against: the ctx transaction or the pool
type PgxWithinTransactionExecutor interface {
	Executor(ctx context.Context) PgxQueryExecutor
}

// PgxQueryExecutor is satisfied by both *pgxpool.Pool and pgx.Tx
type PgxQueryExecutor interface {
	pgxtype.Querier
	Begin(context.Context) (pgx.Tx, error)
	SendBatch(context.Context, *pgx.Batch) pgx.BatchResults
	CopyFrom(context.Context, pgx.Identifier, []string, pgx.CopyFromSource) (int64, error)
}

type poolOrTx struct {
	pool *pgxpool.Pool
}

func NewPgxWithinTransactionExecutor(p *pgxpool.Pool) PgxWithinTransactionExecutor {
	return &poolOrTx{pool: p}
}

func (e *poolOrTx) Executor(ctx context.Context) PgxQueryExecutor {
	if tx, ok := txFromCtx(ctx); ok {
		return tx
	}
	return e.pool
}
