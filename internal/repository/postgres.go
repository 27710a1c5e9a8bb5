package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	apperrors "github.com/umalmyha/clientes/internal/errors"
	"github.com/umalmyha/clientes/internal/model"
	"github.com/umalmyha/clientes/pkg/db/transactor"
)

const pgUniqueViolationCode = "23505"

const clienteColumns = "id, ruc, razon_social, telefono, correo, direccion"

type postgresClienteRepository struct {
	executor transactor.PgxWithinTransactionExecutor
}

// NewPostgresClienteRepository builds postgres ClienteRepository
func NewPostgresClienteRepository(e transactor.PgxWithinTransactionExecutor) ClienteRepository {
	return &postgresClienteRepository{executor: e}
}

func (r *postgresClienteRepository) FindByRUC(ctx context.Context, ruc string) (*model.Cliente, error) {
	q := "SELECT " + clienteColumns + " FROM cliente WHERE ruc = $1"

	var c model.Cliente
	row := r.executor.Executor(ctx).QueryRow(ctx, q, ruc)
	if err := row.Scan(&c.ID, &c.RUC, &c.RazonSocial, &c.Telefono, &c.Correo, &c.Direccion); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *postgresClienteRepository) FindAll(ctx context.Context) ([]*model.Cliente, error) {
	q := "SELECT " + clienteColumns + " FROM cliente ORDER BY ruc"
	return r.query(ctx, q)
}

func (r *postgresClienteRepository) SearchByRazonSocial(ctx context.Context, name string) ([]*model.Cliente, error) {
	q := "SELECT " + clienteColumns + " FROM cliente WHERE razon_social ILIKE '%' || $1 || '%' ESCAPE '\\' ORDER BY razon_social"
	return r.query(ctx, q, escapeLike(name))
}

func (r *postgresClienteRepository) ExistsByRUC(ctx context.Context, ruc string) (bool, error) {
	q := "SELECT EXISTS(SELECT 1 FROM cliente WHERE ruc = $1)"

	var exists bool
	if err := r.executor.Executor(ctx).QueryRow(ctx, q, ruc).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *postgresClienteRepository) Create(ctx context.Context, c *model.Cliente) error {
	q := `INSERT INTO cliente(id, ruc, razon_social, telefono, correo, direccion)
		  VALUES($1, $2, $3, $4, $5, $6)`
	_, err := r.executor.Executor(ctx).Exec(ctx, q, c.ID, c.RUC, c.RazonSocial, c.Telefono, c.Correo, c.Direccion)
	if err != nil {
		return r.translateErr(err, c.RUC)
	}
	return nil
}

func (r *postgresClienteRepository) Update(ctx context.Context, ruc string, c *model.Cliente) error {
	q := `UPDATE cliente SET ruc = $1, razon_social = $2, telefono = $3, correo = $4, direccion = $5
		  WHERE ruc = $6`
	comm, err := r.executor.Executor(ctx).Exec(ctx, q, c.RUC, c.RazonSocial, c.Telefono, c.Correo, c.Direccion, ruc)
	if err != nil {
		return r.translateErr(err, c.RUC)
	}

	if comm.RowsAffected() == 0 {
		return notFoundErr(ruc)
	}
	return nil
}

func (r *postgresClienteRepository) DeleteByRUC(ctx context.Context, ruc string) error {
	q := "DELETE FROM cliente WHERE ruc = $1"
	comm, err := r.executor.Executor(ctx).Exec(ctx, q, ruc)
	if err != nil {
		return err
	}

	if comm.RowsAffected() == 0 {
		return notFoundErr(ruc)
	}
	return nil
}

func (r *postgresClienteRepository) query(ctx context.Context, q string, args ...any) ([]*model.Cliente, error) {
	rows, err := r.executor.Executor(ctx).Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clientes := make([]*model.Cliente, 0)
	for rows.Next() {
		var c model.Cliente
		if err := rows.Scan(&c.ID, &c.RUC, &c.RazonSocial, &c.Telefono, &c.Correo, &c.Direccion); err != nil {
			return nil, err
		}
		clientes = append(clientes, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return clientes, nil
}

// unique index is the last line of defence against concurrent writers with the same RUC
func (r *postgresClienteRepository) translateErr(err error, ruc string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolationCode {
		return apperrors.NewDuplicateRUCErr(ruc)
	}
	return err
}
