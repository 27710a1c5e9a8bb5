package repository

import (
	"context"
	"fmt"

	apperrors "github.com/umalmyha/clientes/internal/errors"
	"github.com/umalmyha/clientes/internal/model"
)

// ClienteRepository represents behavior of cliente storage.
// Find methods return nil without error if entry is missing.
type ClienteRepository interface {
	FindByRUC(context.Context, string) (*model.Cliente, error)
	FindAll(context.Context) ([]*model.Cliente, error)
	SearchByRazonSocial(context.Context, string) ([]*model.Cliente, error)
	ExistsByRUC(context.Context, string) (bool, error)
	Create(context.Context, *model.Cliente) error
	Update(context.Context, string, *model.Cliente) error
	DeleteByRUC(context.Context, string) error
}

func notFoundErr(ruc string) error {
	return apperrors.NewEntryNotFoundErr(fmt.Sprintf("No se encontró un cliente con RUC %s.", ruc))
}
