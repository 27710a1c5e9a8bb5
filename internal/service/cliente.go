package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/umalmyha/clientes/internal/cache"
	apperrors "github.com/umalmyha/clientes/internal/errors"
	"github.com/umalmyha/clientes/internal/model"
	"github.com/umalmyha/clientes/internal/repository"
	"github.com/umalmyha/clientes/internal/validation"
	"github.com/umalmyha/clientes/pkg/db/transactor"
)

// ClienteService represents cliente use cases
type ClienteService interface {
	FindByRUC(context.Context, string) (*model.Cliente, error)
	FindAll(context.Context) ([]*model.Cliente, error)
	Search(context.Context, string) ([]*model.Cliente, error)
	Create(context.Context, *model.Cliente) (*model.Cliente, error)
	Update(context.Context, string, *model.Cliente) error
	Patch(context.Context, string, model.ClientePatch) (*model.Cliente, error)
	DeleteByRUC(context.Context, string) error
}

// Options tune service behavior
type Options struct {
	// SearchEmptyNotFound makes Search fail with not found error instead of returning empty list
	SearchEmptyNotFound bool
}

type clienteService struct {
	transactor   transactor.Transactor
	clienteRepo  repository.ClienteRepository
	clienteCache cache.ClienteCache
	logger       logrus.FieldLogger
	opts         Options
}

// NewClienteService builds ClienteService
func NewClienteService(
	tx transactor.Transactor,
	clienteRepo repository.ClienteRepository,
	clienteCache cache.ClienteCache,
	logger logrus.FieldLogger,
	opts Options,
) ClienteService {
	return &clienteService{
		transactor:   tx,
		clienteRepo:  clienteRepo,
		clienteCache: clienteCache,
		logger:       logger,
		opts:         opts,
	}
}

func (s *clienteService) FindByRUC(ctx context.Context, ruc string) (*model.Cliente, error) {
	cached, err := s.clienteCache.FindByRUC(ctx, ruc)
	if err != nil {
		s.logger.WithError(err).WithField("ruc", ruc).Warn("failed to read cliente from cache")
	}

	if cached != nil {
		return cached, nil
	}

	c, err := s.clienteRepo.FindByRUC(ctx, ruc)
	if err != nil {
		return nil, err
	}

	if c == nil {
		return nil, notFoundErr(ruc)
	}

	if err := s.clienteCache.Cache(ctx, c); err != nil {
		s.logger.WithError(err).WithField("ruc", ruc).Warn("failed to cache cliente")
	}
	return c, nil
}

func (s *clienteService) FindAll(ctx context.Context) ([]*model.Cliente, error) {
	return s.clienteRepo.FindAll(ctx)
}

func (s *clienteService) Search(ctx context.Context, name string) ([]*model.Cliente, error) {
	if !validation.NotBlank(name) {
		return nil, apperrors.NewBadArgumentErr("name", "El parámetro de búsqueda 'name' es requerido.")
	}

	clientes, err := s.clienteRepo.SearchByRazonSocial(ctx, name)
	if err != nil {
		return nil, err
	}

	if len(clientes) == 0 && s.opts.SearchEmptyNotFound {
		return nil, apperrors.NewEntryNotFoundErr(fmt.Sprintf("No se encontraron clientes con razón social '%s'.", name))
	}
	return clientes, nil
}

func (s *clienteService) Create(ctx context.Context, c *model.Cliente) (*model.Cliente, error) {
	if err := checkCliente(c); err != nil {
		return nil, err
	}

	exists, err := s.clienteRepo.ExistsByRUC(ctx, c.RUC)
	if err != nil {
		return nil, err
	}

	if exists {
		return nil, apperrors.NewDuplicateRUCErr(c.RUC)
	}

	c.ID = uuid.NewString()
	if err := s.clienteRepo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *clienteService) Update(ctx context.Context, ruc string, c *model.Cliente) error {
	if err := checkCliente(c); err != nil {
		return err
	}

	err := s.transactor.WithinTransaction(ctx, func(txCtx context.Context) error {
		existing, err := s.clienteRepo.FindByRUC(txCtx, ruc)
		if err != nil {
			return err
		}

		if existing == nil {
			return notFoundErr(ruc)
		}

		if c.RUC != ruc {
			taken, err := s.clienteRepo.ExistsByRUC(txCtx, c.RUC)
			if err != nil {
				return err
			}

			if taken {
				return apperrors.NewDuplicateRUCErr(c.RUC)
			}
		}

		c.ID = existing.ID
		return s.clienteRepo.Update(txCtx, ruc, c)
	})
	if err != nil {
		return err
	}

	s.evict(ctx, ruc, c.RUC)
	return nil
}

func (s *clienteService) Patch(ctx context.Context, ruc string, patch model.ClientePatch) (*model.Cliente, error) {
	if patch.IsEmpty() {
		return nil, apperrors.NewBadArgumentErr("changes", "No se proporcionaron campos para actualizar.")
	}

	var patched model.Cliente
	err := s.transactor.WithinTransaction(ctx, func(txCtx context.Context) error {
		existing, err := s.clienteRepo.FindByRUC(txCtx, ruc)
		if err != nil {
			return err
		}

		if existing == nil {
			return notFoundErr(ruc)
		}

		patched = existing.MergePatch(patch)
		if err := checkCliente(&patched); err != nil {
			return err
		}
		return s.clienteRepo.Update(txCtx, ruc, &patched)
	})
	if err != nil {
		return nil, err
	}

	s.evict(ctx, ruc)
	return &patched, nil
}

func (s *clienteService) DeleteByRUC(ctx context.Context, ruc string) error {
	if ruc == "" {
		return apperrors.NewBadArgumentErr("ruc", "El RUC es requerido.")
	}

	if err := s.clienteRepo.DeleteByRUC(ctx, ruc); err != nil {
		return err
	}

	s.evict(ctx, ruc)
	return nil
}

// stale entries expire with cache ttl, so eviction failure doesn't fail committed write
func (s *clienteService) evict(ctx context.Context, rucs ...string) {
	if len(rucs) == 2 && rucs[0] == rucs[1] {
		rucs = rucs[:1]
	}

	if err := s.clienteCache.EvictByRUC(ctx, rucs...); err != nil {
		s.logger.WithError(err).WithField("ruc", rucs).Error("failed to evict cliente from cache")
	}
}

func notFoundErr(ruc string) error {
	return apperrors.NewEntryNotFoundErr(fmt.Sprintf("No se encontró un cliente con RUC %s.", ruc))
}

func checkCliente(c *model.Cliente) error {
	switch validation.CheckRUC(c.RUC) {
	case validation.RUCRequired:
		return apperrors.NewBadArgumentErr("ruc", "El RUC es requerido.")
	case validation.RUCBadSize, validation.RUCNotDigit:
		return apperrors.NewBadArgumentErr("ruc", "El RUC debe tener exactamente 11 dígitos numéricos.")
	}

	if !validation.ValidRazonSocial(c.RazonSocial) {
		return apperrors.NewBadArgumentErr("razonSocial", fmt.Sprintf("La razón social es requerida y no debe exceder %d caracteres.", validation.MaxRazonSocial))
	}

	if !validation.ValidPhone(c.Telefono) {
		return apperrors.NewBadArgumentErr("telefono", "Formato de teléfono inválido.")
	}

	if !validation.ValidEmail(c.Correo) {
		return apperrors.NewBadArgumentErr("correo", "Formato de correo electrónico inválido.")
	}

	if !validation.ValidDireccion(c.Direccion) {
		return apperrors.NewBadArgumentErr("direccion", fmt.Sprintf("La dirección no debe exceder %d caracteres.", validation.MaxDireccion))
	}
	return nil
}
