package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	apperrors "github.com/umalmyha/clientes/internal/errors"
	"github.com/umalmyha/clientes/internal/model"
)

type memoryClienteRepository struct {
	mu       sync.RWMutex
	clientes map[string]model.Cliente
}

// NewMemoryClienteRepository builds in-memory ClienteRepository, data is lost on restart
func NewMemoryClienteRepository() ClienteRepository {
	return &memoryClienteRepository{clientes: make(map[string]model.Cliente)}
}

func (r *memoryClienteRepository) FindByRUC(_ context.Context, ruc string) (*model.Cliente, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.clientes[ruc]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *memoryClienteRepository) FindAll(_ context.Context) ([]*model.Cliente, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	clientes := r.collect(func(model.Cliente) bool { return true })
	sort.Slice(clientes, func(i, j int) bool { return clientes[i].RUC < clientes[j].RUC })
	return clientes, nil
}

func (r *memoryClienteRepository) SearchByRazonSocial(_ context.Context, name string) ([]*model.Cliente, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(name)
	clientes := r.collect(func(c model.Cliente) bool {
		return strings.Contains(strings.ToLower(c.RazonSocial), needle)
	})
	sort.Slice(clientes, func(i, j int) bool { return clientes[i].RazonSocial < clientes[j].RazonSocial })
	return clientes, nil
}

func (r *memoryClienteRepository) ExistsByRUC(_ context.Context, ruc string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.clientes[ruc]
	return ok, nil
}

func (r *memoryClienteRepository) Create(_ context.Context, c *model.Cliente) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.clientes[c.RUC]; ok {
		return apperrors.NewDuplicateRUCErr(c.RUC)
	}
	r.clientes[c.RUC] = *c
	return nil
}

func (r *memoryClienteRepository) Update(_ context.Context, ruc string, c *model.Cliente) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.clientes[ruc]
	if !ok {
		return notFoundErr(ruc)
	}

	if c.RUC != ruc {
		if _, taken := r.clientes[c.RUC]; taken {
			return apperrors.NewDuplicateRUCErr(c.RUC)
		}
		delete(r.clientes, ruc)
	}

	updated := *c
	updated.ID = existing.ID
	r.clientes[c.RUC] = updated
	return nil
}

func (r *memoryClienteRepository) DeleteByRUC(_ context.Context, ruc string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.clientes[ruc]; !ok {
		return notFoundErr(ruc)
	}
	delete(r.clientes, ruc)
	return nil
}

func (r *memoryClienteRepository) collect(match func(model.Cliente) bool) []*model.Cliente {
	clientes := make([]*model.Cliente, 0, len(r.clientes))
	for _, c := range r.clientes {
		if match(c) {
			c := c
			clientes = append(clientes, &c)
		}
	}
	return clientes
}
