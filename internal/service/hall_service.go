package service

import (
	"context"
	"errors"

	"github.com/wiktorkow/cinemaapi/internal/model"
	"github.com/wiktorkow/cinemaapi/internal/repository"
)

// HallRepository is what the hall service needs from the data layer.
type HallRepository interface {
	GetAll(ctx context.Context) ([]model.Hall, error)
	GetByID(ctx context.Context, id uint64) (*model.Hall, error)
	GetByAlias(ctx context.Context, alias string) (*model.Hall, error)
	Create(ctx context.Context, b model.HallBroker) (*model.Hall, error)
	Update(ctx context.Context, id uint64, b model.HallBroker) (*model.Hall, error)
	Delete(ctx context.Context, id uint64) (bool, error)
}

// HallService wraps the hall repository with layout and alias validation.
type HallService struct {
	repo HallRepository
}

// NewHallService constructs a HallService.
func NewHallService(repo HallRepository) *HallService {
	return &HallService{repo: repo}
}

func (s *HallService) GetAll(ctx context.Context) ([]model.Hall, error) {
	return s.repo.GetAll(ctx)
}

func (s *HallService) GetByID(ctx context.Context, id uint64) (*model.Hall, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *HallService) GetByAlias(ctx context.Context, alias string) (*model.Hall, error) {
	return s.repo.GetByAlias(ctx, alias)
}

// aliasFree reports whether no hall other than excludeID uses the alias.
func (s *HallService) aliasFree(ctx context.Context, alias string, excludeID uint64) (bool, error) {
	h, err := s.repo.GetByAlias(ctx, alias)
	if errors.Is(err, repository.ErrHallNotFound) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return h.ID == excludeID, nil
}

// Create rejects non-positive seat grids and duplicate aliases, then
// inserts.
func (s *HallService) Create(ctx context.Context, b model.HallBroker) (*model.Hall, error) {
	if b.SeatAmount <= 0 || b.RowAmount <= 0 {
		return nil, ErrHallLayoutInvalid
	}
	free, err := s.aliasFree(ctx, b.Alias, 0)
	if err != nil {
		return nil, err
	}
	if !free {
		return nil, ErrAliasOccupied
	}
	h, err := s.repo.Create(ctx, b)
	if errors.Is(err, repository.ErrHallExists) {
		return nil, ErrAliasOccupied
	}
	return h, err
}

// Update renames a hall.  The alias must stay unique, but re-saving a hall
// under its own alias is allowed.
func (s *HallService) Update(ctx context.Context, id uint64, b model.HallBroker) (*model.Hall, error) {
	free, err := s.aliasFree(ctx, b.Alias, id)
	if err != nil {
		return nil, err
	}
	if !free {
		return nil, ErrAliasOccupied
	}
	h, err := s.repo.Update(ctx, id, b)
	if errors.Is(err, repository.ErrHallExists) {
		return nil, ErrAliasOccupied
	}
	return h, err
}

func (s *HallService) Delete(ctx context.Context, id uint64) (bool, error) {
	return s.repo.Delete(ctx, id)
}
