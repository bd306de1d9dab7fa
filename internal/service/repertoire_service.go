package service

import (
	"context"

	"github.com/wiktorkow/cinemaapi/internal/model"
)

// RepertoireRepository is what the repertoire service needs from the data
// layer.
type RepertoireRepository interface {
	GetAll(ctx context.Context) ([]model.Repertoire, error)
	GetByID(ctx context.Context, id uint64) (*model.Repertoire, error)
	Create(ctx context.Context, b model.RepertoireBroker) (*model.Repertoire, error)
	Update(ctx context.Context, id uint64, b model.RepertoireBroker) (*model.Repertoire, error)
	Delete(ctx context.Context, id uint64) (bool, error)
}

// RepertoireService is a 1:1 wrapper; repertoires carry no semantic rules
// beyond existence checks done in the repository.
type RepertoireService struct {
	repo RepertoireRepository
}

// NewRepertoireService constructs a RepertoireService.
func NewRepertoireService(repo RepertoireRepository) *RepertoireService {
	return &RepertoireService{repo: repo}
}

func (s *RepertoireService) GetAll(ctx context.Context) ([]model.Repertoire, error) {
	return s.repo.GetAll(ctx)
}

func (s *RepertoireService) GetByID(ctx context.Context, id uint64) (*model.Repertoire, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *RepertoireService) Create(ctx context.Context, b model.RepertoireBroker) (*model.Repertoire, error) {
	return s.repo.Create(ctx, b)
}

func (s *RepertoireService) Update(ctx context.Context, id uint64, b model.RepertoireBroker) (*model.Repertoire, error) {
	return s.repo.Update(ctx, id, b)
}

func (s *RepertoireService) Delete(ctx context.Context, id uint64) (bool, error) {
	return s.repo.Delete(ctx, id)
}
