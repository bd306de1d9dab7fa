package service

import (
	"context"
	"strings"
	"time"

	"github.com/wiktorkow/cinemaapi/internal/model"
)

// languageVersions is the fixed set of accepted screening formats.
var languageVersions = map[string]bool{
	"subtitles": true,
	"dubbing":   true,
	"lector":    true,
}

// ShowingRepository is what the showing service needs from the data layer.
type ShowingRepository interface {
	GetAll(ctx context.Context) ([]model.Showing, error)
	GetByID(ctx context.Context, id uint64) (*model.Showing, error)
	GetByRepertoire(ctx context.Context, repertoireID uint64) ([]model.Showing, error)
	GetByDate(ctx context.Context, date string) ([]model.Showing, error)
	GetByTime(ctx context.Context, timeOfDay string) ([]model.Showing, error)
	GetByLanguageVer(ctx context.Context, languageVer string) ([]model.Showing, error)
	GetByMovieGenre(ctx context.Context, genre string) ([]model.Showing, error)
	GetByMovieTitle(ctx context.Context, title string) ([]model.Showing, error)
	GetByAgeRestriction(ctx context.Context, age int) ([]model.Showing, error)
	ExistsAt(ctx context.Context, hallID uint64, date, timeOfDay string) (bool, error)
	Create(ctx context.Context, b model.ShowingBroker) (*model.Showing, error)
	Update(ctx context.Context, id uint64, b model.ShowingBroker) (*model.Showing, error)
	Delete(ctx context.Context, id uint64) (bool, error)
}

// ShowingService wraps the showing repository with scheduling validation.
type ShowingService struct {
	repo ShowingRepository
}

// NewShowingService constructs a ShowingService.
func NewShowingService(repo ShowingRepository) *ShowingService {
	return &ShowingService{repo: repo}
}

func (s *ShowingService) GetAll(ctx context.Context) ([]model.Showing, error) {
	return s.repo.GetAll(ctx)
}

func (s *ShowingService) GetByID(ctx context.Context, id uint64) (*model.Showing, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ShowingService) GetByRepertoire(ctx context.Context, repertoireID uint64) ([]model.Showing, error) {
	return s.repo.GetByRepertoire(ctx, repertoireID)
}

func (s *ShowingService) GetByDate(ctx context.Context, date string) ([]model.Showing, error) {
	return s.repo.GetByDate(ctx, date)
}

func (s *ShowingService) GetByTime(ctx context.Context, timeOfDay string) ([]model.Showing, error) {
	return s.repo.GetByTime(ctx, timeOfDay)
}

func (s *ShowingService) GetByLanguageVer(ctx context.Context, languageVer string) ([]model.Showing, error) {
	return s.repo.GetByLanguageVer(ctx, languageVer)
}

func (s *ShowingService) GetByMovieGenre(ctx context.Context, genre string) ([]model.Showing, error) {
	return s.repo.GetByMovieGenre(ctx, genre)
}

func (s *ShowingService) GetByMovieTitle(ctx context.Context, title string) ([]model.Showing, error) {
	return s.repo.GetByMovieTitle(ctx, title)
}

func (s *ShowingService) GetByAgeRestriction(ctx context.Context, age int) ([]model.Showing, error) {
	return s.repo.GetByAgeRestriction(ctx, age)
}

func validateShowingFields(b model.ShowingBroker) error {
	if !languageVersions[strings.ToLower(b.LanguageVer)] {
		return ErrLanguageInvalid
	}
	if b.Price < 0 {
		return ErrPriceInvalid
	}
	if _, err := time.Parse("15:04", b.Time); err != nil {
		return ErrTimeInvalid
	}
	if _, err := time.Parse("2006-01-02", b.Date); err != nil {
		return ErrDateInvalid
	}
	return nil
}

// Create validates the schedule fields and rejects a hall that already has
// a showing at the same date and time.
func (s *ShowingService) Create(ctx context.Context, b model.ShowingBroker) (*model.Showing, error) {
	if err := validateShowingFields(b); err != nil {
		return nil, err
	}
	occupied, err := s.repo.ExistsAt(ctx, b.HallID, b.Date, b.Time)
	if err != nil {
		return nil, err
	}
	if occupied {
		return nil, ErrHallOccupied
	}
	return s.repo.Create(ctx, b)
}

// Update validates the schedule fields and replaces the row.  The
// hall-occupancy rule is skipped so a showing can be re-saved in its own
// slot.
func (s *ShowingService) Update(ctx context.Context, id uint64, b model.ShowingBroker) (*model.Showing, error) {
	if err := validateShowingFields(b); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, b)
}

func (s *ShowingService) Delete(ctx context.Context, id uint64) (bool, error) {
	return s.repo.Delete(ctx, id)
}
