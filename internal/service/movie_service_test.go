package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wiktorkow/cinemaapi/internal/model"
	"github.com/wiktorkow/cinemaapi/internal/repository"
)

type fakeMovieRepo struct {
	byTitle *model.Movie
	created *model.Movie
	updated *model.Movie
}

func (f *fakeMovieRepo) GetAll(ctx context.Context) ([]model.Movie, error) { return nil, nil }
func (f *fakeMovieRepo) GetByID(ctx context.Context, id uint64) (*model.Movie, error) {
	return nil, repository.ErrMovieNotFound
}
func (f *fakeMovieRepo) GetByTitle(ctx context.Context, title string) (*model.Movie, error) {
	if f.byTitle == nil {
		return nil, repository.ErrMovieNotFound
	}
	return f.byTitle, nil
}
func (f *fakeMovieRepo) GetByGenre(ctx context.Context, genre string) ([]model.Movie, error) {
	return nil, nil
}
func (f *fakeMovieRepo) GetByAgeRestriction(ctx context.Context, age int) ([]model.Movie, error) {
	return nil, nil
}
func (f *fakeMovieRepo) GetByRating(ctx context.Context, rating float64) ([]model.Movie, error) {
	return nil, nil
}
func (f *fakeMovieRepo) Create(ctx context.Context, b model.MovieBroker) (*model.Movie, error) {
	return f.created, nil
}
func (f *fakeMovieRepo) Update(ctx context.Context, id uint64, b model.MovieBroker) (*model.Movie, error) {
	return f.updated, nil
}
func (f *fakeMovieRepo) Delete(ctx context.Context, id uint64) (bool, error) { return false, nil }

func movieBroker(title, duration string, age int) model.MovieBroker {
	return model.MovieBroker{
		MovieIn: model.MovieIn{Title: title, Genre: "drama", AgeRestriction: age, Duration: duration},
		UserID:  uuid.New(),
	}
}

func TestMovieCreateRejectsOccupiedTitle(t *testing.T) {
	repo := &fakeMovieRepo{byTitle: &model.Movie{ID: 1, Title: "Heat"}}
	svc := NewMovieService(repo)

	_, err := svc.Create(context.Background(), movieBroker("Heat", "2.50", 15))
	assert.ErrorIs(t, err, ErrTitleOccupied)
}

func TestMovieCreateRejectsNegativeAge(t *testing.T) {
	svc := NewMovieService(&fakeMovieRepo{})

	_, err := svc.Create(context.Background(), movieBroker("Heat", "2.50", -1))
	assert.ErrorIs(t, err, ErrAgeInvalid)
}

func TestMovieDurationValidation(t *testing.T) {
	svc := NewMovieService(&fakeMovieRepo{created: &model.Movie{ID: 1}})

	bad := []string{"150", "2.75", "2:30", "abc", "2.-1", ""}
	for _, d := range bad {
		_, err := svc.Create(context.Background(), movieBroker("Heat", d, 15))
		assert.ErrorIs(t, err, ErrDurationInvalid, "duration %q", d)
	}

	good := []string{"2.30", "0.45", "1.05", "10.00"}
	for _, d := range good {
		_, err := svc.Create(context.Background(), movieBroker("Heat", d, 15))
		assert.NoError(t, err, "duration %q", d)
	}
}

// Re-saving a movie under its own title must not be rejected; the store's
// unique key still guards against taking another movie's title.
func TestMovieUpdateSkipsTitleCheck(t *testing.T) {
	want := &model.Movie{ID: 1, Title: "Heat"}
	repo := &fakeMovieRepo{byTitle: want, updated: want}
	svc := NewMovieService(repo)

	got, err := svc.Update(context.Background(), 1, movieBroker("Heat", "2.50", 15))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
