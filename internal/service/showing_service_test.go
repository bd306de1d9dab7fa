package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wiktorkow/cinemaapi/internal/model"
)

type fakeShowingRepo struct {
	occupied bool
	created  *model.Showing
	updated  *model.Showing
}

func (f *fakeShowingRepo) GetAll(ctx context.Context) ([]model.Showing, error) { return nil, nil }
func (f *fakeShowingRepo) GetByID(ctx context.Context, id uint64) (*model.Showing, error) {
	return nil, nil
}
func (f *fakeShowingRepo) GetByRepertoire(ctx context.Context, repertoireID uint64) ([]model.Showing, error) {
	return nil, nil
}
func (f *fakeShowingRepo) GetByDate(ctx context.Context, date string) ([]model.Showing, error) {
	return nil, nil
}
func (f *fakeShowingRepo) GetByTime(ctx context.Context, timeOfDay string) ([]model.Showing, error) {
	return nil, nil
}
func (f *fakeShowingRepo) GetByLanguageVer(ctx context.Context, languageVer string) ([]model.Showing, error) {
	return nil, nil
}
func (f *fakeShowingRepo) GetByMovieGenre(ctx context.Context, genre string) ([]model.Showing, error) {
	return nil, nil
}
func (f *fakeShowingRepo) GetByMovieTitle(ctx context.Context, title string) ([]model.Showing, error) {
	return nil, nil
}
func (f *fakeShowingRepo) GetByAgeRestriction(ctx context.Context, age int) ([]model.Showing, error) {
	return nil, nil
}
func (f *fakeShowingRepo) ExistsAt(ctx context.Context, hallID uint64, date, timeOfDay string) (bool, error) {
	return f.occupied, nil
}
func (f *fakeShowingRepo) Create(ctx context.Context, b model.ShowingBroker) (*model.Showing, error) {
	return f.created, nil
}
func (f *fakeShowingRepo) Update(ctx context.Context, id uint64, b model.ShowingBroker) (*model.Showing, error) {
	return f.updated, nil
}
func (f *fakeShowingRepo) Delete(ctx context.Context, id uint64) (bool, error) { return false, nil }

func showingBroker(lang, date, timeOfDay string, price float64) model.ShowingBroker {
	return model.ShowingBroker{
		ShowingIn: model.ShowingIn{
			LanguageVer:  lang,
			Price:        price,
			Date:         date,
			Time:         timeOfDay,
			RepertoireID: 1,
			MovieID:      1,
			HallID:       1,
		},
		UserID: uuid.New(),
	}
}

func TestShowingCreateValidation(t *testing.T) {
	svc := NewShowingService(&fakeShowingRepo{created: &model.Showing{ID: 1}})
	ctx := context.Background()

	_, err := svc.Create(ctx, showingBroker("original", "2024-06-01", "18:30", 20))
	assert.ErrorIs(t, err, ErrLanguageInvalid)

	_, err = svc.Create(ctx, showingBroker("subtitles", "2024-06-01", "18:30", -1))
	assert.ErrorIs(t, err, ErrPriceInvalid)

	_, err = svc.Create(ctx, showingBroker("subtitles", "2024-06-01", "25:99", 20))
	assert.ErrorIs(t, err, ErrTimeInvalid)

	_, err = svc.Create(ctx, showingBroker("subtitles", "01-06-2024", "18:30", 20))
	assert.ErrorIs(t, err, ErrDateInvalid)
}

func TestShowingCreateAcceptsKnownLanguageVersions(t *testing.T) {
	svc := NewShowingService(&fakeShowingRepo{created: &model.Showing{ID: 1}})

	for _, lang := range []string{"subtitles", "Dubbing", "LECTOR"} {
		_, err := svc.Create(context.Background(), showingBroker(lang, "2024-06-01", "18:30", 20))
		assert.NoError(t, err, "language %q", lang)
	}
}

func TestShowingCreateRejectsOccupiedHall(t *testing.T) {
	svc := NewShowingService(&fakeShowingRepo{occupied: true})

	_, err := svc.Create(context.Background(), showingBroker("lector", "2024-06-01", "18:30", 20))
	assert.ErrorIs(t, err, ErrHallOccupied)
}

// Updating a showing in place keeps its own hall/date/time slot, so the
// occupancy check is skipped.
func TestShowingUpdateSkipsOccupancyCheck(t *testing.T) {
	want := &model.Showing{ID: 4}
	svc := NewShowingService(&fakeShowingRepo{occupied: true, updated: want})

	got, err := svc.Update(context.Background(), 4, showingBroker("lector", "2024-06-01", "18:30", 20))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
