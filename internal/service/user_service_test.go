package service

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wiktorkow/cinemaapi/internal/model"
	"github.com/wiktorkow/cinemaapi/internal/repository"
	"github.com/wiktorkow/cinemaapi/internal/utils"
)

type fakeUserRepo struct {
	byEmail       *model.User
	hasSuperAdmin bool
	genre         string
	genreErr      error
	movies        []model.Movie

	createdEmail string
	createdRole  string
}

func (f *fakeUserRepo) Create(ctx context.Context, email, passwordHash, privilege string) (*model.User, error) {
	f.createdEmail = email
	f.createdRole = privilege
	return &model.User{ID: uuid.New(), Email: email, Password: passwordHash, Privilege: privilege}, nil
}
func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if f.byEmail == nil {
		return nil, repository.ErrUserNotFound
	}
	return f.byEmail, nil
}
func (f *fakeUserRepo) GetByUUID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return nil, repository.ErrUserNotFound
}
func (f *fakeUserRepo) HasSuperAdmin(ctx context.Context) (bool, error) {
	return f.hasSuperAdmin, nil
}
func (f *fakeUserRepo) RecommendedGenre(ctx context.Context, userID uuid.UUID) (string, error) {
	return f.genre, f.genreErr
}
func (f *fakeUserRepo) UnreviewedMoviesInGenre(ctx context.Context, userID uuid.UUID, genre string) ([]model.Movie, error) {
	return f.movies, nil
}

func newTestUserService(repo *fakeUserRepo) *UserService {
	// Minimum bcrypt cost keeps the tests fast.
	return NewUserService(repo, "test-secret", 30, 4, "claim-code")
}

func TestRegisterDefaultsToUserRole(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := newTestUserService(repo)

	u, err := svc.Register(context.Background(), model.UserIn{Email: "A@B.pl", Password: "pw"}, "")
	require.NoError(t, err)
	assert.Equal(t, model.RoleUser, u.Privilege)
	assert.Equal(t, "a@b.pl", repo.createdEmail)
}

func TestRegisterBootstrapsFirstSuperAdmin(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := newTestUserService(repo)

	u, err := svc.Register(context.Background(), model.UserIn{Email: "root@b.pl", Password: "pw"}, "claim-code")
	require.NoError(t, err)
	assert.Equal(t, model.RoleSuperAdmin, u.Privilege)
}

// Once a super_admin exists the code is spent: later registrations get the
// plain user role even with the right code.
func TestRegisterBootstrapCodeSpent(t *testing.T) {
	repo := &fakeUserRepo{hasSuperAdmin: true}
	svc := newTestUserService(repo)

	u, err := svc.Register(context.Background(), model.UserIn{Email: "late@b.pl", Password: "pw"}, "claim-code")
	require.NoError(t, err)
	assert.Equal(t, model.RoleUser, u.Privilege)
}

func TestRegisterAdmin(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := newTestUserService(repo)

	u, err := svc.RegisterAdmin(context.Background(), model.UserIn{Email: "staff@b.pl", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, u.Privilege)
}

func TestAuthenticateIssuesToken(t *testing.T) {
	hash, err := utils.HashPassword("correct-horse", 4)
	require.NoError(t, err)
	userID := uuid.New()
	repo := &fakeUserRepo{byEmail: &model.User{ID: userID, Email: "a@b.pl", Password: hash, Privilege: model.RoleAdmin}}
	svc := newTestUserService(repo)

	tok, err := svc.Authenticate(context.Background(), model.UserIn{Email: "a@b.pl", Password: "correct-horse"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", tok.TokenType)
	assert.Equal(t, model.RoleAdmin, tok.Role)

	parsed, err := jwt.Parse(tok.UserToken, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, userID.String(), claims["sub"])
	assert.Equal(t, model.RoleAdmin, claims["role"])
}

func TestAuthenticateWrongPassword(t *testing.T) {
	hash, err := utils.HashPassword("correct-horse", 4)
	require.NoError(t, err)
	repo := &fakeUserRepo{byEmail: &model.User{ID: uuid.New(), Email: "a@b.pl", Password: hash}}
	svc := newTestUserService(repo)

	_, err = svc.Authenticate(context.Background(), model.UserIn{Email: "a@b.pl", Password: "wrong"})
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestAuthenticateUnknownEmail(t *testing.T) {
	svc := newTestUserService(&fakeUserRepo{})

	_, err := svc.Authenticate(context.Background(), model.UserIn{Email: "nobody@b.pl", Password: "pw"})
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestRecommendedMoviesUsesTopGenre(t *testing.T) {
	repo := &fakeUserRepo{genre: "horror", movies: []model.Movie{{ID: 2, Genre: "horror"}}}
	svc := newTestUserService(repo)

	movies, err := svc.RecommendedMovies(context.Background(), uuid.New())
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, "horror", movies[0].Genre)
}

func TestRecommendedMoviesWithoutReviews(t *testing.T) {
	repo := &fakeUserRepo{genreErr: repository.ErrGenreNotFound}
	svc := newTestUserService(repo)

	_, err := svc.RecommendedMovies(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrGenreNotFound)
}
