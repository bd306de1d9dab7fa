package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wiktorkow/cinemaapi/internal/model"
	"github.com/wiktorkow/cinemaapi/internal/repository"
	"github.com/wiktorkow/cinemaapi/internal/utils"
)

// UserRepository is what the user service needs from the data layer.
type UserRepository interface {
	Create(ctx context.Context, email, passwordHash, privilege string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByUUID(ctx context.Context, id uuid.UUID) (*model.User, error)
	HasSuperAdmin(ctx context.Context) (bool, error)
	RecommendedGenre(ctx context.Context, userID uuid.UUID) (string, error)
	UnreviewedMoviesInGenre(ctx context.Context, userID uuid.UUID, genre string) ([]model.Movie, error)
}

// TokenOut is the login response: the bearer token plus its metadata.
type TokenOut struct {
	UserToken string    `json:"user_token"`
	TokenType string    `json:"token_type"`
	Role      string    `json:"role"`
	Expires   time.Time `json:"expires"`
}

// UserService handles registration, authentication and the review-based
// genre recommendation.
type UserService struct {
	repo          UserRepository
	jwtSecret     string
	accessTTLMin  int
	bcryptCost    int
	bootstrapCode string
}

// NewUserService constructs a UserService.  bootstrapCode is the one-time
// key that lets the first registration claim the super_admin role.
func NewUserService(repo UserRepository, jwtSecret string, accessTTLMin, bcryptCost int, bootstrapCode string) *UserService {
	return &UserService{
		repo:          repo,
		jwtSecret:     jwtSecret,
		accessTTLMin:  accessTTLMin,
		bcryptCost:    bcryptCost,
		bootstrapCode: bootstrapCode,
	}
}

// Register creates a regular user.  When authorizationCode matches the
// bootstrap code and no super_admin exists yet, the account is created as
// super_admin instead.  Duplicate emails surface as
// repository.ErrEmailExists.
func (s *UserService) Register(ctx context.Context, in model.UserIn, authorizationCode string) (*model.User, error) {
	role := model.RoleUser
	if authorizationCode != "" && authorizationCode == s.bootstrapCode {
		taken, err := s.repo.HasSuperAdmin(ctx)
		if err != nil {
			return nil, err
		}
		if !taken {
			role = model.RoleSuperAdmin
		}
	}
	return s.register(ctx, in, role)
}

// RegisterAdmin creates a user with the admin role.  The caller must hold
// super_admin privileges; the handler enforces that.
func (s *UserService) RegisterAdmin(ctx context.Context, in model.UserIn) (*model.User, error) {
	return s.register(ctx, in, model.RoleAdmin)
}

func (s *UserService) register(ctx context.Context, in model.UserIn, role string) (*model.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	hash, err := utils.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, email, hash, role)
}

// Authenticate verifies credentials and issues an access token.  A wrong
// email and a wrong password are indistinguishable to the caller.
func (s *UserService) Authenticate(ctx context.Context, in model.UserIn) (*TokenOut, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, repository.ErrUserNotFound
		}
		return nil, err
	}
	if !utils.VerifyPassword(u.Password, in.Password) {
		return nil, repository.ErrUserNotFound
	}
	tok, err := utils.NewAccessToken(s.jwtSecret, u.ID, u.Privilege, s.accessTTLMin)
	if err != nil {
		return nil, err
	}
	return &TokenOut{UserToken: tok.Token, TokenType: "Bearer", Role: u.Privilege, Expires: tok.Exp}, nil
}

// GetByUUID returns one user by id.
func (s *UserService) GetByUUID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return s.repo.GetByUUID(ctx, id)
}

// RecommendedGenre resolves the user's top-rated genre from their reviews.
func (s *UserService) RecommendedGenre(ctx context.Context, userID uuid.UUID) (string, error) {
	return s.repo.RecommendedGenre(ctx, userID)
}

// RecommendedMovies lists unwatched (unreviewed) movies in the user's
// top-rated genre.
func (s *UserService) RecommendedMovies(ctx context.Context, userID uuid.UUID) ([]model.Movie, error) {
	genre, err := s.repo.RecommendedGenre(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.repo.UnreviewedMoviesInGenre(ctx, userID, genre)
}
