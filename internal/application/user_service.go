package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/inotebook/internal/domain/entity"
	repo "github.com/oksasatya/inotebook/internal/domain/repository"
	"github.com/oksasatya/inotebook/pkg/helpers"
	"github.com/oksasatya/inotebook/pkg/validation"
)

// IdentityCache stores public identity views keyed by user id.
type IdentityCache interface {
	Get(ctx context.Context, id entity.UserID) (*entity.UserView, bool, error)
	Set(ctx context.Context, view *entity.UserView) error
}

type UserService struct {
	Repo       repo.UserRepository
	Tokens     *helpers.TokenService
	Cache      IdentityCache
	BcryptCost int
	Logger     *logrus.Logger
}

// NewUserService wires the credential flow. cache may be nil.
func NewUserService(repo repo.UserRepository, tokens *helpers.TokenService, cache IdentityCache, bcryptCost int, logger *logrus.Logger) *UserService {
	return &UserService{
		Repo:       repo,
		Tokens:     tokens,
		Cache:      cache,
		BcryptCost: bcryptCost,
		Logger:     logger,
	}
}

type RegisterInput struct {
	Name     string `json:"name" validate:"min=3"`
	Email    string `json:"email" validate:"email"`
	Password string `json:"password" validate:"pwd,maxbytes=72"` // helpers.MaxPasswordBytes
}

type LoginInput struct {
	Email    string `json:"email" validate:"email"`
	Password string `json:"password" validate:"required"`
}

// Register creates an identity and returns its token.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (string, error) {
	if err := validation.Struct(in); err != nil {
		return "", invalid(err)
	}

	_, err := s.Repo.GetByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return "", ErrDuplicateEmail
	case !errors.Is(err, repo.ErrNotFound):
		return "", internal(s.Logger, "lookup user by email failed", err, logrus.Fields{"email": in.Email})
	}

	hash, err := helpers.HashPassword(in.Password, s.BcryptCost)
	if err != nil {
		return "", internal(s.Logger, "hash password failed", err, nil)
	}

	u := &entity.User{Name: in.Name, Email: in.Email, PasswordHash: hash}
	if err := s.Repo.Create(ctx, u); err != nil {
		// lost a race with a concurrent registration
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return "", ErrDuplicateEmail
		}
		return "", internal(s.Logger, "create user failed", err, logrus.Fields{"email": in.Email})
	}

	token, err := s.Tokens.Issue(u.ID.String())
	if err != nil {
		return "", internal(s.Logger, "issue token failed", err, logrus.Fields{"user_id": u.ID})
	}
	usersRegistered.Add(1)
	return token, nil
}

// Login checks credentials. Unknown email and wrong password are indistinguishable.
func (s *UserService) Login(ctx context.Context, in LoginInput) (string, error) {
	if err := validation.Struct(in); err != nil {
		return "", invalid(err)
	}

	u, err := s.Repo.GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			loginsFailed.Add(1)
			return "", ErrInvalidCredentials
		}
		return "", internal(s.Logger, "lookup user by email failed", err, logrus.Fields{"email": in.Email})
	}
	if err := helpers.VerifyPassword(u.PasswordHash, in.Password); err != nil {
		if errors.Is(err, helpers.ErrPasswordMismatch) {
			loginsFailed.Add(1)
			return "", ErrInvalidCredentials
		}
		return "", internal(s.Logger, "stored password hash unusable", err, logrus.Fields{"user_id": u.ID})
	}

	token, err := s.Tokens.Issue(u.ID.String())
	if err != nil {
		return "", internal(s.Logger, "issue token failed", err, logrus.Fields{"user_id": u.ID})
	}
	loginsSucceeded.Add(1)
	return token, nil
}

// GetCurrentIdentity returns the public view of the identity. Views never
// change after registration, so a cached copy is always current.
func (s *UserService) GetCurrentIdentity(ctx context.Context, id entity.UserID) (*entity.UserView, error) {
	if s.Cache != nil {
		view, ok, err := s.Cache.Get(ctx, id)
		if err != nil {
			s.Logger.WithError(err).WithField("user_id", id).Warn("identity cache read failed")
		} else if ok {
			return view, nil
		}
	}

	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, internal(s.Logger, "get user failed", err, logrus.Fields{"user_id": id})
	}

	view := u.View()
	if s.Cache != nil {
		if err := s.Cache.Set(ctx, view); err != nil {
			s.Logger.WithError(err).WithField("user_id", id).Warn("identity cache write failed")
		}
	}
	return view, nil
}
