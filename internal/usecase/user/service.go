package user

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/Guyuepp/Go-Clean-Architecture-Social/domain"
)

type Service struct {
	userRepo  domain.UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
}

var _ domain.UserUsecase = (*Service)(nil)

// NewService will create a new user service object
func NewService(u domain.UserRepository, jwtSecret []byte, tokenTTL time.Duration) *Service {
	return &Service{
		userRepo:  u,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
	}
}

func (s *Service) Register(ctx context.Context, name, username, password string) (domain.User, error) {
	_, err := s.userRepo.GetByUsername(ctx, username)
	if err == nil {
		return domain.User{}, domain.ErrConflict
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return domain.User{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, err
	}

	u := domain.User{
		Name:      name,
		Username:  username,
		Password:  string(hashed),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := s.userRepo.Insert(ctx, &u); err != nil {
		return domain.User{}, err
	}

	u.Password = ""
	return u, nil
}

func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	u, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return "", domain.ErrBadParamInput
	}

	claims := jwt.MapClaims{
		"user_id": u.ID,
		"exp":     time.Now().Add(s.tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(s.jwtSecret)
}

func (s *Service) GetProfile(ctx context.Context, id int64) (domain.User, error) {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	u.Password = ""
	return u, nil
}

func (s *Service) UpdateProfile(ctx context.Context, id int64, name, bio string) (domain.User, error) {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return domain.User{}, err
	}

	u.Name = name
	u.Bio = bio
	u.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, &u); err != nil {
		return domain.User{}, err
	}

	u.Password = ""
	return u, nil
}

func (s *Service) EditPassword(ctx context.Context, id int64, oldPassword, newPassword string) error {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(oldPassword)); err != nil {
		return domain.ErrBadParamInput
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	u.Password = string(hashed)
	u.UpdatedAt = time.Now()
	return s.userRepo.Update(ctx, &u)
}
