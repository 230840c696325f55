package user_test

import (
	"context"
	"testing"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"github.com/Guyuepp/Go-Clean-Architecture-Social/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Social/domain/mocks"
	"github.com/Guyuepp/Go-Clean-Architecture-Social/internal/usecase/user"
)

var testSecret = []byte("test-secret")

func TestRegister_Success(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	svc := user.NewService(userRepo, testSecret, time.Hour)

	userRepo.On("GetByUsername", mock.Anything, "alice").Return(domain.User{}, domain.ErrNotFound)
	userRepo.On("Insert", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		// the stored password must be a hash, never the plaintext
		return u.Username == "alice" && u.Password != "s3cret-pass" &&
			bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("s3cret-pass")) == nil
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.User).ID = 1
	}).Return(nil)

	u, err := svc.Register(context.Background(), faker.Name(), "alice", "s3cret-pass")

	assert.NoError(t, err)
	assert.Equal(t, int64(1), u.ID)
	assert.Empty(t, u.Password)
}

func TestRegister_UsernameTaken(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	svc := user.NewService(userRepo, testSecret, time.Hour)

	userRepo.On("GetByUsername", mock.Anything, "alice").Return(domain.User{ID: 1, Username: "alice"}, nil)

	_, err := svc.Register(context.Background(), faker.Name(), "alice", "s3cret-pass")

	assert.ErrorIs(t, err, domain.ErrConflict)
	userRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestLogin_ReturnsValidToken(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	svc := user.NewService(userRepo, testSecret, time.Hour)

	hashed, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.DefaultCost)
	assert.NoError(t, err)
	userRepo.On("GetByUsername", mock.Anything, "alice").
		Return(domain.User{ID: 42, Username: "alice", Password: string(hashed)}, nil)

	tokenStr, err := svc.Login(context.Background(), "alice", "s3cret-pass")

	assert.NoError(t, err)
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		return testSecret, nil
	})
	assert.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.EqualValues(t, 42, claims["user_id"])
}

func TestLogin_WrongPassword(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	svc := user.NewService(userRepo, testSecret, time.Hour)

	hashed, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.DefaultCost)
	assert.NoError(t, err)
	userRepo.On("GetByUsername", mock.Anything, "alice").
		Return(domain.User{ID: 42, Username: "alice", Password: string(hashed)}, nil)

	_, err = svc.Login(context.Background(), "alice", "wrong")

	assert.ErrorIs(t, err, domain.ErrBadParamInput)
}

func TestLogin_UnknownUser(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	svc := user.NewService(userRepo, testSecret, time.Hour)

	userRepo.On("GetByUsername", mock.Anything, "ghost").Return(domain.User{}, domain.ErrNotFound)

	_, err := svc.Login(context.Background(), "ghost", "whatever")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetProfile_StripsPassword(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	svc := user.NewService(userRepo, testSecret, time.Hour)

	userRepo.On("GetByID", mock.Anything, int64(1)).
		Return(domain.User{ID: 1, Username: "alice", Password: "hash"}, nil)

	u, err := svc.GetProfile(context.Background(), 1)

	assert.NoError(t, err)
	assert.Empty(t, u.Password)
}

func TestEditPassword_WrongOldPassword(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	svc := user.NewService(userRepo, testSecret, time.Hour)

	hashed, err := bcrypt.GenerateFromPassword([]byte("old-pass"), bcrypt.DefaultCost)
	assert.NoError(t, err)
	userRepo.On("GetByID", mock.Anything, int64(1)).
		Return(domain.User{ID: 1, Password: string(hashed)}, nil)

	err = svc.EditPassword(context.Background(), 1, "not-the-old-pass", "new-pass")

	assert.ErrorIs(t, err, domain.ErrBadParamInput)
	userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestEditPassword_RehashesNewPassword(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	svc := user.NewService(userRepo, testSecret, time.Hour)

	hashed, err := bcrypt.GenerateFromPassword([]byte("old-pass"), bcrypt.DefaultCost)
	assert.NoError(t, err)
	userRepo.On("GetByID", mock.Anything, int64(1)).
		Return(domain.User{ID: 1, Password: string(hashed)}, nil)
	userRepo.On("Update", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("new-pass")) == nil
	})).Return(nil)

	err = svc.EditPassword(context.Background(), 1, "old-pass", "new-pass")

	assert.NoError(t, err)
	userRepo.AssertExpectations(t)
}
