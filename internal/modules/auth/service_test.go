package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"resolvehub/internal/domain"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil {
		u.ID = 101
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) UpdateLoginState(ctx context.Context, userID int64, attempts int, lockedUntil *time.Time) error {
	args := m.Called(ctx, userID, attempts, lockedUntil)
	return args.Error(0)
}

type fakeJWT struct{}

func (fakeJWT) GenerateToken(userID int64, role string) (string, error) {
	return "token", nil
}

func TestRegister_Success(t *testing.T) {
	users := new(MockUserRepository)
	users.On("ExistsByEmail", mock.Anything, "ip@example.com").Return(false, nil)
	users.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(users, fakeJWT{})
	user, err := service.Register(context.Background(), RegisterRequest{
		Name:     "Asha Verma",
		Email:    "ip@example.com",
		Password: "supersecret",
		Role:     string(domain.RoleServiceProviderIndividual),
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(101), user.ID)
	assert.Equal(t, domain.RoleServiceProviderIndividual, user.Role)
	assert.Empty(t, user.PasswordHash)
}

func TestRegister_UnknownRole(t *testing.T) {
	service := NewService(new(MockUserRepository), fakeJWT{})
	_, err := service.Register(context.Background(), RegisterRequest{
		Name:     "Asha Verma",
		Email:    "ip@example.com",
		Password: "supersecret",
		Role:     "super_admin",
	})
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	users := new(MockUserRepository)
	users.On("ExistsByEmail", mock.Anything, "ip@example.com").Return(true, nil)

	service := NewService(users, fakeJWT{})
	_, err := service.Register(context.Background(), RegisterRequest{
		Name:     "Asha Verma",
		Email:    "ip@example.com",
		Password: "supersecret",
		Role:     string(domain.RoleServiceSeekerEntity),
	})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	users.AssertNotCalled(t, "Create")
}

func TestLogin_Success(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.MinCost)
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "ip@example.com").Return(&domain.User{
		ID:           101,
		Email:        "ip@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleServiceProviderIndividual,
	}, nil)

	service := NewService(users, fakeJWT{})
	result, err := service.Login(context.Background(), LoginRequest{
		Email:    "ip@example.com",
		Password: "supersecret",
	})

	assert.NoError(t, err)
	assert.Equal(t, "token", result.AccessToken)
	assert.Empty(t, result.User.PasswordHash)
}

func TestLogin_WrongPasswordIncrementsCounter(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.MinCost)
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "ip@example.com").Return(&domain.User{
		ID:           101,
		Email:        "ip@example.com",
		PasswordHash: string(hash),
	}, nil)
	users.On("UpdateLoginState", mock.Anything, int64(101), 1, (*time.Time)(nil)).Return(nil)

	service := NewService(users, fakeJWT{})
	_, err := service.Login(context.Background(), LoginRequest{
		Email:    "ip@example.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	users.AssertExpectations(t)
}

func TestLogin_LockoutAfterMaxAttempts(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.MinCost)
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "ip@example.com").Return(&domain.User{
		ID:                  101,
		Email:               "ip@example.com",
		PasswordHash:        string(hash),
		FailedLoginAttempts: maxFailedLoginAttempts - 1,
	}, nil)
	users.On("UpdateLoginState", mock.Anything, int64(101), maxFailedLoginAttempts, mock.Anything).Return(nil)

	service := NewService(users, fakeJWT{})
	_, err := service.Login(context.Background(), LoginRequest{
		Email:    "ip@example.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, ErrAccountLocked)
}

func TestLogin_LockedAccountRejected(t *testing.T) {
	until := time.Now().Add(10 * time.Minute)
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "ip@example.com").Return(&domain.User{
		ID:          101,
		Email:       "ip@example.com",
		LockedUntil: &until,
	}, nil)

	service := NewService(users, fakeJWT{})
	_, err := service.Login(context.Background(), LoginRequest{
		Email:    "ip@example.com",
		Password: "supersecret",
	})

	assert.ErrorIs(t, err, ErrAccountLocked)
}

func TestLogin_UnknownEmail(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)

	service := NewService(users, fakeJWT{})
	_, err := service.Login(context.Background(), LoginRequest{
		Email:    "nobody@example.com",
		Password: "supersecret",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
