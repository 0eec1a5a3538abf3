package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/taekwondodev/go-role-login/internal/auth/service"
	customerrors "github.com/taekwondodev/go-role-login/internal/customErrors"
	"github.com/taekwondodev/go-role-login/internal/dto"
	"github.com/taekwondodev/go-role-login/internal/models"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) CheckUserExists(ctx context.Context, username string) error {
	args := m.Called(ctx, username)
	return args.Error(0)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUserRepository) Close() error {
	args := m.Called()
	return args.Error(0)
}

/*******************************************************************************/

const lookupTimeout = 50 * time.Millisecond

func setupAuthService() (*MockUserRepository, service.AuthService) {
	mockRepo := new(MockUserRepository)
	authService := service.NewAuthService(mockRepo, lookupTimeout, zerolog.Nop())
	return mockRepo, authService
}

type loginServiceTestCase struct {
	name           string
	request        dto.LoginRequest
	mockSetup      func(*MockUserRepository)
	expectedResult *dto.LoginResponse
	expectedError  error
}

func TestAuthServiceLogin(t *testing.T) {
	alice := &models.User{Username: "alice", Password: "correct", Role: models.RoleStaff}

	testCases := []loginServiceTestCase{
		{
			name:    "LoginSuccessful",
			request: dto.LoginRequest{Username: "alice", Password: "correct"},
			mockSetup: func(mockRepo *MockUserRepository) {
				mockRepo.On("GetUserByUsername", mock.Anything, "alice").Return(alice, nil)
			},
			expectedResult: &dto.LoginResponse{Message: "Login successful", Role: models.RoleStaff},
		},
		{
			name:    "WrongPassword",
			request: dto.LoginRequest{Username: "alice", Password: "Correct"},
			mockSetup: func(mockRepo *MockUserRepository) {
				mockRepo.On("GetUserByUsername", mock.Anything, "alice").Return(alice, nil)
			},
			expectedError: customerrors.ErrInvalidCredentials,
		},
		{
			name:    "UnknownUsername",
			request: dto.LoginRequest{Username: "mallory", Password: "correct"},
			mockSetup: func(mockRepo *MockUserRepository) {
				mockRepo.On("GetUserByUsername", mock.Anything, "mallory").
					Return(nil, customerrors.ErrUserNotFound)
			},
			expectedError: customerrors.ErrInvalidCredentials,
		},
		{
			name:    "StoreFault",
			request: dto.LoginRequest{Username: "alice", Password: "correct"},
			mockSetup: func(mockRepo *MockUserRepository) {
				mockRepo.On("GetUserByUsername", mock.Anything, "alice").Return(nil, assert.AnError)
			},
			expectedError: customerrors.ErrInternalServer,
		},
		{
			name:    "EmptyPassword",
			request: dto.LoginRequest{Username: "alice", Password: ""},
			mockSetup: func(mockRepo *MockUserRepository) {
				mockRepo.On("GetUserByUsername", mock.Anything, "alice").Return(alice, nil)
			},
			expectedError: customerrors.ErrInvalidCredentials,
		},
		{
			name:    "InvalidRequest",
			request: dto.LoginRequest{Username: "", Password: ""},
			mockSetup: func(mockRepo *MockUserRepository) {
				mockRepo.On("GetUserByUsername", mock.Anything, "").
					Return(nil, customerrors.ErrUserNotFound)
			},
			expectedError: customerrors.ErrInvalidCredentials,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockRepo, authService := setupAuthService()
			tc.mockSetup(mockRepo)

			res, err := authService.Login(context.Background(), tc.request)

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
				assert.Nil(t, res)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expectedResult, res)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthServiceLoginLookupDeadline(t *testing.T) {
	t.Run("LookupHasDeadline", func(t *testing.T) {
		mockRepo, authService := setupAuthService()
		mockRepo.On("GetUserByUsername", mock.Anything, "alice").
			Run(func(args mock.Arguments) {
				deadline, ok := args.Get(0).(context.Context).Deadline()
				assert.True(t, ok)
				assert.WithinDuration(t, time.Now().Add(lookupTimeout), deadline, lookupTimeout)
			}).
			Return(&models.User{Username: "alice", Password: "correct", Role: models.RoleUser}, nil)

		res, err := authService.Login(context.Background(), dto.LoginRequest{Username: "alice", Password: "correct"})

		assert.NoError(t, err)
		assert.Equal(t, models.RoleUser, res.Role)
	})

	t.Run("HungStoreIsInternalError", func(t *testing.T) {
		mockRepo, authService := setupAuthService()
		mockRepo.On("GetUserByUsername", mock.Anything, "alice").
			Run(func(args mock.Arguments) {
				<-args.Get(0).(context.Context).Done()
			}).
			Return(nil, context.DeadlineExceeded)

		start := time.Now()
		res, err := authService.Login(context.Background(), dto.LoginRequest{Username: "alice", Password: "correct"})

		assert.ErrorIs(t, err, customerrors.ErrInternalServer)
		assert.Nil(t, res)
		assert.Less(t, time.Since(start), time.Second)
	})
}

func TestAuthServiceHealthCheck(t *testing.T) {
	t.Run("Healthy", func(t *testing.T) {
		mockRepo, authService := setupAuthService()
		mockRepo.On("Ping", mock.Anything).Return(nil)

		res, err := authService.HealthCheck(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, &dto.HealthResponse{Status: "OK", Database: "Connected"}, res)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Unreachable", func(t *testing.T) {
		mockRepo, authService := setupAuthService()
		mockRepo.On("Ping", mock.Anything).Return(assert.AnError)

		res, err := authService.HealthCheck(context.Background())

		assert.ErrorIs(t, err, customerrors.ErrDbUnreachable)
		assert.Nil(t, res)
	})

	t.Run("Timeout", func(t *testing.T) {
		mockRepo, authService := setupAuthService()
		mockRepo.On("Ping", mock.Anything).
			Run(func(args mock.Arguments) {
				<-args.Get(0).(context.Context).Done()
			}).
			Return(context.DeadlineExceeded)

		res, err := authService.HealthCheck(context.Background())

		assert.ErrorIs(t, err, customerrors.ErrDbTimeout)
		assert.Nil(t, res)
	})
}
