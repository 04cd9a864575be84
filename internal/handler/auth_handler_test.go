package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "storefront/internal/errors"
	"storefront/internal/model"
)

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, name, email, password, role string) (*model.User, error) {
	args := m.Called(ctx, name, email, password, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*model.User), args.Error(2)
}

func TestAuthHandler_Signup(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		setupMock    func(*MockAuthService)
		expectedCode int
	}{
		{
			name: "successful signup",
			body: `{"name":"Ann","email":"ann@x.com","password":"secret1"}`,
			setupMock: func(m *MockAuthService) {
				m.On("Register", mock.Anything, "Ann", "ann@x.com", "secret1", "").
					Return(&model.User{Name: "Ann", Email: "ann@x.com", Role: model.RoleUser}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "duplicate email",
			body: `{"name":"Ann2","email":"ANN@x.com","password":"secret2"}`,
			setupMock: func(m *MockAuthService) {
				m.On("Register", mock.Anything, "Ann2", "ANN@x.com", "secret2", "").
					Return(nil, apperrors.ErrEmailTaken)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "missing email",
			body:         `{"name":"Ann","password":"secret1"}`,
			setupMock:    func(m *MockAuthService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "empty password",
			body:         `{"name":"Ann","email":"ann@x.com","password":""}`,
			setupMock:    func(m *MockAuthService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "unknown role",
			body:         `{"name":"Ann","email":"ann@x.com","password":"secret1","role":"root"}`,
			setupMock:    func(m *MockAuthService) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockAuthService)
			tt.setupMock(mockSvc)

			c, rec := newTestContext(http.MethodPost, "/api/auth/signup", tt.body)
			h := NewAuthHandler(mockSvc)

			err := h.Signup(c)
			if tt.expectedCode == http.StatusCreated {
				assert.NoError(t, err)
				assert.Equal(t, http.StatusCreated, rec.Code)

				var resp map[string]json.RawMessage
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Contains(t, resp, "message")
				assert.Contains(t, resp, "user")
				assert.NotContains(t, rec.Body.String(), "password")
			} else {
				httpErr, ok := err.(*echo.HTTPError)
				assert.True(t, ok)
				assert.Equal(t, tt.expectedCode, httpErr.Code)
			}

			mockSvc.AssertExpectations(t)
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		setupMock    func(*MockAuthService)
		expectedCode int
	}{
		{
			name: "successful login",
			body: `{"email":"ann@x.com","password":"secret1"}`,
			setupMock: func(m *MockAuthService) {
				m.On("Login", mock.Anything, "ann@x.com", "secret1").
					Return("signed-token", &model.User{Email: "ann@x.com", Role: model.RoleAdmin}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "invalid credentials",
			body: `{"email":"ann@x.com","password":"wrong"}`,
			setupMock: func(m *MockAuthService) {
				m.On("Login", mock.Anything, "ann@x.com", "wrong").
					Return("", nil, apperrors.ErrInvalidCredentials)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "missing password",
			body:         `{"email":"ann@x.com"}`,
			setupMock:    func(m *MockAuthService) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockAuthService)
			tt.setupMock(mockSvc)

			c, rec := newTestContext(http.MethodPost, "/api/auth/login", tt.body)
			h := NewAuthHandler(mockSvc)

			err := h.Login(c)
			if tt.expectedCode == http.StatusOK {
				assert.NoError(t, err)
				assert.Equal(t, http.StatusOK, rec.Code)

				var resp LoginResponse
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, "signed-token", resp.Token)
				assert.Equal(t, model.RoleAdmin, resp.Role)
			} else {
				httpErr, ok := err.(*echo.HTTPError)
				assert.True(t, ok)
				assert.Equal(t, tt.expectedCode, httpErr.Code)
			}

			mockSvc.AssertExpectations(t)
		})
	}
}
