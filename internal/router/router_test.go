package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"storefront/internal/auth"
	"storefront/internal/config"
	"storefront/internal/handler"
	"storefront/internal/model"
	"storefront/internal/repository"
)

type stubAuthService struct{}

func (stubAuthService) Register(ctx context.Context, name, email, password, role string) (*model.User, error) {
	return &model.User{Name: name, Email: email, Role: model.RoleUser}, nil
}

func (stubAuthService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	return "token", &model.User{Email: email, Role: model.RoleUser}, nil
}

type stubProductService struct{}

func (stubProductService) List(ctx context.Context, filter repository.ProductFilter) ([]model.Product, int64, error) {
	return []model.Product{}, 0, nil
}

func (stubProductService) Get(ctx context.Context, id string) (*model.Product, error) {
	return &model.Product{ID: uuid.New()}, nil
}

func (stubProductService) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	return product, nil
}

func (stubProductService) Update(ctx context.Context, id string, fields *model.Product) (*model.Product, error) {
	return fields, nil
}

func (stubProductService) Delete(ctx context.Context, id string) error {
	return nil
}

const validProductBody = `{"name":"Mouse","description":"A mouse","price":20,"category":"electronics","image":"https://x/mouse.jpg"}`

func newTestServer() (*echo.Echo, *auth.JWTService) {
	cfg := &config.Config{JWTSecret: "router-test-secret"}
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	e := echo.New()
	Register(
		e,
		cfg,
		jwtService,
		handler.NewAuthHandler(stubAuthService{}),
		handler.NewProductHandler(stubProductService{}),
	)
	return e, jwtService
}

func doRequest(e *echo.Echo, method, target, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRouter_PublicReads(t *testing.T) {
	e, _ := newTestServer()

	assert.Equal(t, http.StatusOK, doRequest(e, http.MethodGet, "/api/products", "", "").Code)
	assert.Equal(t, http.StatusOK, doRequest(e, http.MethodGet, "/api/products/"+uuid.NewString(), "", "").Code)
	assert.Equal(t, http.StatusOK, doRequest(e, http.MethodGet, "/healthz", "", "").Code)
}

func TestRouter_AdminGate(t *testing.T) {
	e, jwtService := newTestServer()

	adminToken, err := jwtService.GenerateToken(uuid.New(), model.RoleAdmin)
	assert.NoError(t, err)
	userToken, err := jwtService.GenerateToken(uuid.New(), model.RoleUser)
	assert.NoError(t, err)
	foreignToken, err := auth.NewJWTService("some-other-secret").GenerateToken(uuid.New(), model.RoleAdmin)
	assert.NoError(t, err)

	tests := []struct {
		name         string
		token        string
		expectedCode int
	}{
		{"no token is unauthorized", "", http.StatusUnauthorized},
		{"garbage token is unauthorized", "not.a.token", http.StatusUnauthorized},
		{"wrong-key token is unauthorized", foreignToken, http.StatusUnauthorized},
		{"user token is forbidden", userToken, http.StatusForbidden},
		{"admin token is accepted", adminToken, http.StatusCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(e, http.MethodPost, "/api/products", tt.token, validProductBody)
			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}

func TestRouter_AdminGateCoversAllMutations(t *testing.T) {
	e, jwtService := newTestServer()

	userToken, err := jwtService.GenerateToken(uuid.New(), model.RoleUser)
	assert.NoError(t, err)

	id := uuid.NewString()
	assert.Equal(t, http.StatusForbidden, doRequest(e, http.MethodPut, "/api/products/"+id, userToken, validProductBody).Code)
	assert.Equal(t, http.StatusForbidden, doRequest(e, http.MethodDelete, "/api/products/"+id, userToken, "").Code)
}
