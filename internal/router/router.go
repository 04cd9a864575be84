package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"storefront/internal/auth"
	"storefront/internal/config"
	apperrors "storefront/internal/errors"
	"storefront/internal/handler"
	"storefront/internal/model"
)

// Register wires routes and middleware. Reads on the catalog are public;
// mutations require a valid token carrying the admin role.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	jwtService *auth.JWTService,
	authHandler *handler.AuthHandler,
	productHandler *handler.ProductHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/signup", authHandler.Signup)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/products", productHandler.ListProducts)
	api.GET("/products/:id", productHandler.GetProduct)

	// Admin routes (require a valid token plus the admin role)
	admin := api.Group("/products", bearerAuth(jwtService), requireRole(model.RoleAdmin))
	admin.POST("", productHandler.CreateProduct)
	admin.PUT("/:id", productHandler.UpdateProduct)
	admin.DELETE("/:id", productHandler.DeleteProduct)
}

// bearerAuth parses and verifies the Authorization header, leaving the
// claims in the request context. Missing, malformed, expired or
// wrong-key tokens are rejected with 401.
func bearerAuth(jwtService *auth.JWTService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		TokenLookup: "header:" + echo.HeaderAuthorization,
		ParseTokenFunc: func(c echo.Context, tokenString string) (interface{}, error) {
			return jwtService.ValidateToken(tokenString)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
				Error: "missing or invalid token",
				Code:  "UNAUTHORIZED",
			})
		},
	})
}

// requireRole gates a route on the authenticated role. 401 and 403 are
// distinct failures: no identity versus insufficient role.
func requireRole(required string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get("user").(*auth.Claims)
			role := ""
			if ok {
				role = claims.Role
			}
			switch auth.Authorize(role, required) {
			case auth.DecisionAuthorized:
				return next(c)
			case auth.DecisionForbidden:
				return echo.NewHTTPError(http.StatusForbidden, apperrors.ErrorResponse{
					Error: "insufficient role",
					Code:  "FORBIDDEN",
				})
			default:
				return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
					Error: "missing or invalid token",
					Code:  "UNAUTHORIZED",
				})
			}
		}
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
