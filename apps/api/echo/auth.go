package echoapi

import (
	"net/http"

	"github.com/dgrijalva/jwt-go"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/saraquenta/Sistema-EAME/core/auth"
	"github.com/saraquenta/Sistema-EAME/core/user"
)

const (
	contextTokenKey = "userToken"
	contextUserKey  = "user"
)

// newAuthMiddleware verifies the bearer token (signature & expiry) then resolves its live, active user.
// A missing token is a 401; any other failure is a 403.
func newAuthMiddleware(svc *auth.Service) []echo.MiddlewareFunc {
	jwtMw := middleware.JWTWithConfig(middleware.JWTConfig{
		SigningKey:    svc.SecretKey(),
		SigningMethod: auth.SigningMethod.Alg(),
		ContextKey:    contextTokenKey,
		Claims:        new(auth.Claims),
		ErrorHandler: func(err error) error {
			if err == middleware.ErrJWTMissing {
				return errMissingToken
			}
			return errInvalidToken
		},
	})
	return []echo.MiddlewareFunc{jwtMw, activeUserMiddleware(svc)}
}

func activeUserMiddleware(svc *auth.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			claims, err := getContextClaims(ctx)
			if err != nil {
				return err
			}
			usr, err := svc.Resolve(ctx.Request().Context(), claims)
			if err != nil {
				if errors.Cause(err) == auth.ErrInvalidToken {
					return errInvalidToken
				}
				return errors.Wrap(err, "resolving token user")
			}
			ctx.Set(contextUserKey, usr)
			return next(ctx)
		}
	}
}

func getContextClaims(ctx echo.Context) (*auth.Claims, error) {
	if token, ok := ctx.Get(contextTokenKey).(*jwt.Token); ok {
		if claims, ok := token.Claims.(*auth.Claims); ok {
			return claims, nil
		}
	}
	return nil, errMissingToken
}

func getContextUser(ctx echo.Context) (user.User, error) {
	if usr, ok := ctx.Get(contextUserKey).(user.User); ok {
		return usr, nil
	}
	return user.User{}, errUsrNotInCtx
}

// getRawToken returns the token string the request was authenticated with.
func getRawToken(ctx echo.Context) string {
	if token, ok := ctx.Get(contextTokenKey).(*jwt.Token); ok {
		return token.Raw
	}
	return ""
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authApi struct {
	svc      *auth.Service
	validate *validator.Validate
}

func registerAuthAPI(g *echo.Group, authMw []echo.MiddlewareFunc, svc *auth.Service, validate *validator.Validate) {
	api := authApi{svc: svc, validate: validate}

	ag := g.Group("/auth")
	ag.POST("/login", api.login)
	ag.GET("/me", api.me, authMw...)
	ag.POST("/logout", api.logout, authMw...)
	ag.POST("/refresh", api.refresh, authMw...)
}

func (api *authApi) login(ctx echo.Context) error {
	var data LoginRequest
	if err := bind(ctx, &data); err != nil {
		return err
	}
	if err := api.validate.Struct(data); err != nil {
		return err
	}

	token, usr, err := api.svc.Login(ctx.Request().Context(), data.Email, data.Password)
	if err != nil {
		return errors.Wrap(err, "logging in")
	}
	return ctx.JSON(http.StatusOK, LoginResponse{Message: "Inicio de sesión exitoso", Token: token, User: usr})
}

func (api *authApi) me(ctx echo.Context) error {
	usr, err := getContextUser(ctx)
	if err != nil {
		return err
	}
	return respond(ctx, http.StatusOK, "Usuario obtenido exitosamente", usr)
}

// logout only confirms the token is valid: there is no server-side session to end.
func (api *authApi) logout(ctx echo.Context) error {
	return respond(ctx, http.StatusOK, "Sesión cerrada exitosamente", nil)
}

func (api *authApi) refresh(ctx echo.Context) error {
	token, err := api.svc.Refresh(ctx.Request().Context(), getRawToken(ctx))
	if err != nil {
		return errors.Wrap(err, "refreshing token")
	}
	return ctx.JSON(http.StatusOK, TokenResponse{Message: "Token renovado exitosamente", Token: token})
}
