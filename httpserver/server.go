package httpserver

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"moviestore/errs"
	"moviestore/movie"
	"moviestore/pkg/config"
	"moviestore/pkg/sentry"

	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	// Router is the Echo router instance
	Router *echo.Echo

	// Addr represents the address the server will listen on
	Addr string

	// Allowed origins for CORS
	AllowOrigins []string

	MovieService movie.Service
}

func Default(cfg *config.Config) *Server {
	s := Server{
		Router:       echo.New(),
		Addr:         ":3000",
		AllowOrigins: []string{"*"},
	}
	if cfg.AllowOrigins != "" {
		s.AllowOrigins = strings.Split(cfg.AllowOrigins, ",")
	}

	s.Router.HTTPErrorHandler = customHTTPErrorHandler
	s.RegisterGlobalMiddlewares()
	s.RegisterHealthRoutes()
	s.RegisterMovieRoutes()
	return &s
}

func (s *Server) RegisterGlobalMiddlewares() {
	s.Router.Use(middleware.Recover())
	s.Router.Use(middleware.Secure())
	s.Router.Use(middleware.RequestID())
	s.Router.Use(middleware.Gzip())
	s.Router.Use(sentryecho.New(sentryecho.Options{Repanic: true}))
	s.Router.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(20)))

	// CORS
	if len(s.AllowOrigins) > 0 {
		s.Router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: s.AllowOrigins,
		}))
	}
}

func (s *Server) Start() error {
	return s.Router.Start(s.Addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.Router.Shutdown(ctx)
}

// customHTTPErrorHandler maps application errors to the wire contract:
// validation failures carry the whole violation list under "errors", every
// other failure carries a single message under "error".
func customHTTPErrorHandler(err error, c echo.Context) {
	code := http.StatusInternalServerError
	var body interface{} = errorBody("Internal server error")

	var verr *movie.ValidationError
	var he *echo.HTTPError

	switch {
	case errors.As(err, &verr):
		code = http.StatusBadRequest
		body = errorsBody(verr.Violations)
	case errors.As(err, &he):
		// Echo raises these itself for unknown paths and methods; both
		// read as an unknown route to API clients. Everything else here
		// is a bad request body caught by the binder.
		if he.Code == http.StatusNotFound || he.Code == http.StatusMethodNotAllowed {
			code = http.StatusNotFound
			body = errorBody("Route not found")
		} else {
			code = he.Code
			body = errorBody(messageOf(he))
		}
	default:
		switch errs.ErrorCode(err) {
		case errs.EINVALID:
			code = http.StatusBadRequest
			body = errorBody(errs.ErrorMessage(err))
		case errs.ENOTFOUND:
			code = http.StatusNotFound
			body = errorBody(errs.ErrorMessage(err))
		case errs.ECONFLICT:
			code = http.StatusConflict
			body = errorBody(errs.ErrorMessage(err))
		case errs.EUNAUTHORIZED:
			code = http.StatusUnauthorized
			body = errorBody(errs.ErrorMessage(err))
		case errs.ENOTIMPLEMENTED:
			code = http.StatusNotImplemented
			body = errorBody(errs.ErrorMessage(err))
		}
	}

	if code >= http.StatusInternalServerError {
		sentry.WithContext(c).Error(err)
	}

	// Don't write response if already committed
	if !c.Response().Committed {
		if err := c.JSON(code, body); err != nil {
			c.Logger().Error(err)
		}
	}
}
