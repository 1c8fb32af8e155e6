// Package httpapi exposes the public HTTP surface of the server: signup,
// login, session checks, logout, and recipe listing/creation. Transport
// concerns (cookies, status codes, JSON shapes) live here; everything else
// is delegated to the services layer.
package httpapi

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	recoverer "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/plateshare/plateshare/internal/logging"
	"github.com/plateshare/plateshare/internal/server/models"
	"github.com/plateshare/plateshare/internal/server/services"
)

type userService interface {
	Signup(ctx context.Context, username, password, bio, imageURL string) (*services.AuthResult, error)
	Login(ctx context.Context, username, password string) (*services.AuthResult, error)
	CurrentUser(ctx context.Context, token string) (*models.User, error)
	Logout(ctx context.Context, token string) error
}

type recipeService interface {
	Create(ctx context.Context, userID string, input services.RecipeInput) (*models.Recipe, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Recipe, error)
}

type Server struct {
	address                 string
	logger                  logging.Logger
	users                   userService
	recipes                 recipeService
	sessionValidityDuration time.Duration
	app                     *fiber.App
}

func NewServer(a string, l logging.Logger, us userService, rs recipeService, sessionValidityDuration time.Duration) *Server {
	s := &Server{
		address:                 a,
		logger:                  l.With("module", "http_server"),
		users:                   us,
		recipes:                 rs,
		sessionValidityDuration: sessionValidityDuration,
	}

	app := fiber.New(fiber.Config{DisableStartupMessage: true})

	app.Use(requestid.New())
	app.Use(recoverer.New())
	app.Use(s.accessLog)

	app.Post("/signup", s.handleSignup)
	app.Post("/login", s.handleLogin)

	app.Get("/check_session", s.requireSession, s.handleCheckSession)
	app.Delete("/logout", s.requireSession, s.handleLogout)
	app.Get("/recipes", s.requireSession, s.handleListRecipes)
	app.Post("/recipes", s.requireSession, s.handleCreateRecipe)

	s.app = app
	return s
}

func (s *Server) accessLog(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()

	s.logger.Info(c.UserContext(), "request",
		"method", c.Method(),
		"path", c.Path(),
		"status", c.Response().StatusCode(),
		"duration", time.Since(start).String(),
		"request_id", c.Locals(requestid.ConfigDefault.ContextKey),
	)

	return err
}

func (s *Server) Run(ctx context.Context) error {

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		if err := s.app.Shutdown(); err != nil {
			s.logger.Error(ctx, "HTTP server shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	// blocks until Shutdown
	if err := s.app.Listen(s.address); err != nil {
		return err
	}

	return nil
}
