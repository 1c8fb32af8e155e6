package httpapi

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/plateshare/plateshare/internal/common"
	"github.com/plateshare/plateshare/internal/server/models"
	"github.com/plateshare/plateshare/internal/server/services"
)

// Locals key under which requireSession stores the raw session token.
const localsSessionToken = "session_token"

type signupRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Bio      string `json:"bio"`
	ImageURL string `json:"image_url"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type recipeRequest struct {
	Title             string `json:"title"`
	Instructions      string `json:"instructions"`
	MinutesToComplete int    `json:"minutes_to_complete"`
}

// requireSession rejects requests without a session cookie and stashes the
// token for the handlers. The token is only resolved to a user inside each
// handler, so identity is re-checked on every request.
func (s *Server) requireSession(c *fiber.Ctx) error {
	token := c.Cookies(common.SessionCookieName)
	if token == "" {
		return s.renderUnauthorized(c)
	}
	c.Locals(localsSessionToken, token)
	return c.Next()
}

func (s *Server) sessionToken(c *fiber.Ctx) string {
	token, _ := c.Locals(localsSessionToken).(string)
	return token
}

func (s *Server) setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     common.SessionCookieName,
		Value:    token,
		Expires:  time.Now().Add(s.sessionValidityDuration),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}

func (s *Server) clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     common.SessionCookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}

func (s *Server) renderUnauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
}

func (s *Server) renderNoData(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"errors": []string{"No data provided"}})
}

// renderError translates service errors into the documented JSON bodies.
func (s *Server) renderError(c *fiber.Ctx, err error) error {
	var ve *common.ValidationError
	switch {
	case errors.As(err, &ve):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"errors": ve.Messages})
	case errors.Is(err, common.ErrorAlreadyExists):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"errors": []string{"Username already exists"}})
	case errors.Is(err, common.ErrorUnauthorized), errors.Is(err, common.ErrSessionExpired):
		return s.renderUnauthorized(c)
	case errors.Is(err, common.ErrorNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	default:
		s.logger.Error(c.UserContext(), "request failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}
}

func (s *Server) handleSignup(c *fiber.Ctx) error {
	var req signupRequest
	if err := c.BodyParser(&req); err != nil {
		return s.renderNoData(c)
	}

	res, err := s.users.Signup(c.UserContext(), req.Username, req.Password, req.Bio, req.ImageURL)
	if err != nil {
		return s.renderError(c, err)
	}

	s.setSessionCookie(c, res.Token)
	return c.Status(fiber.StatusCreated).JSON(res.User.PublicView())
}

func (s *Server) handleLogin(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return s.renderNoData(c)
	}

	res, err := s.users.Login(c.UserContext(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid username or password"})
		}
		return s.renderError(c, err)
	}

	s.setSessionCookie(c, res.Token)
	return c.Status(fiber.StatusOK).JSON(res.User.PublicView())
}

func (s *Server) handleCheckSession(c *fiber.Ctx) error {
	user, err := s.users.CurrentUser(c.UserContext(), s.sessionToken(c))
	if err != nil {
		// a deleted user's leftover token is just an invalid session here
		if errors.Is(err, common.ErrorNotFound) {
			return s.renderUnauthorized(c)
		}
		return s.renderError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(user.PublicView())
}

func (s *Server) handleLogout(c *fiber.Ctx) error {
	if err := s.users.Logout(c.UserContext(), s.sessionToken(c)); err != nil {
		return s.renderError(c, err)
	}

	s.clearSessionCookie(c)
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) handleListRecipes(c *fiber.Ctx) error {
	user, err := s.users.CurrentUser(c.UserContext(), s.sessionToken(c))
	if err != nil {
		return s.renderError(c, err)
	}

	list, err := s.recipes.ListByUser(c.UserContext(), user.ID)
	if err != nil {
		return s.renderError(c, err)
	}

	views := make([]models.RecipeView, 0, len(list))
	for _, r := range list {
		views = append(views, r.PublicView())
	}

	return c.Status(fiber.StatusOK).JSON(views)
}

func (s *Server) handleCreateRecipe(c *fiber.Ctx) error {
	user, err := s.users.CurrentUser(c.UserContext(), s.sessionToken(c))
	if err != nil {
		return s.renderError(c, err)
	}

	var req recipeRequest
	if err := c.BodyParser(&req); err != nil {
		return s.renderNoData(c)
	}

	// the owner always comes from the session, never from the body
	recipe, err := s.recipes.Create(c.UserContext(), user.ID, services.RecipeInput{
		Title:             req.Title,
		Instructions:      req.Instructions,
		MinutesToComplete: req.MinutesToComplete,
	})
	if err != nil {
		return s.renderError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(recipe.PublicView())
}
