package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/ManuelReschke/InkFox/internal/pkg/apperror"
	"github.com/ManuelReschke/InkFox/internal/pkg/credentials"
	appsession "github.com/ManuelReschke/InkFox/internal/pkg/session"
	"github.com/ManuelReschke/InkFox/internal/pkg/usercontext"
	"github.com/ManuelReschke/InkFox/internal/pkg/viewmodel"
)

// AuthController handles registration and the session lifecycle
type AuthController struct {
	credentials *credentials.Store
	sessions    *session.Store
}

func NewAuthController(store *credentials.Store, sessions *session.Store) *AuthController {
	return &AuthController{credentials: store, sessions: sessions}
}

// HandleRegister creates an account and logs it in.
func (ac *AuthController) HandleRegister(c *fiber.Ctx) error {
	var in credentials.RegisterInput
	if err := parseJSON(c, &in); err != nil {
		return err
	}

	user, err := ac.credentials.Register(c.UserContext(), in)
	if err != nil {
		return err
	}
	if err := appsession.Login(c, ac.sessions, user.ID); err != nil {
		return err
	}
	log.Infof("user %d registered", user.ID)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully",
		"user":    viewmodel.NewUser(user),
	})
}

func (ac *AuthController) HandleLogin(c *fiber.Ctx) error {
	var in credentials.LoginInput
	if err := parseJSON(c, &in); err != nil {
		return err
	}

	user, err := ac.credentials.Login(c.UserContext(), in)
	if err != nil {
		if apperror.Is(err, apperror.KindAuthentication) {
			log.Warnf("failed login from %s", c.IP())
		}
		return err
	}
	if err := appsession.Login(c, ac.sessions, user.ID); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"user":    viewmodel.NewUser(user),
	})
}

func (ac *AuthController) HandleLogout(c *fiber.Ctx) error {
	if err := appsession.Logout(c, ac.sessions); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Logged out successfully"})
}

// HandleMe returns the account of the session user.
func (ac *AuthController) HandleMe(c *fiber.Ctx) error {
	user, err := ac.credentials.User(c.UserContext(), usercontext.GetUserID(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"user": viewmodel.NewUser(user)})
}
