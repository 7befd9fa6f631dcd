package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/franciscosanchezn/pizza-catalog-api/internal/auth"
	"github.com/franciscosanchezn/pizza-catalog-api/internal/models"
	"github.com/franciscosanchezn/pizza-catalog-api/internal/services"
)

// AuthController handles signup and login.
type AuthController struct {
	userService services.UserService
	tokens      auth.TokenService
}

func NewAuthController(userService services.UserService, tokens auth.TokenService) *AuthController {
	return &AuthController{
		userService: userService,
		tokens:      tokens,
	}
}

// Signup godoc
// @Summary Register a new user
// @Description Create a user account. Usernames and emails are unique.
// @Tags auth
// @Accept json
// @Produce json
// @Param user body models.SignupRequest true "Signup payload"
// @Success 201 {object} models.User
// @Failure 400 {object} models.APIError
// @Router /signup [post]
func (ac *AuthController) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, "Invalid signup payload",
			map[string]interface{}{"reason": err.Error()}))
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		log.WithError(err).Error("Password hashing failed")
		c.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Could not create user"))
		return
	}

	user := &models.User{
		Username:        req.Username,
		Email:           req.Email,
		Password:        hash,
		PermissionLevel: models.PermissionOrdinary,
	}
	if req.PermissionLevel != 0 {
		user.PermissionLevel = req.PermissionLevel
	}

	if err := ac.userService.CreateUser(user); err != nil {
		switch {
		case errors.Is(err, services.ErrUsernameTaken):
			c.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrConflict, "The username already exists"))
		case errors.Is(err, services.ErrEmailTaken):
			c.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrConflict, "The email already exists"))
		default:
			log.WithError(err).Error("User creation failed")
			c.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Could not create user"))
		}
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Login godoc
// @Summary Log in with username and password
// @Description Exchange form-encoded credentials for an access/refresh token pair.
// @Tags auth
// @Accept application/x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Success 200 {object} models.TokenPair
// @Failure 400 {object} models.APIError
// @Router /login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var form models.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, "Username and password are required"))
		return
	}

	// Unknown usernames and wrong passwords produce the same response so
	// the two cases cannot be told apart from the outside.
	user, err := ac.userService.GetUserByUsername(form.Username)
	if err != nil {
		if services.IsNotFound(err) {
			c.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrInvalidCredentials, "Incorrect username or password"))
			return
		}
		log.WithError(err).Error("User lookup failed during login")
		c.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Login failed"))
		return
	}
	if !auth.CheckPassword(form.Password, user.Password) {
		c.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrInvalidCredentials, "Incorrect username or password"))
		return
	}

	// Tokens encode the user's email as the subject.
	access, err := ac.tokens.GenerateAccessToken(user.Email)
	if err != nil {
		log.WithError(err).Error("Access token generation failed")
		c.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Login failed"))
		return
	}
	refresh, err := ac.tokens.GenerateRefreshToken(user.Email)
	if err != nil {
		log.WithError(err).Error("Refresh token generation failed")
		c.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Login failed"))
		return
	}

	c.JSON(http.StatusOK, models.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
	})
}
