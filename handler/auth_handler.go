package handler

import (
	"errors"
	"log"

	"jotbox/dto"
	"jotbox/middleware"
	"jotbox/model"
	"jotbox/services"
	"jotbox/usecase"
	"jotbox/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	users  *usecase.UserService
	tokens *services.TokenService
}

func NewAuthHandler(users *usecase.UserService, tokens *services.TokenService) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens}
}

// Register creates a new account and returns its public projection.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationFailed(c, err)
		return
	}

	user, err := h.users.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrEmailTaken):
			utils.Conflict(c, model.ErrEmailTaken.Error())
		case usecase.IsValidationError(err):
			utils.BadRequest(c, err.Error())
		default:
			log.Printf("Error registering user: %v", err)
			utils.InternalError(c, "failed to register user")
		}
		return
	}

	utils.Created(c, dto.ToUserResponse(user))
}

// Login exchanges valid credentials for a bearer token. Unknown email and
// wrong password produce the identical response.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationFailed(c, err)
		return
	}

	user, err := h.users.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, model.ErrInvalidCredentials) {
			utils.Unauthorized(c, model.ErrInvalidCredentials.Error())
			return
		}
		log.Printf("Error authenticating user: %v", err)
		utils.InternalError(c, "failed to log in")
		return
	}

	token, err := h.tokens.Generate(user.ID)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		utils.InternalError(c, "failed to generate token")
		return
	}

	utils.Success(c, dto.LoginResponse{
		AccessToken: token,
		User:        dto.ToUserResponse(user),
	})
}

// Me returns the caller's own public projection.
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.CallerID(c)
	if !ok {
		utils.Unauthorized(c, services.ErrTokenMissing.Error())
		return
	}

	user, err := h.users.GetByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			utils.NotFound(c, model.ErrUserNotFound.Error())
			return
		}
		log.Printf("Error fetching user %s: %v", userID, err)
		utils.InternalError(c, "failed to fetch user")
		return
	}

	utils.Success(c, dto.ToUserResponse(user))
}
