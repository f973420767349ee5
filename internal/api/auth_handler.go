package api

import (
	"alcyxob/coach-studio/internal/domain"
	"alcyxob/coach-studio/internal/service"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler holds the authentication service dependency.
type AuthHandler struct {
	authService service.AuthService
	logger      *zap.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService service.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, logger: logger}
}

// --- Request/Response Structs ---

type SignUpRequest struct {
	Name     string      `json:"name" binding:"required"`
	Email    string      `json:"email" binding:"required,email"`
	Password string      `json:"password" binding:"required,min=8"`
	Role     domain.Role `json:"role" binding:"required,oneof=coach athlete"`
}

// UserResponse excludes sensitive info like password hash
type UserResponse struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Email          string      `json:"email"`
	Role           domain.Role `json:"role"`
	AvatarURL      string      `json:"avatarUrl,omitempty"`
	Bio            string      `json:"bio,omitempty"`
	Location       string      `json:"location,omitempty"`
	Phone          string      `json:"phone,omitempty"`
	OrganizationID string      `json:"organizationId,omitempty"`
	CreatedAt      time.Time   `json:"createdAt"`
}

type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SessionResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

// UpdateProfileRequest changes only the fields that are sent.
type UpdateProfileRequest struct {
	Name           *string `json:"name"`
	AvatarURL      *string `json:"avatarUrl"`
	Bio            *string `json:"bio"`
	Location       *string `json:"location"`
	Phone          *string `json:"phone"`
	OrganizationID *string `json:"organizationId"`
}

// --- Handler Methods ---

// SignUp godoc
// @Summary Register a new user (Coach or Athlete)
// @Description Creates a new user account and signs it in.
// @Tags Auth
// @Accept json
// @Produce json
// @Param user body SignUpRequest true "Registration details"
// @Success 201 {object} SessionResponse "User created and signed in"
// @Failure 400 {object} gin.H "Invalid input (validation error)"
// @Failure 409 {object} gin.H "Conflict (email already exists)"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /auth/signup [post]
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	s, err := h.authService.SignUp(c.Request.Context(), service.SignUpInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidSignUp):
			abortWithError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrUserAlreadyExists):
			abortWithError(c, http.StatusConflict, err.Error())
		default:
			h.logger.Error("Sign up failed", zap.Error(err))
			abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred during registration")
		}
		return
	}

	c.JSON(http.StatusCreated, MapSessionToResponse(s))
}

// SignIn godoc
// @Summary Sign in a user
// @Description Checks credentials and opens a session. The returned token identifies the session.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body SignInRequest true "Sign-in credentials"
// @Success 200 {object} SessionResponse "Signed in"
// @Failure 400 {object} gin.H "Invalid input (validation error)"
// @Failure 401 {object} gin.H "Unauthorized (invalid credentials)"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /auth/signin [post]
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	s, err := h.authService.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrAuthenticationFailed) {
			abortWithError(c, http.StatusUnauthorized, err.Error())
		} else {
			h.logger.Error("Sign in failed", zap.Error(err))
			abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred during sign in")
		}
		return
	}

	c.JSON(http.StatusOK, MapSessionToResponse(s))
}

// SignOut godoc
// @Summary Sign out
// @Description Ends the current session and discards its workout draft.
// @Tags Auth
// @Security BearerAuth
// @Success 204 "Signed out"
// @Failure 401 {object} gin.H "Unauthorized"
// @Router /auth/signout [post]
func (h *AuthHandler) SignOut(c *gin.Context) {
	sessionID, err := getSessionIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, err.Error())
		return
	}
	if err := h.authService.SignOut(c.Request.Context(), sessionID); err != nil {
		h.logger.Error("Sign out failed", zap.String("sessionId", sessionID), zap.Error(err))
		abortWithError(c, http.StatusInternalServerError, "Could not end session")
		return
	}
	c.Status(http.StatusNoContent)
}

// Me godoc
// @Summary Current user
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} UserResponse
// @Failure 401 {object} gin.H "Unauthorized"
// @Router /me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := getUserFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, err.Error())
		return
	}
	c.JSON(http.StatusOK, MapUserToResponse(user))
}

// UpdateMe godoc
// @Summary Update own profile
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body UpdateProfileRequest true "Fields to change"
// @Success 200 {object} UserResponse
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 401 {object} gin.H "Unauthorized"
// @Router /me [patch]
func (h *AuthHandler) UpdateMe(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, err.Error())
		return
	}

	user, err := h.authService.UpdateProfile(c.Request.Context(), userID, service.ProfileUpdate{
		Name:           req.Name,
		AvatarURL:      req.AvatarURL,
		Bio:            req.Bio,
		Location:       req.Location,
		Phone:          req.Phone,
		OrganizationID: req.OrganizationID,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidationFailed):
			abortWithError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrUserNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		default:
			h.logger.Error("Profile update failed", zap.String("userId", userID), zap.Error(err))
			abortWithError(c, http.StatusInternalServerError, "Could not update profile")
		}
		return
	}
	c.JSON(http.StatusOK, MapUserToResponse(user))
}

// MapUserToResponse converts a domain User to a UserResponse DTO.
// Crucially excludes PasswordHash.
func MapUserToResponse(user *domain.User) UserResponse {
	if user == nil {
		return UserResponse{}
	}
	return UserResponse{
		ID:             user.ID,
		Name:           user.Name,
		Email:          user.Email,
		Role:           user.Role,
		AvatarURL:      user.AvatarURL,
		Bio:            user.Bio,
		Location:       user.Location,
		Phone:          user.Phone,
		OrganizationID: user.OrganizationID,
		CreatedAt:      user.CreatedAt,
	}
}

func MapSessionToResponse(s *service.AuthSession) SessionResponse {
	return SessionResponse{
		Token:     s.Token,
		ExpiresAt: s.Session.ExpiresAt,
		User:      MapUserToResponse(s.User),
	}
}
