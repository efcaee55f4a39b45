package users

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/codetern/gotasks/internal/pkg/password"
	"github.com/codetern/gotasks/internal/pkg/response"
	"github.com/codetern/gotasks/internal/pkg/token"
	apperrors "github.com/codetern/gotasks/pkg/errors"
)

// TodoPurger removes all todos owned by a user. Implemented by the todos
// repository and wired in via an adapter so the features stay decoupled.
type TodoPurger interface {
	DeleteAllByUser(ctx context.Context, userID string) (int64, error)
}

type Handler struct {
	repo       *Repository
	tokens     *token.Manager
	purger     TodoPurger
	bcryptCost int
	log        *zap.Logger
}

func NewHandler(repo *Repository, tokens *token.Manager, purger TodoPurger, bcryptCost int, log *zap.Logger) *Handler {
	return &Handler{
		repo:       repo,
		tokens:     tokens,
		purger:     purger,
		bcryptCost: bcryptCost,
		log:        log,
	}
}

// Register godoc
// @Summary Register a new user
// @Description Create an account. No token is issued; log in afterwards.
// @Tags users
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /users/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidateRegister(&req); err != nil {
		response.ValidationFailed(c, err.Error())
		return
	}

	email := NormalizeEmail(req.Email)

	existing, err := h.repo.FindByEmail(c.Request.Context(), email)
	if err != nil {
		response.DatabaseError(c, "Failed to check existing users")
		return
	}
	if existing != nil {
		response.Conflict(c, "Email already registered")
		return
	}

	hashed, err := password.Hash(req.Password, h.bcryptCost)
	if err != nil {
		response.InternalServerError(c, "Failed to process password")
		return
	}

	user := &User{
		Name:     req.Name,
		Email:    email,
		Password: hashed,
	}

	if err := h.repo.Create(c.Request.Context(), user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			response.Conflict(c, "Email already registered")
			return
		}
		response.DatabaseError(c, "Failed to create user")
		return
	}

	// Registration never issues a token. The client must log in.
	response.Created(c, user, "User registered successfully! Please login.")
}

// Login godoc
// @Summary Login
// @Description Verify credentials and issue a bearer token
// @Tags users
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /users/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidateLogin(&req); err != nil {
		response.ValidationFailed(c, err.Error())
		return
	}

	user, err := h.repo.FindByEmail(c.Request.Context(), NormalizeEmail(req.Email))
	if err != nil {
		response.DatabaseError(c, "Failed to look up user")
		return
	}

	// A single failure message for unknown email and wrong password, so
	// the response does not reveal which check failed.
	if user == nil || !password.Verify(user.Password, req.Password) {
		response.Unauthorized(c, "Invalid email or password")
		return
	}

	tok, err := h.tokens.Generate(user.ID.Hex(), user.Email)
	if err != nil {
		response.InternalServerError(c, "Failed to generate token")
		return
	}

	response.Success(c, LoginResponse{Token: tok, User: user}, "Login successful")
}

// Profile godoc
// @Summary Get own profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /users/profile [get]
func (h *Handler) Profile(c *gin.Context) {
	userID := c.GetString("userID")

	user, err := h.repo.FindByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "User not found")
			return
		}
		response.DatabaseError(c, "Failed to load profile")
		return
	}

	response.Success(c, user)
}

// UpdateProfile godoc
// @Summary Update own profile
// @Description Partially update name, email or avatar
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateProfileRequest true "Profile fields"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /users/profile [put]
func (h *Handler) UpdateProfile(c *gin.Context) {
	userID := c.GetString("userID")

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidateUpdateProfile(&req); err != nil {
		response.ValidationFailed(c, err.Error())
		return
	}

	updates := bson.M{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Email != nil {
		updates["email"] = NormalizeEmail(*req.Email)
	}
	if req.Avatar != nil {
		updates["avatar"] = *req.Avatar
	}

	if len(updates) == 0 {
		response.BadRequest(c, "No fields to update")
		return
	}

	if err := h.repo.Update(c.Request.Context(), userID, updates); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrDuplicate):
			response.Conflict(c, "Email already registered")
		case errors.Is(err, apperrors.ErrNotFound):
			response.NotFound(c, "User not found")
		default:
			response.DatabaseError(c, "Failed to update profile")
		}
		return
	}

	user, err := h.repo.FindByID(c.Request.Context(), userID)
	if err != nil {
		response.DatabaseError(c, "Failed to load updated profile")
		return
	}

	response.Success(c, user, "Profile updated successfully")
}

// ChangePassword godoc
// @Summary Change own password
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ChangePasswordRequest true "Current and new password"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /users/password [put]
func (h *Handler) ChangePassword(c *gin.Context) {
	userID := c.GetString("userID")

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidateChangePassword(&req); err != nil {
		response.ValidationFailed(c, err.Error())
		return
	}

	user, err := h.repo.FindByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "User not found")
			return
		}
		response.DatabaseError(c, "Failed to load user")
		return
	}

	if !password.Verify(user.Password, req.CurrentPassword) {
		response.Unauthorized(c, "Current password is incorrect")
		return
	}

	// Only the password field is re-hashed and written here; profile
	// updates never touch the stored hash.
	hashed, err := password.Hash(req.NewPassword, h.bcryptCost)
	if err != nil {
		response.InternalServerError(c, "Failed to process password")
		return
	}

	if err := h.repo.Update(c.Request.Context(), userID, bson.M{"password": hashed}); err != nil {
		response.DatabaseError(c, "Failed to update password")
		return
	}

	response.Success(c, nil, "Password updated successfully")
}

// Delete godoc
// @Summary Delete own account
// @Description Removes the account and cascades deletion of all owned todos
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /users/delete [delete]
func (h *Handler) Delete(c *gin.Context) {
	userID := c.GetString("userID")

	if err := h.repo.Delete(c.Request.Context(), userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "User not found")
			return
		}
		response.DatabaseError(c, "Failed to delete account")
		return
	}

	// The cascade is a second, separate operation. If it fails the user
	// record is already gone; surface the failure so the caller can retry
	// cleanup instead of silently leaving orphaned todos.
	if _, err := h.purger.DeleteAllByUser(c.Request.Context(), userID); err != nil {
		h.log.Error("account deleted but todo cascade failed",
			zap.String("userId", userID), zap.Error(err))
		response.InternalServerError(c, "Account deleted but task cleanup failed")
		return
	}

	response.Success(c, nil, "User and all associated data deleted successfully")
}
