package http

import (
	"video-hive/internal/entity"
	"video-hive/internal/usecase"
	"video-hive/pkg/apperror"
	"video-hive/pkg/logger"
	"video-hive/pkg/response"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userUseCase usecase.UserUseCase
	cookies     CookieConfig
	uploadDir   string
	logger      *logger.Logger
}

func NewUserHandler(userUseCase usecase.UserUseCase, cookies CookieConfig, uploadDir string, logger *logger.Logger) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		cookies:     cookies,
		uploadDir:   uploadDir,
		logger:      logger,
	}
}

type LoginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

type UpdateAccountRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

// Register godoc
// @Summary      Register a new user
// @Description  Create an account with an avatar and an optional cover image
// @Tags         users
// @Accept       multipart/form-data
// @Produce      json
// @Param        username formData string true "Username"
// @Param        email formData string true "Email"
// @Param        fullName formData string true "Full name"
// @Param        password formData string true "Password"
// @Param        avatar formData file true "Avatar image"
// @Param        coverImage formData file false "Cover image"
// @Success      201  {object}  response.Envelope{data=entity.PublicUser}
// @Failure      400  {object}  response.ErrorEnvelope
// @Failure      409  {object}  response.ErrorEnvelope
// @Failure      500  {object}  response.ErrorEnvelope
// @Router       /users/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var files uploads
	defer files.cleanup()

	avatarPath, err := files.save(c, "avatar", h.uploadDir)
	if err != nil {
		response.Error(c, err)
		return
	}
	coverPath, err := files.save(c, "coverImage", h.uploadDir)
	if err != nil {
		response.Error(c, err)
		return
	}

	user, err := h.userUseCase.Register(usecase.RegisterInput{
		Username:       c.PostForm("username"),
		Email:          c.PostForm("email"),
		FullName:       c.PostForm("fullName"),
		Password:       c.PostForm("password"),
		AvatarPath:     avatarPath,
		CoverImagePath: coverPath,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "User registered successfully!", user)
}

// Login godoc
// @Summary      Log in
// @Description  Authenticate with username or email and set session cookies
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Credentials"
// @Success      200  {object}  response.Envelope{data=entity.LoginResult}
// @Failure      400  {object}  response.ErrorEnvelope
// @Failure      401  {object}  response.ErrorEnvelope
// @Router       /users/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation("Email/Username and password are required.").WithCause(err))
		return
	}

	result, err := h.userUseCase.Login(req.Username, req.Email, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.cookies.setSession(c, result.AccessToken, result.RefreshToken)
	response.OK(c, "User logged in successfully!", result)
}

// RefreshToken godoc
// @Summary      Rotate session tokens
// @Description  Exchange the refresh token (cookie or body) for a new token pair
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body RefreshTokenRequest false "Refresh token when no cookie is sent"
// @Success      200  {object}  response.Envelope{data=entity.AuthTokens}
// @Failure      401  {object}  response.ErrorEnvelope
// @Router       /users/refresh-token [post]
func (h *UserHandler) RefreshToken(c *gin.Context) {
	token, _ := c.Cookie(RefreshTokenCookie)
	if token == "" {
		var req RefreshTokenRequest
		_ = c.ShouldBindJSON(&req)
		token = req.RefreshToken
	}

	tokens, err := h.userUseCase.RefreshToken(token)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.cookies.setSession(c, tokens.AccessToken, tokens.RefreshToken)
	response.OK(c, "Access token refreshed", tokens)
}

// Logout godoc
// @Summary      Log out
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Envelope
// @Failure      401  {object}  response.ErrorEnvelope
// @Router       /users/logout [post]
func (h *UserHandler) Logout(c *gin.Context) {
	if err := h.userUseCase.Logout(c.GetString("user_id")); err != nil {
		response.Error(c, err)
		return
	}

	h.cookies.clearSession(c)
	response.OK(c, "User logged out successfully!", gin.H{})
}

// ChangePassword godoc
// @Summary      Change password
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body ChangePasswordRequest true "Old and new password"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.ErrorEnvelope
// @Router       /users/change-password [post]
func (h *UserHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation("Old password or new password is missing!").WithCause(err))
		return
	}

	if err := h.userUseCase.ChangePassword(c.GetString("user_id"), req.OldPassword, req.NewPassword); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Password changed successfully!", gin.H{})
}

// GetCurrentUser godoc
// @Summary      Current user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Envelope{data=entity.PublicUser}
// @Failure      401  {object}  response.ErrorEnvelope
// @Router       /users/active-user [get]
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	user, err := h.userUseCase.GetCurrentUser(c.GetString("user_id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Active user fetched successfully!", user)
}

// UpdateAccount godoc
// @Summary      Update account details
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body UpdateAccountRequest true "Full name and email"
// @Success      200  {object}  response.Envelope{data=entity.PublicUser}
// @Failure      400  {object}  response.ErrorEnvelope
// @Failure      409  {object}  response.ErrorEnvelope
// @Router       /users/update-user [patch]
func (h *UserHandler) UpdateAccount(c *gin.Context) {
	var req UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation("Full name or email is missing!").WithCause(err))
		return
	}

	user, err := h.userUseCase.UpdateAccount(c.GetString("user_id"), req.FullName, req.Email)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "User details updated successfully!", user)
}

// UpdateAvatar godoc
// @Summary      Replace avatar
// @Tags         users
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        avatar formData file true "Avatar image"
// @Success      200  {object}  response.Envelope{data=entity.PublicUser}
// @Failure      400  {object}  response.ErrorEnvelope
// @Router       /users/update-avatar [patch]
func (h *UserHandler) UpdateAvatar(c *gin.Context) {
	h.replaceImage(c, "avatar", "Avatar image updated successfully!", h.userUseCase.UpdateAvatar)
}

// UpdateCoverImage godoc
// @Summary      Replace cover image
// @Tags         users
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        coverImage formData file true "Cover image"
// @Success      200  {object}  response.Envelope{data=entity.PublicUser}
// @Failure      400  {object}  response.ErrorEnvelope
// @Router       /users/update-cover-image [patch]
func (h *UserHandler) UpdateCoverImage(c *gin.Context) {
	h.replaceImage(c, "coverImage", "Cover image updated successfully!", h.userUseCase.UpdateCoverImage)
}

func (h *UserHandler) replaceImage(c *gin.Context, field, message string, update func(userID, path string) (*entity.PublicUser, error)) {
	var files uploads
	defer files.cleanup()

	path, err := files.save(c, field, h.uploadDir)
	if err != nil {
		response.Error(c, err)
		return
	}

	user, err := update(c.GetString("user_id"), path)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, message, user)
}

// GetChannelProfile godoc
// @Summary      Channel profile
// @Description  Public channel page with subscriber counts and whether the caller is subscribed
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        channel path string true "Channel username"
// @Success      200  {object}  response.Envelope{data=entity.ChannelProfile}
// @Failure      400  {object}  response.ErrorEnvelope
// @Router       /users/channel/{channel} [get]
func (h *UserHandler) GetChannelProfile(c *gin.Context) {
	profile, err := h.userUseCase.GetChannelProfile(c.Param("channel"), c.GetString("user_id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Channel data fetched successfully!", profile)
}
