package usecase

import (
	"errors"
	"strings"

	"video-hive/internal/entity"
	"video-hive/internal/repo/persistent"
	"video-hive/pkg/apperror"
	"video-hive/pkg/jwt"
	"video-hive/pkg/logger"
	"video-hive/pkg/metrics"

	"golang.org/x/crypto/bcrypt"
)

type RegisterInput struct {
	Username       string
	Email          string
	FullName       string
	Password       string
	AvatarPath     string
	CoverImagePath string
}

type UserUseCase interface {
	Register(input RegisterInput) (*entity.PublicUser, error)
	Login(username, email, password string) (*entity.LoginResult, error)
	RefreshToken(refreshToken string) (*entity.AuthTokens, error)
	Logout(userID string) error
	ChangePassword(userID, oldPassword, newPassword string) error
	GetCurrentUser(userID string) (*entity.PublicUser, error)
	UpdateAccount(userID, fullName, email string) (*entity.PublicUser, error)
	UpdateAvatar(userID, avatarPath string) (*entity.PublicUser, error)
	UpdateCoverImage(userID, coverImagePath string) (*entity.PublicUser, error)
	GetChannelProfile(username, viewerID string) (*entity.ChannelProfile, error)
}

type userUseCase struct {
	userRepo   persistent.UserRepository
	viewRepo   persistent.ViewRepository
	jwtService *jwt.Service
	assets     AssetStore
	logger     *logger.Logger
}

func NewUserUseCase(
	userRepo persistent.UserRepository,
	viewRepo persistent.ViewRepository,
	jwtService *jwt.Service,
	assets AssetStore,
	logger *logger.Logger,
) UserUseCase {
	return &userUseCase{
		userRepo:   userRepo,
		viewRepo:   viewRepo,
		jwtService: jwtService,
		assets:     assets,
		logger:     logger,
	}
}

func (uc *userUseCase) Register(input RegisterInput) (*entity.PublicUser, error) {
	username := strings.ToLower(strings.TrimSpace(input.Username))
	email := strings.ToLower(strings.TrimSpace(input.Email))
	fullName := strings.TrimSpace(input.FullName)
	if username == "" || email == "" || fullName == "" || strings.TrimSpace(input.Password) == "" {
		return nil, apperror.Validation("Some required fields are missing!")
	}

	existing, err := uc.userRepo.FindByUsernameOrEmail(username, email)
	if err != nil && !errors.Is(err, persistent.ErrNotFound) {
		return nil, internalError(uc.logger, "Failed to check existing user", err)
	}
	if existing != nil {
		return nil, apperror.Conflict("User already exists!")
	}

	if input.AvatarPath == "" {
		return nil, apperror.Validation("Avatar file is required!")
	}

	avatar, err := uc.assets.Upload(input.AvatarPath, FolderAvatars)
	if err != nil {
		uc.logger.Error("Failed to upload avatar: %v", err)
		return nil, apperror.Internal("Server error: Unable to upload avatar image!").WithCause(err)
	}

	user := &entity.User{
		Username:       username,
		Email:          email,
		FullName:       fullName,
		Avatar:         avatar.URL,
		AvatarPublicID: avatar.PublicID,
	}

	if input.CoverImagePath != "" {
		cover, err := uc.assets.Upload(input.CoverImagePath, FolderCovers)
		if err != nil {
			uc.logger.Warn("Failed to upload cover image, registering without one: %v", err)
		} else {
			user.CoverImage = cover.URL
			user.CoverImagePublicID = cover.PublicID
		}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, internalError(uc.logger, "Failed to hash password", err)
	}
	user.Password = string(hashedPassword)

	if err := uc.userRepo.Create(user); err != nil {
		if errors.Is(err, persistent.ErrDuplicate) {
			return nil, apperror.Conflict("User already exists!")
		}
		uc.logger.Error("Failed to create user: %v", err)
		return nil, apperror.Internal("Something went wrong while registering the user!").WithCause(err)
	}

	uc.logger.Info("Registered user %s", user.ID)
	return user.Public(), nil
}

func (uc *userUseCase) Login(username, email, password string) (*entity.LoginResult, error) {
	if (strings.TrimSpace(username) == "" && strings.TrimSpace(email) == "") || password == "" {
		return nil, apperror.Validation("Email/Username and password are required.")
	}

	user, err := uc.userRepo.FindByUsernameOrEmail(username, email)
	if err != nil {
		return nil, lookupError(uc.logger, "Failed to load user for login", err, apperror.Unauthorized("User does not exists!"))
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperror.Unauthorized("Invalid user credentials!")
	}

	tokens, err := uc.issueTokens(user)
	if err != nil {
		return nil, err
	}

	return &entity.LoginResult{
		User:         user.Public(),
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, nil
}

// RefreshToken rotates the token pair. The presented token must match the one
// persisted on the user, so a token that was already rotated out is rejected.
func (uc *userUseCase) RefreshToken(refreshToken string) (*entity.AuthTokens, error) {
	if refreshToken == "" {
		return nil, apperror.Unauthorized("Unauthorized request")
	}

	claims, err := uc.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.Unauthorized("Invalid refresh token").WithCause(err)
	}

	user, err := uc.userRepo.GetByID(claims.UserID)
	if err != nil {
		return nil, lookupError(uc.logger, "Failed to load user for refresh", err, apperror.Unauthorized("Invalid refresh token"))
	}

	if user.RefreshToken == "" || user.RefreshToken != refreshToken {
		return nil, apperror.Unauthorized("Refresh token expired or used")
	}

	return uc.issueTokens(user)
}

func (uc *userUseCase) Logout(userID string) error {
	if err := uc.userRepo.SetRefreshToken(userID, ""); err != nil {
		return lookupError(uc.logger, "Failed to clear refresh token", err, apperror.Unauthorized("Unauthorized request"))
	}
	return nil
}

func (uc *userUseCase) ChangePassword(userID, oldPassword, newPassword string) error {
	if oldPassword == "" || newPassword == "" {
		return apperror.Validation("Old password or new password is missing!")
	}

	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return lookupError(uc.logger, "Failed to load user", err, apperror.Unauthorized("Unauthorized access!"))
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)); err != nil {
		return apperror.Validation("Incorrect old password!")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return internalError(uc.logger, "Failed to hash password", err)
	}
	user.Password = string(hashedPassword)

	if err := uc.userRepo.Update(user); err != nil {
		return internalError(uc.logger, "Failed to update password", err)
	}
	return nil
}

func (uc *userUseCase) GetCurrentUser(userID string) (*entity.PublicUser, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, lookupError(uc.logger, "Failed to load user", err, apperror.Unauthorized("Unauthorized request"))
	}
	return user.Public(), nil
}

func (uc *userUseCase) UpdateAccount(userID, fullName, email string) (*entity.PublicUser, error) {
	fullName = strings.TrimSpace(fullName)
	email = strings.ToLower(strings.TrimSpace(email))
	if fullName == "" || email == "" {
		return nil, apperror.Validation("Full name or email is missing!")
	}

	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, lookupError(uc.logger, "Failed to load user", err, apperror.Unauthorized("Unauthorized request"))
	}

	if email != user.Email {
		other, err := uc.userRepo.GetByEmail(email)
		if err != nil && !errors.Is(err, persistent.ErrNotFound) {
			return nil, internalError(uc.logger, "Failed to check email", err)
		}
		if other != nil && other.ID != user.ID {
			return nil, apperror.Conflict("Email is already in use!")
		}
	}

	user.FullName = fullName
	user.Email = email
	if err := uc.userRepo.Update(user); err != nil {
		if errors.Is(err, persistent.ErrDuplicate) {
			return nil, apperror.Conflict("Email is already in use!")
		}
		uc.logger.Error("Failed to update user %s: %v", userID, err)
		return nil, apperror.Internal("Unable to update user account!").WithCause(err)
	}
	return user.Public(), nil
}

func (uc *userUseCase) UpdateAvatar(userID, avatarPath string) (*entity.PublicUser, error) {
	if avatarPath == "" {
		return nil, apperror.Validation("Avatar image is missing")
	}
	return uc.replaceImage(userID, avatarPath, FolderAvatars, "Error occurred while uploading avatar image",
		func(user *entity.User) *string { return &user.Avatar },
		func(user *entity.User) *string { return &user.AvatarPublicID },
	)
}

func (uc *userUseCase) UpdateCoverImage(userID, coverImagePath string) (*entity.PublicUser, error) {
	if coverImagePath == "" {
		return nil, apperror.Validation("Cover image is missing")
	}
	return uc.replaceImage(userID, coverImagePath, FolderCovers, "Error occurred while uploading cover image",
		func(user *entity.User) *string { return &user.CoverImage },
		func(user *entity.User) *string { return &user.CoverImagePublicID },
	)
}

// replaceImage uploads a new image, stores its URL through the field
// accessors, and removes the previous asset once the user is saved.
func (uc *userUseCase) replaceImage(userID, path, folder, uploadFailure string, urlField, idField func(*entity.User) *string) (*entity.PublicUser, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, lookupError(uc.logger, "Failed to load user", err, apperror.Unauthorized("Unauthorized request"))
	}

	asset, err := uc.assets.Upload(path, folder)
	if err != nil {
		uc.logger.Error("Failed to upload %s image: %v", folder, err)
		return nil, apperror.Internal(uploadFailure).WithCause(err)
	}

	previous := *idField(user)
	*urlField(user) = asset.URL
	*idField(user) = asset.PublicID

	if err := uc.userRepo.Update(user); err != nil {
		removeAsset(uc.assets, uc.logger, asset.PublicID)
		return nil, internalError(uc.logger, "Failed to save user image", err)
	}

	removeAsset(uc.assets, uc.logger, previous)
	return user.Public(), nil
}

func (uc *userUseCase) GetChannelProfile(username, viewerID string) (*entity.ChannelProfile, error) {
	if strings.TrimSpace(username) == "" {
		return nil, apperror.Validation("Channel name is required!")
	}

	profile, err := uc.viewRepo.ChannelProfile(username, viewerID)
	if err != nil {
		return nil, lookupError(uc.logger, "Failed to load channel profile", err, apperror.NotFound("Invalid channel name"))
	}
	return profile, nil
}

func (uc *userUseCase) issueTokens(user *entity.User) (*entity.AuthTokens, error) {
	accessToken, err := uc.jwtService.GenerateAccessToken(user.ID, user.Username, user.Email, user.FullName)
	if err != nil {
		return nil, internalError(uc.logger, "Failed to sign access token", err)
	}
	refreshToken, err := uc.jwtService.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, internalError(uc.logger, "Failed to sign refresh token", err)
	}

	if err := uc.userRepo.SetRefreshToken(user.ID, refreshToken); err != nil {
		return nil, internalError(uc.logger, "Failed to persist refresh token", err)
	}
	user.RefreshToken = refreshToken
	metrics.TokensIssued.Inc()

	return &entity.AuthTokens{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
