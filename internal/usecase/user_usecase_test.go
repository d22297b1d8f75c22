package usecase

import (
	"errors"
	"testing"
	"time"

	"video-hive/internal/entity"
	"video-hive/internal/repo/persistent"
	"video-hive/pkg/apperror"
	"video-hive/pkg/config"
	"video-hive/pkg/jwt"
	"video-hive/pkg/logger"
	"video-hive/pkg/s3"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const aliceID = "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa"

func newTestJWT() *jwt.Service {
	return jwt.NewService(config.TokenConfig{
		AccessSecret:  "access-secret",
		AccessTTL:     time.Hour,
		RefreshSecret: "refresh-secret",
		RefreshTTL:    24 * time.Hour,
	})
}

func newUserUseCase() (UserUseCase, *MockUserRepository, *MockViewRepository, *MockAssetStore, *jwt.Service) {
	userRepo := new(MockUserRepository)
	viewRepo := new(MockViewRepository)
	assets := new(MockAssetStore)
	jwtService := newTestJWT()
	return NewUserUseCase(userRepo, viewRepo, jwtService, assets, logger.New()), userRepo, viewRepo, assets, jwtService
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestRegister_Success(t *testing.T) {
	uc, userRepo, _, assets, _ := newUserUseCase()

	userRepo.On("FindByUsernameOrEmail", "alice", "alice@example.com").Return(nil, persistent.ErrNotFound)
	assets.On("Upload", "/tmp/avatar.png", FolderAvatars).Return(&s3.Asset{URL: "http://cdn/avatar.png", PublicID: "avatars/a.png"}, nil)
	userRepo.On("Create", mock.MatchedBy(func(u *entity.User) bool {
		return u.Username == "alice" && u.Password != "secret" &&
			bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secret")) == nil
	})).Return(nil)

	user, err := uc.Register(RegisterInput{
		Username:   "  Alice ",
		Email:      "Alice@Example.com",
		FullName:   "Alice Doe",
		Password:   "secret",
		AvatarPath: "/tmp/avatar.png",
	})

	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "http://cdn/avatar.png", user.Avatar)
	assert.Empty(t, user.CoverImage)
	userRepo.AssertExpectations(t)
	assets.AssertExpectations(t)
}

func TestRegister_Conflict(t *testing.T) {
	uc, userRepo, _, assets, _ := newUserUseCase()

	userRepo.On("FindByUsernameOrEmail", "alice", "alice@example.com").Return(&entity.User{ID: aliceID}, nil)

	_, err := uc.Register(RegisterInput{
		Username: "alice", Email: "alice@example.com", FullName: "Alice", Password: "secret", AvatarPath: "/tmp/a.png",
	})

	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindConflict))
	assets.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
}

func TestRegister_MissingFields(t *testing.T) {
	uc, userRepo, _, _, _ := newUserUseCase()

	_, err := uc.Register(RegisterInput{Username: "alice", Email: "", FullName: "Alice", Password: "x"})

	require.Error(t, err)
	assert.Equal(t, "Some required fields are missing!", apperror.From(err).Message)
	userRepo.AssertNotCalled(t, "FindByUsernameOrEmail", mock.Anything, mock.Anything)
}

func TestRegister_MissingAvatar(t *testing.T) {
	uc, userRepo, _, _, _ := newUserUseCase()
	userRepo.On("FindByUsernameOrEmail", "bob", "bob@example.com").Return(nil, persistent.ErrNotFound)

	_, err := uc.Register(RegisterInput{Username: "bob", Email: "bob@example.com", FullName: "Bob", Password: "x"})

	require.Error(t, err)
	assert.Equal(t, 400, apperror.From(err).StatusCode)
	assert.Equal(t, "Avatar file is required!", apperror.From(err).Message)
}

func TestRegister_AvatarUploadFails(t *testing.T) {
	uc, userRepo, _, assets, _ := newUserUseCase()
	userRepo.On("FindByUsernameOrEmail", "bob", "bob@example.com").Return(nil, persistent.ErrNotFound)
	assets.On("Upload", "/tmp/a.png", FolderAvatars).Return(nil, errors.New("s3 down"))

	_, err := uc.Register(RegisterInput{Username: "bob", Email: "bob@example.com", FullName: "Bob", Password: "x", AvatarPath: "/tmp/a.png"})

	require.Error(t, err)
	assert.Equal(t, 500, apperror.From(err).StatusCode)
	userRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestLogin_Success(t *testing.T) {
	uc, userRepo, _, _, jwtService := newUserUseCase()
	user := &entity.User{ID: aliceID, Username: "alice", Email: "alice@example.com", Password: hashed(t, "secret")}

	userRepo.On("FindByUsernameOrEmail", "alice", "").Return(user, nil)
	userRepo.On("SetRefreshToken", aliceID, mock.AnythingOfType("string")).Return(nil)

	result, err := uc.Login("alice", "", "secret")

	require.NoError(t, err)
	assert.Equal(t, "alice", result.User.Username)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)

	claims, err := jwtService.ValidateAccessToken(result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, aliceID, claims.UserID)
	userRepo.AssertExpectations(t)
}

func TestLogin_Failures(t *testing.T) {
	uc, userRepo, _, _, _ := newUserUseCase()
	user := &entity.User{ID: aliceID, Username: "alice", Password: hashed(t, "secret")}
	userRepo.On("FindByUsernameOrEmail", "alice", "").Return(user, nil)
	userRepo.On("FindByUsernameOrEmail", "ghost", "").Return(nil, persistent.ErrNotFound)

	_, err := uc.Login("", "", "secret")
	assert.Equal(t, 400, apperror.From(err).StatusCode)

	_, err = uc.Login("ghost", "", "secret")
	assert.Equal(t, 401, apperror.From(err).StatusCode)
	assert.Equal(t, "User does not exists!", apperror.From(err).Message)

	_, err = uc.Login("alice", "", "wrong")
	assert.Equal(t, 401, apperror.From(err).StatusCode)
	assert.Equal(t, "Invalid user credentials!", apperror.From(err).Message)
	userRepo.AssertNotCalled(t, "SetRefreshToken", mock.Anything, mock.Anything)
}

func TestRefreshToken_Rotates(t *testing.T) {
	uc, userRepo, _, _, jwtService := newUserUseCase()
	current, err := jwtService.GenerateRefreshToken(aliceID)
	require.NoError(t, err)

	user := &entity.User{ID: aliceID, Username: "alice", RefreshToken: current}
	userRepo.On("GetByID", aliceID).Return(user, nil)
	userRepo.On("SetRefreshToken", aliceID, mock.AnythingOfType("string")).Return(nil)

	tokens, err := uc.RefreshToken(current)

	require.NoError(t, err)
	assert.NotEqual(t, current, tokens.RefreshToken)
	assert.Equal(t, tokens.RefreshToken, user.RefreshToken)
}

func TestRefreshToken_RejectsRotatedToken(t *testing.T) {
	uc, userRepo, _, _, jwtService := newUserUseCase()
	stale, err := jwtService.GenerateRefreshToken(aliceID)
	require.NoError(t, err)

	userRepo.On("GetByID", aliceID).Return(&entity.User{ID: aliceID, RefreshToken: "something-newer"}, nil)

	_, err = uc.RefreshToken(stale)

	require.Error(t, err)
	assert.Equal(t, "Refresh token expired or used", apperror.From(err).Message)
	userRepo.AssertNotCalled(t, "SetRefreshToken", mock.Anything, mock.Anything)
}

func TestRefreshToken_Invalid(t *testing.T) {
	uc, _, _, _, _ := newUserUseCase()

	_, err := uc.RefreshToken("")
	assert.Equal(t, "Unauthorized request", apperror.From(err).Message)

	_, err = uc.RefreshToken("not-a-token")
	assert.Equal(t, "Invalid refresh token", apperror.From(err).Message)
}

func TestLogout(t *testing.T) {
	uc, userRepo, _, _, _ := newUserUseCase()
	userRepo.On("SetRefreshToken", aliceID, "").Return(nil)

	require.NoError(t, uc.Logout(aliceID))
	userRepo.AssertExpectations(t)
}

func TestChangePassword(t *testing.T) {
	uc, userRepo, _, _, _ := newUserUseCase()
	user := &entity.User{ID: aliceID, Password: hashed(t, "old")}
	userRepo.On("GetByID", aliceID).Return(user, nil)
	userRepo.On("Update", user).Return(nil)

	err := uc.ChangePassword(aliceID, "wrong", "new")
	assert.Equal(t, "Incorrect old password!", apperror.From(err).Message)

	err = uc.ChangePassword(aliceID, "", "new")
	assert.Equal(t, "Old password or new password is missing!", apperror.From(err).Message)

	require.NoError(t, uc.ChangePassword(aliceID, "old", "new"))
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("new")))
}

func TestUpdateAccount_EmailTaken(t *testing.T) {
	uc, userRepo, _, _, _ := newUserUseCase()
	userRepo.On("GetByID", aliceID).Return(&entity.User{ID: aliceID, Email: "alice@example.com"}, nil)
	userRepo.On("GetByEmail", "bob@example.com").Return(&entity.User{ID: "other"}, nil)

	_, err := uc.UpdateAccount(aliceID, "Alice", "bob@example.com")

	assert.True(t, apperror.Is(err, apperror.KindConflict))
	userRepo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestUpdateAccount_Success(t *testing.T) {
	uc, userRepo, _, _, _ := newUserUseCase()
	userRepo.On("GetByID", aliceID).Return(&entity.User{ID: aliceID, Email: "alice@example.com"}, nil)
	userRepo.On("Update", mock.Anything).Return(nil)

	user, err := uc.UpdateAccount(aliceID, " Alice D ", "alice@example.com")

	require.NoError(t, err)
	assert.Equal(t, "Alice D", user.FullName)
	userRepo.AssertNotCalled(t, "GetByEmail", mock.Anything)
}

func TestUpdateAvatar_ReplacesOldAsset(t *testing.T) {
	uc, userRepo, _, assets, _ := newUserUseCase()
	user := &entity.User{ID: aliceID, Avatar: "http://cdn/old.png", AvatarPublicID: "avatars/old.png"}
	userRepo.On("GetByID", aliceID).Return(user, nil)
	assets.On("Upload", "/tmp/new.png", FolderAvatars).Return(&s3.Asset{URL: "http://cdn/new.png", PublicID: "avatars/new.png"}, nil)
	userRepo.On("Update", user).Return(nil)
	assets.On("Remove", "avatars/old.png").Return(nil)

	updated, err := uc.UpdateAvatar(aliceID, "/tmp/new.png")

	require.NoError(t, err)
	assert.Equal(t, "http://cdn/new.png", updated.Avatar)
	assert.Equal(t, "avatars/new.png", user.AvatarPublicID)
	assets.AssertExpectations(t)
}

func TestUpdateCoverImage_Missing(t *testing.T) {
	uc, _, _, _, _ := newUserUseCase()

	_, err := uc.UpdateCoverImage(aliceID, "")

	assert.Equal(t, "Cover image is missing", apperror.From(err).Message)
}

func TestGetChannelProfile(t *testing.T) {
	uc, _, viewRepo, _, _ := newUserUseCase()
	viewRepo.On("ChannelProfile", "alice", "bob-id").Return(&entity.ChannelProfile{Username: "alice", SubscribersCount: 1, IsSubscribed: true}, nil)
	viewRepo.On("ChannelProfile", "nobody", "bob-id").Return(nil, persistent.ErrNotFound)

	profile, err := uc.GetChannelProfile("alice", "bob-id")
	require.NoError(t, err)
	assert.True(t, profile.IsSubscribed)

	_, err = uc.GetChannelProfile("nobody", "bob-id")
	assert.Equal(t, "Invalid channel name", apperror.From(err).Message)
	assert.Equal(t, 400, apperror.From(err).StatusCode)

	_, err = uc.GetChannelProfile(" ", "bob-id")
	assert.Equal(t, "Channel name is required!", apperror.From(err).Message)
}
