package persistent

import (
	"testing"

	"video-hive/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikeRepository_TogglePairsReturnToOriginalState(t *testing.T) {
	db := newTestDB(t)
	repo := NewLikeRepository(db)
	alice := createUser(t, db, "alice")
	video := createVideo(t, db, alice.ID, "clip", 0)
	target := entity.LikeTarget{Kind: entity.LikeVideo, ID: video.ID}

	liked, err := repo.Toggle(alice.ID, target)
	require.NoError(t, err)
	assert.True(t, liked)

	count, err := repo.CountFor(target)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	liked, err = repo.Toggle(alice.ID, target)
	require.NoError(t, err)
	assert.False(t, liked)

	isLiked, err := repo.IsLiked(alice.ID, target)
	require.NoError(t, err)
	assert.False(t, isLiked)
}

func TestLikeRepository_KindsAreIndependent(t *testing.T) {
	db := newTestDB(t)
	repo := NewLikeRepository(db)
	alice := createUser(t, db, "alice")

	id := "00000000-0000-0000-0000-000000000001"
	_, err := repo.Toggle(alice.ID, entity.LikeTarget{Kind: entity.LikeTweet, ID: id})
	require.NoError(t, err)

	liked, err := repo.IsLiked(alice.ID, entity.LikeTarget{Kind: entity.LikeComment, ID: id})
	require.NoError(t, err)
	assert.False(t, liked)
}

func TestSubscriptionRepository_Toggle(t *testing.T) {
	db := newTestDB(t)
	repo := NewSubscriptionRepository(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	subscribed, err := repo.Toggle(bob.ID, alice.ID)
	require.NoError(t, err)
	assert.True(t, subscribed)

	is, err := repo.IsSubscribed(bob.ID, alice.ID)
	require.NoError(t, err)
	assert.True(t, is)

	is, err = repo.IsSubscribed(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, is)

	subscribed, err = repo.Toggle(bob.ID, alice.ID)
	require.NoError(t, err)
	assert.False(t, subscribed)
}

func TestPlaylistRepository_AddRemoveVideos(t *testing.T) {
	db := newTestDB(t)
	repo := NewPlaylistRepository(db)
	alice := createUser(t, db, "alice")
	first := createVideo(t, db, alice.ID, "first", 0)
	second := createVideo(t, db, alice.ID, "second", 0)

	playlist := &entity.Playlist{OwnerID: alice.ID, Name: "mix", Description: "d"}
	require.NoError(t, repo.Create(playlist))
	assert.Empty(t, playlist.VideoIDs)

	require.NoError(t, repo.AddVideo(playlist.ID, second.ID))
	require.NoError(t, repo.AddVideo(playlist.ID, first.ID))
	assert.ErrorIs(t, repo.AddVideo(playlist.ID, first.ID), ErrDuplicate)

	got, err := repo.GetByID(playlist.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{second.ID, first.ID}, got.VideoIDs)

	has, err := repo.HasVideo(playlist.ID, first.ID)
	require.NoError(t, err)
	assert.True(t, has)

	require.NoError(t, repo.RemoveVideo(playlist.ID, second.ID))
	assert.ErrorIs(t, repo.RemoveVideo(playlist.ID, second.ID), ErrNotFound)

	got, err = repo.GetByID(playlist.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{first.ID}, got.VideoIDs)
}

func TestPlaylistRepository_NameUniquePerOwner(t *testing.T) {
	db := newTestDB(t)
	repo := NewPlaylistRepository(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	playlist := &entity.Playlist{OwnerID: alice.ID, Name: "mix"}
	require.NoError(t, repo.Create(playlist))

	exists, err := repo.ExistsByOwnerAndName(alice.ID, "mix", "")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByOwnerAndName(alice.ID, "mix", playlist.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = repo.ExistsByOwnerAndName(bob.ID, "mix", "")
	require.NoError(t, err)
	assert.False(t, exists)

	assert.ErrorIs(t, repo.Create(&entity.Playlist{OwnerID: alice.ID, Name: "mix"}), ErrDuplicate)
}

func TestPlaylistRepository_UpdateAndDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewPlaylistRepository(db)
	alice := createUser(t, db, "alice")

	playlist := &entity.Playlist{OwnerID: alice.ID, Name: "mix", Description: "old"}
	require.NoError(t, repo.Create(playlist))

	playlist.Description = "new"
	require.NoError(t, repo.Update(playlist))
	assert.Equal(t, "new", playlist.Description)

	lists, err := repo.ListByOwner(alice.ID)
	require.NoError(t, err)
	require.Len(t, lists, 1)

	require.NoError(t, repo.Delete(playlist.ID))
	assert.ErrorIs(t, repo.Delete(playlist.ID), ErrNotFound)
	_, err = repo.GetByID(playlist.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
