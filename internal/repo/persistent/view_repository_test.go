package persistent

import (
	"testing"

	"video-hive/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewRepository_ChannelProfileFollowsSubscriptions(t *testing.T) {
	db := newTestDB(t)
	views := NewViewRepository(db)
	subs := NewSubscriptionRepository(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	profile, err := views.ChannelProfile("alice", bob.ID)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, profile.ID)
	assert.False(t, profile.IsSubscribed)
	assert.Equal(t, int64(0), profile.SubscribersCount)

	_, err = subs.Toggle(bob.ID, alice.ID)
	require.NoError(t, err)

	profile, err = views.ChannelProfile("alice", bob.ID)
	require.NoError(t, err)
	assert.True(t, profile.IsSubscribed)
	assert.Equal(t, int64(1), profile.SubscribersCount)
	assert.Equal(t, int64(0), profile.SubscribedToCount)
	assert.Equal(t, "alice@example.com", profile.Email)

	bobProfile, err := views.ChannelProfile("bob", alice.ID)
	require.NoError(t, err)
	assert.False(t, bobProfile.IsSubscribed)
	assert.Equal(t, int64(1), bobProfile.SubscribedToCount)

	_, err = subs.Toggle(bob.ID, alice.ID)
	require.NoError(t, err)

	profile, err = views.ChannelProfile("alice", bob.ID)
	require.NoError(t, err)
	assert.False(t, profile.IsSubscribed)
	assert.Equal(t, int64(0), profile.SubscribersCount)
}

func TestViewRepository_ChannelProfileUnknown(t *testing.T) {
	db := newTestDB(t)
	_, err := NewViewRepository(db).ChannelProfile("ghost", "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestViewRepository_ChannelStats(t *testing.T) {
	db := newTestDB(t)
	views := NewViewRepository(db)
	likes := NewLikeRepository(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	carol := createUser(t, db, "carol")

	v1 := createVideo(t, db, alice.ID, "one", 10)
	createVideo(t, db, alice.ID, "two", 5)
	other := createVideo(t, db, bob.ID, "bobs", 100)

	comment := &entity.Comment{VideoID: v1.ID, OwnerID: bob.ID, Content: "nice"}
	require.NoError(t, NewCommentRepository(db).Create(comment))
	otherComment := &entity.Comment{VideoID: other.ID, OwnerID: alice.ID, Content: "hi"}
	require.NoError(t, NewCommentRepository(db).Create(otherComment))

	tweet := &entity.Tweet{OwnerID: alice.ID, Content: "hello"}
	require.NoError(t, NewTweetRepository(db).Create(tweet))

	_, err := NewSubscriptionRepository(db).Toggle(bob.ID, alice.ID)
	require.NoError(t, err)
	_, err = NewSubscriptionRepository(db).Toggle(carol.ID, alice.ID)
	require.NoError(t, err)

	for _, user := range []*entity.User{bob, carol} {
		_, err = likes.Toggle(user.ID, entity.LikeTarget{Kind: entity.LikeVideo, ID: v1.ID})
		require.NoError(t, err)
	}
	_, err = likes.Toggle(carol.ID, entity.LikeTarget{Kind: entity.LikeComment, ID: comment.ID})
	require.NoError(t, err)
	_, err = likes.Toggle(carol.ID, entity.LikeTarget{Kind: entity.LikeComment, ID: otherComment.ID})
	require.NoError(t, err)
	_, err = likes.Toggle(bob.ID, entity.LikeTarget{Kind: entity.LikeTweet, ID: tweet.ID})
	require.NoError(t, err)
	_, err = likes.Toggle(bob.ID, entity.LikeTarget{Kind: entity.LikeVideo, ID: other.ID})
	require.NoError(t, err)

	stats, err := views.ChannelStats(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, &entity.ChannelStats{
		ChannelSubscribers: 2,
		VideosCount:        2,
		VideosViews:        15,
		VideosLike:         2,
		CommentsLike:       1,
		TweetsLike:         1,
	}, stats)
}

func TestViewRepository_ChannelStatsEmpty(t *testing.T) {
	db := newTestDB(t)
	alice := createUser(t, db, "alice")

	stats, err := NewViewRepository(db).ChannelStats(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, &entity.ChannelStats{}, stats)
}

func TestViewRepository_PlaylistWithVideos(t *testing.T) {
	db := newTestDB(t)
	views := NewViewRepository(db)
	playlists := NewPlaylistRepository(db)
	alice := createUser(t, db, "alice")
	first := createVideo(t, db, alice.ID, "first", 0)
	second := createVideo(t, db, alice.ID, "second", 0)

	playlist := &entity.Playlist{OwnerID: alice.ID, Name: "mix", Description: "d"}
	require.NoError(t, playlists.Create(playlist))
	require.NoError(t, playlists.AddVideo(playlist.ID, second.ID))
	require.NoError(t, playlists.AddVideo(playlist.ID, first.ID))

	view, err := views.PlaylistWithVideos(playlist.ID)
	require.NoError(t, err)
	assert.Equal(t, "mix", view.Name)
	require.Len(t, view.Videos, 2)
	assert.Equal(t, second.ID, view.Videos[0].ID)
	assert.Equal(t, first.ID, view.Videos[1].ID)
	require.NotNil(t, view.Owner)
	assert.Equal(t, "alice", view.Owner.Username)

	_, err = views.PlaylistWithVideos("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestViewRepository_Comments(t *testing.T) {
	db := newTestDB(t)
	views := NewViewRepository(db)
	comments := NewCommentRepository(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	video := createVideo(t, db, alice.ID, "clip", 7)

	var first *entity.Comment
	for i := 0; i < 3; i++ {
		c := &entity.Comment{VideoID: video.ID, OwnerID: bob.ID, Content: "comment"}
		require.NoError(t, comments.Create(c))
		if first == nil {
			first = c
		}
	}

	page, count, err := views.VideoComments(video.ID, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	require.Len(t, page, 2)
	assert.Equal(t, "bob", page[0].Owner.Username)
	assert.Nil(t, page[0].Video)

	detail, err := views.CommentDetail(first.ID)
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", detail.Owner.Email)
	require.NotNil(t, detail.Video)
	assert.Equal(t, "clip", detail.Video.Title)
	assert.Equal(t, int64(7), detail.Video.Views)
	assert.True(t, detail.Video.IsPublished)

	withOwner, err := views.CommentWithOwner(first.ID)
	require.NoError(t, err)
	assert.Equal(t, bob.ID, withOwner.Owner.ID)

	_, err = views.CommentDetail("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestViewRepository_CommentDetailOnDeletedVideo(t *testing.T) {
	db := newTestDB(t)
	views := NewViewRepository(db)
	alice := createUser(t, db, "alice")
	video := createVideo(t, db, alice.ID, "clip", 0)

	c := &entity.Comment{VideoID: video.ID, OwnerID: alice.ID, Content: "orphan"}
	require.NoError(t, NewCommentRepository(db).Create(c))
	require.NoError(t, NewVideoRepository(db).Delete(video.ID))

	detail, err := views.CommentDetail(c.ID)
	require.NoError(t, err)
	assert.Nil(t, detail.Video)
}

func TestViewRepository_SubscriberLists(t *testing.T) {
	db := newTestDB(t)
	views := NewViewRepository(db)
	subs := NewSubscriptionRepository(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	carol := createUser(t, db, "carol")

	_, err := subs.Toggle(bob.ID, alice.ID)
	require.NoError(t, err)
	_, err = subs.Toggle(carol.ID, alice.ID)
	require.NoError(t, err)
	_, err = subs.Toggle(bob.ID, carol.ID)
	require.NoError(t, err)

	subscribers, err := views.Subscribers(alice.ID)
	require.NoError(t, err)
	require.Len(t, subscribers, 2)
	names := []string{subscribers[0].Username, subscribers[1].Username}
	assert.ElementsMatch(t, []string{"bob", "carol"}, names)
	assert.NotEmpty(t, subscribers[0].FullName)

	channels, err := views.SubscribedChannels(bob.ID)
	require.NoError(t, err)
	require.Len(t, channels, 2)

	none, err := views.Subscribers(bob.ID)
	require.NoError(t, err)
	assert.Empty(t, none)
}
