package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/spendview/spendview/internal/model"
	"github.com/spendview/spendview/internal/repository"
	"github.com/spendview/spendview/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleLike(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "alice")
	video := env.createVideo(t, "budgeting-101")

	result, err := env.engagement.ToggleLike(user.ID, video.ID)
	require.NoError(t, err)
	assert.True(t, result.Liked)
	assert.Equal(t, 1, result.LikesCount)

	// Counter matches the actual like rows
	count, err := env.likeRepo.CountForVideo(video.ID)
	require.NoError(t, err)
	assert.Equal(t, result.LikesCount, count)

	reloaded, err := env.videoRepo.ByID(video.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, reloaded.LikesCount)

	// Second toggle restores the original state
	result, err = env.engagement.ToggleLike(user.ID, video.ID)
	require.NoError(t, err)
	assert.False(t, result.Liked)
	assert.Equal(t, 0, result.LikesCount)

	exists, err := env.likeRepo.Exists(user.ID, video.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	reloaded, err = env.videoRepo.ByID(video.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, reloaded.LikesCount)
}

func TestToggleLikeTwoUsers(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")
	video := env.createVideo(t, "budgeting-101")

	_, err := env.engagement.ToggleLike(alice.ID, video.ID)
	require.NoError(t, err)
	result, err := env.engagement.ToggleLike(bob.ID, video.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, result.LikesCount)

	// Alice unliking leaves Bob's like intact
	result, err = env.engagement.ToggleLike(alice.ID, video.ID)
	require.NoError(t, err)
	assert.False(t, result.Liked)
	assert.Equal(t, 1, result.LikesCount)

	exists, err := env.likeRepo.Exists(bob.ID, video.ID)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestToggleLikeUnknownVideo(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "alice")

	_, err := env.engagement.ToggleLike(user.ID, uuid.New().String())
	assert.ErrorIs(t, err, repository.ErrVideoNotFound)
}

func TestAddComment(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "alice")
	video := env.createVideo(t, "budgeting-101")

	comment, err := env.engagement.AddComment(user.ID, video.ID, "  great video  ")
	require.NoError(t, err)
	assert.Equal(t, "great video", comment.Content)
	assert.Equal(t, "alice", comment.AuthorUsername)

	reloaded, err := env.videoRepo.ByID(video.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, reloaded.CommentsCount)
}

func TestAddCommentEmptyContent(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "alice")
	video := env.createVideo(t, "budgeting-101")

	_, err := env.engagement.AddComment(user.ID, video.ID, "   ")
	assert.ErrorIs(t, err, ErrEmptyContent)

	reloaded, err := env.videoRepo.ByID(video.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, reloaded.CommentsCount)
}

func TestDeleteCommentRestoresCounter(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "alice")
	video := env.createVideo(t, "budgeting-101")

	comment, err := env.engagement.AddComment(user.ID, video.ID, "first")
	require.NoError(t, err)
	_, err = env.engagement.AddComment(user.ID, video.ID, "second")
	require.NoError(t, err)

	require.NoError(t, env.engagement.DeleteComment(user.ID, comment.ID))

	reloaded, err := env.videoRepo.ByID(video.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, reloaded.CommentsCount)

	_, err = env.commentRepo.ByID(comment.ID)
	assert.ErrorIs(t, err, repository.ErrCommentNotFound)
}

func TestCommentOwnership(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")
	video := env.createVideo(t, "budgeting-101")

	comment, err := env.engagement.AddComment(alice.ID, video.ID, "mine")
	require.NoError(t, err)

	_, err = env.engagement.UpdateComment(bob.ID, comment.ID, "hijacked")
	assert.ErrorIs(t, err, ErrNotCommentOwner)

	err = env.engagement.DeleteComment(bob.ID, comment.ID)
	assert.ErrorIs(t, err, ErrNotCommentOwner)

	// Nothing changed
	reloaded, err := env.commentRepo.ByID(comment.ID)
	require.NoError(t, err)
	assert.Equal(t, "mine", reloaded.Content)

	video2, err := env.videoRepo.ByID(video.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, video2.CommentsCount)

	// The owner can
	updated, err := env.engagement.UpdateComment(alice.ID, comment.ID, "edited")
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Content)
}

func TestCommentsNewestFirst(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "alice")
	video := env.createVideo(t, "budgeting-101")

	base := time.Now().Add(-time.Hour).Truncate(time.Second)
	for i, content := range []string{"oldest", "middle", "newest"} {
		ts := base.Add(time.Duration(i) * time.Minute)
		err := env.commentRepo.Create(&model.Comment{
			ID:        uuid.New().String(),
			UserID:    user.ID,
			VideoID:   video.ID,
			Content:   content,
			CreatedAt: ts,
			UpdatedAt: ts,
		})
		require.NoError(t, err)
	}

	comments, err := env.engagement.Comments(video.ID)
	require.NoError(t, err)
	require.Len(t, comments, 3)
	assert.Equal(t, "newest", comments[0].Content)
	assert.Equal(t, "middle", comments[1].Content)
	assert.Equal(t, "oldest", comments[2].Content)
}

func TestUpsertReview(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "alice")
	video := env.createVideo(t, "budgeting-101")

	first, err := env.engagement.UpsertReview(user.ID, video.ID, 4, "solid")
	require.NoError(t, err)
	assert.Equal(t, 4, first.Rating)

	// Second review by the same user replaces the first in place
	second, err := env.engagement.UpsertReview(user.ID, video.ID, 2, "changed my mind")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 2, second.Rating)
	assert.Equal(t, "changed my mind", second.Text)

	reviews, err := env.reviewRepo.ForVideo(video.ID)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, 2, reviews[0].Rating)
}

func TestUpsertReviewInvalidRating(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "alice")
	video := env.createVideo(t, "budgeting-101")

	for _, rating := range []int{0, -1, 6} {
		_, err := env.engagement.UpsertReview(user.ID, video.ID, rating, "")
		assert.ErrorIs(t, err, validation.ErrInvalidRating)
	}
}

func TestVideoDetailFor(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")
	video := env.createVideo(t, "budgeting-101")

	_, err := env.engagement.ToggleLike(alice.ID, video.ID)
	require.NoError(t, err)
	_, err = env.engagement.UpsertReview(alice.ID, video.ID, 5, "")
	require.NoError(t, err)
	_, err = env.engagement.UpsertReview(bob.ID, video.ID, 3, "")
	require.NoError(t, err)

	detail, err := env.videos.DetailFor(alice.ID, video.ID)
	require.NoError(t, err)
	assert.True(t, detail.Liked)
	assert.Equal(t, 2, detail.ReviewCount)
	assert.InDelta(t, 4.0, detail.AvgRating, 0.001)
	require.NotNil(t, detail.UserReview)
	assert.Equal(t, 5, detail.UserReview.Rating)

	// Anonymous caller gets the aggregates but no personal state
	anon, err := env.videos.DetailFor("", video.ID)
	require.NoError(t, err)
	assert.False(t, anon.Liked)
	assert.Nil(t, anon.UserReview)
	assert.Equal(t, 2, anon.ReviewCount)
}
