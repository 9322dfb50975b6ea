package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spendview/spendview/internal/model"
	"github.com/spendview/spendview/internal/repository"
	"github.com/spendview/spendview/internal/validation"
)

var (
	ErrEmptyContent    = errors.New("comment content is required")
	ErrNotCommentOwner = errors.New("only the comment author may modify it")
)

// ToggleResult is the outcome of a like toggle: the caller's new state and
// the video's counter after the flip.
type ToggleResult struct {
	Liked      bool
	LikesCount int
}

// EngagementService maintains the per-video engagement state: likes,
// comments and reviews, plus the denormalized counters on the video row.
//
// The three entities deliberately keep three distinct mutation policies:
// likes toggle (create/delete), comments append, reviews upsert in place.
// Counter upkeep differs too: likes_count is adjusted atomically inside the
// toggle transaction, comments_count is recounted from the rows on every
// comment mutation.
type EngagementService struct {
	videoRepo   repository.VideoRepository
	likeRepo    repository.LikeRepository
	commentRepo repository.CommentRepository
	reviewRepo  repository.ReviewRepository
	userRepo    repository.UserRepository
	fileService *FileService
}

func NewEngagementService(
	videoRepo repository.VideoRepository,
	likeRepo repository.LikeRepository,
	commentRepo repository.CommentRepository,
	reviewRepo repository.ReviewRepository,
	userRepo repository.UserRepository,
	fileService *FileService,
) *EngagementService {
	return &EngagementService{
		videoRepo:   videoRepo,
		likeRepo:    likeRepo,
		commentRepo: commentRepo,
		reviewRepo:  reviewRepo,
		userRepo:    userRepo,
		fileService: fileService,
	}
}

// ToggleLike flips the caller's like on a video. Each call inverts the
// current state; two calls in a row restore the original state and counter.
func (s *EngagementService) ToggleLike(userID, videoID string) (*ToggleResult, error) {
	// Verify the video exists so a bad ID is not-found, not a silent no-op
	_, err := s.videoRepo.ByID(videoID)
	if err != nil {
		return nil, err
	}

	liked, likesCount, err := s.likeRepo.Toggle(userID, videoID)
	if err != nil {
		return nil, fmt.Errorf("failed to toggle like: %w", err)
	}

	return &ToggleResult{Liked: liked, LikesCount: likesCount}, nil
}

// Comments lists a video's comments, newest first.
func (s *EngagementService) Comments(videoID string) ([]*model.Comment, error) {
	_, err := s.videoRepo.ByID(videoID)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ForVideo(videoID)
	if err != nil {
		return nil, err
	}

	for _, comment := range comments {
		comment.AuthorAvatarURL = s.fileService.AvatarURL(comment.AuthorAvatarPath)
	}

	return comments, nil
}

func (s *EngagementService) AddComment(userID, videoID, content string) (*model.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}

	_, err := s.videoRepo.ByID(videoID)
	if err != nil {
		return nil, err
	}

	author, err := s.userRepo.ByID(userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	comment := &model.Comment{
		ID:        uuid.New().String(),
		UserID:    userID,
		VideoID:   videoID,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.commentRepo.Create(comment)
	if err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	// Authoritative recount, not an increment
	_, err = s.commentRepo.RecountForVideo(videoID)
	if err != nil {
		return nil, fmt.Errorf("failed to recount comments: %w", err)
	}

	comment.AuthorUsername = author.Username
	comment.AuthorAvatarPath = author.AvatarPath
	comment.AuthorAvatarURL = s.fileService.AvatarURL(author.AvatarPath)

	return comment, nil
}

// UpdateComment edits a comment's content. Only the author may do this;
// anyone else gets ErrNotCommentOwner regardless of what else they own.
func (s *EngagementService) UpdateComment(userID, commentID, content string) (*model.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}

	comment, err := s.commentRepo.ByID(commentID)
	if err != nil {
		return nil, err
	}

	if comment.UserID != userID {
		return nil, ErrNotCommentOwner
	}

	comment.Content = content
	comment.UpdatedAt = time.Now()

	err = s.commentRepo.Update(comment)
	if err != nil {
		return nil, err
	}

	comment.AuthorAvatarURL = s.fileService.AvatarURL(comment.AuthorAvatarPath)
	return comment, nil
}

func (s *EngagementService) DeleteComment(userID, commentID string) error {
	comment, err := s.commentRepo.ByID(commentID)
	if err != nil {
		return err
	}

	if comment.UserID != userID {
		return ErrNotCommentOwner
	}

	err = s.commentRepo.Delete(commentID)
	if err != nil {
		return err
	}

	_, err = s.commentRepo.RecountForVideo(comment.VideoID)
	if err != nil {
		return fmt.Errorf("failed to recount comments: %w", err)
	}

	return nil
}

// UpsertReview records the caller's rating for a video. A first call
// inserts; any later call by the same user overwrites rating and text in
// place, so (user, video) never has more than one review row.
func (s *EngagementService) UpsertReview(userID, videoID string, rating int, text string) (*model.Review, error) {
	err := validation.ValidateRating(rating)
	if err != nil {
		return nil, err
	}

	_, err = s.videoRepo.ByID(videoID)
	if err != nil {
		return nil, err
	}

	existing, err := s.reviewRepo.ByUserAndVideo(userID, videoID)
	if err != nil && !errors.Is(err, repository.ErrReviewNotFound) {
		return nil, err
	}

	now := time.Now()
	if existing != nil {
		existing.Rating = rating
		existing.Text = text
		existing.UpdatedAt = now

		err = s.reviewRepo.Update(existing)
		if err != nil {
			return nil, fmt.Errorf("failed to update review: %w", err)
		}

		return existing, nil
	}

	review := &model.Review{
		ID:        uuid.New().String(),
		UserID:    userID,
		VideoID:   videoID,
		Rating:    rating,
		Text:      text,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.reviewRepo.Create(review)
	if err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	return review, nil
}
