package service

import (
	"errors"

	"github.com/spendview/spendview/internal/model"
	"github.com/spendview/spendview/internal/repository"
)

// VideoDetail is one video with the caller-specific engagement state the
// detail page shows.
type VideoDetail struct {
	Video       *model.Video
	Liked       bool
	AvgRating   float64
	ReviewCount int
	UserReview  *model.Review
}

type VideoService struct {
	videoRepo  repository.VideoRepository
	likeRepo   repository.LikeRepository
	reviewRepo repository.ReviewRepository
}

func NewVideoService(
	videoRepo repository.VideoRepository,
	likeRepo repository.LikeRepository,
	reviewRepo repository.ReviewRepository,
) *VideoService {
	return &VideoService{
		videoRepo:  videoRepo,
		likeRepo:   likeRepo,
		reviewRepo: reviewRepo,
	}
}

func (s *VideoService) All() ([]*model.Video, error) {
	return s.videoRepo.All()
}

func (s *VideoService) ByID(id string) (*model.Video, error) {
	return s.videoRepo.ByID(id)
}

// DetailFor returns a video with engagement state for the given caller.
// userID may be empty for anonymous viewers, which leaves Liked false and
// UserReview nil.
func (s *VideoService) DetailFor(userID, videoID string) (*VideoDetail, error) {
	video, err := s.videoRepo.ByID(videoID)
	if err != nil {
		return nil, err
	}

	detail := &VideoDetail{Video: video}

	detail.AvgRating, detail.ReviewCount, err = s.reviewRepo.AverageForVideo(videoID)
	if err != nil {
		return nil, err
	}

	if userID == "" {
		return detail, nil
	}

	detail.Liked, err = s.likeRepo.Exists(userID, videoID)
	if err != nil {
		return nil, err
	}

	review, err := s.reviewRepo.ByUserAndVideo(userID, videoID)
	if err != nil && !errors.Is(err, repository.ErrReviewNotFound) {
		return nil, err
	}
	detail.UserReview = review

	return detail, nil
}
