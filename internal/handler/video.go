package handler

import (
	"net/http"
	"time"

	"github.com/spendview/spendview/internal/ctxkeys"
	"github.com/spendview/spendview/internal/model"
	"github.com/spendview/spendview/internal/service"
)

type VideoHandler struct {
	videoService      *service.VideoService
	engagementService *service.EngagementService
}

func NewVideoHandler(
	videoService *service.VideoService,
	engagementService *service.EngagementService,
) *VideoHandler {
	return &VideoHandler{
		videoService:      videoService,
		engagementService: engagementService,
	}
}

type videoView struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	URL           string    `json:"url"`
	Thumbnail     string    `json:"thumbnail"`
	Description   string    `json:"description"`
	LikesCount    int       `json:"likes_count"`
	CommentsCount int       `json:"comments_count"`
	CreatedAt     time.Time `json:"created_at"`
}

type videoDetailView struct {
	videoView
	Liked         bool        `json:"liked"`
	AverageRating float64     `json:"average_rating"`
	ReviewCount   int         `json:"review_count"`
	UserReview    *reviewView `json:"user_review"`
}

type commentView struct {
	ID        string    `json:"id"`
	VideoID   string    `json:"video_id"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type reviewView struct {
	ID        string    `json:"id"`
	VideoID   string    `json:"video_id"`
	UserID    string    `json:"user_id"`
	Rating    int       `json:"rating"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newVideoView(v *model.Video) videoView {
	return videoView{
		ID:            v.ID,
		Title:         v.Title,
		URL:           v.URL,
		Thumbnail:     v.Thumbnail,
		Description:   v.Description,
		LikesCount:    v.LikesCount,
		CommentsCount: v.CommentsCount,
		CreatedAt:     v.CreatedAt,
	}
}

func newCommentView(c *model.Comment) commentView {
	return commentView{
		ID:        c.ID,
		VideoID:   c.VideoID,
		UserID:    c.UserID,
		Username:  c.AuthorUsername,
		AvatarURL: c.AuthorAvatarURL,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func newReviewView(rv *model.Review) *reviewView {
	if rv == nil {
		return nil
	}
	return &reviewView{
		ID:        rv.ID,
		VideoID:   rv.VideoID,
		UserID:    rv.UserID,
		Rating:    rv.Rating,
		Text:      rv.Text,
		CreatedAt: rv.CreatedAt,
		UpdatedAt: rv.UpdatedAt,
	}
}

func (h *VideoHandler) List(w http.ResponseWriter, r *http.Request) {
	videos, err := h.videoService.All()
	if err != nil {
		respondServiceError(w, err)
		return
	}

	views := make([]videoView, 0, len(videos))
	for _, v := range videos {
		views = append(views, newVideoView(v))
	}
	respondJSON(w, http.StatusOK, views)
}

// Detail works for anonymous callers too: without a user in context the
// liked flag stays false and user_review null.
func (h *VideoHandler) Detail(w http.ResponseWriter, r *http.Request) {
	userID := ""
	user := ctxkeys.User(r.Context())
	if user != nil {
		userID = user.ID
	}

	detail, err := h.videoService.DetailFor(userID, r.PathValue("id"))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, videoDetailView{
		videoView:     newVideoView(detail.Video),
		Liked:         detail.Liked,
		AverageRating: detail.AvgRating,
		ReviewCount:   detail.ReviewCount,
		UserReview:    newReviewView(detail.UserReview),
	})
}

func (h *VideoHandler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	result, err := h.engagementService.ToggleLike(user.ID, r.PathValue("id"))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"liked":       result.Liked,
		"likes_count": result.LikesCount,
	})
}

func (h *VideoHandler) Comments(w http.ResponseWriter, r *http.Request) {
	comments, err := h.engagementService.Comments(r.PathValue("id"))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	views := make([]commentView, 0, len(comments))
	for _, c := range comments {
		views = append(views, newCommentView(c))
	}
	respondJSON(w, http.StatusOK, views)
}

type commentRequest struct {
	Content string `json:"content"`
}

func (h *VideoHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req commentRequest
	err := decodeJSON(r, &req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	comment, err := h.engagementService.AddComment(user.ID, r.PathValue("id"), req.Content)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, newCommentView(comment))
}

func (h *VideoHandler) UpdateComment(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req commentRequest
	err := decodeJSON(r, &req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	comment, err := h.engagementService.UpdateComment(user.ID, r.PathValue("id"), req.Content)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, newCommentView(comment))
}

func (h *VideoHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	err := h.engagementService.DeleteComment(user.ID, r.PathValue("id"))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type reviewRequest struct {
	Rating int    `json:"rating"`
	Text   string `json:"text"`
}

func (h *VideoHandler) UpsertReview(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req reviewRequest
	err := decodeJSON(r, &req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	review, err := h.engagementService.UpsertReview(user.ID, r.PathValue("id"), req.Rating, req.Text)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, newReviewView(review))
}
