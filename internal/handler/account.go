package handler

import (
	"net/http"
	"time"

	"github.com/spendview/spendview/internal/ctxkeys"
	"github.com/spendview/spendview/internal/service"
)

type AccountHandler struct {
	userService *service.UserService
}

func NewAccountHandler(userService *service.UserService) *AccountHandler {
	return &AccountHandler{userService: userService}
}

type profileView struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (h *AccountHandler) Me(w http.ResponseWriter, r *http.Request) {
	caller := ctxkeys.User(r.Context())

	user, err := h.userService.ByID(caller.ID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, profileView{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		AvatarURL: user.AvatarURL,
		CreatedAt: user.CreatedAt,
	})
}

// SetAvatar accepts a multipart upload under the "avatar" field.
func (h *AccountHandler) SetAvatar(w http.ResponseWriter, r *http.Request) {
	caller := ctxkeys.User(r.Context())

	err := r.ParseMultipartForm(5 << 20)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("avatar")
	if err != nil {
		respondError(w, http.StatusBadRequest, "avatar file is required")
		return
	}
	defer func() { _ = file.Close() }()

	user, err := h.userService.SetAvatar(caller.ID, file, header)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, profileView{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		AvatarURL: user.AvatarURL,
		CreatedAt: user.CreatedAt,
	})
}
