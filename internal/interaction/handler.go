package interaction

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"pixgram/internal/common"
)

type Handler struct {
	service InteractionService
}

func NewHandler(service InteractionService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(public, protected *mux.Router) {
	public.HandleFunc("/posts/{id:[0-9]+}/likes", h.GetPostLikes).Methods("GET")
	public.HandleFunc("/posts/{id:[0-9]+}/comments", h.GetPostComments).Methods("GET")

	protected.HandleFunc("/posts/{id:[0-9]+}/like", h.LikePost).Methods("POST")
	protected.HandleFunc("/posts/{id:[0-9]+}/like", h.UnlikePost).Methods("DELETE")
	protected.HandleFunc("/posts/{id:[0-9]+}/comments", h.CreateComment).Methods("POST")
	protected.HandleFunc("/comments/{id:[0-9]+}", h.UpdateComment).Methods("PUT")
	protected.HandleFunc("/comments/{id:[0-9]+}", h.DeleteComment).Methods("DELETE")
	protected.HandleFunc("/comments/{id:[0-9]+}/like", h.LikeComment).Methods("POST")
	protected.HandleFunc("/comments/{id:[0-9]+}/like", h.UnlikeComment).Methods("DELETE")
}

func (h *Handler) LikePost(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(r, "id")
	if !ok {
		common.WriteError(w, http.StatusBadRequest, "Invalid post id")
		return
	}
	userID, _ := common.UserIDFromContext(r.Context())

	err := h.service.LikePost(r.Context(), userID, postID)
	switch {
	case err == nil:
		common.WriteSuccess(w, "Post liked successfully", nil)
	case errors.Is(err, ErrAlreadyLiked):
		common.WriteError(w, http.StatusConflict, "Post already liked")
	case errors.Is(err, ErrPostNotFound):
		common.WriteError(w, http.StatusNotFound, "Post not found")
	default:
		common.Log.WithError(err).Error("like failed")
		common.WriteError(w, http.StatusInternalServerError, "Failed to like post")
	}
}

func (h *Handler) UnlikePost(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(r, "id")
	if !ok {
		common.WriteError(w, http.StatusBadRequest, "Invalid post id")
		return
	}
	userID, _ := common.UserIDFromContext(r.Context())

	err := h.service.UnlikePost(r.Context(), userID, postID)
	switch {
	case err == nil:
		common.WriteSuccess(w, "Post unliked successfully", nil)
	case errors.Is(err, ErrNotLiked):
		common.WriteError(w, http.StatusConflict, "Post not liked")
	default:
		common.Log.WithError(err).Error("unlike failed")
		common.WriteError(w, http.StatusInternalServerError, "Failed to unlike post")
	}
}

func (h *Handler) GetPostLikes(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(r, "id")
	if !ok {
		common.WriteError(w, http.StatusBadRequest, "Invalid post id")
		return
	}
	limit, offset := pagination(r)

	likes, err := h.service.GetPostLikes(r.Context(), postID, limit, offset)
	if err != nil {
		common.Log.WithError(err).Error("likes fetch failed")
		common.WriteError(w, http.StatusInternalServerError, "Request failed")
		return
	}
	common.WriteSuccess(w, "Post likes retrieved successfully", map[string]interface{}{"likes": likes})
}

type commentRequest struct {
	Content  string  `json:"content"`
	ParentID *uint64 `json:"parent_id"`
}

func (h *Handler) CreateComment(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(r, "id")
	if !ok {
		common.WriteError(w, http.StatusBadRequest, "Invalid post id")
		return
	}
	userID, _ := common.UserIDFromContext(r.Context())

	var req commentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	comment, err := h.service.CreateComment(r.Context(), userID, postID, req.Content, req.ParentID)
	switch {
	case err == nil:
		common.WriteCreated(w, "Comment created successfully", map[string]interface{}{"comment": comment})
	case errors.Is(err, ErrPostNotFound):
		common.WriteError(w, http.StatusNotFound, "Post not found")
	case errors.Is(err, ErrInvalidParent):
		common.WriteValidationError(w, map[string]string{"parent_id": err.Error()})
	default:
		if isValidation(err) {
			common.WriteValidationError(w, map[string]string{"content": err.Error()})
			return
		}
		common.Log.WithError(err).Error("comment create failed")
		common.WriteError(w, http.StatusInternalServerError, "Failed to create comment")
	}
}

func (h *Handler) GetPostComments(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(r, "id")
	if !ok {
		common.WriteError(w, http.StatusBadRequest, "Invalid post id")
		return
	}
	viewerID, _ := common.UserIDFromContext(r.Context())
	limit, offset := pagination(r)

	comments, err := h.service.GetPostComments(r.Context(), viewerID, postID, limit, offset)
	if err != nil {
		common.Log.WithError(err).Error("comments fetch failed")
		common.WriteError(w, http.StatusInternalServerError, "Request failed")
		return
	}
	common.WriteSuccess(w, "Comments retrieved successfully", map[string]interface{}{"comments": comments})
}

func (h *Handler) UpdateComment(w http.ResponseWriter, r *http.Request) {
	commentID, ok := pathID(r, "id")
	if !ok {
		common.WriteError(w, http.StatusBadRequest, "Invalid comment id")
		return
	}
	userID, _ := common.UserIDFromContext(r.Context())

	var req commentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	comment, err := h.service.UpdateComment(r.Context(), commentID, userID, req.Content)
	switch {
	case err == nil:
		common.WriteSuccess(w, "Comment updated successfully", map[string]interface{}{"comment": comment})
	case errors.Is(err, ErrNotOwner):
		common.WriteError(w, http.StatusForbidden, "Not authorized to update this comment")
	default:
		if isValidation(err) {
			common.WriteValidationError(w, map[string]string{"content": err.Error()})
			return
		}
		common.Log.WithError(err).Error("comment update failed")
		common.WriteError(w, http.StatusInternalServerError, "Failed to update comment")
	}
}

func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	commentID, ok := pathID(r, "id")
	if !ok {
		common.WriteError(w, http.StatusBadRequest, "Invalid comment id")
		return
	}
	userID, _ := common.UserIDFromContext(r.Context())

	err := h.service.DeleteComment(r.Context(), commentID, userID)
	switch {
	case err == nil:
		common.WriteSuccess(w, "Comment deleted successfully", nil)
	case errors.Is(err, ErrNotFound):
		common.WriteError(w, http.StatusNotFound, "Comment not found")
	case errors.Is(err, ErrNotOwner):
		common.WriteError(w, http.StatusForbidden, "Not authorized to delete this comment")
	default:
		common.Log.WithError(err).Error("comment delete failed")
		common.WriteError(w, http.StatusInternalServerError, "Failed to delete comment")
	}
}

func (h *Handler) LikeComment(w http.ResponseWriter, r *http.Request) {
	commentID, ok := pathID(r, "id")
	if !ok {
		common.WriteError(w, http.StatusBadRequest, "Invalid comment id")
		return
	}
	userID, _ := common.UserIDFromContext(r.Context())

	err := h.service.LikeComment(r.Context(), userID, commentID)
	switch {
	case err == nil:
		common.WriteSuccess(w, "Comment liked successfully", nil)
	case errors.Is(err, ErrAlreadyLiked):
		common.WriteError(w, http.StatusConflict, "Comment already liked")
	case errors.Is(err, ErrNotFound):
		common.WriteError(w, http.StatusNotFound, "Comment not found")
	default:
		common.Log.WithError(err).Error("comment like failed")
		common.WriteError(w, http.StatusInternalServerError, "Failed to like comment")
	}
}

func (h *Handler) UnlikeComment(w http.ResponseWriter, r *http.Request) {
	commentID, ok := pathID(r, "id")
	if !ok {
		common.WriteError(w, http.StatusBadRequest, "Invalid comment id")
		return
	}
	userID, _ := common.UserIDFromContext(r.Context())

	err := h.service.UnlikeComment(r.Context(), userID, commentID)
	switch {
	case err == nil:
		common.WriteSuccess(w, "Comment unliked successfully", nil)
	case errors.Is(err, ErrNotLiked):
		common.WriteError(w, http.StatusConflict, "Comment not liked")
	default:
		common.Log.WithError(err).Error("comment unlike failed")
		common.WriteError(w, http.StatusInternalServerError, "Failed to unlike comment")
	}
}

func isValidation(err error) bool {
	return common.IsValidationError(err)
}

func pathID(r *http.Request, key string) (uint64, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)[key], 10, 64)
	return id, err == nil && id != 0
}

func pagination(r *http.Request) (limit, offset int) {
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ = strconv.Atoi(r.URL.Query().Get("offset"))
	return limit, offset
}
