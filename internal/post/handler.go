package post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"pixgram/internal/common"
	"pixgram/internal/media"
)

type Handler struct {
	postService PostService
	uploader    *media.Uploader
}

func NewHandler(postService PostService, uploader *media.Uploader) *Handler {
	return &Handler{postService: postService, uploader: uploader}
}

func (h *Handler) RegisterRoutes(public, protected *mux.Router) {
	public.HandleFunc("/posts/search", h.SearchPosts).Methods("GET")
	public.HandleFunc("/posts/{id:[0-9]+}", h.GetPost).Methods("GET")
	public.HandleFunc("/users/{id:[0-9]+}/posts", h.GetUserPosts).Methods("GET")

	protected.HandleFunc("/posts", h.CreatePost).Methods("POST")
	protected.HandleFunc("/posts/feed", h.GetFeed).Methods("GET")
	protected.HandleFunc("/posts/explore", h.GetExplore).Methods("GET")
	protected.HandleFunc("/posts/{id:[0-9]+}", h.UpdatePost).Methods("PATCH")
	protected.HandleFunc("/posts/{id:[0-9]+}", h.DeletePost).Methods("DELETE")
}

// CreatePost accepts multipart form data: an image file plus optional
// caption and location fields.
func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	userID, _ := common.UserIDFromContext(r.Context())

	file, header, err := r.FormFile("image")
	if err != nil {
		common.WriteValidationError(w, map[string]string{"image": "image file is required"})
		return
	}
	defer file.Close()

	result, err := h.uploader.UploadImage(r.Context(), strconv.FormatUint(userID, 10), header.Filename, file)
	if err != nil {
		if errors.Is(err, media.ErrUnsupportedType) || errors.Is(err, media.ErrFileTooLarge) {
			common.WriteValidationError(w, map[string]string{"image": err.Error()})
			return
		}
		common.Log.WithError(err).Error("image upload failed")
		common.WriteError(w, http.StatusInternalServerError, "Failed to store image")
		return
	}

	p, err := h.postService.CreatePost(r.Context(), userID,
		result.ImageID, result.ThumbnailID,
		r.FormValue("caption"), r.FormValue("location"))
	if err != nil {
		if common.IsValidationError(err) {
			common.WriteValidationError(w, map[string]string{"caption": err.Error()})
			return
		}
		common.Log.WithError(err).Error("post create failed")
		common.WriteError(w, http.StatusInternalServerError, "Failed to create post")
		return
	}

	common.WriteCreated(w, "Post created successfully", map[string]interface{}{"post": p})
}

func (h *Handler) GetPost(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(r, "id")
	if !ok {
		common.WriteError(w, http.StatusBadRequest, "Invalid post id")
		return
	}
	viewerID, _ := common.UserIDFromContext(r.Context())

	p, err := h.postService.GetPost(r.Context(), viewerID, postID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			common.WriteError(w, http.StatusNotFound, "Post not found")
			return
		}
		common.Log.WithError(err).Error("post fetch failed")
		common.WriteError(w, http.StatusInternalServerError, "Request failed")
		return
	}
	common.WriteSuccess(w, "Post retrieved successfully", map[string]interface{}{"post": p})
}

func (h *Handler) GetUserPosts(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(r, "id")
	if !ok {
		common.WriteError(w, http.StatusBadRequest, "Invalid user id")
		return
	}
	viewerID, _ := common.UserIDFromContext(r.Context())
	limit, offset := pagination(r)

	posts, err := h.postService.GetUserPosts(r.Context(), viewerID, userID, limit, offset)
	if err != nil {
		common.Log.WithError(err).Error("user posts fetch failed")
		common.WriteError(w, http.StatusInternalServerError, "Request failed")
		return
	}
	common.WriteSuccess(w, "User posts retrieved successfully", map[string]interface{}{"posts": posts})
}

func (h *Handler) GetFeed(w http.ResponseWriter, r *http.Request) {
	userID, _ := common.UserIDFromContext(r.Context())
	limit, offset := pagination(r)

	posts, err := h.postService.GetFeed(r.Context(), userID, limit, offset)
	if err != nil {
		common.Log.WithError(err).Error("feed fetch failed")
		common.WriteError(w, http.StatusInternalServerError, "Request failed")
		return
	}
	common.WriteSuccess(w, "Feed retrieved successfully", map[string]interface{}{"posts": posts})
}

func (h *Handler) GetExplore(w http.ResponseWriter, r *http.Request) {
	userID, _ := common.UserIDFromContext(r.Context())
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	posts, err := h.postService.GetExplorePosts(r.Context(), userID, limit)
	if err != nil {
		common.Log.WithError(err).Error("explore fetch failed")
		common.WriteError(w, http.StatusInternalServerError, "Request failed")
		return
	}
	common.WriteSuccess(w, "Explore posts retrieved successfully", map[string]interface{}{"posts": posts})
}

func (h *Handler) SearchPosts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	posts, err := h.postService.SearchPosts(r.Context(), query, limit)
	if err != nil {
		common.Log.WithError(err).Error("post search failed")
		common.WriteError(w, http.StatusInternalServerError, "Search failed")
		return
	}
	common.WriteSuccess(w, "Posts retrieved successfully", map[string]interface{}{"posts": posts})
}

type updatePostRequest struct {
	Caption        *string `json:"caption"`
	ToggleComments bool    `json:"toggle_comments"`
}

func (h *Handler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(r, "id")
	if !ok {
		common.WriteError(w, http.StatusBadRequest, "Invalid post id")
		return
	}
	userID, _ := common.UserIDFromContext(r.Context())

	var req updatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Caption != nil {
		if err := h.postService.UpdateCaption(r.Context(), postID, userID, *req.Caption); err != nil {
			h.writeMutationError(w, err)
			return
		}
	}
	if req.ToggleComments {
		if err := h.postService.ToggleComments(r.Context(), postID, userID); err != nil {
			h.writeMutationError(w, err)
			return
		}
	}

	common.WriteSuccess(w, "Post updated successfully", nil)
}

// DeletePost archives; the row is retained and hidden from queries.
func (h *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(r, "id")
	if !ok {
		common.WriteError(w, http.StatusBadRequest, "Invalid post id")
		return
	}
	userID, _ := common.UserIDFromContext(r.Context())

	if err := h.postService.ArchivePost(r.Context(), postID, userID); err != nil {
		h.writeMutationError(w, err)
		return
	}
	common.WriteSuccess(w, "Post deleted successfully", nil)
}

func (h *Handler) writeMutationError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrNotFound) {
		common.WriteError(w, http.StatusNotFound, "Post not found")
		return
	}
	if common.IsValidationError(err) {
		common.WriteValidationError(w, map[string]string{"caption": err.Error()})
		return
	}
	common.Log.WithError(err).Error("post mutation failed")
	common.WriteError(w, http.StatusInternalServerError, "Request failed")
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
