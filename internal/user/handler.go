package user

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"pixgram/internal/common"
	"pixgram/internal/media"
)

// Handler translates HTTP requests into service calls and service outcomes
// into the response envelope. No error from the core escapes as anything
// other than an envelope with a status.
type Handler struct {
	userService UserService
	uploader    *media.Uploader
}

func NewHandler(userService UserService, uploader *media.Uploader) *Handler {
	return &Handler{userService: userService, uploader: uploader}
}

// RegisterRoutes mounts auth and user endpoints. public routes run with
// OptionalAuth, protected ones behind RequireAuth.
func (h *Handler) RegisterRoutes(public, protected *mux.Router) {
	public.HandleFunc("/auth/register", h.Register).Methods("POST")
	public.HandleFunc("/auth/login", h.Login).Methods("POST")
	public.HandleFunc("/users/search", h.SearchUsers).Methods("GET")
	public.HandleFunc("/users/{id:[0-9]+}", h.GetUser).Methods("GET")

	protected.HandleFunc("/auth/me", h.Me).Methods("GET")
	protected.HandleFunc("/auth/profile", h.UpdateProfile).Methods("PUT")
	protected.HandleFunc("/users/avatar", h.UploadAvatar).Methods("POST")
	protected.HandleFunc("/users/{id:[0-9]+}/follow", h.Follow).Methods("POST")
	protected.HandleFunc("/users/{id:[0-9]+}/unfollow", h.Unfollow).Methods("DELETE")
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

type authResponse struct {
	Token string      `json:"token"`
	User  interface{} `json:"user"`
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	u, token, err := h.userService.Register(r.Context(), req.Username, req.Email, req.Password, req.FullName)
	if err != nil {
		switch {
		case errors.Is(err, ErrUsernameTaken):
			common.WriteJSON(w, http.StatusConflict, common.Envelope{
				Success: false, Message: "Registration failed",
				Errors: map[string]string{"username": err.Error()},
			})
		case errors.Is(err, ErrEmailTaken):
			common.WriteJSON(w, http.StatusConflict, common.Envelope{
				Success: false, Message: "Registration failed",
				Errors: map[string]string{"email": err.Error()},
			})
		default:
			if common.IsValidationError(err) {
				common.WriteValidationError(w, map[string]string{"error": err.Error()})
				return
			}
			common.Log.WithError(err).Error("registration failed")
			common.WriteError(w, http.StatusInternalServerError, "Registration failed")
		}
		return
	}

	common.WriteCreated(w, "Registration successful", authResponse{Token: token, User: u})
}

type loginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	u, token, err := h.userService.Login(r.Context(), req.Login, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			common.WriteError(w, http.StatusUnauthorized, "Invalid username or password")
			return
		}
		common.WriteError(w, http.StatusInternalServerError, "Login failed")
		return
	}

	common.WriteSuccess(w, "Login successful", authResponse{Token: token, User: u})
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	userID, _ := common.UserIDFromContext(r.Context())

	profile, err := h.userService.GetProfile(r.Context(), userID, userID)
	if err != nil {
		h.writeProfileError(w, err)
		return
	}
	common.WriteSuccess(w, "Profile retrieved successfully", map[string]interface{}{"user": profile})
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	targetID, ok := pathID(r, "id")
	if !ok {
		common.WriteError(w, http.StatusBadRequest, "Invalid user id")
		return
	}
	viewerID, _ := common.UserIDFromContext(r.Context())

	profile, err := h.userService.GetProfile(r.Context(), viewerID, targetID)
	if err != nil {
		h.writeProfileError(w, err)
		return
	}
	common.WriteSuccess(w, "User retrieved successfully", map[string]interface{}{"user": profile})
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, _ := common.UserIDFromContext(r.Context())

	var update ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		common.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	u, err := h.userService.UpdateProfile(r.Context(), userID, update)
	if err != nil {
		h.writeProfileError(w, err)
		return
	}
	common.WriteSuccess(w, "Profile updated successfully", map[string]interface{}{"user": u})
}

func (h *Handler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	userID, _ := common.UserIDFromContext(r.Context())

	file, header, err := r.FormFile("avatar")
	if err != nil {
		common.WriteValidationError(w, map[string]string{"avatar": "avatar file is required"})
		return
	}
	defer file.Close()

	result, err := h.uploader.UploadImage(r.Context(), strconv.FormatUint(userID, 10), header.Filename, file)
	if err != nil {
		if errors.Is(err, media.ErrUnsupportedType) || errors.Is(err, media.ErrFileTooLarge) {
			common.WriteValidationError(w, map[string]string{"avatar": err.Error()})
			return
		}
		common.WriteError(w, http.StatusInternalServerError, "Failed to store avatar")
		return
	}

	if err := h.userService.UpdateAvatar(r.Context(), userID, result.ThumbnailID); err != nil {
		common.WriteError(w, http.StatusInternalServerError, "Failed to update avatar")
		return
	}

	common.WriteSuccess(w, "Avatar updated successfully", result)
}

func (h *Handler) Follow(w http.ResponseWriter, r *http.Request) {
	targetID, ok := pathID(r, "id")
	if !ok {
		common.WriteError(w, http.StatusBadRequest, "Invalid user id")
		return
	}
	userID, _ := common.UserIDFromContext(r.Context())

	err := h.userService.Follow(r.Context(), userID, targetID)
	switch {
	case err == nil:
		common.WriteSuccess(w, "User followed successfully", nil)
	case errors.Is(err, ErrSelfFollow):
		common.WriteError(w, http.StatusBadRequest, "Cannot follow yourself")
	case errors.Is(err, ErrAlreadyFollowing):
		common.WriteError(w, http.StatusConflict, "Already following this user")
	case errors.Is(err, ErrNotFound):
		common.WriteError(w, http.StatusNotFound, "User not found")
	default:
		common.Log.WithError(err).Error("follow failed")
		common.WriteError(w, http.StatusInternalServerError, "Failed to follow user")
	}
}

func (h *Handler) Unfollow(w http.ResponseWriter, r *http.Request) {
	targetID, ok := pathID(r, "id")
	if !ok {
		common.WriteError(w, http.StatusBadRequest, "Invalid user id")
		return
	}
	userID, _ := common.UserIDFromContext(r.Context())

	err := h.userService.Unfollow(r.Context(), userID, targetID)
	switch {
	case err == nil:
		common.WriteSuccess(w, "User unfollowed successfully", nil)
	case errors.Is(err, ErrSelfFollow):
		common.WriteError(w, http.StatusBadRequest, "Cannot unfollow yourself")
	case errors.Is(err, ErrNotFollowing):
		common.WriteError(w, http.StatusConflict, "Not following this user")
	default:
		common.Log.WithError(err).Error("unfollow failed")
		common.WriteError(w, http.StatusInternalServerError, "Failed to unfollow user")
	}
}

func (h *Handler) SearchUsers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	users, err := h.userService.SearchUsers(r.Context(), query, limit)
	if err != nil {
		common.Log.WithError(err).Error("user search failed")
		common.WriteError(w, http.StatusInternalServerError, "Search failed")
		return
	}
	common.WriteSuccess(w, "Users retrieved successfully", map[string]interface{}{"users": users})
}

func (h *Handler) writeProfileError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrNotFound) {
		common.WriteError(w, http.StatusNotFound, "User not found")
		return
	}
	common.Log.WithError(err).Error("profile request failed")
	common.WriteError(w, http.StatusInternalServerError, "Request failed")
}

func pathID(r *http.Request, key string) (uint64, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)[key], 10, 64)
	return id, err == nil && id != 0
}
