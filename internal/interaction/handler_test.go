package interaction

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"pixgram/internal/common"
	"pixgram/internal/dbmysql"
	"pixgram/internal/testutil"
)

// newTestRouter wires the full stack over a real SQLite store: mux router,
// auth middleware, handler, service and repository.
func newTestRouter(t *testing.T) (*mux.Router, *gorm.DB) {
	t.Helper()
	db := testutil.NewTestDB(t)
	handler := NewHandler(NewInteractionService(NewInteractionRepository(db)))

	router := mux.NewRouter()
	public := router.NewRoute().Subrouter()
	public.Use(common.OptionalAuth)
	protected := router.NewRoute().Subrouter()
	protected.Use(common.RequireAuth)
	handler.RegisterRoutes(public, protected)

	return router, db
}

func doRequest(t *testing.T, router *mux.Router, method, path string, body interface{}, userID uint64) (*httptest.ResponseRecorder, common.Envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if userID != 0 {
		token, err := common.GenerateToken(userID, fmt.Sprintf("user%d", userID))
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env common.Envelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	return rec, env
}

func TestLikeEndpoints(t *testing.T) {
	router, db := newTestRouter(t)

	alice := seedUser(t, db, "alice")
	post := seedPost(t, db, alice.ID)
	likeURL := fmt.Sprintf("/posts/%d/like", post.ID)

	rec, env := doRequest(t, router, http.MethodPost, likeURL, nil, alice.ID)
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, env.Success)
	require.Equal(t, int64(1), likesCount(t, db, post.ID))

	// second like conflicts and leaves the counter alone
	rec, env = doRequest(t, router, http.MethodPost, likeURL, nil, alice.ID)
	require.Equal(t, http.StatusConflict, rec.Code)
	require.False(t, env.Success)
	require.Equal(t, int64(1), likesCount(t, db, post.ID))

	rec, _ = doRequest(t, router, http.MethodDelete, likeURL, nil, alice.ID)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, int64(0), likesCount(t, db, post.ID))

	rec, _ = doRequest(t, router, http.MethodDelete, likeURL, nil, alice.ID)
	require.Equal(t, http.StatusConflict, rec.Code)

	// missing post
	rec, _ = doRequest(t, router, http.MethodPost, "/posts/9999/like", nil, alice.ID)
	require.Equal(t, http.StatusNotFound, rec.Code)

	// no session
	req := httptest.NewRequest(http.MethodPost, likeURL, nil)
	unauthRec := httptest.NewRecorder()
	router.ServeHTTP(unauthRec, req)
	require.Equal(t, http.StatusUnauthorized, unauthRec.Code)
}

func TestCommentEndpoints(t *testing.T) {
	router, db := newTestRouter(t)

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	post := seedPost(t, db, alice.ID)
	commentsURL := fmt.Sprintf("/posts/%d/comments", post.ID)

	rec, env := doRequest(t, router, http.MethodPost, commentsURL,
		map[string]interface{}{"content": "great shot"}, bob.ID)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.True(t, env.Success)
	require.Equal(t, int64(1), commentsCount(t, db, post.ID))

	// empty content is a field-level validation failure
	rec, env = doRequest(t, router, http.MethodPost, commentsURL,
		map[string]interface{}{"content": "  "}, bob.ID)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, env.Errors, "content")

	// anonymous read sees the comment with its author
	rec, env = doRequest(t, router, http.MethodGet, commentsURL, nil, 0)
	require.Equal(t, http.StatusOK, rec.Code)
	data := env.Data.(map[string]interface{})
	comments := data["comments"].([]interface{})
	require.Len(t, comments, 1)
	first := comments[0].(map[string]interface{})
	require.Equal(t, "great shot", first["content"])
	require.Equal(t, "bob", first["username"])
}

func TestDeleteCommentEndpoint_OwnershipStatuses(t *testing.T) {
	router, db := newTestRouter(t)

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	post := seedPost(t, db, alice.ID)

	c := &dbmysql.Comment{PostID: post.ID, UserID: alice.ID, Content: "mine"}
	require.NoError(t, NewInteractionRepository(db).CreateComment(context.Background(), c))
	url := fmt.Sprintf("/comments/%d", c.ID)

	rec, _ := doRequest(t, router, http.MethodDelete, url, nil, bob.ID)
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec, _ = doRequest(t, router, http.MethodDelete, url, nil, alice.ID)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = doRequest(t, router, http.MethodDelete, url, nil, alice.ID)
	require.Equal(t, http.StatusNotFound, rec.Code)
}
