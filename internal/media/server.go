package media

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gorilla/mux"

	"pixgram/internal/common"
	"pixgram/internal/dbmongo"
)

// HTTPServer serves stored images back to clients.
type HTTPServer struct {
	storage *dbmongo.ImageStorage
}

func NewHTTPServer(storage *dbmongo.ImageStorage) *HTTPServer {
	return &HTTPServer{storage: storage}
}

func (s *HTTPServer) Router() *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/media/{fileId}", s.ServeFile).Methods("GET")
	router.HandleFunc("/health", s.health).Methods("GET")

	return router
}

func (s *HTTPServer) ServeFile(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	fileId := vars["fileId"]

	fileReader, img, err := s.storage.Download(r.Context(), fileId)
	if err != nil {
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", s.getContentType(img.Filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", img.Size))
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")

	if _, err := io.Copy(w, fileReader); err != nil {
		common.Log.WithError(err).Error("error streaming file")
	}
}

func (s *HTTPServer) getContentType(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	default:
		return "application/octet-stream"
	}
}

func (s *HTTPServer) health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
