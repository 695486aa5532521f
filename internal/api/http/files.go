package http

import (
	"io"
	"net/http"
	"path/filepath"

	"github.com/gorilla/mux"

	"rentgear-backend/internal/service"
	"rentgear-backend/internal/storage"
)

// FileHandler serves equipment image uploads and downloads
type FileHandler struct {
	storage     *storage.LocalStorage
	maxFileSize int64
}

func NewFileHandler(store *storage.LocalStorage, maxFileSizeMB int64) *FileHandler {
	return &FileHandler{
		storage:     store,
		maxFileSize: maxFileSizeMB << 20,
	}
}

type uploadResponse struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// Upload accepts a multipart form with an "image" file part
func (h *FileHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize)
	if err := r.ParseMultipartForm(h.maxFileSize); err != nil {
		verr := &service.ValidationError{}
		verr.Fields = append(verr.Fields, service.FieldError{Field: "image", Message: "file is missing or too large"})
		respondError(w, verr)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		verr := &service.ValidationError{}
		verr.Fields = append(verr.Fields, service.FieldError{Field: "image", Message: "image file is required"})
		respondError(w, verr)
		return
	}
	defer file.Close()

	key, err := h.storage.Save(filepath.Ext(header.Filename), file)
	if err != nil {
		respondError(w, err)
		return
	}

	respondSuccess(w, http.StatusCreated, uploadResponse{
		Key: key,
		URL: h.storage.URL(key),
	})
}

// Download streams a stored image back to the public site
func (h *FileHandler) Download(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]
	file, err := h.storage.Open(key)
	if err != nil {
		respondMessage(w, http.StatusNotFound, "file not found")
		return
	}
	defer file.Close()

	contentType := "application/octet-stream"
	switch filepath.Ext(key) {
	case ".jpg", ".jpeg":
		contentType = "image/jpeg"
	case ".png":
		contentType = "image/png"
	case ".gif":
		contentType = "image/gif"
	case ".webp":
		contentType = "image/webp"
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	io.Copy(w, file)
}
