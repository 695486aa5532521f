package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"rentgear-backend/internal/domain"
	"rentgear-backend/internal/service"
)

type ArticleHandler struct {
	articles service.ArticleService
}

func NewArticleHandler(articles service.ArticleService) *ArticleHandler {
	return &ArticleHandler{articles: articles}
}

// ListPublished serves the public blog index
func (h *ArticleHandler) ListPublished(w http.ResponseWriter, r *http.Request) {
	items, err := h.articles.ListArticles(r.Context(), true)
	if err != nil {
		respondError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, items)
}

// GetBySlug serves a single published article; drafts look like 404
func (h *ArticleHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	a, err := h.articles.GetPublishedArticle(r.Context(), slug)
	if err != nil {
		respondError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, a)
}

func (h *ArticleHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.articles.ListArticles(r.Context(), false)
	if err != nil {
		respondError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, items)
}

func (h *ArticleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	a, err := h.articles.GetArticle(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, a)
}

func (h *ArticleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var a domain.Article
	if err := decodeJSON(r, &a); err != nil {
		respondError(w, err)
		return
	}
	if err := h.articles.CreateArticle(r.Context(), &a); err != nil {
		respondError(w, err)
		return
	}
	respondSuccess(w, http.StatusCreated, a)
}

func (h *ArticleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	var a domain.Article
	if err := decodeJSON(r, &a); err != nil {
		respondError(w, err)
		return
	}
	a.ID = id
	if err := h.articles.UpdateArticle(r.Context(), &a); err != nil {
		respondError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, a)
}

func (h *ArticleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	if err := h.articles.DeleteArticle(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, nil)
}
