package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"rentgear-backend/internal/domain"
	"rentgear-backend/internal/repository"
)

type articleService struct {
	articleRepo repository.ArticleRepository
}

func NewArticleService(articleRepo repository.ArticleRepository) ArticleService {
	return &articleService{articleRepo: articleRepo}
}

var slugCleaner = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL slug from a title
func Slugify(title string) string {
	slug := slugCleaner.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}

func (s *articleService) CreateArticle(ctx context.Context, a *domain.Article) error {
	if a.Title == "" {
		verr := &ValidationError{}
		verr.add("title", "is required")
		return verr
	}
	if a.Slug == "" {
		a.Slug = Slugify(a.Title)
	}
	return s.articleRepo.Create(ctx, a)
}

func (s *articleService) GetArticle(ctx context.Context, id int64) (*domain.Article, error) {
	a, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("article %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return a, nil
}

func (s *articleService) GetPublishedArticle(ctx context.Context, slug string) (*domain.Article, error) {
	a, err := s.articleRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("article %q: %w", slug, ErrNotFound)
		}
		return nil, err
	}
	// Unpublished drafts are invisible on the public site
	if !a.Published {
		return nil, fmt.Errorf("article %q: %w", slug, ErrNotFound)
	}
	return a, nil
}

func (s *articleService) UpdateArticle(ctx context.Context, a *domain.Article) error {
	if a.Title == "" {
		verr := &ValidationError{}
		verr.add("title", "is required")
		return verr
	}
	if a.Slug == "" {
		a.Slug = Slugify(a.Title)
	}
	err := s.articleRepo.Update(ctx, a)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("article %d: %w", a.ID, ErrNotFound)
	}
	return err
}

func (s *articleService) DeleteArticle(ctx context.Context, id int64) error {
	err := s.articleRepo.Delete(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("article %d: %w", id, ErrNotFound)
	}
	return err
}

func (s *articleService) ListArticles(ctx context.Context, publishedOnly bool) ([]domain.Article, error) {
	return s.articleRepo.List(ctx, publishedOnly)
}
