package sqlite

import (
	"context"
	"database/sql"
	"time"

	"rentgear-backend/internal/domain"
	"rentgear-backend/internal/repository"
)

type articleRepository struct {
	db *sql.DB
}

func NewArticleRepository(db *sql.DB) repository.ArticleRepository {
	return &articleRepository{db: db}
}

const articleColumns = `id, title, slug, body, published, created_at, updated_at`

func (r *articleRepository) Create(ctx context.Context, a *domain.Article) error {
	now := time.Now()
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO articles (title, slug, body, published, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
		a.Title, a.Slug, a.Body, a.Published, now, now)
	if err != nil {
		return err
	}
	a.ID, err = res.LastInsertId()
	a.CreatedAt = now
	a.UpdatedAt = now
	return err
}

func (r *articleRepository) GetByID(ctx context.Context, id int64) (*domain.Article, error) {
	return scanArticle(r.db.QueryRowContext(ctx,
		`SELECT `+articleColumns+` FROM articles WHERE id = ?`, id))
}

func (r *articleRepository) GetBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	return scanArticle(r.db.QueryRowContext(ctx,
		`SELECT `+articleColumns+` FROM articles WHERE slug = ?`, slug))
}

func (r *articleRepository) Update(ctx context.Context, a *domain.Article) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE articles SET title=?, slug=?, body=?, published=?, updated_at=? WHERE id=?`,
		a.Title, a.Slug, a.Body, a.Published, time.Now(), a.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *articleRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM articles WHERE id=?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *articleRepository) List(ctx context.Context, publishedOnly bool) ([]domain.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles`
	if publishedOnly {
		query += ` WHERE published = 1`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []domain.Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, *a)
	}
	return articles, rows.Err()
}

func scanArticle(row rowScanner) (*domain.Article, error) {
	a := &domain.Article{}
	err := row.Scan(&a.ID, &a.Title, &a.Slug, &a.Body, &a.Published, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}
