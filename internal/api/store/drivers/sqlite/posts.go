package sqlite

import (
	"context"

	"github.com/shkapi/storefront/internal/api/domain"
)

type postsRepo struct {
	db dbtx
}

const listPostsSQL = `
SELECT id, user_id, title, content, created_at
FROM posts
ORDER BY created_at DESC, id DESC`

func (r *postsRepo) ListPosts(ctx context.Context) ([]domain.Post, error) {
	rows, err := r.db.QueryContext(ctx, listPostsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := []domain.Post{}
	for rows.Next() {
		var p domain.Post
		if err := rows.Scan(&p.ID, &p.UserID, &p.Title, &p.Content, &p.CreatedAt); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

const createPostSQL = `
INSERT INTO posts (id, user_id, title, content, created_at)
VALUES (?, ?, ?, ?, ?)`

func (r *postsRepo) CreatePost(ctx context.Context, p domain.Post) error {
	_, err := r.db.ExecContext(ctx, createPostSQL,
		p.ID, p.UserID, p.Title, p.Content, p.CreatedAt)
	if err != nil {
		return mapConstraint(err)
	}
	return nil
}
