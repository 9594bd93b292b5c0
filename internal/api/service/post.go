package service

import (
	"context"
	"time"

	"github.com/shkapi/storefront/internal/api/domain"
	"github.com/shkapi/storefront/internal/api/store"
	"github.com/shkapi/storefront/pkg/idx"
)

type PostService struct {
	Store store.Store
}

// ListPosts returns all posts, newest first.
func (s *PostService) ListPosts(ctx context.Context) ([]domain.Post, error) {
	return s.Store.Posts().ListPosts(ctx)
}

// CreatePost inserts a post owned by the authenticated user.
func (s *PostService) CreatePost(
	ctx context.Context,
	userID, title, content string,
) (domain.Post, error) {
	p := domain.Post{
		ID:        idx.New().String(),
		UserID:    userID,
		Title:     title,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Store.Posts().CreatePost(ctx, p); err != nil {
		return domain.Post{}, err
	}
	return p, nil
}
