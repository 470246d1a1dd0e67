package service

import (
	"context"

	"github.com/d60-Lab/gin-blog/internal/model"
	"github.com/d60-Lab/gin-blog/internal/pagination"
	"github.com/d60-Lab/gin-blog/internal/repository"
)

// ListingCache is the read-through cache consulted by ListPage. A nil cache
// disables caching entirely.
type ListingCache interface {
	GetWindow(ctx context.Context, offset, limit int) ([]*model.Post, bool)
	SetWindow(ctx context.Context, offset, limit int, posts []*model.Post)
}

// PostService serves the listing and single-post pages.
type PostService interface {
	// ListPage resolves the raw page parameter against the current post
	// count and returns the posts inside the window.
	ListPage(ctx context.Context, rawPage, basePath string) ([]*model.Post, pagination.Window, error)
	// ListAll returns every post, insertion order. Used by the dashboard.
	ListAll(ctx context.Context) ([]*model.Post, error)
	// BySlug returns (nil, nil) when no post has the slug.
	BySlug(ctx context.Context, slug string) (*model.Post, error)
}

type postService struct {
	posts    repository.PostRepository
	cache    ListingCache
	pageSize int
}

func NewPostService(posts repository.PostRepository, cache ListingCache, pageSize int) PostService {
	if pageSize < 1 {
		pageSize = 5
	}
	return &postService{posts: posts, cache: cache, pageSize: pageSize}
}

func (s *postService) ListPage(ctx context.Context, rawPage, basePath string) ([]*model.Post, pagination.Window, error) {
	total, err := s.posts.Count(ctx)
	if err != nil {
		return nil, pagination.Window{}, err
	}
	w := pagination.Paginate(int(total), s.pageSize, rawPage, basePath)
	if w.Len() == 0 {
		return nil, w, nil
	}
	if s.cache != nil {
		if posts, ok := s.cache.GetWindow(ctx, w.Start, w.Len()); ok {
			return posts, w, nil
		}
	}
	posts, err := s.posts.ListRange(ctx, w.Start, w.Len())
	if err != nil {
		return nil, w, err
	}
	if s.cache != nil {
		s.cache.SetWindow(ctx, w.Start, w.Len(), posts)
	}
	return posts, w, nil
}

func (s *postService) ListAll(ctx context.Context) ([]*model.Post, error) {
	return s.posts.List(ctx)
}

func (s *postService) BySlug(ctx context.Context, slug string) (*model.Post, error) {
	return s.posts.FindBySlug(ctx, slug)
}
