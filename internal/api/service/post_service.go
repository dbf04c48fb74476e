package service

import (
	"context"

	"mliou521/Inkwell/internal/api/models"
	"mliou521/Inkwell/internal/api/repository"
)

// PostService defines the interface for post-related business logic. Writes
// require an authenticated caller but are not restricted to the author.
type PostService interface {
	Create(ctx context.Context, authorID string, req *models.PostRequest) (*models.Post, error)
	Get(ctx context.Context, id string) (*models.Post, error)
	List(ctx context.Context) ([]models.Post, error)
	Update(ctx context.Context, id string, req *models.PostRequest) (*models.Post, error)
	Delete(ctx context.Context, id string) error
}

type postService struct {
	postRepo repository.PostRepository
}

// NewPostService creates a new PostService.
func NewPostService(postRepo repository.PostRepository) PostService {
	return &postService{postRepo: postRepo}
}

func (s *postService) Create(ctx context.Context, authorID string, req *models.PostRequest) (*models.Post, error) {
	return s.postRepo.Create(ctx, req.Title, req.Content, authorID)
}

func (s *postService) Get(ctx context.Context, id string) (*models.Post, error) {
	return s.postRepo.Find(ctx, id)
}

func (s *postService) List(ctx context.Context) ([]models.Post, error) {
	return s.postRepo.All(ctx)
}

func (s *postService) Update(ctx context.Context, id string, req *models.PostRequest) (*models.Post, error) {
	patch := models.PostPatch{Title: &req.Title, Content: &req.Content}
	return s.postRepo.Update(ctx, id, patch)
}

func (s *postService) Delete(ctx context.Context, id string) error {
	return s.postRepo.Delete(ctx, id)
}
