package repository

import (
	"context"

	"portafolio/internal/domain/entity"
)

type ContentRepository interface {
	CreateCertificate(ctx context.Context, cert *entity.Certificate) error
	CreateProject(ctx context.Context, project *entity.Project) error
	CreateProduct(ctx context.Context, product *entity.Product) error
	CreatePost(ctx context.Context, post *entity.Post) error

	ListCertificates(ctx context.Context) ([]*entity.Certificate, error)
	ListProjects(ctx context.Context) ([]*entity.Project, error)
	ListProducts(ctx context.Context) ([]*entity.Product, error)
	ListPosts(ctx context.Context) ([]*entity.Post, error)

	GetProduct(ctx context.Context, id string) (*entity.Product, error)

	// AppendReview must append atomically; concurrent submissions on the
	// same product rely on it to avoid lost updates.
	AppendReview(ctx context.Context, productID string, review entity.Review) error
}
