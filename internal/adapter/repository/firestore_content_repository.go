package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"portafolio/internal/domain/entity"
	"portafolio/internal/domain/repository"
	"portafolio/pkg/errors"
)

type firestoreContentRepository struct {
	client *firestore.Client
}

func NewFirestoreContentRepository(client *firestore.Client) repository.ContentRepository {
	return &firestoreContentRepository{
		client: client,
	}
}

func (r *firestoreContentRepository) CreateCertificate(ctx context.Context, cert *entity.Certificate) error {
	r.stamp(&cert.ID, &cert.CreatedAt, entity.FormTypeCertificates)

	_, err := r.client.Collection(entity.FormTypeCertificates).Doc(cert.ID).Set(ctx, cert)
	if err != nil {
		return errors.Internal("Failed to create certificate", err)
	}

	return nil
}

func (r *firestoreContentRepository) CreateProject(ctx context.Context, project *entity.Project) error {
	r.stamp(&project.ID, &project.CreatedAt, entity.FormTypeProjects)

	_, err := r.client.Collection(entity.FormTypeProjects).Doc(project.ID).Set(ctx, project)
	if err != nil {
		return errors.Internal("Failed to create project", err)
	}

	return nil
}

func (r *firestoreContentRepository) CreateProduct(ctx context.Context, product *entity.Product) error {
	r.stamp(&product.ID, &product.CreatedAt, entity.FormTypeProducts)

	_, err := r.client.Collection(entity.FormTypeProducts).Doc(product.ID).Set(ctx, product)
	if err != nil {
		return errors.Internal("Failed to create product", err)
	}

	return nil
}

func (r *firestoreContentRepository) CreatePost(ctx context.Context, post *entity.Post) error {
	r.stamp(&post.ID, &post.CreatedAt, entity.FormTypePosts)

	_, err := r.client.Collection(entity.FormTypePosts).Doc(post.ID).Set(ctx, post)
	if err != nil {
		return errors.Internal("Failed to create post", err)
	}

	return nil
}

func (r *firestoreContentRepository) stamp(id *string, createdAt *time.Time, collection string) {
	if *id == "" {
		*id = r.client.Collection(collection).NewDoc().ID
	}
	if createdAt.IsZero() {
		*createdAt = time.Now()
	}
}

func (r *firestoreContentRepository) ListCertificates(ctx context.Context) ([]*entity.Certificate, error) {
	iter := r.newestFirst(entity.FormTypeCertificates).Documents(ctx)

	var certs []*entity.Certificate
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate certificates", err)
		}

		var cert entity.Certificate
		if err := doc.DataTo(&cert); err != nil {
			return nil, errors.Internal("Failed to parse certificate data", err)
		}
		certs = append(certs, &cert)
	}

	return certs, nil
}

func (r *firestoreContentRepository) ListProjects(ctx context.Context) ([]*entity.Project, error) {
	iter := r.newestFirst(entity.FormTypeProjects).Documents(ctx)

	var projects []*entity.Project
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate projects", err)
		}

		var project entity.Project
		if err := doc.DataTo(&project); err != nil {
			return nil, errors.Internal("Failed to parse project data", err)
		}
		projects = append(projects, &project)
	}

	return projects, nil
}

func (r *firestoreContentRepository) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	iter := r.newestFirst(entity.FormTypeProducts).Documents(ctx)

	var products []*entity.Product
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate products", err)
		}

		var product entity.Product
		if err := doc.DataTo(&product); err != nil {
			return nil, errors.Internal("Failed to parse product data", err)
		}
		products = append(products, &product)
	}

	return products, nil
}

func (r *firestoreContentRepository) ListPosts(ctx context.Context) ([]*entity.Post, error) {
	iter := r.newestFirst(entity.FormTypePosts).Documents(ctx)

	var posts []*entity.Post
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate posts", err)
		}

		var post entity.Post
		if err := doc.DataTo(&post); err != nil {
			return nil, errors.Internal("Failed to parse post data", err)
		}
		posts = append(posts, &post)
	}

	return posts, nil
}

func (r *firestoreContentRepository) newestFirst(collection string) firestore.Query {
	return r.client.Collection(collection).OrderBy("createdAt", firestore.Desc)
}

func (r *firestoreContentRepository) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	doc, err := r.client.Collection(entity.FormTypeProducts).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Product", err)
		}
		return nil, errors.Internal("Failed to get product", err)
	}

	var product entity.Product
	if err := doc.DataTo(&product); err != nil {
		return nil, errors.Internal("Failed to parse product data", err)
	}

	return &product, nil
}

// AppendReview uses ArrayUnion so concurrent submissions on the same
// product never lose an element to a read-modify-write race.
func (r *firestoreContentRepository) AppendReview(ctx context.Context, productID string, review entity.Review) error {
	_, err := r.client.Collection(entity.FormTypeProducts).Doc(productID).Update(ctx, []firestore.Update{
		{Path: "reviews", Value: firestore.ArrayUnion(review)},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Product", err)
		}
		return errors.Internal("Failed to append review", err)
	}

	return nil
}
