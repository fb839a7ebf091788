package usecase

import (
	"context"
	"io"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"portafolio/internal/domain/entity"
	"portafolio/internal/domain/repository"
	"portafolio/pkg/errors"
	"portafolio/pkg/logger"
)

// UploadFile is one form file ready to stream to storage.
type UploadFile struct {
	Reader      io.Reader
	Filename    string
	ContentType string
}

type ContentFields struct {
	Title       string
	Description string
	Price       string
	Category    string
	Issuer      string
	Type        string
	Tech        string
	RepoLink    string
	DemoLink    string
	Content     string
}

type SubmitInput struct {
	FormType    string
	Fields      ContentFields
	MainImage   *UploadFile
	DigitalFile *UploadFile
	Gallery     []UploadFile
}

// ContentUseCase validates an admin submission, runs its file uploads
// (cover first, then the digital asset, then the gallery in parallel)
// and writes the variant document. Uploads that complete before a later
// failure are not cleaned up.
type ContentUseCase struct {
	contentRepo repository.ContentRepository
	uploader    FileUploader
}

func NewContentUseCase(contentRepo repository.ContentRepository, uploader FileUploader) *ContentUseCase {
	return &ContentUseCase{
		contentRepo: contentRepo,
		uploader:    uploader,
	}
}

func (uc *ContentUseCase) Submit(ctx context.Context, input SubmitInput) (string, error) {
	switch input.FormType {
	case entity.FormTypeCertificates, entity.FormTypeProjects, entity.FormTypeProducts, entity.FormTypePosts:
	default:
		return "", errors.BadRequest("Unknown content type", nil)
	}

	// All validation happens before the first upload.
	if input.MainImage == nil {
		return "", errors.BadRequest("Cover image is required", nil)
	}

	isDigital := input.FormType == entity.FormTypeProducts && input.Fields.Type == entity.ProductTypeDigital
	if isDigital && input.DigitalFile == nil {
		return "", errors.BadRequest("Digital products require a downloadable file", nil)
	}

	var price float64
	if input.FormType == entity.FormTypeProducts {
		parsed, err := strconv.ParseFloat(input.Fields.Price, 64)
		if err != nil || parsed < 0 {
			return "", errors.BadRequest("Invalid price", err)
		}
		price = parsed
	}

	mainImageURL, err := uc.uploader.Upload(ctx, input.MainImage.Reader, input.MainImage.Filename, input.MainImage.ContentType, input.FormType)
	if err != nil {
		return "", errors.Internal("Failed to upload cover image", err)
	}

	var fileURL string
	if isDigital {
		fileURL, err = uc.uploader.Upload(ctx, input.DigitalFile.Reader, input.DigitalFile.Filename, input.DigitalFile.ContentType, "digital_products")
		if err != nil {
			return "", errors.Internal("Failed to upload digital file", err)
		}
	}

	galleryURLs, err := uc.uploadGallery(ctx, input.FormType, input.Gallery)
	if err != nil {
		return "", errors.Internal("Failed to upload gallery", err)
	}

	switch input.FormType {
	case entity.FormTypeCertificates:
		cert := &entity.Certificate{
			Title:    input.Fields.Title,
			Image:    mainImageURL,
			Issuer:   input.Fields.Issuer,
			Category: input.Fields.Category,
		}
		if err := uc.contentRepo.CreateCertificate(ctx, cert); err != nil {
			return "", err
		}
		return cert.ID, nil

	case entity.FormTypeProjects:
		project := &entity.Project{
			Title:       input.Fields.Title,
			Image:       mainImageURL,
			Category:    input.Fields.Category,
			Description: input.Fields.Description,
			Tech:        ParseTechList(input.Fields.Tech),
			RepoLink:    input.Fields.RepoLink,
			DemoLink:    input.Fields.DemoLink,
			Gallery:     galleryURLs,
		}
		if err := uc.contentRepo.CreateProject(ctx, project); err != nil {
			return "", err
		}
		return project.ID, nil

	case entity.FormTypeProducts:
		product := &entity.Product{
			Title:       input.Fields.Title,
			Image:       mainImageURL,
			Price:       price,
			Category:    input.Fields.Category,
			Description: input.Fields.Description,
			Type:        input.Fields.Type,
			Gallery:     galleryURLs,
			Reviews:     []entity.Review{},
			FileURL:     fileURL,
		}
		if err := uc.contentRepo.CreateProduct(ctx, product); err != nil {
			return "", err
		}
		return product.ID, nil

	default:
		post := &entity.Post{
			Title:       input.Fields.Title,
			Image:       mainImageURL,
			Category:    input.Fields.Category,
			Description: input.Fields.Description,
			Content:     input.Fields.Content,
			Likes:       0,
			Comments:    []entity.Comment{},
		}
		if err := uc.contentRepo.CreatePost(ctx, post); err != nil {
			return "", err
		}
		return post.ID, nil
	}
}

// uploadGallery runs uploads concurrently but writes each URL at its
// input index, so the stored gallery keeps submission order regardless
// of completion order.
func (uc *ContentUseCase) uploadGallery(ctx context.Context, formType string, files []UploadFile) ([]string, error) {
	if len(files) == 0 {
		return []string{}, nil
	}

	folder := formType + "_gallery"
	urls := make([]string, len(files))

	g, gctx := errgroup.WithContext(ctx)
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			url, err := uc.uploader.Upload(gctx, file.Reader, file.Filename, file.ContentType, folder)
			if err != nil {
				return err
			}
			urls[i] = url
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logger.Error("Gallery upload failed for %s: %v", formType, err)
		return nil, err
	}

	return urls, nil
}

func (uc *ContentUseCase) ListCertificates(ctx context.Context) ([]*entity.Certificate, error) {
	return uc.contentRepo.ListCertificates(ctx)
}

func (uc *ContentUseCase) ListProjects(ctx context.Context) ([]*entity.Project, error) {
	return uc.contentRepo.ListProjects(ctx)
}

func (uc *ContentUseCase) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	return uc.contentRepo.ListProducts(ctx)
}

func (uc *ContentUseCase) ListPosts(ctx context.Context) ([]*entity.Post, error) {
	return uc.contentRepo.ListPosts(ctx)
}

func (uc *ContentUseCase) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	return uc.contentRepo.GetProduct(ctx, id)
}

// ParseTechList splits a comma-separated technology string, trimming
// each segment. Empty segments are kept as entered.
func ParseTechList(raw string) []string {
	parts := strings.Split(raw, ",")
	tech := make([]string, len(parts))
	for i, part := range parts {
		tech[i] = strings.TrimSpace(part)
	}
	return tech
}
