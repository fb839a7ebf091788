package handler

import (
	"mime/multipart"

	"github.com/labstack/echo/v4"

	"portafolio/internal/usecase"
	"portafolio/pkg/errors"
	"portafolio/pkg/response"
)

const maxUploadSize = 25 * 1024 * 1024

type ContentHandler struct {
	contentUseCase *usecase.ContentUseCase
}

func NewContentHandler(contentUseCase *usecase.ContentUseCase) *ContentHandler {
	return &ContentHandler{
		contentUseCase: contentUseCase,
	}
}

// Submit accepts the admin form as multipart: text fields, one "image"
// cover file, an optional "file" digital asset and any number of
// "gallery" files.
func (h *ContentHandler) Submit(c echo.Context) error {
	input := usecase.SubmitInput{
		FormType: c.Param("formType"),
		Fields: usecase.ContentFields{
			Title:       c.FormValue("title"),
			Description: c.FormValue("description"),
			Price:       c.FormValue("price"),
			Category:    c.FormValue("category"),
			Issuer:      c.FormValue("issuer"),
			Type:        c.FormValue("type"),
			Tech:        c.FormValue("tech"),
			RepoLink:    c.FormValue("repoLink"),
			DemoLink:    c.FormValue("demoLink"),
			Content:     c.FormValue("content"),
		},
	}

	var closers []multipart.File
	defer func() {
		for _, f := range closers {
			f.Close()
		}
	}()

	if fileHeader, err := c.FormFile("image"); err == nil {
		upload, src, err := openUpload(fileHeader)
		if err != nil {
			return response.Error(c, err)
		}
		closers = append(closers, src)
		input.MainImage = upload
	}

	if fileHeader, err := c.FormFile("file"); err == nil {
		upload, src, err := openUpload(fileHeader)
		if err != nil {
			return response.Error(c, err)
		}
		closers = append(closers, src)
		input.DigitalFile = upload
	}

	if form, err := c.MultipartForm(); err == nil {
		for _, fileHeader := range form.File["gallery"] {
			upload, src, err := openUpload(fileHeader)
			if err != nil {
				return response.Error(c, err)
			}
			closers = append(closers, src)
			input.Gallery = append(input.Gallery, *upload)
		}
	}

	id, err := h.contentUseCase.Submit(c.Request().Context(), input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, map[string]string{
		"id": id,
	})
}

func openUpload(fileHeader *multipart.FileHeader) (*usecase.UploadFile, multipart.File, error) {
	if fileHeader.Size > maxUploadSize {
		return nil, nil, errors.BadRequest("File exceeds the maximum allowed size", nil)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, nil, errors.Internal("Unable to read uploaded file", err)
	}

	return &usecase.UploadFile{
		Reader:      src,
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
	}, src, nil
}
