package usecase

import (
	"context"
	"io"
)

type FirebaseAuthClient interface {
	VerifyToken(ctx context.Context, token string) (string, error)
	SignInWithEmailPassword(ctx context.Context, email, password string) (string, error)
}

// FileUploader stores a file under a namespace folder and returns its
// public URL.
type FileUploader interface {
	Upload(ctx context.Context, file io.Reader, filename, contentType, folder string) (string, error)
}
