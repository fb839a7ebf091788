package usecase

import (
	"context"

	"portafolio/pkg/errors"
	"portafolio/pkg/logger"
)

type AuthUseCase struct {
	firebaseAuth FirebaseAuthClient
}

func NewAuthUseCase(firebaseAuth FirebaseAuthClient) *AuthUseCase {
	return &AuthUseCase{
		firebaseAuth: firebaseAuth,
	}
}

// Login exchanges admin credentials for a Firebase ID token. The token
// is what gates every admin route; there is no client-side flag.
func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (string, error) {
	token, err := uc.firebaseAuth.SignInWithEmailPassword(ctx, email, password)
	if err != nil {
		if errors.Is(err, "UNAUTHORIZED") {
			return "", err
		}
		logger.Error("Login failed: %v", err)
		return "", errors.Internal("Authentication failed", err)
	}

	return token, nil
}
