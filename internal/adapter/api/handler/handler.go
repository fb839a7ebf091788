package handler

import (
	"portafolio/internal/usecase"
)

var (
	authHandler     *AuthHandler
	cartHandler     *CartHandler
	checkoutHandler *CheckoutHandler
	catalogHandler  *CatalogHandler
	contentHandler  *ContentHandler
	reviewHandler   *ReviewHandler
	messageHandler  *MessageHandler
	healthHandler   *HealthHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	cartUseCase *usecase.CartUseCase,
	checkoutUseCase *usecase.CheckoutUseCase,
	contentUseCase *usecase.ContentUseCase,
	reviewUseCase *usecase.ReviewUseCase,
	messageUseCase *usecase.MessageUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	cartHandler = NewCartHandler(cartUseCase)
	checkoutHandler = NewCheckoutHandler(checkoutUseCase)
	catalogHandler = NewCatalogHandler(contentUseCase)
	contentHandler = NewContentHandler(contentUseCase)
	reviewHandler = NewReviewHandler(reviewUseCase)
	messageHandler = NewMessageHandler(messageUseCase)
	healthHandler = NewHealthHandler()
}

func GetAuthHandler() *AuthHandler         { return authHandler }
func GetCartHandler() *CartHandler         { return cartHandler }
func GetCheckoutHandler() *CheckoutHandler { return checkoutHandler }
func GetCatalogHandler() *CatalogHandler   { return catalogHandler }
func GetContentHandler() *ContentHandler   { return contentHandler }
func GetReviewHandler() *ReviewHandler     { return reviewHandler }
func GetMessageHandler() *MessageHandler   { return messageHandler }
func GetHealthHandler() *HealthHandler     { return healthHandler }
