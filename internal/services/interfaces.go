package services

import (
	"context"

	"zoo-visitor-platform/internal/models"
)

// OrderAPI is the client contract for the remote order service
type OrderAPI interface {
	Create(ctx context.Context, token string, req *models.OrderCreateRequest) (*models.Order, error)
	ListMine(ctx context.Context, token string) ([]*models.Order, error)
}

// PaymentMethodAPI is the client contract for the remote payment-method service
type PaymentMethodAPI interface {
	List(ctx context.Context, token string) ([]*models.PaymentMethod, error)
	Create(ctx context.Context, token string, req *models.CreatePaymentMethodRequest) (*models.PaymentMethod, error)
	Update(ctx context.Context, token string, id int, req *models.UpdatePaymentMethodRequest) (*models.PaymentMethod, error)
	Delete(ctx context.Context, token string, id int) error
}

// AuthAPI is the client contract for the remote auth service
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}

// LoginResult carries the bearer token and the optional user record the auth
// service returns alongside it.
type LoginResult struct {
	Token string
	User  *models.User
}

// ArticleAPI is the client contract for the remote article service
type ArticleAPI interface {
	List(ctx context.Context) ([]*models.Article, error)
	GetByID(ctx context.Context, id int) (*models.Article, error)
	Create(ctx context.Context, token string, req *models.CreateArticleRequest) (*models.Article, error)
	Update(ctx context.Context, token string, id int, req *models.UpdateArticleRequest) (*models.Article, error)
	Delete(ctx context.Context, token string, id int) error
}

// WeatherAPI provides the zoo-grounds forecast for the homepage widget
type WeatherAPI interface {
	Forecast(ctx context.Context) (*WeatherReport, error)
}

// AssistantAPI answers single-turn visitor questions about the zoo's animals
type AssistantAPI interface {
	Ask(ctx context.Context, question string) (string, error)
}

// OrderHistoryAPI reads a user's purchase history, falling back to the local
// journal when the remote order service cannot be reached.
type OrderHistoryAPI interface {
	History(ctx context.Context, token string, userID int) ([]*models.Order, error)
}

// CheckoutAPI coordinates payment validation and order submission
type CheckoutAPI interface {
	Submit(ctx context.Context, req *CheckoutRequest) (*CheckoutResult, error)
	PrefillFromSaved(ctx context.Context, token string, methodID int) (models.CardForm, error)
}
