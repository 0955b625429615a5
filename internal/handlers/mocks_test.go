package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"zoo-visitor-platform/internal/middleware"
	"zoo-visitor-platform/internal/models"
	"zoo-visitor-platform/internal/services"
)

type mockCheckoutAPI struct {
	mock.Mock
}

func (m *mockCheckoutAPI) Submit(ctx context.Context, req *services.CheckoutRequest) (*services.CheckoutResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.CheckoutResult), args.Error(1)
}

func (m *mockCheckoutAPI) PrefillFromSaved(ctx context.Context, token string, methodID int) (models.CardForm, error) {
	args := m.Called(ctx, token, methodID)
	return args.Get(0).(models.CardForm), args.Error(1)
}

type mockAuthAPI struct {
	mock.Mock
}

func (m *mockAuthAPI) Login(ctx context.Context, email, password string) (*services.LoginResult, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.LoginResult), args.Error(1)
}

type mockOrderHistoryAPI struct {
	mock.Mock
}

func (m *mockOrderHistoryAPI) History(ctx context.Context, token string, userID int) ([]*models.Order, error) {
	args := m.Called(ctx, token, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Order), args.Error(1)
}

type mockPaymentMethodAPI struct {
	mock.Mock
}

func (m *mockPaymentMethodAPI) List(ctx context.Context, token string) ([]*models.PaymentMethod, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.PaymentMethod), args.Error(1)
}

func (m *mockPaymentMethodAPI) Create(ctx context.Context, token string, req *models.CreatePaymentMethodRequest) (*models.PaymentMethod, error) {
	args := m.Called(ctx, token, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PaymentMethod), args.Error(1)
}

func (m *mockPaymentMethodAPI) Update(ctx context.Context, token string, id int, req *models.UpdatePaymentMethodRequest) (*models.PaymentMethod, error) {
	args := m.Called(ctx, token, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PaymentMethod), args.Error(1)
}

func (m *mockPaymentMethodAPI) Delete(ctx context.Context, token string, id int) error {
	args := m.Called(ctx, token, id)
	return args.Error(0)
}

// newTestStore returns a cookie-backed session store for handler tests
func newTestStore() sessions.Store {
	return sessions.NewCookieStore([]byte("test-secret"))
}

// seedSession writes values into a fresh session and returns the cookies
// that carry it.
func seedSession(t *testing.T, store sessions.Store, values map[string]any) []*http.Cookie {
	t.Helper()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)
	session, err := store.Get(req, middleware.SessionName)
	require.NoError(t, err)
	for k, v := range values {
		session.Values[k] = v
	}
	require.NoError(t, session.Save(req, rec))

	return rec.Result().Cookies()
}

// seedCartCookie stores a cart in a new session
func seedCartCookie(t *testing.T, store sessions.Store, cart *models.Cart) []*http.Cookie {
	t.Helper()
	return seedSession(t, store, map[string]any{"cart": cart.Serialize()})
}

// authedContext attaches a token and user to a request context
func authedContext(req *http.Request, token string, user *models.User) *http.Request {
	ctx := middleware.SetTokenContext(req.Context(), token)
	if user != nil {
		ctx = middleware.SetUserContext(ctx, user)
	}
	return req.WithContext(ctx)
}

// decodeBody parses a JSON response body into dst
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dst))
}
