package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/soundline/storefront/internal/hash"
	"github.com/soundline/storefront/internal/middleware/session"
	"github.com/soundline/storefront/internal/models"
	"github.com/soundline/storefront/internal/repo"
	"github.com/soundline/storefront/internal/service"
)

type testEnv struct {
	E         *echo.Echo
	Repo      *repo.GormRepo
	JWTSecret []byte
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.Review{},
	))

	r := repo.New(db)
	secret := []byte("test-jwt-secret")

	deps := &Deps{
		AuthHandler:    &AuthHTTP{Svc: &service.AuthService{Repo: r}, JWTSecret: secret},
		CatalogHandler: &CatalogHTTP{Svc: &service.CatalogService{Repo: r}},
		OrderHandler:   &OrderHTTP{Svc: &service.OrderService{Repo: r}},
		ReviewHandler:  &ReviewHTTP{Svc: &service.ReviewService{Repo: r}},
		JWTSecret:      secret,
	}

	e := echo.New()
	Register(e, deps)

	return &testEnv{E: e, Repo: r, JWTSecret: secret}
}

func (env *testEnv) createUser(t *testing.T, username, password string) *models.User {
	t.Helper()

	passwordHash, err := hash.HashPassword(password)
	require.NoError(t, err)

	user := &models.User{
		Username:     username,
		PasswordHash: passwordHash,
		Role:         models.RoleCustomer,
		Name:         username,
	}
	require.NoError(t, env.Repo.DB.Create(user).Error)
	return user
}

func (env *testEnv) sessionCookie(t *testing.T, user *models.User) *http.Cookie {
	t.Helper()

	token, exp, err := session.Sign(user.ID, user.Role, env.JWTSecret)
	require.NoError(t, err)
	return session.CreateCookie(token, exp)
}

func (env *testEnv) createProduct(t *testing.T, name, category, brand, price string) *models.Product {
	t.Helper()

	prod := &models.Product{
		Name:        name,
		Description: name + " description",
		Price:       decimal.RequireFromString(price),
		StockStatus: models.StockInStock,
		Category:    category,
		Brand:       brand,
		Images:      []string{"https://example.com/p.jpg"},
	}
	require.NoError(t, env.Repo.DB.Create(prod).Error)
	return prod
}

func (env *testEnv) doJSON(t *testing.T, method, target string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}

	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}
