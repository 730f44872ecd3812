package handler

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jotarsh7/Assignment-3/internal/config"
	"github.com/jotarsh7/Assignment-3/internal/model"
	"github.com/jotarsh7/Assignment-3/internal/repository"
	"github.com/jotarsh7/Assignment-3/internal/utils"
)

type createCall struct{ email, password string }

// fakeUsers records every Create call so tests can assert what reached the
// auth layer.
type fakeUsers struct {
	createCalls []createCall
	createErr   error
	byEmail     map[string]model.User
}

func (f *fakeUsers) Create(_ context.Context, email, password string, _ int) (string, error) {
	f.createCalls = append(f.createCalls, createCall{email: email, password: password})
	if f.createErr != nil {
		return "", f.createErr
	}
	return "user-1", nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (model.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return model.User{}, sql.ErrNoRows
	}
	return u, nil
}

func (f *fakeUsers) GetByID(_ context.Context, id string) (model.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return model.User{}, sql.ErrNoRows
}

type fakeTokens struct{ stored, revoked int }

func (f *fakeTokens) StoreRefresh(context.Context, string, string, time.Time) error {
	f.stored++
	return nil
}
func (f *fakeTokens) ValidateRefresh(context.Context, string) (string, error) {
	return "", sql.ErrNoRows
}
func (f *fakeTokens) RevokeByHash(context.Context, string) error { f.revoked++; return nil }
func (f *fakeTokens) RevokeAllForUser(context.Context, string) error {
	f.revoked++
	return nil
}

func testCfg() config.Config {
	return config.Config{
		JWTSecret:      "test-secret",
		AccessTTLMin:   15,
		RefreshTTLDays: 7,
		BcryptCost:     4,
	}
}

func postJSON(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRegisterShortPasswordNeverReachesUserStore(t *testing.T) {
	users := &fakeUsers{}
	h := NewAuthHandler(testCfg(), users, &fakeTokens{})

	c, rec := postJSON(`{"email":"a@example.com","password":"12345"}`)
	require.NoError(t, h.Register(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Password must be at least 6 characters.")
	assert.Empty(t, users.createCalls, "short password must be rejected before the auth layer")
}

func TestRegisterForwardsPasswordVerbatim(t *testing.T) {
	users := &fakeUsers{}
	tokens := &fakeTokens{}
	h := NewAuthHandler(testCfg(), users, tokens)

	c, rec := postJSON(`{"email":"A@Example.com","password":"123456"}`)
	require.NoError(t, h.Register(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, users.createCalls, 1)
	assert.Equal(t, "a@example.com", users.createCalls[0].email)
	assert.Equal(t, "123456", users.createCalls[0].password)
	assert.Equal(t, 1, tokens.stored, "a refresh token is stored on register")
	assert.Contains(t, rec.Body.String(), `"user-1"`)
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	users := &fakeUsers{createErr: repository.ErrEmailExists}
	h := NewAuthHandler(testCfg(), users, &fakeTokens{})

	c, rec := postJSON(`{"email":"a@example.com","password":"123456"}`)
	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestLoginVerifiesCredentials(t *testing.T) {
	hash, err := utils.HashPassword("secret123", 4)
	require.NoError(t, err)
	users := &fakeUsers{byEmail: map[string]model.User{
		"a@example.com": {ID: "user-1", Email: "a@example.com", PasswordHash: hash},
	}}
	h := NewAuthHandler(testCfg(), users, &fakeTokens{})

	c, rec := postJSON(`{"email":"a@example.com","password":"secret123"}`)
	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"access"`)

	c, rec = postJSON(`{"email":"a@example.com","password":"wrong-pass"}`)
	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	c, rec = postJSON(`{"email":"nobody@example.com","password":"secret123"}`)
	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
