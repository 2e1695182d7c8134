package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixmate/internal/application/user/usecases"
	"fixmate/internal/interfaces/http/handlers/testutil"
	"fixmate/internal/shared/errors"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockSignupUC struct {
	result *usecases.UserResult
	err    error
}

func (m *mockSignupUC) Execute(ctx context.Context, cmd usecases.SignupCommand) (*usecases.UserResult, error) {
	return m.result, m.err
}

type mockLoginUC struct {
	result *usecases.UserResult
	err    error
}

func (m *mockLoginUC) Execute(ctx context.Context, cmd usecases.LoginCommand) (*usecases.UserResult, error) {
	return m.result, m.err
}

func testUserResult() *usecases.UserResult {
	return &usecases.UserResult{
		ID:        1,
		Name:      "Alice",
		Email:     "alice@example.com",
		CreatedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

func newTestAuthHandler(signupUC SignupExecutor, loginUC LoginExecutor) *AuthHandler {
	return NewAuthHandler(signupUC, loginUC, testutil.NewMockLogger())
}

// =====================================================================
// POST /api/auth/signup
// =====================================================================

func TestAuthHandler_Signup_Success(t *testing.T) {
	handler := newTestAuthHandler(&mockSignupUC{result: testUserResult()}, nil)

	reqBody := SignupRequest{Name: "Alice", Email: "alice@example.com", Password: "secret123"}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/signup", reqBody)
	handler.Signup(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp AuthResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.OK)
	require.NotNil(t, resp.User)
	assert.Equal(t, uint(1), resp.User.ID)
	assert.Equal(t, "Alice", resp.User.Name)
	assert.Equal(t, "alice@example.com", resp.User.Email)
}

func TestAuthHandler_Signup_MalformedBody(t *testing.T) {
	handler := newTestAuthHandler(&mockSignupUC{}, nil)

	c, w := testutil.NewTestContextWithRawBody(http.MethodPost, "/api/auth/signup", "{not json")
	handler.Signup(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body testutil.ErrorBody
	require.NoError(t, testutil.ParseResponse(w, &body))
	assert.Equal(t, "Missing name, email or password", body.Error)
}

func TestAuthHandler_Signup_DuplicateEmail(t *testing.T) {
	uc := &mockSignupUC{err: errors.NewConflictError("Email already registered")}
	handler := newTestAuthHandler(uc, nil)

	reqBody := SignupRequest{Name: "Alice", Email: "alice@example.com", Password: "secret123"}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/signup", reqBody)
	handler.Signup(c)

	// A duplicate email is reported as a plain 400, not 409.
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body testutil.ErrorBody
	require.NoError(t, testutil.ParseResponse(w, &body))
	assert.Equal(t, "Email already registered", body.Error)
}

// =====================================================================
// POST /api/auth/login
// =====================================================================

func TestAuthHandler_Login_Success(t *testing.T) {
	handler := newTestAuthHandler(nil, &mockLoginUC{result: testUserResult()})

	reqBody := LoginRequest{Email: "alice@example.com", Password: "secret123"}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/login", reqBody)
	handler.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp AuthResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.OK)
	require.NotNil(t, resp.User)
	assert.Equal(t, "alice@example.com", resp.User.Email)
}

func TestAuthHandler_Login_MalformedBody(t *testing.T) {
	handler := newTestAuthHandler(nil, &mockLoginUC{})

	c, w := testutil.NewTestContextWithRawBody(http.MethodPost, "/api/auth/login", "")
	handler.Login(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body testutil.ErrorBody
	require.NoError(t, testutil.ParseResponse(w, &body))
	assert.Equal(t, "Missing email or password", body.Error)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	uc := &mockLoginUC{err: errors.NewUnauthorizedError("Invalid credentials")}
	handler := newTestAuthHandler(nil, uc)

	reqBody := LoginRequest{Email: "alice@example.com", Password: "wrong"}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/login", reqBody)
	handler.Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var body testutil.ErrorBody
	require.NoError(t, testutil.ParseResponse(w, &body))
	assert.Equal(t, "Invalid credentials", body.Error)
}
