package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stpnv0/StayBooker/internal/auth"
	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stpnv0/StayBooker/internal/middleware/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

// whoami answers with the resolved identity so tests can see what the middleware set.
func setupAuthRouter(t *testing.T, tokens TokenParser, revoked RevocationChecker, opts ...AuthOption) http.Handler {
	t.Helper()

	r := ginext.New("test")
	r.Use(Authenticate(tokens, revoked, newTestLogger(t), opts...))
	r.GET("/whoami", func(c *ginext.Context) {
		tokenID := ""
		if claims := Claims(c); claims != nil {
			tokenID = claims.TokenID
		}
		c.JSON(http.StatusOK, ginext.H{"user_id": ActorID(c), "token_id": tokenID})
	})
	return r
}

func doGet(r http.Handler, headers map[string]string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestAuthenticate_Anonymous(t *testing.T) {
	r := setupAuthRouter(t, mocks.NewMockTokenParser(t), mocks.NewMockRevocationChecker(t))

	w := doGet(r, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":"","token_id":""}`, w.Body.String())
}

func TestAuthenticate_ValidBearer(t *testing.T) {
	tokens := auth.NewTokenManager("secret", time.Minute, time.Hour)
	pair, err := tokens.Issue("user-1")
	require.NoError(t, err)

	revoked := mocks.NewMockRevocationChecker(t)
	revoked.EXPECT().IsRevoked(mock.Anything, mock.AnythingOfType("string")).Return(false, nil)

	r := setupAuthRouter(t, tokens, revoked)
	w := doGet(r, map[string]string{"Authorization": "Bearer " + pair.Access})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":"user-1"`)
}

func TestAuthenticate_RefreshTokenRejected(t *testing.T) {
	tokens := auth.NewTokenManager("secret", time.Minute, time.Hour)
	pair, err := tokens.Issue("user-1")
	require.NoError(t, err)

	r := setupAuthRouter(t, tokens, mocks.NewMockRevocationChecker(t))
	w := doGet(r, map[string]string{"Authorization": "Bearer " + pair.Refresh})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticate_MalformedHeader(t *testing.T) {
	r := setupAuthRouter(t, mocks.NewMockTokenParser(t), mocks.NewMockRevocationChecker(t))

	w := doGet(r, map[string]string{"Authorization": "Token abc"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticate_RevokedToken(t *testing.T) {
	tokens := mocks.NewMockTokenParser(t)
	tokens.EXPECT().ParseAccess("abc").Return(&domain.TokenClaims{UserID: "user-1", TokenID: "t1"}, nil)

	revoked := mocks.NewMockRevocationChecker(t)
	revoked.EXPECT().IsRevoked(mock.Anything, "t1").Return(true, nil)

	r := setupAuthRouter(t, tokens, revoked)
	w := doGet(r, map[string]string{"Authorization": "Bearer abc"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticate_RevocationStoreDown(t *testing.T) {
	tokens := mocks.NewMockTokenParser(t)
	tokens.EXPECT().ParseAccess("abc").Return(&domain.TokenClaims{UserID: "user-1", TokenID: "t1"}, nil)

	revoked := mocks.NewMockRevocationChecker(t)
	revoked.EXPECT().IsRevoked(mock.Anything, "t1").Return(false, errors.New("connection refused"))

	r := setupAuthRouter(t, tokens, revoked)
	w := doGet(r, map[string]string{"Authorization": "Bearer abc"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestAuthenticate_TrustHeader(t *testing.T) {
	t.Run("ignored unless enabled", func(t *testing.T) {
		r := setupAuthRouter(t, mocks.NewMockTokenParser(t), mocks.NewMockRevocationChecker(t))

		w := doGet(r, map[string]string{TrustHeader: "guest@example.com"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"user_id":""`)
	})

	t.Run("resolves user by email", func(t *testing.T) {
		users := mocks.NewMockUserLookup(t)
		users.EXPECT().GetByEmail(mock.Anything, "guest@example.com").
			Return(&domain.User{ID: "user-7", Email: "guest@example.com"}, nil)

		r := setupAuthRouter(t, mocks.NewMockTokenParser(t), mocks.NewMockRevocationChecker(t), WithTrustHeader(users))
		w := doGet(r, map[string]string{TrustHeader: "guest@example.com"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"user_id":"user-7"`)
	})

	t.Run("unknown user", func(t *testing.T) {
		users := mocks.NewMockUserLookup(t)
		users.EXPECT().GetByEmail(mock.Anything, "nobody@example.com").Return(nil, domain.ErrUserNotFound)

		r := setupAuthRouter(t, mocks.NewMockTokenParser(t), mocks.NewMockRevocationChecker(t), WithTrustHeader(users))
		w := doGet(r, map[string]string{TrustHeader: "nobody@example.com"})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
