package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *Service {
	return NewService("test-secret", "devmatch-backend", time.Hour)
}

func TestGenerateAndValidateToken(t *testing.T) {
	service := newTestService()

	token, err := service.GenerateToken(42, "octocat", "Octo")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "octocat", claims.Username)
	assert.Equal(t, "Octo", claims.Nickname)
	assert.Equal(t, "devmatch-backend", claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestValidateJWTRejectsWrongSecret(t *testing.T) {
	token, err := newTestService().GenerateToken(42, "octocat", "Octo")
	require.NoError(t, err)

	other := NewService("different-secret", "devmatch-backend", time.Hour)
	_, err = other.ValidateJWT(token)
	assert.Error(t, err)
}

func TestValidateJWTRejectsExpiredToken(t *testing.T) {
	service := NewService("test-secret", "devmatch-backend", -time.Minute)

	token, err := service.GenerateToken(42, "octocat", "Octo")
	require.NoError(t, err)

	_, err = service.ValidateJWT(token)
	assert.Error(t, err)
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	_, err := newTestService().ValidateJWT("not-a-token")
	assert.Error(t, err)
}

func setupAuthRouter(service *Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", NewMiddleware(service).RequireAuth(), func(c *gin.Context) {
		userID, _ := GetUserID(c)
		username, _ := GetUsername(c)
		nickname, _ := GetNickname(c)
		c.JSON(http.StatusOK, gin.H{"user_id": userID, "username": username, "nickname": nickname})
	})
	return router
}

func TestRequireAuth(t *testing.T) {
	service := newTestService()
	router := setupAuthRouter(service)

	token, err := service.GenerateToken(42, "octocat", "Octo")
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "valid token", header: "Bearer " + token, wantStatus: http.StatusOK},
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "not bearer", header: token, wantStatus: http.StatusUnauthorized},
		{name: "tampered token", header: "Bearer " + token + "x", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Contains(t, w.Body.String(), `"user_id":42`)
				assert.Contains(t, w.Body.String(), `"nickname":"Octo"`)
			}
		})
	}
}
