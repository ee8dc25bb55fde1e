package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"sibi-cuisine/dto"
	"sibi-cuisine/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

var testSecret = []byte("test-secret")

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	TokenController(router, testSecret)
	// A protected probe so issued tokens can be exercised end to end.
	router.GET("/probe", middleware.AccessToken(testSecret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": c.GetString("email")})
	})
	return router
}

func TestIssueToken_AcceptedByProtectedEndpoint(t *testing.T) {
	router := newRouter()

	req := httptest.NewRequest(http.MethodPost, "/jwt", strings.NewReader(`{"email":"diner@example.com","name":"Diner"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.TokenResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)

	probe := httptest.NewRequest(http.MethodGet, "/probe", nil)
	probe.Header.Set("Authorization", "Bearer "+resp.Token)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, probe)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "diner@example.com")
}

func TestIssueToken_RequiresEmail(t *testing.T) {
	router := newRouter()

	req := httptest.NewRequest(http.MethodPost, "/jwt", strings.NewReader(`{"name":"No Email"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestIssueToken_TokenFromOtherSecretRejected(t *testing.T) {
	router := newRouter()

	other := gin.New()
	TokenController(other, []byte("some-other-secret"))
	req := httptest.NewRequest(http.MethodPost, "/jwt", strings.NewReader(`{"email":"diner@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	other.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.TokenResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	probe := httptest.NewRequest(http.MethodGet, "/probe", nil)
	probe.Header.Set("Authorization", "Bearer "+resp.Token)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, probe)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
