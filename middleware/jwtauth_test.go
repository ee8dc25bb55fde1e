package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"sibi-cuisine/dto"
	"sibi-cuisine/model"
	"sibi-cuisine/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var testSecret = []byte("test-secret")

// MockUserStore is a mock implementation of services.UserStore.
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) FindAll(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserStore) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserStore) Insert(ctx context.Context, user model.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *MockUserStore) PromoteToAdmin(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserStore) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func protectedRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	chain := append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": c.GetString("email")})
	})
	router.GET("/protected", chain...)
	return router
}

func TestAccessToken(t *testing.T) {
	validToken, err := services.CreateAccessToken(testSecret, dto.TokenRequest{Email: "diner@example.com"})
	assert.NoError(t, err)

	tests := []struct {
		name           string
		authorization  string
		expectedStatus int
	}{
		{
			name:           "Missing header",
			authorization:  "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Malformed header",
			authorization:  validToken,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Wrong scheme",
			authorization:  "Basic " + validToken,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Invalid token",
			authorization:  "Bearer not-a-token",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Valid token",
			authorization:  "Bearer " + validToken,
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := protectedRouter(AccessToken(testSecret))

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authorization != "" {
				req.Header.Set("Authorization", tt.authorization)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Contains(t, w.Body.String(), "diner@example.com")
			}
		})
	}
}

func TestAdminOnly(t *testing.T) {
	token, err := services.CreateAccessToken(testSecret, dto.TokenRequest{Email: "diner@example.com"})
	assert.NoError(t, err)

	tests := []struct {
		name           string
		storedUser     *model.User
		expectedStatus int
	}{
		{
			name:           "Admin role passes",
			storedUser:     &model.User{Email: "diner@example.com", Role: model.RoleAdmin},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Default role forbidden",
			storedUser:     &model.User{Email: "diner@example.com", Role: model.RoleDefault},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "Unknown user forbidden",
			storedUser:     nil,
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(MockUserStore)
			users.On("FindByEmail", mock.Anything, "diner@example.com").Return(tt.storedUser, nil)

			router := protectedRouter(AccessToken(testSecret), AdminOnly(users))

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			users.AssertExpectations(t)
		})
	}
}

func TestAdminOnly_WithoutAccessToken(t *testing.T) {
	// AdminOnly on its own has no identity to check and must refuse.
	users := new(MockUserStore)
	router := protectedRouter(AdminOnly(users))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	users.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
}
