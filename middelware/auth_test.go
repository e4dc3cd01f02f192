package middelware

import (
	"elevatorops-console/dal"
	"elevatorops-console/models"
	"elevatorops-console/utils/logger"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// AuthMiddlewareTestSuite defines a test suite for auth middleware functions
type AuthMiddlewareTestSuite struct {
	suite.Suite
	config  *models.Config
	manager *JWTManager
	router  *gin.Engine
}

func (suite *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.config = &models.Config{AppName: "elevatorops-console"}
	suite.manager = NewJWTManager(suite.config, logger.NewNopLogger())

	suite.router = gin.New()
	suite.router.GET("/whoami", suite.manager.AuthMiddleware(), func(c *gin.Context) {
		actor, _ := ActorFromContext(c)
		token, _ := dal.TokenFromContext(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"actor": actor.ID, "role": actor.Role, "token": token})
	})
	suite.router.GET("/admin", suite.manager.AuthMiddleware(), suite.manager.RequireRole("admin", "dispatcher"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
}

func TestAuthMiddlewareTestSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func signedToken(t require.TestingT, userID, role string, expires time.Time) string {
	claims := models.JWTClaims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("backend-secret"))
	require.NoError(t, err)
	return token
}

func (suite *AuthMiddlewareTestSuite) do(path, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *AuthMiddlewareTestSuite) TestValidTokenSetsActorAndForwardsToken() {
	token := signedToken(suite.T(), "42", "dispatcher", time.Now().Add(time.Hour))

	w := suite.do("/whoami", "Bearer "+token)

	require.Equal(suite.T(), http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(suite.T(), "42", body["actor"])
	assert.Equal(suite.T(), "dispatcher", body["role"])
	assert.Equal(suite.T(), token, body["token"])
}

func (suite *AuthMiddlewareTestSuite) TestExpiredTokenIsRejected() {
	token := signedToken(suite.T(), "42", "dispatcher", time.Now().Add(-time.Minute))

	w := suite.do("/whoami", "Bearer "+token)

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
	var resp models.APIResponse
	require.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(suite.T(), "AuthenticationError", resp.Error.Type)
	assert.Contains(suite.T(), resp.Error.Details, "expired")
}

func (suite *AuthMiddlewareTestSuite) TestMalformedHeaders() {
	testCases := []struct {
		name   string
		header string
	}{
		{"missing", ""},
		{"wrong scheme", "Basic abc"},
		{"empty token", "Bearer   "},
		{"not a jwt", "Bearer not-a-token"},
	}
	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			w := suite.do("/whoami", tc.header)
			assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
		})
	}
}

func (suite *AuthMiddlewareTestSuite) TestServiceTokenFallback() {
	suite.config.APIToken = signedToken(suite.T(), "svc", "admin", time.Now().Add(time.Hour))

	w := suite.do("/whoami", "")

	require.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), `"actor":"svc"`)
}

func (suite *AuthMiddlewareTestSuite) TestRequireRole() {
	allowed := signedToken(suite.T(), "1", "Admin", time.Now().Add(time.Hour))
	denied := signedToken(suite.T(), "2", "technician", time.Now().Add(time.Hour))

	assert.Equal(suite.T(), http.StatusOK, suite.do("/admin", "Bearer "+allowed).Code)
	assert.Equal(suite.T(), http.StatusForbidden, suite.do("/admin", "Bearer "+denied).Code)
}

func TestOriginAllowed(t *testing.T) {
	allowed := []string{"http://localhost:3000", "*.elevatorops.io"}

	assert.True(t, originAllowed(allowed, "http://localhost:3000"))
	assert.True(t, originAllowed(allowed, "https://console.elevatorops.io"))
	assert.False(t, originAllowed(allowed, "https://elevatorops.io.evil.com"))
	assert.False(t, originAllowed(allowed, "http://localhost:4000"))
	assert.True(t, originAllowed([]string{"*"}, "https://anything.example"))
}

func TestCORSPreflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(NewCORSMiddleware(&models.Config{CORSOrigins: []string{"http://localhost:3000"}}).CORS())
	r.GET("/dashboard", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/dashboard", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}
