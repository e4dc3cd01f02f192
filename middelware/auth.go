package middelware

import (
	"elevatorops-console/dal"
	"elevatorops-console/models"
	"elevatorops-console/utils/logger"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Context keys set by AuthMiddleware
const (
	ContextKeyClaims = "jwt_claims"
	ContextKeyUserID = "user_id"
	ContextKeyActor  = "actor"
)

var (
	errMissingToken = errors.New("authorization header is required")
	errTokenExpired = errors.New("token has expired")
)

// JWTManager reads the facts the console needs from backend-issued tokens. The
// signature is not checked here: the backend verifies every forwarded call.
type JWTManager struct {
	Config *models.Config
	Logger logger.Logger
	parser *jwt.Parser
	now    func() time.Time
}

// NewJWTManager creates a new JWT manager
func NewJWTManager(cfg *models.Config, log logger.Logger) *JWTManager {
	return &JWTManager{
		Config: cfg,
		Logger: log,
		parser: jwt.NewParser(),
		now:    time.Now,
	}
}

// InspectToken decodes the claims of a token and rejects expired ones
func (j *JWTManager) InspectToken(tokenString string) (*models.JWTClaims, error) {
	claims := &models.JWTClaims{}
	if _, _, err := j.parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("malformed token: %w", err)
	}
	if claims.ExpiresAt != nil && !claims.ExpiresAt.Time.After(j.now()) {
		return nil, errTokenExpired
	}
	return claims, nil
}

// bearerToken extracts the token from "Bearer <token>"
func bearerToken(header string) (string, error) {
	if header == "" {
		return "", errMissingToken
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", errors.New("authorization header must be in format: Bearer <token>")
	}
	return strings.TrimSpace(parts[1]), nil
}

// AuthMiddleware resolves the caller's token, falling back to the configured
// service token, and attaches it to the request context for the gateway
func (j *JWTManager) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := bearerToken(c.GetHeader("Authorization"))
		if errors.Is(err, errMissingToken) && j.Config.APIToken != "" {
			tokenString, err = j.Config.APIToken, nil
		}
		if err != nil {
			j.Logger.Warnf("Rejected request without usable token: %v", err)
			abortUnauthorized(c, "Missing or invalid Authorization header", err)
			return
		}

		claims, err := j.InspectToken(tokenString)
		if err != nil {
			j.Logger.Warnf("Token inspection failed: %v", err)
			abortUnauthorized(c, "Invalid or expired token", err)
			return
		}

		actor := models.ActorFromClaims(claims)
		c.Set(ContextKeyClaims, claims)
		c.Set(ContextKeyUserID, actor.ID)
		c.Set(ContextKeyActor, actor)
		c.Request = c.Request.WithContext(dal.WithToken(c.Request.Context(), tokenString))

		j.Logger.Debugf("Request authorized for actor %s", actor.ID)
		c.Next()
	}
}

// RequireRole middleware checks the role claim of the caller
func (j *JWTManager) RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := ActorFromContext(c)
		if !ok {
			abortUnauthorized(c, "Authentication required", errors.New("user not authenticated"))
			return
		}
		for _, role := range roles {
			if strings.EqualFold(actor.Role, role) {
				c.Next()
				return
			}
		}

		j.Logger.Warnf("Actor %s with role %q lacks one of %v", actor.ID, actor.Role, roles)
		c.JSON(http.StatusForbidden, models.APIResponse{
			Status:  "error",
			Code:    http.StatusForbidden,
			Message: "Insufficient permissions",
			Error: &models.APIError{
				Type:    "AuthorizationError",
				Details: fmt.Sprintf("Required role: %s", strings.Join(roles, " or ")),
			},
		})
		c.Abort()
	}
}

// ActorFromContext returns the actor resolved by AuthMiddleware
func ActorFromContext(c *gin.Context) (models.Actor, bool) {
	v, exists := c.Get(ContextKeyActor)
	if !exists {
		return models.Actor{}, false
	}
	actor, ok := v.(models.Actor)
	return actor, ok
}

func abortUnauthorized(c *gin.Context, message string, err error) {
	c.JSON(http.StatusUnauthorized, models.APIResponse{
		Status:  "error",
		Code:    http.StatusUnauthorized,
		Message: message,
		Error: &models.APIError{
			Type:    "AuthenticationError",
			Details: err.Error(),
		},
	})
	c.Abort()
}
