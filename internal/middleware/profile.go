package middleware

import (
  "errors"
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/yungbote/gigpay-backend/internal/logger"
  "github.com/yungbote/gigpay-backend/internal/repos"
  "github.com/yungbote/gigpay-backend/internal/types"
)

const profileContextKey = "gigpay/profile"

// ProfileMiddleware resolves the profile_id request header to a stored
// profile and makes it available to handlers. Requests without a resolvable
// profile are rejected before any handler runs.
type ProfileMiddleware struct {
  log         *logger.Logger
  profileRepo repos.ProfileRepo
}

func NewProfileMiddleware(log *logger.Logger, profileRepo repos.ProfileRepo) *ProfileMiddleware {
  middlewareLogger := log.With("Middleware", "ProfileMiddleware")
  return &ProfileMiddleware{log: middlewareLogger, profileRepo: profileRepo}
}

func (pm *ProfileMiddleware) RequireProfile() gin.HandlerFunc {
  return func(c *gin.Context) {
    raw := c.GetHeader("profile_id")
    if raw == "" {
      c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing profile_id header"})
      return
    }
    profileID, err := uuid.Parse(raw)
    if err != nil {
      c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "malformed profile_id header"})
      return
    }
    profile, err := pm.profileRepo.GetByID(c.Request.Context(), nil, profileID)
    if err != nil {
      if errors.Is(err, gorm.ErrRecordNotFound) {
        c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unknown profile"})
        return
      }
      pm.log.Error("Profile lookup failed", "profile_id", raw, "error", err)
      c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "profile lookup failed"})
      return
    }
    c.Set(profileContextKey, profile)
    c.Next()
  }
}

// ProfileFromContext returns the profile resolved by RequireProfile, or nil
// when the middleware did not run.
func ProfileFromContext(c *gin.Context) *types.Profile {
  val, ok := c.Get(profileContextKey)
  if !ok {
    return nil
  }
  profile, ok := val.(*types.Profile)
  if !ok {
    return nil
  }
  return profile
}
