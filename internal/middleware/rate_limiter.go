package middleware

import (
	"math"
	"net/http"
	"strconv"
	"time"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/ErwanMettouchi/DevJobHub-backend/internal/utilities"
)

// DefaultRequestsPerSecond is used when no positive rate is configured.
const DefaultRequestsPerSecond uint = 5

func keyFunc(c *gin.Context) string {
	userID, err := utilities.ExtractUserID(c)
	if err != nil {
		return "ip: " + c.ClientIP()
	}
	return "user: " + userID.String()
}

func errorHandler(c *gin.Context, info ratelimit.Info) {
	retry := int(math.Ceil(time.Until(info.ResetTime).Seconds()))
	if retry < 1 {
		retry = 1
	}
	c.Header("Retry-After", strconv.Itoa(retry))
	c.AbortWithStatusJSON(http.StatusTooManyRequests, utilities.ErrorResponse{
		Error: "Too many requests. Please try again later.",
	})
}

// RateLimiterMiddleware limits every client to reqPerSec requests per
// second. Counters live in Redis when rdb is not nil so that replicas share
// them, in memory otherwise.
func RateLimiterMiddleware(reqPerSec uint, rdb *redis.Client) gin.HandlerFunc {
	if reqPerSec == 0 {
		reqPerSec = DefaultRequestsPerSecond
	}

	var store ratelimit.Store
	if rdb != nil {
		store = ratelimit.RedisStore(&ratelimit.RedisOptions{
			RedisClient: rdb,
			Rate:        time.Second,
			Limit:       reqPerSec,
		})
	} else {
		store = ratelimit.InMemoryStore(&ratelimit.InMemoryOptions{
			Rate:  time.Second,
			Limit: reqPerSec,
		})
	}

	return ratelimit.RateLimiter(store, &ratelimit.Options{
		KeyFunc:      keyFunc,
		ErrorHandler: errorHandler,
	})
}
