package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"boardgames-backend/internal/infrastructure/database"
	"boardgames-backend/internal/shared/response"
)

// Session checks a database connection out of the pool for the lifetime of
// the request, so every statement a handler issues shares one session. The
// connection goes back to the pool when the request finishes. A pool that
// cannot yield a connection within its timeout fails the request with 503.
func Session(db *database.PostgresDB) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := db.Acquire(c.Request.Context())
		if err != nil {
			log.Warn().
				Err(err).
				Str("request_id", c.GetString("request_id")).
				Str("path", c.Request.URL.Path).
				Msg("session acquisition failed")

			response.ServiceUnavailable(c, "service is busy, try again later")
			c.Abort()
			return
		}
		defer conn.Release()

		c.Request = c.Request.WithContext(database.WithSessionConn(c.Request.Context(), conn))
		c.Next()
	}
}
