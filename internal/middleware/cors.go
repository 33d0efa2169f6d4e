package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS allows the board front end to call the API from another origin.
// An empty origin list or "*" allows every origin.
func (mw Middleware) CORS() gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", HeaderRequestID},
		ExposeHeaders: []string{"Location", HeaderRequestID},
		MaxAge:        12 * time.Hour,
	}

	if mw.AllowsAnyOrigin() {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = mw.cfg.AllowedOrigins
	}

	return cors.New(cfg)
}

// AllowsAnyOrigin reports whether CORS is open to every origin.
func (mw Middleware) AllowsAnyOrigin() bool {
	origins := mw.cfg.AllowedOrigins
	return len(origins) == 0 || (len(origins) == 1 && origins[0] == "*")
}
