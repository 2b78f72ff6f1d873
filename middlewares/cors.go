package middlewares

import (
	"fmt"
	"net/http"
	"slices"
	"time"

	"transparencyhub/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const wildcard = "*"

var allMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodHead,
	http.MethodOptions,
}

// CORS builds the cross-origin middleware for the given policy.
func CORS(policy config.CORS) (gin.HandlerFunc, error) {
	cfg := CORSConfig(policy)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid cors policy: %w", err)
	}
	handler := cors.New(cfg)
	if !slices.Contains(policy.AllowHeaders, wildcard) {
		return handler, nil
	}

	// gin-contrib/cors only emits a fixed header list, and a literal "*" is
	// not honoured on credentialed requests, so preflights get the
	// requested headers echoed back before the cors handler runs.
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions && c.GetHeader("Origin") != "" {
			if requested := c.GetHeader("Access-Control-Request-Headers"); requested != "" {
				c.Header("Access-Control-Allow-Headers", requested)
			}
		}
		handler(c)
	}, nil
}

// CORSConfig translates a policy into gin-contrib/cors settings.
// Browsers reject a literal "*" origin on credentialed requests, so a
// wildcard policy with credentials echoes the caller's origin instead.
func CORSConfig(policy config.CORS) cors.Config {
	cfg := cors.Config{
		AllowMethods:     policy.AllowMethods,
		AllowHeaders:     policy.AllowHeaders,
		ExposeHeaders:    policy.ExposeHeaders,
		AllowCredentials: policy.AllowCredentials,
		MaxAge:           time.Duration(policy.MaxAgeSeconds) * time.Second,
	}

	if slices.Contains(policy.AllowMethods, wildcard) || len(policy.AllowMethods) == 0 {
		cfg.AllowMethods = allMethods
	}
	// Wildcard headers are echoed per request by CORS.
	if slices.Contains(policy.AllowHeaders, wildcard) {
		cfg.AllowHeaders = nil
	}

	switch {
	case !slices.Contains(policy.AllowOrigins, wildcard):
		cfg.AllowOrigins = policy.AllowOrigins
	case policy.AllowCredentials:
		cfg.AllowOriginFunc = func(string) bool { return true }
	default:
		cfg.AllowAllOrigins = true
	}
	return cfg
}
