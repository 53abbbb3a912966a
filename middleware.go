package main

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/srini-nathan/contract-nft/registry"
)

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Set("request_id", id)
		c.Header("X-Request-Id", id)
		c.Next()
	}
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info().
			Str("request_id", c.GetString("request_id")).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	}
}

// requester returns the authenticated caller identity supplied by the
// environment. Signature verification happens upstream.
func requester(c *gin.Context) (string, bool) {
	r := c.GetHeader("requester")
	if r == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing requester header"})
		return "", false
	}
	return r, true
}

func paramUint(c *gin.Context, name string) (uint64, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return v, true
}

func checkErr(c *gin.Context, err error) {
	c.JSON(errStatus(err), gin.H{"error": err.Error()})
}

func errStatus(err error) int {
	switch {
	case errors.Is(err, registry.ErrNotFound), errors.Is(err, registry.ErrNotMinted):
		return http.StatusNotFound
	case errors.Is(err, registry.ErrDuplicateKey), errors.Is(err, registry.ErrInvalidState):
		return http.StatusConflict
	case errors.Is(err, registry.ErrUnauthorized), errors.Is(err, registry.ErrSelfPurchase):
		return http.StatusForbidden
	case errors.Is(err, registry.ErrInvalidPrice):
		return http.StatusBadRequest
	case errors.Is(err, registry.ErrPaymentMismatch), errors.Is(err, registry.ErrInsufficientFunds):
		return http.StatusPaymentRequired
	default:
		return http.StatusServiceUnavailable
	}
}
