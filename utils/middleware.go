package utils

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RoleVendor = "vendor"

// VendorMiddleware authenticates a vendor request and places the vendor id
// in the request context. Handlers read it with c.Get("vendor_id") — the
// authenticated identity is never kept in process-wide state.
func VendorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		role, err := ExtractRoleFromToken(authHeader)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		if role != RoleVendor {
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden: Vendor access required"})
			c.Abort()
			return
		}

		vendorID, err := ExtractVendorIDFromToken(authHeader)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token ID"})
			c.Abort()
			return
		}
		c.Set("vendor_id", vendorID)

		c.Next()
	}
}

func ExtractRoleFromToken(authHeader string) (string, error) {
	claims, err := claimsFromHeader(authHeader)
	if err != nil {
		return "", err
	}

	role, ok := claims["role"].(string)
	if !ok {
		return "", errors.New("role not found in token")
	}
	return role, nil
}

func ExtractVendorIDFromToken(authHeader string) (string, error) {
	claims, err := claimsFromHeader(authHeader)
	if err != nil {
		return "", err
	}

	vendorID, ok := claims["vendor_id"].(string)
	if !ok || vendorID == "" {
		return "", errors.New("vendor id not found or invalid type")
	}
	return vendorID, nil
}

func claimsFromHeader(authHeader string) (map[string]interface{}, error) {
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, errors.New("invalid token format")
	}
	return ValidateToken(strings.TrimPrefix(authHeader, "Bearer "))
}

// RequestID tags each request with an id for log correlation.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set("rid", rid)
		c.Writer.Header().Set("X-Request-ID", rid)
		c.Next()
	}
}

func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		rid, _ := c.Get("rid")
		log.Printf("[http] rid=%v %s %s status=%d dur=%s",
			rid, c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}
