package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/ravi-64bit/streetwise/config"

	"github.com/golang-jwt/jwt/v5"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 12 * time.Hour
)

func GenerateTokens(role, vendorID string) (string, string, error) {
	secretKey := config.C.JWTSecret

	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role":      role,
		"vendor_id": vendorID,
		"exp":       time.Now().Add(accessTokenTTL).Unix(),
	})
	access, err := accessToken.SignedString([]byte(secretKey))
	if err != nil {
		return "", "", err
	}

	refreshToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role":      role,
		"vendor_id": vendorID,
		"exp":       time.Now().Add(refreshTokenTTL).Unix(),
	})
	refresh, err := refreshToken.SignedString([]byte(secretKey))
	if err != nil {
		return "", "", err
	}

	return access, refresh, nil
}

func ValidateToken(tokenString string) (jwt.MapClaims, error) {
	secretKey := config.C.JWTSecret

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secretKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("error parsing token: %v", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, errors.New("invalid or missing expiration claim")
	}
	if time.Unix(int64(exp), 0).Before(time.Now()) {
		return nil, errors.New("token has expired")
	}

	return claims, nil
}

func RefreshTokens(oldRefreshToken string) (string, string, error) {
	claims, err := ValidateToken(oldRefreshToken)
	if err != nil {
		return "", "", fmt.Errorf("invalid refresh token: %v", err)
	}

	role, _ := claims["role"].(string)
	vendorID, ok := claims["vendor_id"].(string)
	if !ok || vendorID == "" {
		return "", "", errors.New("vendor id not found in refresh token")
	}

	return GenerateTokens(role, vendorID)
}
