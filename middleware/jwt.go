package middleware

import (
	"fmt"
	"strings"
	"time"

	"github.com/SNAndreatta/prode-master/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// GenerateAccessToken generates a short-lived access JWT for the user
func GenerateAccessToken(userID uint, username string, role string) (string, error) {
	claims := jwt.MapClaims{
		"sub":      fmt.Sprintf("%d", userID),
		"username": username,
		"role":     role,
		"type":     "access",
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(time.Duration(config.AppConfig.AccessTokenMinutes) * time.Minute).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.AppConfig.JWTKey))
}

// GenerateRefreshToken generates a long-lived refresh JWT. The caller is
// responsible for persisting it so it can be revoked.
func GenerateRefreshToken(userID uint) (string, time.Time, error) {
	expiresAt := time.Now().Add(time.Duration(config.AppConfig.RefreshTokenDays) * 24 * time.Hour)
	claims := jwt.MapClaims{
		"sub":  fmt.Sprintf("%d", userID),
		"type": "refresh",
		"iat":  time.Now().Unix(),
		"exp":  expiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(config.AppConfig.JWTKey))
	return signed, expiresAt, err
}

// ParseToken parses and validates a JWT, returning its claims.
func ParseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.JWTKey), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token payload")
	}
	return claims, nil
}

func userIDFromClaims(claims jwt.MapClaims) (uint, bool) {
	sub, ok := claims["sub"].(string)
	if !ok {
		return 0, false
	}
	var id uint
	if _, err := fmt.Sscanf(sub, "%d", &id); err != nil {
		return 0, false
	}
	return id, true
}

// JWTMiddleware checks for a valid access token in the request and stores
// the user id and role in the request context.
func JWTMiddleware(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Missing or invalid Authorization header", nil)
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid Authorization header format", nil)
	}

	tokenString := authHeader[len("Bearer "):]

	claims, err := ParseToken(tokenString)
	if err != nil {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid or expired token", nil)
	}

	if tokenType, _ := claims["type"].(string); tokenType != "access" {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid token type", nil)
	}

	userID, ok := userIDFromClaims(claims)
	if !ok {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid token payload", nil)
	}

	c.Locals("userId", userID)
	if role, ok := claims["role"].(string); ok {
		c.Locals("role", role)
	}

	return c.Next()
}

// OptionalJWTMiddleware resolves the user when a valid bearer token is
// present but lets anonymous requests through. Used for endpoints whose
// visibility depends on the resource (public vs private tournaments).
func OptionalJWTMiddleware(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return c.Next()
	}

	claims, err := ParseToken(authHeader[len("Bearer "):])
	if err != nil {
		return c.Next()
	}
	if tokenType, _ := claims["type"].(string); tokenType != "access" {
		return c.Next()
	}

	if userID, ok := userIDFromClaims(claims); ok {
		c.Locals("userId", userID)
		if role, ok := claims["role"].(string); ok {
			c.Locals("role", role)
		}
	}
	return c.Next()
}

// AdminMiddleware requires a previously authenticated user with the ADMIN
// role. Must run after JWTMiddleware.
func AdminMiddleware(c *fiber.Ctx) error {
	role, ok := c.Locals("role").(string)
	if !ok || role != "ADMIN" {
		return JsonResponse(c, fiber.StatusForbidden, false, "Admin access required", nil)
	}
	return c.Next()
}

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Validation failed!", errors)
}
