package authController

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/SNAndreatta/prode-master/config"
	"github.com/SNAndreatta/prode-master/database"
	"github.com/SNAndreatta/prode-master/middleware"
	"github.com/SNAndreatta/prode-master/models"
	"github.com/SNAndreatta/prode-master/utils"
)

type tokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

func issueTokens(db *gorm.DB, user *models.User, userAgent string) (*tokenPair, error) {
	accessToken, err := middleware.GenerateAccessToken(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, err
	}

	refreshToken, expiresAt, err := middleware.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	record := models.Token{
		UserID:       user.ID,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
		UserAgent:    userAgent,
	}
	if err := db.Create(&record).Error; err != nil {
		return nil, err
	}

	return &tokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
	}, nil
}

func Signup(c *fiber.Ctx) error {
	var reqData models.User

	// Parse Request Body
	if err := c.BodyParser(&reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	// Check if username already exists
	if err := db.Where("username = ?", reqData.Username).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Username is already taken!", nil)
	}

	// Check if email already exists
	if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}

	// Hash Password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	newUser := models.User{
		Username: reqData.Username,
		Email:    reqData.Email,
		Password: string(hashedPassword),
	}

	if err := db.Create(&newUser).Error; err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to Signup user!", nil)
	}

	utils.SendWelcomeEmail(newUser.Email, newUser.Username)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully.", newUser)
}

func Login(c *fiber.Ctx) error {
	var reqData struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := c.BodyParser(&reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("username = ? AND is_deleted = ?", reqData.Username, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid username or password!", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid username or password!", nil)
	}

	pair, err := issueTokens(db, &user, c.Get("User-Agent"))
	if err != nil {
		log.Printf("Error issuing tokens: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to login!", nil)
	}

	now := time.Now()
	db.Model(&user).Update("last_login", &now)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful.", fiber.Map{
		"user":   user,
		"tokens": pair,
	})
}

// Refresh rotates a refresh token. The old token is revoked so a stolen
// token can only be used once.
func Refresh(c *fiber.Ctx) error {
	var reqData struct {
		RefreshToken string `json:"refresh_token"`
	}

	if err := c.BodyParser(&reqData); err != nil || reqData.RefreshToken == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	claims, err := middleware.ParseToken(reqData.RefreshToken)
	if err != nil || claims["type"] != "refresh" {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid refresh token!", nil)
	}

	db := database.Database.Db

	var record models.Token
	if err := db.Where("refresh_token = ? AND revoked = ?", reqData.RefreshToken, false).First(&record).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid refresh token!", nil)
	}

	if time.Now().After(record.ExpiresAt) {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Refresh token expired!", nil)
	}

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", record.UserID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid refresh token!", nil)
	}

	if err := db.Model(&record).Update("revoked", true).Error; err != nil {
		log.Printf("Error revoking refresh token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to refresh tokens!", nil)
	}

	pair, err := issueTokens(db, &user, c.Get("User-Agent"))
	if err != nil {
		log.Printf("Error issuing tokens: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to refresh tokens!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tokens refreshed.", pair)
}

func Logout(c *fiber.Ctx) error {
	var reqData struct {
		RefreshToken string `json:"refresh_token"`
	}

	if err := c.BodyParser(&reqData); err != nil || reqData.RefreshToken == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	userID := c.Locals("userId").(uint)

	db := database.Database.Db
	result := db.Model(&models.Token{}).
		Where("refresh_token = ? AND user_id = ?", reqData.RefreshToken, userID).
		Update("revoked", true)
	if result.Error != nil {
		log.Printf("Error revoking refresh token: %v", result.Error)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to logout!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged out.", nil)
}

func Profile(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched.", user)
}
