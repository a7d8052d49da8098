package handlers

import (
	"DentalDesk/middlewares"
	"DentalDesk/models"
	"DentalDesk/services"
	"DentalDesk/utils"
	"fmt"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	UserService services.UserService
}

func NewAuthHandler(userService services.UserService) *AuthHandler {
	return &AuthHandler{
		UserService: userService,
	}
}

// Register handles new user registration
func (h *AuthHandler) Register(c *gin.Context) {
	var body struct {
		Username  string          `json:"username"`
		Email     string          `json:"email"`
		Password  string          `json:"password"`
		Role      models.UserRole `json:"role"`
		FirstName string          `json:"first_name"`
		LastName  string          `json:"last_name"`
		Phone     *string         `json:"phone"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}

	user := models.User{
		Username:  body.Username,
		Email:     body.Email,
		Role:      body.Role,
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Phone:     body.Phone,
	}

	ctx := c.Request.Context()
	if err := h.UserService.ValidateAndCreateUser(ctx, &user, body.Password); err != nil {
		c.JSON(400, gin.H{"error": fmt.Sprintf("Validation failed: %v", err)})
		return
	}

	c.JSON(201, user)
}

// Login authenticates the user and returns tokens along with user info
func (h *AuthHandler) Login(c *gin.Context) {
	var credentials struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := c.ShouldBindJSON(&credentials); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}

	ctx := c.Request.Context()
	user, err := h.UserService.AuthenticateUser(ctx, credentials.Username, credentials.Password)
	if err != nil {
		c.JSON(401, gin.H{"error": "Invalid username or password"})
		return
	}

	accessToken, refreshToken, err := utils.GenerateTokens(user.ID, string(user.Role))
	if err != nil {
		c.JSON(500, gin.H{"error": fmt.Sprintf("Failed to generate tokens: %v", err)})
		return
	}

	utils.SetAuthCookies(c, accessToken, refreshToken)
	c.JSON(200, gin.H{
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
		"user":         user,
	})
}

// Session returns the persisted session snapshot, if any.
func (h *AuthHandler) Session(c *gin.Context) {
	session, err := h.UserService.CurrentSession(c.Request.Context())
	if err != nil {
		middlewares.RespondError(c, err)
		return
	}
	c.JSON(200, session)
}

// RefreshToken refreshes the user's access token
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	token, err := c.Cookie("refreshToken")
	if err != nil || token == "" {
		c.JSON(400, gin.H{"error": "Missing refresh token"})
		return
	}

	claims, err := utils.ValidateToken(token)
	if err != nil {
		c.JSON(401, gin.H{"error": "Invalid refresh token"})
		return
	}

	accessToken, err := utils.GenerateAccessToken(claims.UserID, claims.Role)
	if err != nil {
		c.JSON(500, gin.H{"error": fmt.Sprintf("Failed to generate access token: %v", err)})
		return
	}

	c.JSON(200, gin.H{
		"accessToken": accessToken,
	})
}

// Logoff logs the user out, clearing the persisted session and cookies
func (h *AuthHandler) Logoff(c *gin.Context) {
	if err := h.UserService.Logout(c.Request.Context()); err != nil {
		middlewares.RespondError(c, err)
		return
	}
	utils.ClearAuthCookies(c)
	c.Status(200)
}

// ChangePassword changes the caller's password after verifying the old one
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var body struct {
		OldPassword string `json:"old_password"`
		NewPassword string `json:"new_password"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}

	userID, err := middlewares.ExtractUserIDFromContext(c.Request.Context())
	if err != nil {
		c.JSON(401, gin.H{"error": "User not found in context"})
		return
	}

	if err := h.UserService.ChangePassword(c.Request.Context(), userID, body.OldPassword, body.NewPassword); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	c.Status(200)
}

// RequestPasswordReset issues a reset code to the given email
func (h *AuthHandler) RequestPasswordReset(c *gin.Context) {
	var body struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.UserService.RequestPasswordReset(c.Request.Context(), body.Email); err != nil {
		middlewares.RespondError(c, err)
		return
	}
	c.Status(200)
}

// ConfirmPasswordReset consumes a reset code and sets the new password
func (h *AuthHandler) ConfirmPasswordReset(c *gin.Context) {
	var body struct {
		Email       string `json:"email"`
		Code        string `json:"code"`
		NewPassword string `json:"new_password"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.UserService.ConfirmPasswordReset(c.Request.Context(), body.Email, body.Code, body.NewPassword); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	c.Status(200)
}

// GetAllUsers lists the staff accounts
func (h *AuthHandler) GetAllUsers(c *gin.Context) {
	users, err := h.UserService.GetAllUsers(c.Request.Context())
	if err != nil {
		middlewares.RespondError(c, err)
		return
	}
	c.JSON(200, users)
}

// DeleteAccount removes a user's account
func (h *AuthHandler) DeleteAccount(c *gin.Context) {
	if err := h.UserService.DeleteUser(c.Request.Context(), c.Param("user_id")); err != nil {
		middlewares.RespondError(c, err)
		return
	}
	c.Status(204)
}
