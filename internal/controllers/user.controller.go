package controllers

import (
	"log"
	"net/http"
	"os"
	"time"

	"unityeats/internal/models"
	"unityeats/internal/repository"
	"unityeats/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type UserController struct {
	userRepo   repository.UserRepository
	ngoRepo    repository.NGORepository
	resetRepo  repository.ResetPasswordRepository
	mailConfig utils.MailConfig
}

func NewUserController(userRepo repository.UserRepository, ngoRepo repository.NGORepository, resetRepo repository.ResetPasswordRepository, mailConfig utils.MailConfig) *UserController {
	return &UserController{
		userRepo:   userRepo,
		ngoRepo:    ngoRepo,
		resetRepo:  resetRepo,
		mailConfig: mailConfig,
	}
}

type RegisterRequest struct {
	Name     string          `json:"name" binding:"required"`
	Email    string          `json:"email" binding:"required,email"`
	Password string          `json:"password" binding:"required,min=8"`
	Role     models.UserRole `json:"role" binding:"required,oneof=donor ngo"`
	Phone    string          `json:"phone"`
	Address  string          `json:"address"`
	Bio      string          `json:"bio"`
	Website  string          `json:"website"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Code        string `json:"code" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

func issueToken(user *models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    string(user.Role),
		"exp":     time.Now().Add(time.Hour * 72).Unix(),
	})
	return token.SignedString([]byte(os.Getenv("JWT_SECRET_KEY")))
}

func (uc *UserController) RegisterUser(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	exists, err := uc.userRepo.EmailExists(req.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create user",
			"error":   err.Error(),
		})
		return
	}
	if exists {
		c.JSON(http.StatusConflict, gin.H{
			"status":  "error",
			"message": "Email is already registered",
			"error":   "An account with this email already exists",
		})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create user",
			"error":   err.Error(),
		})
		return
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hash),
		Role:     req.Role,
		Phone:    req.Phone,
		Address:  req.Address,
		Bio:      req.Bio,
		Website:  req.Website,
	}

	if err := uc.userRepo.CreateUser(&user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create user",
			"error":   err.Error(),
		})
		return
	}

	// An NGO account starts with an unverified profile; the directory only
	// lists it once an admin flips the status.
	if user.Role == models.RoleNGO {
		profile := models.NGOProfile{
			UserID:             user.ID,
			VerificationStatus: models.VerificationPending,
		}
		if err := uc.ngoRepo.CreateProfile(&profile); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Failed to create NGO profile",
				"error":   err.Error(),
			})
			return
		}
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "User registered. Please verify your email.",
		"data":    user,
	})
}

func (uc *UserController) LoginUser(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	user, err := uc.userRepo.GetUserByEmail(req.Email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Invalid email or password",
			"error":   "Authentication failed",
		})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Invalid email or password",
			"error":   "Authentication failed",
		})
		return
	}

	tokenString, err := issueToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Could not generate token",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Login successful",
		"data": gin.H{
			"token": tokenString,
			"user":  user,
		},
	})
}

func (uc *UserController) GetCurrentUser(c *gin.Context) {
	user, err := uc.userRepo.GetUserByID(c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "User not found",
			"error":   "No user exists with the provided ID",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "User retrieved successfully",
		"data":    user,
	})
}

type UpdateProfileRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Avatar  string `json:"avatar"`
	Bio     string `json:"bio"`
	Website string `json:"website"`
}

// UpdateUser replaces the mutable profile fields. Email and role are fixed.
func (uc *UserController) UpdateUser(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	user, err := uc.userRepo.GetUserByID(c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "User not found",
			"error":   "No user exists with the provided ID",
		})
		return
	}

	user.Name = req.Name
	user.Phone = req.Phone
	user.Address = req.Address
	user.Avatar = req.Avatar
	user.Bio = req.Bio
	user.Website = req.Website

	if err := uc.userRepo.UpdateUser(user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update user",
			"error":   "Database update failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "User updated successfully",
		"data":    user,
	})
}

var patchableFields = map[string]bool{
	"name":    true,
	"phone":   true,
	"address": true,
	"avatar":  true,
	"bio":     true,
	"website": true,
}

func (uc *UserController) PatchUser(c *gin.Context) {
	var data map[string]interface{}
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	updates := make(map[string]interface{})
	for field, value := range data {
		if patchableFields[field] {
			updates[field] = value
		}
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   "No updatable fields provided",
		})
		return
	}

	if err := uc.userRepo.PatchUser(c.GetString("user_id"), updates); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update user",
			"error":   "Database update failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "User updated successfully",
		"data":    nil,
	})
}

func (uc *UserController) ForgotPassword(c *gin.Context) {
	var req EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if _, err := uc.userRepo.GetUserByEmail(req.Email); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "User not found",
			"error":   "No account associated with this email",
		})
		return
	}

	code := utils.GenerateVerificationCode()

	uc.resetRepo.DeleteByEmail(req.Email)
	reset := &models.ResetPassword{
		Email:     req.Email,
		Code:      code,
		ExpiresAt: time.Now().Add(15 * time.Minute),
	}
	if err := uc.resetRepo.CreateResetPassword(reset); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create reset code",
			"error":   "Database error",
		})
		return
	}

	go func() {
		if err := utils.SendEmail(uc.mailConfig, req.Email, "Password Reset Code", "Your password reset code is: "+code); err != nil {
			log.Printf("Failed to send email to %s: %v", req.Email, err)
		}
	}()

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Password reset code sent",
		"data":    nil,
	})
}

func (uc *UserController) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if _, err := uc.resetRepo.FindByEmailAndCode(req.Email, req.Code); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid or expired reset code",
			"error":   "The code does not match or has expired",
		})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to reset password",
			"error":   err.Error(),
		})
		return
	}

	if err := uc.userRepo.UpdatePassword(req.Email, string(hash)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to reset password",
			"error":   "Database update failed",
		})
		return
	}
	uc.resetRepo.DeleteByEmail(req.Email)

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Password reset successfully",
		"data":    nil,
	})
}
