package controllers

import (
	"encoding/json"
	"net/http"

	"unityeats/internal/models"
	"unityeats/internal/repository"

	"github.com/gin-gonic/gin"
)

type OauthController struct {
	userRepo repository.UserRepository
}

func NewOauthController(userRepo repository.UserRepository) *OauthController {
	return &OauthController{userRepo: userRepo}
}

// GoogleAuth verifies a Google ID token and signs the user in, creating a
// donor account on first sign-in. NGO accounts require the regular
// registration flow so a profile is created alongside.
func (oc *OauthController) GoogleAuth(c *gin.Context) {
	var authRequest struct {
		Token string `json:"token" binding:"required"`
	}

	if err := c.ShouldBindJSON(&authRequest); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	resp, err := http.Get("https://oauth2.googleapis.com/tokeninfo?id_token=" + authRequest.Token)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to verify token with Google",
			"error":   err.Error(),
		})
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Invalid Google ID token",
			"error":   "Token verification failed",
		})
		return
	}

	var tokenInfo map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&tokenInfo); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to decode token info",
			"error":   err.Error(),
		})
		return
	}

	email, ok := tokenInfo["email"].(string)
	if !ok || email == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Email not found in token",
		})
		return
	}
	name, _ := tokenInfo["name"].(string)

	user, err := oc.userRepo.GetUserByEmail(email)
	if err != nil {
		newUser := models.User{
			Email: email,
			Name:  name,
			Role:  models.RoleDonor,
		}
		if err := oc.userRepo.CreateUser(&newUser); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Failed to create user account",
				"error":   err.Error(),
			})
			return
		}
		user = &newUser
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
		"message": "Google authentication successful",
		"data": gin.H{
			"token": tokenString,
			"user":  user,
		},
	})
}
