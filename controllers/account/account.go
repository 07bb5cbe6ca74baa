package accountcontroller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// The account endpoints validate the way the storefront forms did and then
// simulate success. There are no credentials stored and no tokens issued:
// real authentication is out of scope for this system.

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signupInput struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	AcceptedTerms   bool   `json:"accepted_terms"`
}

// Login validates the form fields and simulates a successful login.
// POST /account/login
func Login() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input loginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		email := strings.TrimSpace(input.Email)
		password := strings.TrimSpace(input.Password)

		if email == "" || password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please fill in all fields"})
			return
		}
		if !isValidEmail(email) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter a valid email address"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Login successful! Welcome back."})
	}
}

// Signup validates the form fields, requires a non-weak password, and
// simulates account creation.
// POST /account/signup
func Signup() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input signupInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		email := strings.TrimSpace(input.Email)
		password := strings.TrimSpace(input.Password)
		confirm := strings.TrimSpace(input.ConfirmPassword)

		if email == "" || password == "" || confirm == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please fill in all fields"})
			return
		}
		if !isValidEmail(email) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter a valid email address"})
			return
		}
		if password != confirm {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Passwords do not match"})
			return
		}
		if !input.AcceptedTerms {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please agree to the Terms of Service and Privacy Policy"})
			return
		}
		if PasswordStrength(password) == "weak" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please choose a stronger password"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message":  "Account created successfully!",
			"strength": PasswordStrength(password),
		})
	}
}
