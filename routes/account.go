package routes

import (
	"github.com/gin-gonic/gin"

	accountController "github.com/rishitrebant/SoleConnect/controllers/account"
)

// SetupAccountRoutes registers the login and signup form endpoints.
func SetupAccountRoutes(r *gin.Engine) {
	accountGroup := r.Group("/account")
	{
		accountGroup.POST("/login", accountController.Login())   // POST /account/login
		accountGroup.POST("/signup", accountController.Signup()) // POST /account/signup
	}
}
