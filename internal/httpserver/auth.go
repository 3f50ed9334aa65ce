package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type signupRequest struct {
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func signupHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req signupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "InvalidInput", err.Error())
			return
		}
		ok, err := deps.Auth.Signup(req.Email, req.Password, req.FirstName, req.LastName, req.Phone)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "General", err.Error())
			return
		}
		if !ok {
			respondError(c, http.StatusConflict, "DuplicateEmail", "an account with that email already exists")
			return
		}
		c.JSON(http.StatusCreated, gin.H{"user": deps.Auth.CurrentUser()})
	}
}

func loginHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "InvalidInput", err.Error())
			return
		}
		ok, err := deps.Auth.Login(req.Email, req.Password)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "General", err.Error())
			return
		}
		if !ok {
			respondError(c, http.StatusUnauthorized, "InvalidCredentials", "email or password is incorrect")
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": deps.Auth.CurrentUser()})
	}
}

func logoutHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := deps.Auth.Logout(); err != nil {
			respondError(c, http.StatusInternalServerError, "General", err.Error())
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func currentUserHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := deps.Auth.CurrentUser()
		c.JSON(http.StatusOK, gin.H{
			"user":          user,
			"authenticated": user != nil,
		})
	}
}
