package api

import (
	"errors"
	"net/http" // HTTP status codes

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"golang.org/x/crypto/bcrypt" // Password hashing

	"listing_system/internal/domain"
	"listing_system/internal/middleware"
	"listing_system/internal/utils"
)

// SessionCookie is the cookie carrying the signed session marker ID.
const SessionCookie = "session_id"

// RegisterRequest carries the registration form fields.
type RegisterRequest struct {
	Username        string `form:"username" json:"username" binding:"required"`
	Email           string `form:"email" json:"email" binding:"required,email"`
	Password        string `form:"password" json:"password" binding:"required"`
	ConfirmPassword string `form:"confirmPassword" json:"confirmPassword" binding:"required"`
}

// LoginRequest carries the login form fields.
type LoginRequest struct {
	Email    string `form:"email" json:"email" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

// ShowRegisterHandler renders the registration form.
func ShowRegisterHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "register.html", nil)
	}
}

// RegisterHandler creates a new user account.
func RegisterHandler(users UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBind(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		if req.Password != req.ConfirmPassword {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Passwords do not match"})
			return
		}
		// Hash the password; the plaintext is never stored or logged
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}
		user := &domain.User{
			Username: req.Username,
			Email:    req.Email,
			Password: string(hash),
			Role:     domain.RoleUser,
		}
		if err := users.Create(c.Request.Context(), user); err != nil {
			if errors.Is(err, domain.ErrEmailTaken) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Email is already registered"})
				return
			}
			logrus.WithFields(logrus.Fields{
				"email": req.Email,
				"error": err.Error(),
			}).Error("Registration failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		logrus.WithFields(logrus.Fields{
			"email":    user.Email,
			"username": user.Username,
		}).Info("User registered")
		c.Redirect(http.StatusFound, "/login")
	}
}

// ShowLoginHandler renders the login form.
func ShowLoginHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "login.html", nil)
	}
}

// LoginHandler verifies credentials, issues the token cookie, establishes a
// server-side session marker, and redirects to the dashboard.
func LoginHandler(users UserStore, sessions SessionStore, jwtSecret string, secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBind(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		user, err := users.FindByEmail(c.Request.Context(), req.Email)
		if err != nil {
			// Unknown email and wrong password answer identically
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Email or password is incorrect"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email or password is incorrect"})
			return
		}
		token, err := utils.GenerateJWT(user.Email, user.Username, user.Role, jwtSecret)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}
		sessionID, err := sessions.Create(c.Request.Context(), user.Email, user.Role)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
			return
		}
		logrus.WithFields(logrus.Fields{
			"email": user.Email,
			"role":  user.Role,
		}).Info("User logged in")
		maxAge := int(utils.TokenTTL.Seconds())
		c.SetCookie(middleware.TokenCookie, token, maxAge, "/", "", secure, true)
		c.SetCookie(SessionCookie, sessions.CookieValue(sessionID), maxAge, "/", "", secure, true)
		c.Redirect(http.StatusFound, "/dashboard")
	}
}

// LogoutHandler clears the token cookie and deletes the session marker.
func LogoutHandler(sessions SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if value, err := c.Cookie(SessionCookie); err == nil {
			if id, ok := sessions.ParseCookie(value); ok {
				if err := sessions.Delete(c.Request.Context(), id); err != nil {
					logrus.WithField("error", err.Error()).Warn("Failed to delete session")
				}
			}
		}
		c.SetCookie(middleware.TokenCookie, "", -1, "/", "", false, true)
		c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
		c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
	}
}

// DashboardHandler renders the authenticated landing page.
func DashboardHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "dashboard.html", gin.H{
			"Username": c.GetString(middleware.CtxUsername),
			"Role":     c.GetString(middleware.CtxRole),
		})
	}
}
