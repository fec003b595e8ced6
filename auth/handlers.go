package auth

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/servease/servease-api/models"
	"github.com/servease/servease-api/uploads"
)

// GET /login
func LoginForm() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := ParseSession(TokenFromRequest(c)); err == nil {
			c.Redirect(http.StatusFound, "/dashboard")
			return
		}
		c.JSON(http.StatusOK, gin.H{"page": "login"})
	}
}

// POST /login
func Login(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		mobile := c.PostForm("mobile")
		password := c.PostForm("password")

		var user models.User
		if err := db.Where("mobile = ?", mobile).First(&user).Error; err != nil {
			// Unknown mobile and wrong password share one recovery path:
			// the caller is sent to registration, never told which failed.
			c.Redirect(http.StatusFound, "/register")
			return
		}
		if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
			c.Redirect(http.StatusFound, "/register")
			return
		}

		token, err := IssueSession(&user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to establish session"})
			return
		}
		SetSessionCookie(c, token)
		c.Redirect(http.StatusFound, "/dashboard")
	}
}

// GET /register
func RegisterForm() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"page": "register"})
	}
}

// POST /register
func Register(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.PostForm("name")
		mobile := c.PostForm("mobile")
		email := c.PostForm("email")
		location := c.PostForm("location")
		password := c.PostForm("password")
		confirm := c.PostForm("confirm_password")

		if name == "" || mobile == "" || password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name, mobile and password are required"})
			return
		}
		if password != confirm {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Passwords do not match"})
			return
		}

		dpFilename := ""
		if file, err := c.FormFile("dp"); err == nil {
			saved, saveErr := uploads.SaveImage(c, file, "dp")
			if saveErr != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": saveErr.Error()})
				return
			}
			dpFilename = saved
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}

		user := models.User{
			DPFilename: dpFilename,
			Name:       name,
			Mobile:     mobile,
			Email:      email,
			Location:   location,
			Password:   string(hash),
		}

		// A unique-mobile violation rolls the whole insert back; a failed
		// registration never leaves a partial user row behind.
		if err := db.Transaction(func(tx *gorm.DB) error {
			return tx.Create(&user).Error
		}); err != nil {
			log.Printf("registration failed for mobile %s: %v", mobile, err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Registration failed"})
			return
		}

		// Auto-login: registration establishes the session directly.
		token, err := IssueSession(&user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to establish session"})
			return
		}
		SetSessionCookie(c, token)
		c.Redirect(http.StatusFound, "/dashboard")
	}
}

// GET /logout
func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		ClearSessionCookie(c)
		c.Redirect(http.StatusFound, "/login")
	}
}
