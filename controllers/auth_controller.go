package controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"hotel-booking-backend/models"
	"hotel-booking-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-sql-driver/mysql"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthController struct {
	DB     *gorm.DB
	Secret []byte
}

func NewAuthController(db *gorm.DB, secret []byte) *AuthController {
	return &AuthController{DB: db, Secret: secret}
}

type registerPayload struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func isDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1062
	}
	// sqlite reports unique violations as plain text
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func (a *AuthController) register(c *gin.Context, role string) {
	var payload registerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	email := strings.TrimSpace(strings.ToLower(payload.Email))
	fullName := strings.TrimSpace(payload.FullName)
	if email == "" || payload.Password == "" {
		utils.JSONError(c, http.StatusBadRequest, "email and password required")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to hash password")
		return
	}

	user := models.User{
		ID:       uuid.New().String(),
		FullName: fullName,
		Email:    email,
		Password: string(hash),
		Roles:    models.RolesJSON(role),
	}
	if err := a.DB.Create(&user).Error; err != nil {
		if isDuplicateEntry(err) {
			utils.JSONError(c, http.StatusConflict, "email already registered")
			return
		}
		log.Printf("create user failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to create user")
		return
	}

	c.JSON(http.StatusCreated, user)
}

func (a *AuthController) RegisterGuest(c *gin.Context) {
	a.register(c, models.RoleGuest)
}

func (a *AuthController) RegisterEmployee(c *gin.Context) {
	a.register(c, models.RoleEmployee)
}

func (a *AuthController) RegisterSuperAdmin(c *gin.Context) {
	a.register(c, models.RoleSuperAdmin)
}

// Login verifies the password and issues a bearer token carrying the user's
// id and roles, valid for 24 hours.
func (a *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	email := strings.TrimSpace(strings.ToLower(payload.Email))
	if email == "" || payload.Password == "" {
		utils.JSONError(c, http.StatusBadRequest, "email and password required")
		return
	}

	var user models.User
	if err := a.DB.Where("email = ?", email).First(&user).Error; err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(payload.Password)) != nil {
		utils.JSONError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := a.issueToken(&user)
	if err != nil {
		log.Printf("issue token failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to generate token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":       user.ID,
			"fullName": user.FullName,
			"email":    user.Email,
			"roles":    user.RoleList(),
		},
	})
}

func (a *AuthController) issueToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"roles": user.RoleList(),
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.Secret)
}
