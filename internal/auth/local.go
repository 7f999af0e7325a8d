package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/ErwanMettouchi/DevJobHub-backend/internal/database"
	"github.com/ErwanMettouchi/DevJobHub-backend/internal/logging"
	"github.com/ErwanMettouchi/DevJobHub-backend/internal/model"
	"github.com/ErwanMettouchi/DevJobHub-backend/internal/utilities"
)

const authTypeLocal = "Local"

// LocalAuthHandler holds DB reference for handler methods.
type LocalAuthHandler struct {
	DB  *database.DBinstanceStruct
	JWT *JWTManager
	Log *logging.Logger
}

// NewLocalAuthHandler creates a new instance of LocalAuthHandler with the provided database connection.
func NewLocalAuthHandler(db *database.DBinstanceStruct, jwtManager *JWTManager, log *logging.Logger) *LocalAuthHandler {
	if log == nil {
		log = logging.Nop()
	}
	return &LocalAuthHandler{
		DB:  db,
		JWT: jwtManager,
		Log: log,
	}
}

type registerInfo struct {
	FirstName string `json:"first_name" binding:"required,min=1,max=30"`
	LastName  string `json:"last_name" binding:"required,min=1,max=50"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
}

type loginInfo struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned by login and register.
type AuthResponse struct {
	User        model.User `json:"user"`
	AccessToken string     `json:"access_token"`
}

// checkPasswordStrength requires at least 8 characters with a lower case
// letter, an upper case letter, a digit and a special character.
func checkPasswordStrength(password string) error {
	if len(password) < 8 {
		return errors.New("Password should longer or equal to 8 characters")
	}

	var lower, upper, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			special = true
		}
	}
	if !lower || !upper || !digit || !special {
		return errors.New("Password must contain a lower case letter, an upper case letter, a digit and a special character")
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// LocalRegisterHandler creates an account and returns an access token.
// @Summary Register with email and password
// @Description Email must not already exist; password needs 8 characters with lower, upper, digit and special character
// @Tags Auth
// @Accept json
// @Produce json
// @Param Info body registerInfo true "Account information"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} utilities.ErrorResponse "Info provided not met the condition"
// @Failure 409 {object} utilities.ErrorResponse "Email already registered"
// @Failure 500 {object} utilities.ErrorResponse "Database or password hashing error"
// @Router /auth/register [post]
func (lh *LocalAuthHandler) LocalRegisterHandler(c *gin.Context) {
	var info registerInfo

	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "First name (1-30), last name (1-50), a valid email and a password must be provided",
		})
		return
	}
	info.Email = normalizeEmail(info.Email)

	if err := checkPasswordStrength(info.Password); err != nil {
		logAuthAttempt(lh.Log, authTypeLocal, AttemptFail, info.Email, "weak password")
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var existing model.User
	err := lh.DB.Where("email = ?", info.Email).First(&existing).Error

	switch {
	case err == nil:
		logAuthAttempt(lh.Log, authTypeLocal, AttemptFail, info.Email, "email already registered")
		c.JSON(http.StatusConflict, utilities.ErrorResponse{
			Error: "Email already registered",
		})
		return

	case errors.Is(err, gorm.ErrRecordNotFound):
		// Do nothing

	default:
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Database error: %s", err.Error()),
		})
		return
	}

	hashedPassword, err := utilities.HashPassword(info.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed hash password: %s", err.Error()),
		})
		return
	}

	user := model.User{
		FirstName: strings.TrimSpace(info.FirstName),
		LastName:  strings.TrimSpace(info.LastName),
		Email:     info.Email,
		Password:  hashedPassword,
	}
	if err := lh.DB.Create(&user).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			c.JSON(http.StatusConflict, utilities.ErrorResponse{
				Error: "Email already registered",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to create user: %s", err.Error()),
		})
		return
	}

	accessToken, err := lh.JWT.Generate(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to generate access token: %s", err.Error()),
		})
		return
	}

	logAuthAttempt(lh.Log, authTypeLocal, AttemptSuccess, user.Email, "registered")
	c.JSON(http.StatusCreated, AuthResponse{
		User:        user,
		AccessToken: accessToken,
	})
}

// LocalLoginHandler checks the credentials and returns an access token.
// @Summary Login with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param Info body loginInfo true "Credentials for login"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} utilities.ErrorResponse "Info provided not met the condition"
// @Failure 401 {object} utilities.ErrorResponse "Email not exist or password incorrect"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /auth/login [post]
func (lh *LocalAuthHandler) LocalLoginHandler(c *gin.Context) {
	var info loginInfo

	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Email or password is not provided",
		})
		return
	}
	info.Email = normalizeEmail(info.Email)

	var user model.User
	err := lh.DB.Where("email = ?", info.Email).First(&user).Error

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		logAuthAttempt(lh.Log, authTypeLocal, AttemptFail, info.Email, "unknown email")
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{
			Error: "Email or password is incorrect",
		})
		return

	case err == nil:
		// Do nothing

	default:
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Database error: %s", err.Error()),
		})
		return
	}

	if user.Password == "" || !utilities.VerifyPassword(info.Password, user.Password) {
		logAuthAttempt(lh.Log, authTypeLocal, AttemptFail, info.Email, "wrong password")
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{
			Error: "Email or password is incorrect",
		})
		return
	}

	accessToken, err := lh.JWT.Generate(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to generate access token: %s", err.Error()),
		})
		return
	}

	logAuthAttempt(lh.Log, authTypeLocal, AttemptSuccess, user.Email, "")
	c.JSON(http.StatusOK, AuthResponse{
		User:        user,
		AccessToken: accessToken,
	})
}
