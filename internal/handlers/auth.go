package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/aeiluminate/backend/internal/mailer"
	"github.com/aeiluminate/backend/internal/middleware"
	"github.com/aeiluminate/backend/internal/models"
	"github.com/aeiluminate/backend/internal/repositories"
	"github.com/aeiluminate/backend/internal/storage"
	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// tokenTTL is how long a session cookie stays valid
const tokenTTL = 72 * time.Hour

// AuthHandler handles authentication and account-creation HTTP requests
type AuthHandler struct {
	userRepository repositories.UserRepository
	uploader       storage.Uploader
	mail           mailer.Mailer
	tokenSecret    string
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(userRepo repositories.UserRepository, uploader storage.Uploader, mail mailer.Mailer, tokenSecret string) *AuthHandler {
	return &AuthHandler{
		userRepository: userRepo,
		uploader:       uploader,
		mail:           mail,
		tokenSecret:    tokenSecret,
	}
}

// RegisterAuthRoutes registers the unauthenticated account routes
func (h *AuthHandler) RegisterAuthRoutes(g *echo.Group) {
	g.POST("/login", h.Login)
	g.POST("/logout", h.Logout)
	g.POST("/register/client", h.Register)
	g.POST("/apply", h.Apply)
}

// RegisterApplicationRoutes registers the application review routes, which
// require an authenticated session
func (h *AuthHandler) RegisterApplicationRoutes(g *echo.Group) {
	g.POST("/application/accept/:id", h.AcceptApplication)
}

// Login verifies email+password and issues the session cookie
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.userRepository.GetUserByEmail(req.Email)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Incorrect email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Incorrect email or password")
	}

	token, err := h.generateToken(user)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate token")
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.TokenCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(tokenTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Login successful",
		"token":   token,
		"user":    user,
	})
}

// Logout clears the session cookie
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     middleware.TokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return c.JSON(http.StatusOK, echo.Map{"message": "Logged out"})
}

// Register creates a new account directly (no document review step)
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, alumni, err := h.buildAccount(&req)
	if err != nil {
		return err
	}

	if err := h.userRepository.CreateUser(user, alumni); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create a new user in the database")
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "User created successfully",
		"userId":  user.UserID,
	})
}

// Apply submits an alumni account application: both verification documents
// are stored first, then user, alumni profile and application row are
// created in one transaction
func (h *AuthHandler) Apply(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	form, err := c.MultipartForm()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid multipart payload")
	}
	files := form.File["images"]
	if len(files) != 2 {
		return echo.NewHTTPError(http.StatusBadRequest, "Diploma and school ID images are required")
	}

	user, alumni, err := h.buildAccount(&req)
	if err != nil {
		return err
	}

	documents, err := uploadFiles(c.Request().Context(), h.uploader, files)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to store application documents")
	}

	app := &models.Application{
		AppID:       uuid.NewString(),
		DiplomaURL:  documents[0].MediaURL,
		SchoolIDURL: documents[1].MediaURL,
		UserID:      user.UserID,
		CreatedAt:   time.Now(),
	}

	if err := h.userRepository.RegisterApplicant(user, alumni, app); err != nil {
		rollbackUploads(c.Request().Context(), h.uploader, documents)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create application")
	}

	if err := h.mail.SendApplicationReceived(user.Email, app.AppID); err != nil {
		// The application is already committed; a lost mail is not worth a 500.
		log.Printf("Failed to send application email to %s: %v", user.Email, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Application submitted successfully",
		"appID":   app.AppID,
	})
}

// AcceptApplication approves a pending application: the row is removed so
// the account shows up in user listings, and the applicant is notified
func (h *AuthHandler) AcceptApplication(c echo.Context) error {
	appID := c.Param("id")

	app, err := h.userRepository.GetApplicationByID(appID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Application not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch application")
	}

	user, err := h.userRepository.GetUserByID(app.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch applicant")
	}

	if err := h.userRepository.AcceptApplication(appID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Application not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to accept application")
	}

	if err := h.mail.SendApplicationAccepted(user.Email, app.AppID); err != nil {
		// The acceptance is already committed; a lost mail is not worth a 500.
		log.Printf("Failed to send acceptance email to %s: %v", user.Email, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Application accepted"})
}

// buildAccount validates uniqueness and assembles the user (and alumni
// profile for alumni accounts) with a hashed password
func (h *AuthHandler) buildAccount(req *models.RegisterRequest) (*models.User, *models.Alumni, error) {
	usernameExists, err := h.userRepository.UsernameExists(req.UserName)
	if err != nil {
		return nil, nil, echo.NewHTTPError(http.StatusInternalServerError, "Failed to check username")
	}
	if usernameExists {
		return nil, nil, echo.NewHTTPError(http.StatusConflict, "Username already exists")
	}

	emailExists, err := h.userRepository.EmailExists(req.Email)
	if err != nil {
		return nil, nil, echo.NewHTTPError(http.StatusInternalServerError, "Failed to check email")
	}
	if emailExists {
		return nil, nil, echo.NewHTTPError(http.StatusConflict, "Email already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, echo.NewHTTPError(http.StatusInternalServerError, "Failed to hash password")
	}

	user := &models.User{
		UserID:     uuid.NewString(),
		Role:       req.RoleType,
		Email:      req.Email,
		Username:   req.UserName,
		Password:   string(hashedPassword),
		FirstName:  req.FirstName,
		MiddleName: req.MiddleName,
		LastName:   req.LastName,
		Company:    req.Employment,
		CreatedAt:  time.Now(),
	}

	var alumni *models.Alumni
	if req.RoleType == models.RoleAlumni {
		alumni = &models.Alumni{
			UserID:        user.UserID,
			YearGraduated: req.YearGraduated,
			ProgramID:     req.Program,
			IsEmployed:    req.Employment != "",
		}
	}
	return user, alumni, nil
}

// generateToken signs a session token for a given user
func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	claims := &models.JwtCustomClaims{
		UserID: user.UserID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.tokenSecret))
}
