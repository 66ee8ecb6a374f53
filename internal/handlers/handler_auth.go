package handlers

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"github.com/aozora-dev/blue_return_app/internal/dto"
	"github.com/aozora-dev/blue_return_app/internal/middleware"
	"github.com/aozora-dev/blue_return_app/internal/utils"
	"github.com/aozora-dev/blue_return_app/pkg/config"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// authHandler handles operator authentication. There is exactly one
// operator, configured at deploy time; no user store exists.
type authHandler struct {
	cfg *config.Config
}

// registerAuthRoutes registers the public login route with a strict per-IP
// rate limit.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config) {
	h := &authHandler{cfg: cfg}

	rate, _ := limiter.NewRateFromFormatted("5-M")
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)
	limitMiddleware := limitergin.NewMiddleware(ipLimiter)

	auth := r.Group("/api/v1/auth")
	auth.POST("/login", limitMiddleware, h.login)
}

// login godoc
// @Summary Authenticate the operator
// @Description Verifies the operator credentials and issues a bearer token
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   credentials body dto.LoginRequest true "Operator credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Failure 500 {object} map[string]string "Failed to issue token"
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for login", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	usernameOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(h.cfg.OperatorUsername)) == 1
	passwordOK := utils.CheckPasswordHash(req.Password, h.cfg.OperatorPasswordHash)
	if !usernameOK || !passwordOK {
		logger.Warn("Login attempt with invalid credentials")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateJWT(h.cfg.OperatorUsername, h.cfg.JWTSecret, h.cfg.JWTExpiryDuration, h.cfg.JWTIssuer)
	if err != nil {
		logger.Error("Failed to generate token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	logger.Info("Operator logged in")
	c.JSON(http.StatusOK, dto.LoginResponse{Token: token})
}
