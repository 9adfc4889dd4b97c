package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	jwtpkg "github.com/piresc/boleias/internal/pkg/jwt"
	"github.com/piresc/boleias/internal/pkg/logger"
	"github.com/piresc/boleias/internal/pkg/models"
	"github.com/piresc/boleias/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

// SessionHandler exchanges the shared admin PIN for a coordinator token
type SessionHandler struct {
	cfg *models.Config
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(cfg *models.Config) *SessionHandler {
	return &SessionHandler{cfg: cfg}
}

// OpenSession verifies the PIN and signs a coordinator session
func (h *SessionHandler) OpenSession(c echo.Context) error {
	var req models.CoordinatorSessionRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	name := utils.SanitizeString(req.CoordinatorName)
	if name == "" {
		return utils.FieldErrorResponse(c, "coordinator_name", "coordinator_name is required")
	}
	if req.PIN == "" {
		return utils.FieldErrorResponse(c, "pin", "pin is required")
	}

	if h.cfg.Coordinator.PINHash == "" {
		logger.ErrorCtx(c.Request().Context(), "Coordinator PIN hash is not configured")
		return utils.ErrorResponseHandler(c, http.StatusServiceUnavailable, "Coordinator access is not configured")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(h.cfg.Coordinator.PINHash), []byte(req.PIN)); err != nil {
		logger.WarnCtx(c.Request().Context(), "Rejected coordinator PIN",
			logger.String("client_ip", c.RealIP()))
		return utils.UnauthorizedResponse(c, "Invalid PIN")
	}

	token, expiresAt, err := jwtpkg.GenerateToken(name, h.cfg)
	if err != nil {
		logger.ErrorCtx(c.Request().Context(), "Failed to sign coordinator token", logger.Err(err))
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to open session")
	}

	logger.InfoCtx(c.Request().Context(), "Coordinator session opened",
		logger.String("coordinator_name", name))

	return utils.SuccessResponse(c, http.StatusOK, "Session opened", models.CoordinatorSessionResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	})
}
