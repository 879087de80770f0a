package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// AdminHandler handles operator endpoints.
type AdminHandler struct {
	expiration ExpirationServiceInterface
	now        func() time.Time
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(expiration ExpirationServiceInterface) *AdminHandler {
	return &AdminHandler{expiration: expiration, now: time.Now}
}

// RunExpiration handles POST /admin/review-requests/expire.
func (h *AdminHandler) RunExpiration(c *gin.Context) {
	report, err := h.expiration.RunManual(c.Request.Context(), callerID(c), h.now())
	if err != nil {
		ServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SweepResponse{
		Pending:  report.Pending,
		Accepted: report.Accepted,
	})
}
