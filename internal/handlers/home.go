package handlers

import (
	"net/http"

	"prscope/internal/services"

	"github.com/gin-gonic/gin"
)

type HomeHandler struct {
	rateLimitService *services.RateLimitService
	tokenConfigured  bool
	defaultThreshold string
}

func NewHomeHandler(rateLimitService *services.RateLimitService, tokenConfigured bool, defaultThreshold string) *HomeHandler {
	return &HomeHandler{
		rateLimitService: rateLimitService,
		tokenConfigured:  tokenConfigured,
		defaultThreshold: defaultThreshold,
	}
}

// Index handles the dashboard page with the PR URL form and an advisory
// quota banner
func (h *HomeHandler) Index(c *gin.Context) {
	data := gin.H{
		"Title":           "GitHub PR Reactions",
		"TokenConfigured": h.tokenConfigured,
		"Threshold":       h.defaultThreshold,
	}

	if h.tokenConfigured {
		if status := h.rateLimitService.Check(c.Request.Context()); status != nil {
			data["RateLimit"] = status
			data["RateLimitResetAt"] = status.ResetAt.Format("15:04:05")
		}
	}

	c.HTML(http.StatusOK, "index", data)
}
