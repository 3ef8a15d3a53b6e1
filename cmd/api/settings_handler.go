package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SettingsView is the public view of the summarization settings. It never
// carries a credential.
type SettingsView struct {
	Provider  string `json:"provider"`
	Model     string `json:"model,omitempty"`
	AIEnabled bool   `json:"ai_enabled"`
	MaxTokens int    `json:"max_tokens"`
	Timeout   string `json:"timeout"`
}

func (h *Handler) settingsView() SettingsView {
	settings := h.config.AISettings()
	view := SettingsView{
		Provider:  string(settings.Provider),
		AIEnabled: h.summaryUsecase.RemoteEnabled(),
		MaxTokens: settings.OutputBudget(),
		Timeout:   h.config.AITimeout.String(),
	}
	if resolved := settings.Resolve(); resolved != "" {
		view.Provider = string(resolved)
		view.Model = settings.ModelName()
	}
	return view
}

// GetSettings returns the current summarization configuration
// GET /api/settings
func GetSettings(view SettingsView) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, view)
	}
}
