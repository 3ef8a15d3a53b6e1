package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	emailDelivery "maildigest-backend/internal/email/delivery"
	emailUsecasePkg "maildigest-backend/internal/email/usecase"
	"maildigest-backend/pkg/ai"
	"maildigest-backend/pkg/config"
)

type Handler struct {
	config         *config.Config
	logger         *zap.Logger
	summaryUsecase emailUsecasePkg.SummaryUsecase
	summaryHandler *emailDelivery.SummaryHandler
}

func NewHandler(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Handler, error) {
	settings := cfg.AISettings()

	// Initialize AI provider; nil means fallback-only mode
	provider, err := ai.NewProvider(ctx, settings)
	if err != nil {
		return nil, err
	}
	if provider != nil {
		log.Info("AI provider initialized",
			zap.String("provider", provider.Name()),
			zap.String("model", settings.ModelName()))
	} else {
		log.Warn("no AI provider credential configured, using rule-based summaries",
			zap.String("provider", cfg.AIProvider))
	}

	summaryUsecase := emailUsecasePkg.NewSummaryUsecase(settings, provider, cfg.AITimeout, log)

	return &Handler{
		config:         cfg,
		logger:         log,
		summaryUsecase: summaryUsecase,
		summaryHandler: emailDelivery.NewSummaryHandler(summaryUsecase),
	}, nil
}

// Engine builds the gin engine with middleware and routes.
func (h *Handler) Engine() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), RequestLogger(h.logger), Metrics())

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "X-Request-ID, "+emailDelivery.StrategyHeader)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Setup routes
	SetupRoutes(r, h.summaryHandler, h.settingsView())
	return r
}

func (h *Handler) Start(addr string) error {
	gin.SetMode(h.config.GinMode)
	return h.Engine().Run(addr)
}
