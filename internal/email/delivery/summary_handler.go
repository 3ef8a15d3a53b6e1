package delivery

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	emaildomain "maildigest-backend/internal/email/domain"
	emaildto "maildigest-backend/internal/email/dto"
	"maildigest-backend/internal/email/usecase"
)

// StrategyHeader reports which strategy produced the summary.
const StrategyHeader = "X-Summary-Strategy"

const msgNoEmails = "No emails provided"

// SummaryHandler handles the batch summary API endpoint
type SummaryHandler struct {
	summaryUsecase usecase.SummaryUsecase
}

// NewSummaryHandler creates a new SummaryHandler
func NewSummaryHandler(summaryUsecase usecase.SummaryUsecase) *SummaryHandler {
	return &SummaryHandler{summaryUsecase: summaryUsecase}
}

// POST /api/summarize
// Summarize returns a summary for the posted batch. Provider failures are
// absorbed by the usecase; only invalid input yields a 400.
func (h *SummaryHandler) Summarize(c *gin.Context) {
	var req emaildto.SummarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, emaildto.ErrorResponse{Error: bindErrorMessage(err)})
		return
	}

	summary, err := h.summaryUsecase.Summarize(c.Request.Context(), req.ToDomain())
	if err != nil {
		if errors.Is(err, emaildomain.ErrNoEmails) {
			c.JSON(http.StatusBadRequest, emaildto.ErrorResponse{Error: msgNoEmails})
			return
		}
		c.JSON(http.StatusInternalServerError, emaildto.ErrorResponse{Error: "failed to summarize emails"})
		return
	}

	c.Header(StrategyHeader, string(summary.Strategy))
	c.JSON(http.StatusOK, emaildto.SummarizeResponse{Summary: summary.Text})
}

// bindErrorMessage turns a binding failure into a client-facing message.
func bindErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "invalid request body"
	}
	for _, fe := range verrs {
		if fe.Field() == "Emails" {
			return msgNoEmails
		}
	}
	fe := verrs[0]
	// "SummarizeRequest.Emails[1].From" -> "emails[1].from"
	field := fe.Namespace()
	if i := strings.Index(field, "."); i >= 0 {
		field = field[i+1:]
	}
	return fmt.Sprintf("%s is required", strings.ToLower(field))
}
