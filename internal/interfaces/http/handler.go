package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"shoprelay/internal/config"
	"shoprelay/internal/entities"
	"shoprelay/internal/interfaces"

	"github.com/gin-gonic/gin"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Handler struct {
	cfg      config.Config
	answerer interfaces.QueryAnswerer
	logger   *slog.Logger
}

func NewHandler(cfg config.Config, answerer interfaces.QueryAnswerer, logger *slog.Logger) *Handler {
	return &Handler{
		cfg:      cfg,
		answerer: answerer,
		logger:   logger,
	}
}

func SetupRoutes(r *gin.Engine, cfg config.Config, answerer interfaces.QueryAnswerer, logger *slog.Logger) {
	h := NewHandler(cfg, answerer, logger)

	r.Use(Recovery(logger))
	r.Use(SecurityHeaders())
	r.Use(RequestSizeLimiter(1 << 20))
	r.Use(CORSMiddleware())
	r.Use(RequestLogger(logger))

	r.GET("/", h.HandleRoot)
	r.GET("/health", h.HandleHealth)
	r.POST("/web-data", h.HandlePurchase)
}

// HandleRoot returns the static service descriptor.
func (h *Handler) HandleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":   "Storefront relay bot is running",
		"homepage":  h.cfg.HomepageURL,
		"webAppUrl": h.cfg.WebAppURL,
	})
}

func (h *Handler) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// HandlePurchase answers the pending web-app query identified by the
// request body. Schema violations never reach the answer call.
func (h *Handler) HandlePurchase(c *gin.Context) {
	var req entities.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	titles := make([]string, 0, len(req.Products))
	for _, p := range req.Products {
		titles = append(titles, p.Title)
	}
	summary := strings.Join(titles, ", ")

	success := tgbotapi.NewInlineQueryResultArticle(
		req.QueryID,
		"Successful purchase!",
		fmt.Sprintf("Congratulations! You bought %s for a total of %v.", summary, *req.TotalPrice),
	)
	if err := h.answerer.AnswerWebAppQuery(req.QueryID, success); err != nil {
		h.logger.Error("web app query answer failed", "query_id", req.QueryID, "error", err)

		// Best-effort compensating answer so the pending query does not
		// hang in the client.
		failure := tgbotapi.NewInlineQueryResultArticle(
			req.QueryID,
			"Purchase failed",
			fmt.Sprintf("Could not complete the purchase of %s for %v.", summary, *req.TotalPrice),
		)
		if answerErr := h.answerer.AnswerWebAppQuery(req.QueryID, failure); answerErr != nil {
			h.logger.Error("compensating query answer failed", "query_id", req.QueryID, "error", answerErr)
		}

		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{})
}
