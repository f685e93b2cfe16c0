// Package httpadapter exposes the relay service API: a stateless
// endpoint that forwards a composed prompt and conversation history to
// the model provider using the server-held credential.
package httpadapter

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/udityamerit/portfolio-assistant/internal/domain"
	"github.com/udityamerit/portfolio-assistant/internal/observability"
)

type Server struct {
	generator domain.ReplyGenerator
}

func NewServer(generator domain.ReplyGenerator) *gin.Engine {
	s := &Server{generator: generator}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestID())
	router.Use(requestLogger())
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:       12 * time.Hour,
	}))

	router.GET("/healthz", s.handleHealthz)
	router.POST("/api/chat", s.handleChat)

	return router
}

type chatHistoryPart struct {
	Text string `json:"text"`
}

type chatHistoryTurn struct {
	Role  string            `json:"role"`
	Parts []chatHistoryPart `json:"parts"`
}

type chatRequest struct {
	History     []chatHistoryTurn `json:"history"`
	UserMessage string            `json:"userMessage"`
	Prompt      string            `json:"prompt"`
}

type chatResponse struct {
	Response string `json:"response"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleChat maps one request to exactly one upstream call. No session
// state is kept between requests.
func (s *Server) handleChat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	if req.UserMessage == "" {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "userMessage is required"})
		return
	}

	log := observability.LoggerFromContext(c.Request.Context())

	history := toDomainHistory(req.History)
	fullPrompt := req.Prompt + "\n\nUser Question: " + req.UserMessage

	reply, err := s.generator.GenerateReply(c.Request.Context(), fullPrompt, history)
	if err != nil {
		log.Error("upstream generation failed", "error", err)
		c.JSON(http.StatusInternalServerError, errorResponse{
			Error: "An error occurred while communicating with the model provider.",
		})
		return
	}

	c.JSON(http.StatusOK, chatResponse{Response: reply})
}

func toDomainHistory(turns []chatHistoryTurn) []domain.HistoryTurn {
	out := make([]domain.HistoryTurn, 0, len(turns))
	for _, t := range turns {
		var content string
		for _, p := range t.Parts {
			content += p.Text
		}
		role := domain.RoleUser
		if t.Role == string(domain.RoleModel) {
			role = domain.RoleModel
		}
		out = append(out, domain.HistoryTurn{Role: role, Content: content})
	}
	return out
}

// requestID stamps each request with an id for log correlation.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := observability.WithRequestID(c.Request.Context(), uuid.NewString())
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		observability.LoggerFromContext(c.Request.Context()).Info("request handled",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start).String(),
		)
	}
}
