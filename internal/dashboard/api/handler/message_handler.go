package handler

import (
	"VCS_Sandbox_Dashboard/internal/dashboard/api/dto/request"
	"VCS_Sandbox_Dashboard/internal/dashboard/api/dto/response"
	"VCS_Sandbox_Dashboard/internal/dashboard/backend"
	"VCS_Sandbox_Dashboard/internal/dashboard/monitor"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

//go:generate mockgen -source=message_handler.go -destination=../../mocks/api/handler/mock_message_handler.go -package=mockhandler

type MessageHandler interface {
	SendMessage() gin.HandlerFunc
	GetFeed() gin.HandlerFunc
}

type messageHandler struct {
	logger   Logger
	messages backend.MessageClient
	feed     monitor.Feed
}

func (m *messageHandler) SendMessage() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.MessageRequest
		if !bindJSON(c, &req) {
			return
		}
		res, err := m.messages.Send(c.Request.Context(), req.Message)
		if err != nil {
			err = fmt.Errorf("MessageHandler.SendMessage: %w", err)
			backendError(c, m.logger, err, "failed to send message")
			return
		}
		c.JSON(http.StatusOK, response.BackendResponse{
			StatusCode: res.StatusCode,
			Data:       res.Data(),
		})
	}
}

// GetFeed lists the messages recently seen on the queue. Without a feed the list is empty.
func (m *messageHandler) GetFeed() gin.HandlerFunc {
	return func(c *gin.Context) {
		res := response.FeedResponse{
			Messages: []monitor.FeedMessage{},
		}
		if m.feed != nil {
			res.Enabled = true
			res.Messages = m.feed.Recent()
		}
		c.JSON(http.StatusOK, res)
	}
}

// NewMessageHandler accepts a nil feed when the queue is not configured.
func NewMessageHandler(logger *zap.Logger, messages backend.MessageClient, feed monitor.Feed) MessageHandler {
	return &messageHandler{
		logger:   NewLogger(logger),
		messages: messages,
		feed:     feed,
	}
}
