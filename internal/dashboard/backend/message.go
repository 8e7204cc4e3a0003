package backend

import "context"

//go:generate mockgen -source=message.go -destination=../mocks/backend/mock_message.go -package=mockbackend

type MessageClient interface {
	Send(ctx context.Context, message string) (Response, error)
}

type messageClient struct {
	c *Client
}

// Send publishes the raw text to the message queue through the primary service.
func (m *messageClient) Send(ctx context.Context, message string) (Response, error) {
	return m.c.Post(ctx, ServiceOnePrefix+"/api/messages", []byte(message))
}

func NewMessageClient(c *Client) MessageClient {
	return &messageClient{c: c}
}
