package services

import (
	"context"

	"github.com/truthguard/truthguard/internal/client/api"
	"github.com/truthguard/truthguard/internal/client/models"
	"github.com/truthguard/truthguard/internal/logging"
)

// apologyReply is substituted for the assistant's answer whenever the
// chatbot call fails for any reason. Chat failures are never surfaced as
// errors.
const apologyReply = "Sorry, I'm having trouble responding right now. Please try again in a moment."

// ChatService keeps the assistant conversation for the process lifetime and
// forwards each turn (message plus prior history) to the service.
type ChatService struct {
	client  api.Client
	log     logging.Logger
	history []models.ChatMessage
}

func NewChatService(client api.Client, log logging.Logger) *ChatService {
	return &ChatService{client: client, log: log}
}

// Send forwards one user message and returns the assistant's reply. The
// history sent to the service contains only the turns before this message.
func (s *ChatService) Send(ctx context.Context, message string) string {
	reply, err := s.client.ChatTurn(ctx, message, s.history)
	if err != nil {
		s.log.Warn(ctx, "chat turn failed", "error", err)
		reply = apologyReply
	}

	s.history = append(s.history,
		models.ChatMessage{Role: "user", Content: message},
		models.ChatMessage{Role: "assistant", Content: reply},
	)
	return reply
}

// History returns the conversation so far.
func (s *ChatService) History() []models.ChatMessage { return s.history }
