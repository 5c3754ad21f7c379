package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/truthguard/truthguard/internal/client/models"
)

func TestChatService_Send_Success(t *testing.T) {
	client := &fakeClient{ChatRet: "TruthGuard classifies news as Real, Misleading or Fake."}
	s := NewChatService(client, testLogger())

	reply := s.Send(context.Background(), "what do the verdicts mean?")

	assert.Equal(t, client.ChatRet, reply)
	assert.Equal(t, "what do the verdicts mean?", client.LastChatMessage)
	assert.Empty(t, client.LastChatHistory, "first turn sends empty history")

	history := s.History()
	require.Len(t, history, 2)
	assert.Equal(t, models.ChatMessage{Role: "user", Content: "what do the verdicts mean?"}, history[0])
	assert.Equal(t, "assistant", history[1].Role)
}

func TestChatService_Send_SecondTurnCarriesHistory(t *testing.T) {
	client := &fakeClient{ChatRet: "reply"}
	s := NewChatService(client, testLogger())

	s.Send(context.Background(), "first")
	s.Send(context.Background(), "second")

	require.Len(t, client.LastChatHistory, 2, "prior turns only, not the current message")
	assert.Equal(t, "first", client.LastChatHistory[0].Content)
	assert.Len(t, s.History(), 4)
}

func TestChatService_Send_FailureSubstitutesApology(t *testing.T) {
	client := &fakeClient{ChatErr: errors.New("upstream down")}
	s := NewChatService(client, testLogger())

	reply := s.Send(context.Background(), "hello")

	assert.Equal(t, apologyReply, reply, "chat failures never surface as errors")
	history := s.History()
	require.Len(t, history, 2)
	assert.Equal(t, apologyReply, history[1].Content)
}
