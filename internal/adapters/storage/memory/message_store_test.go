package memory_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udityamerit/portfolio-assistant/internal/adapters/storage/memory"
	"github.com/udityamerit/portfolio-assistant/internal/domain"
)

func TestMessageStoreKeepsInsertionOrder(t *testing.T) {
	store := memory.NewMessageStore()
	session := domain.SessionID("s1")

	for i := 0; i < 5; i++ {
		err := store.AppendMessage(&domain.Message{
			ID:        domain.MessageID(fmt.Sprintf("m%d", i)),
			SessionID: session,
			Origin:    domain.OriginUser,
			Text:      fmt.Sprintf("message %d", i),
		})
		require.NoError(t, err)
	}

	msgs, err := store.GetMessagesBySession(session, 0)
	require.NoError(t, err)
	require.Len(t, msgs, 5)
	for i, m := range msgs {
		assert.Equal(t, fmt.Sprintf("message %d", i), m.Text)
	}
}

func TestMessageStoreLimitReturnsTail(t *testing.T) {
	store := memory.NewMessageStore()
	session := domain.SessionID("s1")

	for i := 0; i < 4; i++ {
		require.NoError(t, store.AppendMessage(&domain.Message{
			SessionID: session,
			Text:      fmt.Sprintf("message %d", i),
		}))
	}

	msgs, err := store.GetMessagesBySession(session, 2)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "message 2", msgs[0].Text)
	assert.Equal(t, "message 3", msgs[1].Text)
}

func TestMessageStoreUnknownSessionIsEmpty(t *testing.T) {
	store := memory.NewMessageStore()

	msgs, err := store.GetMessagesBySession("missing", 0)
	require.NoError(t, err)
	assert.Empty(t, msgs)
}
