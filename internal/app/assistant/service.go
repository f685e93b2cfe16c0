// Package assistant routes user utterances: trivial intents get a canned
// template immediately, everything else escalates to the remote
// completion client.
package assistant

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/udityamerit/portfolio-assistant/internal/app/intent"
	"github.com/udityamerit/portfolio-assistant/internal/domain"
	"github.com/udityamerit/portfolio-assistant/internal/observability"
	"github.com/udityamerit/portfolio-assistant/internal/profile"
)

// ErrBusy is returned while a previous send is still in flight. Mirrors
// the disabled input control: one outstanding exchange at a time.
var ErrBusy = errors.New("a reply is already being generated")

var ErrEmptyMessage = errors.New("message text is required")

const (
	greetingTemplate = "Hello there! How can I help you learn more about " + profile.Name + " today?"

	contactTemplate = "You can connect with " + profile.Name + " through the following channels:\n\n" +
		"• Email: " + profile.Email + "\n" +
		"• LinkedIn: " + profile.LinkedIn

	resumeTemplate = profile.Name + "'s resume is available upon request. The best way to get " +
		"the most up-to-date version is by sending a quick email to " + profile.Email + "!"

	gratitudeTemplate = "You're welcome! Is there anything else I can help you with?"
)

// Service is the response composer for one conversation session.
type Service struct {
	completion domain.CompletionClient
	store      domain.MessageStore
	now        func() time.Time

	sessionID domain.SessionID

	mu      sync.Mutex
	history []domain.HistoryTurn
	pending bool
}

func NewService(completion domain.CompletionClient, store domain.MessageStore) *Service {
	return &Service{
		completion: completion,
		store:      store,
		now:        time.Now,
		sessionID:  domain.SessionID(uuid.NewString()),
	}
}

type SendOutput struct {
	UserMessage      *domain.Message
	AssistantMessage *domain.Message
}

// Send classifies the utterance and produces the assistant's reply.
// Canned categories never touch the network and never extend the model
// history; general queries escalate and append one user/model turn pair.
func (s *Service) Send(ctx context.Context, text string) (*SendOutput, error) {
	if isBlank(text) {
		return nil, ErrEmptyMessage
	}

	s.mu.Lock()
	if s.pending {
		s.mu.Unlock()
		return nil, ErrBusy
	}
	s.pending = true
	history := append([]domain.HistoryTurn(nil), s.history...)
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.pending = false
		s.mu.Unlock()
	}()

	log := observability.LoggerFromContext(ctx).With("session_id", s.sessionID)

	userMsg := &domain.Message{
		ID:        domain.MessageID(uuid.NewString()),
		SessionID: s.sessionID,
		Origin:    domain.OriginUser,
		Text:      text,
		CreatedAt: s.now(),
	}
	if err := s.store.AppendMessage(userMsg); err != nil {
		log.Error("failed to append user message", "error", err)
		return nil, err
	}

	category := intent.Classify(text)
	log.Info("message classified", "category", category)

	var (
		replyText string
		sources   []string
	)

	if canned, ok := cannedReply(category); ok {
		replyText = canned
		sources = []string{profile.PredefinedLabel}
	} else {
		replyText, sources = s.completion.Complete(ctx, text, history)

		s.mu.Lock()
		s.history = append(s.history,
			domain.HistoryTurn{Role: domain.RoleUser, Content: text},
			domain.HistoryTurn{Role: domain.RoleModel, Content: replyText},
		)
		s.mu.Unlock()
	}

	assistantMsg := &domain.Message{
		ID:        domain.MessageID(uuid.NewString()),
		SessionID: s.sessionID,
		Origin:    domain.OriginAssistant,
		Text:      replyText,
		CreatedAt: s.now(),
		Sources:   sources,
	}
	if err := s.store.AppendMessage(assistantMsg); err != nil {
		log.Error("failed to append assistant message", "error", err)
		return nil, err
	}

	return &SendOutput{
		UserMessage:      userMsg,
		AssistantMessage: assistantMsg,
	}, nil
}

// Timeline returns the session log in insertion order.
func (s *Service) Timeline(limit int) ([]*domain.Message, error) {
	return s.store.GetMessagesBySession(s.sessionID, limit)
}

// History returns a copy of the model-context turns accumulated so far.
func (s *Service) History() []domain.HistoryTurn {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.HistoryTurn(nil), s.history...)
}

func cannedReply(category intent.Category) (string, bool) {
	switch category {
	case intent.CategoryGreeting:
		return greetingTemplate, true
	case intent.CategoryContact:
		return contactTemplate, true
	case intent.CategoryResume:
		return resumeTemplate, true
	case intent.CategoryGratitude:
		return gratitudeTemplate, true
	default:
		return "", false
	}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
