package chat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/panoptisDev/panoptis-ai-app-chat/docstore"
	"github.com/panoptisDev/panoptis-ai-app-chat/generator"
	"github.com/panoptisDev/panoptis-ai-app-chat/override"
	"github.com/panoptisDev/panoptis-ai-app-chat/retriever"
)

const (
	fallbackText   = "Sorry, I could not find relevant information in the documentation. Please try rephrasing your question or ask about another topic."
	errorText      = "Sorry, I cannot respond at the moment. Please try again."
	emptyReplyText = "Sorry, an error occurred."
)

var (
	ErrNotFound   = errors.New("conversation not found")
	ErrEmptyInput = errors.New("user input is required")
	ErrBusy       = errors.New("a submission is already in flight")
)

type Service struct {
	retriever     retriever.Retriever
	generator     generator.Generator
	resolver      *override.Resolver
	documents     []docstore.Document
	persona       string
	conversations map[string]*Conversation
	mtx           sync.RWMutex
}

func (s *Service) NewConversation(ctx context.Context) string {
	id := uuid.New().String()

	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.conversations[id] = newConversation(id)

	return id
}

func (s *Service) Turns(ctx context.Context, conversationId string) ([]Turn, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	conversation, ok := s.conversations[conversationId]
	if !ok {
		return nil, fmt.Errorf("%s: %w", conversationId, ErrNotFound)
	}

	cpy := make([]Turn, len(conversation.turns))
	copy(cpy, conversation.turns)

	return cpy, nil
}

func (s *Service) Documents(ctx context.Context) []docstore.Document {
	cpy := make([]docstore.Document, len(s.documents))
	copy(cpy, s.documents)
	return cpy
}

// Send processes one submission: append the user turn, resolve the grounding
// document (override beats ranking), generate a reply, and append exactly
// one assistant turn. Retrieval and generation failures recover into fixed
// assistant turns; the returned error only reports rejected submissions,
// which leave the conversation untouched.
func (s *Service) Send(ctx context.Context, conversationId string, message string) (string, error) {
	if len(strings.TrimSpace(message)) == 0 {
		return "", ErrEmptyInput
	}

	recent, err := s.begin(conversationId, message)
	if err != nil {
		return "", err
	}
	defer s.release(conversationId)

	forcedId, forced := s.resolver.Resolve(message)

	relevant, err := s.retriever.Retrieve(ctx, message)
	if err != nil {
		slog.ErrorContext(ctx, "retrieval failed", "conversation", conversationId, "error", err)
		s.append(conversationId, Turn{Role: RoleAssistant, Content: errorText})
		return errorText, nil
	}

	if forced {
		if doc := s.document(forcedId); doc != nil {
			relevant = &retriever.Result{
				Id:      doc.Id,
				Title:   doc.Title,
				Content: doc.Content,
			}
		}
	}

	if relevant == nil {
		s.append(conversationId, Turn{Role: RoleAssistant, Content: fallbackText})
		return fallbackText, nil
	}

	prompt := assemblePrompt(s.persona, relevant, recent, message)

	reply, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		slog.ErrorContext(ctx, "generation failed", "conversation", conversationId, "error", err)
		s.append(conversationId, Turn{Role: RoleAssistant, Content: errorText})
		return errorText, nil
	}

	reply = strings.TrimSpace(reply)
	if len(reply) == 0 {
		reply = emptyReplyText
	}

	s.append(conversationId, Turn{Role: RoleAssistant, Content: reply})

	return reply, nil
}

// begin appends the user turn before any network activity and asserts the
// sending flag. It returns the turns that precede the new message, for the
// prompt's history window.
func (s *Service) begin(conversationId string, message string) ([]Turn, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	conversation, ok := s.conversations[conversationId]
	if !ok {
		return nil, fmt.Errorf("%s: %w", conversationId, ErrNotFound)
	}

	if conversation.sending {
		return nil, ErrBusy
	}

	recent := make([]Turn, len(conversation.turns))
	copy(recent, conversation.turns)

	conversation.sending = true
	conversation.turns = append(conversation.turns, Turn{Role: RoleUser, Content: message})

	return recent, nil
}

// release clears the sending flag. It runs on every exit path.
func (s *Service) release(conversationId string) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if conversation, ok := s.conversations[conversationId]; ok {
		conversation.sending = false
	}
}

func (s *Service) append(conversationId string, turn Turn) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if conversation, ok := s.conversations[conversationId]; ok {
		conversation.turns = append(conversation.turns, turn)
	}
}

func (s *Service) document(id string) *docstore.Document {
	for i := range s.documents {
		if s.documents[i].Id == id {
			return &s.documents[i]
		}
	}
	return nil
}

func New(
	re retriever.Retriever,
	ge generator.Generator,
	resolver *override.Resolver,
	documents []docstore.Document,
	persona string,
) *Service {
	if re == nil {
		panic("retriever is required")
	}

	if ge == nil {
		panic("generator is required")
	}

	if resolver == nil {
		resolver = override.NewResolver()
	}

	if len(strings.TrimSpace(persona)) == 0 {
		persona = defaultPersona
	}

	return &Service{
		retriever:     re,
		generator:     ge,
		resolver:      resolver,
		documents:     documents,
		persona:       persona,
		conversations: map[string]*Conversation{},
		mtx:           sync.RWMutex{},
	}
}
