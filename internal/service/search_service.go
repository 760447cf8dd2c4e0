package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/kavyamehta/vastra/internal/ai"
	"github.com/kavyamehta/vastra/internal/domain"
	"github.com/kavyamehta/vastra/internal/shopping"
	"go.uber.org/zap"
)

// SearchState is the orchestrator's view-facing state snapshot
type SearchState struct {
	IsLoading    bool                    `json:"is_loading"`
	SessionID    string                  `json:"session_id,omitempty"`
	LastResponse *domain.MessageResponse `json:"last_response,omitempty"`
	Error        string                  `json:"error,omitempty"`
}

// SearchService coordinates the AI fashion search pipeline: resolve a
// session, interpret the query, compose shopping queries, run the batch
// search, normalize the results. It degrades quality before degrading
// to failure: callers always get a (possibly empty) product list, never
// an error.
type SearchService struct {
	aiClient     ai.ConversationClient
	searchClient shopping.SearchClient
	logger       *zap.Logger

	mu           sync.Mutex
	sessionID    string
	lastResponse *domain.MessageResponse
	lastError    string
	loading      int
	seq          uint64

	fallbackSeq uint64
}

// NewSearchService creates a search orchestrator with injected clients
func NewSearchService(aiClient ai.ConversationClient, searchClient shopping.SearchClient, logger *zap.Logger) *SearchService {
	return &SearchService{
		aiClient:     aiClient,
		searchClient: searchClient,
		logger:       logger,
	}
}

// InitializeSession returns the held session id or creates one. It is
// idempotent and never fails: when creation errors, a process-unique
// fallback id is stored and returned so a search can still proceed.
func (s *SearchService) InitializeSession(ctx context.Context) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.initSessionLocked(ctx)
}

// initSessionLocked issues the creation call at most once per session
// lifetime. The lock is held across the call so concurrent first
// searches cannot double-create.
func (s *SearchService) initSessionLocked(ctx context.Context) string {
	if s.sessionID != "" {
		return s.sessionID
	}

	conv, err := s.aiClient.CreateConversation(ctx)
	if err != nil {
		s.fallbackSeq++
		s.sessionID = fmt.Sprintf("fallback_%d_%d", time.Now().UnixNano(), s.fallbackSeq)
		s.lastError = err.Error()
		s.logger.Warn("session creation failed, using fallback id",
			zap.String("session_id", s.sessionID),
			zap.Error(err),
		)
		return s.sessionID
	}

	s.sessionID = conv.SessionID
	return s.sessionID
}

// SearchFashion runs the full pipeline for a non-empty query. It fails
// softly: on any failure the error is recorded in state and an empty
// list is returned, leaving the caller to fall back to the static
// catalog. Overlapping invocations follow an explicit last-call-wins
// policy: only the most recently started call writes final state.
func (s *SearchService) SearchFashion(ctx context.Context, query string) []domain.AIProduct {
	s.mu.Lock()
	s.seq++
	seq := s.seq
	s.loading++
	s.lastError = ""
	sessionID := s.initSessionLocked(ctx)
	s.mu.Unlock()

	response, err := s.aiClient.SendMessage(ctx, sessionID, query)
	if err != nil {
		s.settle(seq, fmt.Sprintf("AI suggestion failed: %v", err))
		return nil
	}

	// The new response replaces the prior one wholesale, before the
	// product search runs, so accessors reflect it immediately
	s.mu.Lock()
	if seq == s.seq {
		s.lastResponse = response
	}
	s.mu.Unlock()

	queries := ComposeShoppingQueries(response.StyleSuggestion, query)

	s.logger.Info("running batch product search",
		zap.String("session_id", sessionID),
		zap.Int("queries", len(queries)),
	)

	raws := s.searchClient.BatchSearchProducts(ctx, queries)
	products := shopping.NormalizeAll(raws)

	s.settle(seq, "")
	return products
}

// settle records a call's outcome. Writes from superseded calls are
// dropped so the last started call determines the final state.
func (s *SearchService) settle(seq uint64, errMsg string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loading > 0 {
		s.loading--
	}
	if seq != s.seq {
		return
	}
	s.lastError = errMsg
}

// FollowUpSuggestions returns the last response's follow-up queries, or
// an empty list before any response
func (s *SearchService) FollowUpSuggestions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lastResponse == nil {
		return []string{}
	}
	return s.lastResponse.FollowUpSuggestions
}

// StyleSuggestion returns the last response's style suggestion, or nil
func (s *SearchService) StyleSuggestion() *domain.StyleSuggestion {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lastResponse == nil {
		return nil
	}
	return s.lastResponse.StyleSuggestion
}

// State returns a snapshot of the orchestrator state
func (s *SearchService) State() SearchState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return SearchState{
		IsLoading:    s.loading > 0,
		SessionID:    s.sessionID,
		LastResponse: s.lastResponse,
		Error:        s.lastError,
	}
}

// Reset clears all state; the next search re-initializes the session
func (s *SearchService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessionID = ""
	s.lastResponse = nil
	s.lastError = ""
	s.loading = 0
	s.seq++
}
