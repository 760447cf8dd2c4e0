package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/kavyamehta/vastra/internal/domain"
	"github.com/kavyamehta/vastra/internal/shopping"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeAI struct {
	createCalls int32
	createErr   error
	sendFunc    func(ctx context.Context, sessionID, content string) (*domain.MessageResponse, error)
}

func (f *fakeAI) CreateConversation(ctx context.Context) (*domain.Conversation, error) {
	n := atomic.AddInt32(&f.createCalls, 1)
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &domain.Conversation{
		SessionID: fmt.Sprintf("session-%d", n),
		Message:   "Conversation started",
		Timestamp: time.Now(),
	}, nil
}

func (f *fakeAI) SendMessage(ctx context.Context, sessionID, content string) (*domain.MessageResponse, error) {
	if f.sendFunc != nil {
		return f.sendFunc(ctx, sessionID, content)
	}
	return styleResponse(sessionID, content, "query one", "query two"), nil
}

type fakeSearch struct {
	batchFunc func(ctx context.Context, queries []string) []domain.ShoppingProduct
}

func (f *fakeSearch) SearchProducts(ctx context.Context, query string, opts shopping.SearchOptions) ([]domain.ShoppingProduct, error) {
	return f.BatchSearchProducts(ctx, []string{query}), nil
}

func (f *fakeSearch) BatchSearchProducts(ctx context.Context, queries []string) []domain.ShoppingProduct {
	if f.batchFunc != nil {
		return f.batchFunc(ctx, queries)
	}
	return nil
}

// styleResponse builds a response with one style item per query
func styleResponse(sessionID, message string, queries ...string) *domain.MessageResponse {
	items := make([]domain.StyleItem, len(queries))
	for i, q := range queries {
		items[i] = domain.StyleItem{
			Type: "kurta", Color: "white", Material: "cotton",
			Fit: "relaxed", Style: "casual",
			ShoppingQueries: []string{q},
		}
	}
	return &domain.MessageResponse{
		Message:             message,
		RequestType:         "style_suggestion",
		StyleSuggestion:     &domain.StyleSuggestion{Title: "Look", Description: "d", Items: items},
		FollowUpSuggestions: []string{"Add a dupatta", "Festive version"},
		SessionID:           sessionID,
		Timestamp:           time.Now(),
	}
}

func newService(aiClient *fakeAI, searchClient *fakeSearch) *SearchService {
	return NewSearchService(aiClient, searchClient, zap.NewNop())
}

func TestInitializeSessionIdempotent(t *testing.T) {
	aiClient := &fakeAI{}
	svc := newService(aiClient, &fakeSearch{})

	first := svc.InitializeSession(context.Background())
	second := svc.InitializeSession(context.Background())

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), atomic.LoadInt32(&aiClient.createCalls))
}

func TestInitializeSessionFallbackNeverFails(t *testing.T) {
	aiClient := &fakeAI{createErr: errors.New("handshake refused")}
	svc := newService(aiClient, &fakeSearch{})

	id := svc.InitializeSession(context.Background())

	assert.True(t, strings.HasPrefix(id, "fallback_"), "got %q", id)
	assert.Equal(t, id, svc.State().SessionID)
	assert.NotEmpty(t, svc.State().Error)

	// The fallback id is held like any other session id
	assert.Equal(t, id, svc.InitializeSession(context.Background()))
	assert.Equal(t, int32(1), atomic.LoadInt32(&aiClient.createCalls))
}

func TestSearchContinuesOnSessionFallback(t *testing.T) {
	aiClient := &fakeAI{createErr: errors.New("handshake refused")}
	searchClient := &fakeSearch{batchFunc: func(ctx context.Context, queries []string) []domain.ShoppingProduct {
		return []domain.ShoppingProduct{{ProductID: "p1", ExtractedPrice: 999}}
	}}
	svc := newService(aiClient, searchClient)

	products := svc.SearchFashion(context.Background(), "red saree")

	require.Len(t, products, 1)
	assert.True(t, strings.HasPrefix(svc.State().SessionID, "fallback_"))
}

func TestSearchFashionFailsSoftly(t *testing.T) {
	aiClient := &fakeAI{sendFunc: func(ctx context.Context, sessionID, content string) (*domain.MessageResponse, error) {
		return nil, errors.New("backend unreachable")
	}}
	svc := newService(aiClient, &fakeSearch{})

	products := svc.SearchFashion(context.Background(), "red saree")

	assert.Empty(t, products)
	state := svc.State()
	assert.False(t, state.IsLoading)
	assert.NotEmpty(t, state.Error)
	assert.Nil(t, svc.StyleSuggestion())
}

func TestSearchFashionEndToEnd(t *testing.T) {
	aiClient := &fakeAI{}
	searchClient := &fakeSearch{batchFunc: func(ctx context.Context, queries []string) []domain.ShoppingProduct {
		require.Equal(t, []string{"query one", "query two"}, queries)
		return []domain.ShoppingProduct{
			{ProductID: "a1", Title: "Kurta A", ExtractedPrice: 1100},
			{ProductID: "a2", Title: "Kurta B", ExtractedPrice: 1200},
			{ProductID: "b1", Title: "Trousers A", ExtractedPrice: 900},
			{ProductID: "b2", Title: "Trousers B", ExtractedPrice: 950},
			{ProductID: "b3", Title: "Trousers C", ExtractedPrice: 1000},
		}
	}}
	svc := newService(aiClient, searchClient)

	products := svc.SearchFashion(context.Background(), "casual kurta office")

	require.Len(t, products, 5)
	assert.Equal(t, "a1", products[0].ID)
	assert.Equal(t, "b3", products[4].ID)

	state := svc.State()
	assert.False(t, state.IsLoading)
	assert.Empty(t, state.Error)
	assert.Equal(t, []string{"Add a dupatta", "Festive version"}, svc.FollowUpSuggestions())
	require.NotNil(t, svc.StyleSuggestion())
	assert.Len(t, svc.StyleSuggestion().Items, 2)
}

func TestSearchFashionComposerFallback(t *testing.T) {
	aiClient := &fakeAI{sendFunc: func(ctx context.Context, sessionID, content string) (*domain.MessageResponse, error) {
		resp := styleResponse(sessionID, content)
		resp.StyleSuggestion.Items = []domain.StyleItem{{Type: "kurta", ShoppingQueries: nil}}
		return resp, nil
	}}

	var got []string
	searchClient := &fakeSearch{batchFunc: func(ctx context.Context, queries []string) []domain.ShoppingProduct {
		got = queries
		return nil
	}}
	svc := newService(aiClient, searchClient)

	svc.SearchFashion(context.Background(), "red saree")

	assert.Equal(t, []string{"red saree fashion clothes India"}, got)
}

func TestAccessorsBeforeAnySearch(t *testing.T) {
	svc := newService(&fakeAI{}, &fakeSearch{})

	assert.Empty(t, svc.FollowUpSuggestions())
	assert.Nil(t, svc.StyleSuggestion())

	state := svc.State()
	assert.False(t, state.IsLoading)
	assert.Empty(t, state.SessionID)
	assert.Nil(t, state.LastResponse)
}

func TestReset(t *testing.T) {
	aiClient := &fakeAI{}
	svc := newService(aiClient, &fakeSearch{})

	svc.SearchFashion(context.Background(), "red saree")
	require.NotEmpty(t, svc.State().SessionID)

	svc.Reset()

	state := svc.State()
	assert.Empty(t, state.SessionID)
	assert.Nil(t, state.LastResponse)
	assert.Empty(t, state.Error)

	// A new session is created after reset
	svc.InitializeSession(context.Background())
	assert.Equal(t, int32(2), atomic.LoadInt32(&aiClient.createCalls))
}

func TestOverlappingSearchesLastCallWins(t *testing.T) {
	slowStarted := make(chan struct{})
	release := make(chan struct{})

	aiClient := &fakeAI{sendFunc: func(ctx context.Context, sessionID, content string) (*domain.MessageResponse, error) {
		if content == "slow query" {
			close(slowStarted)
			<-release
		}
		return styleResponse(sessionID, content, content), nil
	}}
	svc := newService(aiClient, &fakeSearch{})

	done := make(chan struct{})
	go func() {
		defer close(done)
		svc.SearchFashion(context.Background(), "slow query")
	}()
	<-slowStarted

	// The later call completes first and must own the final state
	svc.SearchFashion(context.Background(), "fast query")
	close(release)
	<-done

	state := svc.State()
	assert.False(t, state.IsLoading)
	require.NotNil(t, state.LastResponse)
	assert.Equal(t, "fast query", state.LastResponse.Message)
}
