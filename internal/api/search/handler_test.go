package search

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kavyamehta/vastra/internal/domain"
	"github.com/kavyamehta/vastra/internal/repository"
	"github.com/kavyamehta/vastra/internal/service"
	"github.com/kavyamehta/vastra/internal/shopping"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubAI struct {
	fail bool
}

func (s *stubAI) CreateConversation(ctx context.Context) (*domain.Conversation, error) {
	return &domain.Conversation{SessionID: "sess-1", Timestamp: time.Now()}, nil
}

func (s *stubAI) SendMessage(ctx context.Context, sessionID, content string) (*domain.MessageResponse, error) {
	if s.fail {
		return nil, errors.New("backend unreachable")
	}
	return &domain.MessageResponse{
		Message:     "ok",
		RequestType: "style_suggestion",
		StyleSuggestion: &domain.StyleSuggestion{
			Title: "Look", Description: "d",
			Items: []domain.StyleItem{{
				Type: "saree", Color: "red", Material: "silk", Fit: "flowy", Style: "ethnic",
				ShoppingQueries: []string{"red silk saree India"},
			}},
		},
		FollowUpSuggestions: []string{"Festive version"},
		SessionID:           sessionID,
		Timestamp:           time.Now(),
	}, nil
}

type stubSearch struct {
	products []domain.ShoppingProduct
}

func (s *stubSearch) SearchProducts(ctx context.Context, query string, opts shopping.SearchOptions) ([]domain.ShoppingProduct, error) {
	return s.products, nil
}

func (s *stubSearch) BatchSearchProducts(ctx context.Context, queries []string) []domain.ShoppingProduct {
	return s.products
}

func newTestRouter(t *testing.T, aiClient *stubAI, searchClient *stubSearch) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := repository.NewMemoryDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	catalogRepo := repository.NewCatalogRepository(db)
	require.NoError(t, catalogRepo.Seed(repository.BuiltinCatalog()))

	svc := service.NewSearchService(aiClient, searchClient, zap.NewNop())

	r := gin.New()
	NewHandler(svc, catalogRepo).RegisterRoutes(r.Group("/api/v1"))
	return r
}

// wireResponse mirrors SearchResponse on the wire; products decode as
// maps because the sum type flattens in JSON
type wireResponse struct {
	Products            []map[string]any `json:"products"`
	FollowUpSuggestions []string         `json:"follow_up_suggestions"`
	SessionID           string           `json:"session_id"`
	Degraded            bool             `json:"degraded"`
	Notice              string           `json:"notice"`
}

func doSearch(t *testing.T, r *gin.Engine, body string) (*httptest.ResponseRecorder, wireResponse) {
	t.Helper()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/search", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var resp wireResponse
	if w.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

func TestSearchEndpoint(t *testing.T) {
	r := newTestRouter(t, &stubAI{}, &stubSearch{products: []domain.ShoppingProduct{
		{ProductID: "p1", Title: "Red Silk Saree", ExtractedPrice: 2199, ProductLink: "https://example.com/p1"},
	}})

	w, resp := doSearch(t, r, `{"query": "red saree"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, resp.Degraded)
	assert.Equal(t, "sess-1", resp.SessionID)
	assert.Equal(t, []string{"Festive version"}, resp.FollowUpSuggestions)
	require.Len(t, resp.Products, 1)
	assert.Equal(t, "https://example.com/p1", resp.Products[0]["product_link"])
}

func TestSearchEndpointDegradedFallsBackToCatalog(t *testing.T) {
	// AI fails and the pipeline yields nothing: the static catalog is
	// the final safety net so the UI still renders products
	r := newTestRouter(t, &stubAI{fail: true}, &stubSearch{})

	w, resp := doSearch(t, r, `{"query": "saree"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Degraded)
	assert.NotEmpty(t, resp.Notice)
	assert.NotEmpty(t, resp.Products)
}

func TestSearchEndpointRejectsEmptyQuery(t *testing.T) {
	r := newTestRouter(t, &stubAI{}, &stubSearch{})

	for _, body := range []string{`{}`, `{"query": "   "}`} {
		w, _ := doSearch(t, r, body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %s", body)
	}
}

func TestCreateConversationEndpoint(t *testing.T) {
	r := newTestRouter(t, &stubAI{}, &stubSearch{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/conversations", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var conv domain.Conversation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &conv))
	assert.Equal(t, "sess-1", conv.SessionID)
}

func TestSuggestionsEndpointEmptyBeforeSearch(t *testing.T) {
	r := newTestRouter(t, &stubAI{}, &stubSearch{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/suggestions", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		FollowUpSuggestions []string                `json:"follow_up_suggestions"`
		StyleSuggestion     *domain.StyleSuggestion `json:"style_suggestion"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.FollowUpSuggestions)
	assert.Nil(t, resp.StyleSuggestion)
}
