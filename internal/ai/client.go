// Package ai owns the boundary to the generative reasoning backend. It
// turns free-text fashion queries into structured style suggestions and
// never lets a backend failure escape to its callers.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kavyamehta/vastra/internal/config"
	"github.com/kavyamehta/vastra/internal/domain"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/anthropic"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"
)

// ConversationClient is the boundary to the AI reasoning backend
type ConversationClient interface {
	CreateConversation(ctx context.Context) (*domain.Conversation, error)
	SendMessage(ctx context.Context, sessionID, content string) (*domain.MessageResponse, error)
}

// Client sends user utterances to an LLM and validates the structured
// style suggestion it returns
type Client struct {
	model     llms.Model
	provider  string
	modelName string
	priceMin  float64
	priceMax  float64
	logger    *zap.Logger
}

// NewClient creates an AI conversation client for the configured provider
func NewClient(cfg *config.Config, logger *zap.Logger) (*Client, error) {
	var model llms.Model
	var err error

	switch cfg.LLM.Provider {
	case "ollama":
		model, err = ollama.New(
			ollama.WithModel(cfg.LLM.Model),
			ollama.WithServerURL(cfg.LLM.BaseURL),
		)
		if err != nil {
			return nil, fmt.Errorf("create ollama model: %w", err)
		}

	case "openai":
		if cfg.LLM.APIKey == "" {
			return nil, fmt.Errorf("OpenAI API key required")
		}
		model, err = openai.New(
			openai.WithToken(cfg.LLM.APIKey),
			openai.WithModel(cfg.LLM.Model),
		)
		if err != nil {
			return nil, fmt.Errorf("create openai model: %w", err)
		}

	case "anthropic":
		if cfg.LLM.APIKey == "" {
			return nil, fmt.Errorf("Anthropic API key required")
		}
		model, err = anthropic.New(
			anthropic.WithToken(cfg.LLM.APIKey),
			anthropic.WithModel(cfg.LLM.Model),
		)
		if err != nil {
			return nil, fmt.Errorf("create anthropic model: %w", err)
		}

	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.LLM.Provider)
	}

	return &Client{
		model:     model,
		provider:  cfg.LLM.Provider,
		modelName: cfg.LLM.Model,
		priceMin:  cfg.Search.DefaultPriceMin,
		priceMax:  cfg.Search.DefaultPriceMax,
		logger:    logger,
	}, nil
}

// NewClientWithModel creates a client around an existing model (used in tests)
func NewClientWithModel(model llms.Model, provider, modelName string, logger *zap.Logger) *Client {
	return &Client{
		model:     model,
		provider:  provider,
		modelName: modelName,
		priceMin:  500,
		priceMax:  5000,
		logger:    logger,
	}
}

// CreateConversation allocates a new opaque session. Allocation is
// local, so it cannot fail under non-catastrophic conditions.
func (c *Client) CreateConversation(ctx context.Context) (*domain.Conversation, error) {
	return &domain.Conversation{
		SessionID: uuid.New().String(),
		Message:   "Conversation started",
		Timestamp: time.Now(),
	}, nil
}

// SendMessage submits the user's text and returns a validated style
// suggestion. Any failure, from transport to a schema-violating
// response, degrades to the local fallback response; this method is the
// terminal error handler for the operation and never returns an error.
func (c *Client) SendMessage(ctx context.Context, sessionID, content string) (*domain.MessageResponse, error) {
	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, systemPrompt),
		llms.TextParts(llms.ChatMessageTypeHuman, userPrompt(content)),
	}

	resp, err := c.model.GenerateContent(ctx, messages)
	if err != nil {
		c.logger.Warn("LLM call failed, using fallback suggestion",
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
		return c.fallbackResponse(sessionID, content), nil
	}
	if len(resp.Choices) == 0 {
		c.logger.Warn("LLM returned no choices, using fallback suggestion",
			zap.String("session_id", sessionID),
		)
		return c.fallbackResponse(sessionID, content), nil
	}

	parsed, err := c.parseResponse(resp.Choices[0].Content)
	if err != nil {
		c.logger.Warn("LLM response failed validation, using fallback suggestion",
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
		return c.fallbackResponse(sessionID, content), nil
	}

	parsed.RequestType = "style_suggestion"
	parsed.ModelInfo = domain.ModelInfo{Provider: c.provider, ModelName: c.modelName}
	parsed.Timestamp = time.Now()
	parsed.SessionID = sessionID
	return parsed, nil
}

// parseResponse decodes the model output and checks it against the
// style suggestion schema.
func (c *Client) parseResponse(raw string) (*domain.MessageResponse, error) {
	var resp domain.MessageResponse
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSchemaViolation, err)
	}

	if err := validateStyleSuggestion(resp.StyleSuggestion); err != nil {
		return nil, err
	}

	if resp.Filters.Price.Max <= 0 {
		resp.Filters.Price = domain.PriceFilter{Min: c.priceMin, Max: c.priceMax}
	}
	return &resp, nil
}

func validateStyleSuggestion(s *domain.StyleSuggestion) error {
	if s == nil {
		return fmt.Errorf("%w: missing style_suggestion", domain.ErrSchemaViolation)
	}
	if s.Title == "" || s.Description == "" || len(s.Items) == 0 {
		return fmt.Errorf("%w: style_suggestion missing title, description or items", domain.ErrSchemaViolation)
	}
	for i, item := range s.Items {
		if item.Type == "" || item.Color == "" || item.Material == "" || item.Fit == "" || item.Style == "" {
			return fmt.Errorf("%w: item %d missing required fields", domain.ErrSchemaViolation, i)
		}
		if item.ShoppingQueries == nil {
			return fmt.Errorf("%w: item %d missing shopping_queries", domain.ErrSchemaViolation, i)
		}
	}
	return nil
}

// stripCodeFence removes a markdown code fence some models wrap JSON in
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// fallbackResponse synthesizes a generic style suggestion that echoes
// the query, so the search pipeline keeps moving when the backend is
// unavailable or misbehaving.
func (c *Client) fallbackResponse(sessionID, query string) *domain.MessageResponse {
	return &domain.MessageResponse{
		Message:     fmt.Sprintf("Here are fashion suggestions for: %s", query),
		RequestType: "fallback",
		StyleSuggestion: &domain.StyleSuggestion{
			Title:       "Fashion Picks",
			Description: fmt.Sprintf("Curated fashion picks for %q", query),
			Items: []domain.StyleItem{
				{
					Type:     "outfit",
					Color:    "assorted",
					Material: "mixed",
					Fit:      "regular",
					Style:    "versatile",
					ShoppingQueries: []string{
						query,
						fmt.Sprintf("%s India fashion", query),
						fmt.Sprintf("%s online shopping", query),
					},
				},
			},
		},
		FollowUpSuggestions: []string{
			"Show me festive wear",
			"Casual office outfits",
			"Wedding guest looks",
			"Summer cotton styles",
		},
		Filters: domain.Filters{
			Price: domain.PriceFilter{Min: c.priceMin, Max: c.priceMax},
		},
		ModelInfo: domain.ModelInfo{Provider: c.provider, ModelName: c.modelName},
		Timestamp: time.Now(),
		SessionID: sessionID,
	}
}
