package domain

import "time"

// Conversation represents a newly created AI conversation session
type Conversation struct {
	SessionID string    `json:"session_id"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// StyleItem is a single recommended garment within a style suggestion
type StyleItem struct {
	Type            string   `json:"type"`
	Color           string   `json:"color"`
	Material        string   `json:"material"`
	Fit             string   `json:"fit"`
	Style           string   `json:"style"`
	ShoppingQueries []string `json:"shopping_queries"`
}

// StyleSuggestion is the structured AI output describing recommended
// garments and the search queries derived from them
type StyleSuggestion struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Items       []StyleItem `json:"items"`
}

// PriceFilter is a min/max price range in rupees
type PriceFilter struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Filters holds the filter set the AI attached to a response
type Filters struct {
	Price PriceFilter `json:"price"`
}

// ModelInfo records which backend produced a response
type ModelInfo struct {
	Provider  string `json:"provider"`
	ModelName string `json:"model_name"`
}

// MessageResponse is the envelope around a style suggestion. The
// orchestrator retains exactly one instance at a time; each successful
// sendMessage replaces it wholesale.
type MessageResponse struct {
	Message             string           `json:"message"`
	RequestType         string           `json:"request_type"`
	StyleSuggestion     *StyleSuggestion `json:"style_suggestion"`
	FollowUpSuggestions []string         `json:"follow_up_suggestions"`
	Filters             Filters          `json:"filters"`
	ModelInfo           ModelInfo        `json:"model_info"`
	Timestamp           time.Time        `json:"timestamp"`
	SessionID           string           `json:"session_id"`
}

// SearchRequest is the request to run an AI fashion search
type SearchRequest struct {
	Query  string `json:"query" binding:"required"`
	UserID string `json:"user_id,omitempty"`
}
