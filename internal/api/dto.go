package api

import "github.com/arindamsaha1507/vyakarana/internal/sutraservice"

// SutraDetail is the full sutra response type (aliased from the domain
// layer).
type SutraDetail = sutraservice.SutraDetail

// SutraListItem is a lightweight item in a list response (aliased from
// the domain layer).
type SutraListItem = sutraservice.SutraListItem

// SutraListResponse wraps paginated sutra listings.
type SutraListResponse struct {
	Sutras []SutraListItem `json:"sutras"`
	Total  int             `json:"total"`
}

// SearchResult is a single full-text search hit.
type SearchResult struct {
	Ref        string `json:"ref"`
	Devanagari string `json:"devanagari"`
	Snippet    string `json:"snippet"`
}

// SearchResponse wraps full-text search results.
type SearchResponse struct {
	Results []SearchResult `json:"results"`
}

// TextSearchResponse wraps in-memory substring search results.
type TextSearchResponse struct {
	Sutras []SutraListItem `json:"sutras"`
	Total  int             `json:"total"`
}
