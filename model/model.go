package model

import "time"

// FetchRequest represents a comment fetch request via NATS
type FetchRequest struct {
	URL       string `json:"url,omitempty"`
	VideoID   string `json:"videoId,omitempty"`
	RequestID string `json:"requestId"`
}

// FetchResult represents the result of a comment fetch operation
type FetchResult struct {
	Success       bool      `json:"success"`
	RequestID     string    `json:"requestId"`
	VideoID       string    `json:"videoId,omitempty"`
	SessionID     string    `json:"sessionId,omitempty"`
	CommentsCount int       `json:"commentsCount"`
	RepliesCount  int       `json:"repliesCount"`
	Error         string    `json:"error,omitempty"`
	ProcessedAt   time.Time `json:"processedAt"`
}

// Response structures for API
type CommentListResponse struct {
	VideoID   string          `json:"videoId"`
	SessionID string          `json:"sessionId"`
	Count     int             `json:"count"`
	Replies   int             `json:"replies"`
	Comments  []CommentRecord `json:"comments"`
}

type ResolveResponse struct {
	VideoID string `json:"videoId"`
}
