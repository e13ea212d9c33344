package service

import (
	"context"
	"errors"
	"log"
	"time"

	"comment-service/metrics"
	"comment-service/model"
	"comment-service/resolver"
	"comment-service/store"

	"github.com/google/uuid"
)

// CommentFetcher is the part of fetcher.Fetcher the service needs.
type CommentFetcher interface {
	FetchAll(ctx context.Context, videoID string) ([]model.CommentRecord, error)
}

type CommentService struct {
	fetcher CommentFetcher
	store   store.Store
	now     func() time.Time
}

func NewCommentService(f CommentFetcher, s store.Store) *CommentService {
	return &CommentService{fetcher: f, store: s, now: time.Now}
}

// Resolve extracts the video id from a free-form link.
func (cs *CommentService) Resolve(url string) (string, error) {
	id, rule, err := resolver.ResolveRule(url)
	if err != nil {
		metrics.URLsResolved.WithLabelValues("none").Inc()
		log.Printf("[WARN] URL not recognized: %q", url)
		return "", err
	}
	metrics.URLsResolved.WithLabelValues(rule).Inc()
	return id, nil
}

// Extract resolves url, fetches every comment and keeps the result as a new session.
// An unrecognized url returns resolver.ErrURLNotRecognized without any fetch.
func (cs *CommentService) Extract(ctx context.Context, url string) (model.Session, error) {
	videoID, err := cs.Resolve(url)
	if err != nil {
		return model.Session{}, err
	}
	return cs.ExtractVideo(ctx, videoID, url)
}

func (cs *CommentService) ExtractVideo(ctx context.Context, videoID, sourceURL string) (model.Session, error) {
	start := cs.now()
	records, err := cs.fetcher.FetchAll(ctx, videoID)
	if err != nil {
		return model.Session{}, err
	}
	metrics.FetchDuration.Observe(cs.now().Sub(start).Seconds())

	session := model.Session{
		ID:        uuid.NewString(),
		VideoID:   videoID,
		SourceURL: sourceURL,
		Records:   records,
		FetchedAt: cs.now(),
	}
	if err := cs.store.Save(ctx, session); err != nil {
		log.Printf("[ERROR] Failed to save session for videoId=%s: %v", videoID, err)
		return model.Session{}, err
	}

	log.Printf("[INFO] Session %s holds %d comments (%d replies) for videoId=%s",
		session.ID, len(records), session.Replies(), videoID)
	return session, nil
}

func (cs *CommentService) Session(ctx context.Context, id string) (model.Session, error) {
	s, err := cs.store.Get(ctx, id)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		log.Printf("[ERROR] Session lookup %s failed: %v", id, err)
	}
	return s, err
}
