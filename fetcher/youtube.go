package fetcher

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"comment-service/config"
	"comment-service/model"

	"golang.org/x/time/rate"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/googleapi/transport"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// ThreadLister returns one page of comment threads for a video.
type ThreadLister interface {
	ListThreads(ctx context.Context, videoID, pageToken string) (*model.ThreadPage, error)
}

// APIClient lists comment threads through the YouTube Data API v3.
type APIClient struct {
	service  *youtube.Service
	pageSize int64
	limiter  *rate.Limiter
}

func NewAPIClient(ctx context.Context, cfg *config.Config) (*APIClient, error) {
	client := &http.Client{
		Transport: &transport.APIKey{Key: cfg.YouTubeAPIKey},
		Timeout:   cfg.HTTPTimeout,
	}

	opts := []option.ClientOption{option.WithHTTPClient(client)}
	if cfg.YouTubeEndpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.YouTubeEndpoint))
	}

	service, err := youtube.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("error creating new YouTube client: %w", err)
	}

	limiter := rate.NewLimiter(rate.Inf, 1)
	if cfg.PageRate > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.PageRate), 1)
	}

	pageSize := cfg.PageSize
	if pageSize <= 0 || pageSize > config.MaxPageSize {
		pageSize = config.MaxPageSize
	}

	return &APIClient{service: service, pageSize: pageSize, limiter: limiter}, nil
}

func (ac *APIClient) ListThreads(ctx context.Context, videoID, pageToken string) (*model.ThreadPage, error) {
	if err := ac.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	call := ac.service.CommentThreads.List([]string{"snippet", "replies"}).
		VideoId(videoID).
		MaxResults(ac.pageSize).
		TextFormat("plainText")
	if pageToken != "" {
		call = call.PageToken(pageToken)
	}

	resp, err := call.Context(ctx).Do()
	if err != nil {
		if pageToken == "" && commentsDisabled(err) {
			log.Printf("[INFO] Comments are disabled for videoID: %s", videoID)
			return &model.ThreadPage{}, nil
		}
		return nil, err
	}
	return convertPage(resp)
}

// commentsDisabled reports the 403 the API returns for a video whose comments are
// turned off; such a video simply has no comments.
func commentsDisabled(err error) bool {
	var gerr *googleapi.Error
	if !errors.As(err, &gerr) || gerr.Code != http.StatusForbidden {
		return false
	}
	for _, item := range gerr.Errors {
		if item.Reason == "commentsDisabled" {
			return true
		}
	}
	return false
}

// convertPage validates the library response and converts it into the internal page
// shape. Every thread needs a snippet with a top-level comment; replies are optional.
func convertPage(resp *youtube.CommentThreadListResponse) (*model.ThreadPage, error) {
	if resp == nil {
		return nil, fmt.Errorf("%w: empty body", ErrMalformedResponse)
	}

	page := &model.ThreadPage{
		Threads:       make([]model.Thread, 0, len(resp.Items)),
		NextPageToken: resp.NextPageToken,
	}

	for i, item := range resp.Items {
		if item == nil || item.Snippet == nil || item.Snippet.TopLevelComment == nil {
			return nil, fmt.Errorf("%w: item %d has no top-level comment", ErrMalformedResponse, i)
		}

		top, err := convertComment(item.Snippet.TopLevelComment, false)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}

		thread := model.Thread{TopLevel: top}
		if item.Replies != nil {
			for j, c := range item.Replies.Comments {
				reply, err := convertComment(c, true)
				if err != nil {
					return nil, fmt.Errorf("item %d reply %d: %w", i, j, err)
				}
				thread.Replies = append(thread.Replies, reply)
			}
		}
		page.Threads = append(page.Threads, thread)
	}

	return page, nil
}

func convertComment(c *youtube.Comment, isReply bool) (model.CommentRecord, error) {
	if c == nil || c.Snippet == nil {
		return model.CommentRecord{}, fmt.Errorf("%w: comment has no snippet", ErrMalformedResponse)
	}
	likes := c.Snippet.LikeCount
	if likes < 0 {
		likes = 0
	}
	return model.CommentRecord{
		Author:      c.Snippet.AuthorDisplayName,
		Body:        c.Snippet.TextDisplay,
		LikeCount:   likes,
		PublishedAt: c.Snippet.PublishedAt,
		IsReply:     isReply,
	}, nil
}
