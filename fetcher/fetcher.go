package fetcher

import (
	"context"
	"fmt"
	"iter"
	"log"

	"comment-service/metrics"
	"comment-service/model"
)

type Fetcher struct {
	lister ThreadLister
}

func NewFetcher(lister ThreadLister) *Fetcher {
	return &Fetcher{lister: lister}
}

// FetchAll walks every page of comment threads for videoID and returns the
// flattened records: each top-level comment followed by its replies, pages in
// arrival order. A video without comments yields an empty, non-nil slice. Any
// upstream failure aborts the walk and nothing is returned.
func (f *Fetcher) FetchAll(ctx context.Context, videoID string) ([]model.CommentRecord, error) {
	log.Printf("[INFO] Fetching all comments for videoID: %s", videoID)

	allComments := []model.CommentRecord{}
	pages := 0
	for page, err := range f.Pages(ctx, videoID) {
		if err != nil {
			log.Printf("[ERROR] Comment fetch for videoID=%s aborted after %d pages: %v", videoID, pages, err)
			return nil, err
		}
		allComments = append(allComments, page.Records...)
		pages++
	}

	log.Printf("[INFO] Successfully fetched %d comments in %d pages for video: %s", len(allComments), pages, videoID)
	return allComments, nil
}

// Pages returns a lazy sequence of flattened pages. Each range over the sequence
// starts again from the first page; iteration stops after the first error.
func (f *Fetcher) Pages(ctx context.Context, videoID string) iter.Seq2[model.CommentPage, error] {
	return func(yield func(model.CommentPage, error) bool) {
		pageToken := ""
		for index := 0; ; index++ {
			if err := ctx.Err(); err != nil {
				yield(model.CommentPage{}, newUpstreamError(videoID, index, err))
				return
			}

			threads, err := f.lister.ListThreads(ctx, videoID, pageToken)
			if err == nil && threads == nil {
				err = fmt.Errorf("%w: no page returned", ErrMalformedResponse)
			}
			if err != nil {
				metrics.UpstreamErrors.WithLabelValues("commentThreads").Inc()
				yield(model.CommentPage{}, newUpstreamError(videoID, index, err))
				return
			}
			metrics.PagesFetched.Inc()

			page := model.CommentPage{
				Index:         index,
				Records:       flatten(threads.Threads),
				NextPageToken: threads.NextPageToken,
			}
			countRecords(page.Records)

			if !yield(page, nil) {
				return
			}

			pageToken = threads.NextPageToken
			if pageToken == "" {
				return
			}
		}
	}
}

func flatten(threads []model.Thread) []model.CommentRecord {
	records := make([]model.CommentRecord, 0, len(threads))
	for _, t := range threads {
		records = append(records, t.Flatten()...)
	}
	return records
}

func countRecords(records []model.CommentRecord) {
	for _, r := range records {
		kind := "top_level"
		if r.IsReply {
			kind = "reply"
		}
		metrics.CommentsFetched.WithLabelValues(kind).Inc()
	}
}
