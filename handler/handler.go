package handler

import (
	"context"
	"errors"
	"iter"
	"log"
	"net/http"

	"comment-service/fetcher"
	"comment-service/model"
	"comment-service/resolver"
	"comment-service/service"
	"comment-service/store"
	"comment-service/utils"

	"github.com/gin-gonic/gin"
)

// PageSource is the streaming side of fetcher.Fetcher.
type PageSource interface {
	Pages(ctx context.Context, videoID string) iter.Seq2[model.CommentPage, error]
}

type CommentHandler struct {
	svc   *service.CommentService
	pages PageSource
}

func NewCommentHandler(svc *service.CommentService, pages PageSource) *CommentHandler {
	return &CommentHandler{svc: svc, pages: pages}
}

// statusFor maps pipeline errors to an HTTP status and a user-visible message.
func statusFor(err error) (int, string) {
	var ue *fetcher.UpstreamError
	switch {
	case errors.Is(err, resolver.ErrURLNotRecognized):
		return http.StatusBadRequest, utils.InvalidURLMessage
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound, err.Error()
	case errors.As(err, &ue):
		return ue.HTTPStatus(), ue.Error()
	default:
		return http.StatusInternalServerError, err.Error()
	}
}

func respondError(c *gin.Context, err error) {
	status, msg := statusFor(err)
	if status >= http.StatusInternalServerError {
		log.Printf("[ERROR] %s %s failed: %v", c.Request.Method, c.FullPath(), err)
	}
	c.JSON(status, gin.H{"error": msg})
}
