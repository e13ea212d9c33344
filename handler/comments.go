package handler

import (
	"log"
	"net/http"

	"comment-service/model"
	"comment-service/utils"

	"github.com/gin-gonic/gin"
)

// videoIDFromQuery accepts either ?videoId= or a free-form ?url=.
func (h *CommentHandler) videoIDFromQuery(c *gin.Context) (string, bool) {
	if videoID := c.Query("videoId"); videoID != "" {
		return videoID, true
	}

	url := c.Query("url")
	if url == "" {
		log.Printf("[WARN] Missing url/videoId parameter in %s request", c.FullPath())
		c.JSON(http.StatusBadRequest, gin.H{"error": "url or videoId is required"})
		return "", false
	}

	videoID, err := h.svc.Resolve(url)
	if err != nil {
		respondError(c, err)
		return "", false
	}
	return videoID, true
}

func (h *CommentHandler) ResolveURL(c *gin.Context) {
	url := c.Query("url")
	if url == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url is required"})
		return
	}

	videoID, err := h.svc.Resolve(url)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.ResolveResponse{VideoID: videoID})
}

func (h *CommentHandler) GetComments(c *gin.Context) {
	videoID, ok := h.videoIDFromQuery(c)
	if !ok {
		return
	}
	log.Printf("[INFO] GetComments called with videoId: %s", videoID)

	session, err := h.svc.ExtractVideo(c.Request.Context(), videoID, c.Query("url"))
	if err != nil {
		log.Printf("[ERROR] FetchAll failed for videoId=%s: %v", videoID, err)
		respondError(c, err)
		return
	}

	log.Printf("[INFO] Successfully fetched %d comments (including replies) for videoId=%s", len(session.Records), videoID)
	c.JSON(http.StatusOK, model.CommentListResponse{
		VideoID:   videoID,
		SessionID: session.ID,
		Count:     len(session.Records),
		Replies:   session.Replies(),
		Comments:  session.Records,
	})
}

// StreamComments sends one SSE "page" event per fetched page. Nothing is kept
// server-side; the client renders pages as they arrive.
func (h *CommentHandler) StreamComments(c *gin.Context) {
	videoID, ok := h.videoIDFromQuery(c)
	if !ok {
		return
	}
	log.Printf("[INFO] StreamComments called with videoId: %s", videoID)

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	pages, total := 0, 0
	for page, err := range h.pages.Pages(c.Request.Context(), videoID) {
		if err != nil {
			log.Printf("[ERROR] Stream for videoId=%s aborted after %d pages: %v", videoID, pages, err)
			_, msg := statusFor(err)
			c.SSEvent(utils.EventError, gin.H{"error": msg, "pages": pages})
			c.Writer.Flush()
			return
		}
		pages++
		total += len(page.Records)
		c.SSEvent(utils.EventPage, page)
		c.Writer.Flush()
	}

	c.SSEvent(utils.EventDone, gin.H{"videoId": videoID, "pages": pages, "count": total})
	c.Writer.Flush()
	log.Printf("[INFO] Streamed %d comments in %d pages for videoId=%s", total, pages, videoID)
}

func (h *CommentHandler) GetSession(c *gin.Context) {
	session, err := h.svc.Session(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}
