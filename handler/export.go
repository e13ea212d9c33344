package handler

import (
	"bytes"
	"fmt"
	"log"
	"net/http"

	"comment-service/export"
	"comment-service/metrics"

	"github.com/gin-gonic/gin"
)

// ExportSession downloads a session's records as youtube_comments_<id>.<ext>.
func (h *CommentHandler) ExportSession(c *gin.Context) {
	format := c.DefaultQuery("format", "xlsx")
	sink, err := export.ForFormat(format)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.svc.Session(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := sink.Write(&buf, session.Records); err != nil {
		metrics.ExportsTotal.WithLabelValues(sink.Extension(), "error").Inc()
		log.Printf("[ERROR] Export %s failed for session %s: %v", sink.Extension(), session.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "export failed"})
		return
	}
	metrics.ExportsTotal.WithLabelValues(sink.Extension(), "success").Inc()

	filename := export.Filename(session.VideoID, sink.Extension())
	log.Printf("[INFO] Exporting %d comments as %s", len(session.Records), filename)

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, sink.ContentType(), buf.Bytes())
}
