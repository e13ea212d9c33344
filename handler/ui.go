package handler

import (
	"embed"
	"html/template"
	"log"
	"net/http"

	"comment-service/service"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the embedded HTML pages for gin's renderer.
func Templates() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/*.html"))
}

func (h *CommentHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{"URL": "", "Error": ""})
}

// Submit resolves the posted link, fetches every comment and renders the table.
// An unrecognized link shows the rejection message without fetching.
func (h *CommentHandler) Submit(c *gin.Context) {
	url := c.PostForm("url")
	log.Printf("[INFO] Submit called with url: %q", url)

	session, err := h.svc.Extract(c.Request.Context(), url)
	if err != nil {
		status, msg := statusFor(err)
		c.HTML(status, "index.html", gin.H{"URL": url, "Error": msg})
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"URL":     url,
		"Error":   "",
		"Session": session,
		"Rows":    service.Rows(session.Records),
		"Replies": session.Replies(),
	})
}
