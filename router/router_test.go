package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"comment-service/export"
	"comment-service/fetcher"
	"comment-service/handler"
	"comment-service/model"
	"comment-service/service"
	"comment-service/store"
	"comment-service/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeLister struct {
	pages    map[string]*model.ThreadPage
	err      error
	requests int
}

func (fl *fakeLister) ListThreads(ctx context.Context, videoID, pageToken string) (*model.ThreadPage, error) {
	fl.requests++
	if fl.err != nil {
		return nil, fl.err
	}
	return fl.pages[pageToken], nil
}

func twoPages() *fakeLister {
	return &fakeLister{pages: map[string]*model.ThreadPage{
		"": {
			Threads: []model.Thread{{
				TopLevel: model.CommentRecord{Author: "alice", Body: "first", LikeCount: 5, PublishedAt: "2024-05-01T10:00:00Z"},
				Replies:  []model.CommentRecord{{Author: "bob", Body: "agreed", LikeCount: 1, PublishedAt: "2024-05-02T10:00:00Z"}},
			}},
			NextPageToken: "next",
		},
		"next": {
			Threads: []model.Thread{{
				TopLevel: model.CommentRecord{Author: "carol", Body: "second", PublishedAt: "2024-05-02T11:00:00Z"},
			}},
		},
	}}
}

func newTestRouter(lister fetcher.ThreadLister) *gin.Engine {
	f := fetcher.NewFetcher(lister)
	svc := service.NewCommentService(f, store.NewMemory(time.Hour))
	return Setup(handler.NewCommentHandler(svc, f), "comment-service-test")
}

func do(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(r http.Handler, target string) *httptest.ResponseRecorder {
	return do(r, httptest.NewRequest(http.MethodGet, target, nil))
}

func TestResolveEndpoint(t *testing.T) {
	r := newTestRouter(twoPages())

	w := get(r, "/api/resolve?url="+url.QueryEscape("https://www.youtube.com/watch?v=XYZ&t=5"))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"videoId":"XYZ"}`, w.Body.String())

	w = get(r, "/api/resolve?url="+url.QueryEscape("not a url"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"`+utils.InvalidURLMessage+`"}`, w.Body.String())
}

func TestGetCommentsAndExport(t *testing.T) {
	r := newTestRouter(twoPages())

	w := get(r, "/api/comments?url="+url.QueryEscape("https://youtu.be/VID9"))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp model.CommentListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "VID9", resp.VideoID)
	assert.Equal(t, 3, resp.Count)
	assert.Equal(t, 1, resp.Replies)
	require.Len(t, resp.Comments, 3)
	assert.Equal(t, []string{"alice", "bob", "carol"},
		[]string{resp.Comments[0].Author, resp.Comments[1].Author, resp.Comments[2].Author})
	assert.True(t, resp.Comments[1].IsReply)

	w = get(r, "/export/"+resp.SessionID+"?format=csv")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="youtube_comments_VID9.csv"`, w.Header().Get("Content-Disposition"))
	fromCSV, err := export.ReadCSV(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, resp.Comments, fromCSV)

	w = get(r, "/export/"+resp.SessionID)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="youtube_comments_VID9.xlsx"`, w.Header().Get("Content-Disposition"))
	fromXLSX, err := export.ReadXLSX(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, resp.Comments, fromXLSX)

	w = get(r, "/api/sessions/"+resp.SessionID)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"videoId":"VID9"`)

	w = get(r, "/chart/"+resp.SessionID)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "echarts")
}

func TestSessionChart(t *testing.T) {
	r := newTestRouter(twoPages())

	w := get(r, "/api/comments?videoId=VID9")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp model.CommentListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	w = get(r, "/chart/"+resp.SessionID)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	body := w.Body.String()
	assert.Contains(t, body, "westeros")
	assert.Contains(t, body, "Comments per day")
	assert.Contains(t, body, "2024-05-01")
	assert.Contains(t, body, "2024-05-02")

	w = get(r, "/chart/no-such-session")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetCommentsByVideoID(t *testing.T) {
	lister := twoPages()
	r := newTestRouter(lister)

	w := get(r, "/api/comments?videoId=direct")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, lister.requests)
}

func TestGetCommentsValidation(t *testing.T) {
	lister := twoPages()
	r := newTestRouter(lister)

	w := get(r, "/api/comments")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = get(r, "/api/comments?url=garbage")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, lister.requests, "no fetch may start for an unrecognized url")
}

func TestGetCommentsUpstreamError(t *testing.T) {
	r := newTestRouter(&fakeLister{err: &googleapi.Error{
		Code:    http.StatusForbidden,
		Message: "The request cannot be completed because you have exceeded your quota.",
		Errors:  []googleapi.ErrorItem{{Reason: "quotaExceeded"}},
	}})

	w := get(r, "/api/comments?videoId=vid")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "quotaExceeded")
}

func TestExportUnknownSession(t *testing.T) {
	r := newTestRouter(twoPages())

	assert.Equal(t, http.StatusNotFound, get(r, "/export/does-not-exist").Code)
	assert.Equal(t, http.StatusBadRequest, get(r, "/export/whatever?format=pdf").Code)
	assert.Equal(t, http.StatusNotFound, get(r, "/api/sessions/does-not-exist").Code)
}

func TestStreamComments(t *testing.T) {
	r := newTestRouter(twoPages())

	w := get(r, "/api/comments/stream?videoId=vid")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Equal(t, 2, strings.Count(body, "event:"+utils.EventPage))
	assert.Contains(t, body, "event:"+utils.EventDone)
	assert.Less(t, strings.Index(body, "alice"), strings.Index(body, "carol"))
}

func TestStreamCommentsError(t *testing.T) {
	r := newTestRouter(&fakeLister{err: &googleapi.Error{Code: http.StatusNotFound, Message: "video not found"}})

	body := get(r, "/api/comments/stream?videoId=missing").Body.String()
	assert.Contains(t, body, "event:"+utils.EventError)
	assert.NotContains(t, body, "event:"+utils.EventDone)
}

func TestUISubmit(t *testing.T) {
	lister := twoPages()
	r := newTestRouter(lister)

	w := get(r, "/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `name="url"`)

	form := url.Values{"url": {"https://m.youtube.com/watch?v=UI1"}}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w = do(r, req)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "alice")
	assert.Contains(t, body, `class="reply"`)
	assert.Contains(t, body, "/export/")
	assert.Contains(t, body, "3 comments (1 replies) for video UI1")
}

func TestUISubmitRejectsInvalidURL(t *testing.T) {
	lister := twoPages()
	r := newTestRouter(lister)

	form := url.Values{"url": {"not a url"}}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := do(r, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), utils.InvalidURLMessage)
	assert.NotContains(t, w.Body.String(), "/export/")
	assert.Zero(t, lister.requests)
}

func TestHealthAndMetrics(t *testing.T) {
	r := newTestRouter(twoPages())

	assert.Equal(t, http.StatusOK, get(r, "/health").Code)
	get(r, "/api/resolve?url=https://youtu.be/x")

	w := get(r, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_requests_total")
	assert.Contains(t, w.Body.String(), "youtube_urls_resolved_total")
}
