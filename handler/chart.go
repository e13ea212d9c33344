package handler

import (
	"log"
	"net/http"

	"comment-service/service"

	"github.com/gin-gonic/gin"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// SessionChart renders comments per day, split into top-level comments and replies.
func (h *CommentHandler) SessionChart(c *gin.Context) {
	session, err := h.svc.Session(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	counts := service.DailyCounts(session.Records)

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Comments per day", Subtitle: session.VideoID}),
		charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	days := make([]string, 0, len(counts))
	topLevel := make([]opts.BarData, 0, len(counts))
	replies := make([]opts.BarData, 0, len(counts))
	for _, dc := range counts {
		days = append(days, dc.Day)
		topLevel = append(topLevel, opts.BarData{Value: dc.TopLevel})
		replies = append(replies, opts.BarData{Value: dc.Replies})
	}
	bar.SetXAxis(days).
		AddSeries("Comments", topLevel).
		AddSeries("Replies", replies)
	bar.SetSeriesOptions(charts.WithBarChartOpts(opts.BarChart{Stack: "total"}))

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := bar.Render(c.Writer); err != nil {
		log.Printf("[ERROR] Chart render failed for session %s: %v", session.ID, err)
	}
}
