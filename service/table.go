package service

import (
	"sort"
	"strconv"
	"time"

	"comment-service/model"
)

// Row is one display row of the comments table.
type Row struct {
	Author      string
	Comment     string
	Likes       string
	PublishedAt string
	IsReply     bool
	Class       string
}

// Rows projects records into table rows; replies are indented under their parent.
func Rows(records []model.CommentRecord) []Row {
	rows := make([]Row, 0, len(records))
	for _, r := range records {
		class := "top-level"
		if r.IsReply {
			class = "reply"
		}
		rows = append(rows, Row{
			Author:      r.Author,
			Comment:     r.Body,
			Likes:       strconv.FormatInt(r.LikeCount, 10),
			PublishedAt: r.PublishedAt,
			IsReply:     r.IsReply,
			Class:       class,
		})
	}
	return rows
}

// DayCount is the number of comments and replies published on one UTC day.
type DayCount struct {
	Day      string
	TopLevel int
	Replies  int
}

// DailyCounts groups records by publication day, oldest first. Records whose
// timestamp does not parse are skipped.
func DailyCounts(records []model.CommentRecord) []DayCount {
	byDay := make(map[string]*DayCount)
	for _, r := range records {
		ts, err := time.Parse(time.RFC3339, r.PublishedAt)
		if err != nil {
			continue
		}
		day := ts.UTC().Format(time.DateOnly)
		dc, ok := byDay[day]
		if !ok {
			dc = &DayCount{Day: day}
			byDay[day] = dc
		}
		if r.IsReply {
			dc.Replies++
		} else {
			dc.TopLevel++
		}
	}

	counts := make([]DayCount, 0, len(byDay))
	for _, dc := range byDay {
		counts = append(counts, *dc)
	}
	sort.Slice(counts, func(i, j int) bool { return counts[i].Day < counts[j].Day })
	return counts
}
