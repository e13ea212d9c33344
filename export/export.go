// Package export serializes comment records into tabular files.
package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"comment-service/model"
)

// Columns is the header row shared by every format.
var Columns = []string{"Author", "Comment", "Likes", "Published at", "Is reply"}

const (
	replyYes = "Yes"
	replyNo  = "No"
)

// Sink writes an ordered sequence of records as one tabular file.
type Sink interface {
	Write(w io.Writer, records []model.CommentRecord) error
	Extension() string
	ContentType() string
}

// ForFormat picks a sink by name; an empty name selects xlsx.
func ForFormat(name string) (Sink, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "xlsx", "excel":
		return XLSX{}, nil
	case "csv":
		return CSV{}, nil
	default:
		return nil, fmt.Errorf("unsupported export format %q (use 'xlsx' or 'csv')", name)
	}
}

// Filename is the download name for a video's export.
func Filename(videoID, ext string) string {
	return fmt.Sprintf("youtube_comments_%s.%s", videoID, ext)
}

func replyFlag(isReply bool) string {
	if isReply {
		return replyYes
	}
	return replyNo
}

// parseRow turns one data row back into a record. Missing trailing cells read as empty.
func parseRow(line int, row []string) (model.CommentRecord, error) {
	cell := func(i int) string {
		if i < len(row) {
			return row[i]
		}
		return ""
	}

	var likes int64
	if s := strings.TrimSpace(cell(2)); s != "" {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return model.CommentRecord{}, fmt.Errorf("row %d: invalid likes %q: %w", line, s, err)
		}
		likes = n
	}

	var isReply bool
	switch cell(4) {
	case replyYes:
		isReply = true
	case replyNo, "":
	default:
		return model.CommentRecord{}, fmt.Errorf("row %d: invalid reply flag %q", line, cell(4))
	}

	return model.CommentRecord{
		Author:      cell(0),
		Body:        cell(1),
		LikeCount:   likes,
		PublishedAt: cell(3),
		IsReply:     isReply,
	}, nil
}
