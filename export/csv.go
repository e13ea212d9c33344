package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"comment-service/model"
)

// CSV writes comma-separated files. Line breaks inside cells are written as "\n":
// encoding/csv reads a quoted "\r\n" back as "\n", so that is the only form that
// survives a round trip.
type CSV struct{}

func (CSV) Extension() string { return "csv" }

func (CSV) ContentType() string { return "text/csv; charset=utf-8" }

func (CSV) Write(w io.Writer, records []model.CommentRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{
			normalizeNewlines(r.Author),
			normalizeNewlines(r.Body),
			strconv.FormatInt(r.LikeCount, 10),
			r.PublishedAt,
			replyFlag(r.IsReply),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func normalizeNewlines(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}

// ReadCSV reads a file written by CSV back into records.
func ReadCSV(r io.Reader) ([]model.CommentRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(Columns)

	if _, err := cr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("csv has no header row")
		}
		return nil, err
	}

	records := []model.CommentRecord{}
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		rec, err := parseRow(line, row)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}
