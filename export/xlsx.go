package export

import (
	"fmt"
	"io"

	"comment-service/model"

	"github.com/xuri/excelize/v2"
)

const SheetName = "Comments"

type XLSX struct{}

func (XLSX) Extension() string { return "xlsx" }

func (XLSX) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (XLSX) Write(w io.Writer, records []model.CommentRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return err
	}

	sw, err := f.NewStreamWriter(SheetName)
	if err != nil {
		return err
	}

	header := make([]interface{}, len(Columns))
	for i, c := range Columns {
		header[i] = c
	}
	if err := sw.SetRow("A1", header); err != nil {
		return err
	}

	for i, r := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{r.Author, r.Body, r.LikeCount, r.PublishedAt, replyFlag(r.IsReply)}
		if err := sw.SetRow(cell, row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return err
	}
	return f.Write(w)
}

// ReadXLSX reads a workbook written by XLSX back into records. Cells are read raw
// so large like counts are not reformatted. Control characters XML cannot carry
// (everything below 0x20 except tab, LF and CR) come back as U+FFFD.
func ReadXLSX(r io.Reader) ([]model.CommentRecord, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := f.GetRows(SheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %s has no header row", SheetName)
	}

	records := make([]model.CommentRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		rec, err := parseRow(i+2, row)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}
