package sink

import (
	"bytes"
	"channel-report/contract"
	"channel-report/report"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
)

var _ contract.ReportSink = (*FileSink)(nil)

// WriteTSV writes the header line followed by one tab-delimited row per channel.
func WriteTSV(w io.Writer, table report.Table) error {
	writer := csv.NewWriter(w)
	writer.Comma = '\t'
	if err := writer.Write(table.Header); err != nil {
		return err
	}
	if err := writer.WriteAll(table.Records()); err != nil {
		return err
	}
	return writer.Error()
}

// WriteJSON writes the rows as an array of flat objects.
func WriteJSON(w io.Writer, table report.Table) error {
	rows := table.Rows
	if rows == nil {
		rows = []report.ChannelReport{}
	}
	return json.NewEncoder(w).Encode(rows)
}

// FileSink writes the tab-delimited table and its JSON mirror next to each other.
type FileSink struct {
	tsvPath  string
	jsonPath string
	log      *slog.Logger
}

func NewFileSink(tsvPath, jsonPath string, log *slog.Logger) *FileSink {
	return &FileSink{tsvPath: tsvPath, jsonPath: jsonPath, log: log}
}

func (s *FileSink) Write(table report.Table) error {
	var tsv bytes.Buffer
	if err := WriteTSV(&tsv, table); err != nil {
		return err
	}
	if err := os.WriteFile(s.tsvPath, tsv.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", s.tsvPath, err)
	}

	var js bytes.Buffer
	if err := WriteJSON(&js, table); err != nil {
		return err
	}
	if err := os.WriteFile(s.jsonPath, js.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", s.jsonPath, err)
	}
	s.log.Info("Report written", "tsv", s.tsvPath, "json", s.jsonPath, "channels", len(table.Rows))
	return nil
}
