// Package leadcsv encodes leads for export and decodes seed/import CSV files.
package leadcsv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/SscSPs/leadvault_backend/internal/core/domain"
	"github.com/SscSPs/leadvault_backend/internal/dto"
)

// ExportColumns is the fixed column order of exported files.
var ExportColumns = []string{
	"name", "industry", "location", "email", "phone", "website", "source", "email_unlocked", "phone_unlocked",
}

// Write encodes leads as CSV with a header row.
func Write(w io.Writer, leads []domain.Lead) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ExportColumns); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, l := range leads {
		record := []string{
			l.Name,
			l.Industry,
			l.Location,
			l.Email,
			l.Phone,
			l.Website,
			l.Source,
			strconv.FormatBool(l.EmailUnlocked),
			strconv.FormatBool(l.PhoneUnlocked),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row for lead %s: %w", l.LeadID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Read decodes a CSV whose first row names the columns. Columns are matched by
// name, so order does not matter and unknown columns are ignored. A missing or
// empty source column falls back to defaultSource.
func Read(r io.Reader, defaultSource string) ([]dto.CreateLeadRequest, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return []dto.CreateLeadRequest{}, nil
		}
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		index[name] = i
	}

	rows := []dto.CreateLeadRequest{}
	for line := 2; ; line++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv line %d: %w", line, err)
		}

		get := func(col string) string {
			i, ok := index[col]
			if !ok || i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		row := dto.CreateLeadRequest{
			Name:     get("name"),
			Industry: get("industry"),
			Location: get("location"),
			Email:    get("email"),
			Phone:    get("phone"),
			Website:  get("website"),
			Source:   get("source"),
		}
		if row.Source == "" {
			row.Source = defaultSource
		}
		rows = append(rows, row)
	}
	return rows, nil
}
