package source

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/xuri/excelize/v2"
)

const userAgent = "oxdash/1.0"

// fetch reads the whole source at loc. http and https go over the network;
// file:// URLs and bare paths are read from disk.
func (l *Loader) fetch(ctx context.Context, loc string) ([]byte, error) {
	u, err := url.Parse(loc)
	if err == nil {
		switch u.Scheme {
		case "http", "https":
			return l.fetchHTTP(ctx, loc)
		case "file":
			return readFile(u.Path)
		}
	}
	return readFile(loc)
}

func (l *Loader) fetchHTTP(ctx context.Context, loc string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, loc, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFetch, loc, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFetch, loc, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s: unexpected status %d", ErrFetch, loc, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: read body: %w", ErrFetch, loc, err)
	}
	return body, nil
}

func readFile(p string) ([]byte, error) {
	body, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFetch, p, err)
	}
	return body, nil
}

// isSpreadsheet reports whether loc names an .xlsx workbook.
func isSpreadsheet(loc string) bool {
	p := loc
	if u, err := url.Parse(loc); err == nil && u.Path != "" {
		p = u.Path
	}
	return strings.EqualFold(path.Ext(p), ".xlsx")
}

// readRows decodes body into raw string rows, header first. A workbook is
// read from its first sheet.
func readRows(loc string, body []byte) ([][]string, error) {
	var (
		rows [][]string
		err  error
	)
	if isSpreadsheet(loc) {
		rows, err = readWorkbook(body)
	} else {
		rows, err = readCSV(body)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrParse, loc, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%w: %s: need a header row and at least one data row", ErrParse, loc)
	}
	return rows, nil
}

func readCSV(body []byte) ([][]string, error) {
	r := csv.NewReader(bytes.NewReader(body))
	r.FieldsPerRecord = -1
	return r.ReadAll()
}

func readWorkbook(body []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	return f.GetRows(sheets[0])
}
