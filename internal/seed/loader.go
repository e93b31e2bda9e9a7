// Package seed imports an initial product catalog from CSV sources at startup.
package seed

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/Lixing-Zhang/minishop/internal/models"
	"github.com/gocarina/gocsv"
	"github.com/spf13/cast"
)

// Row is one line of a seed CSV file.
// Header: name,category,price,image,visible
type Row struct {
	Name     string `csv:"name"`
	Category string `csv:"category"`
	Price    string `csv:"price"`
	Image    string `csv:"image"`
	Visible  string `csv:"visible"`
}

// Creator is the registry operation the importer needs.
type Creator interface {
	Create(req models.ProductRequest) (*models.Product, error)
}

// Loader fetches seed sources from local paths or http(s) URLs
type Loader struct {
	client *http.Client
}

// sourceResult holds the result of loading a single source
type sourceResult struct {
	index int
	rows  []models.ProductRequest
	err   error
}

// NewLoader creates a new seed loader
func NewLoader() *Loader {
	return &Loader{
		client: &http.Client{Timeout: 2 * time.Minute},
	}
}

// Load reads every source concurrently and returns the rows in source order.
// Returns error if any source fails to load
func (l *Loader) Load(ctx context.Context, sources []string) ([]models.ProductRequest, error) {
	if len(sources) == 0 {
		return nil, nil
	}

	resultChan := make(chan sourceResult, len(sources))

	var wg sync.WaitGroup
	for i, src := range sources {
		wg.Add(1)
		go func(index int, source string) {
			defer wg.Done()

			rows, err := l.loadSource(ctx, source)
			resultChan <- sourceResult{
				index: index,
				rows:  rows,
				err:   err,
			}
		}(i, src)
	}

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	results := make([]sourceResult, len(sources))
	for result := range resultChan {
		results[result.index] = result
	}

	var rows []models.ProductRequest
	for i, result := range results {
		if result.err != nil {
			return nil, fmt.Errorf("failed to load seed source %s: %w", sources[i], result.err)
		}
		rows = append(rows, result.rows...)
	}

	return rows, nil
}

func (l *Loader) loadSource(ctx context.Context, source string) ([]models.ProductRequest, error) {
	body, err := l.open(ctx, source)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	var r io.Reader = body
	if strings.HasSuffix(strings.ToLower(source), ".gz") {
		gzReader, err := gzip.NewReader(body)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer gzReader.Close()
		r = gzReader
	}

	return parseRows(r)
}

func (l *Loader) open(ctx context.Context, source string) (io.ReadCloser, error) {
	if !strings.HasPrefix(source, "http://") && !strings.HasPrefix(source, "https://") {
		f, err := os.Open(source)
		if err != nil {
			return nil, fmt.Errorf("failed to open file: %w", err)
		}
		return f, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download file: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return resp.Body, nil
}

// parseRows decodes seed CSV into product requests
func parseRows(r io.Reader) ([]models.ProductRequest, error) {
	var rows []*Row
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("error reading csv: %w", err)
	}

	reqs := make([]models.ProductRequest, 0, len(rows))
	for i, row := range rows {
		visible := false
		if v := strings.TrimSpace(row.Visible); v != "" {
			parsed, err := cast.ToBoolE(v)
			if err != nil {
				// header is line 1
				return nil, fmt.Errorf("line %d: invalid visible value %q", i+2, row.Visible)
			}
			visible = parsed
		}

		reqs = append(reqs, models.ProductRequest{
			Name:     row.Name,
			Category: row.Category,
			Price:    row.Price,
			ImageRef: row.Image,
			Visible:  visible,
		})
	}

	return reqs, nil
}

// Import validates every row and then creates them in order.
// If any row is invalid nothing is created.
func Import(registry Creator, rows []models.ProductRequest) (int, error) {
	for i, row := range rows {
		if _, err := row.Normalize(); err != nil {
			return 0, fmt.Errorf("seed row %d: %w", i+1, err)
		}
	}

	for i, row := range rows {
		if _, err := registry.Create(row); err != nil {
			return i, fmt.Errorf("seed row %d: %w", i+1, err)
		}
	}

	return len(rows), nil
}
