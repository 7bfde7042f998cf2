package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/roach88/tabcheck/internal/checker"
	"github.com/roach88/tabcheck/internal/tabular"
)

// httpTimeout bounds a single fetch when the caller's context carries
// no deadline of its own.
const httpTimeout = 30 * time.Second

// bindHTTP returns a provider that GETs a JSON array of flat objects
// and converts it to a tabular.Result.
//
// The column list is the sorted union of keys across all objects, so
// ragged responses still produce a rectangular result (missing cells
// become Null).
func bindHTTP(src Source) checker.Provider {
	client := &http.Client{Timeout: httpTimeout}

	return func(ctx context.Context) (checker.Tabular, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.URL, nil)
		if err != nil {
			return nil, fmt.Errorf("source %q: build request: %w", src.Name, err)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("source %q: fetch: %w", src.Name, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("source %q: fetch: unexpected status %s", src.Name, resp.Status)
		}

		var objects []map[string]any
		if err := json.NewDecoder(resp.Body).Decode(&objects); err != nil {
			return nil, fmt.Errorf("source %q: decode response: %w", src.Name, err)
		}

		return objectsToResult(src.Name, objects)
	}
}

// objectsToResult builds a rectangular result from decoded JSON objects.
func objectsToResult(name string, objects []map[string]any) (*tabular.Result, error) {
	seen := map[string]bool{}
	var columns []string
	for _, obj := range objects {
		for k := range obj {
			if !seen[k] {
				seen[k] = true
				columns = append(columns, k)
			}
		}
	}
	// JSON object key order is not preserved by decoding; sort for a
	// deterministic column list.
	sort.Strings(columns)

	result := tabular.NewResult(columns...)

	for i, obj := range objects {
		row := make(tabular.Row, len(columns))
		for k, raw := range obj {
			v, err := tabular.FromAny(raw)
			if err != nil {
				return nil, fmt.Errorf("source %q: row %d, field %q: %w", name, i, k, err)
			}
			row[k] = v
		}
		if err := result.AppendRow(row); err != nil {
			return nil, fmt.Errorf("source %q: %w", name, err)
		}
	}

	return result, nil
}
