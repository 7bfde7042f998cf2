package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/tabcheck/internal/tabular"
)

func TestBindHTTP_DecodesJSONArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"gw": 3, "player": "salah", "xp": 7.2},
			{"gw": 3, "player": "haaland", "xp": 8.1}
		]`))
	}))
	defer srv.Close()

	p, err := Bind(Source{Name: "forecast", Kind: KindHTTP, URL: srv.URL})
	require.NoError(t, err)

	res, err := p(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, res.RowCount())

	table := res.(*tabular.Result)
	// Column list is the sorted union of object keys.
	assert.Equal(t, []string{"gw", "player", "xp"}, table.Columns)
	assert.Equal(t, tabular.String("salah"), table.Cell(0, "player"))
	assert.Equal(t, tabular.Float(7.2), table.Cell(0, "xp"))
}

func TestBindHTTP_RaggedObjectsFillNull(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"a": 1}, {"b": 2}]`))
	}))
	defer srv.Close()

	p, err := Bind(Source{Name: "forecast", Kind: KindHTTP, URL: srv.URL})
	require.NoError(t, err)

	res, err := p(context.Background())
	require.NoError(t, err)

	table := res.(*tabular.Result)
	assert.Equal(t, []string{"a", "b"}, table.Columns)
	assert.Equal(t, tabular.Null{}, table.Cell(0, "b"))
	assert.Equal(t, tabular.Null{}, table.Cell(1, "a"))
}

func TestBindHTTP_EmptyArrayIsEmptyResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	p, err := Bind(Source{Name: "forecast", Kind: KindHTTP, URL: srv.URL})
	require.NoError(t, err)

	res, err := p(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, res.RowCount())
}

func TestBindHTTP_NonOKStatusIsProviderFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "maintenance", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	p, err := Bind(Source{Name: "forecast", Kind: KindHTTP, URL: srv.URL})
	require.NoError(t, err)

	_, err = p(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 503")
}

func TestBindHTTP_MalformedBodyIsProviderFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not": "an array"}`))
	}))
	defer srv.Close()

	p, err := Bind(Source{Name: "forecast", Kind: KindHTTP, URL: srv.URL})
	require.NoError(t, err)

	_, err = p(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode response")
}

func TestBindHTTP_NestedValuesRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"player": {"name": "salah"}}]`))
	}))
	defer srv.Close()

	p, err := Bind(Source{Name: "forecast", Kind: KindHTTP, URL: srv.URL})
	require.NoError(t, err)

	_, err = p(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported cell type")
}

func TestBindHTTP_ConnectionRefusedIsProviderFailure(t *testing.T) {
	// Closed server: the check must surface the transport error, not an
	// empty-result outcome.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	p, err := Bind(Source{Name: "forecast", Kind: KindHTTP, URL: url})
	require.NoError(t, err)

	_, err = p(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetch")
}
