package endpoints_test

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devreg/pkg/server"
)

func seedLocations(t *testing.T, s *server.Server, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		w := doRequest(t, s, "POST", "/api/location", url.Values{
			"name": {fmt.Sprintf("site-%03d", i)},
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}
}

func TestListEnvelope(t *testing.T) {
	s := newTestServer(t)
	seedLocations(t, s, 3)

	w := doRequest(t, s, "GET", "/api/location", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.EqualValues(t, 1, body["page"])
	assert.EqualValues(t, 100, body["page_size"])
	assert.EqualValues(t, 1, body["max_page"])
	assert.EqualValues(t, 3, body["total"])
	assert.Len(t, body["data"], 3)
}

func TestListEmptyCollection(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s, "GET", "/api/location", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.EqualValues(t, 0, body["total"])
	assert.EqualValues(t, 0, body["max_page"])
	assert.Len(t, body["data"], 0)
}

// A requested page beyond the last one collapses to page 1 instead of
// clamping to the maximum page.
func TestListPageBeyondMaxCollapses(t *testing.T) {
	s := newTestServer(t)
	seedLocations(t, s, 3)

	w := doRequest(t, s, "GET", "/api/location?page=999&page_size=100", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.EqualValues(t, 1, body["page"])
	assert.EqualValues(t, 1, body["max_page"])
	assert.Len(t, body["data"], 3)
}

func TestListPaging(t *testing.T) {
	s := newTestServer(t)
	seedLocations(t, s, 5)

	names := make([]string, 0, 5)
	for _, page := range []string{"1", "2", "3"} {
		w := doRequest(t, s, "GET", "/api/location?page="+page+"&page_size=2", nil)
		require.Equal(t, http.StatusOK, w.Code)

		body := decodeBody(t, w)
		assert.EqualValues(t, 2, body["page_size"])
		assert.EqualValues(t, 3, body["max_page"])
		assert.EqualValues(t, 5, body["total"])

		for _, item := range body["data"].([]any) {
			names = append(names, item.(map[string]any)["name"].(string))
		}
	}

	// Pages partition the collection in identifier order.
	assert.Equal(t, []string{"site-000", "site-001", "site-002", "site-003", "site-004"}, names)
}

// When the total is an exact multiple of the page size, the computed
// max_page is 0 and every page request collapses to page 1. Established
// behavior, asserted here so nobody corrects it by accident.
func TestListExactMultipleEdgeCase(t *testing.T) {
	s := newTestServer(t)
	seedLocations(t, s, 4)

	for _, page := range []string{"1", "2", "999"} {
		w := doRequest(t, s, "GET", "/api/location?page="+page+"&page_size=2", nil)
		require.Equal(t, http.StatusOK, w.Code)

		body := decodeBody(t, w)
		assert.EqualValues(t, 1, body["page"])
		assert.EqualValues(t, 0, body["max_page"])
		assert.EqualValues(t, 4, body["total"])
		assert.Len(t, body["data"], 2)
	}
}

func TestListMalformedParametersNormalized(t *testing.T) {
	s := newTestServer(t)
	seedLocations(t, s, 3)

	for _, query := range []string{
		"?page=junk",
		"?page=-1",
		"?page=0",
		"?page_size=junk&page=junk",
	} {
		w := doRequest(t, s, "GET", "/api/location"+query, nil)
		require.Equal(t, http.StatusOK, w.Code, "query %s", query)

		body := decodeBody(t, w)
		assert.EqualValues(t, 1, body["page"], "query %s", query)
	}
}

func TestListPageSizeCap(t *testing.T) {
	s := newTestServer(t)
	seedLocations(t, s, 3)

	// Above the cap the page size collapses to 1, per the normalization
	// policy (no clamping to the cap).
	w := doRequest(t, s, "GET", "/api/location?page_size=500", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.EqualValues(t, 1, body["page_size"])
	assert.Len(t, body["data"], 1)
}
