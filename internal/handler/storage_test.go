package handler

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wmsdemo/wms/pkg/model"
)

func decodeLocations(t *testing.T, resp *http.Response) StorageResponse {
	var sr StorageResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&sr))
	return sr
}

func TestStorageAdd(t *testing.T) {
	WithTestServer(t, func(c *testClient) {
		c.login()

		resp := c.do(http.MethodPost, "/storage", url.Values{
			"zone":     {"C"},
			"aisle":    {"03"},
			"shelf":    {"01"},
			"capacity": {"120"},
			"occupied": {"50"},
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		var l model.StorageLocation
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&l))
		assert.Equal(t, 4, l.ID)
		assert.Equal(t, 120, l.Capacity)
		assert.Equal(t, 0, l.Occupied)
		assert.Equal(t, model.LocationAvailable, l.Status)

		resp = c.do(http.MethodGet, "/storage", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Len(t, decodeLocations(t, resp).Locations, 4)
	})
}

func TestStorageAddInvalid(t *testing.T) {
	WithTestServer(t, func(c *testClient) {
		c.login()

		resp := c.do(http.MethodPost, "/storage", url.Values{"zone": {"C"}, "aisle": {"03"}, "shelf": {"01"}})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		resp = c.do(http.MethodPost, "/storage", url.Values{"zone": {"C"}, "aisle": {"03"}, "shelf": {"01"}, "capacity": {"lots"}})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		resp = c.do(http.MethodPost, "/storage", url.Values{"zone": {"C"}, "aisle": {"03"}, "shelf": {"01"}, "capacity": {"-1"}})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestStorageUpdateDelete(t *testing.T) {
	WithTestServer(t, func(c *testClient) {
		c.login()

		form := url.Values{
			"zone":     {"B"},
			"aisle":    {"02"},
			"shelf":    {"01"},
			"capacity": {"150"},
			"occupied": {"150"},
			"status":   {"full"},
		}
		resp := c.do(http.MethodPut, "/storage/3", form)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		sr := decodeLocations(t, resp)
		if assert.Len(t, sr.Locations, 1) {
			assert.Equal(t, model.LocationFull, sr.Locations[0].Status)
			assert.Equal(t, 150, sr.Locations[0].Occupied)
		}

		resp = c.do(http.MethodGet, "/storage?q=full", nil)
		assert.Len(t, decodeLocations(t, resp).Locations, 2)

		form.Set("status", "gone")
		resp = c.do(http.MethodPut, "/storage/3", form)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		form.Del("occupied")
		form.Set("status", "full")
		resp = c.do(http.MethodPut, "/storage/3", form)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		resp = c.do(http.MethodDelete, "/storage/3", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		resp = c.do(http.MethodGet, "/storage", nil)
		assert.Len(t, decodeLocations(t, resp).Locations, 2)
	})
}
