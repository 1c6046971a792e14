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

func TestUsersCRUD(t *testing.T) {
	WithTestServer(t, func(c *testClient) {
		c.login()

		resp := c.do(http.MethodPost, "/users", url.Values{
			"name":       {"Ann Lee"},
			"role":       {"Packer"},
			"department": {"Shipping"},
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		var u model.User
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&u))
		assert.Equal(t, 4, u.ID)

		resp = c.do(http.MethodPut, "/users/4", url.Values{
			"id":         {"1"},
			"name":       {"Ann Lee"},
			"role":       {"Lead Packer"},
			"department": {"Shipping"},
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		ur := decodeUsers(t, resp)
		if assert.Len(t, ur.Users, 1) {
			assert.Equal(t, 4, ur.Users[0].ID)
			assert.Equal(t, "Lead Packer", ur.Users[0].Role)
		}

		resp = c.do(http.MethodGet, "/users?q=packer", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Len(t, decodeUsers(t, resp).Users, 1)

		resp = c.do(http.MethodDelete, "/users/4", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		resp = c.do(http.MethodDelete, "/users/4", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		resp = c.do(http.MethodGet, "/users", nil)
		assert.Len(t, decodeUsers(t, resp).Users, 3)
	})
}

func TestUsersJSONBody(t *testing.T) {
	WithTestServer(t, func(c *testClient) {
		c.login()
		resp := c.doJSON(http.MethodPost, "/users", `{"name":"Ann","role":"Picker","department":"Fulfillment"}`)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})
}

func TestUsersRequiredFields(t *testing.T) {
	WithTestServer(t, func(c *testClient) {
		c.login()

		resp := c.do(http.MethodPost, "/users", url.Values{"name": {"Ann"}})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		resp = c.do(http.MethodPut, "/users/1", url.Values{"name": {""}, "role": {"x"}, "department": {"y"}})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		resp = c.do(http.MethodPut, "/users/9", url.Values{"name": {"a"}, "role": {"x"}, "department": {"y"}})
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestUsersSearchAfterIDReuse(t *testing.T) {
	WithTestServer(t, func(c *testClient) {
		c.login()

		resp := c.do(http.MethodDelete, "/users/1", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		resp = c.do(http.MethodPost, "/users", url.Values{
			"name":       {"Ann Lee"},
			"role":       {"Packer"},
			"department": {"Shipping"},
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		resp = c.do(http.MethodGet, "/users?q=Mike", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		users := decodeUsers(t, resp).Users
		if assert.Len(t, users, 1) {
			assert.Equal(t, "Mike Johnson", users[0].Name)
		}

		resp = c.do(http.MethodGet, "/users?q=Ann", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		users = decodeUsers(t, resp).Users
		if assert.Len(t, users, 1) {
			assert.Equal(t, "Ann Lee", users[0].Name)
			assert.Equal(t, 3, users[0].ID)
		}
	})
}

func TestUsersMalformedQuery(t *testing.T) {
	WithTestServer(t, func(c *testClient) {
		c.login()

		for _, q := range []string{"name:", "/[/", `"unterminated`, "name:>", "+-"} {
			resp := c.do(http.MethodGet, "/users?"+url.Values{"q": {q}}.Encode(), nil)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode, q)

			var er ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&er))
			assert.Equal(t, "bad_request", er.Error, q)
		}
	})
}
