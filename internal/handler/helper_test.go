package handler

import (
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/require"
	"github.com/wmsdemo/wms/internal/adapter/bbolt_engine"
	"github.com/wmsdemo/wms/internal/adapter/search"
	"github.com/wmsdemo/wms/internal/controller"
	"github.com/wmsdemo/wms/internal/session"
	"github.com/wmsdemo/wms/pkg/model"
)

type testClient struct {
	t      *testing.T
	srv    *httptest.Server
	client *http.Client
	store  *session.Store
}

func WithTestServer(t *testing.T, fn func(c *testClient)) {
	dir, err := os.MkdirTemp(os.TempDir(), "wms-test")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	kv, err := bbolt_engine.OpenLocalStorage(filepath.Join(dir, "local.db"))
	require.NoError(t, err)
	defer kv.Close()

	creds, err := model.StaticCredentials()
	require.NoError(t, err)
	store, err := session.Open(kv, creds)
	require.NoError(t, err)

	userIndex, err := search.NewIndex("users")
	require.NoError(t, err)
	defer userIndex.Close()
	locationIndex, err := search.NewIndex("storage")
	require.NoError(t, err)
	defer locationIndex.Close()

	users, err := controller.NewUsers(userIndex)
	require.NoError(t, err)
	locations, err := controller.NewLocations(locationIndex)
	require.NoError(t, err)

	r := mux.NewRouter()
	err = Router{
		Session:    store,
		FlashStore: sessions.NewCookieStore([]byte("test-secret")),
		InstanceID: "test-instance",
		Users:      users,
		Locations:  locations,
		Routes:     controller.NewRoutes(),
		Robots:     controller.NewRobots(time.Now()),
	}.Build(r)
	require.NoError(t, err)

	srv := httptest.NewServer(r)
	defer srv.Close()

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	fn(&testClient{
		t:     t,
		srv:   srv,
		store: store,
		client: &http.Client{
			Jar: jar,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	})
}

func (c *testClient) do(method, path string, body url.Values) *http.Response {
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequest(method, c.srv.URL+path, strings.NewReader(body.Encode()))
		require.NoError(c.t, err)
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req, err = http.NewRequest(method, c.srv.URL+path, nil)
		require.NoError(c.t, err)
	}
	resp, err := c.client.Do(req)
	require.NoError(c.t, err)
	c.t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func (c *testClient) doJSON(method, path, body string) *http.Response {
	req, err := http.NewRequest(method, c.srv.URL+path, strings.NewReader(body))
	require.NoError(c.t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.client.Do(req)
	require.NoError(c.t, err)
	c.t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func (c *testClient) login() {
	resp := c.do(http.MethodPost, LoginPath, url.Values{
		"username": {model.DefaultUsername},
		"password": {model.DefaultPassword},
	})
	require.Equal(c.t, http.StatusSeeOther, resp.StatusCode)
}
