package endpoints_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"devreg/pkg/model"
	"devreg/pkg/server"
	"devreg/pkg/server/endpoints"
)

// newTestServer builds a server over a throwaway sqlite database with the
// full REST surface registered.
func newTestServer(t *testing.T) *server.Server {
	t.Helper()

	dbFile := filepath.Join(t.TempDir(), "endpoints_ut.db")
	gormDB, err := gorm.Open(
		sqlite.Open(dbFile+"?_foreign_keys=on"),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	require.NoError(t, err)
	require.NoError(t, gormDB.AutoMigrate(&model.ApiUser{}, &model.Location{}, &model.Device{}))

	s := server.NewServer(gormDB, zerolog.Nop(), "127.0.0.1", "0")
	endpoints.RegisterAll(s)
	return s
}

func doRequest(t *testing.T, s *server.Server, method, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
