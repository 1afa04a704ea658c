package app

import (
	"net/http/httptest"
	"testing"
)

func newCollector(t *testing.T, c *collector) string {
	t.Helper()
	srv := httptest.NewServer(c)
	t.Cleanup(srv.Close)
	return srv.URL
}
