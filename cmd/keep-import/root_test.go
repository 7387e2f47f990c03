package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"keep-import/config"
	"keep-import/internal/note"
)

type memosServer struct {
	mu          sync.Mutex
	probeStatus int
	created     []string
	patched     []map[string]string
}

func (s *memosServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	body, _ := io.ReadAll(r.Body)
	switch {
	case r.Method == http.MethodGet:
		if s.probeStatus != http.StatusOK {
			w.WriteHeader(s.probeStatus)
			return
		}
		w.Write([]byte(`{"memos":[]}`))
	case r.Method == http.MethodPost:
		var req map[string]string
		json.Unmarshal(body, &req)
		s.created = append(s.created, req["content"])
		w.Write([]byte(`{"name":"memos/abc"}`))
	case r.Method == http.MethodPatch:
		var req map[string]string
		json.Unmarshal(body, &req)
		s.patched = append(s.patched, req)
		w.Write([]byte(`{}`))
	}
}

func setup(t *testing.T, probeStatus int) (*memosServer, string, string) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv(config.TokenEnv, "test-token")

	folder := t.TempDir()
	raw := `{"title":"Shopping","textContent":"milk","createdTimestampUsec":1612345678901234}`
	if err := os.WriteFile(filepath.Join(folder, "shopping.json"), []byte(raw), 0o600); err != nil {
		t.Fatal(err)
	}

	srv := &memosServer{probeStatus: probeStatus}
	ts := httptest.NewServer(srv)
	t.Cleanup(ts.Close)
	return srv, ts.URL, folder
}

func execute(args ...string) (string, error) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootImport(t *testing.T) {
	srv, url, folder := setup(t, http.StatusOK)

	out, err := execute(url+"/", folder, "--yes")
	if err != nil {
		t.Fatalf("unexpected error: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Done: 1 imported, 0 failed, 0 skipped (empty)") {
		t.Errorf("unexpected output: %q", out)
	}
	if len(srv.created) != 1 || srv.created[0] != "# Shopping\n\nmilk" {
		t.Errorf("unexpected created memos: %q", srv.created)
	}
	if len(srv.patched) != 1 || srv.patched[0]["create_time"] != "2021-02-03T09:47:58.901234Z" {
		t.Errorf("unexpected patches: %v", srv.patched)
	}
	if srv.patched[0]["update_time"] != srv.patched[0]["create_time"] {
		t.Errorf("missing edit time should reuse the creation time: %v", srv.patched[0])
	}
}

func TestRootProbeUnauthorized(t *testing.T) {
	srv, url, folder := setup(t, http.StatusUnauthorized)

	out, err := execute(url, folder, "--yes")
	if !errors.Is(err, note.ErrProbeFailed) {
		t.Fatalf("expected probe failure, got %v", err)
	}
	if strings.Contains(out, "Done:") {
		t.Errorf("summary must not be printed after a failed probe: %q", out)
	}
	if len(srv.created) != 0 {
		t.Errorf("no memo may be created")
	}
}

func TestRootMissingToken(t *testing.T) {
	_, url, folder := setup(t, http.StatusOK)
	t.Setenv(config.TokenEnv, "")

	_, err := execute(url, folder)
	if !errors.Is(err, config.ErrMissingToken) {
		t.Errorf("expected ErrMissingToken, got %v", err)
	}
}

func TestRootArgs(t *testing.T) {
	t.Chdir(t.TempDir())
	if _, err := execute("https://memos.example.com"); err == nil {
		t.Errorf("expected error for missing folder argument")
	}
	if _, err := execute(); err == nil {
		t.Errorf("expected error for missing arguments")
	}
}

func TestRootDryRun(t *testing.T) {
	srv, url, folder := setup(t, http.StatusUnauthorized)
	t.Setenv(config.TokenEnv, "")

	out, err := execute(url, folder, "--dry-run")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Dry run: 1 would be imported, 0 skipped (empty)") {
		t.Errorf("unexpected output: %q", out)
	}
	if len(srv.created) != 0 {
		t.Errorf("dry run must not create memos")
	}
}
