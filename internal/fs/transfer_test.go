package fs

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DigiCloudTeam/digicloud/internal/client"
	"github.com/DigiCloudTeam/digicloud/internal/conf"
	"github.com/DigiCloudTeam/digicloud/internal/errs"
	"github.com/DigiCloudTeam/digicloud/internal/model"
)

func newTestService(handler http.Handler) (*Service, *httptest.Server) {
	ts := httptest.NewServer(handler)
	cfg := conf.DefaultConfig("")
	cfg.BaseURL = ts.URL
	cfg.RetryNum = 0
	return NewService(client.FromConf(cfg), cfg), ts
}

func listingJSON(names ...string) string {
	var items []string
	for _, n := range names {
		isDir := strings.HasSuffix(n, "/")
		n = strings.TrimSuffix(n, "/")
		typ, ct := "file", "text/plain"
		if isDir {
			typ, ct = "dir", "application/x-dir"
		}
		items = append(items, `{"name":"`+n+`","type":"`+typ+`","modified":1,"size":1,"contentType":"`+ct+`"}`)
	}
	return `{"file":{"name":"dst","type":"dir","modified":1,"size":0,"contentType":"application/x-dir"},"files":[` + strings.Join(items, ",") + `]}`
}

func TestNextAvailableName(t *testing.T) {
	testCases := []struct {
		name     string
		existing []string
		expected string
	}{
		{"report.txt", nil, "report.txt"},
		{"report.txt", []string{"report.txt"}, "report (1).txt"},
		{"report.txt", []string{"report.txt", "report (1).txt"}, "report (2).txt"},
		{"README", []string{"README"}, "README (1)"},
		{"archive.tar.gz", []string{"archive.tar.gz"}, "archive.tar (1).gz"},
		{".profile", []string{".profile"}, ".profile (1)"},
	}
	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			set := make(map[string]struct{}, len(tc.existing))
			for _, e := range tc.existing {
				set[e] = struct{}{}
			}
			got := nextAvailableName(tc.name, func(n string) bool {
				_, ok := set[n]
				return ok
			})
			require.Equal(t, tc.expected, got)
		})
	}
}

func TestCopyRenamesOnCollision(t *testing.T) {
	var mu sync.Mutex
	var copiedTo []string
	s, ts := newTestService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/files/list"):
			w.Write([]byte(listingJSON("report.txt", "report (1).txt")))
		case strings.HasSuffix(r.URL.Path, "/files/copy"):
			body := make([]byte, r.ContentLength)
			r.Body.Read(body)
			mu.Lock()
			copiedTo = append(copiedTo, string(body))
			mu.Unlock()
		default:
			t.Errorf("unexpected call %s", r.URL.Path)
		}
	}))
	defer ts.Close()

	report, err := s.Copy(context.Background(),
		[]model.Location{{MountID: "m1", Path: "/docs/report.txt"}},
		model.Location{MountID: "m1", Path: "/backup/"})
	require.NoError(t, err)
	require.Equal(t, VerdictOK, report.Verdict())
	require.Len(t, copiedTo, 1)
	require.Contains(t, copiedTo[0], `"toPath":"/backup/report (2).txt"`)
}

func TestCopySiblingsWithSameNameGetDistinctTargets(t *testing.T) {
	var mu sync.Mutex
	var targets []string
	s, ts := newTestService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/files/list"):
			w.Write([]byte(listingJSON()))
		case strings.HasSuffix(r.URL.Path, "/files/copy"):
			body := make([]byte, r.ContentLength)
			r.Body.Read(body)
			mu.Lock()
			targets = append(targets, string(body))
			mu.Unlock()
		}
	}))
	defer ts.Close()

	report, err := s.Copy(context.Background(),
		[]model.Location{
			{MountID: "m1", Path: "/docs/report.txt"},
			{MountID: "m2", Path: "/other/report.txt"},
		},
		model.Location{MountID: "m1", Path: "/backup/"})
	require.NoError(t, err)
	require.Equal(t, VerdictOK, report.Verdict())
	joined := strings.Join(targets, "\n")
	require.Contains(t, joined, `"toPath":"/backup/report.txt"`)
	require.Contains(t, joined, `"toPath":"/backup/report (1).txt"`)
}

func TestCopyIntoItselfRejectedLocally(t *testing.T) {
	s, ts := newTestService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no network call expected")
	}))
	defer ts.Close()

	_, err := s.Copy(context.Background(),
		[]model.Location{{MountID: "m1", Path: "/docs/"}},
		model.Location{MountID: "m1", Path: "/docs/sub/"})
	require.ErrorIs(t, err, errs.SelfDestination)

	// the folder itself is also not a valid destination
	_, err = s.Move(context.Background(),
		[]model.Location{{MountID: "m1", Path: "/docs/"}},
		model.Location{MountID: "m1", Path: "/docs/"})
	require.ErrorIs(t, err, errs.SelfDestination)
}

func TestMoveNeverRenames(t *testing.T) {
	var gotBody string
	s, ts := newTestService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/files/move"):
			body := make([]byte, r.ContentLength)
			r.Body.Read(body)
			gotBody = string(body)
		case strings.HasSuffix(r.URL.Path, "/files/list"):
			t.Error("move must not scan the destination listing")
		}
	}))
	defer ts.Close()

	_, err := s.Move(context.Background(),
		[]model.Location{{MountID: "m1", Path: "/docs/report.txt"}},
		model.Location{MountID: "m1", Path: "/backup/"})
	require.NoError(t, err)
	require.Contains(t, gotBody, `"toPath":"/backup/report.txt"`)
}

func TestBatchAggregateFiresOnceAfterAllItems(t *testing.T) {
	var mu sync.Mutex
	moved := 0
	s, ts := newTestService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/files/move") {
			mu.Lock()
			moved++
			mu.Unlock()
		}
	}))
	defer ts.Close()

	sources := []model.Location{
		{MountID: "m1", Path: "/docs/a.txt"},
		{MountID: "m1", Path: "/docs/b.txt"},
		{MountID: "m1", Path: "/docs/c.txt"},
	}
	report, err := s.Move(context.Background(), sources, model.Location{MountID: "m1", Path: "/backup/"})
	require.NoError(t, err)
	require.Equal(t, 3, moved)
	require.Len(t, report.Outcomes, 3)
	require.Equal(t, VerdictOK, report.Verdict())
	require.NoError(t, report.Err())
}

func TestDelete404NeedsRefresh(t *testing.T) {
	s, ts := newTestService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	report, err := s.Delete(context.Background(), []model.Location{{MountID: "m1", Path: "/gone.txt"}})
	require.NoError(t, err)
	require.Equal(t, VerdictStale, report.Verdict())
	require.True(t, report.NeedsRefresh())
}

func TestDeleteMixed400And404ReportsConflict(t *testing.T) {
	s, ts := newTestService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.RawQuery, "locked") {
			w.WriteHeader(http.StatusBadRequest)
		} else {
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer ts.Close()

	report, err := s.Delete(context.Background(), []model.Location{
		{MountID: "m1", Path: "/locked.txt"},
		{MountID: "m1", Path: "/gone.txt"},
	})
	require.NoError(t, err)
	require.Equal(t, VerdictConflict, report.Verdict())
}
