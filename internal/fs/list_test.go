package fs

import (
	"context"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DigiCloudTeam/digicloud/internal/model"
)

func TestListSortsPerPreference(t *testing.T) {
	s, ts := newTestService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.True(t, strings.HasSuffix(r.URL.Path, "/files/list"))
		require.Equal(t, "path=%2Fdocs%2F", r.URL.RawQuery)
		w.Write([]byte(listingJSON("a.txt", "sub/")))
	}))
	defer ts.Close()

	// default preference: name ascending, folders first
	bundle, err := s.List(context.Background(), model.Location{MountID: "m1", Path: "/docs/"}, false)
	require.NoError(t, err)
	require.Len(t, bundle.Children, 2)
	require.Equal(t, "sub", bundle.Children[0].Name)
	require.Equal(t, "a.txt", bundle.Children[1].Name)
}

func TestListCachesUntilRefresh(t *testing.T) {
	var calls atomic.Int32
	s, ts := newTestService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(listingJSON("a.txt")))
	}))
	defer ts.Close()

	loc := model.Location{MountID: "m1", Path: "/docs/"}
	_, err := s.List(context.Background(), loc, false)
	require.NoError(t, err)
	_, err = s.List(context.Background(), loc, false)
	require.NoError(t, err)
	require.EqualValues(t, 1, calls.Load())

	_, err = s.List(context.Background(), loc, true)
	require.NoError(t, err)
	require.EqualValues(t, 2, calls.Load())
}

func TestDeleteInvalidatesParentListing(t *testing.T) {
	var lists atomic.Int32
	s, ts := newTestService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/files/list"):
			lists.Add(1)
			w.Write([]byte(listingJSON("a.txt")))
		case strings.HasSuffix(r.URL.Path, "/files/remove"):
		}
	}))
	defer ts.Close()

	folder := model.Location{MountID: "m1", Path: "/docs/"}
	_, err := s.List(context.Background(), folder, false)
	require.NoError(t, err)

	_, err = s.Delete(context.Background(), []model.Location{folder.AppendPathComponent("a.txt", false)})
	require.NoError(t, err)

	_, err = s.List(context.Background(), folder, false)
	require.NoError(t, err)
	require.EqualValues(t, 2, lists.Load())
}

func TestListWritableKeepsFoldersOnly(t *testing.T) {
	s, ts := newTestService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(listingJSON("a.txt", "sub/", "deep/")))
	}))
	defer ts.Close()

	bundle, err := s.List(context.Background(), model.Location{MountID: "m1", Path: "/"}, false)
	require.NoError(t, err)
	folders := ListWritable(bundle)
	require.Len(t, folders, 2)
	for _, n := range folders {
		require.True(t, n.IsFolder)
	}
}
