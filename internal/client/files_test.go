package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DigiCloudTeam/digicloud/internal/model"
)

const listingFixture = `{
	"file": {"name": "docs", "type": "dir", "modified": 1714567800000, "size": 0, "contentType": "application/x-dir"},
	"files": [
		{"name": "a.txt", "type": "file", "modified": 1714567800000, "size": 10, "contentType": "text/plain"},
		{"name": "sub", "type": "dir", "modified": 1714567800000, "size": 0, "contentType": "application/x-dir"},
		{"name": "broken", "type": "file"}
	]
}`

func TestListFolderDropsMalformedEntries(t *testing.T) {
	c, ts := testClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v2/mounts/m1/files/list", r.URL.Path)
		w.Write([]byte(listingFixture))
	}))
	defer ts.Close()

	bundle, err := c.ListFolder(context.Background(), model.Location{MountID: "m1", Path: "/docs/"})
	require.NoError(t, err)
	require.Equal(t, "docs", bundle.Root.Name)
	require.True(t, bundle.Root.IsFolder)
	require.Len(t, bundle.Children, 2)
	require.Equal(t, "a.txt", bundle.Children[0].Name)
	require.Equal(t, "sub", bundle.Children[1].Name)
}

func TestGetTreeSums(t *testing.T) {
	fixture := `{
		"name": "docs", "type": "dir", "modified": 1, "size": 0, "contentType": "application/x-dir",
		"children": [
			{"name": "a.txt", "type": "file", "modified": 1, "size": 10, "contentType": "text/plain"},
			{"name": "sub", "type": "dir", "modified": 1, "size": 0, "contentType": "application/x-dir",
				"children": [
					{"name": "b.bin", "type": "file", "modified": 1, "size": 32, "contentType": "application/octet-stream"}
				]}
		]
	}`
	c, ts := testClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v2/mounts/m1/files/tree", r.URL.Path)
		w.Write([]byte(fixture))
	}))
	defer ts.Close()

	tree, err := c.GetTree(context.Background(), model.Location{MountID: "m1", Path: "/docs/"})
	require.NoError(t, err)
	require.Len(t, tree.Children, 2)
	require.Len(t, tree.Children[1].Children, 1)
	require.EqualValues(t, 32, tree.Children[1].Children[0].Node.Size)
}

func TestCopySendsDestination(t *testing.T) {
	var gotPath, gotBody string
	c, ts := testClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path + "?" + r.URL.RawQuery
		buf := make([]byte, r.ContentLength)
		r.Body.Read(buf)
		gotBody = string(buf)
	}))
	defer ts.Close()

	src := model.Location{MountID: "m1", Path: "/docs/a.txt"}
	dst := model.Location{MountID: "m2", Path: "/backup/a.txt"}
	code, err := c.Copy(context.Background(), src, dst)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "/api/v2/mounts/m1/files/copy?path=%2Fdocs%2Fa.txt", gotPath)
	require.Contains(t, gotBody, `"toMountId":"m2"`)
	require.Contains(t, gotBody, `"toPath":"/backup/a.txt"`)
}

func TestDownloadURL(t *testing.T) {
	c := New(Config{BaseURL: "https://storage.example"})
	got := c.DownloadURL(model.Location{MountID: "m1", Path: "/docs/a b.txt"})
	require.Equal(t, "https://storage.example/api/v2/mounts/m1/files/get?path=%2Fdocs%2Fa%20b.txt", got)
}
