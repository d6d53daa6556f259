package client

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/DigiCloudTeam/digicloud/internal/model"
	"github.com/DigiCloudTeam/digicloud/pkg/utils"
)

const nodeFixture = `{
	"name": "report.v2.TXT",
	"type": "file",
	"modified": 1714567800000,
	"size": 2048,
	"contentType": "text/plain",
	"hash": "abc123",
	"bookmark": {"name": "rep", "mountId": "m1", "path": "/docs/report.v2.TXT"}
}`

func TestNodeDecodeRoundTrip(t *testing.T) {
	var resp nodeResp
	require.NoError(t, utils.Json.Unmarshal([]byte(nodeFixture), &resp))
	n, err := resp.decode()
	require.NoError(t, err)

	require.Equal(t, "report.v2.TXT", n.Name)
	require.False(t, n.IsFolder)
	require.Equal(t, time.UnixMilli(1714567800000).UTC(), n.Modified)

	// derived values must agree with independent string manipulation
	name := n.Name
	wantExt := strings.ToLower(name[strings.LastIndex(name, ".")+1:])
	require.Equal(t, wantExt, n.Ext())

	parent := model.Location{MountID: "m1", Path: "/docs/"}
	require.Equal(t, "/docs/"+name, n.Location(parent).Path)
	require.NotNil(t, n.Bookmark)
	require.Equal(t, "/docs/report.v2.TXT", n.Bookmark.Path)
}

func TestNodeDecodeReportsMissingFields(t *testing.T) {
	var resp nodeResp
	require.NoError(t, utils.Json.Unmarshal([]byte(`{"name":"x","type":"file"}`), &resp))
	_, err := resp.decode()
	var derr *DecodeError
	require.ErrorAs(t, err, &derr)
	require.Equal(t, "node", derr.Entity)
	require.ElementsMatch(t, []string{"modified", "size", "contentType"}, derr.Missing)
}

func TestMountDecode(t *testing.T) {
	fixture := `{
		"id": "m1",
		"name": "My Storage",
		"type": "export",
		"online": true,
		"permissions": {"READ": true, "WRITE": false, "OWNER": false, "MOUNT": false,
			"CREATE_LINK": true, "CREATE_RECEIVER": false, "COMMENT": false},
		"root": {"id": "m0", "name": "Root", "path": "/shared/"},
		"owner": {"id": "u1", "firstName": "Ana", "lastName": "Pop", "email": "ana@example.com"}
	}`
	var resp mountResp
	require.NoError(t, utils.Json.Unmarshal([]byte(fixture), &resp))
	m, err := resp.decode()
	require.NoError(t, err)
	require.Equal(t, model.MountExport, m.Type)
	require.True(t, m.Permissions.Read)
	require.True(t, m.Permissions.CreateLink)
	require.False(t, m.CanWrite())
	require.NotNil(t, m.Root)
	require.Equal(t, "m0", m.Root.ID)
	require.NotNil(t, m.Owner)
	require.Equal(t, "Ana Pop", m.Owner.Name())
}

func TestLinkDecodeOptionalValidity(t *testing.T) {
	fixture := `{
		"id": "l1", "name": "report.txt", "path": "/docs/report.txt",
		"counter": 4, "url": "https://x/l/abc", "shortUrl": "https://x/s/abc",
		"hash": "abc", "host": "x", "hasPassword": true, "password": "pw",
		"validTo": 1714567800000
	}`
	var resp linkResp
	require.NoError(t, utils.Json.Unmarshal([]byte(fixture), &resp))
	l, err := resp.decode()
	require.NoError(t, err)
	require.True(t, l.HasPassword)
	require.Equal(t, "pw", l.Password)
	require.Nil(t, l.ValidFrom)
	require.NotNil(t, l.ValidTo)
	require.True(t, l.HasValidity())
}

func TestReceiverDecodeAlert(t *testing.T) {
	fixture := `{
		"id": "r1", "name": "inbox", "path": "/inbox/",
		"counter": 0, "url": "https://x/r/def", "shortUrl": "https://x/s/def",
		"hash": "def", "host": "x", "hasPassword": false, "alert": true
	}`
	var resp receiverResp
	require.NoError(t, utils.Json.Unmarshal([]byte(fixture), &resp))
	r, err := resp.decode()
	require.NoError(t, err)
	require.True(t, r.AlertEnabled)
	require.False(t, r.HasValidity())
}
