package client

import (
	"time"

	"github.com/DigiCloudTeam/digicloud/internal/model"
)

// Wire shapes mirror the API's JSON. Required keys are pointers so a decode
// can tell "absent" from "zero" and report precisely what was missing.

type userResp struct {
	ID          *string            `json:"id"`
	FirstName   *string            `json:"firstName"`
	LastName    *string            `json:"lastName"`
	Email       *string            `json:"email"`
	Permissions *model.Permissions `json:"permissions"`
}

func (r *userResp) decode() (model.User, error) {
	err := checkFields("user").
		require("id", r.ID != nil).
		require("firstName", r.FirstName != nil).
		require("lastName", r.LastName != nil).
		require("email", r.Email != nil).
		err()
	if err != nil {
		return model.User{}, err
	}
	u := model.User{
		ID:        *r.ID,
		FirstName: *r.FirstName,
		LastName:  *r.LastName,
		Email:     *r.Email,
	}
	if r.Permissions != nil {
		u.Permissions = *r.Permissions
	}
	return u, nil
}

type rootMountResp struct {
	ID   *string `json:"id"`
	Name *string `json:"name"`
	Path string  `json:"path"`
}

type mountResp struct {
	ID          *string            `json:"id"`
	Name        *string            `json:"name"`
	Type        *string            `json:"type"`
	Online      *bool              `json:"online"`
	Permissions *model.Permissions `json:"permissions"`
	Root        *rootMountResp     `json:"root"`
	Owner       *userResp          `json:"owner"`
}

func (r *mountResp) decode() (model.Mount, error) {
	err := checkFields("mount").
		require("id", r.ID != nil).
		require("name", r.Name != nil).
		require("type", r.Type != nil).
		require("online", r.Online != nil).
		require("permissions", r.Permissions != nil).
		err()
	if err != nil {
		return model.Mount{}, err
	}
	m := model.Mount{
		ID:          *r.ID,
		Name:        *r.Name,
		Type:        *r.Type,
		Online:      *r.Online,
		Permissions: *r.Permissions,
	}
	if r.Root != nil && r.Root.ID != nil && r.Root.Name != nil {
		m.Root = &model.RootMount{ID: *r.Root.ID, Name: *r.Root.Name, Path: r.Root.Path}
	}
	if r.Owner != nil {
		if owner, oerr := r.Owner.decode(); oerr == nil {
			m.Owner = &owner
		}
	}
	return m, nil
}

type baseLinkResp struct {
	ID          *string `json:"id"`
	Name        *string `json:"name"`
	Path        *string `json:"path"`
	Counter     int64   `json:"counter"`
	URL         *string `json:"url"`
	ShortURL    *string `json:"shortUrl"`
	Hash        *string `json:"hash"`
	Host        string  `json:"host"`
	HasPassword *bool   `json:"hasPassword"`
	Password    string  `json:"password"`
	ValidFrom   *int64  `json:"validFrom"`
	ValidTo     *int64  `json:"validTo"`
}

func (r *baseLinkResp) decode(entity string) (model.BaseLink, error) {
	err := checkFields(entity).
		require("id", r.ID != nil).
		require("name", r.Name != nil).
		require("path", r.Path != nil).
		require("url", r.URL != nil).
		require("shortUrl", r.ShortURL != nil).
		require("hash", r.Hash != nil).
		require("hasPassword", r.HasPassword != nil).
		err()
	if err != nil {
		return model.BaseLink{}, err
	}
	l := model.BaseLink{
		ID:          *r.ID,
		Name:        *r.Name,
		Path:        *r.Path,
		Counter:     r.Counter,
		URL:         *r.URL,
		ShortURL:    *r.ShortURL,
		Hash:        *r.Hash,
		Host:        r.Host,
		HasPassword: *r.HasPassword,
		Password:    r.Password,
	}
	if r.ValidFrom != nil {
		t := time.UnixMilli(*r.ValidFrom).UTC()
		l.ValidFrom = &t
	}
	if r.ValidTo != nil {
		t := time.UnixMilli(*r.ValidTo).UTC()
		l.ValidTo = &t
	}
	return l, nil
}

type linkResp struct {
	baseLinkResp
}

func (r *linkResp) decode() (model.Link, error) {
	base, err := r.baseLinkResp.decode("link")
	if err != nil {
		return model.Link{}, err
	}
	return model.Link{BaseLink: base}, nil
}

type receiverResp struct {
	baseLinkResp
	Alert *bool `json:"alert"`
}

func (r *receiverResp) decode() (model.Receiver, error) {
	base, err := r.baseLinkResp.decode("receiver")
	if err != nil {
		return model.Receiver{}, err
	}
	rec := model.Receiver{BaseLink: base}
	if r.Alert != nil {
		rec.AlertEnabled = *r.Alert
	}
	return rec, nil
}

type nodeResp struct {
	Name        *string         `json:"name"`
	Type        *string         `json:"type"`
	Modified    *int64          `json:"modified"`
	Size        *int64          `json:"size"`
	ContentType *string         `json:"contentType"`
	Hash        string          `json:"hash"`
	Mount       *mountResp      `json:"mount"`
	Link        *linkResp       `json:"link"`
	Receiver    *receiverResp   `json:"receiver"`
	Bookmark    *model.Bookmark `json:"bookmark"`
}

func (r *nodeResp) decode() (model.Node, error) {
	err := checkFields("node").
		require("name", r.Name != nil).
		require("type", r.Type != nil).
		require("modified", r.Modified != nil).
		require("size", r.Size != nil).
		require("contentType", r.ContentType != nil).
		err()
	if err != nil {
		return model.Node{}, err
	}
	n := model.Node{
		Name:        *r.Name,
		IsFolder:    *r.Type == "dir",
		Modified:    time.UnixMilli(*r.Modified).UTC(),
		Size:        *r.Size,
		ContentType: *r.ContentType,
		Hash:        r.Hash,
		Bookmark:    r.Bookmark,
	}
	if r.Mount != nil {
		if m, merr := r.Mount.decode(); merr == nil {
			n.Mount = &m
		}
	}
	if r.Link != nil {
		if l, lerr := r.Link.decode(); lerr == nil {
			n.Link = &l
		}
	}
	if r.Receiver != nil {
		if rec, rerr := r.Receiver.decode(); rerr == nil {
			n.Receiver = &rec
		}
	}
	return n, nil
}

type treeResp struct {
	nodeResp
	Children []treeResp `json:"children"`
}

// TreeNode is one node of the recursive /files/tree response.
type TreeNode struct {
	Node     model.Node
	Children []TreeNode
}

func (r *treeResp) decode() (TreeNode, error) {
	n, err := r.nodeResp.decode()
	if err != nil {
		return TreeNode{}, err
	}
	t := TreeNode{Node: n}
	for i := range r.Children {
		child, cerr := r.Children[i].decode()
		if cerr != nil {
			return TreeNode{}, cerr
		}
		t.Children = append(t.Children, child)
	}
	return t, nil
}

type searchHitResp struct {
	nodeResp
	MountID *string `json:"mountId"`
	Path    *string `json:"path"`
}

// SearchHit pairs a matched node with the location it was found at.
type SearchHit struct {
	Node     model.Node
	Location model.Location
}

func (r *searchHitResp) decode() (SearchHit, error) {
	n, err := r.nodeResp.decode()
	if err != nil {
		return SearchHit{}, err
	}
	err = checkFields("search hit").
		require("mountId", r.MountID != nil).
		require("path", r.Path != nil).
		err()
	if err != nil {
		return SearchHit{}, err
	}
	return SearchHit{
		Node:     n,
		Location: model.Location{MountID: *r.MountID, Path: *r.Path},
	}, nil
}
