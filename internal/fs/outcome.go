package fs

import (
	"net/http"

	"github.com/DigiCloudTeam/digicloud/internal/errs"
	"github.com/DigiCloudTeam/digicloud/internal/model"
)

// Outcome is the immutable result of one item inside a batch operation.
// Outcomes are only read after the fan-in join completes; nothing mutates
// shared flags from concurrent callbacks.
type Outcome struct {
	Source model.Location
	Status int
	Err    error
}

func (o Outcome) OK() bool {
	return o.Err == nil && o.Status >= 200 && o.Status < 300
}

type Verdict int

const (
	VerdictOK Verdict = iota
	// at least one item hit 404: stale view, refresh and move on
	VerdictStale
	// at least one item hit 400: name conflict or invalid destination
	VerdictConflict
	// at least one item failed with an unclassified server status
	VerdictServerError
	// at least one item never reached the server
	VerdictNetwork
)

func (v Verdict) String() string {
	switch v {
	case VerdictOK:
		return "ok"
	case VerdictStale:
		return "some elements no longer exist"
	case VerdictConflict:
		return "some elements already exist or the destination is invalid"
	case VerdictServerError:
		return "unexpected server error"
	case VerdictNetwork:
		return "network error"
	default:
		return "unknown"
	}
}

// Report aggregates a batch. The per-class precedence is deliberate and
// fixed: a network failure outranks a 400 conflict, which outranks a 404,
// regardless of how many items hit each class.
type Report struct {
	Outcomes []Outcome
}

func classify(o Outcome) Verdict {
	switch {
	case o.Err != nil:
		return VerdictNetwork
	case o.Status == http.StatusBadRequest, o.Status == http.StatusConflict:
		return VerdictConflict
	case o.Status == http.StatusNotFound:
		return VerdictStale
	case o.Status >= 200 && o.Status < 300:
		return VerdictOK
	default:
		return VerdictServerError
	}
}

func (r Report) Verdict() Verdict {
	worst := VerdictOK
	for _, o := range r.Outcomes {
		if v := classify(o); v > worst {
			worst = v
		}
	}
	return worst
}

// NeedsRefresh reports whether the caller should re-fetch the affected
// listings: always after any success, and after a 404 the view is stale by
// definition.
func (r Report) NeedsRefresh() bool {
	if r.Verdict() == VerdictStale {
		return true
	}
	for _, o := range r.Outcomes {
		if o.OK() {
			return true
		}
	}
	return false
}

func (r Report) Failed() []Outcome {
	var failed []Outcome
	for _, o := range r.Outcomes {
		if !o.OK() {
			failed = append(failed, o)
		}
	}
	return failed
}

// Err folds the verdict into a sentinel error, nil when every item
// succeeded.
func (r Report) Err() error {
	switch r.Verdict() {
	case VerdictOK:
		return nil
	case VerdictStale:
		return errs.ObjectNotFound
	case VerdictConflict:
		return errs.ObjectAlreadyExists
	case VerdictNetwork:
		return errs.NetworkFailure
	default:
		return errs.ServerError
	}
}
