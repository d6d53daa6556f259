package fs

import (
	"context"
	"fmt"

	"github.com/avast/retry-go"
	log "github.com/sirupsen/logrus"

	"github.com/DigiCloudTeam/digicloud/internal/errs"
	"github.com/DigiCloudTeam/digicloud/internal/model"
	"github.com/DigiCloudTeam/digicloud/pkg/errgroup"
	"github.com/DigiCloudTeam/digicloud/pkg/utils"
)

// Copy copies every source into dstFolder, fanning the per-item requests out
// concurrently and joining on all of them before reporting. Name collisions
// in the destination are resolved by synthesizing "base (n).ext" names
// against a freshly fetched destination listing; move never renames.
func (s *Service) Copy(ctx context.Context, sources []model.Location, dstFolder model.Location) (Report, error) {
	return s.transfer(ctx, sources, dstFolder, true)
}

// Move moves every source into dstFolder. Ordering among items is not
// guaranteed; the aggregate fires once, after all items finish.
func (s *Service) Move(ctx context.Context, sources []model.Location, dstFolder model.Location) (Report, error) {
	return s.transfer(ctx, sources, dstFolder, false)
}

func (s *Service) transfer(ctx context.Context, sources []model.Location, dstFolder model.Location, isCopy bool) (Report, error) {
	if !dstFolder.IsFolder() {
		return Report{}, errs.NewErr(errs.NotFolder, "destination %s", dstFolder)
	}
	// a folder can never travel into itself or its own subtree
	for _, src := range sources {
		if src.Contains(dstFolder) {
			return Report{}, errs.NewErr(errs.SelfDestination, "%s into %s", src, dstFolder)
		}
	}

	taken := make(map[string]struct{})
	var existing map[string]struct{}
	if isCopy {
		// collision scan wants the real current state, not a cached one
		bundle, err := s.client.ListFolder(ctx, dstFolder)
		if err != nil {
			return Report{}, err
		}
		existing = make(map[string]struct{}, len(bundle.Children))
		for _, n := range bundle.Children {
			existing[n.Name] = struct{}{}
		}
	}

	g := errgroup.NewGroupWithContext[Outcome](ctx, len(sources), s.cfg.TransferLimit,
		retry.Attempts(1), retry.LastErrorOnly(true))
	for i, src := range sources {
		i, src := i, src
		name := src.Name()
		if isCopy {
			name = nextAvailableName(name, func(candidate string) bool {
				if _, ok := existing[candidate]; ok {
					return true
				}
				_, ok := taken[candidate]
				return ok
			})
			taken[name] = struct{}{}
		}
		dst := dstFolder.AppendPathComponent(name, src.IsFolder())
		g.Go(i, func(ctx context.Context) (Outcome, error) {
			var code int
			var err error
			if isCopy {
				code, err = s.client.Copy(ctx, src, dst)
			} else {
				code, err = s.client.Move(ctx, src, dst)
			}
			return Outcome{Source: src, Status: code, Err: err}, nil
		})
	}

	report := Report{Outcomes: collect(g.Wait())}
	s.afterTransfer(report, sources, dstFolder, isCopy)
	return report, nil
}

func (s *Service) afterTransfer(report Report, sources []model.Location, dstFolder model.Location, isCopy bool) {
	log.Debugf("[digicloud] transfer done: %s (%d items)", report.Verdict(), len(report.Outcomes))
	s.invalidate(dstFolder)
	if !isCopy {
		for _, src := range sources {
			s.invalidate(src.Parent())
		}
	}
}

// nextAvailableName synthesizes a non-colliding copy name: "report.txt"
// becomes "report (1).txt", then "report (2).txt"; names without an
// extension get the counter appended at the end. The scan terminates as
// soon as a candidate is absent from the listing snapshot.
func nextAvailableName(name string, exists func(string) bool) string {
	if !exists(name) {
		return name
	}
	base, ext := utils.SplitExt(name)
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s (%d)%s", base, i, ext)
		if !exists(candidate) {
			return candidate
		}
	}
}

func collect(results []errgroup.Result[Outcome]) []Outcome {
	outcomes := make([]Outcome, len(results))
	for i, r := range results {
		outcomes[i] = r.Value
		if r.Err != nil && outcomes[i].Err == nil {
			outcomes[i].Err = r.Err
		}
	}
	return outcomes
}
