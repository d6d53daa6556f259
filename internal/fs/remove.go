package fs

import (
	"context"

	"github.com/avast/retry-go"
	log "github.com/sirupsen/logrus"

	"github.com/DigiCloudTeam/digicloud/internal/model"
	"github.com/DigiCloudTeam/digicloud/pkg/errgroup"
)

// Delete removes every source concurrently and reports the aggregate. A 404
// does not fail the batch on its own: the item is already gone, the view is
// just stale and needs a refresh.
func (s *Service) Delete(ctx context.Context, sources []model.Location) (Report, error) {
	g := errgroup.NewGroupWithContext[Outcome](ctx, len(sources), s.cfg.TransferLimit,
		retry.Attempts(1), retry.LastErrorOnly(true))
	for i, src := range sources {
		i, src := i, src
		g.Go(i, func(ctx context.Context) (Outcome, error) {
			code, err := s.client.Remove(ctx, src)
			return Outcome{Source: src, Status: code, Err: err}, nil
		})
	}
	report := Report{Outcomes: collect(g.Wait())}
	log.Debugf("[digicloud] delete done: %s (%d items)", report.Verdict(), len(report.Outcomes))
	for _, src := range sources {
		s.invalidate(src.Parent())
		if src.IsFolder() {
			s.invalidate(src)
		}
	}
	return report, nil
}
