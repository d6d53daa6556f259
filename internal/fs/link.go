package fs

import (
	"context"

	"github.com/pkg/errors"

	"github.com/DigiCloudTeam/digicloud/internal/errs"
	"github.com/DigiCloudTeam/digicloud/internal/model"
	"github.com/DigiCloudTeam/digicloud/pkg/random"
)

const shortURLHashLen = 10

// ShareLink fetches or creates the download link for a node.
func (s *Service) ShareLink(ctx context.Context, loc model.Location) (model.Link, error) {
	return s.client.CreateLink(ctx, loc)
}

// ShareReceiver fetches or creates the upload receiver for a folder.
func (s *Service) ShareReceiver(ctx context.Context, loc model.Location) (model.Receiver, error) {
	if !loc.IsFolder() {
		return model.Receiver{}, errs.NewErr(errs.NotFolder, "receivers attach to folders, got %s", loc)
	}
	return s.client.CreateReceiver(ctx, loc)
}

// ShuffleLinkHash retries random short-URL hashes until the server accepts
// one. A 400 means the candidate is taken, so another is proposed; other
// failures abort.
func (s *Service) ShuffleLinkHash(ctx context.Context, mountID, linkID string, attempts int) (model.Link, error) {
	var lastErr error
	for i := 0; i < attempts; i++ {
		link, err := s.client.SetLinkHash(ctx, mountID, linkID, random.ShortURLHash(shortURLHashLen))
		if err == nil {
			return link, nil
		}
		if !errs.IsConflict(err) {
			return model.Link{}, err
		}
		lastErr = err
	}
	return model.Link{}, errors.WithMessage(lastErr, "no free short-URL hash found")
}

// ShuffleReceiverHash is the receiver counterpart of ShuffleLinkHash.
func (s *Service) ShuffleReceiverHash(ctx context.Context, mountID, receiverID string, attempts int) (model.Receiver, error) {
	var lastErr error
	for i := 0; i < attempts; i++ {
		rec, err := s.client.SetReceiverHash(ctx, mountID, receiverID, random.ShortURLHash(shortURLHashLen))
		if err == nil {
			return rec, nil
		}
		if !errs.IsConflict(err) {
			return model.Receiver{}, err
		}
		lastErr = err
	}
	return model.Receiver{}, errors.WithMessage(lastErr, "no free short-URL hash found")
}
