package coauthors

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

func invalidTerm() *Error {
	return NotFound("rest_authors_get_term", "Invalid authors id.")
}

// ListTerms returns the author terms of req.ParentID, or all author terms when unscoped.
func (s *Service) ListTerms(ctx context.Context, req *Request) ([]Item, error) {
	terms, err := s.resolver.ScopedTerms(ctx, req.ParentID)
	if err != nil {
		return nil, s.fail(err, invalidTerm())
	}

	items := make([]Item, 0, len(terms))
	for _, t := range terms {
		items = append(items, s.presenter.Term(t, s.bases.Terms, req))
	}
	if len(items) == 0 {
		return nil, invalidTerm()
	}
	return items, nil
}

// GetTerm returns the author term req.ID. With a parent the term must be bound to it.
func (s *Service) GetTerm(ctx context.Context, req *Request) (Item, error) {
	if req.ParentID != 0 {
		terms, err := s.resolver.terms.ObjectTerms(ctx, req.ParentID, s.resolver.taxonomy)
		if err != nil {
			return nil, s.fail(err, invalidTerm())
		}
		for _, t := range terms {
			if t.ID == req.ID {
				return s.presenter.Term(t, s.bases.Terms, req), nil
			}
		}
		return nil, invalidTerm()
	}

	if req.ID == 0 {
		return nil, invalidTerm()
	}
	t, err := s.resolver.terms.GetTerm(ctx, req.ID, s.resolver.taxonomy)
	if err != nil {
		return nil, s.fail(err, invalidTerm())
	}
	return s.presenter.Term(*t, s.bases.Terms, req), nil
}

// AttachTerm appends term req.ID to post req.ParentID, then reads it back through GetTerm.
// It returns the confirmed item and the URL of the nested resource.
func (s *Service) AttachTerm(ctx context.Context, req *Request) (Item, string, error) {
	if req.ParentID == 0 {
		return nil, "", NotFound("rest_post_invalid_id", "Invalid post ID.")
	}

	if err := s.resolver.terms.AttachTerm(ctx, req.ParentID, req.ID, s.resolver.taxonomy); err != nil {
		s.log.Error("attach author term failed",
			zap.Int64("post_id", req.ParentID), zap.Int64("term_id", req.ID), zap.Error(err))
		return nil, "", WriteFailed(err)
	}

	item, err := s.GetTerm(ctx, req)
	if err != nil {
		s.log.Warn("attached author term could not be read back",
			zap.Int64("post_id", req.ParentID), zap.Int64("term_id", req.ID), zap.Error(err))
		return nil, "", WriteConfirmationFailed(err)
	}

	location := s.presenter.URL(s.bases.Parent, formatID(req.ParentID), s.bases.Terms, formatID(item.ItemID()))
	s.hooks.insertAuthor(req.ID, req)
	s.log.Info("author term attached", zap.Int64("post_id", req.ParentID), zap.Int64("term_id", req.ID))
	return item, location, nil
}

// DetachTerm is not offered. It never touches the stores.
func (s *Service) DetachTerm(_ context.Context, req *Request) error {
	return Unsupported("rest_authors_delete_author_item",
		fmt.Sprintf("Delete authors not supported. Note: post->id %d is unchanged.", req.ParentID))
}
