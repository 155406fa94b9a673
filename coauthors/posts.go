package coauthors

import (
	"context"
)

// ListCoAuthors returns the co-authors of req.ParentID, or one co-author per author term when
// unscoped.
func (s *Service) ListCoAuthors(ctx context.Context, req *Request) ([]Item, error) {
	nf := NotFound("rest_co_authors_get_posts", "Invalid authors id.")

	var (
		authors []Author
		err     error
	)
	if req.ParentID != 0 {
		authors, err = s.resolver.authors.CoAuthorsForPost(ctx, req.ParentID)
	} else {
		authors, err = s.resolver.CoAuthorsByTerm(ctx)
		if err == nil {
			authors = s.hooks.listAuthors(authors)
		}
	}
	if err != nil {
		return nil, s.fail(err, nf)
	}

	items := make([]Item, 0, len(authors))
	for _, a := range authors {
		items = append(items, s.presenter.CoAuthor(a, s.bases.Posts, req))
	}
	if len(items) == 0 {
		return nil, nf
	}
	return items, nil
}

// GetCoAuthor resolves one co-author by the first identifier present on req: id, then
// user_login, then display_name.
func (s *Service) GetCoAuthor(ctx context.Context, req *Request) (Item, error) {
	switch {
	case req.ID != 0:
		return s.getCoAuthorBy(ctx, FieldID, formatID(req.ID), req)
	case req.UserLogin != "":
		return s.getCoAuthorBy(ctx, FieldLogin, req.UserLogin, req)
	case req.DisplayName != "":
		return s.getCoAuthorBy(ctx, FieldDisplayName, req.DisplayName, req)
	}
	return nil, NotFound("rest_no_route",
		"No route was found matching the URL and request method: use discovery to identify correct query paths for author-posts.")
}

func (s *Service) getCoAuthorBy(ctx context.Context, field Field, value string, req *Request) (Item, error) {
	a, err := s.resolver.ResolveByKey(ctx, field, value, req.ParentID)
	if err != nil {
		return nil, s.fail(err, NotFound("rest_co_authors_get_post", "Invalid authors "+field.String()+"."))
	}
	return s.presenter.CoAuthor(a, s.bases.Posts, req), nil
}
