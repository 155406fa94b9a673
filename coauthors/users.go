package coauthors

import "context"

func invalidUser() *Error {
	return NotFound("rest_co_authors_get_users", "Invalid authors id.")
}

// ListUsers returns the user accounts linked from the scoped author terms.
func (s *Service) ListUsers(ctx context.Context, req *Request) ([]Item, error) {
	users, err := s.resolver.ResolveUsers(ctx, req.ParentID)
	if err != nil {
		return nil, s.fail(err, invalidUser())
	}

	items := make([]Item, 0, len(users))
	for _, u := range users {
		items = append(items, s.presenter.User(u, s.bases.Users, req))
	}
	if len(items) == 0 {
		return nil, invalidUser()
	}
	return items, nil
}

// GetUser returns user req.ID when one of the scoped author terms links to it.
func (s *Service) GetUser(ctx context.Context, req *Request) (Item, error) {
	u, err := s.resolver.ResolveSingleUser(ctx, req.ID, req.ParentID)
	if err != nil {
		return nil, s.fail(err, invalidUser())
	}
	return s.presenter.User(u, s.bases.Users, req), nil
}
