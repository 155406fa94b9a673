package coauthors

import (
	"context"
	"errors"
	"strconv"

	"go.uber.org/zap"
)

// TermStore reads and appends author taxonomy terms.
type TermStore interface {
	// ListTerms returns every term of taxonomy in store order.
	ListTerms(ctx context.Context, taxonomy string) ([]Term, error)
	// ObjectTerms returns the terms of taxonomy bound to objectID in binding order.
	ObjectTerms(ctx context.Context, objectID int64, taxonomy string) ([]Term, error)
	// GetTerm returns ErrRecordNotFound when termID is not part of taxonomy.
	GetTerm(ctx context.Context, termID int64, taxonomy string) (*Term, error)
	// AttachTerm appends termID to objectID's bindings without removing existing ones.
	AttachTerm(ctx context.Context, objectID, termID int64, taxonomy string) error
}

// AuthorStore is the co-authors plugin's author lookup surface.
type AuthorStore interface {
	// CoAuthorsForPost returns the ordered co-authors of a post.
	CoAuthorsForPost(ctx context.Context, postID int64) ([]Author, error)
	// GuestAuthorBy finds a guest author whose field exactly equals value.
	GuestAuthorBy(ctx context.Context, field Field, value string) (*GuestAuthor, error)
	// CoAuthorBy finds a guest author, falling back to a user account, whose field equals value.
	CoAuthorBy(ctx context.Context, field Field, value string) (Author, error)
}

// UserStore reads user accounts.
type UserStore interface {
	UserByID(ctx context.Context, id int64) (*User, error)
}

// Resolver maps author terms and lookup keys to concrete author records.
type Resolver struct {
	terms    TermStore
	authors  AuthorStore
	users    UserStore
	taxonomy string
	log      *zap.Logger
}

// NewResolver builds a Resolver over the given collaborators. A nil logger disables logging.
func NewResolver(terms TermStore, authors AuthorStore, users UserStore, taxonomy string, log *zap.Logger) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{terms: terms, authors: authors, users: users, taxonomy: taxonomy, log: log}
}

// ScopedTerms returns the author terms bound to parentID, or every author term when parentID is zero.
func (r *Resolver) ScopedTerms(ctx context.Context, parentID int64) ([]Term, error) {
	if parentID != 0 {
		return r.terms.ObjectTerms(ctx, parentID, r.taxonomy)
	}
	return r.terms.ListTerms(ctx, r.taxonomy)
}

// ResolveByKey finds the author whose field equals value. With a parent, only that post's
// co-authors are considered; without one the guest author lookup is used directly.
func (r *Resolver) ResolveByKey(ctx context.Context, field Field, value string, parentID int64) (Author, error) {
	if parentID != 0 {
		authors, err := r.authors.CoAuthorsForPost(ctx, parentID)
		if err != nil {
			return Author{}, err
		}
		for _, a := range authors {
			if a.Field(field) == value {
				return a, nil
			}
		}
		return Author{}, ErrRecordNotFound
	}

	g, err := r.authors.GuestAuthorBy(ctx, field, value)
	if err != nil {
		return Author{}, err
	}
	return GuestAuthorOf(g), nil
}

// ResolveUsers returns the user accounts whose ids are embedded in the scoped term descriptions,
// in term order. Terms without an id, or whose id names no user, are skipped.
func (r *Resolver) ResolveUsers(ctx context.Context, parentID int64) ([]*User, error) {
	terms, err := r.ScopedTerms(ctx, parentID)
	if err != nil {
		return nil, err
	}

	users := make([]*User, 0, len(terms))
	for _, t := range terms {
		id, ok := ExtractUserID(t.Description)
		if !ok {
			r.log.Debug("term has no embedded user id", zap.Int64("term_id", t.ID))
			continue
		}
		u, err := r.users.UserByID(ctx, id)
		if err != nil {
			if errors.Is(err, ErrRecordNotFound) {
				r.log.Debug("term user id does not resolve", zap.Int64("term_id", t.ID), zap.Int64("user_id", id))
				continue
			}
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}

// ResolveSingleUser finds the first scoped term whose description mentions targetID as a whole
// word and returns that user account.
func (r *Resolver) ResolveSingleUser(ctx context.Context, targetID, parentID int64) (*User, error) {
	terms, err := r.ScopedTerms(ctx, parentID)
	if err != nil {
		return nil, err
	}

	for _, t := range terms {
		id, ok := ExtractTargetUserID(t.Description, targetID)
		if !ok || id != targetID {
			continue
		}
		return r.users.UserByID(ctx, id)
	}
	return nil, ErrRecordNotFound
}

// CoAuthorsByTerm maps every author term to the co-author whose login equals the term name.
// Authors are keyed by term name: a later term with the same name replaces the earlier author in
// place. Each author records the term's usage count.
func (r *Resolver) CoAuthorsByTerm(ctx context.Context) ([]Author, error) {
	terms, err := r.terms.ListTerms(ctx, r.taxonomy)
	if err != nil {
		return nil, err
	}

	authors := make([]Author, 0, len(terms))
	index := make(map[string]int, len(terms))
	for _, t := range terms {
		a, err := r.authors.CoAuthorBy(ctx, FieldLogin, t.Name)
		if err != nil {
			if errors.Is(err, ErrRecordNotFound) {
				r.log.Debug("term has no co-author", zap.Int64("term_id", t.ID), zap.String("name", t.Name))
				continue
			}
			return nil, err
		}
		a.PostCount = t.Count
		if i, ok := index[t.Name]; ok {
			authors[i] = a
			continue
		}
		index[t.Name] = len(authors)
		authors = append(authors, a)
	}
	return authors, nil
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
