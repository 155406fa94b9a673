package coauthors

import (
	"context"
	"errors"
	"sync"
)

var errBackend = errors.New("backend down")

type fakeTerms struct {
	mu       sync.Mutex
	all      []Term
	bindings map[int64][]int64
	attachFn func(objectID, termID int64) error
	listErr  error
}

func newFakeTerms(terms ...Term) *fakeTerms {
	return &fakeTerms{all: terms, bindings: map[int64][]int64{}}
}

func (f *fakeTerms) bind(objectID int64, termIDs ...int64) {
	f.bindings[objectID] = append(f.bindings[objectID], termIDs...)
}

func (f *fakeTerms) ListTerms(_ context.Context, taxonomy string) ([]Term, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []Term
	for _, t := range f.all {
		if t.Taxonomy == taxonomy {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTerms) ObjectTerms(_ context.Context, objectID int64, taxonomy string) ([]Term, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []Term
	for _, id := range f.bindings[objectID] {
		for _, t := range f.all {
			if t.ID == id && t.Taxonomy == taxonomy {
				out = append(out, t)
			}
		}
	}
	return out, nil
}

func (f *fakeTerms) GetTerm(_ context.Context, termID int64, taxonomy string) (*Term, error) {
	for _, t := range f.all {
		if t.ID == termID && t.Taxonomy == taxonomy {
			t := t
			return &t, nil
		}
	}
	return nil, ErrRecordNotFound
}

func (f *fakeTerms) AttachTerm(_ context.Context, objectID, termID int64, taxonomy string) error {
	if f.attachFn != nil {
		return f.attachFn(objectID, termID)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, id := range f.bindings[objectID] {
		if id == termID {
			return nil
		}
	}
	f.bindings[objectID] = append(f.bindings[objectID], termID)
	return nil
}

type fakeAuthors struct {
	guests  []*GuestAuthor
	users   []*User
	byPost  map[int64][]Author
	lookups int
}

func (f *fakeAuthors) CoAuthorsForPost(_ context.Context, postID int64) ([]Author, error) {
	return f.byPost[postID], nil
}

func (f *fakeAuthors) GuestAuthorBy(_ context.Context, field Field, value string) (*GuestAuthor, error) {
	f.lookups++
	for _, g := range f.guests {
		if g.field(field) == value {
			return g, nil
		}
	}
	return nil, ErrRecordNotFound
}

func (f *fakeAuthors) CoAuthorBy(ctx context.Context, field Field, value string) (Author, error) {
	if g, err := f.GuestAuthorBy(ctx, field, value); err == nil {
		return GuestAuthorOf(g), nil
	}
	for _, u := range f.users {
		if u.field(field) == value {
			return UserAuthorOf(u), nil
		}
	}
	return Author{}, ErrRecordNotFound
}

type fakeUsers struct {
	users map[int64]*User
	err   error
}

func (f *fakeUsers) UserByID(_ context.Context, id int64) (*User, error) {
	if f.err != nil {
		return nil, f.err
	}
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, ErrRecordNotFound
}

const testTaxonomy = "author"

func authorTerm(id int64, name, desc string) Term {
	return Term{
		ID:             id,
		Name:           name,
		Slug:           "cap-" + name,
		TermTaxonomyID: id + 100,
		Taxonomy:       testTaxonomy,
		Description:    desc,
		Count:          id,
	}
}

type fixture struct {
	terms   *fakeTerms
	authors *fakeAuthors
	users   *fakeUsers
	hooks   *Hooks
	svc     *Service
}

func newFixture() *fixture {
	jane := &User{ID: 87, Login: "jdoe", DisplayName: "Jane Doe", FirstName: "Jane", LastName: "Doe"}
	bob := &User{ID: 12, Login: "bob", DisplayName: "Bob Smith", FirstName: "Bob", LastName: "Smith"}
	guest := &GuestAuthor{ID: 501, DisplayName: "Guest Writer", UserLogin: "guest-writer", FirstName: "Guest", LastName: "Writer"}

	f := &fixture{
		terms: newFakeTerms(
			authorTerm(7, "jdoe", "Jane Doe jdoe 87 jane@example.com"),
			authorTerm(8, "bob", "Bob Smith Bob Smith bob 12 bob@example.com"),
			authorTerm(9, "guest-writer", "Guest Writer Guest Writer guest-writer"),
			authorTerm(10, "ghost", "Ghost ghost 999"),
		),
		authors: &fakeAuthors{
			guests: []*GuestAuthor{guest},
			users:  []*User{jane, bob},
			byPost: map[int64][]Author{42: {UserAuthorOf(jane), GuestAuthorOf(guest)}},
		},
		users: &fakeUsers{users: map[int64]*User{87: jane, 12: bob}},
		hooks: &Hooks{},
	}
	f.terms.bind(42, 7, 9)

	resolver := NewResolver(f.terms, f.authors, f.users, testTaxonomy, nil)
	presenter := NewPresenter("http://example.test/wp-json", "co-authors/v1", f.hooks)
	f.svc = NewService(resolver, presenter, f.hooks, Bases{
		Parent: "posts",
		Terms:  "author-terms",
		Posts:  "author-posts",
		Users:  "author-users",
	}, nil)
	return f
}
