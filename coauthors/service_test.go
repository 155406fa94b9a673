package coauthors

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireStatus(t *testing.T, err error, status int, code string) *Error {
	t.Helper()
	var e *Error
	require.True(t, errors.As(err, &e), "expected *Error, got %v", err)
	assert.Equal(t, status, e.Status)
	assert.Equal(t, code, e.Code)
	assert.NotEmpty(t, e.Message)
	return e
}

func TestListTerms(t *testing.T) {
	f := newFixture()

	items, err := f.svc.ListTerms(context.Background(), &Request{})
	require.NoError(t, err)
	assert.Len(t, items, 4)

	items, err = f.svc.ListTerms(context.Background(), &Request{ParentID: 42})
	require.NoError(t, err)
	require.Len(t, items, 2)
	term := items[0].(*TermItem)
	assert.Equal(t, int64(7), term.ID)
	assert.Equal(t, "http://example.test/wp-json/co-authors/v1/author-terms/7", term.Links["about"][0].Href)
	assert.True(t, term.Links["about"][0].Embeddable)
}

func TestListTermsEmptyIsNotFound(t *testing.T) {
	f := newFixture()

	_, err := f.svc.ListTerms(context.Background(), &Request{ParentID: 77})
	requireStatus(t, err, http.StatusNotFound, "rest_authors_get_term")
}

func TestListTermsStoreFailure(t *testing.T) {
	f := newFixture()
	f.terms.listErr = errBackend

	_, err := f.svc.ListTerms(context.Background(), &Request{})
	requireStatus(t, err, http.StatusInternalServerError, "rest_co_authors_store_error")
	assert.ErrorIs(t, err, errBackend)
}

func TestGetTerm(t *testing.T) {
	f := newFixture()

	item, err := f.svc.GetTerm(context.Background(), &Request{ID: 8})
	require.NoError(t, err)
	assert.Equal(t, "bob", item.(*TermItem).Name)

	_, err = f.svc.GetTerm(context.Background(), &Request{ID: 8, ParentID: 42})
	requireStatus(t, err, http.StatusNotFound, "rest_authors_get_term")

	_, err = f.svc.GetTerm(context.Background(), &Request{ID: 0})
	requireStatus(t, err, http.StatusNotFound, "rest_authors_get_term")

	_, err = f.svc.GetTerm(context.Background(), &Request{ID: 404})
	requireStatus(t, err, http.StatusNotFound, "rest_authors_get_term")
}

func TestAttachTermThenGet(t *testing.T) {
	f := newFixture()
	var fired []int64
	f.hooks.InsertAuthor = append(f.hooks.InsertAuthor, func(termID int64, req *Request) {
		fired = append(fired, termID)
	})

	item, location, err := f.svc.AttachTerm(context.Background(), &Request{ParentID: 42, ID: 8})
	require.NoError(t, err)
	assert.Equal(t, int64(8), item.ItemID())
	assert.Equal(t, "http://example.test/wp-json/co-authors/v1/posts/42/author-terms/8", location)
	assert.Equal(t, []int64{8}, fired)

	got, err := f.svc.GetTerm(context.Background(), &Request{ParentID: 42, ID: 8})
	require.NoError(t, err)
	assert.Equal(t, int64(8), got.ItemID())

	items, err := f.svc.ListTerms(context.Background(), &Request{ParentID: 42})
	require.NoError(t, err)
	assert.Len(t, items, 3, "attach appends without replacing existing bindings")
}

func TestAttachUnknownTermFailsConfirmation(t *testing.T) {
	f := newFixture()
	fired := false
	f.hooks.InsertAuthor = append(f.hooks.InsertAuthor, func(int64, *Request) { fired = true })

	_, _, err := f.svc.AttachTerm(context.Background(), &Request{ParentID: 42, ID: 404})
	requireStatus(t, err, http.StatusNotFound, "create_item")
	assert.False(t, fired)
}

func TestAttachWriteFailure(t *testing.T) {
	f := newFixture()
	f.terms.attachFn = func(int64, int64) error { return errBackend }

	_, _, err := f.svc.AttachTerm(context.Background(), &Request{ParentID: 42, ID: 8})
	requireStatus(t, err, http.StatusInternalServerError, "rest_authors_attach_term")
	assert.ErrorIs(t, err, errBackend)
}

func TestAttachWithoutParent(t *testing.T) {
	f := newFixture()

	_, _, err := f.svc.AttachTerm(context.Background(), &Request{ID: 8})
	requireStatus(t, err, http.StatusNotFound, "rest_post_invalid_id")
}

func TestDetachIsUnsupported(t *testing.T) {
	f := newFixture()
	f.terms.attachFn = func(int64, int64) error {
		t.Fatal("detach must not write")
		return nil
	}

	for _, req := range []*Request{{}, {ParentID: 42, ID: 7}, {ParentID: 5, ID: 999}} {
		err := f.svc.DetachTerm(context.Background(), req)
		e := requireStatus(t, err, http.StatusInternalServerError, "rest_authors_delete_author_item")
		assert.Contains(t, e.Message, "not supported")
	}

	items, err := f.svc.ListTerms(context.Background(), &Request{ParentID: 42})
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestListCoAuthors(t *testing.T) {
	f := newFixture()

	items, err := f.svc.ListCoAuthors(context.Background(), &Request{ParentID: 42})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "jdoe", items[0].(*CoAuthorItem).UserLogin)
	assert.Equal(t, "guest-writer", items[1].(*CoAuthorItem).UserLogin)

	items, err = f.svc.ListCoAuthors(context.Background(), &Request{})
	require.NoError(t, err)
	assert.Len(t, items, 3, "ghost term resolves to nothing and is dropped")
}

func TestListCoAuthorsRunsListFilter(t *testing.T) {
	f := newFixture()
	f.hooks.ListAuthors = append(f.hooks.ListAuthors, func(authors []Author) []Author {
		return authors[:1]
	})

	items, err := f.svc.ListCoAuthors(context.Background(), &Request{})
	require.NoError(t, err)
	assert.Len(t, items, 1)

	f.hooks.ListAuthors = append(f.hooks.ListAuthors, func([]Author) []Author { return nil })
	_, err = f.svc.ListCoAuthors(context.Background(), &Request{})
	requireStatus(t, err, http.StatusNotFound, "rest_co_authors_get_posts")
}

func TestGetCoAuthorIdentifierOrder(t *testing.T) {
	f := newFixture()

	item, err := f.svc.GetCoAuthor(context.Background(), &Request{ID: 501, UserLogin: "nobody"})
	require.NoError(t, err)
	assert.Equal(t, int64(501), item.ItemID())

	item, err = f.svc.GetCoAuthor(context.Background(), &Request{UserLogin: "guest-writer"})
	require.NoError(t, err)
	assert.Equal(t, int64(501), item.ItemID())

	item, err = f.svc.GetCoAuthor(context.Background(), &Request{DisplayName: "Guest Writer"})
	require.NoError(t, err)
	assert.Equal(t, int64(501), item.ItemID())

	_, err = f.svc.GetCoAuthor(context.Background(), &Request{})
	requireStatus(t, err, http.StatusNotFound, "rest_no_route")

	_, err = f.svc.GetCoAuthor(context.Background(), &Request{UserLogin: "nobody"})
	e := requireStatus(t, err, http.StatusNotFound, "rest_co_authors_get_post")
	assert.Equal(t, "Invalid authors user_login.", e.Message)
}

func TestGetCoAuthorScopedToParent(t *testing.T) {
	f := newFixture()

	item, err := f.svc.GetCoAuthor(context.Background(), &Request{ParentID: 42, ID: 87})
	require.NoError(t, err)
	c := item.(*CoAuthorItem)
	assert.Equal(t, "Jane Doe", c.DisplayName)
	assert.Equal(t, "", c.LinkedAccount)

	_, err = f.svc.GetCoAuthor(context.Background(), &Request{ParentID: 42, ID: 12})
	requireStatus(t, err, http.StatusNotFound, "rest_co_authors_get_post")
}

func TestListUsersAndGetUser(t *testing.T) {
	f := newFixture()

	items, err := f.svc.ListUsers(context.Background(), &Request{})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, &UserItem{
		ID:          87,
		FirstName:   "Jane",
		LastName:    "Doe",
		DisplayName: "Jane Doe",
		Links:       Links{"about": {{Href: "http://example.test/wp-json/co-authors/v1/author-users/87", Embeddable: true}}},
	}, items[0])

	item, err := f.svc.GetUser(context.Background(), &Request{ID: 12})
	require.NoError(t, err)
	assert.Equal(t, int64(12), item.ItemID())

	_, err = f.svc.GetUser(context.Background(), &Request{ID: 12, ParentID: 42})
	requireStatus(t, err, http.StatusNotFound, "rest_co_authors_get_users")

	_, err = f.svc.ListUsers(context.Background(), &Request{ParentID: 77})
	requireStatus(t, err, http.StatusNotFound, "rest_co_authors_get_users")
}

func TestListUsersLengthMatchesResolvableTerms(t *testing.T) {
	f := newFixture()

	resolvable := 0
	for _, term := range f.terms.all {
		if id, ok := ExtractUserID(term.Description); ok {
			if _, err := f.users.UserByID(context.Background(), id); err == nil {
				resolvable++
			}
		}
	}

	items, err := f.svc.ListUsers(context.Background(), &Request{})
	require.NoError(t, err)
	assert.Len(t, items, resolvable)
}
