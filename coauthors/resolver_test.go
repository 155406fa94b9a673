package coauthors

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveByKeyWithParentScansCoAuthors(t *testing.T) {
	f := newFixture()
	r := f.svc.resolver

	a, err := r.ResolveByKey(context.Background(), FieldLogin, "jdoe", 42)
	require.NoError(t, err)
	assert.Equal(t, KindUser, a.Kind)
	assert.Equal(t, int64(87), a.ID())

	a, err = r.ResolveByKey(context.Background(), FieldID, "501", 42)
	require.NoError(t, err)
	assert.Equal(t, KindGuestAuthor, a.Kind)

	_, err = r.ResolveByKey(context.Background(), FieldLogin, "bob", 42)
	assert.ErrorIs(t, err, ErrRecordNotFound, "bob is not a co-author of post 42")
}

func TestResolveByKeyWithoutParentUsesGuestLookup(t *testing.T) {
	f := newFixture()
	r := f.svc.resolver

	a, err := r.ResolveByKey(context.Background(), FieldDisplayName, "Guest Writer", 0)
	require.NoError(t, err)
	assert.Equal(t, int64(501), a.ID())
	assert.Equal(t, 1, f.authors.lookups)

	_, err = r.ResolveByKey(context.Background(), FieldLogin, "jdoe", 0)
	assert.ErrorIs(t, err, ErrRecordNotFound, "users are not guest authors")
}

func TestResolveUsersSkipsUnresolvableTerms(t *testing.T) {
	f := newFixture()

	users, err := f.svc.resolver.ResolveUsers(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, int64(87), users[0].ID)
	assert.Equal(t, int64(12), users[1].ID)

	users, err = f.svc.resolver.ResolveUsers(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, int64(87), users[0].ID)
}

func TestResolveUsersKeepsDuplicates(t *testing.T) {
	f := newFixture()
	f.terms.all = append(f.terms.all, authorTerm(11, "jdoe-again", "87"))

	users, err := f.svc.resolver.ResolveUsers(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, int64(87), users[2].ID)
}

func TestResolveUsersPropagatesStoreFailures(t *testing.T) {
	f := newFixture()
	f.users.err = errBackend

	_, err := f.svc.resolver.ResolveUsers(context.Background(), 0)
	assert.ErrorIs(t, err, errBackend)
}

func TestResolveSingleUser(t *testing.T) {
	f := newFixture()
	r := f.svc.resolver

	u, err := r.ResolveSingleUser(context.Background(), 87, 0)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", u.DisplayName)

	_, err = r.ResolveSingleUser(context.Background(), 12, 42)
	assert.ErrorIs(t, err, ErrRecordNotFound, "bob's term is not bound to post 42")

	_, err = r.ResolveSingleUser(context.Background(), 999, 0)
	assert.ErrorIs(t, err, ErrRecordNotFound, "term mentions 999 but no such user exists")
}

func TestResolveSingleUserIsIdempotent(t *testing.T) {
	f := newFixture()
	r := f.svc.resolver

	first, err := r.ResolveSingleUser(context.Background(), 87, 42)
	require.NoError(t, err)
	second, err := r.ResolveSingleUser(context.Background(), 87, 42)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCoAuthorsByTermKeysByName(t *testing.T) {
	f := newFixture()
	f.terms.all = append(f.terms.all, authorTerm(12, "jdoe", "duplicate name"))

	authors, err := f.svc.resolver.CoAuthorsByTerm(context.Background())
	require.NoError(t, err)
	require.Len(t, authors, 3)
	assert.Equal(t, "jdoe", authors[0].Field(FieldLogin))
	assert.Equal(t, int64(12), authors[0].PostCount, "later term with the same name replaces in place")
	assert.Equal(t, "bob", authors[1].Field(FieldLogin))
	assert.Equal(t, "guest-writer", authors[2].Field(FieldLogin))
}

func TestAuthorFieldAccessors(t *testing.T) {
	g := GuestAuthorOf(&GuestAuthor{ID: 3, UserLogin: "g", DisplayName: "G"})
	u := UserAuthorOf(&User{ID: 4, Login: "u", DisplayName: "U"})

	assert.Equal(t, "3", g.Field(FieldID))
	assert.Equal(t, "g", g.Field(FieldLogin))
	assert.Equal(t, "G", g.Field(FieldDisplayName))
	assert.Equal(t, "4", u.Field(FieldID))
	assert.Equal(t, "u", u.Field(FieldLogin))
	assert.Equal(t, "U", u.Field(FieldDisplayName))
	assert.Equal(t, "", Author{}.Field(FieldLogin))
	assert.Equal(t, int64(0), Author{}.ID())
}
