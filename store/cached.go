package store

import (
	"context"
	"strconv"

	"github.com/cppla/coauthors/coauthors"
	"github.com/cppla/coauthors/utils"
)

const cachePrefix = "cache:coauthors:"

// CachedAuthorStore reads guest authors and per-post co-author lists through a redis cache.
// Misses are not cached.
type CachedAuthorStore struct {
	coauthors.AuthorStore
	cache *utils.Cache
}

// NewCachedAuthorStore wraps next with cache.
func NewCachedAuthorStore(next coauthors.AuthorStore, cache *utils.Cache) *CachedAuthorStore {
	return &CachedAuthorStore{AuthorStore: next, cache: cache}
}

func guestKey(field coauthors.Field, value string) string {
	return cachePrefix + "guest:" + field.String() + ":" + value
}

func postKey(postID int64) string {
	return cachePrefix + "post:" + strconv.FormatInt(postID, 10)
}

// GuestAuthorBy serves the lookup from cache when possible.
func (s *CachedAuthorStore) GuestAuthorBy(ctx context.Context, field coauthors.Field, value string) (*coauthors.GuestAuthor, error) {
	key := guestKey(field, value)
	var cached coauthors.GuestAuthor
	if s.cache.GetJSON(ctx, key, &cached) {
		return &cached, nil
	}

	g, err := s.AuthorStore.GuestAuthorBy(ctx, field, value)
	if err != nil {
		return nil, err
	}
	s.cache.SetJSON(ctx, key, g)
	return g, nil
}

// CoAuthorsForPost serves the post's co-author list from cache when possible.
func (s *CachedAuthorStore) CoAuthorsForPost(ctx context.Context, postID int64) ([]coauthors.Author, error) {
	key := postKey(postID)
	var cached []coauthors.Author
	if s.cache.GetJSON(ctx, key, &cached) {
		return cached, nil
	}

	authors, err := s.AuthorStore.CoAuthorsForPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if len(authors) > 0 {
		s.cache.SetJSON(ctx, key, authors)
	}
	return authors, nil
}

// ForgetPost drops the cached co-author list of postID.
func (s *CachedAuthorStore) ForgetPost(ctx context.Context, postID int64) {
	s.cache.Delete(ctx, postKey(postID))
}

// Purge drops every cached lookup.
func (s *CachedAuthorStore) Purge(ctx context.Context) {
	s.cache.InvalidateByPrefix(ctx, cachePrefix)
}
