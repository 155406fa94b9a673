package store

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/cppla/coauthors/coauthors"
	"github.com/cppla/coauthors/models"
)

// GormStore reads the CMS tables and implements the term, author and user collaborators.
type GormStore struct {
	db       *gorm.DB
	taxonomy string
}

// NewGormStore returns a store reading co-authors from taxonomy.
func NewGormStore(db *gorm.DB, taxonomy string) *GormStore {
	return &GormStore{db: db, taxonomy: taxonomy}
}

type termRow struct {
	TermID         uint
	Name           string
	Slug           string
	TermGroup      int64
	TermTaxonomyID uint
	Taxonomy       string
	Description    string
	Parent         uint
	Count          int64
}

func (r termRow) toTerm() coauthors.Term {
	return coauthors.Term{
		ID:             int64(r.TermID),
		Name:           r.Name,
		Slug:           r.Slug,
		TermGroup:      r.TermGroup,
		TermTaxonomyID: int64(r.TermTaxonomyID),
		Taxonomy:       r.Taxonomy,
		Description:    r.Description,
		Parent:         int64(r.Parent),
		Count:          r.Count,
	}
}

func toTerms(rows []termRow) []coauthors.Term {
	terms := make([]coauthors.Term, 0, len(rows))
	for _, r := range rows {
		terms = append(terms, r.toTerm())
	}
	return terms
}

func (s *GormStore) termQuery(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Table("term_taxonomy AS tt").
		Select("t.term_id, t.name, t.slug, t.term_group, tt.term_taxonomy_id, tt.taxonomy, tt.description, tt.parent, tt.count").
		Joins("JOIN terms AS t ON t.term_id = tt.term_id")
}

// ListTerms returns every term of taxonomy ordered by name.
func (s *GormStore) ListTerms(ctx context.Context, taxonomy string) ([]coauthors.Term, error) {
	var rows []termRow
	err := s.termQuery(ctx).
		Where("tt.taxonomy = ?", taxonomy).
		Order("t.name ASC, t.term_id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return toTerms(rows), nil
}

// ObjectTerms returns the terms of taxonomy bound to objectID in binding order.
func (s *GormStore) ObjectTerms(ctx context.Context, objectID int64, taxonomy string) ([]coauthors.Term, error) {
	var rows []termRow
	err := s.termQuery(ctx).
		Joins("JOIN term_relationships AS tr ON tr.term_taxonomy_id = tt.term_taxonomy_id").
		Where("tr.object_id = ? AND tt.taxonomy = ?", objectID, taxonomy).
		Order("tr.term_order ASC, tt.term_taxonomy_id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return toTerms(rows), nil
}

// GetTerm returns term termID of taxonomy.
func (s *GormStore) GetTerm(ctx context.Context, termID int64, taxonomy string) (*coauthors.Term, error) {
	var rows []termRow
	err := s.termQuery(ctx).
		Where("t.term_id = ? AND tt.taxonomy = ?", termID, taxonomy).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, coauthors.ErrRecordNotFound
	}
	t := rows[0].toTerm()
	return &t, nil
}

// AttachTerm binds termID to objectID after the existing bindings. Unknown term ids are skipped
// without error; an existing binding is left as is.
func (s *GormStore) AttachTerm(ctx context.Context, objectID, termID int64, taxonomy string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var tt models.TermTaxonomy
		err := tx.Where("term_id = ? AND taxonomy = ?", termID, taxonomy).First(&tt).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		var lastOrder int
		if err := tx.Model(&models.TermRelationship{}).
			Where("object_id = ?", objectID).
			Select("COALESCE(MAX(term_order), 0)").
			Scan(&lastOrder).Error; err != nil {
			return err
		}

		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&models.TermRelationship{
			ObjectID:       uint(objectID),
			TermTaxonomyID: tt.ID,
			TermOrder:      lastOrder + 1,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		return tx.Model(&models.TermTaxonomy{}).
			Where("term_taxonomy_id = ?", tt.ID).
			UpdateColumn("count", gorm.Expr("count + ?", 1)).Error
	})
}

// CoAuthorsForPost maps the post's author terms to co-authors by login. A post without author
// terms falls back to its own author account.
func (s *GormStore) CoAuthorsForPost(ctx context.Context, postID int64) ([]coauthors.Author, error) {
	terms, err := s.ObjectTerms(ctx, postID, s.taxonomy)
	if err != nil {
		return nil, err
	}

	authors := make([]coauthors.Author, 0, len(terms))
	for _, t := range terms {
		a, err := s.CoAuthorBy(ctx, coauthors.FieldLogin, t.Name)
		if errors.Is(err, coauthors.ErrRecordNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		authors = append(authors, a)
	}
	if len(terms) > 0 {
		return authors, nil
	}

	var post models.Post
	err = s.db.WithContext(ctx).Select("id", "author_id").First(&post, postID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return authors, nil
	}
	if err != nil {
		return nil, err
	}
	if post.AuthorID == 0 {
		return authors, nil
	}
	u, err := s.UserByID(ctx, int64(post.AuthorID))
	if errors.Is(err, coauthors.ErrRecordNotFound) {
		return authors, nil
	}
	if err != nil {
		return nil, err
	}
	return append(authors, coauthors.UserAuthorOf(u)), nil
}

func lookupColumn(field coauthors.Field, login string) (string, bool) {
	switch field {
	case coauthors.FieldID:
		return "id", true
	case coauthors.FieldLogin:
		return login, true
	case coauthors.FieldDisplayName:
		return "display_name", true
	}
	return "", false
}

// lookupValue converts value for column; ids that do not parse match nothing.
func lookupValue(field coauthors.Field, value string) (any, bool) {
	if field != coauthors.FieldID {
		return value, true
	}
	id, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return nil, false
	}
	return id, true
}

// GuestAuthorBy finds the guest author whose field exactly equals value.
func (s *GormStore) GuestAuthorBy(ctx context.Context, field coauthors.Field, value string) (*coauthors.GuestAuthor, error) {
	col, ok := lookupColumn(field, "user_login")
	if !ok {
		return nil, coauthors.ErrRecordNotFound
	}
	v, ok := lookupValue(field, value)
	if !ok {
		return nil, coauthors.ErrRecordNotFound
	}

	var g models.GuestAuthor
	err := s.db.WithContext(ctx).Where(col+" = ?", v).Order("id ASC").First(&g).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, coauthors.ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	return toGuestAuthor(&g), nil
}

// CoAuthorBy finds a guest author by field, then a user account.
func (s *GormStore) CoAuthorBy(ctx context.Context, field coauthors.Field, value string) (coauthors.Author, error) {
	g, err := s.GuestAuthorBy(ctx, field, value)
	if err == nil {
		return coauthors.GuestAuthorOf(g), nil
	}
	if !errors.Is(err, coauthors.ErrRecordNotFound) {
		return coauthors.Author{}, err
	}

	col, _ := lookupColumn(field, "user_login")
	v, ok := lookupValue(field, value)
	if !ok {
		return coauthors.Author{}, coauthors.ErrRecordNotFound
	}
	var u models.User
	err = s.db.WithContext(ctx).Where(col+" = ?", v).Order("id ASC").First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return coauthors.Author{}, coauthors.ErrRecordNotFound
	}
	if err != nil {
		return coauthors.Author{}, err
	}
	return coauthors.UserAuthorOf(toUser(&u)), nil
}

// UserByID returns user id.
func (s *GormStore) UserByID(ctx context.Context, id int64) (*coauthors.User, error) {
	var u models.User
	err := s.db.WithContext(ctx).First(&u, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, coauthors.ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	return toUser(&u), nil
}

func toGuestAuthor(g *models.GuestAuthor) *coauthors.GuestAuthor {
	return &coauthors.GuestAuthor{
		ID:            int64(g.ID),
		DisplayName:   g.DisplayName,
		FirstName:     g.FirstName,
		LastName:      g.LastName,
		UserLogin:     g.UserLogin,
		UserEmail:     g.UserEmail,
		LinkedAccount: g.LinkedAccount,
		Website:       g.Website,
		AIM:           g.AIM,
		YahooIM:       g.YahooIM,
		Jabber:        g.Jabber,
		Description:   g.Description,
	}
}

func toUser(u *models.User) *coauthors.User {
	out := &coauthors.User{
		ID:          int64(u.ID),
		Login:       u.Login,
		DisplayName: u.DisplayName,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Email:       u.Email,
		URL:         u.URL,
		Description: u.Description,
		Registered:  u.Registered,
	}
	// Malformed JSON columns leave roles and capabilities empty.
	if len(u.Roles) > 0 {
		_ = json.Unmarshal(u.Roles, &out.Roles)
	}
	if len(u.Capabilities) > 0 {
		_ = json.Unmarshal(u.Capabilities, &out.Capabilities)
	}
	return out
}
