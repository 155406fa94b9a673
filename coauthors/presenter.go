package coauthors

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

const (
	ContextView = "view"
	ContextEdit = "edit"
)

// Request carries the parameters of one endpoint call.
type Request struct {
	// ParentID scopes the call to one content item; zero means unscoped.
	ParentID    int64
	ID          int64
	UserLogin   string
	DisplayName string
	// Context is the visibility tier, ContextView or ContextEdit.
	Context string
}

// Link is one hypermedia relation of an item.
type Link struct {
	Href       string `json:"href"`
	Embeddable bool   `json:"embeddable"`
}

// Links groups an item's links by relation name.
type Links map[string][]Link

// Item is a presented resource.
type Item interface {
	ItemID() int64
}

// TermItem is the author-terms representation.
type TermItem struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Slug           string `json:"slug"`
	TermGroup      int64  `json:"term_group"`
	TermTaxonomyID int64  `json:"term_taxonomy_id"`
	Taxonomy       string `json:"taxonomy"`
	Description    string `json:"description"`
	Parent         int64  `json:"parent"`
	Count          int64  `json:"count"`
	Links          Links  `json:"_links"`
}

func (t *TermItem) ItemID() int64 { return t.ID }

// CoAuthorItem is the author-posts representation of a guest author or user.
type CoAuthorItem struct {
	ID            int64  `json:"id"`
	DisplayName   string `json:"display_name"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	UserLogin     string `json:"user_login"`
	UserEmail     string `json:"user_email"`
	LinkedAccount string `json:"linked_account"`
	Website       string `json:"website"`
	AIM           string `json:"aim"`
	YahooIM       string `json:"yahooim"`
	Jabber        string `json:"jabber"`
	Description   string `json:"description"`
	Links         Links  `json:"_links"`
}

func (c *CoAuthorItem) ItemID() int64 { return c.ID }

// UserItem is the author-users representation.
type UserItem struct {
	ID          int64  `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DisplayName string `json:"display_name"`
	Links       Links  `json:"_links"`
}

func (u *UserItem) ItemID() int64 { return u.ID }

// Presenter shapes records into items, links them and runs the output filters.
type Presenter struct {
	root      string
	namespace string
	hooks     *Hooks
	strip     *bluemonday.Policy
}

// NewPresenter builds a presenter whose links are rooted at root (for example
// "https://example.com/wp-json") under namespace.
func NewPresenter(root, namespace string, hooks *Hooks) *Presenter {
	if hooks == nil {
		hooks = &Hooks{}
	}
	return &Presenter{
		root:      strings.TrimRight(root, "/"),
		namespace: strings.Trim(namespace, "/"),
		hooks:     hooks,
		strip:     bluemonday.StrictPolicy(),
	}
}

// URL joins path segments under the API root and namespace.
func (p *Presenter) URL(segments ...string) string {
	var b strings.Builder
	b.WriteString(p.root)
	b.WriteByte('/')
	b.WriteString(p.namespace)
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(strings.Trim(s, "/"))
	}
	return b.String()
}

func (p *Presenter) about(base string, id int64) Links {
	return Links{"about": {{Href: p.URL(base, formatID(id)), Embeddable: true}}}
}

func (p *Presenter) text(s string, req *Request) string {
	if req != nil && req.Context == ContextView {
		return p.strip.Sanitize(s)
	}
	return s
}

// Term presents an author term.
func (p *Presenter) Term(t Term, base string, req *Request) Item {
	item := &TermItem{
		ID:             t.ID,
		Name:           t.Name,
		Slug:           t.Slug,
		TermGroup:      t.TermGroup,
		TermTaxonomyID: t.TermTaxonomyID,
		Taxonomy:       t.Taxonomy,
		Description:    p.text(t.Description, req),
		Parent:         t.Parent,
		Count:          t.Count,
	}
	item.Links = p.about(base, item.ID)
	return applyFilters(p.hooks.PrepareTerm, item, req)
}

// CoAuthor presents a guest author or user in the co-author shape. User accounts leave the
// guest-only fields empty.
func (p *Presenter) CoAuthor(a Author, base string, req *Request) Item {
	item := &CoAuthorItem{}
	switch a.Kind {
	case KindGuestAuthor:
		g := a.Guest
		item.ID = g.ID
		item.DisplayName = g.DisplayName
		item.FirstName = g.FirstName
		item.LastName = g.LastName
		item.UserLogin = g.UserLogin
		item.UserEmail = g.UserEmail
		item.LinkedAccount = g.LinkedAccount
		item.Website = g.Website
		item.AIM = g.AIM
		item.YahooIM = g.YahooIM
		item.Jabber = g.Jabber
		item.Description = p.text(g.Description, req)
	case KindUser:
		u := a.User
		item.ID = u.ID
		item.DisplayName = u.DisplayName
		item.FirstName = u.FirstName
		item.LastName = u.LastName
		item.UserLogin = u.Login
		item.UserEmail = u.Email
		item.Website = u.URL
		item.Description = p.text(u.Description, req)
	}
	item.Links = p.about(base, item.ID)
	return applyFilters(p.hooks.PrepareCoAuthor, item, req)
}

// User presents a user account in the minimal user shape.
func (p *Presenter) User(u *User, base string, req *Request) Item {
	item := &UserItem{
		ID:          u.ID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		DisplayName: u.DisplayName,
	}
	item.Links = p.about(base, item.ID)
	return applyFilters(p.hooks.PrepareCoAuthor, item, req)
}
