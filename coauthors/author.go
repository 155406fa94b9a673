package coauthors

import (
	"strconv"
	"time"
)

// Term is an author taxonomy term joined with its taxonomy entry.
type Term struct {
	ID             int64
	Name           string
	Slug           string
	TermGroup      int64
	TermTaxonomyID int64
	Taxonomy       string
	Description    string
	Parent         int64
	Count          int64
}

// GuestAuthor is a byline stored as a post-type record rather than a login account.
type GuestAuthor struct {
	ID            int64
	DisplayName   string
	FirstName     string
	LastName      string
	UserLogin     string
	UserEmail     string
	LinkedAccount string
	Website       string
	AIM           string
	YahooIM       string
	Jabber        string
	Description   string
}

// User is a real account from the user store.
type User struct {
	ID           int64
	Login        string
	DisplayName  string
	FirstName    string
	LastName     string
	Email        string
	URL          string
	Description  string
	Registered   time.Time
	Roles        []string
	Capabilities map[string]bool
}

// Kind tells which record an Author carries.
type Kind int

const (
	KindGuestAuthor Kind = iota + 1
	KindUser
)

func (k Kind) String() string {
	switch k {
	case KindGuestAuthor:
		return "guest-author"
	case KindUser:
		return "user"
	default:
		return "unknown"
	}
}

// Field names the lookup keys a caller may resolve an author by.
type Field int

const (
	FieldID Field = iota + 1
	FieldLogin
	FieldDisplayName
)

func (f Field) String() string {
	switch f {
	case FieldID:
		return "id"
	case FieldLogin:
		return "user_login"
	case FieldDisplayName:
		return "display_name"
	default:
		return "unknown"
	}
}

// Author is either a guest author or a user account. Exactly one of Guest and User is set,
// matching Kind.
type Author struct {
	Kind  Kind
	Guest *GuestAuthor
	User  *User

	// PostCount is the usage count of the term the author was resolved from, when known.
	PostCount int64
}

// GuestAuthorOf wraps a guest author record.
func GuestAuthorOf(g *GuestAuthor) Author {
	return Author{Kind: KindGuestAuthor, Guest: g}
}

// UserAuthorOf wraps a user account record.
func UserAuthorOf(u *User) Author {
	return Author{Kind: KindUser, User: u}
}

// ID returns the primary identifier of the wrapped record.
func (a Author) ID() int64 {
	switch a.Kind {
	case KindGuestAuthor:
		return a.Guest.ID
	case KindUser:
		return a.User.ID
	}
	return 0
}

// Field returns the value of f on the wrapped record in its string form.
func (a Author) Field(f Field) string {
	switch a.Kind {
	case KindGuestAuthor:
		return a.Guest.field(f)
	case KindUser:
		return a.User.field(f)
	}
	return ""
}

func (g *GuestAuthor) field(f Field) string {
	switch f {
	case FieldID:
		return strconv.FormatInt(g.ID, 10)
	case FieldLogin:
		return g.UserLogin
	case FieldDisplayName:
		return g.DisplayName
	}
	return ""
}

func (u *User) field(f Field) string {
	switch f {
	case FieldID:
		return strconv.FormatInt(u.ID, 10)
	case FieldLogin:
		return u.Login
	case FieldDisplayName:
		return u.DisplayName
	}
	return ""
}
