package coauthors

import (
	"regexp"
	"strconv"
	"strings"
)

// Term descriptions written by the co-authors plugin hold a space separated dump of the linked
// account ("display first last login id email"). Names with spaces shift every field, so the id
// is recovered by token matching rather than by position.

var standaloneInt = regexp.MustCompile(`\b\d+\b`)

// ExtractUserID returns the first standalone integer in desc. It is the listing-mode extractor.
func ExtractUserID(desc string) (int64, bool) {
	m := standaloneInt.FindString(desc)
	if m == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(m, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// ExtractTargetUserID reports whether target occurs in desc as a whole word and returns it.
// It is the id-specific extractor; unlike ExtractUserID it ignores any other integers.
func ExtractTargetUserID(desc string, target int64) (int64, bool) {
	if target < 0 {
		return 0, false
	}
	re, err := regexp.Compile(`\b(` + strconv.FormatInt(target, 10) + `)\b`)
	if err != nil {
		return 0, false
	}
	m := re.FindStringSubmatch(desc)
	if len(m) < 2 {
		return 0, false
	}
	id, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// SearchMap is the positional reading of a term description.
type SearchMap struct {
	DisplayName string
	FirstName   string
	LastName    string
	UserLogin   string
	ID          string
	UserEmail   string
}

// LegacySearchMap splits desc on single spaces and assigns fields by position, padding a missing
// email. It misaligns whenever a name contains a space and is never used to resolve authors.
func LegacySearchMap(desc string) SearchMap {
	v := strings.Split(desc, " ")
	for len(v) < 6 {
		v = append(v, "")
	}
	return SearchMap{
		DisplayName: v[0],
		FirstName:   v[1],
		LastName:    v[2],
		UserLogin:   v[3],
		ID:          v[4],
		UserEmail:   v[5],
	}
}
