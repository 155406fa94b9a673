package coauthors

// Filter may replace or mutate an item right before it is returned.
type Filter func(item Item, req *Request) Item

// ListFilter rewrites the author list before an unscoped author-posts listing is presented.
type ListFilter func(authors []Author) []Author

// InsertAction observes a confirmed attach. termID is the id the caller asked to attach.
type InsertAction func(termID int64, req *Request)

// Hooks are the extension points offered to the host. Callbacks run in registration order.
type Hooks struct {
	PrepareTerm     []Filter
	PrepareCoAuthor []Filter
	ListAuthors     []ListFilter
	InsertAuthor    []InsertAction
}

func applyFilters(filters []Filter, item Item, req *Request) Item {
	for _, f := range filters {
		if next := f(item, req); next != nil {
			item = next
		}
	}
	return item
}

func (h *Hooks) listAuthors(authors []Author) []Author {
	for _, f := range h.ListAuthors {
		authors = f(authors)
	}
	return authors
}

func (h *Hooks) insertAuthor(termID int64, req *Request) {
	for _, a := range h.InsertAuthor {
		a(termID, req)
	}
}
