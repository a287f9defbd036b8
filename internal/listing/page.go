package listing

// Pagination defaults applied when the query string omits a parameter.
const (
	DefaultPageNo = 1
	DefaultDocs   = 15
)

// Page is a pagination request. The offset is docs*page_no, so page 1
// already skips one page worth of documents; clients depend on this.
type Page struct {
	PageNo int
	Docs   int
}

// DefaultPage returns the page used when no parameters are given.
func DefaultPage() Page { return Page{PageNo: DefaultPageNo, Docs: DefaultDocs} }

// Offset is the number of documents to skip.
func (p Page) Offset() int64 { return int64(p.Docs) * int64(p.PageNo) }

// Limit is the maximum number of documents to return.
func (p Page) Limit() int64 { return int64(p.Docs) }
