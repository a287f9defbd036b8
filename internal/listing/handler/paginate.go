package handler

import (
	"math"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/listings/listings-api/internal/listing"
)

// parsePage reads page_no and docs from the query string. Absent parameters
// take the defaults; present ones must be integers, page_no >= 0 and docs >= 1.
func parsePage(c *gin.Context) (listing.Page, error) {
	p := listing.DefaultPage()

	if raw, ok := c.GetQuery("page_no"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || n < 0 {
			return p, &listing.ValidationError{Param: "page_no", Message: "'page_no' query-parameter must be a non-negative number."}
		}
		p.PageNo = n
	}
	if raw, ok := c.GetQuery("docs"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || n < 1 {
			return p, &listing.ValidationError{Param: "docs", Message: "'docs' query-parameter must be a positive number."}
		}
		p.Docs = n
	}
	if p.PageNo > 0 && int64(p.Docs) > math.MaxInt64/int64(p.PageNo) {
		return p, &listing.ValidationError{Param: "page_no", Message: "'page_no' query-parameter is out of range."}
	}
	return p, nil
}
