package params

import (
	"strconv"

	"community-api/core/constants"

	"github.com/labstack/echo/v4"
)

// QueryParams carries common listing parameters parsed from the request.
type QueryParams struct {
	PageNumber int
	PageSize   int
	Search     string
}

func NewQueryParams(c echo.Context) *QueryParams {
	p := &QueryParams{
		PageNumber: constants.DefaultPageNumber,
		PageSize:   constants.DefaultPageSize,
		Search:     c.QueryParam("search"),
	}

	if v, err := strconv.Atoi(c.QueryParam("page")); err == nil && v > 0 {
		p.PageNumber = v
	}
	if v, err := strconv.Atoi(c.QueryParam("limit")); err == nil && v > 0 {
		p.PageSize = v
	}
	if p.PageSize > constants.MaxPageSize {
		p.PageSize = constants.MaxPageSize
	}

	return p
}

func (p *QueryParams) Offset() int {
	return (p.PageNumber - 1) * p.PageSize
}

// CacheSuffix encodes the params into a cache key fragment.
func (p *QueryParams) CacheSuffix() string {
	return strconv.Itoa(p.PageNumber) + ":" + strconv.Itoa(p.PageSize) + ":" + p.Search
}
