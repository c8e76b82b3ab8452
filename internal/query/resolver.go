package query

import "net/url"

// Query string parameter names accepted by the product listing endpoint.
const (
	ParamCategory   = "category"
	ParamAvailable  = "available"
	ParamBestSeller = "bestSeller"
	ParamSearch     = "search"
	ParamSort       = "sort"
)

// Canonical sort tokens.
const (
	SortPriceAsc  = "priceAsc"
	SortPriceDesc = "priceDesc"
	SortNameAsc   = "nameAsc"
	SortNameDesc  = "nameDesc"
)

// sortTokens maps canonical tokens and their snake_case aliases to orderings.
var sortTokens = map[string]Order{
	SortPriceAsc:  {Field: FieldPrice, Direction: Ascending},
	SortPriceDesc: {Field: FieldPrice, Direction: Descending},
	SortNameAsc:   {Field: FieldName, Direction: Ascending},
	SortNameDesc:  {Field: FieldName, Direction: Descending},

	"price_asc":  {Field: FieldPrice, Direction: Ascending},
	"price_desc": {Field: FieldPrice, Direction: Descending},
	"name_asc":   {Field: FieldName, Direction: Ascending},
	"name_desc":  {Field: FieldName, Direction: Descending},
}

// Params holds the raw listing parameters. A nil field means the parameter
// was absent from the request; a non-nil pointer to "" means it was present
// but empty, which matters for the boolean flags.
type Params struct {
	Category   *string
	Available  *string
	BestSeller *string
	Search     *string
	Sort       *string
}

// ParamsFromValues extracts listing parameters from a URL query.
// Only the first value of a repeated parameter is used.
func ParamsFromValues(v url.Values) Params {
	return Params{
		Category:   lookup(v, ParamCategory),
		Available:  lookup(v, ParamAvailable),
		BestSeller: lookup(v, ParamBestSeller),
		Search:     lookup(v, ParamSearch),
		Sort:       lookup(v, ParamSort),
	}
}

func lookup(v url.Values, key string) *string {
	vals, ok := v[key]
	if !ok || len(vals) == 0 {
		return nil
	}
	s := vals[0]
	return &s
}

// Resolve translates listing parameters into a Query.
//
// Boolean flags are tri-state: absent adds no clause, "true" requires true,
// and any other present value (including "false" and "") requires false.
// An empty category is treated as absent. A present search, even empty,
// adds a case-insensitive substring match on the product name.
// Unknown sort tokens produce no ordering.
func Resolve(p Params) Query {
	var q Query

	if p.Category != nil && *p.Category != "" {
		q.Filter = append(q.Filter, Clause{Field: FieldCategory, Op: OpEq, Value: *p.Category})
	}
	if p.Available != nil {
		q.Filter = append(q.Filter, Clause{Field: FieldAvailable, Op: OpEq, Value: *p.Available == "true"})
	}
	if p.BestSeller != nil {
		q.Filter = append(q.Filter, Clause{Field: FieldBestSeller, Op: OpEq, Value: *p.BestSeller == "true"})
	}
	if p.Search != nil {
		q.Filter = append(q.Filter, Clause{Field: FieldName, Op: OpContainsFold, Value: *p.Search})
	}

	if p.Sort != nil {
		if o, ok := sortTokens[*p.Sort]; ok {
			q.Sort = &o
		}
	}

	return q
}
