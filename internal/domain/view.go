package domain

import "github.com/cristianoliveira/dexview/internal/search"

// EmptyState explains why a view has no rows.
type EmptyState int

const (
	EmptyNone EmptyState = iota
	EmptyLoading
	EmptyNoResults
	EmptyNoFavorites
)

// String returns the state name used in JSON output.
func (e EmptyState) String() string {
	switch e {
	case EmptyLoading:
		return "loading"
	case EmptyNoResults:
		return "no_results"
	case EmptyNoFavorites:
		return "no_favorites"
	default:
		return "none"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (e EmptyState) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// View is one rendered page of the filtered catalog.
type View struct {
	Items       []Item     `json:"items"`
	CurrentPage int        `json:"current_page"`
	MaxPage     int        `json:"max_page"`
	TotalItems  int        `json:"total_items"`
	RangeStart  int        `json:"range_start"`
	RangeEnd    int        `json:"range_end"`
	HasPrev     bool       `json:"has_prev"`
	HasNext     bool       `json:"has_next"`
	Empty       EmptyState `json:"empty_state"`
}

// ViewRequest bundles the inputs of BuildView.
type ViewRequest struct {
	Items     []Item
	Filter    Filter
	Favorites Favorites
	Page      int
	PageSize  int
	Provider  search.Provider
	// Loading marks that the catalog has not been published yet.
	Loading bool
}

// BuildView derives the page for req. It never caches: calling it twice with
// the same inputs yields the same view.
func BuildView(req ViewRequest) View {
	size := req.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}
	if req.Loading {
		return View{Items: []Item{}, CurrentPage: 1, MaxPage: 1, Empty: EmptyLoading}
	}

	filtered := FilterItems(req.Items, req.Filter, req.Favorites, req.Provider)
	pageItems, page := Paginate(filtered, req.Page, size)
	total := len(filtered)
	maxPage := MaxPage(total, size)

	v := View{
		Items:       pageItems,
		CurrentPage: page,
		MaxPage:     maxPage,
		TotalItems:  total,
		HasPrev:     page > 1,
		HasNext:     page < maxPage,
	}
	if total > 0 {
		v.RangeStart = (page-1)*size + 1
		v.RangeEnd = v.RangeStart + len(pageItems) - 1
		return v
	}

	favorites := req.Favorites
	if favorites == nil {
		favorites = NoFavorites
	}
	if req.Filter.FavoritesOnly && favorites.Len() == 0 {
		v.Empty = EmptyNoFavorites
	} else {
		v.Empty = EmptyNoResults
	}
	return v
}
