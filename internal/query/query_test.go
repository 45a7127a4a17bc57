package query

import (
	"math"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/demo_api/internal/repo"
)

func ids[T interface{ Key() int }](items []T) []int {
	out := make([]int, 0, len(items))
	for _, it := range items {
		out = append(out, it.Key())
	}
	return out
}

func TestUserFilter(t *testing.T) {
	users := repo.SeedUsers()

	tests := []struct {
		name   string
		filter UserFilter
		want   []int
	}{
		{name: "no filter", filter: UserFilter{}, want: []int{1, 2, 3}},
		{name: "role is case insensitive", filter: UserFilter{Role: "USER"}, want: []int{2, 3}},
		{name: "search name", filter: UserFilter{Search: "jane"}, want: []int{2}},
		{name: "search email", filter: UserFilter{Search: "MIKE@"}, want: []int{3}},
		{name: "role then search", filter: UserFilter{Role: "admin", Search: "jane"}, want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(tt.filter.Apply(users)))
		})
	}
}

func TestProductFilter(t *testing.T) {
	products := repo.SeedProducts(time.Now())

	tests := []struct {
		name  string
		query string
		want  []int
	}{
		{name: "category and stock", query: "category=Electronics&inStock=true", want: []int{1}},
		{name: "category case", query: "category=kitchen", want: []int{2}},
		{name: "out of stock", query: "inStock=false", want: []int{3}},
		{name: "anything but true means out of stock", query: "inStock=yes", want: []int{3}},
		{name: "price range", query: "minPrice=100&maxPrice=1000", want: []int{3}},
		{name: "search description", query: "search=BATTERY", want: []int{3}},
		{name: "empty min price ignored", query: "minPrice=", want: []int{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			require.NoError(t, err)
			f, err := ParseProductFilter(q)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(f.Apply(products)))
		})
	}
}

func TestProductFilterDoesNotTouchInput(t *testing.T) {
	products := repo.SeedProducts(time.Now())
	_ = ProductFilter{Category: "Kitchen"}.Apply(products)
	assert.Equal(t, []int{1, 2, 3}, ids(products))
}

func TestParseProductFilter_InvalidPrice(t *testing.T) {
	_, err := ParseProductFilter(url.Values{"minPrice": {"cheap"}})
	assert.ErrorIs(t, err, ErrInvalidPriceRange)

	_, err = ParseProductFilter(url.Values{"maxPrice": {"NaN"}})
	assert.ErrorIs(t, err, ErrInvalidPriceRange)
}

func TestParsePage(t *testing.T) {
	p, err := ParsePage(url.Values{})
	require.NoError(t, err)
	assert.Equal(t, 0, p.Offset)
	assert.Nil(t, p.Limit)

	p, err = ParsePage(url.Values{"offset": {"1"}, "limit": {"2"}})
	require.NoError(t, err)
	assert.Equal(t, 1, p.Offset)
	require.NotNil(t, p.Limit)
	assert.Equal(t, 2, *p.Limit)

	for _, bad := range []url.Values{
		{"offset": {"-1"}},
		{"limit": {"-3"}},
		{"limit": {"ten"}},
		{"offset": {"1.5"}},
	} {
		_, err := ParsePage(bad)
		assert.ErrorIs(t, err, ErrInvalidPage, bad.Encode())
	}
}

func TestPaginate(t *testing.T) {
	items := []int{10, 20, 30, 40, 50}
	limit := func(n int) *int { return &n }

	tests := []struct {
		name  string
		page  Page
		want  []int
		count int
	}{
		{name: "everything", page: Page{}, want: []int{10, 20, 30, 40, 50}, count: 5},
		{name: "offset only", page: Page{Offset: 3}, want: []int{40, 50}, count: 2},
		{name: "window", page: Page{Offset: 1, Limit: limit(2)}, want: []int{20, 30}, count: 2},
		{name: "limit past end", page: Page{Offset: 4, Limit: limit(10)}, want: []int{50}, count: 1},
		{name: "offset past end", page: Page{Offset: 9, Limit: limit(2)}, want: []int{}, count: 0},
		{name: "zero limit", page: Page{Limit: limit(0)}, want: []int{}, count: 0},
		{name: "max limit after offset", page: Page{Offset: 1, Limit: limit(math.MaxInt)}, want: []int{20, 30, 40, 50}, count: 4},
		{name: "max limit and offset", page: Page{Offset: math.MaxInt, Limit: limit(math.MaxInt)}, want: []int{}, count: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, meta := Paginate(items, tt.page)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, 5, meta.Total)
			assert.Equal(t, tt.count, meta.Count)
			assert.Equal(t, tt.page.Offset, meta.Offset)
			assert.Equal(t, tt.page.Limit, meta.Limit)
		})
	}
}

func TestPaginateCountProperty(t *testing.T) {
	items := make([]int, 7)
	for offset := 0; offset <= 9; offset++ {
		for l := 0; l <= 9; l++ {
			n := l
			_, meta := Paginate(items, Page{Offset: offset, Limit: &n})
			want := 0
			if offset < meta.Total {
				want = min(n, meta.Total-offset)
			}
			assert.Equal(t, want, meta.Count, "offset=%d limit=%d", offset, n)
		}
	}
}
