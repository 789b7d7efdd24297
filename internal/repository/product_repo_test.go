package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gocatalog/catalog-api/internal/models"
)

func TestBuildListQueryNoFilter(t *testing.T) {
	q, args := buildListQuery(ListFilter{})
	assert.NotContains(t, q, "WHERE")
	assert.Empty(t, args)
}

func TestBuildListQuerySingleFilters(t *testing.T) {
	name := "Banana"
	q, args := buildListQuery(ListFilter{Name: &name})
	assert.Contains(t, q, "WHERE name = $1")
	assert.Equal(t, []interface{}{"Banana"}, args)

	category := "fruit"
	q, args = buildListQuery(ListFilter{Category: &category})
	assert.Contains(t, q, "WHERE category = $1")
	assert.Equal(t, []interface{}{"fruit"}, args)

	status := models.StatusDisabled
	q, args = buildListQuery(ListFilter{Status: &status})
	assert.Contains(t, q, "WHERE status = $1")
	assert.Equal(t, []interface{}{models.StatusDisabled}, args)

	price := 0.5
	q, args = buildListQuery(ListFilter{Price: &price})
	assert.Contains(t, q, "WHERE price = $1")
	assert.Equal(t, []interface{}{0.5}, args)

	rating := 4.2
	q, args = buildListQuery(ListFilter{Rating: &rating})
	assert.Contains(t, q, "WHERE rating = $1")
	assert.Equal(t, []interface{}{4.2}, args)
}

func TestBuildListQueryPrecedence(t *testing.T) {
	name := "Banana"
	category := "fruit"
	status := models.StatusAvailable

	// Only the highest-precedence filter is applied.
	q, args := buildListQuery(ListFilter{Name: &name, Category: &category, Status: &status})
	assert.Contains(t, q, "WHERE name = $1")
	assert.Equal(t, []interface{}{"Banana"}, args)

	q, args = buildListQuery(ListFilter{Category: &category, Status: &status})
	assert.Contains(t, q, "WHERE category = $1")
	assert.Equal(t, []interface{}{"fruit"}, args)
}

func TestMockRepositoryContract(t *testing.T) {
	repo := NewMockProductRepository()

	p := &models.Product{Name: "Banana", Price: 0.5, Status: models.StatusAvailable}
	assert.NoError(t, repo.Create(p))
	assert.Equal(t, 1, p.ID)

	// Absent lookup is (nil, nil), not an error.
	got, err := repo.GetByID(99)
	assert.NoError(t, err)
	assert.Nil(t, got)

	// Delete of an absent id is a no-op success.
	assert.NoError(t, repo.Delete(99))

	// Like is atomic per call.
	liked, err := repo.Like(p.ID)
	assert.NoError(t, err)
	assert.Equal(t, 1, liked.Likes)
}
