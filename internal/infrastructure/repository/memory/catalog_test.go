package memory

import (
	"context"
	"slices"
	"testing"

	"github.com/mrops-br/storefront-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestNewCatalog(t *testing.T) {
	t.Run("DefaultProducts", func(t *testing.T) {
		c := newTestCatalog(t, DefaultProducts()...)
		all := c.FindAll(context.Background())
		require.Len(t, all, 8)
		assert.Equal(t, "p1", all[0].ID)
		assert.Equal(t, "p8", all[7].ID)
	})

	t.Run("DuplicateID", func(t *testing.T) {
		_, err := NewCatalog([]domain.Product{
			product("p1", "A", "1.00"),
			product("p1", "B", "2.00"),
		}, language.BritishEnglish, testTracer, testLogger)
		assert.ErrorIs(t, err, domain.ErrDuplicateProductID)
	})

	t.Run("InvalidProduct", func(t *testing.T) {
		_, err := NewCatalog([]domain.Product{
			product("p1", "A", "-1.00"),
		}, language.BritishEnglish, testTracer, testLogger)
		assert.ErrorIs(t, err, domain.ErrInvalidProductPrice)
	})
}

func TestCatalog_FindByID(t *testing.T) {
	ctx := context.Background()
	c := newTestCatalog(t, DefaultProducts()...)

	for _, p := range DefaultProducts() {
		got, err := c.FindByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, p.ID, got.ID)
		assert.Equal(t, p.Name, got.Name)
		assert.True(t, p.Price.Equal(got.Price))
	}

	_, err := c.FindByID(ctx, "unknown")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestCatalog_FindAllReturnsCopy(t *testing.T) {
	ctx := context.Background()
	c := newTestCatalog(t, product("p1", "A", "1.00"), product("p2", "B", "2.00"))

	all := c.FindAll(ctx)
	all[0].Name = "changed"

	got, err := c.FindByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "A", got.Name)
}

func TestCatalog_Featured(t *testing.T) {
	ctx := context.Background()
	c := newTestCatalog(t, DefaultProducts()...)

	assert.Equal(t, []string{"p1", "p2", "p3", "p4"}, ids(c.Featured(ctx, 4)))
	assert.Len(t, c.Featured(ctx, 100), 8)
	assert.Empty(t, c.Featured(ctx, -1))
}

func TestCatalog_SortedBy(t *testing.T) {
	ctx := context.Background()

	t.Run("Price", func(t *testing.T) {
		c := newTestCatalog(t, DefaultProducts()...)

		asc, err := c.SortedBy(ctx, domain.SortPriceAsc)
		require.NoError(t, err)
		assert.Equal(t, []string{"p4", "p8", "p1", "p5", "p2", "p3", "p7", "p6"}, ids(asc))

		desc, err := c.SortedBy(ctx, domain.SortPriceDesc)
		require.NoError(t, err)
		assert.Equal(t, []string{"p6", "p7", "p3", "p2", "p5", "p1", "p8", "p4"}, ids(desc))
	})

	t.Run("NameDescendingIsReverseOfAscending", func(t *testing.T) {
		c := newTestCatalog(t, DefaultProducts()...)

		asc, err := c.SortedBy(ctx, domain.SortNameAsc)
		require.NoError(t, err)
		desc, err := c.SortedBy(ctx, domain.SortNameDesc)
		require.NoError(t, err)

		assert.Equal(t, "p6", asc[0].ID) // Digital Camera 4K
		reversed := slices.Clone(desc)
		slices.Reverse(reversed)
		assert.Equal(t, ids(asc), ids(reversed))
	})

	t.Run("NamesUseCollation", func(t *testing.T) {
		c := newTestCatalog(t,
			product("a", "banana", "1.00"),
			product("b", "Éclair", "1.00"),
			product("c", "apple", "1.00"),
			product("d", "Cherry", "1.00"),
			product("e", "Eagle", "1.00"),
		)

		asc, err := c.SortedBy(ctx, domain.SortNameAsc)
		require.NoError(t, err)
		assert.Equal(t, []string{"c", "a", "d", "e", "b"}, ids(asc))

		desc, err := c.SortedBy(ctx, domain.SortNameDesc)
		require.NoError(t, err)
		assert.Equal(t, []string{"b", "e", "d", "a", "c"}, ids(desc))
	})

	t.Run("StableOnTies", func(t *testing.T) {
		c := newTestCatalog(t,
			product("x1", "Same", "5.00"),
			product("x2", "Other", "1.00"),
			product("x3", "Same", "5.00"),
			product("x4", "Same", "5.00"),
		)

		asc, err := c.SortedBy(ctx, domain.SortPriceAsc)
		require.NoError(t, err)
		assert.Equal(t, []string{"x2", "x1", "x3", "x4"}, ids(asc))

		desc, err := c.SortedBy(ctx, domain.SortPriceDesc)
		require.NoError(t, err)
		assert.Equal(t, []string{"x1", "x3", "x4", "x2"}, ids(desc))

		byName, err := c.SortedBy(ctx, domain.SortNameDesc)
		require.NoError(t, err)
		assert.Equal(t, []string{"x1", "x3", "x4", "x2"}, ids(byName))
	})

	t.Run("DoesNotMutateCatalog", func(t *testing.T) {
		c := newTestCatalog(t, DefaultProducts()...)
		before := ids(c.FindAll(ctx))

		for _, crit := range []domain.SortCriterion{domain.SortPriceAsc, domain.SortPriceDesc, domain.SortNameAsc, domain.SortNameDesc} {
			_, err := c.SortedBy(ctx, crit)
			require.NoError(t, err)
		}

		assert.Equal(t, before, ids(c.FindAll(ctx)))
	})

	t.Run("DefaultKeepsCatalogOrder", func(t *testing.T) {
		c := newTestCatalog(t, DefaultProducts()...)
		got, err := c.SortedBy(ctx, domain.SortDefault)
		require.NoError(t, err)
		assert.Equal(t, ids(c.FindAll(ctx)), ids(got))
	})

	t.Run("UnknownCriterion", func(t *testing.T) {
		c := newTestCatalog(t, DefaultProducts()...)
		_, err := c.SortedBy(ctx, "rating")
		assert.ErrorIs(t, err, domain.ErrInvalidSortCriterion)
	})
}
