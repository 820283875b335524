// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package budget

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curioswitch/campuscopilot/internal/catalog"
)

func TestRecommendBelowMinimum(t *testing.T) {
	for _, b := range []int{-10, 0, 1, 14} {
		assert.Nil(t, Recommend(catalog.Menu(), b), b)
	}
}

func TestRecommendMatchesFilter(t *testing.T) {
	menu := catalog.Menu()
	for b := 15; b <= 60; b++ {
		groups := Recommend(menu, b)
		require.NotEmpty(t, groups, b)

		var flattened []catalog.Item
		for _, g := range groups {
			for _, item := range g.Items {
				assert.LessOrEqual(t, item.Price, b)
				assert.Equal(t, g.Category, item.Category)
			}
			flattened = append(flattened, g.Items...)
		}
		assert.ElementsMatch(t, Affordable(menu, b), flattened, b)
	}
}

func TestGroupByCategoryOrder(t *testing.T) {
	groups := Recommend(catalog.Menu(), 40)

	var cats []catalog.Category
	for _, g := range groups {
		cats = append(cats, g.Category)
	}
	// Samosa (snacks) comes before Chai (beverages) and Fruit Bowl (desserts), and
	// Masala Dosa is filtered out so meals are first seen at Maggi Noodles.
	assert.Equal(t, []catalog.Category{
		catalog.CategorySnacks,
		catalog.CategoryBeverages,
		catalog.CategoryDesserts,
		catalog.CategoryMeals,
	}, cats)

	names := func(items []catalog.Item) []string {
		var out []string
		for _, item := range items {
			out = append(out, item.Name)
		}
		return out
	}
	assert.Equal(t, []string{"Samosa", "Vada Pav"}, names(groups[0].Items))
	assert.Equal(t, []string{"Chai", "Coffee"}, names(groups[1].Items))
	assert.Equal(t, []string{"Fruit Bowl", "Gulab Jamun"}, names(groups[2].Items))
	assert.Equal(t, []string{"Maggi Noodles", "Paratha", "Poha"}, names(groups[3].Items))
}

func TestPriceTier(t *testing.T) {
	tests := []struct {
		budget int
		tier   int
	}{
		{0, 0},
		{49, 0},
		{50, 1},
		{99, 1},
		{100, 2},
		{299, 2},
		{300, 3},
		{599, 3},
		{600, 4},
		{math.MaxInt, 4},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.tier, PriceTier(tc.budget), tc.budget)
	}

	prev := PriceTier(0)
	for b := 1; b <= 1000; b++ {
		cur := PriceTier(b)
		assert.GreaterOrEqual(t, cur, prev, b)
		prev = cur
	}
}

func TestDisplayRange(t *testing.T) {
	for tier := 0; tier <= MaxTier; tier++ {
		assert.NotEqual(t, PriceUnavailable, DisplayRange(tier), tier)
	}
	for _, tier := range []int{-1, 5, 100} {
		assert.Equal(t, PriceUnavailable, DisplayRange(tier), tier)
	}
	assert.Equal(t, "20-50", DisplayRange(0))
	assert.Equal(t, "600+", DisplayRange(4))

	// Every tier reachable from a budget has a range.
	for b := 0; b <= 1000; b += 7 {
		assert.NotEqual(t, PriceUnavailable, DisplayRange(PriceTier(b)), b)
	}
}
