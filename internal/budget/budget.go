// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package budget

import (
	"github.com/curioswitch/campuscopilot/internal/catalog"
)

// Group is the affordable items of a single category.
type Group struct {
	// Category is the shared category of the items.
	Category catalog.Category

	// Items are in catalog order.
	Items []catalog.Item
}

// Affordable returns the items priced at or below budget, keeping their order.
func Affordable(items []catalog.Item, budget int) []catalog.Item {
	var out []catalog.Item
	for _, item := range items {
		if item.Price <= budget {
			out = append(out, item)
		}
	}
	return out
}

// GroupByCategory groups items by category. Groups appear in the order their category is
// first seen and items keep their relative order.
func GroupByCategory(items []catalog.Item) []Group {
	var groups []Group
	index := map[catalog.Category]int{}
	for _, item := range items {
		i, ok := index[item.Category]
		if !ok {
			i = len(groups)
			index[item.Category] = i
			groups = append(groups, Group{Category: item.Category})
		}
		groups[i].Items = append(groups[i].Items, item)
	}
	return groups
}

// Recommend returns the affordable items grouped by category, or nil if nothing fits
// the budget.
func Recommend(items []catalog.Item, budget int) []Group {
	return GroupByCategory(Affordable(items, budget))
}
