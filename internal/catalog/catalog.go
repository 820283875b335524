// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package catalog

import (
	"errors"
	"fmt"
	"slices"
)

// Category is the menu section an item is listed under.
type Category string

const (
	// CategorySnacks is for quick bites.
	CategorySnacks Category = "snacks"
	// CategoryMeals is for full meals.
	CategoryMeals Category = "meals"
	// CategoryBeverages is for drinks.
	CategoryBeverages Category = "beverages"
	// CategoryDesserts is for sweets.
	CategoryDesserts Category = "desserts"
)

var categories = []Category{CategorySnacks, CategoryMeals, CategoryBeverages, CategoryDesserts}

// Valid reports whether c is one of the fixed menu categories.
func (c Category) Valid() bool {
	return slices.Contains(categories, c)
}

// Item is an entry in the campus canteen menu.
type Item struct {
	// Name is the display name of the item.
	Name string `json:"name"`

	// Price is the price in whole rupees.
	Price int `json:"price"`

	// Description is a short description of the item.
	Description string `json:"description"`

	// Category is the menu section of the item.
	Category Category `json:"category"`
}

var menu = []Item{
	{Name: "Masala Dosa", Price: 50, Description: "Crispy crepe with spiced potato filling", Category: CategoryMeals},
	{Name: "Samosa", Price: 15, Description: "Crispy pastry with spiced potato filling", Category: CategorySnacks},
	{Name: "Chai", Price: 15, Description: "Indian spiced tea", Category: CategoryBeverages},
	{Name: "Vada Pav", Price: 25, Description: "Spicy potato patty in a bun", Category: CategorySnacks},
	{Name: "Fruit Bowl", Price: 40, Description: "Fresh seasonal fruits", Category: CategoryDesserts},
	{Name: "Maggi Noodles", Price: 30, Description: "Instant noodles with vegetables", Category: CategoryMeals},
	{Name: "Coffee", Price: 20, Description: "Fresh brewed coffee", Category: CategoryBeverages},
	{Name: "Paratha", Price: 35, Description: "Stuffed flatbread", Category: CategoryMeals},
	{Name: "Gulab Jamun", Price: 20, Description: "Sweet milk-solid balls", Category: CategoryDesserts},
	{Name: "Poha", Price: 30, Description: "Flattened rice with spices", Category: CategoryMeals},
}

// Menu returns the canteen menu in catalog order. The returned slice is a copy.
func Menu() []Item {
	return slices.Clone(menu)
}

var errNegativePrice = errors.New("catalog: negative price")

// Validate checks that every item has a non-negative price and a known category.
func Validate(items []Item) error {
	for _, item := range items {
		if item.Price < 0 {
			return fmt.Errorf("%w: %s", errNegativePrice, item.Name)
		}
		if !item.Category.Valid() {
			return fmt.Errorf("catalog: unknown category %q for %s", item.Category, item.Name) //nolint:err113
		}
	}
	return nil
}
