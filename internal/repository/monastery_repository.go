// Package repository contains the data providers behind the HTTP handlers.
// Each repository exclusively owns one in-memory collection that is seeded
// once at construction and never modified afterwards, so reads need no
// locking.  The handlers depend only on List, which keeps them unchanged if a
// repository is later backed by a real database.
package repository

import (
	"slices"

	"github.com/iliyamo/monastery360/internal/model"
)

// MonasteryRepo serves the fixed monastery catalog.
type MonasteryRepo struct {
	items []model.Monastery // seeded in NewMonasteryRepo, read-only afterwards
}

// NewMonasteryRepo constructs a MonasteryRepo populated with the seed
// catalog.  The seed order is the order List returns.
func NewMonasteryRepo() *MonasteryRepo {
	return &MonasteryRepo{items: []model.Monastery{
		{ID: 1, Name: "Rumtek Monastery", Location: "Gangtok", Century: "16th Century", Rating: 4.9},
		{ID: 2, Name: "Enchey Monastery", Location: "Gangtok", Century: "19th Century", Rating: 4.7},
		{ID: 3, Name: "Pemayangtse Monastery", Location: "Pelling", Century: "17th Century", Rating: 4.8},
	}}
}

// List returns every monastery in insertion order.  The returned slice is a
// copy; callers may modify it without affecting the repository.
func (r *MonasteryRepo) List() []model.Monastery {
	return slices.Clone(r.items)
}

// Len reports how many monasteries the repository holds.
func (r *MonasteryRepo) Len() int {
	return len(r.items)
}
