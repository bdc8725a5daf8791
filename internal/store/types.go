package store

import "zoo-backend/internal/model"

// PageQuery describes a sorted, zero-based page of results.
type PageQuery struct {
	SortBy string // database column, caller-validated
	Desc   bool
	Page   int
	Size   int
}

// AnimalPage is one page of animals plus the total match count.
type AnimalPage struct {
	Items         []model.Animal
	TotalElements int64
}
