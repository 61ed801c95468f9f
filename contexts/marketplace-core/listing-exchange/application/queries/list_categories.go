package queries

import "context"

// catalogCategories is the fixed set both listing kinds draw from.
var catalogCategories = []string{
	"Technology",
	"E-commerce",
	"Healthcare",
	"Education",
	"Finance",
	"Entertainment",
	"Food & Beverage",
	"Real Estate",
	"Sustainability",
	"Marketing",
	"Consulting",
	"Design",
}

type ListCategoriesResult struct {
	Categories []string
}

type ListCategoriesUseCase struct{}

func (ListCategoriesUseCase) Execute(_ context.Context) (ListCategoriesResult, error) {
	return ListCategoriesResult{
		Categories: append([]string(nil), catalogCategories...),
	}, nil
}
