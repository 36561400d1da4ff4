package categories

import "context"

type CatalogService interface {
	ListCategories(ctx context.Context) []string
	AddCategory(ctx context.Context, name string) (bool, error)
	DeleteCategory(ctx context.Context, name string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
