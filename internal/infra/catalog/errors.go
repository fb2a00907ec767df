package catalog

import "errors"

var (
	// ErrLoadFailed возвращается при ошибке чтения файла каталога
	ErrLoadFailed = errors.New("catalog: failed to load catalog file")

	// ErrInvalidCatalog возвращается, когда данные каталога не проходят валидацию
	ErrInvalidCatalog = errors.New("catalog: invalid catalog data")

	// ErrBranchNotFound возвращается, когда филиал не найден
	ErrBranchNotFound = errors.New("catalog: branch not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("catalog: service not found")
)
