package domain

import "time"

// Category описывает категорию внутри типа продукта.
// Имя категории уникально в пределах своего типа.
type Category struct {
	ID            int64
	ProductTypeID int64
	Name          string
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}

func NewCategory(productTypeID int64, name string) *Category {
	return &Category{
		ProductTypeID: productTypeID,
		Name:          name,
	}
}
