package domain

import "time"

// ProductType описывает верхнеуровневую группу каталога (например, "Shirts")
type ProductType struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

func NewProductType(name string) *ProductType {
	return &ProductType{
		Name: name,
	}
}
