// internal/models/product.go
package models

// Product is a single catalog entry. ProductKey is assigned by the caller,
// never by the database.
type Product struct {
	ProductKey         int64   `json:"productKey" gorm:"column:product_key;primaryKey;autoIncrement:false"`
	Retailer           *string `json:"retailer" gorm:"column:retailer;size:64"`
	Brand              *string `json:"brand" gorm:"column:brand;size:64;index"`
	Model              *string `json:"model" gorm:"column:model;size:32"`
	ProductName        string  `json:"productName" gorm:"column:product_name;size:96;not null"`
	Price              Price   `json:"price" gorm:"column:product_price;not null"`
	ProductDescription *string `json:"productDescription" gorm:"column:product_description;type:text"`
}

func (Product) TableName() string { return "product" }

// BrandSummary is the number of products carrying a given brand.
type BrandSummary struct {
	Brand string `json:"brand"`
	Count int64  `json:"count"`
}
