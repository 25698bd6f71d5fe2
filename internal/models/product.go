package models

import "time"

// Product represents a catalog product together with its owned images.
type Product struct {
	ID          string         `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Title       string         `json:"title" gorm:"type:varchar(255);not null" validate:"required,min=1,max=255"`
	Price       float64        `json:"price" gorm:"default:0" validate:"gte=0"`
	Description string         `json:"description" gorm:"type:text"`
	Slug        string         `json:"slug" gorm:"type:varchar(255);uniqueIndex;not null"`
	Stock       int            `json:"stock" gorm:"default:0" validate:"gte=0"`
	Sizes       []string       `json:"sizes" gorm:"serializer:json"`
	Gender      string         `json:"gender" gorm:"type:varchar(20)"`
	Tags        []string       `json:"tags" gorm:"serializer:json"`
	Images      []ProductImage `json:"images" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// ProductImage is a single image row owned by exactly one product.
type ProductImage struct {
	ID        uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	ProductID string `json:"product_id" gorm:"type:varchar(36);index;not null"`
	URL       string `json:"url" gorm:"type:varchar(500);not null"`
}

// TableName keeps the image table name the schema uses.
func (ProductImage) TableName() string {
	return "products_images"
}

// ImageURLs flattens the image rows into a URL list. Never nil, so a
// product without images serializes as an empty array.
func (p *Product) ImageURLs() []string {
	urls := make([]string, 0, len(p.Images))
	for _, img := range p.Images {
		urls = append(urls, img.URL)
	}
	return urls
}

// ProductPatch carries a sparse update: nil fields are left untouched.
// Images is a full replacement list when present; an explicit empty list
// removes every image.
type ProductPatch struct {
	Title       *string
	Price       *float64
	Description *string
	Slug        *string
	Stock       *int
	Sizes       *[]string
	Gender      *string
	Tags        *[]string
	Images      *[]string
}
