package domain

import (
	"time"
)

// CREATE TABLE public.products (
//     id            UUID PRIMARY KEY,
//     image         TEXT NOT NULL,
//     name          TEXT NOT NULL,
//     category      TEXT NOT NULL DEFAULT 'Uncategorized',
//     sub_category  TEXT NOT NULL DEFAULT 'General',
//     brand         TEXT NOT NULL DEFAULT 'Unknown brand',
//     stock         INTEGER NOT NULL DEFAULT 0,
//     rating        JSONB NOT NULL,
//     price_cents   INTEGER NOT NULL,
//     keywords      TEXT NOT NULL,
//     created_at    TIMESTAMPTZ DEFAULT NOW(),
//     updated_at    TIMESTAMPTZ DEFAULT NOW()
// );

type Product struct {
	ID          ID        `gorm:"primaryKey;column:id;type:text" json:"id" yaml:"id"`
	Image       string    `gorm:"column:image;type:text;not null" json:"image" yaml:"image"`
	Name        string    `gorm:"column:name;type:text;not null" json:"name" yaml:"name"`
	Category    string    `gorm:"column:category;type:text;not null;default:Uncategorized" json:"category" yaml:"category"`
	SubCategory string    `gorm:"column:sub_category;type:text;not null;default:General" json:"subCategory" yaml:"subCategory"`
	Brand       string    `gorm:"column:brand;type:text;not null;default:Unknown brand" json:"brand" yaml:"brand"`
	Stock       int       `gorm:"column:stock;not null;default:0" json:"stock" yaml:"stock"`
	PriceCents  int64     `gorm:"column:price_cents;not null" json:"priceCents" yaml:"priceCents"`
	Rating      Rating    `gorm:"column:rating;type:jsonb;not null" json:"rating" yaml:"rating"`
	Keywords    Keywords  `gorm:"column:keywords;type:text;not null" json:"keywords" yaml:"keywords"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"createdAt" yaml:"-"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updatedAt" yaml:"-"`
}

func (Product) TableName() string {
	return "products"
}

// FindProduct returns the product whose ID matches id, comparing by string form.
func FindProduct(products []Product, id ID) (*Product, bool) {
	for i := range products {
		if products[i].ID == id {
			return &products[i], true
		}
	}
	return nil, false
}
