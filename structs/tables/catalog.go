package tables

import (
	"teentops_server/structs"
	"time"

	"github.com/google/uuid"
)

type Category struct {
	tableName   struct{}  `bun:"table:categories,alias:c"`
	ID          uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id" validate:"omitempty,uuid4"`
	Name        string    `bun:"name,notnull,unique" json:"name" validate:"required,max=100"`
	Slug        string    `bun:"slug,notnull,unique" json:"slug" validate:"required,max=100"`
	Description string    `bun:"description" json:"description,omitempty"`
	CreatedAt   time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
}

type Product struct {
	tableName   struct{}  `bun:"table:products,alias:p"`
	ID          uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id" validate:"omitempty,uuid4"`
	Name        string    `bun:"name,notnull" json:"name" validate:"required,max=200"`
	Slug        string    `bun:"slug,notnull,unique" json:"slug" validate:"required,max=200"`
	Description string    `bun:"description,notnull" json:"description" validate:"required"`
	CategoryID  uuid.UUID `bun:"category_id,notnull,type:uuid" json:"category_id" validate:"required"`
	BasePrice   uint64    `bun:"base_price,notnull" json:"base_price" validate:"gte=0"` // stored in cents
	IsActive    bool      `bun:"is_active,notnull,default:true" json:"is_active"`
	Featured    bool      `bun:"featured,notnull,default:false" json:"featured"`
	CreatedAt   time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt   time.Time `bun:"updated_at,notnull,default:now()" json:"updated_at"`

	Category *Category        `bun:"rel:belongs-to,join:category_id=id" json:"category,omitempty"`
	Images   []ProductImage   `bun:"rel:has-many,join:id=product_id" json:"images,omitempty"`
	Variants []ProductVariant `bun:"rel:has-many,join:id=product_id" json:"variants,omitempty"`
	Reviews  []Review         `bun:"rel:has-many,join:id=product_id" json:"reviews,omitempty"`
}

// ProductImage represents an image for a product. Only the URL is stored;
// upload and CDN mechanics live elsewhere.
type ProductImage struct {
	tableName struct{}      `bun:"table:product_images,alias:pi"`
	ID        uuid.UUID     `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id" validate:"omitempty,uuid4"`
	ProductID uuid.UUID     `bun:"product_id,type:uuid,notnull" json:"product_id" validate:"required"`
	URL       string        `bun:"url,notnull" json:"url" validate:"required,url"`
	AltText   string        `bun:"alt_text" json:"alt_text,omitempty" validate:"omitempty,max=200"`
	Color     structs.Color `bun:"color" json:"color,omitempty"` // color variant this image represents
	IsPrimary bool          `bun:"is_primary,notnull,default:false" json:"is_primary"`
	Order     int           `bun:"sort_order,notnull,default:0" json:"order"`
}

type ProductVariant struct {
	tableName     struct{}      `bun:"table:product_variants,alias:pv"`
	ID            uuid.UUID     `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id" validate:"omitempty,uuid4"`
	ProductID     uuid.UUID     `bun:"product_id,notnull,type:uuid" json:"product_id" validate:"required"`
	Size          structs.Size  `bun:"size,notnull" json:"size" validate:"required,oneof=XS S M L XL XXL"`
	Color         structs.Color `bun:"color,notnull" json:"color" validate:"required"`
	SKU           string        `bun:"sku,notnull,unique" json:"sku" validate:"required,max=100"`
	PriceModifier int64         `bun:"price_modifier,notnull,default:0" json:"price_modifier"` // cents, may be negative
	StockQuantity int           `bun:"stock_quantity,notnull,default:0" json:"stock_quantity" validate:"gte=0"`
	IsActive      bool          `bun:"is_active,notnull,default:true" json:"is_active"`

	Product *Product `bun:"rel:belongs-to,join:product_id=id" json:"-"`
}

// Price is the effective variant price: product base price plus the
// variant's modifier, floored at zero.
func (v *ProductVariant) Price(basePrice uint64) uint64 {
	price := int64(basePrice) + v.PriceModifier
	if price < 0 {
		return 0
	}
	return uint64(price)
}

func (v *ProductVariant) IsInStock() bool {
	return v.StockQuantity > 0
}

// MinPrice is base_price + the smallest modifier among active variants.
// With no active variants it equals the base price.
func (p *Product) MinPrice() uint64 {
	mod, ok := p.variantModifier(func(best, cur int64) bool { return cur < best })
	if !ok {
		return p.BasePrice
	}
	price := int64(p.BasePrice) + mod
	if price < 0 {
		return 0
	}
	return uint64(price)
}

// MaxPrice is base_price + the largest modifier among active variants.
// With no active variants it equals the base price.
func (p *Product) MaxPrice() uint64 {
	mod, ok := p.variantModifier(func(best, cur int64) bool { return cur > best })
	if !ok {
		return p.BasePrice
	}
	price := int64(p.BasePrice) + mod
	if price < 0 {
		return 0
	}
	return uint64(price)
}

func (p *Product) variantModifier(better func(best, cur int64) bool) (int64, bool) {
	var best int64
	found := false
	for i := range p.Variants {
		if !p.Variants[i].IsActive {
			continue
		}
		if !found || better(best, p.Variants[i].PriceModifier) {
			best = p.Variants[i].PriceModifier
			found = true
		}
	}
	return best, found
}

// AvailableSizes returns the distinct sizes across active variants,
// in first-seen order.
func (p *Product) AvailableSizes() []structs.Size {
	seen := make(map[structs.Size]struct{}, len(p.Variants))
	sizes := make([]structs.Size, 0, len(p.Variants))
	for i := range p.Variants {
		if !p.Variants[i].IsActive {
			continue
		}
		if _, ok := seen[p.Variants[i].Size]; ok {
			continue
		}
		seen[p.Variants[i].Size] = struct{}{}
		sizes = append(sizes, p.Variants[i].Size)
	}
	return sizes
}

// AvailableColors returns the distinct colors across active variants,
// in first-seen order.
func (p *Product) AvailableColors() []structs.Color {
	seen := make(map[structs.Color]struct{}, len(p.Variants))
	colors := make([]structs.Color, 0, len(p.Variants))
	for i := range p.Variants {
		if !p.Variants[i].IsActive {
			continue
		}
		if _, ok := seen[p.Variants[i].Color]; ok {
			continue
		}
		seen[p.Variants[i].Color] = struct{}{}
		colors = append(colors, p.Variants[i].Color)
	}
	return colors
}

// MainImage returns the URL of the primary image, falling back to the
// first image, or "" when the product has none.
func (p *Product) MainImage() string {
	for i := range p.Images {
		if p.Images[i].IsPrimary {
			return p.Images[i].URL
		}
	}
	if len(p.Images) > 0 {
		return p.Images[0].URL
	}
	return ""
}
