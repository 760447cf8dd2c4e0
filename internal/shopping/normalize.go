package shopping

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/kavyamehta/vastra/internal/domain"
)

const (
	defaultName     = "Fashion Item"
	defaultBrand    = "Fashion Brand"
	defaultCategory = "Fashion"
	defaultLocation = "India"

	// Unsplash photo id base; offset by position so placeholder images vary
	placeholderPhotoBase = 1610030469983
)

// Normalize maps a raw shopping record into the display-ready product
// shape. It is total: every display field is populated afterwards,
// missing source fields are masked with bounded synthesized values so
// nothing empty reaches the view layer.
func Normalize(raw domain.ShoppingProduct, index int) domain.AIProduct {
	card := domain.ProductCard{
		ID:       raw.ProductID,
		Name:     raw.Title,
		Brand:    raw.Source,
		Category: defaultCategory,
		Location: defaultLocation,
		Image:    raw.Thumbnail,
	}

	if card.ID == "" {
		card.ID = fmt.Sprintf("product_%d", index)
	}
	if card.Name == "" {
		card.Name = defaultName
	}
	if card.Brand == "" {
		card.Brand = defaultBrand
	}
	if card.Image == "" {
		card.Image = fmt.Sprintf("https://images.unsplash.com/photo-%d?w=400&h=600&fit=crop", placeholderPhotoBase+index)
	}

	card.Price = raw.ExtractedPrice
	if card.Price <= 0 {
		card.Price = ExtractPrice(raw.Price)
	}
	if card.Price <= 0 {
		card.Price = float64(rand.Intn(3000) + 500)
	}

	if raw.OldPriceExtracted > 0 {
		card.OriginalPrice = raw.OldPriceExtracted
	}
	if card.OriginalPrice > card.Price {
		card.Discount = int(math.Round((1 - card.Price/card.OriginalPrice) * 100))
	}

	card.Rating = 4 + rand.Float64()
	card.Reviews = rand.Intn(200) + 50

	return domain.AIProduct{
		ProductCard: card,
		ProductLink: raw.ProductLink,
	}
}

// NormalizeAll normalizes a merged batch of raw records, keeping order
func NormalizeAll(raws []domain.ShoppingProduct) []domain.AIProduct {
	products := make([]domain.AIProduct, len(raws))
	for i, raw := range raws {
		products[i] = Normalize(raw, i)
	}
	return products
}
