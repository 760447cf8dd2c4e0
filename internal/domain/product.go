package domain

// ShoppingProduct is a raw record from the external shopping index
type ShoppingProduct struct {
	Title             string   `json:"title"`
	ProductLink       string   `json:"product_link"`
	ProductID         string   `json:"product_id"`
	Source            string   `json:"source"`
	Price             string   `json:"price"`
	ExtractedPrice    float64  `json:"extracted_price"`
	OldPriceExtracted float64  `json:"old_price_extracted"`
	Extensions        []string `json:"extensions"`
	Thumbnail         string   `json:"thumbnail"`
	Position          int      `json:"position"`
}

// ShoppingResponse is the envelope returned by the shopping index
type ShoppingResponse struct {
	ShoppingResults []ShoppingProduct `json:"shopping_results"`
}

// ProductCard holds the display fields every product variant carries.
// After normalization all of these are populated; zero values for
// OriginalPrice and Discount mean "absent".
type ProductCard struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	OriginalPrice float64 `json:"original_price,omitempty"`
	Image         string  `json:"image"`
	Rating        float64 `json:"rating"`
	Reviews       int     `json:"reviews"`
	Brand         string  `json:"brand"`
	Category      string  `json:"category"`
	Location      string  `json:"location"`
	Discount      int     `json:"discount,omitempty"`
}

// Product is the canonical display-ready record. It is a sealed sum of
// two variants: CatalogProduct from the built-in catalog and AIProduct
// from the AI search pipeline. Origin is decided by type, never by
// sniffing field presence.
type Product interface {
	Card() ProductCard
	sealed()
}

// CatalogProduct is a product from the static built-in catalog
type CatalogProduct struct {
	ProductCard
}

// AIProduct is a product sourced through the AI search pipeline; it
// carries the outbound merchant link
type AIProduct struct {
	ProductCard
	ProductLink string `json:"product_link,omitempty"`
}

// Card returns the display fields
func (p CatalogProduct) Card() ProductCard { return p.ProductCard }

// Card returns the display fields
func (p AIProduct) Card() ProductCard { return p.ProductCard }

func (CatalogProduct) sealed() {}
func (AIProduct) sealed()      {}
