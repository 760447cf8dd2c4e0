package repository

import "github.com/kavyamehta/vastra/internal/domain"

// BuiltinCatalog is the static product set shown before any search and
// whenever the AI pipeline comes back empty
func BuiltinCatalog() []domain.CatalogProduct {
	return []domain.CatalogProduct{
		{ProductCard: domain.ProductCard{
			ID: "1", Name: "Elegant Red Silk Saree", Price: 2499, OriginalPrice: 3999,
			Image:  "https://images.unsplash.com/photo-1610030469983-98e550d6193c?w=400&h=600&fit=crop",
			Rating: 4.5, Reviews: 234, Brand: "Fabindia", Category: "Sarees",
			Location: "Mumbai", Discount: 38,
		}},
		{ProductCard: domain.ProductCard{
			ID: "2", Name: "Cotton Kurta Set for Office", Price: 1299, OriginalPrice: 1899,
			Image:  "https://images.unsplash.com/photo-1583391733956-6c78276477e2?w=400&h=600&fit=crop",
			Rating: 4.2, Reviews: 156, Brand: "W for Woman", Category: "Kurtas",
			Location: "Delhi", Discount: 32,
		}},
		{ProductCard: domain.ProductCard{
			ID: "3", Name: "Designer Lehenga Choli", Price: 8999, OriginalPrice: 12999,
			Image:  "https://images.unsplash.com/photo-1594736797933-d0401ba2fe65?w=400&h=600&fit=crop",
			Rating: 4.8, Reviews: 89, Brand: "Kalki Fashion", Category: "Lehengas",
			Location: "Jaipur", Discount: 31,
		}},
		{ProductCard: domain.ProductCard{
			ID: "4", Name: "Casual Denim Jacket", Price: 1799,
			Image:  "https://images.unsplash.com/photo-1551028719-00167b16eac5?w=400&h=600&fit=crop",
			Rating: 4.1, Reviews: 203, Brand: "Zara", Category: "Jackets",
			Location: "Bangalore",
		}},
		{ProductCard: domain.ProductCard{
			ID: "5", Name: "Traditional Bandhani Dupatta", Price: 899, OriginalPrice: 1299,
			Image:  "https://images.unsplash.com/photo-1583391733981-3cc22c4e0e3c?w=400&h=600&fit=crop",
			Rating: 4.3, Reviews: 167, Brand: "Biba", Category: "Dupattas",
			Location: "Ahmedabad", Discount: 31,
		}},
		{ProductCard: domain.ProductCard{
			ID: "6", Name: "Formal Blazer for Women", Price: 2299, OriginalPrice: 3199,
			Image:  "https://images.unsplash.com/photo-1594736797933-d0401ba2fe65?w=400&h=600&fit=crop",
			Rating: 4.4, Reviews: 124, Brand: "AND", Category: "Blazers",
			Location: "Chennai", Discount: 28,
		}},
	}
}
