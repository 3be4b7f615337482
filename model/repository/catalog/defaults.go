package catalog

import (
	catalogEntity "mbs.GO/model/entity/catalog"
)

// Built-in default collections. Used on first boot and whenever a persisted
// collection is missing or fails to parse.

// DefaultCategories returns the category list in display order.
func DefaultCategories() []catalogEntity.Category {
	return []catalogEntity.Category{
		{ID: "shingles", Name: "Shingles", HasSubcategories: true, Image: "https://i.ibb.co/zTZzG2LM/Shingles.jpg"},
		{ID: "underlayment", Name: "Underlayment", HasSubcategories: false, Image: "https://i.ibb.co/XrPdP74S/Underlayment.png"},
		{ID: "hip-and-ridge", Name: "Hip and Ridge", HasSubcategories: true, Image: "https://i.ibb.co/MDQFXdrc/Hip-Ridge.png"},
		{ID: "ice-and-water", Name: "Ice and Water", HasSubcategories: false, Image: "https://i.ibb.co/hRgJ23bS/Ice-and-Water.jpg"},
		{ID: "drip-edge", Name: "Drip Edge and Gutter Apron", HasSubcategories: false, Image: "https://i.ibb.co/sJqx94Ms/Drip-Edge-Gytter-Apron.jpg"},
		{ID: "ventilation", Name: "Ventilation", HasSubcategories: false, Image: "https://i.ibb.co/RknpXthD/Ventilation.png"},
		{ID: "flashings", Name: "Flashings", HasSubcategories: false, Image: "https://i.ibb.co/dwBYrnWx/Flashings.jpg"},
		{ID: "accessories", Name: "Accessories", HasSubcategories: false, Image: "https://i.ibb.co/XfPtwRWR/Accessories.png"},
		{ID: "nails", Name: "Nails", HasSubcategories: false, Image: "https://i.ibb.co/yBK8zdXf/Nails.png"},
		{ID: "paint-caulking", Name: "Paint and Caulking", HasSubcategories: false, Image: "https://i.ibb.co/RTTVwFwf/Paint-and-Caulking.png"},
		{ID: "valley-metal", Name: "Valley Metal", HasSubcategories: false, Image: "https://i.ibb.co/tTBH0B70/Valley-Metal.jpg"},
	}
}

// DefaultBrands returns brands per category (categories with subcategories only).
func DefaultBrands() map[string][]catalogEntity.Brand {
	certainteed := catalogEntity.Brand{
		ID:    "certainteed",
		Name:  "CertainTeed",
		Image: "https://i.ibb.co/Nd2r1YkC/1617238.webp",
		Logo:  "https://i.ibb.co/Nd2r1YkC/1617238.webp",
	}
	atlas := catalogEntity.Brand{
		ID:    "atlas",
		Name:  "Atlas",
		Image: "https://static.wikia.nocookie.net/logopedia/images/0/0e/Atlas_Roofing_Corporation_1982.png",
		Logo:  "https://static.wikia.nocookie.net/logopedia/images/0/0e/Atlas_Roofing_Corporation_1982.png",
	}
	return map[string][]catalogEntity.Brand{
		"shingles":      {certainteed, atlas},
		"hip-and-ridge": {certainteed, atlas},
	}
}

// DefaultProducts returns products per brand per category.
func DefaultProducts() map[string]map[string][]catalogEntity.Product {
	return map[string]map[string][]catalogEntity.Product{
		"certainteed": {
			"shingles": {
				{ID: "black-1", Name: "Black 1", Image: "https://i.ibb.co/27hmxs8m/Black1.jpg", StartingPrice: 125.99},
				{ID: "black-2", Name: "Black 2", Image: "https://i.ibb.co/35qyh426/Black2.png", StartingPrice: 125.99},
				{ID: "birchwood", Name: "Birchwood", Image: "https://i.ibb.co/RTpzg3zY/birchwood.webp", StartingPrice: 135.99},
				{ID: "burnt-sienna", Name: "Burnt Sienna", Image: "https://i.ibb.co/XZ45LDBG/burnt-sienna.webp", StartingPrice: 135.99},
				{ID: "cottage-red", Name: "Cottage Red", Image: "https://i.ibb.co/mrwbvCBq/3fee27e615d454dc8259dad2a9a4c60c.webp", StartingPrice: 145.99},
				{ID: "driftwood", Name: "Driftwood", Image: "https://i.ibb.co/TqF8w9yX/driftwood.webp", StartingPrice: 135.99},
				{ID: "weathered-wood", Name: "Weathered Wood", Image: "https://i.ibb.co/G48gvQSd/Weathered-Wood.jpg", StartingPrice: 135.99},
				{ID: "georgetown-gray", Name: "Georgetown Gray", Image: "https://i.ibb.co/nNjwXwwY/georgetown-gray.webp", StartingPrice: 135.99},
				{ID: "heather-blend", Name: "Heather Blend", Image: "https://i.ibb.co/CKcRH31q/Heather-Blend.jpg", StartingPrice: 145.99},
				{ID: "hunter-green", Name: "Hunter Green", Image: "https://i.ibb.co/jkDNgtLb/hunter-green.webp", StartingPrice: 145.99},
				{ID: "mission-brown", Name: "Mission Brown", Image: "https://i.ibb.co/9kfMkwRK/mission-brown.webp", StartingPrice: 135.99},
			},
			"hip-and-ridge": {
				{ID: "hi-def-pewter", Name: "Hi Def Pewter", Image: "https://i.ibb.co/G4PVSCVM/Hi-Def-Pewter.jpg", StartingPrice: 89.99, HasColors: true},
				{ID: "hip-ridge-p1", Name: "Hip Ridge P1", Image: "https://i.ibb.co/kVrcyq3Z/Hip-Ridge-P1.jpg", StartingPrice: 79.99, HasColors: true},
				{ID: "hip-ridge-p2", Name: "Hip Ridge P2", Image: "https://i.ibb.co/9m2d25BQ/Hip-Ridge-P2.jpg", StartingPrice: 79.99, HasColors: true},
			},
		},
		"atlas": {
			"shingles": {
				{ID: "prolam", Name: "ProLam", Image: "https://images.unsplash.com/photo-1565193566173-7a0ee3dbe261?w=600", StartingPrice: 115.99, HasColors: true},
				{ID: "pinnacle", Name: "Pinnacle", Image: "https://images.unsplash.com/photo-1614564079675-2c8395264878?w=600", StartingPrice: 135.99, HasColors: true},
				{ID: "storm-master", Name: "StormMaster", Image: "https://images.unsplash.com/photo-1632478023417-22e475dbc5bd?w=600", StartingPrice: 149.99, HasColors: true},
			},
			"hip-and-ridge": {},
		},
	}
}

// DefaultColors returns color variants per product id.
func DefaultColors() map[string][]catalogEntity.Color {
	return map[string][]catalogEntity.Color{
		"hi-def-pewter": {
			{ID: "pewter", Name: "Pewter", Hex: "#696969", Price: 89.99, Stock: 150},
			{ID: "charcoal-black", Name: "Charcoal Black", Hex: "#2C2C2C", Price: 89.99, Stock: 125},
			{ID: "weathered-wood", Name: "Weathered Wood", Hex: "#8B7355", Price: 89.99, Stock: 100},
		},
		"hip-ridge-p1": {
			{ID: "charcoal-black", Name: "Charcoal Black", Hex: "#2C2C2C", Price: 79.99, Stock: 175},
			{ID: "weathered-wood", Name: "Weathered Wood", Hex: "#8B7355", Price: 79.99, Stock: 150},
			{ID: "colonial-slate", Name: "Colonial Slate", Hex: "#4A5568", Price: 79.99, Stock: 125},
		},
		"hip-ridge-p2": {
			{ID: "charcoal-black", Name: "Charcoal Black", Hex: "#2C2C2C", Price: 79.99, Stock: 165},
			{ID: "weathered-wood", Name: "Weathered Wood", Hex: "#8B7355", Price: 79.99, Stock: 140},
			{ID: "burnt-sienna", Name: "Burnt Sienna", Hex: "#8B4513", Price: 79.99, Stock: 115},
		},
		"prolam": {
			{ID: "charcoal-black", Name: "Charcoal Black", Hex: "#2C2C2C", Price: 115.99, Stock: 320},
			{ID: "weathered-wood", Name: "Weathered Wood", Hex: "#8B7355", Price: 115.99, Stock: 285},
			{ID: "storm-gray", Name: "Storm Gray", Hex: "#708090", Price: 115.99, Stock: 205},
			{ID: "burnt-sienna", Name: "Burnt Sienna", Hex: "#8B4513", Price: 115.99, Stock: 165},
		},
		"pinnacle": {
			{ID: "charcoal-black", Name: "Charcoal Black", Hex: "#2C2C2C", Price: 135.99, Stock: 180},
			{ID: "weathered-wood", Name: "Weathered Wood", Hex: "#8B7355", Price: 135.99, Stock: 145},
			{ID: "slate-gray", Name: "Slate Gray", Hex: "#708090", Price: 135.99, Stock: 125},
		},
		"storm-master": {
			{ID: "charcoal-black", Name: "Charcoal Black", Hex: "#2C2C2C", Price: 149.99, Stock: 95},
			{ID: "weathered-wood", Name: "Weathered Wood", Hex: "#8B7355", Price: 149.99, Stock: 75},
			{ID: "storm-cloud", Name: "Storm Cloud", Hex: "#778899", Price: 149.99, Stock: 85},
		},
	}
}

// DefaultDirectProducts returns the flat product lists for categories
// without subcategories.
func DefaultDirectProducts() map[string][]catalogEntity.DirectProduct {
	return map[string][]catalogEntity.DirectProduct{
		"underlayment": {
			{ID: "15lb-felt", Name: "15lb Felt", Image: "https://i.ibb.co/3mxnyrPz/15lb-Felt.jpg", Price: 35.99, Stock: 250},
			{ID: "30lb-felt", Name: "30lb Felt", Image: "https://i.ibb.co/DftSK6KQ/30lb-Felt.jpg", Price: 45.99, Stock: 200},
			{ID: "synthetic-felt-1", Name: "Synthetic Felt 1", Image: "https://i.ibb.co/1Gm4kqgY/Synthetic-Felt-1.jpg", Price: 89.99, Stock: 150},
			{ID: "synthetic-felt-2", Name: "Synthetic Felt 2", Image: "https://i.ibb.co/zhpmg5Hy/Synethic-Felt-2.jpg", Price: 95.99, Stock: 125},
		},
		"ice-and-water": {
			{ID: "certainteed-winter-guard", Name: "CertainTeed Winter Guard", Image: "https://i.ibb.co/6RZNgRZc/Certainteed-Winter-Guard.jpg", Price: 135.99, Stock: 75},
			{ID: "topshield-ice-water", Name: "Topshield Ice and Water", Image: "https://i.ibb.co/YB3HY6Mf/Topshield-Ice-and-Water.png", Price: 185.99, Stock: 45},
		},
		"drip-edge": {
			{ID: "drip-edge-black", Name: "Drip Edge - Black", Image: "https://i.ibb.co/9HkBWTBk/Drip-Edge-Black.png", Price: 12.99, Stock: 500},
			{ID: "gutter-apron-white", Name: "Gutter Apron - White", Image: "https://i.ibb.co/TMpRwZwh/Gutter-Apron-White.png", Price: 18.99, Stock: 225},
		},
		"ventilation": {
			{ID: "box-vent-black", Name: "Box Vent Black", Image: "https://i.ibb.co/LzMxFcGt/Box-Vent-Black.jpg", Price: 35.99, Stock: 150},
			{ID: "box-vent-brown", Name: "Box Vent Brown", Image: "https://i.ibb.co/MxMjJNPb/Box-Vent-Brown.png", Price: 35.99, Stock: 125},
			{ID: "dryer-vent-12", Name: "Dryer Vent 12 Inch", Image: "https://i.ibb.co/4wMHmPNr/Dryer-Vent-12-inch.jpg", Price: 28.99, Stock: 200},
			{ID: "dryer-vent-5", Name: "Dryer Vent 5 Inch", Image: "https://i.ibb.co/mr9q4dhC/Dryver-vent-5-inch.jpg", Price: 18.99, Stock: 275},
			{ID: "louver-vent", Name: "Louver Vent", Image: "https://i.ibb.co/V00ybsb6/Louver-Vent.png", Price: 45.99, Stock: 95},
			{ID: "ridge-vent-4ft", Name: "Ridge Vent (4ft)", Image: "https://i.ibb.co/0jFPRJgv/Ridge-Vent-4ft.png", Price: 22.99, Stock: 185},
			{ID: "ridge-vent-rolled", Name: "Ridge Vent (Rolled)", Image: "https://i.ibb.co/hQbzks5/Ridge-Vent-Rolled.png", Price: 89.99, Stock: 65},
		},
		"flashings": {
			{ID: "4x4-10ft-roof-to-wall", Name: "4x4 10ft Roof to Wall", Image: "https://i.ibb.co/qFh5H3F8/4x4-10ft-Roof-To-Wall.png", Price: 28.99, Stock: 175},
			{ID: "4x4x-10ft-roof-to-wall-white", Name: "4x4x 10ft Roof to Wall White", Image: "https://i.ibb.co/My0rbSLs/4x4x-10ft-Roof-To-Wall-White.png", Price: 32.99, Stock: 150},
			{ID: "black-trim-coil", Name: "Black Trim Coil", Image: "https://i.ibb.co/k2QqjJsB/Black-Trim-Coil.jpg", Price: 125.99, Stock: 85},
			{ID: "brown-trim-coil", Name: "Brown Trim Coil", Image: "https://i.ibb.co/b5b3mcdq/Brown-Trim-Coil.jpg", Price: 125.99, Stock: 75},
			{ID: "roof-to-wall-flashing", Name: "Roof to Wall Flashing", Image: "https://i.ibb.co/PZSGSR2X/Roof-To-Wall-Flashing.jpg", Price: 35.99, Stock: 225},
			{ID: "step-flash-black", Name: "Step Flash 4x4x8 Black ALUM", Image: "https://i.ibb.co/Gvd8CNRV/Step-Flash-4x4x8-Black-ALUM.png", Price: 3.99, Stock: 850},
			{ID: "step-flash-brown", Name: "Step Flash 4x4x8 Brown ALUM", Image: "https://i.ibb.co/k20yh8tc/Step-Flash-4x4x8-Brown-ALUM.png", Price: 3.99, Stock: 750},
			{ID: "step-flash-silver", Name: "Step Flash 4x4x8 Silver GALVANIZED", Image: "https://i.ibb.co/671QpLfh/Step-Flash-4x4x8-Silver-GALVANIZED.png", Price: 2.85, Stock: 1000},
		},
		"accessories": {
			{ID: "pipe-boot-alum-black", Name: "Pipe Boot Alum Black", Image: "https://i.ibb.co/rGM2C54v/Pipe-Boot-ALUM-BLACK.png", Price: 18.99, Stock: 225},
			{ID: "pipe-boot-alum-silver", Name: "Pipe Boot Alum Silver", Image: "https://i.ibb.co/dws6qVzB/Pipe-Boot-ALUM-SILVER.png", Price: 16.99, Stock: 250},
			{ID: "pipe-boot-plastic-black", Name: "Pipe Boot Plastic Black", Image: "https://i.ibb.co/RpXTZZ85/Pipe-Boot-PLASTIC-BLACK.png", Price: 12.99, Stock: 350},
		},
		"nails": {
			{ID: "cap-nails", Name: "Cap Nails", Image: "https://i.ibb.co/wZ2TJbsg/Cap-Nails.png", Price: 45.99, Stock: 150},
			{ID: "coil-nails", Name: "Coil Nails", Image: "https://i.ibb.co/p65bmLRp/Coil-Nails.png", Price: 89.99, Stock: 125},
			{ID: "staples", Name: "Staples", Image: "https://i.ibb.co/zTrX449G/Staples.png", Price: 35.99, Stock: 200},
		},
		"paint-caulking": {
			{ID: "black-spray-paint", Name: "Black (Negro) Spray Paint", Image: "https://i.ibb.co/3ypybSsY/Black-Negro-Spray-Paint.png", Price: 12.99, Stock: 250},
			{ID: "caulking-black", Name: "Caulking Black", Image: "https://i.ibb.co/gZbYhVwg/Caulking-Black.png", Price: 8.99, Stock: 175},
			{ID: "caulking-white", Name: "Caulking White", Image: "https://i.ibb.co/Q3W2C316/Caulking-White.png", Price: 8.99, Stock: 200},
			{ID: "weathered-wood-spray-paint", Name: "Weathered Wood (Madera Desgastada) Spray Paint", Image: "https://i.ibb.co/7JnpMKvR/Weathered-Wood-Madera-Desgatrada-Sprau-Paint.png", Price: 12.99, Stock: 150},
		},
		"valley-metal": {
			{ID: "smooth-valley-black", Name: "Smooth Valley Metal Black", Image: "https://i.ibb.co/rRq5vxsx/Smooth-Valley-Metal-Black.png", Price: 45.99, Stock: 125},
			{ID: "smooth-valley-standard", Name: "Smooth Valley Metal Standard", Image: "https://i.ibb.co/HDMbs8m8/Smooth-Valley-Metal-Standard.png", Price: 35.99, Stock: 150},
			{ID: "w-valley-black", Name: "W Valley Metal Black", Image: "https://i.ibb.co/KxgB8KRc/W-Valley-Metal-Black.png", Price: 48.99, Stock: 95},
			{ID: "w-valley-standard", Name: "W Valley Metal Standard", Image: "https://i.ibb.co/RGnBrS8r/W-Valley-Metal-Standard.png", Price: 38.99, Stock: 115},
		},
	}
}

// DefaultBulkPricing returns bulk tiers per category, sorted ascending by
// MinQty.
func DefaultBulkPricing() map[string][]catalogEntity.BulkTier {
	return map[string][]catalogEntity.BulkTier{
		"shingles": {
			{MinQty: 1, Discount: 0, Label: "Regular Price"},
			{MinQty: 10, Discount: 0.05, Label: "5% off 10+ bundles"},
			{MinQty: 25, Discount: 0.10, Label: "10% off 25+ bundles"},
			{MinQty: 50, Discount: 0.15, Label: "15% off 50+ bundles"},
		},
		"underlayment": {
			{MinQty: 1, Discount: 0, Label: "Regular Price"},
			{MinQty: 5, Discount: 0.05, Label: "5% off 5+ rolls"},
			{MinQty: 15, Discount: 0.10, Label: "10% off 15+ rolls"},
		},
		"ice-and-water": {
			{MinQty: 1, Discount: 0, Label: "Regular Price"},
			{MinQty: 10, Discount: 0.08, Label: "8% off 10+ rolls"},
			{MinQty: 20, Discount: 0.12, Label: "12% off 20+ rolls"},
		},
	}
}

// StockLocations is the warehouse list (read-only).
func StockLocations() []catalogEntity.StockLocation {
	return []catalogEntity.StockLocation{
		{ID: "youngstown", Name: "Youngstown, OH", IsMain: true},
		{ID: "akron", Name: "Akron, OH"},
		{ID: "columbus", Name: "Columbus, OH"},
		{ID: "cleveland", Name: "Cleveland, OH"},
		{ID: "pittsburgh", Name: "Pittsburgh, PA"},
	}
}
