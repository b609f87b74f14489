package edge

import "github.com/dopetech/dopetech-api/models"

// fallbackProducts is the embedded substitute dataset for product reads when
// the remote store is unreachable, times out, or returns zero rows. It is
// never written back to the store.
var fallbackProducts = []models.Product{
	{
		ID:            1,
		Name:          "Gaming Keyboard Pro",
		Price:         129.99,
		OriginalPrice: 159.99,
		ImageURL:      "/products/keyboard.png",
		Category:      "keyboard",
		Rating:        4.8,
		Reviews:       245,
		Description:   "Premium mechanical gaming keyboard with RGB lighting and programmable keys",
		Features:      []string{"Mechanical switches", "RGB lighting", "Programmable keys", "Wrist rest"},
		InStock:       true,
		Discount:      19,
	},
	{
		ID:            2,
		Name:          "Wireless Gaming Mouse",
		Price:         89.99,
		OriginalPrice: 119.99,
		ImageURL:      "/products/key.png",
		Category:      "mouse",
		Rating:        4.7,
		Reviews:       189,
		Description:   "High-precision wireless gaming mouse with customizable DPI",
		Features:      []string{"Wireless", "Customizable DPI", "RGB lighting", "Ergonomic design"},
		InStock:       true,
		Discount:      25,
	},
	{
		ID:            3,
		Name:          "Premium Headphones",
		Price:         199.99,
		OriginalPrice: 249.99,
		ImageURL:      "/products/Screenshot 2025-08-02 215007.png",
		Category:      "audio",
		Rating:        4.9,
		Reviews:       312,
		Description:   "Studio-quality headphones with noise cancellation",
		Features:      []string{"Noise cancellation", "Bluetooth", "40-hour battery", "Premium audio"},
		InStock:       true,
		Discount:      20,
	},
	{
		ID:            4,
		Name:          "Gaming Monitor",
		Price:         299.99,
		OriginalPrice: 399.99,
		ImageURL:      "/products/Screenshot 2025-08-02 215024.png",
		Category:      "monitor",
		Rating:        4.6,
		Reviews:       156,
		Description:   "27-inch 144Hz gaming monitor with 1ms response time",
		Features:      []string{"144Hz refresh rate", "1ms response", "FreeSync", "HDR support"},
		InStock:       true,
		Discount:      25,
	},
	{
		ID:            5,
		Name:          "Gaming Speaker System",
		Price:         149.99,
		OriginalPrice: 199.99,
		ImageURL:      "/products/Screenshot 2025-08-02 215110.png",
		Category:      "speaker",
		Rating:        4.5,
		Reviews:       98,
		Description:   "Immersive gaming speaker system with subwoofer",
		Features:      []string{"2.1 Channel", "Subwoofer", "RGB lighting", "Gaming optimized"},
		InStock:       true,
		Discount:      25,
	},
}

// FallbackProducts returns a copy so callers can shuffle or annotate without
// touching the shared dataset.
func FallbackProducts() []models.Product {
	out := make([]models.Product, len(fallbackProducts))
	copy(out, fallbackProducts)
	return out
}
