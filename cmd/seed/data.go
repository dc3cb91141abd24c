package main

import (
	"github.com/jmoiron/sqlx"

	"github.com/primehood/supplies-api/internal/models"
)

var seedCategories = []models.Category{
	{Name: "Football", Slug: "football", Icon: "⚽"},
	{Name: "Basketball", Slug: "basketball", Icon: "🏀"},
	{Name: "Athletics", Slug: "athletics", Icon: "🏃"},
	{Name: "School Uniforms", Slug: "school-uniforms", Icon: "👔"},
	{Name: "Trophies & Awards", Slug: "trophies-awards", Icon: "🏆"},
	{Name: "Sports Accessories", Slug: "accessories", Icon: "🎒"},
	{Name: "Hockey", Slug: "hockey", Icon: "🏑"},
	{Name: "Volleyball", Slug: "volleyball", Icon: "🏐"},
	{Name: "Swimming", Slug: "swimming", Icon: "🏊"},
}

type seedProduct struct {
	categorySlug string
	product      models.Product
}

func intPtr(v int) *int { return &v }

var seedProducts = []seedProduct{
	{
		categorySlug: "football",
		product: models.Product{
			Slug:         "adidas-al-rihla-pro",
			Name:         "Adidas Al Rihla Pro Ball",
			Description:  "Official match ball of the FIFA World Cup. Seamless surface for predictable trajectory.",
			Price:        15000,
			ComparePrice: intPtr(18000),
			Brand:        "Adidas",
			Images:       []string{"/images/p1.jpeg", "/images/p6.jpeg"},
			Sizes:        []string{},
			Colors:       []string{},
			StockCount:   25,
			Rating:       5.0,
			ReviewCount:  42,
			Featured:     true,
			IsNew:        true,
			Tags:         []string{"football", "ball", "adidas", "match"},
		},
	},
	{
		categorySlug: "football",
		product: models.Product{
			Slug:        "nike-flight-ball",
			Name:        "Nike Flight Ball",
			Description: "Revolutionary aerodynamics for consistent flight. All Conditions Control (ACC) technology.",
			Price:       14500,
			Brand:       "Nike",
			Images:      []string{"/images/p4.jpeg", "/images/p6.jpeg"},
			Sizes:       []string{},
			Colors:      []string{},
			StockCount:  30,
			Rating:      4.8,
			ReviewCount: 35,
			Tags:        []string{"football", "ball", "nike"},
		},
	},
	{
		categorySlug: "football",
		product: models.Product{
			Slug:         "standard-training-football",
			Name:         "Standard Training Football",
			Description:  "Durable PU leather football perfect for daily training sessions. Size 5.",
			Price:        2500,
			ComparePrice: intPtr(3000),
			Brand:        "Mikasa",
			Images:       []string{"/images/p1.jpeg", "/images/p2.jpeg"},
			Sizes:        []string{},
			Colors:       []string{},
			StockCount:   100,
			Rating:       4.5,
			ReviewCount:  120,
			Tags:         []string{"football", "training", "ball"},
		},
	},
	{
		categorySlug: "football",
		product: models.Product{
			Slug:        "agility-cones-set",
			Name:        "Agility Cones (Set of 50)",
			Description: "High-visibility marker cones with carrying stand. Essential for drills.",
			Price:       1800,
			Brand:       "Primehood",
			Images:      []string{"/images/p22.jpeg", "/images/p21.jpeg"},
			Sizes:       []string{},
			Colors:      []string{},
			StockCount:  50,
			Rating:      4.7,
			ReviewCount: 15,
			Tags:        []string{"training", "cones", "football"},
		},
	},
	{
		categorySlug: "football",
		product: models.Product{
			Slug:        "football-goal-net",
			Name:        "Football Goal Net (Pair)",
			Description: "Professional standard 11-a-side goal nets. Weather-resistant nylon.",
			Price:       8500,
			Brand:       "Primehood",
			Images:      []string{"/images/p20.jpeg", "/images/p19.jpeg"},
			Sizes:       []string{},
			Colors:      []string{},
			StockCount:  10,
			Rating:      4.8,
			ReviewCount: 8,
			Tags:        []string{"football", "net", "goal"},
		},
	},
	{
		categorySlug: "basketball",
		product: models.Product{
			Slug:         "molten-bg4500",
			Name:         "Molten BG4500 Basketball",
			Description:  "FIBA approved premium leather basketball. Official game ball size 7.",
			Price:        8500,
			ComparePrice: intPtr(9500),
			Brand:        "Molten",
			Images:       []string{"/images/p22.jpeg", "/images/p1.jpeg"},
			Sizes:        []string{},
			Colors:       []string{},
			StockCount:   40,
			Rating:       4.9,
			ReviewCount:  65,
			Featured:     true,
			IsNew:        true,
			Tags:         []string{"basketball", "molten", "fiba"},
		},
	},
	{
		categorySlug: "basketball",
		product: models.Product{
			Slug:        "spalding-tf-1000",
			Name:        "Spalding TF-1000 Legacy",
			Description: "Deep channel design for superior grip. Indoor competition ball.",
			Price:       9000,
			Brand:       "Spalding",
			Images:      []string{"/images/p22.jpeg", "/images/p4.jpeg"},
			Sizes:       []string{},
			Colors:      []string{},
			StockCount:  35,
			Rating:      4.8,
			ReviewCount: 40,
			Tags:        []string{"basketball", "spalding", "indoor"},
		},
	},
	{
		categorySlug: "athletics",
		product: models.Product{
			Slug:        "competition-spikes",
			Name:        "Track Competition Spikes",
			Description: "Lightweight sprint spikes with replaceable pins. Sizes 38-45.",
			Price:       7500,
			Brand:       "Nike",
			Images:      []string{"/images/p9.jpeg", "/images/p10.jpeg"},
			Sizes:       []string{"38", "39", "40", "41", "42", "43", "44", "45"},
			Colors:      []string{},
			StockCount:  20,
			Rating:      4.6,
			ReviewCount: 28,
			Tags:        []string{"athletics", "spikes", "running"},
		},
	},
	{
		categorySlug: "volleyball",
		product: models.Product{
			Slug:        "mikasa-v200w",
			Name:        "Mikasa V200W Volleyball",
			Description: "FIVB approved official game ball with aerodynamic dimples.",
			Price:       9500,
			Brand:       "Mikasa",
			Images:      []string{"/images/p13.jpeg", "/images/p14.jpeg"},
			Sizes:       []string{},
			Colors:      []string{},
			StockCount:  30,
			Rating:      4.9,
			ReviewCount: 55,
			Featured:    true,
			Tags:        []string{"volleyball", "mikasa", "fivb"},
		},
	},
	{
		categorySlug: "volleyball",
		product: models.Product{
			Slug:        "volleyball-net-competition",
			Name:        "Volleyball Net (Competition)",
			Description: "Steel cable top competition net with antennas.",
			Price:       6500,
			Brand:       "Mikasa",
			Images:      []string{"/images/p19.jpeg", "/images/p20.jpeg"},
			Sizes:       []string{},
			Colors:      []string{},
			StockCount:  15,
			Rating:      4.8,
			ReviewCount: 12,
			Tags:        []string{"volleyball", "net"},
		},
	},
	{
		categorySlug: "trophies-awards",
		product: models.Product{
			Slug:        "champions-cup-gold",
			Name:        "Champions Cup (Gold, 45cm)",
			Description: "Premium metal trophy cup with engravable marble base.",
			Price:       5500,
			Brand:       "Primehood",
			Images:      []string{"/images/p16.jpeg", "/images/p17.jpeg"},
			Sizes:       []string{},
			Colors:      []string{},
			StockCount:  25,
			Rating:      4.9,
			ReviewCount: 33,
			Tags:        []string{"trophy", "award", "cup"},
		},
	},
	{
		categorySlug: "school-uniforms",
		product: models.Product{
			Slug:        "pe-kit-school-set",
			Name:        "School PE Kit (T-shirt + Shorts)",
			Description: "Breathable polyester PE set in school colors. Bulk orders welcome.",
			Price:       1500,
			Brand:       "Primehood",
			Images:      []string{"/images/p7.jpeg", "/images/p8.jpeg"},
			Sizes:       []string{"S", "M", "L", "XL"},
			Colors:      []string{"Blue", "Green", "Red"},
			StockCount:  200,
			Rating:      4.4,
			ReviewCount: 80,
			Tags:        []string{"uniform", "school", "pe"},
		},
	},
}

// seedSampleOrder inserts a demo customer and a paid order so the dashboard
// has data on first run. No stock is decremented for this historical order.
func seedSampleOrder(db *sqlx.DB) error {
	var customerID int
	err := db.QueryRow(`
        INSERT INTO customers (email, name, phone)
        VALUES ('john@email.com', 'John Kamau', '0712 345 678')
        ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
        RETURNING id`).Scan(&customerID)
	if err != nil {
		return err
	}

	var orderID int
	err = db.QueryRow(`
        INSERT INTO orders (order_number, customer_id, subtotal, vat, shipping, total,
                            status, payment_method, payment_status, address, town, county)
        VALUES ('PH-20260215-001', $1, 15000, 2400, 200, 17600,
                'PROCESSING', 'MPESA', 'PAID', '123 Moi Ave', 'Westlands', 'Nairobi')
        ON CONFLICT (order_number) DO UPDATE SET order_number = EXCLUDED.order_number
        RETURNING id`, customerID).Scan(&orderID)
	if err != nil {
		return err
	}

	// Reserve the demo order's sequence so a live checkout on the same date
	// cannot mint PH-20260215-001 again.
	_, err = db.Exec(`
        INSERT INTO order_counters (day, seq)
        VALUES ('2026-02-15', 1)
        ON CONFLICT (day) DO UPDATE SET seq = GREATEST(order_counters.seq, 1)`)
	if err != nil {
		return err
	}

	var itemCount int
	if err := db.Get(&itemCount, `SELECT COUNT(1) FROM order_items WHERE order_id = $1`, orderID); err != nil {
		return err
	}
	if itemCount > 0 {
		return nil
	}
	_, err = db.Exec(`
        INSERT INTO order_items (order_id, name, quantity, price)
        VALUES ($1, 'Adidas Al Rihla Pro Ball', 1, 15000)`, orderID)
	return err
}
