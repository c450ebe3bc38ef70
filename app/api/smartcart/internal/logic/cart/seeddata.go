package cart

type seedProduct struct {
	Name         string
	Price        float64
	Image        string
	ExpiryDays   int64
	GreenScore   int64
	Alternatives map[string]map[string]any
}

// seedCatalog is the fixed starter catalog. Alternatives map the suggestion
// category (price, expiry, green) to a free-form suggestion record.
func seedCatalog() []seedProduct {
	return []seedProduct{
		{
			Name:       "Mozzarella Cheese",
			Price:      250,
			Image:      "https://static.toiimg.com/photo/75296834.cms",
			ExpiryDays: 5,
			GreenScore: 80,
			Alternatives: map[string]map[string]any{
				"price": {
					"name":    "Cheddar Cheese",
					"price":   200,
					"savings": 50,
					"image":   "https://images.unsplash.com/photo-1606755962773-5ce770ae4c4d",
				},
				"expiry": {
					"name":        "Frozen Mozzarella",
					"expiry_days": 30,
					"extraDays":   25,
					"image":       "https://images.unsplash.com/photo-1588167056543-2d26f50339d5",
				},
				"green": {
					"name":        "Organic Mozzarella",
					"greenScore":  90,
					"improvement": 10,
					"reason":      "Made locally using eco-friendly packaging",
					"image":       "https://images.unsplash.com/photo-1612197524814-6dbccd82c6b6",
				},
			},
		},
		{
			Name:       "Cheddar Cheese",
			Price:      200,
			Image:      "https://images.unsplash.com/photo-1606755962773-5ce770ae4c4d",
			ExpiryDays: 10,
			GreenScore: 75,
		},
		{
			Name:       "Frozen Mozzarella",
			Price:      260,
			Image:      "https://images.unsplash.com/photo-1588167056543-2d26f50339d5",
			ExpiryDays: 30,
			GreenScore: 78,
		},
		{
			Name:       "Organic Mozzarella",
			Price:      255,
			Image:      "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcTnXQgPQt2feWZJ4s8uXWH16gvfGjNenYaoRg&s",
			ExpiryDays: 6,
			GreenScore: 90,
		},
		{
			Name:       "Pizza Dough",
			Price:      150,
			Image:      "https://joyfoodsunshine.com/wp-content/uploads/2018/09/easy-homemade-pizza-dough-recipe-2-1.jpg",
			ExpiryDays: 3,
			GreenScore: 75,
		},
		{
			Name:       "Tomato Sauce",
			Price:      100,
			Image:      "https://images.unsplash.com/photo-1606788075761-ec6c4d8dbec5?w=400",
			ExpiryDays: 10,
			GreenScore: 85,
		},
		{
			Name:       "Organic Greek Yogurt",
			Price:      399,
			Image:      "https://images.unsplash.com/photo-1571212515416-6d4cdc4c37ef?w=400&h=300&fit=crop",
			ExpiryDays: 2,
			GreenScore: 85,
			Alternatives: map[string]map[string]any{
				"price": {
					"name":    "Regular Greek Yogurt",
					"price":   279,
					"savings": 120,
				},
				"expiry": {
					"name":        "Long-life Greek Yogurt",
					"expiry_days": 14,
					"extraDays":   12,
				},
				"green": {
					"name":        "Local Organic Yogurt",
					"greenScore":  95,
					"improvement": 10,
					"reason":      "Locally sourced with compostable packaging",
				},
			},
		},
		{
			Name:       "Free-Range Chicken Breast",
			Price:      1039,
			Image:      "https://images.unsplash.com/photo-1604503468506-a8da13d82791?w=400&h=300&fit=crop",
			ExpiryDays: 5,
			GreenScore: 70,
			Alternatives: map[string]map[string]any{
				"price": {
					"name":    "Regular Chicken Breast",
					"price":   719,
					"savings": 320,
				},
				"expiry": {
					"name":        "Frozen Chicken Breast",
					"expiry_days": 90,
					"extraDays":   85,
				},
				"green": {
					"name":        "Plant-Based Protein",
					"greenScore":  90,
					"improvement": 20,
					"reason":      "Lower carbon footprint and cruelty-free",
				},
			},
		},
		{
			Name:       "Artisan Sourdough Bread",
			Price:      519,
			Image:      "https://images.unsplash.com/photo-1549931319-a545dcf3bc73?w=400&h=300&fit=crop",
			ExpiryDays: 1,
			GreenScore: 60,
			Alternatives: map[string]map[string]any{
				"price": {
					"name":    "Whole Wheat Bread",
					"price":   319,
					"savings": 200,
				},
				"expiry": {
					"name":        "Preserved Artisan Bread",
					"expiry_days": 7,
					"extraDays":   6,
				},
				"green": {
					"name":        "Local Bakery Bread",
					"greenScore":  85,
					"improvement": 25,
					"reason":      "Supports local business and reduces transportation emissions",
				},
			},
		},
		{
			Name:       "Olive Oil",
			Price:      459,
			Image:      "https://images.unsplash.com/photo-1611048267330-8f1e7b8d3155?w=400",
			ExpiryDays: 180,
			GreenScore: 88,
			Alternatives: map[string]map[string]any{
				"price": {
					"name":    "Canola Oil",
					"price":   299,
					"savings": 160,
				},
				"expiry": {
					"name":        "Refined Olive Oil",
					"expiry_days": 365,
					"extraDays":   185,
				},
				"green": {
					"name":        "Local Olive Oil",
					"greenScore":  93,
					"improvement": 5,
					"reason":      "Minimal packaging",
				},
			},
		},
		{
			Name:       "Basil Leaves",
			Price:      89,
			Image:      "https://images.unsplash.com/photo-1628591900570-e99ed9d44e3d?w=400",
			ExpiryDays: 3,
			GreenScore: 78,
		},
		{
			Name:       "Shredded Parmesan",
			Price:      329,
			Image:      "https://images.unsplash.com/photo-1600628422019-6b48a36ef21a?w=400",
			ExpiryDays: 14,
			GreenScore: 80,
		},
		{
			Name:       "Canned Sweet Corn",
			Price:      99,
			Image:      "https://images.unsplash.com/photo-1625945209031-62e865b0ac7d?w=400",
			ExpiryDays: 60,
			GreenScore: 82,
		},
		{
			Name:       "Baby Spinach",
			Price:      199,
			Image:      "https://images.unsplash.com/photo-1615486364182-7d8b4da2f7f1?w=400",
			ExpiryDays: 5,
			GreenScore: 87,
		},
		{
			Name:       "Whole Milk",
			Price:      89,
			Image:      "https://images.unsplash.com/photo-1625245737357-005ea6a746c5?w=400",
			ExpiryDays: 6,
			GreenScore: 75,
		},
		{
			Name:       "Brown Eggs",
			Price:      169,
			Image:      "https://images.unsplash.com/photo-1607746882042-944635dfe10e?w=400",
			ExpiryDays: 15,
			GreenScore: 72,
		},
		{
			Name:       "Tofu Cubes",
			Price:      120,
			Image:      "https://images.unsplash.com/photo-1641575785129-6e9826bd2c20?w=400",
			ExpiryDays: 10,
			GreenScore: 90,
		},
		{
			Name:       "Avocados",
			Price:      150,
			Image:      "https://images.unsplash.com/photo-1601004890684-d8cbf643f5f2?w=400",
			ExpiryDays: 4,
			GreenScore: 85,
		},
		{
			Name:       "Bananas",
			Price:      60,
			Image:      "https://images.unsplash.com/photo-1574226516831-e1dff420e8f8?w=400",
			ExpiryDays: 3,
			GreenScore: 80,
		},
		{
			Name:       "Peanut Butter",
			Price:      240,
			Image:      "https://images.unsplash.com/photo-1586281380349-632531db7ed4?w=400",
			ExpiryDays: 180,
			GreenScore: 92,
		},
		{
			Name:       "Almond Milk",
			Price:      199,
			Image:      "https://images.unsplash.com/photo-1627308595229-7830a5c91f9f?w=400",
			ExpiryDays: 20,
			GreenScore: 94,
		},
		{
			Name:       "Instant Oats",
			Price:      130,
			Image:      "https://images.unsplash.com/photo-1632407896563-0e26df4760e7?w=400",
			ExpiryDays: 365,
			GreenScore: 88,
		},
	}
}
