package services

// FixtureProducts returns the static catalog used by the seed endpoint.
// The list is deterministic so tests can assert on the seeded count.
func FixtureProducts() []CreateProductInput {
	return []CreateProductInput{
		{
			Title:       "Men's Chill Crew Neck Sweatshirt",
			Description: "Introducing the softest crew neck in the collection, made with a double layer of warm fleece.",
			Price:       75,
			Stock:       7,
			Sizes:       []string{"XS", "S", "M", "L", "XL", "XXL"},
			Gender:      "men",
			Tags:        []string{"sweatshirt"},
			Images:      []string{"1740176-00-A_0_2000.jpg", "1740176-00-A_1.jpg"},
		},
		{
			Title:       "Men's Quilted Shirt Jacket",
			Description: "A waterproof quilted jacket with a quilted design and chest pocket.",
			Price:       200,
			Stock:       5,
			Sizes:       []string{"XS", "S", "M", "XL", "XXL"},
			Gender:      "men",
			Tags:        []string{"jacket"},
			Images:      []string{"1740507-00-A_0_2000.jpg", "1740507-00-A_1.jpg"},
		},
		{
			Title:       "Men's Raven Lightweight Zip Up Bomber Jacket",
			Description: "A lightweight bomber with a premium matte finish and signature silhouette.",
			Price:       130,
			Stock:       10,
			Sizes:       []string{"S", "M", "L", "XL", "XXL"},
			Gender:      "men",
			Tags:        []string{"shirt"},
			Images:      []string{"1740250-00-A_0_2000.jpg", "1740250-00-A_1.jpg"},
		},
		{
			Title:       "Men's Turbine Long Sleeve Tee",
			Description: "A long sleeve tee made with moisture-wicking fabric and a subtle logo across the chest.",
			Price:       45,
			Stock:       50,
			Sizes:       []string{"XS", "S", "M", "L", "XL", "XXL"},
			Gender:      "men",
			Tags:        []string{"shirt"},
			Images:      []string{"1740280-00-A_0_2000.jpg", "1740280-00-A_1.jpg"},
		},
		{
			Title:       "Women's Cropped Puffer Jacket",
			Description: "A cropped puffer with an insulated liner and adjustable hem toggles.",
			Price:       225,
			Stock:       85,
			Sizes:       []string{"XS", "S", "M"},
			Gender:      "women",
			Tags:        []string{"hoodie"},
			Images:      []string{"1654219-00-A_0_2000.jpg", "1654219-00-A_1.jpg"},
		},
		{
			Title:       "Women's Chill Half Zip Cropped Hoodie",
			Description: "A cropped hoodie in soft fleece with an elastic hem that pairs with any bottoms.",
			Price:       130,
			Stock:       10,
			Sizes:       []string{"XS", "S", "M", "XXL"},
			Gender:      "women",
			Tags:        []string{"hoodie"},
			Images:      []string{"1740535-00-A_0_2000.jpg", "1740535-00-A_1.jpg"},
		},
		{
			Title:       "Kids Cybertruck Long Sleeve Tee",
			Description: "A long sleeve tee for the future space traveler, in 100% combed cotton.",
			Price:       30,
			Stock:       10,
			Sizes:       []string{"XS", "S", "M"},
			Gender:      "kid",
			Tags:        []string{"shirt"},
			Images:      []string{"1742694-00-A_1_2000.jpg", "1742694-00-A_3.jpg"},
		},
		{
			Title:       "Kids Racing Stripe Tee",
			Description: "A racing stripe tee designed for daily play, 100% cotton and machine washable.",
			Price:       30,
			Stock:       10,
			Sizes:       []string{"XS", "S", "M"},
			Gender:      "kid",
			Tags:        []string{"shirt"},
			Images:      []string{"8529342-00-A_0_2000.jpg", "8529342-00-A_1.jpg"},
		},
	}
}
