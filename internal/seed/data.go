// internal/seed/data.go
package seed

// Product is one catalog record loaded by the seed run.
type Product struct {
	Title       string
	Description string
	Price       float64
	Slug        string
	Stock       int
	Sizes       []string
	Gender      string
	Tags        []string
	Images      []string
}

// Products is the initial catalog. Titles and slugs are unique.
var Products = []Product{
	{
		Title:       "Men's Chill Crew Neck Sweatshirt",
		Description: "Introducing the Tesla Chill Collection. The Men's Chill Crew Neck Sweatshirt has a premium, heavyweight exterior and soft fleece interior for comfort in any season.",
		Price:       75,
		Slug:        "mens_chill_crew_neck_sweatshirt",
		Stock:       7,
		Sizes:       []string{"XS", "S", "M", "L", "XL", "XXL"},
		Gender:      "men",
		Tags:        []string{"sweatshirt"},
		Images:      []string{"1740176-00-A_0_2000.jpg", "1740176-00-A_1.jpg"},
	},
	{
		Title:       "Men's Quilted Shirt Jacket",
		Description: "The Men's Quilted Shirt Jacket features a uniquely fit, quilted design for warmth and mobility in cold weather seasons.",
		Price:       200,
		Slug:        "men_quilted_shirt_jacket",
		Stock:       5,
		Sizes:       []string{"XS", "S", "M", "XL", "XXL"},
		Gender:      "men",
		Tags:        []string{"jacket"},
		Images:      []string{"1740507-00-A_0_2000.jpg", "1740507-00-A_1.jpg"},
	},
	{
		Title:       "Men's Raven Lightweight Zip Up Bomber Jacket",
		Description: "The Raven Lightweight Zip Up Bomber has a premium, modern silhouette made from a sustainable bamboo cotton blend for versatility in any season.",
		Price:       130,
		Slug:        "men_raven_lightweight_zip_up_bomber_jacket",
		Stock:       10,
		Sizes:       []string{"S", "M", "L", "XL", "XXL"},
		Gender:      "men",
		Tags:        []string{"shirt"},
		Images:      []string{"1740250-00-A_0_2000.jpg", "1740250-00-A_1.jpg"},
	},
	{
		Title:       "Men's Turbine Long Sleeve Tee",
		Description: "Designed for comfort, the Turbine Long Sleeve Tee is made from 100% cotton and features a subtle logo on the left chest.",
		Price:       45,
		Slug:        "men_turbine_long_sleeve_tee",
		Stock:       50,
		Sizes:       []string{"XS", "S", "M", "L"},
		Gender:      "men",
		Tags:        []string{"shirt"},
		Images:      []string{"1740280-00-A_0_2000.jpg", "1740280-00-A_1.jpg"},
	},
	{
		Title:       "Men's Turbine Short Sleeve Tee",
		Description: "Designed for comfort, the Turbine Short Sleeve Tee is made from 100% cotton with a subtle logo on the left chest.",
		Price:       40,
		Slug:        "men_turbine_short_sleeve_tee",
		Stock:       50,
		Sizes:       []string{"M", "L", "XL", "XXL"},
		Gender:      "men",
		Tags:        []string{"shirt"},
		Images:      []string{"1741416-00-A_0_2000.jpg", "1741416-00-A_1.jpg"},
	},
	{
		Title:       "Women's Cropped Puffer Jacket",
		Description: "The Women's Cropped Puffer Jacket features a uniquely cropped silhouette for the perfect, modern style while on the go during the cozy season ahead.",
		Price:       225,
		Slug:        "women_cropped_puffer_jacket",
		Stock:       85,
		Sizes:       []string{"XS", "S", "M"},
		Gender:      "women",
		Tags:        []string{"hoodie"},
		Images:      []string{"1740535-00-A_0_2000.jpg", "1740535-00-A_1.jpg"},
	},
	{
		Title:       "Women's Chill Half Zip Cropped Hoodie",
		Description: "Introducing the Tesla Chill Collection. The Women's Chill Half Zip Cropped Hoodie has a premium, soft fleece exterior and cropped silhouette.",
		Price:       130,
		Slug:        "women_chill_half_zip_cropped_hoodie",
		Stock:       10,
		Sizes:       []string{"XS", "S", "M", "XXL"},
		Gender:      "women",
		Tags:        []string{"hoodie"},
		Images:      []string{"1740226-00-A_0_2000.jpg", "1740226-00-A_1.jpg"},
	},
	{
		Title:       "Women's Raven Slouchy Crew Sweatshirt",
		Description: "Introducing the Tesla Raven Collection. The Women's Raven Slouchy Crew Sweatshirt has a premium, relaxed silhouette made from a sustainable bamboo cotton blend.",
		Price:       110,
		Slug:        "women_raven_slouchy_crew_sweatshirt",
		Stock:       9,
		Sizes:       []string{"XS", "S", "M", "L", "XL", "XXL"},
		Gender:      "women",
		Tags:        []string{"hoodie"},
		Images:      []string{"1740260-00-A_0_2000.jpg", "1740260-00-A_1.jpg"},
	},
	{
		Title:       "Women's Turbine Cropped Long Sleeve Tee",
		Description: "Introducing the Tesla Turbine Collection. Designed for style, comfort and everyday lifestyle, the Women's Turbine Cropped Long Sleeve Tee features a subtle, water-based logo.",
		Price:       45,
		Slug:        "women_turbine_cropped_long_sleeve_tee",
		Stock:       12,
		Sizes:       []string{"XS", "S", "M", "L", "XL", "XXL"},
		Gender:      "women",
		Tags:        []string{"shirt"},
		Images:      []string{"1740290-00-A_0_2000.jpg", "1740290-00-A_1.jpg"},
	},
	{
		Title:       "Kids Cybertruck Long Sleeve Tee",
		Description: "Designed for fit, comfort and style, the Kids Cybertruck Graffiti Long Sleeve Tee features a water-based Cybertruck graffiti wordmark across the chest.",
		Price:       30,
		Slug:        "kids_cybertruck_long_sleeve_tee",
		Stock:       10,
		Sizes:       []string{"XS", "S", "M"},
		Gender:      "kid",
		Tags:        []string{"shirt"},
		Images:      []string{"1742694-00-A_1_2000.jpg", "1742694-00-A_3.jpg"},
	},
	{
		Title:       "Kids Scribble T Logo Tee",
		Description: "The Kids Scribble T Logo Tee is made from 100% Peruvian cotton and features a Tesla T sketched logo for every young artist to wear.",
		Price:       25,
		Slug:        "kids_scribble_t_logo_tee",
		Stock:       0,
		Sizes:       []string{"XS", "S", "M"},
		Gender:      "kid",
		Tags:        []string{"shirt"},
		Images:      []string{"8529312-00-A_0_2000.jpg", "8529312-00-A_1.jpg"},
	},
	{
		Title:       "Made on Earth by Humans Onesie",
		Description: "Show your commitment to sustainable energy with this cheeky onesie for your young one. Made from 100% organic cotton.",
		Price:       30,
		Slug:        "made_on_earth_by_humans_onesie",
		Stock:       16,
		Sizes:       []string{"XS", "S"},
		Gender:      "kid",
		Tags:        []string{"shirt"},
		Images:      []string{"1473809-00-A_1_2000.jpg", "1473809-00-A_alt.jpg"},
	},
	{
		Title:       "Relaxed T Logo Hat",
		Description: "The Relaxed T Logo Hat is a classic silhouette combined with modern details, featuring a 3D T logo and a custom metal buckle closure.",
		Price:       30,
		Slug:        "relaxed_t_logo_hat",
		Stock:       11,
		Sizes:       []string{},
		Gender:      "unisex",
		Tags:        []string{"hats"},
		Images:      []string{"1657932-00-A_0_2000.jpg", "1657932-00-A_1.jpg"},
	},
}
