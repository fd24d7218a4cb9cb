package seed

import (
	"time"

	"yieldboard/internal/domain/entity"
)

// Capacity is the group size envelope of a product
type Capacity struct {
	Typical int
	Min     int
	Max     int
}

// DefaultCapacity applies to products missing from the capacity table
var DefaultCapacity = Capacity{Typical: 16, Min: 12, Max: 18}

var productCapacities = map[string]Capacity{
	"p001": {Typical: 16, Min: 12, Max: 16},
	"p002": {Typical: 12, Min: 8, Max: 14},
	"p003": {Typical: 16, Min: 12, Max: 18},
	"p004": {Typical: 14, Min: 10, Max: 16},
	"p005": {Typical: 10, Min: 8, Max: 12},
	"p006": {Typical: 16, Min: 12, Max: 18},
	"p007": {Typical: 14, Min: 10, Max: 16},
	"p008": {Typical: 12, Min: 10, Max: 12},
	"p009": {Typical: 8, Min: 6, Max: 8},
	"p010": {Typical: 8, Min: 6, Max: 8},
	"p011": {Typical: 12, Min: 8, Max: 14},
	"p012": {Typical: 6, Min: 4, Max: 6},
	"p013": {Typical: 14, Min: 10, Max: 16},
	"p014": {Typical: 8, Min: 6, Max: 8},
	"p015": {Typical: 24, Min: 20, Max: 28},
	"p016": {Typical: 24, Min: 20, Max: 28},
	"p017": {Typical: 20, Min: 16, Max: 24},
	"p018": {Typical: 14, Min: 10, Max: 16},
	"p019": {Typical: 16, Min: 12, Max: 18},
	"p020": {Typical: 14, Min: 10, Max: 16},
	"p021": {Typical: 20, Min: 16, Max: 24},
	"p022": {Typical: 16, Min: 12, Max: 18},
	"p023": {Typical: 16, Min: 12, Max: 18},
	"p024": {Typical: 14, Min: 10, Max: 16},
	"p025": {Typical: 16, Min: 12, Max: 18},
	"p026": {Typical: 14, Min: 10, Max: 16},
	"p027": {Typical: 16, Min: 12, Max: 18},
	"p028": {Typical: 14, Min: 10, Max: 16},
}

// CapacityFor looks up a product's capacity envelope
func CapacityFor(productID string) Capacity {
	if c, ok := productCapacities[productID]; ok {
		return c
	}
	return DefaultCapacity
}

var users = []string{"Sarah Chen", "David Martinez", "Emily Johnson", "Michael Torres", "Jennifer Kim"}

var reasonCodes = []string{
	"seasonal adjustment",
	"competitor response",
	"cost increase",
	"demand optimization",
	"currency adjustment",
	"fuel surcharge",
}

// Season display names, shared by the season table and the price history classifier
const (
	WinterSeason = "Winter (Jan-Mar)"
	SpringSeason = "Spring (Apr-Jun)"
	SummerSeason = "Summer (Jul-Sep)"
	FallSeason   = "Fall (Oct-Dec)"
)

// Seasons returns the season reference table
func Seasons() []entity.Season {
	return []entity.Season{
		{ID: "s1", Name: WinterSeason, StartMonth: 1, EndMonth: 3, Type: entity.SeasonShoulder, Description: "Post-holiday travel period"},
		{ID: "s2", Name: SpringSeason, StartMonth: 4, EndMonth: 6, Type: entity.SeasonHigh, Description: "Peak European season"},
		{ID: "s3", Name: SummerSeason, StartMonth: 7, EndMonth: 9, Type: entity.SeasonHigh, Description: "Peak travel season worldwide"},
		{ID: "s4", Name: FallSeason, StartMonth: 10, EndMonth: 12, Type: entity.SeasonShoulder, Description: "Autumn colors and holiday prep"},
	}
}

// Products returns the tour catalog with capacities filled in from the capacity table
func Products() []entity.Product {
	products := make([]entity.Product, len(catalog))
	copy(products, catalog)
	for i := range products {
		c := CapacityFor(products[i].ID)
		products[i].TypicalCapacity = c.Typical
		products[i].MinCapacity = c.Min
		products[i].MaxCapacity = c.Max
	}
	return products
}

func mustDate(s string) entity.Date {
	t, err := time.Parse(entity.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return entity.NewDate(t)
}

var catalog = []entity.Product{
	{
		ID:            "p001",
		Name:          "Galapagos Islands: Classic 8-Day Cruise",
		Code:          "GAL-CLASSIC-8",
		Description:   "Explore the enchanted islands aboard our first-class yacht with naturalist guides",
		Region:        entity.RegionSouthAmerica,
		Category:      "Cruise",
		Duration:      8,
		CurrentPrice:  5200,
		CurrentMargin: 24.5,
		TargetMargin:  28.0,
		CostBasis:     3926,
		ImageURL:      "/images/galapagos.jpg",
		LastUpdated:   mustDate("2024-10-15"),
	},
	{
		ID:            "p002",
		Name:          "Patagonia Adventure: Torres del Paine Trek",
		Code:          "PAT-TREK-10",
		Description:   "Ultimate hiking experience through Chilean Patagonia with W Circuit",
		Region:        entity.RegionSouthAmerica,
		Category:      "Trekking",
		Duration:      10,
		CurrentPrice:  4800,
		CurrentMargin: 32.5,
		TargetMargin:  30.0,
		CostBasis:     3240,
		ImageURL:      "/images/patagonia.jpg",
		LastUpdated:   mustDate("2024-09-20"),
	},
	{
		ID:            "p003",
		Name:          "Machu Picchu & Sacred Valley Explorer",
		Code:          "PERU-MP-7",
		Description:   "Cultural journey through Inca heritage sites with luxury accommodations",
		Region:        entity.RegionSouthAmerica,
		Category:      "Cultural",
		Duration:      7,
		CurrentPrice:  3200,
		CurrentMargin: 28.8,
		TargetMargin:  28.0,
		CostBasis:     2278,
		ImageURL:      "/images/machu-picchu.jpg",
		LastUpdated:   mustDate("2024-10-01"),
	},
	{
		ID:            "p004",
		Name:          "Argentina Wine Country & Buenos Aires",
		Code:          "ARG-WINE-9",
		Description:   "Mendoza vineyards and vibrant Buenos Aires culture",
		Region:        entity.RegionSouthAmerica,
		Category:      "Wine & Culinary",
		Duration:      9,
		CurrentPrice:  3800,
		CurrentMargin: 31.2,
		TargetMargin:  30.0,
		CostBasis:     2614,
		ImageURL:      "/images/argentina-wine.jpg",
		LastUpdated:   mustDate("2024-08-12"),
	},
	{
		ID:            "p005",
		Name:          "Amazon Rainforest Lodge Experience",
		Code:          "AMAZ-LODGE-6",
		Description:   "Eco-lodge stay with jungle excursions and wildlife spotting",
		Region:        entity.RegionSouthAmerica,
		Category:      "Nature & Wildlife",
		Duration:      6,
		CurrentPrice:  2900,
		CurrentMargin: 26.5,
		TargetMargin:  28.0,
		CostBasis:     2132,
		ImageURL:      "/images/amazon.jpg",
		LastUpdated:   mustDate("2024-09-05"),
	},
	{
		ID:            "p006",
		Name:          "Iguazu Falls & Brazilian Coastline",
		Code:          "BRA-IGUAZU-8",
		Description:   "Natural wonder of Iguazu Falls and Rio de Janeiro beaches",
		Region:        entity.RegionSouthAmerica,
		Category:      "Nature & Beach",
		Duration:      8,
		CurrentPrice:  3600,
		CurrentMargin: 27.8,
		TargetMargin:  28.0,
		CostBasis:     2599,
		ImageURL:      "/images/iguazu.jpg",
		LastUpdated:   mustDate("2024-07-18"),
	},
	{
		ID:            "p007",
		Name:          "Colombian Coffee Triangle Discovery",
		Code:          "COL-COFFEE-7",
		Description:   "Coffee plantation tours and colonial town exploration",
		Region:        entity.RegionSouthAmerica,
		Category:      "Cultural & Culinary",
		Duration:      7,
		CurrentPrice:  2800,
		CurrentMargin: 29.6,
		TargetMargin:  28.0,
		CostBasis:     1971,
		ImageURL:      "/images/colombia-coffee.jpg",
		LastUpdated:   mustDate("2024-08-30"),
	},
	{
		ID:            "p008",
		Name:          "Galapagos Islands: Luxury 11-Day Expedition",
		Code:          "GAL-LUX-11",
		Description:   "Extended cruise with premium accommodations and exclusive landing sites",
		Region:        entity.RegionSouthAmerica,
		Category:      "Cruise",
		Duration:      11,
		CurrentPrice:  7800,
		CurrentMargin: 26.2,
		TargetMargin:  28.0,
		CostBasis:     5756,
		ImageURL:      "/images/galapagos-luxury.jpg",
		LastUpdated:   mustDate("2024-10-10"),
	},
	{
		ID:            "p009",
		Name:          "Kenya Safari: Masai Mara & Amboseli",
		Code:          "KEN-SAFARI-10",
		Description:   "Classic safari with great migration viewing and luxury tented camps",
		Region:        entity.RegionAfrica,
		Category:      "Safari",
		Duration:      10,
		CurrentPrice:  6200,
		CurrentMargin: 22.8,
		TargetMargin:  28.0,
		CostBasis:     4787,
		ImageURL:      "/images/kenya-safari.jpg",
		LastUpdated:   mustDate("2024-09-25"),
	},
	{
		ID:            "p010",
		Name:          "Tanzania: Serengeti & Ngorongoro Crater",
		Code:          "TAN-SEREN-9",
		Description:   "Wildlife spectacle with crater floor game drives",
		Region:        entity.RegionAfrica,
		Category:      "Safari",
		Duration:      9,
		CurrentPrice:  5800,
		CurrentMargin: 24.1,
		TargetMargin:  28.0,
		CostBasis:     4402,
		ImageURL:      "/images/tanzania.jpg",
		LastUpdated:   mustDate("2024-10-05"),
	},
	{
		ID:            "p011",
		Name:          "South Africa: Cape Town & Garden Route",
		Code:          "SA-CAPE-12",
		Description:   "Table Mountain, wine country, and coastal scenic drives",
		Region:        entity.RegionAfrica,
		Category:      "Adventure & Wine",
		Duration:      12,
		CurrentPrice:  4900,
		CurrentMargin: 30.2,
		TargetMargin:  30.0,
		CostBasis:     3420,
		ImageURL:      "/images/south-africa.jpg",
		LastUpdated:   mustDate("2024-08-20"),
	},
	{
		ID:            "p012",
		Name:          "Botswana: Okavango Delta Luxury Safari",
		Code:          "BOT-OKAV-8",
		Description:   "Exclusive mokoro excursions and premium lodge experiences",
		Region:        entity.RegionAfrica,
		Category:      "Safari",
		Duration:      8,
		CurrentPrice:  8900,
		CurrentMargin: 25.6,
		TargetMargin:  28.0,
		CostBasis:     6622,
		ImageURL:      "/images/botswana.jpg",
		LastUpdated:   mustDate("2024-09-10"),
	},
	{
		ID:            "p013",
		Name:          "Morocco: Imperial Cities & Sahara",
		Code:          "MOR-IMP-10",
		Description:   "Medinas, kasbahs, and desert camp under the stars",
		Region:        entity.RegionAfrica,
		Category:      "Cultural",
		Duration:      10,
		CurrentPrice:  3800,
		CurrentMargin: 31.6,
		TargetMargin:  30.0,
		CostBasis:     2599,
		ImageURL:      "/images/morocco.jpg",
		LastUpdated:   mustDate("2024-07-28"),
	},
	{
		ID:            "p014",
		Name:          "Uganda Gorilla Trekking Adventure",
		Code:          "UGA-GOR-7",
		Description:   "Mountain gorilla encounters in Bwindi Impenetrable Forest",
		Region:        entity.RegionAfrica,
		Category:      "Wildlife",
		Duration:      7,
		CurrentPrice:  7200,
		CurrentMargin: 23.6,
		TargetMargin:  28.0,
		CostBasis:     5501,
		ImageURL:      "/images/uganda.jpg",
		LastUpdated:   mustDate("2024-09-15"),
	},
	{
		ID:            "p015",
		Name:          "Danube River Cruise: Budapest to Vienna",
		Code:          "EUR-DAN-8",
		Description:   "Scenic river cruise through Central European capitals",
		Region:        entity.RegionEurope,
		Category:      "River Cruise",
		Duration:      8,
		CurrentPrice:  4200,
		CurrentMargin: 29.5,
		TargetMargin:  28.0,
		CostBasis:     2961,
		ImageURL:      "/images/danube.jpg",
		LastUpdated:   mustDate("2024-10-12"),
	},
	{
		ID:            "p016",
		Name:          "Rhine Valley: Castles & Wine Villages",
		Code:          "EUR-RHINE-7",
		Description:   "Medieval castles and Riesling wine region exploration",
		Region:        entity.RegionEurope,
		Category:      "River Cruise",
		Duration:      7,
		CurrentPrice:  3900,
		CurrentMargin: 28.2,
		TargetMargin:  28.0,
		CostBasis:     2800,
		ImageURL:      "/images/rhine.jpg",
		LastUpdated:   mustDate("2024-09-18"),
	},
	{
		ID:            "p017",
		Name:          "Mediterranean Highlights: Spain, France & Italy",
		Code:          "EUR-MED-14",
		Description:   "Barcelona, Provence, and Italian Riviera coastal journey",
		Region:        entity.RegionEurope,
		Category:      "Multi-Country",
		Duration:      14,
		CurrentPrice:  5600,
		CurrentMargin: 32.1,
		TargetMargin:  30.0,
		CostBasis:     3802,
		ImageURL:      "/images/mediterranean.jpg",
		LastUpdated:   mustDate("2024-08-25"),
	},
	{
		ID:            "p018",
		Name:          "Iceland: Fire & Ice Adventure",
		Code:          "ICE-ADV-9",
		Description:   "Glaciers, waterfalls, hot springs, and Northern Lights",
		Region:        entity.RegionEurope,
		Category:      "Adventure",
		Duration:      9,
		CurrentPrice:  4800,
		CurrentMargin: 27.1,
		TargetMargin:  28.0,
		CostBasis:     3499,
		ImageURL:      "/images/iceland.jpg",
		LastUpdated:   mustDate("2024-10-08"),
	},
	{
		ID:            "p019",
		Name:          "Tuscany & Umbria: Hilltop Towns",
		Code:          "ITA-TUSC-10",
		Description:   "Renaissance art, wine estates, and Italian countryside",
		Region:        entity.RegionEurope,
		Category:      "Cultural & Wine",
		Duration:      10,
		CurrentPrice:  4400,
		CurrentMargin: 30.5,
		TargetMargin:  30.0,
		CostBasis:     3058,
		ImageURL:      "/images/tuscany.jpg",
		LastUpdated:   mustDate("2024-07-15"),
	},
	{
		ID:            "p020",
		Name:          "Greek Islands: Santorini & Mykonos",
		Code:          "GRE-ISL-8",
		Description:   "Iconic white-washed villages and Aegean Sea beauty",
		Region:        entity.RegionEurope,
		Category:      "Beach & Culture",
		Duration:      8,
		CurrentPrice:  3800,
		CurrentMargin: 31.8,
		TargetMargin:  30.0,
		CostBasis:     2592,
		ImageURL:      "/images/greek-islands.jpg",
		LastUpdated:   mustDate("2024-09-02"),
	},
	{
		ID:            "p021",
		Name:          "Norway Fjords & Arctic Circle",
		Code:          "NOR-FJORD-11",
		Description:   "Dramatic fjordland scenery and midnight sun experience",
		Region:        entity.RegionEurope,
		Category:      "Nature & Cruise",
		Duration:      11,
		CurrentPrice:  5900,
		CurrentMargin: 26.8,
		TargetMargin:  28.0,
		CostBasis:     4319,
		ImageURL:      "/images/norway.jpg",
		LastUpdated:   mustDate("2024-08-08"),
	},
	{
		ID:            "p022",
		Name:          "Scottish Highlands & Edinburgh",
		Code:          "SCO-HIGH-9",
		Description:   "Castle tours, whisky distilleries, and Highland landscapes",
		Region:        entity.RegionEurope,
		Category:      "Cultural",
		Duration:      9,
		CurrentPrice:  3600,
		CurrentMargin: 29.4,
		TargetMargin:  28.0,
		CostBasis:     2542,
		ImageURL:      "/images/scotland.jpg",
		LastUpdated:   mustDate("2024-07-22"),
	},
	{
		ID:            "p023",
		Name:          "New Zealand: South Island Grand Tour",
		Code:          "NZ-SOUTH-14",
		Description:   "Fjords, glaciers, and adventure capital Queenstown",
		Region:        entity.RegionAsiaPacific,
		Category:      "Adventure",
		Duration:      14,
		CurrentPrice:  6200,
		CurrentMargin: 28.7,
		TargetMargin:  28.0,
		CostBasis:     4421,
		ImageURL:      "/images/new-zealand.jpg",
		LastUpdated:   mustDate("2024-09-30"),
	},
	{
		ID:            "p024",
		Name:          "Vietnam & Cambodia: Heritage & Temples",
		Code:          "VIET-CAM-12",
		Description:   "Halong Bay, Angkor Wat, and Mekong Delta discovery",
		Region:        entity.RegionAsiaPacific,
		Category:      "Cultural",
		Duration:      12,
		CurrentPrice:  3400,
		CurrentMargin: 33.5,
		TargetMargin:  30.0,
		CostBasis:     2261,
		ImageURL:      "/images/vietnam.jpg",
		LastUpdated:   mustDate("2024-10-03"),
	},
	{
		ID:            "p025",
		Name:          "Japan: Cherry Blossom Discovery",
		Code:          "JAP-CHERRY-10",
		Description:   "Tokyo, Kyoto, and Mount Fuji during sakura season",
		Region:        entity.RegionAsiaPacific,
		Category:      "Cultural",
		Duration:      10,
		CurrentPrice:  5400,
		CurrentMargin: 25.9,
		TargetMargin:  28.0,
		CostBasis:     4001,
		ImageURL:      "/images/japan.jpg",
		LastUpdated:   mustDate("2024-08-17"),
	},
	{
		ID:            "p026",
		Name:          "Thailand: Bangkok to Chiang Mai",
		Code:          "THAI-NORTH-9",
		Description:   "Temples, street food, and northern hill tribe encounters",
		Region:        entity.RegionAsiaPacific,
		Category:      "Cultural",
		Duration:      9,
		CurrentPrice:  2900,
		CurrentMargin: 34.5,
		TargetMargin:  30.0,
		CostBasis:     1900,
		ImageURL:      "/images/thailand.jpg",
		LastUpdated:   mustDate("2024-07-10"),
	},
	{
		ID:            "p027",
		Name:          "Australia: Great Barrier Reef & Outback",
		Code:          "AUS-REEF-13",
		Description:   "Reef diving, Uluru, and Sydney Opera House",
		Region:        entity.RegionAsiaPacific,
		Category:      "Adventure",
		Duration:      13,
		CurrentPrice:  6800,
		CurrentMargin: 27.2,
		TargetMargin:  28.0,
		CostBasis:     4950,
		ImageURL:      "/images/australia.jpg",
		LastUpdated:   mustDate("2024-09-12"),
	},
	{
		ID:            "p028",
		Name:          "Bali & Java: Temples & Rice Terraces",
		Code:          "INDO-BALI-10",
		Description:   "Ubud culture, Borobudur, and beach relaxation",
		Region:        entity.RegionAsiaPacific,
		Category:      "Beach & Culture",
		Duration:      10,
		CurrentPrice:  3200,
		CurrentMargin: 32.8,
		TargetMargin:  30.0,
		CostBasis:     2150,
		ImageURL:      "/images/bali.jpg",
		LastUpdated:   mustDate("2024-08-05"),
	},
}
