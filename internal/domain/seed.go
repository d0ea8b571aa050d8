package domain

import "time"

// The jewellery catalog is fixed for the life of the process. SeedCategories
// and SeedProducts return fresh copies so callers can never alias the package
// level fixtures.

func seedDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func seedCategory(id int, name, slug, image, description string) *Category {
	created := seedDate(2024, time.January, 1)
	return &Category{
		ID:          id,
		Name:        name,
		Slug:        slug,
		Image:       image,
		Description: description,
		CreatedAt:   created,
		UpdatedAt:   created,
	}
}

func seedProduct(id int, name, slug, description string, price float64, categoryID int, tags []string, metalType string, images []string, featured, isNewArrival bool, createdAt time.Time) *Product {
	return &Product{
		ID:           id,
		Name:         name,
		Slug:         slug,
		Description:  description,
		Price:        price,
		CategoryID:   categoryID,
		Tags:         tags,
		MetalType:    metalType,
		Images:       images,
		Featured:     featured,
		IsNewArrival: isNewArrival,
		CreatedAt:    createdAt,
		UpdatedAt:    createdAt,
	}
}

// SeedCategories returns the full set of storefront categories.
func SeedCategories() []*Category {
	return []*Category{
		seedCategory(1, "Rings", "rings",
			"https://images.unsplash.com/photo-1605100804763-247f67b3557e?w=600&auto=format&fit=crop",
			"Exquisite rings for every occasion, from solitaire diamonds to stackable bands."),
		seedCategory(2, "Necklaces", "necklaces",
			"https://images.unsplash.com/photo-1599643478518-a784e5dc4c8f?w=600&auto=format&fit=crop",
			"Elegant necklaces crafted in gold, silver, and platinum with precious gemstones."),
		seedCategory(3, "Earrings", "earrings",
			"https://images.unsplash.com/photo-1617038260897-41a1f14a8ca0?w=600&auto=format&fit=crop",
			"From subtle studs to dramatic drops, find your perfect pair."),
		seedCategory(4, "Bracelets", "bracelets",
			"https://images.unsplash.com/photo-1611591437281-460bfbe1220a?w=600&auto=format&fit=crop",
			"Beautiful bracelets and bangles to adorn your wrists."),
		seedCategory(5, "Pendants", "pendants",
			"https://images.unsplash.com/photo-1535632066927-ab7c9ab60908?w=600&auto=format&fit=crop",
			"Meaningful pendants and charms that tell your story."),
		seedCategory(6, "Bangles", "bangles",
			"https://images.unsplash.com/photo-1612945578381-6481cdd73b0a?w=600&auto=format&fit=crop",
			"Traditional and contemporary bangles in gold and silver."),
		seedCategory(7, "Sets", "sets",
			"https://images.unsplash.com/photo-1515562141207-7a88fb7ce338?w=600&auto=format&fit=crop",
			"Curated jewellery sets for a perfectly coordinated look."),
	}
}

// SeedProducts returns the full product catalog. Every CategoryID references a
// category from SeedCategories.
func SeedProducts() []*Product {
	return []*Product{
		// Rings
		seedProduct(1, "Diamond Solitaire Ring", "diamond-solitaire-ring",
			"A timeless 1-carat round brilliant diamond set in classic 18K white gold. Perfect for engagements and milestones.",
			245000, 1,
			[]string{"diamond", "engagement", "solitaire", "white gold"},
			"White Gold",
			[]string{
				"https://images.unsplash.com/photo-1605100804763-247f67b3557e?w=800&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1603974372039-adc49044b6bd?w=800&auto=format&fit=crop",
			},
			true, false, seedDate(2024, time.January, 5)),
		seedProduct(2, "Rose Gold Twisted Band", "rose-gold-twisted-band",
			"A delicate twisted band in warm 18K rose gold, effortlessly elegant for everyday wear.",
			18500, 1,
			[]string{"rose gold", "band", "everyday", "minimalist"},
			"Rose Gold",
			[]string{"https://images.unsplash.com/photo-1603561591411-07134e71a2a9?w=800&auto=format&fit=crop"},
			false, true, seedDate(2024, time.February, 10)),
		seedProduct(3, "Emerald Halo Ring", "emerald-halo-ring",
			"A vibrant Colombian emerald surrounded by a sparkling diamond halo in 22K yellow gold.",
			185000, 1,
			[]string{"emerald", "halo", "yellow gold", "gemstone"},
			"Yellow Gold",
			[]string{"https://images.unsplash.com/photo-1682822665515-60979096b579?w=800&auto=format&fit=crop"},
			true, false, seedDate(2024, time.January, 20)),
		seedProduct(4, "Silver Stackable Rings Set", "silver-stackable-rings-set",
			"Set of three dainty sterling silver rings. Mix, match, and stack for your own unique look.",
			4500, 1,
			[]string{"silver", "stackable", "set", "minimalist"},
			"Silver",
			[]string{"https://images.unsplash.com/photo-1515562141207-7a88fb7ce338?w=800&auto=format&fit=crop"},
			false, true, seedDate(2024, time.March, 1)),

		// Necklaces
		seedProduct(5, "Gold Layered Chain Necklace", "gold-layered-chain-necklace",
			"Three layers of 22K gold chains at different lengths for a sophisticated, layered look.",
			38000, 2,
			[]string{"gold", "chain", "layered", "everyday"},
			"Yellow Gold",
			[]string{"https://images.unsplash.com/photo-1599643478518-a784e5dc4c8f?w=800&auto=format&fit=crop"},
			true, false, seedDate(2024, time.January, 15)),
		seedProduct(6, "Pearl Strand Necklace", "pearl-strand-necklace",
			"Classic freshwater pearl strand with a 18K gold clasp, a wardrobe essential.",
			27500, 2,
			[]string{"pearl", "strand", "classic", "white gold"},
			"White Gold",
			[]string{"https://plus.unsplash.com/premium_photo-1674748385436-db725f68e312?w=800&auto=format&fit=crop"},
			true, false, seedDate(2024, time.January, 25)),
		seedProduct(7, "Diamond Tennis Necklace", "diamond-tennis-necklace",
			"A breathtaking line of round brilliant diamonds totalling 5 carats in 18K white gold.",
			850000, 2,
			[]string{"diamond", "tennis", "luxury", "white gold"},
			"White Gold",
			[]string{"https://images.unsplash.com/photo-1506630448388-4e683c67ddb0?w=800&auto=format&fit=crop"},
			true, false, seedDate(2024, time.February, 1)),
		seedProduct(8, "Sapphire Pendant Necklace", "sapphire-pendant-necklace",
			"Deep blue sapphire drop pendant on a delicate 18K white gold chain.",
			62000, 2,
			[]string{"sapphire", "pendant", "blue", "white gold"},
			"White Gold",
			[]string{"https://images.unsplash.com/photo-1535632066927-ab7c9ab60908?w=800&auto=format&fit=crop"},
			false, true, seedDate(2024, time.March, 15)),

		// Earrings
		seedProduct(9, "Diamond Stud Earrings", "diamond-stud-earrings",
			"Half-carat each, G-color diamond studs in classic 18K white gold push-back setting.",
			95000, 3,
			[]string{"diamond", "studs", "classic", "white gold"},
			"White Gold",
			[]string{"https://images.unsplash.com/photo-1617038260897-41a1f14a8ca0?w=800&auto=format&fit=crop"},
			true, false, seedDate(2024, time.January, 10)),
		seedProduct(10, "Gold Hoop Earrings", "gold-hoop-earrings",
			"Chic 30mm gold hoops in 22K yellow gold. Bold enough to notice, light enough to wear all day.",
			15500, 3,
			[]string{"gold", "hoops", "everyday", "yellow gold"},
			"Yellow Gold",
			[]string{"https://images.unsplash.com/photo-1630019852942-f89202989a59?w=800&auto=format&fit=crop"},
			false, true, seedDate(2024, time.March, 5)),
		seedProduct(11, "Ruby Drop Earrings", "ruby-drop-earrings",
			"Vivid Burmese rubies suspended from diamond-set tops in 18K yellow gold.",
			135000, 3,
			[]string{"ruby", "drop", "gemstone", "yellow gold"},
			"Yellow Gold",
			[]string{"https://images.unsplash.com/photo-1588444837495-c6cfeb53f32d?w=800&auto=format&fit=crop"},
			true, false, seedDate(2024, time.February, 20)),
		seedProduct(12, "Silver Chandelier Earrings", "silver-chandelier-earrings",
			"Intricate oxidised silver chandelier earrings inspired by traditional Indian craftsmanship.",
			3800, 3,
			[]string{"silver", "chandelier", "traditional", "oxidised"},
			"Silver",
			[]string{"https://images.unsplash.com/photo-1596944924616-7b38e7cfac36?w=800&auto=format&fit=crop"},
			false, true, seedDate(2024, time.March, 20)),

		// Bracelets
		seedProduct(13, "Diamond Tennis Bracelet", "diamond-tennis-bracelet",
			"Classic prong-set diamond tennis bracelet. 3 carats of round brilliants in 18K white gold.",
			425000, 4,
			[]string{"diamond", "tennis", "luxury", "white gold"},
			"White Gold",
			[]string{"https://images.unsplash.com/photo-1611591437281-460bfbe1220a?w=800&auto=format&fit=crop"},
			true, false, seedDate(2024, time.January, 30)),
		seedProduct(14, "Gold Charm Bracelet", "gold-charm-bracelet",
			"22K yellow gold charm bracelet. Add charms to mark life's memorable moments.",
			32000, 4,
			[]string{"gold", "charm", "yellow gold", "personalised"},
			"Yellow Gold",
			[]string{"https://images.unsplash.com/photo-1689367436629-1d288f1e23b6?w=800&auto=format&fit=crop"},
			false, true, seedDate(2024, time.March, 10)),
		seedProduct(15, "Emerald Beaded Bracelet", "emerald-beaded-bracelet",
			"Natural emerald and 18K gold bead bracelet for a touch of colour and luxury.",
			55000, 4,
			[]string{"emerald", "beaded", "green", "yellow gold"},
			"Yellow Gold",
			[]string{"https://images.unsplash.com/photo-1535632066927-ab7c9ab60908?w=800&auto=format&fit=crop"},
			false, false, seedDate(2024, time.February, 15)),

		// Pendants
		seedProduct(16, "Lotus Pendant", "lotus-pendant",
			"Handcrafted lotus flower pendant in 18K yellow gold with a central pink sapphire.",
			28500, 5,
			[]string{"lotus", "flower", "sapphire", "yellow gold"},
			"Yellow Gold",
			[]string{"https://images.unsplash.com/photo-1535632066927-ab7c9ab60908?w=800&auto=format&fit=crop"},
			true, false, seedDate(2024, time.February, 5)),
		seedProduct(17, "Hamsa Hand Pendant", "hamsa-hand-pendant",
			"Sterling silver Hamsa pendant adorned with a turquoise evil eye for protection and good luck.",
			2800, 5,
			[]string{"hamsa", "silver", "turquoise", "spiritual"},
			"Silver",
			[]string{"https://images.unsplash.com/photo-1598560917505-59a3ad559071?w=800&auto=format&fit=crop"},
			false, true, seedDate(2024, time.March, 25)),
		seedProduct(18, "Initial Letter Pendant", "initial-letter-pendant",
			"Personalised block-letter pendant in your choice of 18K gold. A thoughtful, timeless gift.",
			12500, 5,
			[]string{"initial", "personalised", "gold", "gift"},
			"Yellow Gold",
			[]string{"https://images.unsplash.com/photo-1600721391776-b5cd0e0048f9?w=800&auto=format&fit=crop"},
			false, true, seedDate(2024, time.April, 1)),
		seedProduct(19, "Diamond Cross Pendant", "diamond-cross-pendant",
			"Pave-set diamond cross in 18K white gold. Elegant faith-inspired jewellery.",
			78000, 5,
			[]string{"diamond", "cross", "religious", "white gold"},
			"White Gold",
			[]string{"https://images.unsplash.com/photo-1771515411694-57fb626159d1?w=800&auto=format&fit=crop"},
			true, false, seedDate(2024, time.February, 28)),

		// Bangles
		seedProduct(20, "Kundan Gold Bangle", "kundan-gold-bangle",
			"Traditional Kundan-work bangle in 22K gold, set with colourful meenakari enamel.",
			68000, 6,
			[]string{"kundan", "gold", "traditional", "meenakari"},
			"Yellow Gold",
			[]string{"https://images.unsplash.com/photo-1741071520904-37ef3c0fea09?w=800&auto=format&fit=crop"},
			true, false, seedDate(2024, time.January, 18)),
		seedProduct(21, "Diamond Bangle Bracelet", "diamond-bangle-bracelet",
			"Sleek 18K white gold bangle set with a continuous row of channel-set diamonds.",
			320000, 6,
			[]string{"diamond", "bangle", "white gold", "luxury"},
			"White Gold",
			[]string{"https://images.unsplash.com/photo-1611591437281-460bfbe1220a?w=800&auto=format&fit=crop"},
			true, false, seedDate(2024, time.February, 8)),
		seedProduct(22, "Silver Oxidised Bangle", "silver-oxidised-bangle",
			"Set of four oxidised silver bangles with intricate tribal motifs. Perfect for boho styling.",
			3200, 6,
			[]string{"silver", "oxidised", "tribal", "boho"},
			"Silver",
			[]string{"https://images.unsplash.com/photo-1515562141207-7a88fb7ce338?w=800&auto=format&fit=crop"},
			false, true, seedDate(2024, time.March, 30)),

		// Sets
		seedProduct(23, "Bridal Gold Set", "bridal-gold-set",
			"Complete bridal set including necklace, earrings, maang tikka, and bangles in 22K gold.",
			485000, 7,
			[]string{"bridal", "gold", "set", "wedding", "traditional"},
			"Yellow Gold",
			[]string{
				"https://images.unsplash.com/photo-1515562141207-7a88fb7ce338?w=800&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1599643478518-a784e5dc4c8f?w=800&auto=format&fit=crop",
			},
			true, false, seedDate(2024, time.January, 8)),
		seedProduct(24, "Diamond Solitaire Set", "diamond-solitaire-set",
			"Matching solitaire ring, pendant, and earrings, each centred with a 0.5ct diamond in 18K white gold.",
			395000, 7,
			[]string{"diamond", "solitaire", "set", "white gold", "luxury"},
			"White Gold",
			[]string{"https://images.unsplash.com/photo-1605100804763-247f67b3557e?w=800&auto=format&fit=crop"},
			true, false, seedDate(2024, time.January, 22)),
		seedProduct(25, "Pearl Jewellery Set", "pearl-jewellery-set",
			"Freshwater pearl necklace, bracelet, and stud earrings with 18K gold clasps.",
			58000, 7,
			[]string{"pearl", "set", "white gold", "classic"},
			"White Gold",
			[]string{"https://images.unsplash.com/photo-1769857879388-df93b4c96bca?w=800&auto=format&fit=crop"},
			false, true, seedDate(2024, time.March, 18)),
		seedProduct(26, "Ruby and Diamond Set", "ruby-and-diamond-set",
			"Elegant ruby and diamond necklace with matching drop earrings in 18K gold.",
			275000, 7,
			[]string{"ruby", "diamond", "set", "yellow gold", "luxury"},
			"Yellow Gold",
			[]string{"https://images.unsplash.com/photo-1588444837495-c6cfeb53f32d?w=800&auto=format&fit=crop"},
			true, false, seedDate(2024, time.February, 14)),

		// Later additions
		seedProduct(27, "Moonstone Silver Ring", "moonstone-silver-ring",
			"Mystical rainbow moonstone cabochon set in a delicate sterling silver bezel ring.",
			4200, 1,
			[]string{"moonstone", "silver", "boho", "gemstone"},
			"Silver",
			[]string{"https://images.unsplash.com/photo-1749635705571-a262d6c6134c?w=800&auto=format&fit=crop"},
			false, true, seedDate(2024, time.April, 5)),
		seedProduct(28, "Amethyst Drop Earrings", "amethyst-drop-earrings",
			"Faceted amethyst teardrops in sterling silver. A pop of purple for any occasion.",
			5800, 3,
			[]string{"amethyst", "purple", "silver", "gemstone"},
			"Silver",
			[]string{"https://images.unsplash.com/photo-1596944924616-7b38e7cfac36?w=800&auto=format&fit=crop"},
			false, true, seedDate(2024, time.April, 8)),
	}
}
