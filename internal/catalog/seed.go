package catalog

import "github.com/garv2214/Toolkit/internal/domain"

// SeedCategories is the built-in category set.
func SeedCategories() []domain.Category {
	return []domain.Category{
		{Key: "pens", Name: "Pens", Icon: "🖊️", Description: "Premium writing pens"},
		{Key: "pencils", Name: "Pencils", Icon: "✏️", Description: "Quality pencils for sketching and writing"},
		{Key: "erasers", Name: "Erasers & Sharpeners", Icon: "🧹", Description: "Erasers and pencil sharpeners"},
		{Key: "notebooks", Name: "Notebooks & Diaries", Icon: "📓", Description: "Journals and notebooks for notes"},
		{Key: "sticky", Name: "Sticky Notes & Highlighters", Icon: "🟩", Description: "Sticky notes and highlighting tools"},
		{Key: "art", Name: "Art Supplies", Icon: "🎨", Description: "Complete art and drawing supplies"},
		{Key: "geometry", Name: "Geometry Boxes & Rulers", Icon: "📐", Description: "Geometry sets and measuring tools"},
		{Key: "office", Name: "Office Stationery", Icon: "📎", Description: "Professional office supplies"},
		{Key: "kits", Name: "School Kits & Combos", Icon: "🎒", Description: "Complete school supply kits"},
	}
}

// SeedProducts is the built-in product feed, in catalog order.
func SeedProducts() []domain.Product {
	return []domain.Product{
		{ID: 1, Name: "Classic Ball Point Pen", Category: "pens", Price: 299, Image: "🖊️",
			Description: "Smooth writing experience with reliable ink flow. Perfect for daily use.",
			Stock:       50, Rating: 4.5, Tags: []string{"popular", "affordable"}},
		{ID: 2, Name: "Premium Gel Pen Set", Category: "pens", Price: 599, Image: "🖍️",
			Description: "Pack of 12 vibrant gel pens. Smooth gliding ink for comfortable writing.",
			Stock:       30, Rating: 4.8, Tags: []string{"trending", "bestseller"}},
		{ID: 3, Name: "Luxury Fountain Pen", Category: "pens", Price: 1299, Image: "✒️",
			Description: "Premium fountain pen with elegant design. Perfect for professionals.",
			Stock:       15, Rating: 4.9, Tags: []string{"premium", "luxury"}},
		{ID: 4, Name: "HB Graphite Pencil Pack", Category: "pencils", Price: 199, Image: "✏️",
			Description: "Set of 24 HB pencils. Ideal for sketching and writing.",
			Stock:       60, Rating: 4.3, Tags: []string{"affordable", "popular"}},
		{ID: 5, Name: "Colored Pencil Collection", Category: "pencils", Price: 899, Image: "🖍️",
			Description: "36 vibrant colored pencils for artists. Premium quality pigments.",
			Stock:       25, Rating: 4.7, Tags: []string{"trending", "artist"}},
		{ID: 6, Name: "Mechanical Pencil Set", Category: "pencils", Price: 399, Image: "✏️",
			Description: "Set of 5 mechanical pencils with extra leads. Precision engineering.",
			Stock:       40, Rating: 4.4, Tags: []string{"professional", "popular"}},
		{ID: 7, Name: "Combo Eraser & Sharpener", Category: "erasers", Price: 149, Image: "🧹",
			Description: "All-in-one eraser and pencil sharpener. Compact and portable.",
			Stock:       100, Rating: 4.2, Tags: []string{"affordable", "combo"}},
		{ID: 8, Name: "Professional Sharpener Set", Category: "erasers", Price: 549, Image: "🧹",
			Description: "Professional grade sharpeners for all pencil sizes.",
			Stock:       35, Rating: 4.6, Tags: []string{"professional", "quality"}},
		{ID: 9, Name: "Plain Notebook A4", Category: "notebooks", Price: 299, Image: "📓",
			Description: "Quality paper notebook. 100 pages for writing and sketching.",
			Stock:       75, Rating: 4.3, Tags: []string{"popular", "affordable"}},
		{ID: 10, Name: "Hardcover Diary 2025", Category: "notebooks", Price: 699, Image: "📔",
			Description: "Premium hardcover diary with elegant design. Daily planner included.",
			Stock:       45, Rating: 4.7, Tags: []string{"trending", "premium"}},
		{ID: 11, Name: "Dot Grid Bullet Journal", Category: "notebooks", Price: 499, Image: "📓",
			Description: "Dot grid pages for creative planning. Perfect for bullet journaling.",
			Stock:       55, Rating: 4.8, Tags: []string{"trending", "creative"}},
		{ID: 12, Name: "Sticky Notes Value Pack", Category: "sticky", Price: 199, Image: "🟩",
			Description: "Pack of 8 sticky note pads in different colors. 100 sheets each.",
			Stock:       80, Rating: 4.2, Tags: []string{"affordable", "popular"}},
		{ID: 13, Name: "Highlighter Marker Set", Category: "sticky", Price: 349, Image: "🖍️",
			Description: "Set of 10 vibrant highlighters. Non-bleeding formula.",
			Stock:       50, Rating: 4.5, Tags: []string{"popular", "quality"}},
		{ID: 14, Name: "Watercolor Paint Set", Category: "art", Price: 799, Image: "🎨",
			Description: "24 vibrant watercolors. Professional grade pigments.",
			Stock:       30, Rating: 4.8, Tags: []string{"trending", "artist"}},
		{ID: 15, Name: "Brush Set for Watercolor", Category: "art", Price: 599, Image: "🖌️",
			Description: "Set of 12 quality brushes. Perfect for watercolor painting.",
			Stock:       40, Rating: 4.6, Tags: []string{"quality", "artist"}},
		{ID: 16, Name: "Sketching Charcoal Set", Category: "art", Price: 449, Image: "🎨",
			Description: "Professional charcoal pencils and sticks for sketching.",
			Stock:       35, Rating: 4.4, Tags: []string{"professional", "artist"}},
		{ID: 17, Name: "Complete Geometry Box", Category: "geometry", Price: 399, Image: "📐",
			Description: "Full set with compass, ruler, protractor, and more.",
			Stock:       50, Rating: 4.5, Tags: []string{"popular", "student"}},
		{ID: 18, Name: "Precision Ruler Set", Category: "geometry", Price: 249, Image: "📏",
			Description: "Set of 4 precision rulers. Accurate measurements for technical drawing.",
			Stock:       60, Rating: 4.3, Tags: []string{"professional", "quality"}},
		{ID: 19, Name: "Paper Clips & Pins Pack", Category: "office", Price: 149, Image: "📎",
			Description: "Assorted office supplies. 500 pieces total.",
			Stock:       100, Rating: 4.1, Tags: []string{"affordable", "office"}},
		{ID: 20, Name: "Stapler & Staples Combo", Category: "office", Price: 349, Image: "📌",
			Description: "Heavy-duty stapler with 5000 staples included.",
			Stock:       45, Rating: 4.4, Tags: []string{"office", "professional"}},
		{ID: 21, Name: "File Organizer Set", Category: "office", Price: 599, Image: "📁",
			Description: "Set of 5 colorful file organizers. Keep your desk organized.",
			Stock:       40, Rating: 4.6, Tags: []string{"popular", "office"}},
		{ID: 22, Name: "Back to School Starter Kit", Category: "kits", Price: 1299, Image: "🎒",
			Description: "Complete kit with pens, pencils, notebook, and more.",
			Stock:       25, Rating: 4.7, Tags: []string{"trending", "bestseller"}},
		{ID: 23, Name: "Art Student Kit", Category: "kits", Price: 1599, Image: "🎨",
			Description: "All-in-one kit for art students. Paint, brushes, sketching tools.",
			Stock:       20, Rating: 4.9, Tags: []string{"trending", "premium"}},
		{ID: 24, Name: "Professional Office Bundle", Category: "kits", Price: 1899, Image: "📋",
			Description: "Premium office supplies bundle. Everything for the professional.",
			Stock:       15, Rating: 4.8, Tags: []string{"premium", "professional"}},
	}
}

// Seed builds the catalog from the built-in data.
func Seed() *Catalog {
	return New(SeedProducts(), SeedCategories())
}
