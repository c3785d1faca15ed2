package domain

import "sort"

// Category is one entry of the predefined category table.
type Category struct {
	// ID is the stable numeric identifier.
	ID int

	// Name is the display name, also used as the index search term
	// for category lookups.
	Name string

	// Description is the short catalog description.
	Description string

	// Thumbnail is the bundled thumbnail file name.
	Thumbnail string
}

// Subcategory is a child entry under a Category.
type Subcategory struct {
	ID          int
	Name        string
	Description string
	Thumbnail   string
	CategoryID  int
}

// DefaultRestrictedCategory is the category whose listings the
// content-policy filter excludes unless overridden in config.
const DefaultRestrictedCategory = "Restricted & Prohibited"

// Categories is the predefined category table. IDs are stable;
// the table is append-only.
var Categories = []Category{
	{0, "Art & Collectibles", "Paintings, prints, sculptures and collectors' items", "art.png"},
	{1, "Books & Magazines", "Printed and digital reading material", "books.png"},
	{2, "Clothing & Apparel", "Clothes, shoes and accessories", "clothing.png"},
	{3, "Computers & Electronics", "Hardware, components and gadgets", "electronics.png"},
	{4, "Food & Beverages", "Groceries, snacks and drinks", "food.png"},
	{5, "Health & Beauty", "Personal care and wellness products", "health.png"},
	{6, "Home & Garden", "Furniture, decor and gardening supplies", "home.png"},
	{7, "Jewelry & Watches", "Fine and fashion jewelry", "jewelry.png"},
	{8, "Music & Instruments", "Records, instruments and audio gear", "music.png"},
	{9, "Pets & Animals", "Pet supplies and accessories", "pets.png"},
	{10, "Services", "Digital and local services", "services.png"},
	{11, "Sports & Outdoors", "Sporting goods and outdoor gear", "sports.png"},
	{12, "Toys & Games", "Toys, board games and video games", "toys.png"},
	{13, "Vehicles & Parts", "Automotive parts and accessories", "vehicles.png"},
	{14, "Digital Goods", "Software, keys and downloadable content", "digital.png"},
	{15, "Everything Else", "Items that fit nowhere else", "misc.png"},
	{16, DefaultRestrictedCategory, "Items excluded from the public catalog by content policy", "restricted.png"},
}

// Subcategories maps a category ID to its children.
var Subcategories = map[int][]Subcategory{
	3: {
		{300, "Laptops", "Portable computers", "laptops.png", 3},
		{301, "Components", "CPUs, GPUs, memory and storage", "components.png", 3},
		{302, "Peripherals", "Keyboards, mice and displays", "peripherals.png", 3},
	},
	12: {
		{1200, "Board Games", "Tabletop and card games", "boardgames.png", 12},
		{1201, "Video Games", "Games and consoles", "videogames.png", 12},
	},
}

// CategoryByID returns the category with the given id.
func CategoryByID(id int) (Category, bool) {
	for _, c := range Categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// CategoryIDByName returns the id of the named category, or -1.
func CategoryIDByName(name string) int {
	for _, c := range Categories {
		if c.Name == name {
			return c.ID
		}
	}
	return -1
}

// SubcategoryIDByName returns the id of the named subcategory, or -1.
func SubcategoryIDByName(name string) int {
	for _, subs := range Subcategories {
		for _, s := range subs {
			if s.Name == name {
				return s.ID
			}
		}
	}
	return -1
}

// SubcategoriesByCategoryID returns the children of a category.
func SubcategoriesByCategoryID(id int) []Subcategory {
	return Subcategories[id]
}

// HasSubcategories reports whether the category has child entries.
func HasSubcategories(id int) bool {
	return len(Subcategories[id]) > 0
}

// CategoryList returns a copy of the category table, alphabetical
// when requested.
func CategoryList(alphabetical bool) []Category {
	out := make([]Category, len(Categories))
	copy(out, Categories)
	if alphabetical {
		sort.Slice(out, func(i, j int) bool {
			return out[i].Name < out[j].Name
		})
	}
	return out
}
