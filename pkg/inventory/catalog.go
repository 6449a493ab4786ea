package inventory

// CatalogItem is an entry of the static shop catalog.
type CatalogItem struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Emoji    string   `json:"emoji"`
	Category Category `json:"category"`
	Price    int      `json:"price"`
}

const placeholderName = "Mystery item"

var fallbackEmoji = map[Category]string{
	CategorySticker:   "✨",
	CategoryFood:      "🍽️",
	CategoryAccessory: "🎀",
}

const unknownEmoji = "❓"

var catalog = map[string]CatalogItem{}

func init() {
	for _, item := range []CatalogItem{
		{ID: "sticker-star", Name: "Shiny Star", Emoji: "⭐", Category: CategorySticker, Price: 10},
		{ID: "sticker-heart", Name: "Big Heart", Emoji: "❤️", Category: CategorySticker, Price: 10},
		{ID: "sticker-plant", Name: "Potted Plant", Emoji: "🪴", Category: CategorySticker, Price: 15},
		{ID: "sticker-lamp", Name: "Cozy Lamp", Emoji: "🛋️", Category: CategorySticker, Price: 20},
		{ID: "sticker-rainbow", Name: "Rainbow", Emoji: "🌈", Category: CategorySticker, Price: 25},
		{ID: "sticker-coin", Name: "Lucky Coin", Emoji: "🪙", Category: CategorySticker, Price: 30},
		{ID: "food-apple", Name: "Apple", Emoji: "🍎", Category: CategoryFood, Price: 5},
		{ID: "food-cookie", Name: "Cookie", Emoji: "🍪", Category: CategoryFood, Price: 8},
		{ID: "food-fish", Name: "Fish", Emoji: "🐟", Category: CategoryFood, Price: 12},
		{ID: "food-cake", Name: "Cake", Emoji: "🍰", Category: CategoryFood, Price: 20},
		{ID: "acc-bow", Name: "Ribbon Bow", Emoji: "🎀", Category: CategoryAccessory, Price: 25},
		{ID: "acc-hat", Name: "Top Hat", Emoji: "🎩", Category: CategoryAccessory, Price: 35},
		{ID: "acc-glasses", Name: "Sunglasses", Emoji: "🕶️", Category: CategoryAccessory, Price: 30},
		{ID: "acc-crown", Name: "Crown", Emoji: "👑", Category: CategoryAccessory, Price: 80},
	} {
		catalog[item.ID] = item
	}
}

// Lookup returns the catalog entry for id.
func Lookup(id string) (CatalogItem, bool) {
	item, ok := catalog[id]
	return item, ok
}

// FallbackEmoji returns the emoji shown for items missing from the catalog.
func FallbackEmoji(cat Category) string {
	if e, ok := fallbackEmoji[cat]; ok {
		return e
	}
	return unknownEmoji
}
