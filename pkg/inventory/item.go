package inventory

import "strings"

const customPrefix = "custom-"

// Kind tells catalog items apart from user-generated stickers.
type Kind int

const (
	KindCatalog Kind = iota
	KindCustom
)

// ItemRef identifies an ownable item. The storage encoding prefixes custom
// sticker ids with "custom-"; ParseItemRef and String are the only places
// that encoding is handled.
type ItemRef struct {
	kind Kind
	id   string
}

// Catalog references an item from the static shop catalog.
func Catalog(id string) ItemRef {
	return ItemRef{kind: KindCatalog, id: id}
}

// Custom references a CustomSticker row by its id.
func Custom(id string) ItemRef {
	return ItemRef{kind: KindCustom, id: id}
}

// ParseItemRef decodes an item id as stored in the purchase ledger and in
// placement rows.
func ParseItemRef(raw string) ItemRef {
	if id, ok := strings.CutPrefix(raw, customPrefix); ok && id != "" {
		return Custom(id)
	}
	return Catalog(raw)
}

// Kind returns the reference kind.
func (r ItemRef) Kind() Kind { return r.kind }

// ID returns the catalog id or the CustomSticker id, without encoding.
func (r ItemRef) ID() string { return r.id }

// IsCustom reports whether the reference points at a CustomSticker.
func (r ItemRef) IsCustom() bool { return r.kind == KindCustom }

// String returns the storage encoding of the reference.
func (r ItemRef) String() string {
	if r.kind == KindCustom {
		return customPrefix + r.id
	}
	return r.id
}

// Category partitions owned items by how they are used.
type Category string

const (
	CategorySticker   Category = "sticker"
	CategoryFood      Category = "food"
	CategoryAccessory Category = "accessory"
)

// ParseCategory normalizes the category stored on a purchase row. Rows with
// an empty or unknown category are classified by their item id.
func ParseCategory(raw string, ref ItemRef) Category {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "sticker", "stickers", "decoration", "decorations":
		return CategorySticker
	case "food", "foods", "snack":
		return CategoryFood
	case "accessory", "accessories":
		return CategoryAccessory
	}

	if ref.IsCustom() {
		return CategorySticker
	}
	if item, ok := Lookup(ref.ID()); ok {
		return item.Category
	}
	switch {
	case strings.HasPrefix(ref.ID(), "food-"):
		return CategoryFood
	case strings.HasPrefix(ref.ID(), "acc-"), strings.HasPrefix(ref.ID(), "accessory-"):
		return CategoryAccessory
	default:
		return CategorySticker
	}
}
