package catalog

import "github.com/julianstephens/smartpack/internal/models"

// builtinKeys fixes the display order of the built-in modules.
var builtinKeys = []string{
	"essentials",
	"electronics",
	"toiletries",
	"clothing",
	"sports",
	"camping",
	"beach",
	"business",
	"wedding",
	"winter",
}

var builtins = map[string]models.PackingModule{
	"essentials": {
		Name: "Essentials",
		Icon: "fas fa-star",
		Items: []string{
			"Passport/ID",
			"Wallet/Credit cards",
			"Phone charger",
			"Medications",
			"Travel insurance docs",
		},
	},
	"electronics": {
		Name: "Electronics",
		Icon: "fas fa-laptop",
		Items: []string{
			"Phone charger",
			"Power bank",
			"Headphones",
			"Laptop/tablet",
			"Camera",
			"Universal adapter",
		},
	},
	"toiletries": {
		Name: "Toiletries",
		Icon: "fas fa-soap",
		Items: []string{
			"Toothbrush & toothpaste",
			"Shampoo & conditioner",
			"Deodorant",
			"Sunscreen",
			"Contact lenses/glasses",
			"Personal hygiene items",
		},
	},
	"clothing": {
		Name: "Clothing",
		Icon: "fas fa-tshirt",
		Items: []string{
			"Underwear",
			"Socks",
			"T-shirts/tops",
			"Pants/shorts",
			"Jacket/sweater",
			"Comfortable shoes",
		},
	},
	"sports": {
		Name: "Sports & Recreation",
		Icon: "fas fa-running",
		Items: []string{
			"Athletic shoes",
			"Workout clothes",
			"Water bottle",
			"Frisbee",
			"Sunglasses",
			"Sports equipment",
		},
	},
	"camping": {
		Name: "Camping",
		Icon: "fas fa-campground",
		Items: []string{
			"Tent",
			"Sleeping bag",
			"Camping pillow",
			"Flashlight/headlamp",
			"First aid kit",
			"Multi-tool",
			"Camping stove",
			"Insect repellent",
		},
	},
	"beach": {
		Name: "Beach",
		Icon: "fas fa-umbrella-beach",
		Items: []string{
			"Swimsuit",
			"Beach towel",
			"Sunscreen (high SPF)",
			"Sunglasses",
			"Hat/cap",
			"Flip-flops",
			"Beach bag",
			"Waterproof phone case",
		},
	},
	"business": {
		Name: "Business",
		Icon: "fas fa-briefcase",
		Items: []string{
			"Business cards",
			"Laptop & charger",
			"Professional attire",
			"Dress shoes",
			"Portfolio/notebook",
			"Presentation materials",
		},
	},
	"wedding": {
		Name: "Wedding/Formal",
		Icon: "fas fa-ring",
		Items: []string{
			"Formal attire",
			"Dress shoes",
			"Accessories (jewelry, etc.)",
			"Gift",
			"Camera",
			"Backup outfit",
		},
	},
	"winter": {
		Name: "Winter Sports",
		Icon: "fas fa-snowflake",
		Items: []string{
			"Winter jacket",
			"Thermal underwear",
			"Gloves/mittens",
			"Winter hat",
			"Snow boots",
			"Ski goggles",
			"Hand warmers",
		},
	},
}

// Icon is a selectable icon for custom modules.
type Icon struct {
	Value string
	Label string
}

// Icons lists the icons offered when creating a custom module.
var Icons = []Icon{
	{Value: "fas fa-star", Label: "⭐ Star"},
	{Value: "fas fa-mountain", Label: "🏔️ Mountain"},
	{Value: "fas fa-camera", Label: "📷 Camera"},
	{Value: "fas fa-music", Label: "🎵 Music"},
	{Value: "fas fa-gamepad", Label: "🎮 Gaming"},
	{Value: "fas fa-book", Label: "📚 Book"},
	{Value: "fas fa-utensils", Label: "🍴 Food"},
	{Value: "fas fa-car", Label: "🚗 Travel"},
	{Value: "fas fa-home", Label: "🏠 Home"},
	{Value: "fas fa-gift", Label: "🎁 Gift"},
	{Value: "fas fa-heart", Label: "❤️ Heart"},
	{Value: "fas fa-plane", Label: "✈️ Plane"},
	{Value: "fas fa-map", Label: "🗺️ Map"},
	{Value: "fas fa-compass", Label: "🧭 Compass"},
	{Value: "fas fa-binoculars", Label: "🔭 Binoculars"},
	{Value: "fas fa-bicycle", Label: "🚲 Bicycle"},
	{Value: "fas fa-swimming-pool", Label: "🏊 Swimming"},
	{Value: "fas fa-dumbbell", Label: "🏋️ Fitness"},
	{Value: "fas fa-paint-brush", Label: "🎨 Art"},
	{Value: "fas fa-microphone", Label: "🎤 Microphone"},
}

// IconGlyph maps an icon identifier to a terminal-friendly glyph.
func IconGlyph(icon string) string {
	for _, i := range Icons {
		if i.Value == icon {
			if r := []rune(i.Label); len(r) > 0 {
				return string(r[0])
			}
		}
	}
	switch icon {
	case "fas fa-laptop":
		return "💻"
	case "fas fa-soap":
		return "🧼"
	case "fas fa-tshirt":
		return "👕"
	case "fas fa-running":
		return "🏃"
	case "fas fa-campground":
		return "⛺"
	case "fas fa-umbrella-beach":
		return "🏖"
	case "fas fa-briefcase":
		return "💼"
	case "fas fa-ring":
		return "💍"
	case "fas fa-snowflake":
		return "❄"
	}
	return "•"
}
