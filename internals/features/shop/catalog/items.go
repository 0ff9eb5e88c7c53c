package catalog

import "finakihub_backend/internals/constants"

type ShopItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Price    int64  `json:"price"`
	Icon     string `json:"icon"`
}

var shopItems = []ShopItem{
	{ID: "hat_cap", Name: "Gorra Cool", Category: constants.CategoryHat, Price: 10, Icon: "🧢"},
	{ID: "hat_crown", Name: "Corona Real", Category: constants.CategoryHat, Price: 25, Icon: "👑"},
	{ID: "hat_wizard", Name: "Sombrero Mago", Category: constants.CategoryHat, Price: 20, Icon: "🎩"},
	{ID: "hat_party", Name: "Gorro Fiesta", Category: constants.CategoryHat, Price: 15, Icon: "🎉"},
	{ID: "hat_graduate", Name: "Birrete", Category: constants.CategoryHat, Price: 30, Icon: "🎓"},
	{ID: "acc_glasses", Name: "Lentes Cool", Category: constants.CategoryAccessory, Price: 15, Icon: "🕶️"},
	{ID: "acc_star", Name: "Estrella", Category: constants.CategoryAccessory, Price: 20, Icon: "⭐"},
	{ID: "acc_medal", Name: "Medalla", Category: constants.CategoryAccessory, Price: 25, Icon: "🏅"},
	{ID: "acc_watch", Name: "Reloj", Category: constants.CategoryAccessory, Price: 30, Icon: "⌚"},
	{ID: "acc_bag", Name: "Mochila", Category: constants.CategoryAccessory, Price: 18, Icon: "🎒"},
	{ID: "bg_sunset", Name: "Atardecer", Category: constants.CategoryBackground, Price: 20, Icon: "🌅"},
	{ID: "bg_space", Name: "Espacio", Category: constants.CategoryBackground, Price: 35, Icon: "🌌"},
	{ID: "bg_beach", Name: "Playa", Category: constants.CategoryBackground, Price: 25, Icon: "🏖️"},
	{ID: "bg_city", Name: "Ciudad", Category: constants.CategoryBackground, Price: 30, Icon: "🏙️"},
	{ID: "bg_forest", Name: "Bosque", Category: constants.CategoryBackground, Price: 28, Icon: "🌲"},
	{ID: "special_rocket", Name: "Cohete", Category: constants.CategorySpecial, Price: 50, Icon: "🚀"},
	{ID: "special_trophy", Name: "Trofeo Oro", Category: constants.CategorySpecial, Price: 75, Icon: "🏆"},
	{ID: "special_diamond", Name: "Diamante", Category: constants.CategorySpecial, Price: 100, Icon: "💎"},
}

var itemsByID = func() map[string]ShopItem {
	m := make(map[string]ShopItem, len(shopItems))
	for _, it := range shopItems {
		m[it.ID] = it
	}
	return m
}()

// Items returns a copy of the catalog in display order.
func Items() []ShopItem {
	out := make([]ShopItem, len(shopItems))
	copy(out, shopItems)
	return out
}

func FindItem(id string) (ShopItem, bool) {
	it, ok := itemsByID[id]
	return it, ok
}

func ItemsByCategory(category string) []ShopItem {
	var out []ShopItem
	for _, it := range shopItems {
		if it.Category == category {
			out = append(out, it)
		}
	}
	return out
}
