package main

// Category is one selectable bill/receipt category as the mobile form shows
// it. Flat lists carry the owning group for convenience.
type Category struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Icon      string `json:"icon"`
	GroupID   string `json:"group_id,omitempty"`
	GroupName string `json:"group_name,omitempty"`
}

// CategoryGroup groups categories the way the picker renders them.
type CategoryGroup struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Icon          string     `json:"icon"`
	Subcategories []Category `json:"subcategories"`
}

var billCategoryGroups = []CategoryGroup{
	{
		ID: "bills", Name: "Faturalar", Icon: "receipt",
		Subcategories: []Category{
			{ID: "electricity", Name: "Elektrik", Icon: "flash"},
			{ID: "water", Name: "Su", Icon: "water"},
			{ID: "internet", Name: "İnternet", Icon: "wifi"},
			{ID: "gas", Name: "Doğalgaz", Icon: "flame"},
			{ID: "phone", Name: "Telefon", Icon: "call"},
		},
	},
	{
		ID: "expenses", Name: "Giderler", Icon: "wallet",
		Subcategories: []Category{
			{ID: "rent", Name: "Kira", Icon: "home"},
			{ID: "market", Name: "Market", Icon: "cart"},
			{ID: "subscriptions", Name: "Abonelikler", Icon: "card"},
		},
	},
}

var receiptCategoryGroups = []CategoryGroup{
	{
		ID: "shopping", Name: "Alışveriş", Icon: "bag",
		Subcategories: []Category{
			{ID: "market", Name: "Market", Icon: "cart"},
			{ID: "clothing", Name: "Giyim", Icon: "shirt"},
			{ID: "electronics", Name: "Elektronik", Icon: "phone-portrait"},
		},
	},
	{
		ID: "food", Name: "Yeme-İçme", Icon: "restaurant",
		Subcategories: []Category{
			{ID: "restaurant", Name: "Restoran", Icon: "restaurant"},
			{ID: "cafe", Name: "Kafe", Icon: "cafe"},
			{ID: "fastfood", Name: "Fast Food", Icon: "fast-food"},
		},
	},
	{
		ID: "other", Name: "Diğer", Icon: "ellipsis-horizontal",
		Subcategories: []Category{
			{ID: "pharmacy", Name: "Eczane", Icon: "medkit"},
			{ID: "fuel", Name: "Akaryakıt", Icon: "car"},
			{ID: "other", Name: "Diğer", Icon: "pricetag"},
		},
	},
}

var (
	billCategories    = flattenGroups(billCategoryGroups)
	receiptCategories = flattenGroups(receiptCategoryGroups)
)

func flattenGroups(groups []CategoryGroup) []Category {
	var out []Category
	for _, g := range groups {
		for _, sub := range g.Subcategories {
			sub.GroupID = g.ID
			sub.GroupName = g.Name
			out = append(out, sub)
		}
	}
	return out
}
