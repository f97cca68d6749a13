package domain

// Product is an item purchasable with campus points.
type Product struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price Amount `json:"-"`
	Icon  string `json:"icon"`
}

// DefaultProducts is the campus store catalog.
var DefaultProducts = []Product{
	{ID: "coffee", Name: "Coffee", Price: MustAmount("20"), Icon: "☕"},
	{ID: "bread", Name: "Bread", Price: MustAmount("30"), Icon: "🥐"},
	{ID: "drink", Name: "Drink", Price: MustAmount("50"), Icon: "🥤"},
}

// FindProduct looks up a catalog entry by ID.
func FindProduct(catalog []Product, id string) (Product, bool) {
	for _, p := range catalog {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}
