package catalog

// Default returns the built-in tea shop catalog, used when no catalog file is
// configured. Prices are NT$ (TWD has no minor subdivision in practice).
func Default() *Catalog {
	c, err := New("TWD",
		[]Product{
			{ID: "A01", Name: "Alishan High Mountain Oolong", Price: 1890},
			{ID: "A02", Name: "Sun Moon Lake Black Tea", Price: 960},
			{ID: "A03", Name: "Wenshan Baozhong", Price: 1200},
			{ID: "A04", Name: "Charcoal Roasted Tieguanyin", Price: 1450},
			{ID: "B01", Name: "Cold Brew Bottle Set", Price: 480},
			{ID: "B02", Name: "Travel Gaiwan, Porcelain", Price: 750},
		},
		[]ShippingOption{
			{ID: "S-711", Name: "7-Eleven Pickup", Price: 60},
			{ID: "S-HOME", Name: "Home Delivery", Price: 120},
			{ID: "S-SHOP", Name: "Pickup at Shop", Price: 0},
		},
		[]PaymentOption{
			{ID: "P-COD", Name: "Cash on Delivery"},
			{ID: "P-BANK", Name: "Bank Transfer"},
		},
	)
	if err != nil {
		panic(err)
	}
	return c
}
