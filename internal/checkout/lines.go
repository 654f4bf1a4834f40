package checkout

import "storefront/internal/catalog"

// resolveLines maps cart lines to priced order lines. A line whose product id
// is not in the catalog is dropped and counted; client quantities are
// normalized per line.
func resolveLines(cat *catalog.Catalog, lines []CartLine) ([]OrderLine, int) {
	var out []OrderLine
	dropped := 0

	for _, l := range lines {
		p, ok := cat.ProductByID(l.ID)
		if !ok {
			dropped++
			continue
		}

		qty := NormalizeQty(l.Qty)
		out = append(out, OrderLine{
			ProductID: p.ID,
			Name:      p.Name,
			UnitPrice: p.Price,
			Qty:       qty,
			LineTotal: p.Price * int64(qty),
		})
	}

	return out, dropped
}
