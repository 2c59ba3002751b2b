package clean

import "github.com/beandata/coffeeshop-api/internal/model"

// Products cleans raw product rows into typed records. The retail price is
// stripped of non-numeric characters before coercion; the wholesale price
// arrives as a plain number. The three _yn flag columns become booleans.
func Products(header []string, rows [][]string) ([]model.Product, error) {
	idx := MakeHeaderIndex(header)
	out := make([]model.Product, 0, len(rows))

	for i, values := range rows {
		row := Row{Entity: "product", Line: i + 2, Index: idx, Values: values}
		if row.Empty() {
			continue
		}

		var p model.Product
		var err error
		if p.ProductID, err = row.Int("product_id"); err != nil {
			return nil, err
		}
		if p.ProductGroup, err = row.Text("product_group"); err != nil {
			return nil, err
		}
		if p.ProductCategory, err = row.Text("product_category"); err != nil {
			return nil, err
		}
		if p.ProductType, err = row.Text("product_type"); err != nil {
			return nil, err
		}
		if p.Product, err = row.Text("product"); err != nil {
			return nil, err
		}
		if p.ProductDescription, err = row.Text("product_description"); err != nil {
			return nil, err
		}
		if p.UnitOfMeasure, err = row.Text("unit_of_measure"); err != nil {
			return nil, err
		}
		if p.CurrentWholesalePrice, err = row.Price("current_wholesale_price"); err != nil {
			return nil, err
		}
		if p.CurrentRetailPrice, err = row.CleanedPrice("current_retail_price"); err != nil {
			return nil, err
		}
		if p.TaxExemptYN, err = row.Flag("tax_exempt_yn"); err != nil {
			return nil, err
		}
		if p.PromoYN, err = row.Flag("promo_yn"); err != nil {
			return nil, err
		}
		if p.NewProductYN, err = row.Flag("new_product_yn"); err != nil {
			return nil, err
		}

		out = append(out, p)
	}

	return out, nil
}
