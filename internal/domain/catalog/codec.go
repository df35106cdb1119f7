package catalog

import (
	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// DecodeProducts parses the catalog payload: an object carrying a "products"
// array plus paging fields ("total", "skip", "limit") that are ignored since
// the catalog is always read in full.
//
// A negative price is a decode error. A discount percentage outside [0,100)
// is discarded rather than failing the whole payload: the product simply
// carries no discount.
func DecodeProducts(data []byte) ([]Product, error) {
	d := jx.DecodeBytes(data)

	var products []Product
	if err := d.Obj(func(d *jx.Decoder, key string) error {
		if key != "products" {
			return d.Skip()
		}
		return d.Arr(func(d *jx.Decoder) error {
			p, err := decodeProduct(d)
			if err != nil {
				return err
			}
			products = append(products, p)
			return nil
		})
	}); err != nil {
		return nil, errors.Wrap(err, "decode catalog payload")
	}

	return products, nil
}

func decodeProduct(d *jx.Decoder) (Product, error) {
	var p Product
	if err := d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "id":
			p.ID, err = d.Int()
		case "title":
			p.Title, err = d.Str()
		case "price":
			p.Price, err = decodeDecimal(d)
		case "discountPercentage":
			p.DiscountPercent, err = decodeDecimal(d)
		case "thumbnail":
			p.Thumbnail, err = d.Str()
		case "description":
			p.Description, err = d.Str()
		case "rating":
			p.Rating, err = d.Float64()
		case "stock":
			p.Stock, err = d.Int()
		case "brand":
			p.Brand, err = d.Str()
		case "category":
			p.Category, err = d.Str()
		case "images":
			err = d.Arr(func(d *jx.Decoder) error {
				img, err := d.Str()
				if err != nil {
					return err
				}
				p.Images = append(p.Images, img)
				return nil
			})
		default:
			err = d.Skip()
		}
		return err
	}); err != nil {
		return Product{}, errors.Wrap(err, "decode product")
	}

	if p.Price.IsNegative() {
		return Product{}, errors.Errorf("product %d: negative price %s", p.ID, p.Price)
	}
	if p.DiscountPercent.IsNegative() || p.DiscountPercent.GreaterThanOrEqual(hundred) {
		p.DiscountPercent = decimal.Zero
	}

	return p, nil
}

func decodeDecimal(d *jx.Decoder) (decimal.Decimal, error) {
	n, err := d.Num()
	if err != nil {
		return decimal.Decimal{}, err
	}
	return decimal.NewFromString(n.String())
}
