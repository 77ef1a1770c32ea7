package order

import (
	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/shopspring/decimal"

	"github.com/xenking/orderflow/internal/domain/inventory"
)

// Checkout is the customer's cart as submitted for an order.
type Checkout struct {
	Lines      []inventory.Line
	Address    Address
	CouponCode string
}

// Validate checks the cart shape. Stock and prices are checked later.
func (c Checkout) Validate() error {
	if len(c.Lines) == 0 {
		return ErrEmptyItems
	}
	for _, l := range c.Lines {
		if l.ProductID == "" {
			return errors.Wrap(ErrEmptyItems, "product id")
		}
		if l.Quantity <= 0 {
			return errors.Wrapf(inventory.ErrInvalidQuantity, "product %s", l.ProductID)
		}
	}
	return c.Address.Validate()
}

// encodeSnapshot renders the checkout and its pricing as the metadata object
// stored on the payment ledger row.
func encodeSnapshot(receipt string, c Checkout, p Pricing) []byte {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	e.ObjStart()
	e.FieldStart("receipt")
	e.Str(receipt)
	e.FieldStart("couponCode")
	if c.CouponCode == "" {
		e.Null()
	} else {
		e.Str(c.CouponCode)
	}
	e.FieldStart("items")
	e.ArrStart()
	for _, l := range c.Lines {
		e.ObjStart()
		e.FieldStart("productId")
		e.Str(l.ProductID)
		e.FieldStart("quantity")
		e.Int(l.Quantity)
		e.ObjEnd()
	}
	e.ArrEnd()
	e.FieldStart("shippingAddress")
	e.ObjStart()
	for _, f := range []struct{ k, v string }{
		{"address", c.Address.Address},
		{"city", c.Address.City},
		{"state", c.Address.State},
		{"pincode", c.Address.Pincode},
		{"phone", c.Address.Phone},
	} {
		e.FieldStart(f.k)
		e.Str(f.v)
	}
	e.ObjEnd()
	for _, f := range []struct {
		k string
		v decimal.Decimal
	}{
		{"subtotal", p.Subtotal},
		{"discount", p.Discount},
		{"tax", p.Tax},
		{"shipping", p.Shipping},
		{"total", p.Total},
	} {
		e.FieldStart(f.k)
		e.Num(jx.Num(f.v.StringFixed(2)))
	}
	e.ObjEnd()

	out := make([]byte, len(e.Bytes()))
	copy(out, e.Bytes())
	return out
}

// decodeSnapshot reads the checkout back from ledger metadata.
func decodeSnapshot(data []byte) (Checkout, error) {
	var c Checkout
	if len(data) == 0 {
		return c, errors.New("empty metadata")
	}
	d := jx.DecodeBytes(data)
	err := d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "couponCode":
			if d.Next() == jx.Null {
				return d.Null()
			}
			v, err := d.Str()
			c.CouponCode = v
			return err
		case "items":
			return d.Arr(func(d *jx.Decoder) error {
				var l inventory.Line
				if err := d.Obj(func(d *jx.Decoder, key string) error {
					switch key {
					case "productId":
						v, err := d.Str()
						l.ProductID = v
						return err
					case "quantity":
						v, err := d.Int()
						l.Quantity = v
						return err
					default:
						return d.Skip()
					}
				}); err != nil {
					return err
				}
				c.Lines = append(c.Lines, l)
				return nil
			})
		case "shippingAddress":
			return d.Obj(func(d *jx.Decoder, key string) error {
				v, err := d.Str()
				if err != nil {
					return err
				}
				switch key {
				case "address":
					c.Address.Address = v
				case "city":
					c.Address.City = v
				case "state":
					c.Address.State = v
				case "pincode":
					c.Address.Pincode = v
				case "phone":
					c.Address.Phone = v
				}
				return nil
			})
		default:
			return d.Skip()
		}
	})
	if err != nil {
		return c, errors.Wrap(err, "decode checkout snapshot")
	}
	return c, nil
}
