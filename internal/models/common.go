// internal/models/common.go
package models

import (
	"database/sql/driver"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// PriceScale is the number of fractional digits stored for every price.
const PriceScale = 2

// Price is a monetary amount. It is stored as decimal(32,2), or as TEXT on
// sqlite where decimal columns degrade to REAL, and always serialized as a
// JSON number with two fractional digits.
type Price struct {
	decimal.Decimal
}

func NewPrice(d decimal.Decimal) Price {
	return Price{Decimal: d.Round(PriceScale)}
}

func ParsePrice(s string) (Price, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Price{}, err
	}
	return NewPrice(d), nil
}

// MustPrice is ParsePrice for constants; it panics on malformed input.
func MustPrice(s string) Price {
	p, err := ParsePrice(s)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(p.StringFixed(PriceScale)), nil
}

// Value writes the fixed-point text form so no driver goes through float64.
func (p Price) Value() (driver.Value, error) {
	return p.StringFixed(PriceScale), nil
}

func (Price) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	if db.Dialector.Name() == "sqlite" {
		return "TEXT"
	}
	return "decimal(32,2)"
}

func (p Price) String() string {
	return p.StringFixed(PriceScale)
}

// StringPtr returns nil for an empty string so optional columns stay NULL.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
