package standardize

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/retail-rules/internal/domain"
)

// fieldCounter applies normalisations and counts the fields they change.
type fieldCounter int

func (n *fieldCounter) str(field *string, normalize func(string) string) {
	if v := normalize(*field); v != *field {
		*field = v
		*n++
	}
}

func (n *fieldCounter) optional(field **string, normalize func(string) string) {
	if *field == nil {
		return
	}
	if v := normalize(**field); v != **field {
		*field = &v
		*n++
	}
}

func (n *fieldCounter) money(field *decimal.Decimal) {
	if v := domain.RoundMoney(*field); !v.Equal(*field) {
		*field = v
		*n++
	}
}

func titleCaseName(name string) string {
	v, _ := domain.TitleCaseName(name)
	return v
}

// normalizeCustomer returns c in canonical form and the number of fields changed.
func normalizeCustomer(c domain.Customer) (domain.Customer, int) {
	var n fieldCounter
	n.str(&c.Name, titleCaseName)
	n.optional(&c.Email, domain.NormalizeEmail)
	n.optional(&c.Phone, domain.NormalizePhone)
	n.str(&c.State, domain.NormalizeStateCode)
	n.str(&c.City, strings.TrimSpace)
	return c, int(n)
}

// normalizeProduct returns p in canonical form and the number of fields changed.
func normalizeProduct(p domain.Product) (domain.Product, int) {
	var n fieldCounter
	n.str(&p.Name, domain.TitleCase)
	n.optional(&p.Category, domain.TitleCase)
	n.optional(&p.Subcategory, domain.TitleCase)
	n.money(&p.UnitPrice)
	n.money(&p.Cost)
	n.str(&p.Supplier, strings.TrimSpace)
	return p, int(n)
}
