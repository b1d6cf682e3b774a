package pricing

import "strings"

// Coupon is a percentage discount unlocked by a code. Eligibility is
// keyword-based: an item qualifies when any keyword appears in its
// "{category} {name}" text.
type Coupon struct {
	Code     string
	Fraction float64 // discount fraction in [0,1]
	Keywords []string
}

// Registry resolves coupon codes. Injected so tests can substitute
// their own table.
type Registry interface {
	Lookup(code string) (Coupon, bool)
}

// StaticRegistry is a fixed code → coupon table.
type StaticRegistry struct {
	coupons map[string]Coupon
}

func NewStaticRegistry(coupons ...Coupon) *StaticRegistry {
	m := make(map[string]Coupon, len(coupons))
	for _, c := range coupons {
		m[strings.ToUpper(c.Code)] = c
	}
	return &StaticRegistry{coupons: m}
}

func (r *StaticRegistry) Lookup(code string) (Coupon, bool) {
	c, ok := r.coupons[NormalizeCode(code)]
	return c, ok
}

// DefaultRegistry returns the built-in coupon table.
func DefaultRegistry() *StaticRegistry {
	return NewStaticRegistry(
		Coupon{Code: "PIZZA50", Fraction: 0.50, Keywords: []string{"pizza"}},
		Coupon{Code: "BIRYANI30", Fraction: 0.30, Keywords: []string{"biryani"}},
		Coupon{Code: "HEALTHY40", Fraction: 0.40, Keywords: []string{"bowl", "healthy"}},
		Coupon{Code: "SUSHI25", Fraction: 0.25, Keywords: []string{"sushi"}},
	)
}

// NormalizeCode uppercases and trims a user-submitted coupon code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
