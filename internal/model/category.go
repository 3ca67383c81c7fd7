package model

import "fmt"

// Category is one of the fixed spending labels.
type Category string

// The closed set of categories. CategoryOther is the catch-all.
const (
	CategoryConvenienceStore Category = "convenience_store"
	CategoryRideshare        Category = "rideshare"
	CategoryFoodDelivery     Category = "food_delivery"
	CategoryRestaurantCafe   Category = "restaurant_cafe"
	CategorySupermarket      Category = "supermarket"
	CategoryCashWithdrawal   Category = "cash_withdrawal"
	CategorySubscriptionGym  Category = "subscription_gym"
	CategoryEcommerce        Category = "ecommerce"
	CategoryPharmacyHealth   Category = "pharmacy_health"
	CategorySPEITransfer     Category = "spei_transfer"
	CategoryBankFee          Category = "bank_fee"
	CategoryGasTransport     Category = "gas_transport"
	CategoryEducation        Category = "education"
	CategoryOther            Category = "other"
)

var allCategories = []Category{
	CategoryConvenienceStore,
	CategoryRideshare,
	CategoryFoodDelivery,
	CategoryRestaurantCafe,
	CategorySupermarket,
	CategoryCashWithdrawal,
	CategorySubscriptionGym,
	CategoryEcommerce,
	CategoryPharmacyHealth,
	CategorySPEITransfer,
	CategoryBankFee,
	CategoryGasTransport,
	CategoryEducation,
	CategoryOther,
}

// AllCategories returns every category label in canonical order.
func AllCategories() []Category {
	out := make([]Category, len(allCategories))
	copy(out, allCategories)
	return out
}

// IsValid reports whether c belongs to the closed label set.
func (c Category) IsValid() bool {
	for _, known := range allCategories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory converts a stored label back to a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", fmt.Errorf("unknown category %q", s)
	}
	return c, nil
}

func (c Category) String() string {
	return string(c)
}
