package models

// Labels produced by the statement classifier.
const (
	CategoryPersonalCare  = "Personal Care"
	CategoryIncome        = "Income"
	CategoryBanking       = "Banking & Finance"
	CategoryDining        = "Dining & Food"
	CategoryGroceries     = "Groceries & Shopping"
	CategorySubscriptions = "Subscriptions"
	CategoryOthers        = "others"
	CategoryEntertainment = "Entertainment"
	CategoryTravel        = "Travel"
	CategoryEducation     = "Education"
)

// AllCategories returns every classifier label
func AllCategories() []string {
	return []string{
		CategoryPersonalCare,
		CategoryIncome,
		CategoryBanking,
		CategoryDining,
		CategoryGroceries,
		CategorySubscriptions,
		CategoryOthers,
		CategoryEntertainment,
		CategoryTravel,
		CategoryEducation,
	}
}

// SpendingCategories returns the labels that carry debits.
func SpendingCategories() []string {
	categories := make([]string, 0, len(AllCategories())-1)
	for _, c := range AllCategories() {
		if c != CategoryIncome {
			categories = append(categories, c)
		}
	}
	return categories
}

// IsKnownCategory checks if a category string is one of the classifier labels.
// Unknown labels are still accepted by the forecaster.
func IsKnownCategory(category string) bool {
	for _, validCategory := range AllCategories() {
		if category == validCategory {
			return true
		}
	}
	return false
}

// Methods recorded on a CategorizationResult.
const (
	CategorizationMethodMerchant    = "merchant"
	CategorizationMethodDescription = "description"
	CategorizationMethodFallback    = "fallback"
)

// CategorizationResult is the outcome of labelling one statement description.
type CategorizationResult struct {
	Category       string  `json:"category"`
	Method         string  `json:"method"`
	Confidence     float64 `json:"confidence"`
	MatchedPattern string  `json:"matched_pattern,omitempty"`
}

// MerchantInfo describes a payee used by the history generator.
type MerchantInfo struct {
	Name     string
	Category string
	Channel  string
}
