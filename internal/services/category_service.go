package services

import (
	"strings"

	"github.com/Swoyesh/FinSense/internal/models"
)

const fuzzyMatchThreshold = 0.7

type categoryService struct {
	merchantPatterns    map[string]merchantPattern
	descriptionPatterns []descriptionPattern
}

type merchantPattern struct {
	normalizedName string
	category       string
	confidence     float64
}

type descriptionPattern struct {
	keywords   []string
	category   string
	confidence float64
}

// NewCategoryService creates a new CategoryServiceInterface instance
func NewCategoryService() CategoryServiceInterface {
	return &categoryService{
		merchantPatterns:    initMerchantPatterns(),
		descriptionPatterns: initDescriptionPatterns(),
	}
}

// Categorize returns the best label for a statement description.
func (s *categoryService) Categorize(description string) string {
	return s.categorize(description).Category
}

func (s *categoryService) categorize(description string) *models.CategorizationResult {
	if category, confidence := s.CategorizeByMerchant(description); category != models.CategoryOthers {
		return &models.CategorizationResult{
			Category:       category,
			Method:         models.CategorizationMethodMerchant,
			Confidence:     confidence,
			MatchedPattern: "Merchant:" + description,
		}
	}

	if category, confidence := s.CategorizeByDescription(description); category != models.CategoryOthers {
		return &models.CategorizationResult{
			Category:       category,
			Method:         models.CategorizationMethodDescription,
			Confidence:     confidence,
			MatchedPattern: "Description",
		}
	}

	return &models.CategorizationResult{
		Category:   models.CategoryOthers,
		Method:     models.CategorizationMethodFallback,
		Confidence: 0.0,
	}
}

// CategorizeByMerchant categorizes based on merchant name
func (s *categoryService) CategorizeByMerchant(merchantName string) (string, float64) {
	if merchantName == "" {
		return models.CategoryOthers, 0.0
	}

	normalized := normalizeForMatching(merchantName)

	for pattern, mapping := range s.merchantPatterns {
		if strings.Contains(normalized, normalizeForMatching(pattern)) {
			return mapping.category, mapping.confidence
		}
	}

	fuzzyMerchant, score := s.FuzzyMatchMerchant(merchantName)
	if score > fuzzyMatchThreshold && fuzzyMerchant != "" {
		if mapping, exists := s.merchantPatterns[fuzzyMerchant]; exists {
			return mapping.category, score * mapping.confidence
		}
	}

	return models.CategoryOthers, 0.0
}

// CategorizeByDescription categorizes based on transaction description
func (s *categoryService) CategorizeByDescription(description string) (string, float64) {
	if description == "" {
		return models.CategoryOthers, 0.0
	}

	normalized := strings.ToLower(description)

	for _, pattern := range s.descriptionPatterns {
		for _, keyword := range pattern.keywords {
			if containsIgnoreCase(normalized, keyword) {
				return pattern.category, pattern.confidence
			}
		}
	}

	return models.CategoryOthers, 0.0
}

// FuzzyMatchMerchant performs fuzzy string matching on merchant names
func (s *categoryService) FuzzyMatchMerchant(input string) (string, float64) {
	if input == "" {
		return "", 0.0
	}

	input = strings.ToLower(strings.TrimSpace(input))
	var bestMatch string
	var bestScore float64

	for merchant := range s.merchantPatterns {
		score := calculateSimilarity(input, strings.ToLower(merchant))

		if score > bestScore && score > fuzzyMatchThreshold {
			bestScore = score
			bestMatch = merchant
		}
	}

	return bestMatch, bestScore
}

// CategorizeTransaction labels a stored transaction from its description
func (s *categoryService) CategorizeTransaction(transaction *models.Transaction) *models.CategorizationResult {
	if transaction == nil || transaction.Description == "" {
		return &models.CategorizationResult{
			Category:   models.CategoryOthers,
			Method:     models.CategorizationMethodFallback,
			Confidence: 0.0,
		}
	}

	// credits without a better match are treated as income
	result := s.categorize(transaction.Description)
	if result.Method == models.CategorizationMethodFallback && !transaction.IsDebit() && transaction.Credit.IsPositive() {
		result.Category = models.CategoryIncome
		result.Method = models.CategorizationMethodDescription
		result.Confidence = 0.6
	}
	return result
}

// BatchCategorize categorizes multiple transactions
func (s *categoryService) BatchCategorize(transactions []*models.Transaction) []*models.CategorizationResult {
	results := make([]*models.CategorizationResult, 0, len(transactions))

	for _, txn := range transactions {
		results = append(results, s.CategorizeTransaction(txn))
	}

	return results
}

// initMerchantPatterns initializes common merchant patterns
func initMerchantPatterns() map[string]merchantPattern {
	return map[string]merchantPattern{
		// Groceries & Shopping
		"Bhatbhateni": {normalizedName: "Bhat-Bhateni Supermarket", category: models.CategoryGroceries, confidence: 0.95},
		"Big Mart":    {normalizedName: "Big Mart", category: models.CategoryGroceries, confidence: 0.95},
		"Salesberry":  {normalizedName: "Salesberry", category: models.CategoryGroceries, confidence: 0.95},
		"Daraz":       {normalizedName: "Daraz", category: models.CategoryGroceries, confidence: 0.90},
		"Sastodeal":   {normalizedName: "Sastodeal", category: models.CategoryGroceries, confidence: 0.90},

		// Dining & Food
		"Foodmandu":      {normalizedName: "Foodmandu", category: models.CategoryDining, confidence: 0.95},
		"Bhojdeals":      {normalizedName: "Bhojdeals", category: models.CategoryDining, confidence: 0.95},
		"KFC":            {normalizedName: "KFC", category: models.CategoryDining, confidence: 0.95},
		"Pizza Hut":      {normalizedName: "Pizza Hut", category: models.CategoryDining, confidence: 0.95},
		"Himalayan Java": {normalizedName: "Himalayan Java Coffee", category: models.CategoryDining, confidence: 0.95},

		// Subscriptions
		"Netflix":   {normalizedName: "Netflix", category: models.CategorySubscriptions, confidence: 0.95},
		"Spotify":   {normalizedName: "Spotify", category: models.CategorySubscriptions, confidence: 0.95},
		"YouTube":   {normalizedName: "YouTube Premium", category: models.CategorySubscriptions, confidence: 0.90},
		"Worldlink": {normalizedName: "WorldLink Communications", category: models.CategorySubscriptions, confidence: 0.90},
		"Ncell":     {normalizedName: "Ncell", category: models.CategorySubscriptions, confidence: 0.85},
		"NTC":       {normalizedName: "Nepal Telecom", category: models.CategorySubscriptions, confidence: 0.85},

		// Entertainment
		"QFX":        {normalizedName: "QFX Cinemas", category: models.CategoryEntertainment, confidence: 0.95},
		"Big Movies": {normalizedName: "Big Movies", category: models.CategoryEntertainment, confidence: 0.95},
		"Fun Park":   {normalizedName: "Bhrikutimandap Fun Park", category: models.CategoryEntertainment, confidence: 0.90},

		// Travel
		"Pathao":        {normalizedName: "Pathao", category: models.CategoryTravel, confidence: 0.95},
		"inDrive":       {normalizedName: "inDrive", category: models.CategoryTravel, confidence: 0.95},
		"Buddha Air":    {normalizedName: "Buddha Air", category: models.CategoryTravel, confidence: 0.95},
		"Yeti Airlines": {normalizedName: "Yeti Airlines", category: models.CategoryTravel, confidence: 0.95},
		"Sajha Yatayat": {normalizedName: "Sajha Yatayat", category: models.CategoryTravel, confidence: 0.90},

		// Personal Care
		"Nepal Pharmacy": {normalizedName: "Nepal Pharmacy", category: models.CategoryPersonalCare, confidence: 0.90},
		"Hairworld":      {normalizedName: "Hairworld Salon", category: models.CategoryPersonalCare, confidence: 0.90},

		// Education
		"Kings College": {normalizedName: "Kings College", category: models.CategoryEducation, confidence: 0.95},
		"Udemy":         {normalizedName: "Udemy", category: models.CategoryEducation, confidence: 0.95},
		"Coursera":      {normalizedName: "Coursera", category: models.CategoryEducation, confidence: 0.95},
	}
}

// initDescriptionPatterns initializes description-based categorization patterns
func initDescriptionPatterns() []descriptionPattern {
	return []descriptionPattern{
		{
			keywords:   []string{"Salary", "Payroll", "Interest Credit", "Dividend", "Remittance", "Income"},
			category:   models.CategoryIncome,
			confidence: 0.95,
		},
		{
			keywords:   []string{"ATM", "Cash Withdrawal", "Service Charge", "Loan", "EMI Payment", "Insurance", "Fund Transfer", "SIP Installment"},
			category:   models.CategoryBanking,
			confidence: 0.90,
		},
		{
			keywords:   []string{"Tuition", "School", "College", "Exam Fee", "Course"},
			category:   models.CategoryEducation,
			confidence: 0.85,
		},
		{
			keywords:   []string{"Restaurant", "Cafe", "Momo", "Bakery", "Khaja"},
			category:   models.CategoryDining,
			confidence: 0.85,
		},
		{
			keywords:   []string{"Mart", "Store", "Supermarket", "Grocery", "Kirana"},
			category:   models.CategoryGroceries,
			confidence: 0.80,
		},
		{
			keywords:   []string{"Recharge", "Topup", "Top-up", "Internet Bill", "Subscription"},
			category:   models.CategorySubscriptions,
			confidence: 0.80,
		},
		{
			keywords:   []string{"Salon", "Pharmacy", "Clinic", "Hospital", "Spa"},
			category:   models.CategoryPersonalCare,
			confidence: 0.80,
		},
		{
			keywords:   []string{"Airlines", "Bus", "Taxi", "Ride", "Hotel", "Ticket"},
			category:   models.CategoryTravel,
			confidence: 0.75,
		},
		{
			keywords:   []string{"Cinema", "Movie", "Concert", "Game"},
			category:   models.CategoryEntertainment,
			confidence: 0.75,
		},
	}
}

// calculateSimilarity calculates the similarity score between two strings using Levenshtein distance
func calculateSimilarity(s1, s2 string) float64 {
	if s1 == s2 {
		return 1.0
	}

	if len(s1) == 0 || len(s2) == 0 {
		return 0.0
	}

	distance := levenshteinDistance(s1, s2)
	maxLen := len(s1)
	if len(s2) > maxLen {
		maxLen = len(s2)
	}

	return 1.0 - float64(distance)/float64(maxLen)
}

// levenshteinDistance calculates the Levenshtein distance between two strings
func levenshteinDistance(s1, s2 string) int {
	if s1 == s2 {
		return 0
	}

	if len(s1) == 0 {
		return len(s2)
	}

	if len(s2) == 0 {
		return len(s1)
	}

	prev := make([]int, len(s2)+1)
	curr := make([]int, len(s2)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(s1); i++ {
		curr[0] = i
		for j := 1; j <= len(s2); j++ {
			cost := 1
			if s1[i-1] == s2[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(s2)]
}

func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// normalizeForMatching normalizes strings for consistent matching
func normalizeForMatching(s string) string {
	s = strings.ToLower(s)
	s = strings.TrimSpace(s)
	for _, r := range []string{"-", "_", " ", "'", "."} {
		s = strings.ReplaceAll(s, r, "")
	}
	return s
}
