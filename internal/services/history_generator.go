package services

import (
	"math/rand"
	"sort"
	"time"

	"github.com/Swoyesh/FinSense/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type historyGenerator struct {
	merchantPool []models.MerchantInfo
	rng          *rand.Rand
}

const (
	salaryDay          = 1
	salaryHour         = 9
	subscriptionDay    = 5
	businessHoursStart = 6
	businessHoursEnd   = 22
)

// purchasesPerMonth is the minimum and spread of monthly purchase counts per category.
var purchasesPerMonth = map[string][2]int{
	models.CategoryGroceries:     {6, 6},
	models.CategoryDining:        {5, 8},
	models.CategoryTravel:        {4, 6},
	models.CategoryEntertainment: {1, 3},
	models.CategoryPersonalCare:  {1, 2},
	models.CategoryBanking:       {1, 2},
	models.CategoryEducation:     {0, 2},
	models.CategoryOthers:        {1, 4},
}

// NewHistoryGenerator creates a generator. A zero seed seeds from the clock.
func NewHistoryGenerator(seed int64) HistoryGeneratorInterface {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &historyGenerator{
		merchantPool: initializeMerchantPool(),
		rng:          rand.New(rand.NewSource(seed)),
	}
}

func initializeMerchantPool() []models.MerchantInfo {
	return []models.MerchantInfo{
		// Groceries & Shopping
		{Name: "Bhat-Bhateni Supermarket", Category: models.CategoryGroceries, Channel: "POS"},
		{Name: "Big Mart", Category: models.CategoryGroceries, Channel: "POS"},
		{Name: "Salesberry", Category: models.CategoryGroceries, Channel: "Fonepay"},
		{Name: "Daraz Online", Category: models.CategoryGroceries, Channel: "eSewa"},

		// Dining & Food
		{Name: "Foodmandu Order", Category: models.CategoryDining, Channel: "Khalti"},
		{Name: "Himalayan Java Coffee", Category: models.CategoryDining, Channel: "Fonepay"},
		{Name: "Bhojdeals", Category: models.CategoryDining, Channel: "eSewa"},
		{Name: "Momo Restaurant", Category: models.CategoryDining, Channel: "Fonepay"},

		// Subscriptions
		{Name: "Netflix.com", Category: models.CategorySubscriptions, Channel: "Card"},
		{Name: "Spotify", Category: models.CategorySubscriptions, Channel: "Card"},
		{Name: "Worldlink Internet Bill", Category: models.CategorySubscriptions, Channel: "eSewa"},
		{Name: "Ncell Recharge", Category: models.CategorySubscriptions, Channel: "Khalti"},

		// Travel
		{Name: "Pathao Ride", Category: models.CategoryTravel, Channel: "Khalti"},
		{Name: "inDrive", Category: models.CategoryTravel, Channel: "Cash"},
		{Name: "Buddha Air Ticket", Category: models.CategoryTravel, Channel: "Card"},
		{Name: "Sajha Yatayat", Category: models.CategoryTravel, Channel: "Fonepay"},

		// Entertainment
		{Name: "QFX Cinemas", Category: models.CategoryEntertainment, Channel: "Khalti"},
		{Name: "Big Movies", Category: models.CategoryEntertainment, Channel: "eSewa"},

		// Personal Care
		{Name: "Nepal Pharmacy", Category: models.CategoryPersonalCare, Channel: "POS"},
		{Name: "Hairworld Salon", Category: models.CategoryPersonalCare, Channel: "Fonepay"},

		// Banking & Finance
		{Name: "ATM Cash Withdrawal", Category: models.CategoryBanking, Channel: "ATM"},
		{Name: "Insurance Premium", Category: models.CategoryBanking, Channel: "Bank"},

		// Education
		{Name: "Udemy", Category: models.CategoryEducation, Channel: "Card"},
		{Name: "Kings College Tuition", Category: models.CategoryEducation, Channel: "Bank"},

		// others
		{Name: "Fund Transfer to Friend", Category: models.CategoryOthers, Channel: "Mobile Banking"},
		{Name: "Local Shop", Category: models.CategoryOthers, Channel: "Fonepay"},
	}
}

// GetMerchantPool returns the merchant pool
func (g *historyGenerator) GetMerchantPool() []models.MerchantInfo {
	return g.merchantPool
}

// SelectRandomMerchant picks a merchant of category, or any merchant when the
// category has none.
func (g *historyGenerator) SelectRandomMerchant(category string) models.MerchantInfo {
	var candidates []models.MerchantInfo
	for _, m := range g.merchantPool {
		if m.Category == category {
			candidates = append(candidates, m)
		}
	}
	if len(candidates) == 0 {
		return g.merchantPool[g.rng.Intn(len(g.merchantPool))]
	}
	return candidates[g.rng.Intn(len(candidates))]
}

// GenerateAmount generates a realistic NPR amount based on category
func (g *historyGenerator) GenerateAmount(category string) float64 {
	minValue, maxValue := g.getAmountRange(category)
	amount := minValue + g.rng.Float64()*(maxValue-minValue)
	return decimal.NewFromFloat(amount).Round(2).InexactFloat64()
}

func (g *historyGenerator) getAmountRange(category string) (float64, float64) {
	ranges := map[string][2]float64{
		models.CategoryGroceries:     {800, 6500},
		models.CategoryDining:        {350, 2500},
		models.CategoryTravel:        {150, 1200},
		models.CategorySubscriptions: {300, 1600},
		models.CategoryEntertainment: {500, 1800},
		models.CategoryPersonalCare:  {400, 3000},
		models.CategoryBanking:       {2000, 10000},
		models.CategoryEducation:     {1500, 12000},
		models.CategoryIncome:        {85000, 95000},
	}

	if r, exists := ranges[category]; exists {
		return r[0], r[1]
	}
	return 200, 2000
}

// GenerateTimestamp generates a random timestamp during business hours
// within [startDate, endDate).
func (g *historyGenerator) GenerateTimestamp(startDate, endDate time.Time) time.Time {
	diff := endDate.Sub(startDate)
	if diff <= 0 {
		return startDate
	}
	timestamp := startDate.Add(time.Duration(g.rng.Int63n(int64(diff))))

	hour := businessHoursStart + g.rng.Intn(businessHoursEnd-businessHoursStart)
	minute := g.rng.Intn(60)
	second := g.rng.Intn(60)

	return time.Date(
		timestamp.Year(),
		timestamp.Month(),
		timestamp.Day(),
		hour,
		minute,
		second,
		0,
		time.UTC,
	)
}

// GenerateMonths returns months of categorized history ending with end's
// month, sorted by date. Every month carries a salary credit, the monthly
// subscriptions and a random number of purchases per spending category.
func (g *historyGenerator) GenerateMonths(userID uuid.UUID, end time.Time, months int) []models.Transaction {
	if months <= 0 {
		return nil
	}

	first := time.Date(end.Year(), end.Month()-time.Month(months-1), 1, 0, 0, 0, 0, time.UTC)
	transactions := make([]models.Transaction, 0, months*40)

	for i := 0; i < months; i++ {
		monthStart := first.AddDate(0, i, 0)
		monthEnd := monthStart.AddDate(0, 1, 0)

		transactions = append(transactions, g.salary(userID, monthStart))
		transactions = append(transactions, g.subscriptions(userID, monthStart)...)

		for _, category := range models.SpendingCategories() {
			spread, ok := purchasesPerMonth[category]
			if !ok {
				continue
			}
			count := spread[0]
			if spread[1] > 0 {
				count += g.rng.Intn(spread[1] + 1)
			}
			for n := 0; n < count; n++ {
				merchant := g.SelectRandomMerchant(category)
				transactions = append(transactions, g.debit(userID, merchant, g.GenerateTimestamp(monthStart, monthEnd), g.GenerateAmount(category)))
			}
		}
	}

	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].OccurredAt.Before(transactions[j].OccurredAt)
	})

	return transactions
}

func (g *historyGenerator) salary(userID uuid.UUID, monthStart time.Time) models.Transaction {
	occurred := time.Date(monthStart.Year(), monthStart.Month(), salaryDay, salaryHour, 0, 0, 0, time.UTC)
	return models.Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		Reference:   models.GenerateTransactionReference(),
		OccurredAt:  occurred,
		Description: "Salary Credit",
		Debit:       decimal.Zero,
		Credit:      decimal.NewFromFloat(g.GenerateAmount(models.CategoryIncome)),
		Channel:     "Bank",
		Category:    models.CategoryIncome,
	}
}

func (g *historyGenerator) subscriptions(userID uuid.UUID, monthStart time.Time) []models.Transaction {
	occurred := time.Date(monthStart.Year(), monthStart.Month(), subscriptionDay, salaryHour, 30, 0, 0, time.UTC)

	var out []models.Transaction
	for _, merchant := range g.merchantPool {
		if merchant.Category != models.CategorySubscriptions {
			continue
		}
		out = append(out, g.debit(userID, merchant, occurred, g.GenerateAmount(models.CategorySubscriptions)))
	}
	return out
}

func (g *historyGenerator) debit(userID uuid.UUID, merchant models.MerchantInfo, occurred time.Time, amount float64) models.Transaction {
	return models.Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		Reference:   models.GenerateTransactionReference(),
		OccurredAt:  occurred,
		Description: merchant.Name,
		Debit:       decimal.NewFromFloat(amount),
		Credit:      decimal.Zero,
		Channel:     merchant.Channel,
		Category:    merchant.Category,
	}
}
