package models

// KeywordConfig holds the word lists the intent classifier uses for free-text
// detection. Loaded from YAML; empty lists fall back to the built-in defaults.
type KeywordConfig struct {
	Expense     []string `yaml:"expense"`
	Income      []string `yaml:"income"`
	Credit      []string `yaml:"credit"`
	MealVoucher []string `yaml:"meal_voucher"`
	FoodVoucher []string `yaml:"food_voucher"`
	StopWords   []string `yaml:"stop_words"`
}
