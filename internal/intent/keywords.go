package intent

import "fjacquet/financas/internal/models"

// KeywordSource supplies keyword overrides, typically from a YAML file.
type KeywordSource interface {
	LoadKeywords() (models.KeywordConfig, error)
}

// DefaultKeywords returns the built-in word lists for free-text detection.
func DefaultKeywords() models.KeywordConfig {
	return models.KeywordConfig{
		Expense:     []string{"gastei", "paguei", "comprei", "saiu"},
		Income:      []string{"recebi", "caiu", "entrou", "ganhei", "salário", "salario"},
		Credit:      []string{"creditaram", "creditou", "caiu", "recebi", "chegou"},
		MealVoucher: []string{"vr", "vale refeição", "vale refeicao", "vale-refeição"},
		FoodVoucher: []string{"va", "vale alimentação", "vale alimentacao", "vale-alimentação"},
		StopWords: []string{
			"gastei", "usei", "paguei", "comprei", "recebi", "foi",
			"de", "do", "da", "dos", "das", "no", "na", "nos", "nas", "em",
			"com", "por", "para", "pra", "pro", "ao",
			"r$", "reais", "real",
		},
	}
}

// MergeKeywords overlays every non-empty list of override on base.
func MergeKeywords(base, override models.KeywordConfig) models.KeywordConfig {
	pick := func(b, o []string) []string {
		if len(o) > 0 {
			return o
		}
		return b
	}
	return models.KeywordConfig{
		Expense:     pick(base.Expense, override.Expense),
		Income:      pick(base.Income, override.Income),
		Credit:      pick(base.Credit, override.Credit),
		MealVoucher: pick(base.MealVoucher, override.MealVoucher),
		FoodVoucher: pick(base.FoodVoucher, override.FoodVoucher),
		StopWords:   pick(base.StopWords, override.StopWords),
	}
}
