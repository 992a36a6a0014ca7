package intent

import (
	"strings"

	"fjacquet/financas/internal/models"
	"fjacquet/financas/internal/textutils"
)

// Free-text rules look for keywords and then ask the extractor for an
// amount. When the keywords match but no amount is found the rule reports
// no match and evaluation falls through to the next rule; "paguei o
// aluguel" with no number is therefore not an error but, most likely,
// unrecognized.

type freeText struct {
	kw        models.KeywordConfig
	extractor *textutils.Extractor
	// voucherExtractor also drops the voucher keywords from descriptions
	voucherExtractor *textutils.Extractor
	// incomeExtractor also drops the "entrada" command word
	incomeExtractor *textutils.Extractor
}

func newFreeText(kw models.KeywordConfig) *freeText {
	// expense and credit verbs never belong in a description; income words
	// are left alone since "salário" is a useful one
	stops := concat(kw.StopWords, kw.Expense, kw.Credit)
	voucherStops := concat(stops, kw.MealVoucher, kw.FoodVoucher, []string{"usei", "o", "a"})
	return &freeText{
		kw:               kw,
		extractor:        textutils.NewExtractor(stops),
		voucherExtractor: textutils.NewExtractor(voucherStops),
		incomeExtractor:  textutils.NewExtractor(concat(stops, []string{"entrada"})),
	}
}

func concat(lists ...[]string) []string {
	var out []string
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}

func (f *freeText) mentionsVoucher(text string) bool {
	return textutils.ContainsAny(text, f.kw.MealVoucher) || textutils.ContainsAny(text, f.kw.FoodVoucher)
}

// expense: an expense verb and no voucher keyword.
func (f *freeText) expense() Rule {
	return Rule{
		Name: "freetext_expense",
		Match: func(in Input) (Operation, bool) {
			if !textutils.ContainsAny(in.Text, f.kw.Expense) || f.mentionsVoucher(in.Text) {
				return Operation{}, false
			}
			amount, description, found := f.extractor.Extract(in.Raw)
			if !found {
				return Operation{}, false
			}
			return Operation{Kind: RecordExpense, Amount: amount, Description: description}, true
		},
	}
}

// voucher: a voucher keyword; a credit word or a literal "+" makes it a
// credit, anything else a debit.
func (f *freeText) voucher(v models.Voucher, keywords []string) Rule {
	return Rule{
		Name: "freetext_" + string(v),
		Match: func(in Input) (Operation, bool) {
			if !textutils.ContainsAny(in.Text, keywords) {
				return Operation{}, false
			}
			amount, description, found := f.voucherExtractor.Extract(in.Raw)
			if !found {
				return Operation{}, false
			}
			if textutils.ContainsAny(in.Text, f.kw.Credit) || strings.Contains(in.Text, "+") {
				return Operation{Kind: RecordVoucherCredit, Voucher: v, Amount: amount}, true
			}
			if description == models.DescriptionNone {
				description = v.DefaultDescription()
			}
			return Operation{Kind: RecordVoucherDebit, Voucher: v, Amount: amount, Description: description}, true
		},
	}
}

// income: an income word. Earlier rules already claimed voucher messages.
func (f *freeText) income() Rule {
	return Rule{
		Name: "freetext_income",
		Match: func(in Input) (Operation, bool) {
			if !textutils.ContainsAny(in.Text, f.kw.Income) {
				return Operation{}, false
			}
			amount, description, found := f.incomeExtractor.Extract(in.Raw)
			if !found {
				return Operation{}, false
			}
			return Operation{Kind: RecordIncome, Amount: amount, Description: description}, true
		},
	}
}
