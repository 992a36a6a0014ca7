package models

// TransactionKind identifies what a transaction did to which balance. The
// string values are the ones persisted in the data file.
type TransactionKind string

const (
	KindExpense            TransactionKind = "gasto"
	KindIncome             TransactionKind = "entrada"
	KindMealVoucherExpense TransactionKind = "gasto_vr"
	KindMealVoucherCredit  TransactionKind = "credito_vr"
	KindFoodVoucherExpense TransactionKind = "gasto_va"
	KindFoodVoucherCredit  TransactionKind = "credito_va"
)

// Category groups transactions for reporting.
type Category string

const (
	CategoryGeneral     Category = "geral"
	CategoryMealVoucher Category = "vr"
	CategoryFoodVoucher Category = "va"
	CategoryFixedBill   Category = "conta_fixa"
)

// Voucher selects one of the restricted-use balances.
type Voucher string

const (
	MealVoucher Voucher = "vr"
	FoodVoucher Voucher = "va"
)

// Default texts used when a message carries no description of its own.
const (
	DescriptionNone         = "Sem descrição"
	DescriptionMeal         = "Refeição"
	DescriptionFood         = "Alimentação"
	DescriptionIncome       = "Entrada"
	DescriptionFixedBill    = "Conta fixa"
	FixedBillPaymentPrefix  = "[CONTA FIXA] "
	DefaultUserName         = "Principal"
	CurrencySymbol          = "R$"
	PermissionDataFile      = 0600
	PermissionDataDirectory = 0750
	PermissionExportFile    = 0644
)
