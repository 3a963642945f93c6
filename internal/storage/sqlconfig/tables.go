// Package sqlconfig holds what the table packages share about the schema.
package sqlconfig

const (
	AccountsTable     = "accounts"
	TransactionsTable = "transactions"
	BudgetsTable      = "budgets"
	UsersTable        = "users"
)
