package wallet

import "context"

type Repository interface {
	// GetOrCreate is the lazy-upsert wallet access used by wallet endpoints
	// and credit paths. The booking debit path never creates wallets.
	GetOrCreate(ctx context.Context, userID int) (*Wallet, error)
	GetByUser(ctx context.Context, userID int) (*Wallet, error)
	// Debit subtracts a positive amount; fails with ErrWalletNotFound when no
	// wallet exists and ErrInsufficientBalance when the balance would go
	// negative.
	Debit(ctx context.Context, userID int, amountPaise int64, txType, reference string) (*Wallet, error)
	// Credit adds a positive amount, creating the wallet with a zero balance
	// when absent.
	Credit(ctx context.Context, userID int, amountPaise int64, txType, reference string) (*Wallet, error)
	Transactions(ctx context.Context, userID, limit, offset int) ([]Transaction, error)
	// TotalBalance sums every wallet's balance, for the admin summary.
	TotalBalance(ctx context.Context) (int64, error)
}
