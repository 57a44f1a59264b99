package wallet

import "time"

const (
	TypeDeposit        = "deposit"
	TypeWithdrawal     = "withdrawal"
	TypeBookingPayment = "booking_payment"
	TypeRefund         = "refund"
	TypeEarning        = "earning"
)

// Wallet balances are integer minor units (paise). The ledger is the source
// of truth for history; balance_paise is the running total.
type Wallet struct {
	ID           int       `db:"id" json:"id"`
	UserID       int       `db:"user_id" json:"user_id"`
	BalancePaise int64     `db:"balance_paise" json:"balance_paise"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

type Transaction struct {
	ID          int       `db:"id" json:"id"`
	WalletID    int       `db:"wallet_id" json:"wallet_id"`
	Type        string    `db:"type" json:"type"`
	AmountPaise int64     `db:"amount_paise" json:"amount_paise"`
	Reference   string    `db:"reference" json:"reference,omitempty"`
	// BalanceAfter snapshots the wallet balance after this entry was applied.
	BalanceAfter int64     `db:"balance_after" json:"balance_after"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
