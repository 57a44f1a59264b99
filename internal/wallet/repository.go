package wallet

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/jsaurabh334/PanditJii/internal/metrics"
)

var (
	ErrWalletNotFound      = errors.New("wallet not found")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidAmount       = errors.New("amount must be positive")
)

const walletColumns = "id, user_id, balance_paise, created_at, updated_at"

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetOrCreate(ctx context.Context, userID int) (*Wallet, error) {
	w := &Wallet{}
	err := r.db.GetContext(ctx, w, `SELECT `+walletColumns+` FROM wallets WHERE user_id = $1`, userID)
	if err == nil {
		return w, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	err = r.db.QueryRowxContext(ctx,
		`INSERT INTO wallets (user_id)
		 VALUES ($1)
		 RETURNING `+walletColumns,
		userID,
	).StructScan(w)
	if err != nil {
		return nil, err
	}

	return w, nil
}

func (r *repository) GetByUser(ctx context.Context, userID int) (*Wallet, error) {
	w := &Wallet{}
	err := r.db.GetContext(ctx, w, `SELECT `+walletColumns+` FROM wallets WHERE user_id = $1`, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrWalletNotFound
		}
		return nil, err
	}
	return w, nil
}

func (r *repository) Debit(ctx context.Context, userID int, amountPaise int64, txType, reference string) (*Wallet, error) {
	if amountPaise < 0 {
		return nil, ErrInvalidAmount
	}
	return r.settle(ctx, userID, -amountPaise, txType, reference, false)
}

func (r *repository) Credit(ctx context.Context, userID int, amountPaise int64, txType, reference string) (*Wallet, error) {
	if amountPaise < 0 {
		return nil, ErrInvalidAmount
	}
	return r.settle(ctx, userID, amountPaise, txType, reference, true)
}

// settle applies a signed balance change and appends the matching ledger row
// inside one transaction, row-locking the wallet so concurrent settlements on
// the same user serialize.
func (r *repository) settle(ctx context.Context, userID int, deltaPaise int64, txType, reference string, createIfMissing bool) (*Wallet, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var w Wallet
	err = tx.QueryRowxContext(ctx,
		`SELECT `+walletColumns+`
		 FROM wallets
		 WHERE user_id = $1
		 FOR UPDATE`,
		userID,
	).StructScan(&w)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		if !createIfMissing {
			return nil, ErrWalletNotFound
		}
		err = tx.QueryRowxContext(ctx,
			`INSERT INTO wallets (user_id)
			 VALUES ($1)
			 RETURNING `+walletColumns,
			userID,
		).StructScan(&w)
		if err != nil {
			return nil, err
		}
	}

	newBalance := w.BalancePaise + deltaPaise
	if newBalance < 0 {
		return nil, ErrInsufficientBalance
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE wallets
		 SET balance_paise = $1, updated_at = NOW()
		 WHERE id = $2`,
		newBalance, w.ID,
	)
	if err != nil {
		return nil, err
	}

	amount := deltaPaise
	if amount < 0 {
		amount = -amount
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO wallet_transactions (wallet_id, type, amount_paise, reference, balance_after)
		 VALUES ($1, $2, $3, $4, $5)`,
		w.ID, txType, amount, reference, newBalance,
	)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	metrics.RecordWalletTransaction(txType)
	w.BalancePaise = newBalance
	return &w, nil
}

func (r *repository) TotalBalance(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.GetContext(ctx, &total, `SELECT COALESCE(SUM(balance_paise), 0) FROM wallets`)
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (r *repository) Transactions(ctx context.Context, userID, limit, offset int) ([]Transaction, error) {
	if limit <= 0 {
		limit = 50
	}

	var walletID int
	err := r.db.GetContext(ctx, &walletID, `SELECT id FROM wallets WHERE user_id = $1`, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []Transaction{}, nil
		}
		return nil, err
	}

	var txs []Transaction
	err = r.db.SelectContext(ctx, &txs, `
		SELECT id, wallet_id, type, amount_paise, reference, balance_after, created_at
		FROM wallet_transactions
		WHERE wallet_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, walletID, limit, offset)
	if err != nil {
		return nil, err
	}

	return txs, nil
}
