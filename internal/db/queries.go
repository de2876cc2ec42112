package db

import (
	"database/sql"
	"fmt"
)

type boardDBImplementation struct {
	db *sql.DB
}

func NewBoardDB(dbConn *sql.DB) BoardDB {
	return &boardDBImplementation{
		db: dbConn,
	}
}

type authDBImplementation struct {
	db *sql.DB
}

func NewAuthDB(dbConn *sql.DB) AuthDB {
	return &authDBImplementation{
		db: dbConn,
	}
}

func (a *authDBImplementation) GetAdminAuthData(username string) (int, string, error) {
	var (
		id           int
		passwordHash string
	)
	err := a.db.QueryRow("SELECT id, password_hash FROM admins WHERE username=$1", username).
		Scan(&id, &passwordHash)
	if err != nil {
		return 0, "", fmt.Errorf("failed to get admin auth data for '%s': %w", username, err)
	}
	return id, passwordHash, nil
}

func (b *boardDBImplementation) BeginTx() (*sql.Tx, error) {
	tx, err := b.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

func (b *boardDBImplementation) InsertDonation(tx *sql.Tx, donor string, amount, allocated float64) error {
	_, err := tx.Exec("INSERT INTO donations (donor, amount, allocated) VALUES ($1, $2, $3)",
		donor, amount, allocated)
	if err != nil {
		return fmt.Errorf("failed to insert donation: %w", err)
	}
	return nil
}

func (b *boardDBImplementation) InsertCoin(tx *sql.Tx, id string, value float64, sprite string) error {
	_, err := tx.Exec("INSERT INTO board_coins (id, value, sprite) VALUES ($1, $2, $3)",
		id, value, sprite)
	if err != nil {
		return fmt.Errorf("failed to insert coin: %w", err)
	}
	return nil
}

func (b *boardDBImplementation) DeleteCoin(id string) (bool, error) {
	res, err := b.db.Exec("DELETE FROM board_coins WHERE id=$1", id)
	if err != nil {
		return false, fmt.Errorf("failed to delete coin %s: %w", id, err)
	}
	rowsAffected, _ := res.RowsAffected()
	return rowsAffected > 0, nil
}

func (b *boardDBImplementation) DeleteAllCoins(tx *sql.Tx) error {
	_, err := tx.Exec("DELETE FROM board_coins")
	if err != nil {
		return fmt.Errorf("failed to delete coins: %w", err)
	}
	return nil
}

func (b *boardDBImplementation) GetCoins() ([]CoinRow, error) {
	rows, err := b.db.Query("SELECT id, value, sprite FROM board_coins ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("failed to query coins: %w", err)
	}
	defer rows.Close()

	var coins []CoinRow
	for rows.Next() {
		var c CoinRow
		if e2 := rows.Scan(&c.ID, &c.Value, &c.Sprite); e2 != nil {
			continue
		}
		coins = append(coins, c)
	}
	return coins, nil
}

func (b *boardDBImplementation) GetDonationTotal() (float64, error) {
	var total float64
	err := b.db.QueryRow("SELECT COALESCE(SUM(amount), 0) FROM donations").Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to get donation total: %w", err)
	}
	return total, nil
}
