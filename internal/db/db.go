package db

import (
	"database/sql"
	"fmt"

	"coin-board/internal/config"

	_ "github.com/lib/pq"
)

type CoinRow struct {
	ID     string
	Value  float64
	Sprite string
}

type BoardDB interface {
	BeginTx() (*sql.Tx, error)
	InsertDonation(tx *sql.Tx, donor string, amount, allocated float64) error
	InsertCoin(tx *sql.Tx, id string, value float64, sprite string) error
	DeleteCoin(id string) (bool, error)
	DeleteAllCoins(tx *sql.Tx) error
	GetCoins() ([]CoinRow, error)
	GetDonationTotal() (float64, error)
}

type AuthDB interface {
	GetAdminAuthData(username string) (int, string, error)
}

func Connect(cfg *config.Config) (*sql.DB, error) {
	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DatabaseHost,
		cfg.DatabasePort,
		cfg.DatabaseUser,
		cfg.DatabasePassword,
		cfg.DatabaseName,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}
