package service

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"coin-board/internal/db"
	"coin-board/internal/denomination"
	"coin-board/pkg"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidAmount      = errors.New("donation amount must be positive")
	ErrCampaignNotRunning = errors.New("campaign is not running")
)

// DonationReceipt describes what a donation turned into on the board.
type DonationReceipt struct {
	Donor     string
	Amount    float64
	Allocated float64
	Remainder float64
	Coins     []denomination.IssuedCoin
}

type BoardInfo struct {
	TotalValue   float64
	DonatedTotal float64
	Coins        []denomination.IssuedCoin
}

type BoardService interface {
	Donate(donor string, amount float64) (DonationReceipt, error)

	CollectCoin(id uuid.UUID) (bool, error)

	ResetBoard() error

	BoardState() (BoardInfo, error)

	RestoreBoard() error
}

// boardService keeps the allocator's live-set and the board_coins table in
// step. The allocator itself is single-threaded, so every entry point takes
// the mutex.
type boardService struct {
	dbProv   db.BoardDB
	log      pkg.Logger
	campaign CampaignService

	mu        sync.Mutex
	allocator *denomination.Allocator
}

func NewBoardService(dbProv db.BoardDB, campaign CampaignService, allocator *denomination.Allocator, log pkg.Logger) BoardService {
	s := &boardService{
		dbProv:    dbProv,
		log:       log,
		campaign:  campaign,
		allocator: allocator,
	}
	allocator.OnCollected(func(c denomination.IssuedCoin) {
		log.Info("Coin collected", zap.String("coinID", c.ID.String()), zap.Float64("value", c.Value))
	})
	return s
}

func (s *boardService) Donate(donor string, amount float64) (DonationReceipt, error) {
	if amount <= 0 {
		return DonationReceipt{}, ErrInvalidAmount
	}
	if !s.campaign.IsRunning(time.Now()) {
		return DonationReceipt{}, ErrCampaignNotRunning
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	allocated := s.allocator.Allocate(amount)

	tx, err := s.dbProv.BeginTx()
	if err != nil {
		return DonationReceipt{}, fmt.Errorf("failed to begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var allocatedSum float64
	for _, d := range allocated {
		allocatedSum += d.Value
	}
	if err := s.dbProv.InsertDonation(tx, donor, amount, allocatedSum); err != nil {
		s.log.Error("failed to insert donation", zap.String("donor", donor), zap.Error(err))
		return DonationReceipt{}, err
	}

	issued := make([]denomination.IssuedCoin, 0, len(allocated))
	for _, d := range allocated {
		coin := s.allocator.Issue(d)
		if err := s.dbProv.InsertCoin(tx, coin.ID.String(), coin.Value, coin.Sprite); err != nil {
			s.log.Error("failed to insert coin", zap.String("coinID", coin.ID.String()), zap.Error(err))
			s.discard(issued, coin)
			return DonationReceipt{}, err
		}
		issued = append(issued, coin)
	}

	if err := tx.Commit(); err != nil {
		s.log.Error("failed to commit donation", zap.String("donor", donor), zap.Error(err))
		s.discard(issued)
		return DonationReceipt{}, err
	}

	s.log.Info("Donation processed",
		zap.String("donor", donor),
		zap.Float64("amount", amount),
		zap.Float64("allocated", allocatedSum),
		zap.Int("coins", len(issued)))

	return DonationReceipt{
		Donor:     donor,
		Amount:    amount,
		Allocated: allocatedSum,
		Remainder: amount - allocatedSum,
		Coins:     issued,
	}, nil
}

// discard unwinds issued coins whose persistence failed.
func (s *boardService) discard(issued []denomination.IssuedCoin, extra ...denomination.IssuedCoin) {
	for _, coin := range append(issued, extra...) {
		s.allocator.Discard(coin.ID)
	}
}

func (s *boardService) CollectCoin(id uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	collected := s.allocator.Collect(id)

	if _, err := s.dbProv.DeleteCoin(id.String()); err != nil {
		s.log.Error("failed to delete coin", zap.String("coinID", id.String()), zap.Error(err))
		return collected, err
	}
	return collected, nil
}

func (s *boardService) ResetBoard() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.dbProv.BeginTx()
	if err != nil {
		return fmt.Errorf("failed to begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := s.dbProv.DeleteAllCoins(tx); err != nil {
		s.log.Error("failed to clear board", zap.Error(err))
		return err
	}
	if err := tx.Commit(); err != nil {
		s.log.Error("failed to commit board reset", zap.Error(err))
		return err
	}

	s.allocator.Reset()
	s.log.Info("Board reset")
	return nil
}

func (s *boardService) BoardState() (BoardInfo, error) {
	donated, err := s.dbProv.GetDonationTotal()
	if err != nil {
		s.log.Error("failed to get donation total", zap.Error(err))
		return BoardInfo{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return BoardInfo{
		TotalValue:   s.allocator.TotalValue(),
		DonatedTotal: donated,
		Coins:        s.allocator.Live(),
	}, nil
}

// RestoreBoard reloads the persisted live-set at startup. Coin IDs are
// reassigned on restore, so the rows are rewritten to match.
func (s *boardService) RestoreBoard() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.dbProv.GetCoins()
	if err != nil {
		s.log.Error("failed to load persisted coins", zap.Error(err))
		return err
	}

	records := make([]denomination.Record, len(rows))
	for i, r := range rows {
		records[i] = denomination.Record{Value: r.Value}
	}
	if err := s.allocator.Restore(records); err != nil {
		s.log.Error("persisted coins do not match configured denominations", zap.Error(err))
		return err
	}

	tx, err := s.dbProv.BeginTx()
	if err != nil {
		return fmt.Errorf("failed to begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := s.dbProv.DeleteAllCoins(tx); err != nil {
		return err
	}
	for _, coin := range s.allocator.Live() {
		if err := s.dbProv.InsertCoin(tx, coin.ID.String(), coin.Value, coin.Sprite); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		s.log.Error("failed to commit board restore", zap.Error(err))
		return err
	}

	s.log.Info("Board restored",
		zap.Int("coins", len(rows)),
		zap.Float64("totalValue", s.allocator.TotalValue()))
	return nil
}
