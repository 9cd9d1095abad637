package game

import (
	"github.com/charmbracelet/log"

	"github.com/ipvive/bridgerules/bridge"
)

// Director drives a single deal on behalf of a table, logging each
// submitted action and every stage transition. It is the seam between
// the pure deal state machine and the surrounding application.
type Director struct {
	deal   *Deal
	logger *log.Logger
}

// NewDirector creates a director for a fresh deal.
func NewDirector(logger *log.Logger) *Director {
	return &Director{
		deal:   NewDeal(),
		logger: logger,
	}
}

// NewDirectorFor adopts an existing deal, e.g. one restored from a record.
func NewDirectorFor(deal *Deal, logger *log.Logger) *Director {
	return &Director{deal: deal, logger: logger}
}

// Deal exposes the underlying deal for inspection and view derivation.
func (dir *Director) Deal() *Deal { return dir.deal }

// Start sets the dealer and opens the auction.
func (dir *Director) Start(dealer bridge.Seat) error {
	if err := dir.deal.SetDealer(dealer); err != nil {
		dir.logger.Error("Failed to start deal", "board", dir.deal.BoardName, "error", err)
		return err
	}
	dir.logger.Debug("Deal started",
		"board", dir.deal.BoardName,
		"table", dir.deal.TableName,
		"dealer", dealer)
	return nil
}

// Submit applies actions one at a time, logging each. It stops at the
// first action the rules reject and returns that error.
func (dir *Director) Submit(ids ...bridge.ActionID) error {
	for _, id := range ids {
		seat, _ := dir.deal.NextToAct()
		before := dir.deal.stage
		if err := dir.deal.Apply(id); err != nil {
			dir.logger.Error("Action rejected",
				"board", dir.deal.BoardName,
				"seat", seat,
				"action", id,
				"error", err)
			return err
		}
		action, _ := bridge.DecodeAction(id)
		dir.logger.Debug("Action applied",
			"board", dir.deal.BoardName,
			"seat", seat,
			"action", action.Token())
		if after := dir.deal.stage; after != before {
			dir.logStageChange(after)
		}
	}
	return nil
}

// Claim ends play with the declaring side asserting a trick total.
func (dir *Director) Claim(totalTricks int) error {
	if err := dir.deal.Claim(totalTricks); err != nil {
		dir.logger.Error("Claim rejected",
			"board", dir.deal.BoardName,
			"tricks", totalTricks,
			"error", err)
		return err
	}
	dir.logger.Info("Deal claimed",
		"board", dir.deal.BoardName,
		"tricks", totalTricks,
		"result", dir.deal.Result().Outcome())
	return nil
}

func (dir *Director) logStageChange(stage Stage) {
	switch stage {
	case StagePlay:
		bid, declarer, doubling, _ := dir.deal.Contract()
		dir.logger.Info("Bidding finished",
			"board", dir.deal.BoardName,
			"contract", bid,
			"declarer", declarer,
			"doubling", doubling)
	case StageScoring:
		if r := dir.deal.Result(); r != nil {
			dir.logger.Info("Deal finished",
				"board", dir.deal.BoardName,
				"passedOut", r.PassedOut,
				"outcome", r.Outcome())
		}
	}
}
