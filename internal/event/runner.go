package event

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/ipvive/bridgerules/bridge"
	"github.com/ipvive/bridgerules/internal/game"
	"github.com/ipvive/bridgerules/internal/score"
)

// PlayedBoard is one board played at every table of the event. Deals is
// indexed like Config.Tables; a nil entry means that table has not
// finished the board.
type PlayedBoard struct {
	BoardName     string
	Vulnerability bridge.Vulnerability
	Deals         []*game.Deal
}

// BoardResult is the scored outcome of one board: per-table comparison
// scores, indexed like the board's Deals.
type BoardResult struct {
	BoardName   string
	Comparisons []int
	ScoredAt    time.Time
}

// Runner scores a duplicate event. Boards are independent of each other,
// so scoring fans out one worker per board.
type Runner struct {
	cfg    *Config
	clock  quartz.Clock
	logger *log.Logger
}

// NewRunner creates an event runner.
func NewRunner(cfg *Config, clock quartz.Clock, logger *log.Logger) *Runner {
	return &Runner{cfg: cfg, clock: clock, logger: logger}
}

// DealBoards produces the event's boards for one table, with dealer and
// vulnerability following the standard duplicate rotation and the
// table's players seated.
func (r *Runner) DealBoards(table TableConfig) ([]*game.Deal, error) {
	scoring, err := r.cfg.ScoringMethod()
	if err != nil {
		return nil, err
	}
	boards := make([]*game.Deal, 0, r.cfg.Event.Boards)
	for n := 1; n <= r.cfg.Event.Boards; n++ {
		d := game.NewDeal()
		if err := d.SetBoardNumber(n); err != nil {
			return nil, err
		}
		d.TableName = table.Name
		d.Players = table.Players()
		d.Scoring = scoring
		boards = append(boards, d)
	}
	return boards, nil
}

// ScoreEvent scores every board of the event by comparison across
// tables. Results are indexed like the input boards.
func (r *Runner) ScoreEvent(ctx context.Context, boards []PlayedBoard) ([]BoardResult, error) {
	scoring, err := r.cfg.ScoringMethod()
	if err != nil {
		return nil, err
	}

	results := make([]BoardResult, len(boards))
	g, ctx := errgroup.WithContext(ctx)
	for i, board := range boards {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := r.scoreBoard(board, scoring)
			if err != nil {
				return fmt.Errorf("board %s: %w", board.BoardName, err)
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *Runner) scoreBoard(board PlayedBoard, scoring bridge.Scoring) (BoardResult, error) {
	tableResults := make([]*bridge.Result, len(board.Deals))
	for i, d := range board.Deals {
		if d != nil {
			tableResults[i] = d.Result()
		}
	}
	comparisons, err := score.BoardComparisons(tableResults, board.Vulnerability, scoring)
	if err != nil {
		return BoardResult{}, err
	}
	for i, cmp := range comparisons {
		table := fmt.Sprintf("table %d", i)
		if i < len(r.cfg.Tables) {
			table = r.cfg.Tables[i].Name
		}
		r.logger.Debug("Scored table",
			"board", board.BoardName,
			"table", table,
			"comparison", cmp)
	}
	r.logger.Info("Scored board", "board", board.BoardName, "tables", len(board.Deals))
	return BoardResult{
		BoardName:   board.BoardName,
		Comparisons: comparisons,
		ScoredAt:    r.clock.Now(),
	}, nil
}

// Totals sums each table's comparison scores across every scored board.
// The returned slice is indexed like Config.Tables.
func (r *Runner) Totals(results []BoardResult) []int {
	totals := make([]int, len(r.cfg.Tables))
	for _, result := range results {
		for i, cmp := range result.Comparisons {
			if i < len(totals) {
				totals[i] += cmp
			}
		}
	}
	return totals
}
