package game

import (
	"strconv"

	"github.com/ipvive/bridgerules/bridge"
)

// Duplicate boards cycle dealer and vulnerability in the standard
// 16-board pattern.
var (
	boardDealers = [4]bridge.Seat{bridge.North, bridge.East, bridge.South, bridge.West}

	boardVulnerabilities = [4]bridge.Vulnerability{
		bridge.VulnerableNone,
		bridge.VulnerableNS,
		bridge.VulnerableEW,
		bridge.VulnerableAll,
	}
)

// SetBoardNumber assigns the deal the dealer and vulnerability of board
// n (1-based) in the standard duplicate rotation.
func (d *Deal) SetBoardNumber(n int) error {
	if err := d.SetDealer(boardDealers[(n-1)%4]); err != nil {
		return err
	}
	d.Vulnerability = boardVulnerabilities[((n-1)+(n-1)/4)%4]
	d.BoardName = strconv.Itoa(n)
	return nil
}

// DistinctBoards returns the 16 boards that exhaust every combination of
// dealer and vulnerability.
func DistinctBoards() []*Deal {
	boards := make([]*Deal, 0, 16)
	for n := 1; n <= 16; n++ {
		d := NewDeal()
		if err := d.SetBoardNumber(n); err != nil {
			// A fresh deal always accepts a dealer.
			panic(err)
		}
		boards = append(boards, d)
	}
	return boards
}
