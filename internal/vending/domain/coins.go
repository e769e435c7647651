package domain

import (
	"fmt"
	"slices"
)

// CoinSet is the fixed set of accepted denominations, loaded once at startup.
// It is never mutated after creation; every operation that needs a different
// ordering works on a copy.
type CoinSet struct {
	coins []uint32
}

func NewCoinSet(coins []uint32) (CoinSet, error) {
	if len(coins) == 0 {
		return CoinSet{}, &InvalidInputError{Msg: "coin set must not be empty"}
	}

	sorted := make([]uint32, 0, len(coins))
	for _, coin := range coins {
		if coin == 0 {
			return CoinSet{}, &InvalidInputError{Msg: "coin denomination must be positive"}
		}

		if !slices.Contains(sorted, coin) {
			sorted = append(sorted, coin)
		}
	}

	slices.Sort(sorted)
	return CoinSet{coins: sorted}, nil
}

func (cs CoinSet) Contains(coin uint32) bool {
	return slices.Contains(cs.coins, coin)
}

func (cs CoinSet) Min() uint32 {
	return cs.coins[0]
}

// Descending returns a fresh copy sorted largest first, so the shared set is
// never reordered in place.
func (cs CoinSet) Descending() []uint32 {
	desc := slices.Clone(cs.coins)
	slices.Reverse(desc)
	return desc
}

func (cs CoinSet) String() string {
	return fmt.Sprintf("%v", cs.coins)
}

// MakeChange breaks amount into coins greedily, largest denomination first.
// Any residual smaller than the smallest denomination is dropped: there is no
// coin to represent it, so the amount is rounded down rather than rejected.
// The greedy strategy yields the minimal coin count only for canonical coin
// systems; for arbitrary denomination sets it is deterministic but not
// guaranteed optimal.
func MakeChange(amount uint32, coinSet CoinSet) []uint32 {
	change := make([]uint32, 0)

	for _, coin := range coinSet.Descending() {
		for amount >= coin {
			change = append(change, coin)
			amount -= coin
		}
	}

	return change
}
