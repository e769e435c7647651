package bootstrap

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexstar1995/vending-machine-application/internal/pkg/database"
)

type Config struct {
	HttpPort     string
	DbSettings   database.PostgresSettings
	JwtSecret    string
	AllowedCoins []uint32
}

// ParseAllowedCoins parses a comma-separated denomination list, e.g.
// "5,10,20,50,100".
func ParseAllowedCoins(value string) ([]uint32, error) {
	parts := strings.Split(value, ",")
	coins := make([]uint32, 0, len(parts))

	for _, part := range parts {
		coin, err := strconv.ParseUint(strings.TrimSpace(part), 10, 32)
		if err != nil || coin == 0 {
			return nil, fmt.Errorf("invalid coin denomination %q", part)
		}
		coins = append(coins, uint32(coin))
	}

	return coins, nil
}
