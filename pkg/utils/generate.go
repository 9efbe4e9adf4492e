package utils

import (
	"crypto/rand"
	"fmt"
	"math"
	"math/big"
	"time"

	"github.com/google/uuid"
)

// ==================== ORDER ID ====================

// GenerateOrderID creates an order ID of the form ORD-<millis>-<random>.
// The random part is a crypto/rand 63-bit integer, so IDs stay unique
// under concurrent and fast-sequential order placement.
func GenerateOrderID() string {
	now := time.Now().UnixMilli()

	n, err := rand.Int(rand.Reader, big.NewInt(math.MaxInt64))
	if err != nil {
		// crypto/rand only fails if the OS entropy source is broken
		n = big.NewInt(now)
	}

	return fmt.Sprintf("ORD-%d-%d", now, n.Int64())
}

// ==================== TOKEN ====================

// GenerateToken returns an opaque login token. No session record is
// kept for it server-side.
func GenerateToken() string {
	return uuid.New().String()
}
