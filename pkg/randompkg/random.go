// Package randompkg provides functionality for generating random applications common items.
package randompkg

import (
	"crypto/rand"
	"math/big"
	"strings"

	"github.com/go-petr/balance-ledger/pkg/amountpkg"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// Intn is a shortcut for generating a random integer between 0 and max using crypto/rand.
func Intn(max int) int64 {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		panic(err)
	}

	return nBig.Int64()
}

// IntBetween generates a random integer in [min, max].
func IntBetween(min, max int64) int64 {
	return min + Intn(int(max-min+1))
}

// String generates a random string of length n.
func String(n int) string {
	var sb strings.Builder

	k := len(alphabet)

	for i := 0; i < n; i++ {
		c := alphabet[Intn(k)]

		_ = sb.WriteByte(c) // The returned err is always nil.
	}

	return sb.String()
}

// Identity generates a random account script hash.
func Identity() util.Uint160 {
	var u util.Uint160

	if _, err := rand.Read(u[:]); err != nil {
		panic(err)
	}

	return u
}

// Amount generates a random amount in [min, max].
func Amount(min, max int64) amountpkg.Int128 {
	return amountpkg.FromInt64(IntBetween(min, max))
}
