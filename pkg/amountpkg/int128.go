// Package amountpkg provides the signed 128-bit integer used for ledger amounts.
//
// All arithmetic is checked: results outside [Min, Max] are reported as
// ErrOverflow instead of wrapping.
package amountpkg

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"
	"math/bits"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// ErrOverflow indicates that a value does not fit into the signed 128-bit range.
	ErrOverflow = errors.New("amount overflows signed 128-bit range")
	// ErrInvalid indicates that a value is not an integer.
	ErrInvalid = errors.New("amount is not a valid integer")
)

// maxInputLen bounds textual input; Min needs 40 characters.
const maxInputLen = 64

// Int128 is a two's complement signed 128-bit integer. The zero value is 0.
type Int128 struct {
	hi int64
	lo uint64
}

var (
	// Zero is the 0 amount.
	Zero = Int128{}
	// Max is the largest representable amount, 2^127 - 1.
	Max = Int128{hi: math.MaxInt64, lo: math.MaxUint64}
	// Min is the smallest representable amount, -2^127.
	Min = Int128{hi: math.MinInt64}

	maxBig = Max.Big()
	minBig = Min.Big()
	mask64 = new(big.Int).SetUint64(math.MaxUint64)
)

// FromInt64 returns v as Int128.
func FromInt64(v int64) Int128 {
	return Int128{hi: v >> 63, lo: uint64(v)}
}

// FromBig converts x to Int128, failing with ErrOverflow when it is out of range.
func FromBig(x *big.Int) (Int128, error) {
	if x.Cmp(minBig) < 0 || x.Cmp(maxBig) > 0 {
		return Int128{}, ErrOverflow
	}

	lo := new(big.Int).And(x, mask64).Uint64()
	hi := new(big.Int).Rsh(x, 64).Int64()

	return Int128{hi: hi, lo: lo}, nil
}

// Parse parses a decimal integer such as "-1250", "1e3" or "100.00".
// Fractional values are rejected with ErrInvalid, out of range values with ErrOverflow.
func Parse(s string) (Int128, error) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > maxInputLen {
		return Int128{}, ErrInvalid
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return Int128{}, ErrInvalid
	}

	if d.IsZero() {
		return Zero, nil
	}

	// A non-zero coefficient scaled by 10^39 is already beyond 2^127.
	if d.Exponent() > 38 {
		return Int128{}, ErrOverflow
	}

	if d.Exponent() < -maxInputLen || !d.Equal(d.Truncate(0)) {
		return Int128{}, ErrInvalid
	}

	return FromBig(d.BigInt())
}

// MustParse is like Parse but panics on error. It is meant for constants and tests.
func MustParse(s string) Int128 {
	v, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("amountpkg: MustParse(%q): %v", s, err))
	}

	return v
}

// Add returns a + b.
func (a Int128) Add(b Int128) (Int128, error) {
	lo, carry := bits.Add64(a.lo, b.lo, 0)
	hi, _ := bits.Add64(uint64(a.hi), uint64(b.hi), carry)
	r := Int128{hi: int64(hi), lo: lo}

	// Overflow is only possible when both operands share a sign.
	if (a.hi < 0) == (b.hi < 0) && (r.hi < 0) != (a.hi < 0) {
		return Int128{}, ErrOverflow
	}

	return r, nil
}

// Sub returns a - b.
func (a Int128) Sub(b Int128) (Int128, error) {
	lo, borrow := bits.Sub64(a.lo, b.lo, 0)
	hi, _ := bits.Sub64(uint64(a.hi), uint64(b.hi), borrow)
	r := Int128{hi: int64(hi), lo: lo}

	if (a.hi < 0) != (b.hi < 0) && (r.hi < 0) != (a.hi < 0) {
		return Int128{}, ErrOverflow
	}

	return r, nil
}

// Neg returns -a. Only Min cannot be negated.
func (a Int128) Neg() (Int128, error) {
	return Zero.Sub(a)
}

// Sign returns -1, 0 or +1 depending on the sign of a.
func (a Int128) Sign() int {
	switch {
	case a.hi < 0:
		return -1
	case a.hi == 0 && a.lo == 0:
		return 0
	default:
		return 1
	}
}

// Cmp compares a and b and returns -1, 0 or +1.
func (a Int128) Cmp(b Int128) int {
	switch {
	case a.hi < b.hi:
		return -1
	case a.hi > b.hi:
		return 1
	case a.lo < b.lo:
		return -1
	case a.lo > b.lo:
		return 1
	}

	return 0
}

// Equal reports whether a and b are the same value.
func (a Int128) Equal(b Int128) bool {
	return a == b
}

// Big returns a as a newly allocated big.Int.
func (a Int128) Big() *big.Int {
	b := big.NewInt(a.hi)
	b.Lsh(b, 64)

	return b.Add(b, new(big.Int).SetUint64(a.lo))
}

// String returns the base 10 representation of a.
func (a Int128) String() string {
	return a.Big().String()
}

// MarshalJSON encodes a as a JSON string; amounts exceed the safe integer range of JSON numbers.
func (a Int128) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON accepts both a JSON string and a bare JSON number.
func (a *Int128) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
	}

	v, err := Parse(s)
	if err != nil {
		return err
	}

	*a = v

	return nil
}

// Value implements driver.Valuer. Amounts are stored as NUMERIC.
func (a Int128) Value() (driver.Value, error) {
	return a.String(), nil
}

// Scan implements sql.Scanner.
func (a *Int128) Scan(src any) error {
	var s string

	switch v := src.(type) {
	case []byte:
		s = string(v)
	case string:
		s = v
	case int64:
		*a = FromInt64(v)
		return nil
	case nil:
		*a = Zero
		return nil
	default:
		return fmt.Errorf("amountpkg: cannot scan %T into Int128", src)
	}

	v, err := Parse(s)
	if err != nil {
		return err
	}

	*a = v

	return nil
}
