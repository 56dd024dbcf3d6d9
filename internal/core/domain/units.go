package domain

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// One XMR is 10^12 atomic units (piconero).
const AtomicUnitsPerXMR = 1_000_000_000_000

var atomicScale = decimal.New(1, 12)

// XMRToAtomic converts a major-unit amount to atomic units, rounding to the
// nearest integer. Decimal arithmetic keeps amounts like 0.1 exact instead of
// inheriting float64 representation error.
func XMRToAtomic(xmr float64) uint64 {
	atomic := decimal.NewFromFloat(xmr).Mul(atomicScale).Round(0)
	return uint64(atomic.IntPart())
}

// AtomicToXMR converts atomic units to the major display unit. The value
// goes through big.Int so the upper half of the uint64 range (summed sweep
// totals can exceed math.MaxInt64) does not wrap negative.
func AtomicToXMR(atomic uint64) float64 {
	xmr, _ := decimal.NewFromBigInt(new(big.Int).SetUint64(atomic), -12).Float64()
	return xmr
}
