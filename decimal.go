// Copyright (c) 2025 Neomantra Corp

package eventlog

import (
	"math/big"

	"github.com/cockroachdb/apd/v3"
)

// Decimal128 is a 16-byte big-endian two's-complement encoding of a
// fixed-scale decimal coefficient, matching Parquet's
// DecimalLogicalType(precision=38, scale) fixed-length-byte-array
// representation.
type Decimal128 [16]byte

var decimalContext = apd.BaseContext.WithPrecision(DecimalPrecision)

// EncodeDecimal rounds value to the given number of fractional digits
// using round-half-even (banker's rounding) exact base-10 arithmetic,
// then encodes the resulting integer coefficient as a Decimal128.
//
// math/big supplies the 128-bit two's-complement encoding step since
// no library in the retrieved example pack exposes int128 support;
// the rounding itself is delegated to apd so float64's binary
// representation never silently perturbs the stored coefficient.
func EncodeDecimal(value float64, scale int32) (Decimal128, error) {
	var d apd.Decimal
	if _, err := d.SetFloat64(value); err != nil {
		return Decimal128{}, newFormatError("decimal: cannot represent value: " + err.Error())
	}

	scaled := new(apd.Decimal)
	multiplier := apd.New(1, scale)
	if _, err := decimalContext.Mul(scaled, &d, multiplier); err != nil {
		return Decimal128{}, newFormatError("decimal: scaling failed: " + err.Error())
	}

	rounded := new(apd.Decimal)
	if _, err := decimalContext.RoundToIntegralValue(rounded, scaled); err != nil {
		return Decimal128{}, newFormatError("decimal: rounding failed: " + err.Error())
	}

	coeff := new(big.Int).Set(&rounded.Coeff)
	if rounded.Negative {
		coeff.Neg(coeff)
	}
	return bigIntToDecimal128(coeff)
}

// DecodeDecimal reverses EncodeDecimal, returning the float64 value
// that the stored fixed-scale coefficient represents.
func DecodeDecimal(d Decimal128, scale int32) float64 {
	coeff := decimal128ToBigInt(d)
	dec := apd.NewWithBigInt(coeff, -scale)
	f, _ := dec.Float64()
	return f
}

func bigIntToDecimal128(v *big.Int) (Decimal128, error) {
	var out Decimal128
	bytes := v.Bytes() // magnitude, big-endian
	if len(bytes) > 16 {
		return out, newFormatError("decimal: coefficient overflows 128 bits")
	}
	if v.Sign() >= 0 {
		copy(out[16-len(bytes):], bytes)
		return out, nil
	}
	// Two's complement negative encoding.
	var mag big.Int
	mag.Abs(v)
	magBytes := mag.Bytes()
	var buf [16]byte
	copy(buf[16-len(magBytes):], magBytes)
	full := new(big.Int).SetBytes(buf[:])
	modulus := new(big.Int).Lsh(big.NewInt(1), 128)
	full.Sub(modulus, full)
	fb := full.Bytes()
	copy(out[16-len(fb):], fb)
	return out, nil
}

func decimal128ToBigInt(d Decimal128) *big.Int {
	v := new(big.Int).SetBytes(d[:])
	// If the high bit is set, this is a two's-complement negative value.
	if d[0]&0x80 != 0 {
		modulus := new(big.Int).Lsh(big.NewInt(1), 128)
		v.Sub(v, modulus)
	}
	return v
}
