// Copyright (c) 2025 Neomantra Corp

package parquetio

import (
	"fmt"

	"github.com/apache/arrow-go/v18/parquet"
	pqfile "github.com/apache/arrow-go/v18/parquet/file"
)

// RowGroupRange reports the min/max values a row group's statistics
// carry for a column, used to prune row groups against a predicate
// before any page is decoded.
type RowGroupRange struct {
	HasStats bool
	Min      int64
	Max      int64
}

// TsEventRange returns the ts_event_ns statistics for the row group
// at rgIdx, or HasStats=false if the column has no statistics (older
// files written without stats, or an all-null row group).
func TsEventRange(pf *pqfile.Reader, rgIdx int) RowGroupRange {
	return int64ColumnRange(pf, rgIdx, colTsEventNs)
}

// SeqRange returns the seq statistics for the row group at rgIdx.
func SeqRange(pf *pqfile.Reader, rgIdx int) RowGroupRange {
	return int64ColumnRange(pf, rgIdx, colSeq)
}

const (
	colTsEventNs = 0
	colSeq       = 7
)

func int64ColumnRange(pf *pqfile.Reader, rgIdx int, colIdx int) RowGroupRange {
	rgMeta := pf.MetaData().RowGroup(rgIdx)
	chunk, err := rgMeta.ColumnChunk(colIdx)
	if err != nil {
		return RowGroupRange{}
	}
	stats, err := chunk.Statistics()
	if err != nil || stats == nil || !stats.HasMinMax() {
		return RowGroupRange{}
	}
	minI, okMin := stats.Min().(int64)
	maxI, okMax := stats.Max().(int64)
	if !okMin || !okMax {
		return RowGroupRange{}
	}
	return RowGroupRange{HasStats: true, Min: minI, Max: maxI}
}

// ReadRowGroup decodes every row of the row group at rgIdx into Rows.
// Each column is read in one batched ReadBatch call, bounded by the
// row group's row count, so memory use stays proportional to one row
// group rather than the whole file.
func ReadRowGroup(pf *pqfile.Reader, rgIdx int) ([]Row, error) {
	rgr := pf.RowGroup(rgIdx)
	numRows := pf.MetaData().RowGroup(rgIdx).NumRows()

	tsEvent, err := readRequiredInt64(rgr, 0, numRows)
	if err != nil {
		return nil, err
	}
	tsReceive, err := readRequiredInt64(rgr, 1, numRows)
	if err != nil {
		return nil, err
	}
	tsMonotonic, err := readRequiredInt64(rgr, 2, numRows)
	if err != nil {
		return nil, err
	}
	eventType, err := readRequiredInt32(rgr, 3, numRows)
	if err != nil {
		return nil, err
	}
	venue, err := readRequiredUtf8(rgr, 4, numRows)
	if err != nil {
		return nil, err
	}
	symbol, err := readRequiredUtf8(rgr, 5, numRows)
	if err != nil {
		return nil, err
	}
	source, err := readRequiredUtf8(rgr, 6, numRows)
	if err != nil {
		return nil, err
	}
	seq, err := readRequiredInt64(rgr, 7, numRows)
	if err != nil {
		return nil, err
	}

	side, err := readOptionalInt8(rgr, 8, numRows)
	if err != nil {
		return nil, err
	}
	op, err := readOptionalInt8(rgr, 9, numRows)
	if err != nil {
		return nil, err
	}
	level, err := readOptionalInt32(rgr, 10, numRows)
	if err != nil {
		return nil, err
	}
	depthPriceF, err := readOptionalFloat64(rgr, 11, numRows)
	if err != nil {
		return nil, err
	}
	depthPriceD, err := readOptionalDecimal(rgr, 12, numRows)
	if err != nil {
		return nil, err
	}
	depthSizeF, err := readOptionalFloat64(rgr, 13, numRows)
	if err != nil {
		return nil, err
	}
	depthSizeD, err := readOptionalDecimal(rgr, 14, numRows)
	if err != nil {
		return nil, err
	}

	aggressor, err := readOptionalInt8(rgr, 15, numRows)
	if err != nil {
		return nil, err
	}
	tradePriceF, err := readOptionalFloat64(rgr, 16, numRows)
	if err != nil {
		return nil, err
	}
	tradePriceD, err := readOptionalDecimal(rgr, 17, numRows)
	if err != nil {
		return nil, err
	}
	tradeSizeF, err := readOptionalFloat64(rgr, 18, numRows)
	if err != nil {
		return nil, err
	}
	tradeSizeD, err := readOptionalDecimal(rgr, 19, numRows)
	if err != nil {
		return nil, err
	}

	orderID, err := readOptionalUtf8(rgr, 20, numRows)
	if err != nil {
		return nil, err
	}
	orderState, err := readOptionalInt8(rgr, 21, numRows)
	if err != nil {
		return nil, err
	}
	orderPriceF, err := readOptionalFloat64(rgr, 22, numRows)
	if err != nil {
		return nil, err
	}
	orderPriceD, err := readOptionalDecimal(rgr, 23, numRows)
	if err != nil {
		return nil, err
	}
	orderSizeF, err := readOptionalFloat64(rgr, 24, numRows)
	if err != nil {
		return nil, err
	}
	orderSizeD, err := readOptionalDecimal(rgr, 25, numRows)
	if err != nil {
		return nil, err
	}
	orderFilledF, err := readOptionalFloat64(rgr, 26, numRows)
	if err != nil {
		return nil, err
	}
	orderFilledD, err := readOptionalDecimal(rgr, 27, numRows)
	if err != nil {
		return nil, err
	}
	orderReason, err := readOptionalUtf8(rgr, 28, numRows)
	if err != nil {
		return nil, err
	}

	tsOpen, err := readOptionalInt64(rgr, 29, numRows)
	if err != nil {
		return nil, err
	}
	tsClose, err := readOptionalInt64(rgr, 30, numRows)
	if err != nil {
		return nil, err
	}
	barOpenF, err := readOptionalFloat64(rgr, 31, numRows)
	if err != nil {
		return nil, err
	}
	barOpenD, err := readOptionalDecimal(rgr, 32, numRows)
	if err != nil {
		return nil, err
	}
	barHighF, err := readOptionalFloat64(rgr, 33, numRows)
	if err != nil {
		return nil, err
	}
	barHighD, err := readOptionalDecimal(rgr, 34, numRows)
	if err != nil {
		return nil, err
	}
	barLowF, err := readOptionalFloat64(rgr, 35, numRows)
	if err != nil {
		return nil, err
	}
	barLowD, err := readOptionalDecimal(rgr, 36, numRows)
	if err != nil {
		return nil, err
	}
	barCloseF, err := readOptionalFloat64(rgr, 37, numRows)
	if err != nil {
		return nil, err
	}
	barCloseD, err := readOptionalDecimal(rgr, 38, numRows)
	if err != nil {
		return nil, err
	}
	barVolumeF, err := readOptionalFloat64(rgr, 39, numRows)
	if err != nil {
		return nil, err
	}
	barVolumeD, err := readOptionalDecimal(rgr, 40, numRows)
	if err != nil {
		return nil, err
	}

	rows := make([]Row, numRows)
	for i := range rows {
		rows[i] = Row{
			TsEventNs:     tsEvent[i],
			TsReceiveNs:   tsReceive[i],
			TsMonotonicNs: tsMonotonic[i],
			EventType:     int8(eventType[i]),
			Venue:         venue[i],
			Symbol:        symbol[i],
			Source:        source[i],
			Seq:           uint64(seq[i]),

			Side:        side[i],
			Op:          op[i],
			Level:       level[i],
			DepthPriceF: depthPriceF[i],
			DepthPriceD: depthPriceD[i],
			DepthSizeF:  depthSizeF[i],
			DepthSizeD:  depthSizeD[i],

			Aggressor:   aggressor[i],
			TradePriceF: tradePriceF[i],
			TradePriceD: tradePriceD[i],
			TradeSizeF:  tradeSizeF[i],
			TradeSizeD:  tradeSizeD[i],

			OrderID:      orderID[i],
			OrderState:   orderState[i],
			OrderPriceF:  orderPriceF[i],
			OrderPriceD:  orderPriceD[i],
			OrderSizeF:   orderSizeF[i],
			OrderSizeD:   orderSizeD[i],
			OrderFilledF: orderFilledF[i],
			OrderFilledD: orderFilledD[i],
			OrderReason:  orderReason[i],

			TsOpenNs:   tsOpen[i],
			TsCloseNs:  tsClose[i],
			BarOpenF:   barOpenF[i],
			BarOpenD:   barOpenD[i],
			BarHighF:   barHighF[i],
			BarHighD:   barHighD[i],
			BarLowF:    barLowF[i],
			BarLowD:    barLowD[i],
			BarCloseF:  barCloseF[i],
			BarCloseD:  barCloseD[i],
			BarVolumeF: barVolumeF[i],
			BarVolumeD: barVolumeD[i],
		}
	}
	return rows, nil
}

func readRequiredInt64(rgr *pqfile.RowGroupReader, col int, numRows int64) ([]int64, error) {
	cr, err := rgr.Column(col)
	if err != nil {
		return nil, fmt.Errorf("column %d: %w", col, err)
	}
	values := make([]int64, numRows)
	_, _, err = cr.(*pqfile.Int64ColumnChunkReader).ReadBatch(numRows, values, nil, nil)
	return values, err
}

func readRequiredInt32(rgr *pqfile.RowGroupReader, col int, numRows int64) ([]int32, error) {
	cr, err := rgr.Column(col)
	if err != nil {
		return nil, fmt.Errorf("column %d: %w", col, err)
	}
	values := make([]int32, numRows)
	_, _, err = cr.(*pqfile.Int32ColumnChunkReader).ReadBatch(numRows, values, nil, nil)
	return values, err
}

func readRequiredUtf8(rgr *pqfile.RowGroupReader, col int, numRows int64) ([]string, error) {
	cr, err := rgr.Column(col)
	if err != nil {
		return nil, fmt.Errorf("column %d: %w", col, err)
	}
	values := make([]parquet.ByteArray, numRows)
	_, _, err = cr.(*pqfile.ByteArrayColumnChunkReader).ReadBatch(numRows, values, nil, nil)
	out := make([]string, numRows)
	for i, v := range values {
		out[i] = string(v)
	}
	return out, err
}

func readOptionalInt8(rgr *pqfile.RowGroupReader, col int, numRows int64) ([]*int8, error) {
	cr, err := rgr.Column(col)
	if err != nil {
		return nil, fmt.Errorf("column %d: %w", col, err)
	}
	values := make([]int32, numRows)
	defLevels := make([]int16, numRows)
	_, _, err = cr.(*pqfile.Int32ColumnChunkReader).ReadBatch(numRows, values, defLevels, nil)
	out := make([]*int8, numRows)
	vi := 0
	for i, d := range defLevels {
		if d == 1 {
			v := int8(values[vi])
			out[i] = &v
			vi++
		}
	}
	return out, err
}

func readOptionalInt32(rgr *pqfile.RowGroupReader, col int, numRows int64) ([]*int32, error) {
	cr, err := rgr.Column(col)
	if err != nil {
		return nil, fmt.Errorf("column %d: %w", col, err)
	}
	values := make([]int32, numRows)
	defLevels := make([]int16, numRows)
	_, _, err = cr.(*pqfile.Int32ColumnChunkReader).ReadBatch(numRows, values, defLevels, nil)
	out := make([]*int32, numRows)
	vi := 0
	for i, d := range defLevels {
		if d == 1 {
			v := values[vi]
			out[i] = &v
			vi++
		}
	}
	return out, err
}

func readOptionalInt64(rgr *pqfile.RowGroupReader, col int, numRows int64) ([]*int64, error) {
	cr, err := rgr.Column(col)
	if err != nil {
		return nil, fmt.Errorf("column %d: %w", col, err)
	}
	values := make([]int64, numRows)
	defLevels := make([]int16, numRows)
	_, _, err = cr.(*pqfile.Int64ColumnChunkReader).ReadBatch(numRows, values, defLevels, nil)
	out := make([]*int64, numRows)
	vi := 0
	for i, d := range defLevels {
		if d == 1 {
			v := values[vi]
			out[i] = &v
			vi++
		}
	}
	return out, err
}

func readOptionalFloat64(rgr *pqfile.RowGroupReader, col int, numRows int64) ([]*float64, error) {
	cr, err := rgr.Column(col)
	if err != nil {
		return nil, fmt.Errorf("column %d: %w", col, err)
	}
	values := make([]float64, numRows)
	defLevels := make([]int16, numRows)
	_, _, err = cr.(*pqfile.Float64ColumnChunkReader).ReadBatch(numRows, values, defLevels, nil)
	out := make([]*float64, numRows)
	vi := 0
	for i, d := range defLevels {
		if d == 1 {
			v := values[vi]
			out[i] = &v
			vi++
		}
	}
	return out, err
}

func readOptionalUtf8(rgr *pqfile.RowGroupReader, col int, numRows int64) ([]*string, error) {
	cr, err := rgr.Column(col)
	if err != nil {
		return nil, fmt.Errorf("column %d: %w", col, err)
	}
	values := make([]parquet.ByteArray, numRows)
	defLevels := make([]int16, numRows)
	_, _, err = cr.(*pqfile.ByteArrayColumnChunkReader).ReadBatch(numRows, values, defLevels, nil)
	out := make([]*string, numRows)
	vi := 0
	for i, d := range defLevels {
		if d == 1 {
			v := string(values[vi])
			out[i] = &v
			vi++
		}
	}
	return out, err
}

func readOptionalDecimal(rgr *pqfile.RowGroupReader, col int, numRows int64) ([]*Decimal128, error) {
	cr, err := rgr.Column(col)
	if err != nil {
		return nil, fmt.Errorf("column %d: %w", col, err)
	}
	values := make([]parquet.FixedLenByteArray, numRows)
	defLevels := make([]int16, numRows)
	_, _, err = cr.(*pqfile.FixedLenByteArrayColumnChunkReader).ReadBatch(numRows, values, defLevels, nil)
	out := make([]*Decimal128, numRows)
	vi := 0
	for i, d := range defLevels {
		if d == 1 {
			var dec Decimal128
			copy(dec[:], values[vi])
			out[i] = &dec
			vi++
		}
	}
	return out, err
}
