// Copyright (c) 2025 Neomantra Corp

// Package parquetio builds the canonical EventLog Parquet schema and
// the columnar batch writers/readers that move eventlog.Event values
// in and out of row groups. It is the columnar counterpart of the
// teacher codebase's per-DBN-schema ParquetGroupNode_* functions,
// generalized to EventLog's single tagged-union schema.
package parquetio

import (
	"github.com/apache/arrow-go/v18/parquet"
	pqschema "github.com/apache/arrow-go/v18/parquet/schema"
)

// GroupNode returns the Parquet schema GroupNode for schema version
// 1.0, with columns laid out in the exact order SPEC_FULL.md §3 names
// them. Column indices are load-bearing: eventlog.Col* constants must
// stay in sync with this ordering.
func GroupNode() *pqschema.GroupNode {
	return pqschema.MustGroup(pqschema.NewGroupNode("eventlog", parquet.Repetitions.Required, pqschema.FieldList{
		// common, required
		int64Node("ts_event_ns", parquet.Repetitions.Required),
		int64Node("ts_receive_ns", parquet.Repetitions.Required),
		int64Node("ts_monotonic_ns", parquet.Repetitions.Required),
		int8Node("event_type", parquet.Repetitions.Required),
		utf8Node("venue", parquet.Repetitions.Required),
		utf8Node("symbol", parquet.Repetitions.Required),
		utf8Node("source", parquet.Repetitions.Required),
		uint64Node("seq", parquet.Repetitions.Required),

		// depth
		int8Node("side", parquet.Repetitions.Optional),
		int8Node("op", parquet.Repetitions.Optional),
		int32Node("level", parquet.Repetitions.Optional),
		pqschema.NewFloat64Node("depth_price_f", parquet.Repetitions.Optional, -1),
		decimalNode("depth_price_d", PriceScale),
		pqschema.NewFloat64Node("depth_size_f", parquet.Repetitions.Optional, -1),
		decimalNode("depth_size_d", SizeScale),

		// trade
		int8Node("aggressor", parquet.Repetitions.Optional),
		pqschema.NewFloat64Node("trade_price_f", parquet.Repetitions.Optional, -1),
		decimalNode("trade_price_d", PriceScale),
		pqschema.NewFloat64Node("trade_size_f", parquet.Repetitions.Optional, -1),
		decimalNode("trade_size_d", SizeScale),

		// order
		utf8Node("order_id", parquet.Repetitions.Optional),
		int8Node("order_state", parquet.Repetitions.Optional),
		pqschema.NewFloat64Node("order_price_f", parquet.Repetitions.Optional, -1),
		decimalNode("order_price_d", PriceScale),
		pqschema.NewFloat64Node("order_size_f", parquet.Repetitions.Optional, -1),
		decimalNode("order_size_d", SizeScale),
		pqschema.NewFloat64Node("order_filled_f", parquet.Repetitions.Optional, -1),
		decimalNode("order_filled_d", SizeScale),
		utf8Node("order_reason", parquet.Repetitions.Optional),

		// bar
		int64Node("ts_open_ns", parquet.Repetitions.Optional),
		int64Node("ts_close_ns", parquet.Repetitions.Optional),
		pqschema.NewFloat64Node("bar_open_f", parquet.Repetitions.Optional, -1),
		decimalNode("bar_open_d", PriceScale),
		pqschema.NewFloat64Node("bar_high_f", parquet.Repetitions.Optional, -1),
		decimalNode("bar_high_d", PriceScale),
		pqschema.NewFloat64Node("bar_low_f", parquet.Repetitions.Optional, -1),
		decimalNode("bar_low_d", PriceScale),
		pqschema.NewFloat64Node("bar_close_f", parquet.Repetitions.Optional, -1),
		decimalNode("bar_close_d", PriceScale),
		pqschema.NewFloat64Node("bar_volume_f", parquet.Repetitions.Optional, -1),
		decimalNode("bar_volume_d", SizeScale),
	}, -1))
}

const (
	// PriceScale/SizeScale mirror eventlog.PriceScale/SizeScale; kept
	// as local constants so this package has no import-cycle back to
	// the root package.
	PriceScale = 6
	SizeScale  = 3

	decimalPrecision = 38
	decimal128Width  = 16
)

func int64Node(name string, rep parquet.Repetition) pqschema.Node {
	return pqschema.MustPrimitive(pqschema.NewPrimitiveNodeLogical(name, rep, pqschema.NewIntLogicalType(64, true), parquet.Types.Int64, 0, -1))
}

func uint64Node(name string, rep parquet.Repetition) pqschema.Node {
	return pqschema.MustPrimitive(pqschema.NewPrimitiveNodeLogical(name, rep, pqschema.NewIntLogicalType(64, false), parquet.Types.Int64, 0, -1))
}

func int32Node(name string, rep parquet.Repetition) pqschema.Node {
	return pqschema.MustPrimitive(pqschema.NewPrimitiveNodeLogical(name, rep, pqschema.NewIntLogicalType(32, true), parquet.Types.Int32, 0, -1))
}

func int8Node(name string, rep parquet.Repetition) pqschema.Node {
	return pqschema.MustPrimitive(pqschema.NewPrimitiveNodeLogical(name, rep, pqschema.NewIntLogicalType(8, true), parquet.Types.Int32, 0, -1))
}

func utf8Node(name string, rep parquet.Repetition) pqschema.Node {
	return pqschema.MustPrimitive(pqschema.NewPrimitiveNodeConverted(name, rep, parquet.Types.ByteArray, pqschema.ConvertedTypes.UTF8, 0, 0, 0, -1))
}

func decimalNode(name string, scale int32) pqschema.Node {
	return pqschema.MustPrimitive(pqschema.NewPrimitiveNodeLogical(
		name, parquet.Repetitions.Optional,
		pqschema.NewDecimalLogicalType(decimalPrecision, scale),
		parquet.Types.FixedLenByteArray, decimal128Width, -1))
}
