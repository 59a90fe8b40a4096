// Copyright (c) 2025 Neomantra Corp

package eventlog

// Column indices into the canonical Parquet GroupNode built by
// internal/parquetio. These are part of the on-disk schema contract:
// new columns may only be appended after ColumnCount, nullable.
const (
	ColTsEventNs = iota
	ColTsReceiveNs
	ColTsMonotonicNs
	ColEventType
	ColVenue
	ColSymbol
	ColSource
	ColSeq

	ColSide
	ColOp
	ColLevel
	ColDepthPriceF
	ColDepthPriceD
	ColDepthSizeF
	ColDepthSizeD

	ColAggressor
	ColTradePriceF
	ColTradePriceD
	ColTradeSizeF
	ColTradeSizeD

	ColOrderID
	ColOrderState
	ColOrderPriceF
	ColOrderPriceD
	ColOrderSizeF
	ColOrderSizeD
	ColOrderFilledF
	ColOrderFilledD
	ColOrderReason

	ColTsOpenNs
	ColTsCloseNs
	ColBarOpenF
	ColBarOpenD
	ColBarHighF
	ColBarHighD
	ColBarLowF
	ColBarLowD
	ColBarCloseF
	ColBarCloseD
	ColBarVolumeF
	ColBarVolumeD

	// ColumnCount is the number of columns in schema version 1.0.
	ColumnCount
)

// FileExtension is the canonical extension for EventLog partition files.
const FileExtension = ".eventlog.parquet"
