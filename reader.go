// Copyright (c) 2025 Neomantra Corp

package eventlog

import (
	pqfile "github.com/apache/arrow-go/v18/parquet/file"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/marketlogio/eventlog/internal/parquetio"
)

// Reader is a restartable, forward-only iterator over one partition
// file. Filters set with SetTimeRange/SetSeqRange prune whole row
// groups using their stored statistics before any page is decoded,
// then apply a row-level check to rows inside a surviving row group.
// Filters do not move the cursor; only Reset does (SPEC_FULL.md §9.1).
type Reader struct {
	path   string
	pf     *pqfile.Reader
	meta   FileMetadata
	logger *zerolog.Logger

	rgIdx   int
	rgTotal int
	current []parquetio.Row
	rowIdx  int

	touched int

	hasTimeFilter bool
	timeMinNs     int64
	timeMaxNs     int64
	hasSeqFilter  bool
	seqMin        uint64
	seqMax        uint64
}

// OpenReader opens path for reading and parses its footer metadata.
// If the file's write_complete flag is not "true" — the file may be
// from a writer that crashed before Close() ran — a warning is logged
// through zerolog's package-level default logger.
func OpenReader(path string) (*Reader, error) {
	pf, err := pqfile.OpenParquetFile(path, false)
	if err != nil {
		return nil, newIOError("open", err)
	}
	meta, err := readFileMetadata(pf)
	if err != nil {
		pf.Close()
		return nil, err
	}
	r := &Reader{
		path:    path,
		pf:      pf,
		meta:    meta,
		logger:  &log.Logger,
		rgTotal: pf.NumRowGroups(),
	}
	if !meta.WriteComplete {
		r.logger.Warn().Str("path", path).Msg("eventlog: opened a file whose write_complete flag is not set; writer may have crashed before close")
	}
	return r, nil
}

// Metadata returns the file's footer metadata.
func (r *Reader) Metadata() FileMetadata { return r.meta }

// SetTimeRange restricts iteration to events with ts_event_ns in
// [minNs, maxNs], inclusive.
func (r *Reader) SetTimeRange(minNs, maxNs int64) {
	r.hasTimeFilter = true
	r.timeMinNs, r.timeMaxNs = minNs, maxNs
}

// SetSeqRange restricts iteration to events with seq in [min, max],
// inclusive.
func (r *Reader) SetSeqRange(min, max uint64) {
	r.hasSeqFilter = true
	r.seqMin, r.seqMax = min, max
}

// ClearFilters removes any time or seq range previously set.
func (r *Reader) ClearFilters() {
	r.hasTimeFilter = false
	r.hasSeqFilter = false
}

// Reset rewinds the cursor to the start of the file. Filters are
// preserved; call ClearFilters first if they should also be dropped.
func (r *Reader) Reset() {
	r.rgIdx = 0
	r.current = nil
	r.rowIdx = 0
	r.touched = 0
}

// RowGroupsTouched reports how many row groups have been decoded
// (i.e. survived statistics pruning) since the last Reset.
func (r *Reader) RowGroupsTouched() int { return r.touched }

// Next returns the next event matching the active filters, advancing
// the cursor. ok is false once the file is exhausted, or once a row
// group fails to decode (the failure is logged).
func (r *Reader) Next() (Event, bool, error) {
	for {
		if r.rowIdx >= len(r.current) {
			if !r.advanceRowGroup() {
				return Event{}, false, nil
			}
			continue
		}
		row := r.current[r.rowIdx]
		r.rowIdx++
		if !r.rowMatches(row) {
			continue
		}
		return fromParquetRow(row), true, nil
	}
}

// advanceRowGroup loads the next row group that survives statistics
// pruning into r.current, returning false once no row groups remain.
func (r *Reader) advanceRowGroup() bool {
	for r.rgIdx < r.rgTotal {
		idx := r.rgIdx
		r.rgIdx++

		if r.hasTimeFilter {
			rng := parquetio.TsEventRange(r.pf, idx)
			if rng.HasStats && (rng.Max < r.timeMinNs || rng.Min > r.timeMaxNs) {
				continue
			}
		}
		if r.hasSeqFilter {
			rng := parquetio.SeqRange(r.pf, idx)
			if rng.HasStats && (uint64(rng.Max) < r.seqMin || uint64(rng.Min) > r.seqMax) {
				continue
			}
		}

		rows, err := parquetio.ReadRowGroup(r.pf, idx)
		if err != nil {
			// A row group that fails to decode ends iteration: the
			// error is logged and no later row group is returned.
			r.logger.Error().Err(err).Str("path", r.path).Int("row_group", idx).Msg("eventlog: row group decode failed; ending iteration")
			r.rgIdx = r.rgTotal
			return false
		}
		r.current = rows
		r.rowIdx = 0
		r.touched++
		return true
	}
	return false
}

func (r *Reader) rowMatches(row parquetio.Row) bool {
	if r.hasTimeFilter && (row.TsEventNs < r.timeMinNs || row.TsEventNs > r.timeMaxNs) {
		return false
	}
	if r.hasSeqFilter && (row.Seq < r.seqMin || row.Seq > r.seqMax) {
		return false
	}
	return true
}

// Close releases the underlying file handle.
func (r *Reader) Close() error {
	if err := r.pf.Close(); err != nil {
		return newIOError("close", err)
	}
	return nil
}

func fromParquetRow(row parquetio.Row) Event {
	e := Event{
		TsEventNs:     row.TsEventNs,
		TsReceiveNs:   row.TsReceiveNs,
		TsMonotonicNs: row.TsMonotonicNs,
		Type:          EventType(row.EventType),
		Venue:         row.Venue,
		Symbol:        row.Symbol,
		Source:        row.Source,
		Seq:           row.Seq,
	}
	if row.Side != nil {
		e.Side = Side(*row.Side)
	}
	if row.Op != nil {
		e.Op = DepthOp(*row.Op)
	}
	if row.Level != nil {
		e.Level = *row.Level
	}
	if row.DepthPriceF != nil {
		e.DepthPx = *row.DepthPriceF
	}
	if row.DepthSizeF != nil {
		e.DepthSize = *row.DepthSizeF
	}
	if row.Aggressor != nil {
		e.Aggressor = Aggressor(*row.Aggressor)
	}
	if row.TradePriceF != nil {
		e.TradePx = *row.TradePriceF
	}
	if row.TradeSizeF != nil {
		e.TradeSize = *row.TradeSizeF
	}
	if row.OrderID != nil {
		e.OrderID = *row.OrderID
	}
	if row.OrderState != nil {
		e.OrderState = OrderState(*row.OrderState)
	}
	if row.OrderPriceF != nil {
		e.OrderPx = *row.OrderPriceF
	}
	if row.OrderSizeF != nil {
		e.OrderSize = *row.OrderSizeF
	}
	if row.OrderFilledF != nil {
		e.OrderFilled = *row.OrderFilledF
	}
	if row.OrderReason != nil {
		e.OrderReason = *row.OrderReason
	}
	if row.TsOpenNs != nil {
		e.TsOpenNs = *row.TsOpenNs
	}
	if row.TsCloseNs != nil {
		e.TsCloseNs = *row.TsCloseNs
	}
	if row.BarOpenF != nil {
		e.BarOpen = *row.BarOpenF
	}
	if row.BarHighF != nil {
		e.BarHigh = *row.BarHighF
	}
	if row.BarLowF != nil {
		e.BarLow = *row.BarLowF
	}
	if row.BarCloseF != nil {
		e.BarClose = *row.BarCloseF
	}
	if row.BarVolumeF != nil {
		e.BarVolume = *row.BarVolumeF
	}
	return e
}
