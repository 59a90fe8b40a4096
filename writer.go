// Copyright (c) 2025 Neomantra Corp

package eventlog

import (
	"os"
	"time"

	pqfile "github.com/apache/arrow-go/v18/parquet/file"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/marketlogio/eventlog/internal/parquetio"
)

// WriterOptions configures a Writer. Zero values fall back to the
// defaults named in SPEC_FULL.md §4.6.
type WriterOptions struct {
	Venue    string
	Source   string
	FeedMode string

	// Disposition controls how validation failures are handled.
	Disposition Disposition

	// MaxRowsPerFlush triggers an implicit flush once this many events
	// have been buffered. Zero uses DefaultRowGroupFlushCount.
	MaxRowsPerFlush int

	// FlushInterval triggers an implicit flush once this much wall
	// time has elapsed since the last flush. Zero uses
	// DefaultFlushInterval.
	FlushInterval time.Duration

	// Logger receives structured diagnostics. A nil Logger falls back
	// to zerolog's package-level default logger.
	Logger *zerolog.Logger
}

func (o WriterOptions) withDefaults() WriterOptions {
	if o.MaxRowsPerFlush <= 0 {
		o.MaxRowsPerFlush = DefaultRowGroupFlushCount
	}
	if o.FlushInterval <= 0 {
		o.FlushInterval = time.Duration(DefaultFlushInterval)
	}
	if o.Logger == nil {
		o.Logger = &log.Logger
	}
	return o
}

// Writer owns exclusive access to one partition file for one
// (symbol, day). Flush and Close perform I/O; Append does so only when
// it triggers an implicit Flush. A Writer is not safe for concurrent use: the single-writer-per-file
// model in SPEC_FULL.md §5 assumes one producer goroutine.
type Writer struct {
	path   string
	symbol string
	opts   WriterOptions

	file *os.File
	pw   *pqfile.Writer

	validator *Validator
	buffer    []Event
	lastFlush time.Time

	rowsWritten     int64
	eventsReceived  int64
	validationFails int64
	rowGroups       int

	meta   FileMetadata
	closed bool
}

// CreateWriter opens a new partition file at path for symbol,
// truncating any existing file, and returns a ready-to-append Writer.
func CreateWriter(path string, symbol string, opts WriterOptions) (*Writer, error) {
	opts = opts.withDefaults()

	f, err := os.Create(path)
	if err != nil {
		return nil, newIOError("create", err)
	}

	pw := pqfile.NewParquetWriter(f, parquetio.GroupNode(), pqfile.WithWriterProps(parquetio.WriterProperties()))

	now := WallNowNanos()
	w := &Writer{
		path:      path,
		symbol:    symbol,
		opts:      opts,
		file:      f,
		pw:        pw,
		validator: NewValidator(),
		lastFlush: time.Now(),
		meta: FileMetadata{
			SchemaVersion:   SchemaVersion,
			WriterVersion:   WriterVersion,
			IngestSessionID: newIngestSessionID(),
			IngestHost:      ingestHost(),
			IngestStartNs:   now,
			Symbol:          symbol,
			Venue:           opts.Venue,
			Source:          opts.Source,
			FeedMode:        opts.FeedMode,
			WriteComplete:   false,
		},
	}
	w.opts.Logger.Debug().
		Str("path", path).
		Str("symbol", symbol).
		Str("session", w.meta.IngestSessionID).
		Int("ymd", ymdInt(time.Unix(0, now).UTC())).
		Msg("eventlog: writer opened")
	return w, nil
}

// Append validates e and buffers it for the next flush. Rows
// accumulate in memory; once the buffer holds MaxRowsPerFlush events
// or FlushInterval has elapsed since the last flush, Append calls
// Flush itself and returns its error. Otherwise no I/O occurs here.
func (w *Writer) Append(e Event) error {
	if w.closed {
		return ErrWriterClosed
	}
	w.eventsReceived++

	if err := w.validator.Validate(&e); err != nil {
		w.validationFails++
		w.opts.Logger.Warn().Err(err).Str("symbol", w.symbol).Msg("eventlog: validation failed")
		if w.opts.Disposition == DispositionStrict {
			return err
		}
		return nil
	}
	w.validator.Accept(&e)
	w.buffer = append(w.buffer, e)

	if len(w.buffer) >= w.opts.MaxRowsPerFlush || time.Since(w.lastFlush) >= w.opts.FlushInterval {
		return w.Flush()
	}
	return nil
}

// Flush writes every buffered event as one new row group and fsyncs
// the underlying file, without touching the footer (see
// SPEC_FULL.md §4.6's sealing-discipline note). Flush is a no-op if
// nothing is buffered.
func (w *Writer) Flush() error {
	if w.closed {
		return ErrWriterClosed
	}
	if len(w.buffer) == 0 {
		return nil
	}

	rows := make([]parquetio.Row, len(w.buffer))
	for i, e := range w.buffer {
		row, err := toParquetRow(e)
		if err != nil {
			return err
		}
		rows[i] = row
	}

	rgw := w.pw.AppendBufferedRowGroup()
	if err := parquetio.WriteRowGroup(rgw, rows); err != nil {
		rgw.Close()
		return newIOError("flush", err)
	}
	if err := rgw.Close(); err != nil {
		return newIOError("flush", err)
	}

	if err := w.file.Sync(); err != nil {
		return newIOError("flush", err)
	}

	w.rowGroups++
	w.rowsWritten += int64(len(w.buffer))
	last := w.buffer[len(w.buffer)-1]
	w.meta.IngestEndNs = last.TsReceiveNs
	w.buffer = w.buffer[:0]
	w.lastFlush = time.Now()

	w.opts.Logger.Debug().Int("row_groups", w.rowGroups).Int64("rows_written", w.rowsWritten).Msg("eventlog: flushed row group")
	return nil
}

// Close flushes any buffered events, marks the file complete, writes
// the footer exactly once, and releases the underlying file handle.
// Close is idempotent.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	if err := w.Flush(); err != nil {
		return err
	}

	w.meta.WriteComplete = true
	if w.meta.IngestEndNs == 0 {
		w.meta.IngestEndNs = WallNowNanos()
	}
	kv := w.meta.toKeyValueMetadata()
	for i := 0; i < kv.Len(); i++ {
		w.pw.AppendKeyValueMetadata(kv.Keys()[i], kv.Values()[i])
	}

	if err := w.pw.FlushWithFooter(); err != nil {
		w.file.Close()
		return newIOError("close", err)
	}
	if err := w.pw.Close(); err != nil {
		w.file.Close()
		return newIOError("close", err)
	}
	if err := w.file.Close(); err != nil {
		return newIOError("close", err)
	}
	w.closed = true
	w.opts.Logger.Info().
		Str("path", w.path).
		Int64("events_received", w.eventsReceived).
		Int64("rows_written", w.rowsWritten).
		Int64("validation_errors", w.validationFails).
		Int("row_groups", w.rowGroups).
		Msg("eventlog: writer closed")
	return nil
}

// Stats reports the counters named in SPEC_FULL.md §6.
type WriterStats struct {
	EventsReceived   int64
	RowsWritten      int64
	ValidationErrors int64
	RowGroupsWritten int
}

// Stats returns a snapshot of this writer's counters.
func (w *Writer) Stats() WriterStats {
	return WriterStats{
		EventsReceived:   w.eventsReceived,
		RowsWritten:      w.rowsWritten,
		ValidationErrors: w.validationFails,
		RowGroupsWritten: w.rowGroups,
	}
}

func toParquetRow(e Event) (parquetio.Row, error) {
	row := parquetio.Row{
		TsEventNs:     e.TsEventNs,
		TsReceiveNs:   e.TsReceiveNs,
		TsMonotonicNs: e.TsMonotonicNs,
		EventType:     int8(e.Type),
		Venue:         e.Venue,
		Symbol:        e.Symbol,
		Source:        e.Source,
		Seq:           e.Seq,
	}

	switch e.Type {
	case EventTypeDepth:
		side := int8(e.Side)
		op := int8(e.Op)
		level := e.Level
		row.Side, row.Op, row.Level = &side, &op, &level
		if err := setDecimalPair(&row.DepthPriceF, &row.DepthPriceD, e.DepthPx, PriceScale); err != nil {
			return row, err
		}
		if err := setDecimalPair(&row.DepthSizeF, &row.DepthSizeD, e.DepthSize, SizeScale); err != nil {
			return row, err
		}
	case EventTypeTrade:
		aggr := int8(e.Aggressor)
		row.Aggressor = &aggr
		if err := setDecimalPair(&row.TradePriceF, &row.TradePriceD, e.TradePx, PriceScale); err != nil {
			return row, err
		}
		if err := setDecimalPair(&row.TradeSizeF, &row.TradeSizeD, e.TradeSize, SizeScale); err != nil {
			return row, err
		}
	case EventTypeOrder:
		orderID := e.OrderID
		state := int8(e.OrderState)
		row.OrderID, row.OrderState = &orderID, &state
		if e.OrderReason != "" {
			reason := e.OrderReason
			row.OrderReason = &reason
		}
		if err := setDecimalPair(&row.OrderPriceF, &row.OrderPriceD, e.OrderPx, PriceScale); err != nil {
			return row, err
		}
		if err := setDecimalPair(&row.OrderSizeF, &row.OrderSizeD, e.OrderSize, SizeScale); err != nil {
			return row, err
		}
		if err := setDecimalPair(&row.OrderFilledF, &row.OrderFilledD, e.OrderFilled, SizeScale); err != nil {
			return row, err
		}
	case EventTypeBar:
		tsOpen, tsClose := e.TsOpenNs, e.TsCloseNs
		row.TsOpenNs, row.TsCloseNs = &tsOpen, &tsClose
		if err := setDecimalPair(&row.BarOpenF, &row.BarOpenD, e.BarOpen, PriceScale); err != nil {
			return row, err
		}
		if err := setDecimalPair(&row.BarHighF, &row.BarHighD, e.BarHigh, PriceScale); err != nil {
			return row, err
		}
		if err := setDecimalPair(&row.BarLowF, &row.BarLowD, e.BarLow, PriceScale); err != nil {
			return row, err
		}
		if err := setDecimalPair(&row.BarCloseF, &row.BarCloseD, e.BarClose, PriceScale); err != nil {
			return row, err
		}
		if err := setDecimalPair(&row.BarVolumeF, &row.BarVolumeD, e.BarVolume, SizeScale); err != nil {
			return row, err
		}
	case EventTypeHeartbeat:
		// no kind-specific columns
	}
	return row, nil
}

func setDecimalPair(fOut **float64, dOut **parquetio.Decimal128, value float64, scale int32) error {
	v := value
	*fOut = &v
	dec, err := EncodeDecimal(value, scale)
	if err != nil {
		return err
	}
	pd := parquetio.Decimal128(dec)
	*dOut = &pd
	return nil
}
