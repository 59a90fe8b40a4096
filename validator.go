// Copyright (c) 2025 Neomantra Corp

package eventlog

// Validator enforces the at-write invariants from SPEC_FULL.md §3 on
// a single (source, symbol) stream. It is stateful: it remembers the
// last sequence number, monotonic timestamp, and event timestamp it
// accepted, so a Writer need only construct one Validator per open
// file.
type Validator struct {
	haveSeq       bool
	lastSeq       uint64
	haveMonoNs    bool
	lastMonoNs    int64
	haveTsEventNs bool
	lastTsEventNs int64
}

// NewValidator returns a Validator with no prior state, ready to
// validate the first event of a fresh stream.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate checks e against the common invariants and the
// kind-specific invariants for e.Type, returning the first
// *ValidationError encountered. It does not mutate e.
func (v *Validator) Validate(e *Event) error {
	if err := v.validateCommon(e); err != nil {
		return err
	}
	switch e.Type {
	case EventTypeDepth:
		return validateDepth(e)
	case EventTypeTrade:
		return validateTrade(e)
	case EventTypeOrder:
		return validateOrder(e)
	case EventTypeBar:
		return validateBar(e)
	case EventTypeHeartbeat:
		return nil
	default:
		return newValidationError("event_type", "unknown event type")
	}
}

// Accept records e as having been written, advancing the validator's
// sequence and timestamp state. Call only after Validate succeeds and
// the event has actually been appended.
func (v *Validator) Accept(e *Event) {
	v.haveSeq = true
	v.lastSeq = e.Seq
	v.haveMonoNs = true
	v.lastMonoNs = e.TsMonotonicNs
	v.haveTsEventNs = true
	v.lastTsEventNs = e.TsEventNs
}

func (v *Validator) validateCommon(e *Event) error {
	if !WithinWallBounds(e.TsEventNs) {
		return newValidationError("ts_event_ns", "must fall within [2020-01-01, 2050-01-01)")
	}
	if !WithinWallBounds(e.TsReceiveNs) {
		return newValidationError("ts_receive_ns", "must fall within [2020-01-01, 2050-01-01)")
	}
	if !WithinClockSkew(e.TsEventNs, e.TsReceiveNs) {
		return newValidationError("ts_receive_ns", "must not precede ts_event_ns by more than 60s")
	}
	if e.Seq == 0 {
		return newValidationError("seq", "must be greater than zero")
	}
	if e.Venue == "" {
		return newValidationError("venue", "must not be empty")
	}
	if e.Symbol == "" {
		return newValidationError("symbol", "must not be empty")
	}
	if e.Source == "" {
		return newValidationError("source", "must not be empty")
	}
	if v.haveSeq && e.Seq <= v.lastSeq {
		return newValidationError("seq", "must strictly increase within a stream")
	}
	if v.haveMonoNs && e.TsMonotonicNs < v.lastMonoNs {
		return newValidationError("ts_monotonic_ns", "must not decrease within a stream")
	}
	if v.haveTsEventNs && e.TsEventNs < v.lastTsEventNs {
		return newValidationError("ts_event_ns", "must not decrease within a stream")
	}
	return nil
}

func validateDepth(e *Event) error {
	if e.Side != SideBid && e.Side != SideAsk {
		return newValidationError("side", "required for depth events")
	}
	switch e.Op {
	case DepthOpAdd, DepthOpUpdate, DepthOpDelete:
	default:
		return newValidationError("op", "required for depth events")
	}
	if e.Level < 0 {
		return newValidationError("level", "must be non-negative")
	}
	if e.Level >= 1000 {
		return newValidationError("level", "must be less than 1000")
	}
	if e.DepthPx <= 0 {
		return newValidationError("depth_price", "must be positive")
	}
	if e.DepthSize < 0 {
		return newValidationError("depth_size", "must be non-negative")
	}
	return nil
}

func validateTrade(e *Event) error {
	if e.Aggressor != AggressorBuy && e.Aggressor != AggressorSell {
		return newValidationError("aggressor", "required for trade events")
	}
	if e.TradePx <= 0 {
		return newValidationError("trade_price", "must be positive")
	}
	if e.TradeSize <= 0 {
		return newValidationError("trade_size", "must be positive")
	}
	return nil
}

func validateOrder(e *Event) error {
	if e.OrderID == "" {
		return newValidationError("order_id", "required for order events")
	}
	switch e.OrderState {
	case OrderStateNew, OrderStateAck, OrderStateReplaced,
		OrderStateCanceled, OrderStateFilled, OrderStateRejected:
	default:
		return newValidationError("order_state", "required for order events")
	}
	if e.OrderPx < 0 {
		return newValidationError("order_price", "must be non-negative")
	}
	if e.OrderSize < 0 {
		return newValidationError("order_size", "must be non-negative")
	}
	if e.OrderFilled < 0 || e.OrderFilled > e.OrderSize {
		return newValidationError("order_filled", "must be between 0 and order_size")
	}
	return nil
}

func validateBar(e *Event) error {
	if e.TsCloseNs <= e.TsOpenNs {
		return newValidationError("ts_close_ns", "must be after ts_open_ns")
	}
	if e.BarHigh < e.BarLow {
		return newValidationError("bar_high", "must not be less than bar_low")
	}
	if e.BarOpen < e.BarLow || e.BarOpen > e.BarHigh {
		return newValidationError("bar_open", "must fall within [bar_low, bar_high]")
	}
	if e.BarClose < e.BarLow || e.BarClose > e.BarHigh {
		return newValidationError("bar_close", "must fall within [bar_low, bar_high]")
	}
	if e.BarVolume < 0 {
		return newValidationError("bar_volume", "must be non-negative")
	}
	return nil
}
