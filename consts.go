// Copyright (c) 2025 Neomantra Corp

package eventlog

// EventType discriminates the tagged union of event kinds stored in a
// single EventLog file's columnar layout.
type EventType int8

const (
	EventTypeUnknown   EventType = 0
	EventTypeDepth     EventType = 1
	EventTypeTrade     EventType = 2
	EventTypeOrder     EventType = 3
	EventTypeBar       EventType = 4
	EventTypeHeartbeat EventType = 5
)

func (t EventType) String() string {
	switch t {
	case EventTypeDepth:
		return "depth"
	case EventTypeTrade:
		return "trade"
	case EventTypeOrder:
		return "order"
	case EventTypeBar:
		return "bar"
	case EventTypeHeartbeat:
		return "heartbeat"
	default:
		return "unknown"
	}
}

// Side is the book side a depth update applies to.
type Side int8

const (
	SideUnknown Side = 0
	SideBid     Side = 1
	SideAsk     Side = 2
)

func (s Side) String() string {
	switch s {
	case SideBid:
		return "bid"
	case SideAsk:
		return "ask"
	default:
		return "unknown"
	}
}

// DepthOp is the book mutation a depth event represents.
type DepthOp int8

const (
	DepthOpUnknown DepthOp = 0
	DepthOpAdd     DepthOp = 1
	DepthOpUpdate  DepthOp = 2
	DepthOpDelete  DepthOp = 3
)

func (o DepthOp) String() string {
	switch o {
	case DepthOpAdd:
		return "add"
	case DepthOpUpdate:
		return "update"
	case DepthOpDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Aggressor identifies which side initiated a trade.
type Aggressor int8

const (
	AggressorUnknown Aggressor = 0
	AggressorBuy     Aggressor = 1
	AggressorSell    Aggressor = 2
)

func (a Aggressor) String() string {
	switch a {
	case AggressorBuy:
		return "buy"
	case AggressorSell:
		return "sell"
	default:
		return "unknown"
	}
}

// OrderState is the lifecycle state of a tracked order.
type OrderState int8

const (
	OrderStateUnknown  OrderState = 0
	OrderStateNew      OrderState = 1
	OrderStateAck      OrderState = 2
	OrderStateReplaced OrderState = 3
	OrderStateCanceled OrderState = 4
	OrderStateFilled   OrderState = 5
	OrderStateRejected OrderState = 6
)

func (s OrderState) String() string {
	switch s {
	case OrderStateNew:
		return "new"
	case OrderStateAck:
		return "ack"
	case OrderStateReplaced:
		return "replaced"
	case OrderStateCanceled:
		return "canceled"
	case OrderStateFilled:
		return "filled"
	case OrderStateRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Disposition controls how a Writer reacts to a validation failure.
type Disposition int

const (
	// DispositionStrict rejects the offending event and returns the error.
	DispositionStrict Disposition = iota
	// DispositionPermissive records the error and skips the offending event.
	DispositionPermissive
)

const (
	// SchemaVersion identifies the on-disk column layout in this package.
	SchemaVersion = "1.0"
	// WriterVersion identifies this module's writer implementation.
	WriterVersion = "eventlog-go/1.0"

	// PriceScale is the fixed decimal scale applied to all price columns.
	PriceScale = 6
	// SizeScale is the fixed decimal scale applied to all size/volume columns.
	SizeScale = 3

	// DecimalPrecision is the total base-10 digits of precision the
	// 128-bit decimal columns carry.
	DecimalPrecision = 38

	// DefaultRowGroupFlushCount is the row-count flush threshold used
	// when WriterOptions.MaxRowsPerFlush is left at zero.
	DefaultRowGroupFlushCount = 150_000

	// DefaultFlushInterval is the time-based flush threshold used when
	// WriterOptions.FlushInterval is left at zero.
	DefaultFlushInterval = 2_000_000_000 // 2s, expressed in ns to avoid importing time here
)
