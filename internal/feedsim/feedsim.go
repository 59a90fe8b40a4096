// Copyright (c) 2025 Neomantra Corp

// Package feedsim generates a deterministic synthetic event stream for
// one symbol, standing in for a live broker or exchange feed so the
// Writer, Reader and Replay driver can be exercised end to end without
// a network dependency. It has no teacher analogue; it is grounded on
// the shape of eventlog.Event and exists purely to drive tests and the
// "eventlogctl demo" CLI subcommand.
package feedsim

import (
	"github.com/marketlogio/eventlog"
)

// Config parameterizes a deterministic run of the simulator.
type Config struct {
	Venue       string
	Symbol      string
	Source      string
	StartNs     int64
	IntervalNs  int64
	DepthLevels int32
	BasePrice   float64
}

// Generator produces a reproducible sequence of eventlog.Event values
// cycling through depth, trade, order and bar kinds, with a
// heartbeat every 50 events. The same Config always yields the same
// sequence in every field except TsMonotonicNs, which is read from the
// process's monotonic clock at each call.
type Generator struct {
	cfg     Config
	seq     uint64
	nowNs   int64
	orderID int
}

// New returns a Generator ready to produce events starting at cfg.StartNs.
func New(cfg Config) *Generator {
	if cfg.IntervalNs <= 0 {
		cfg.IntervalNs = 1_000_000 // 1ms
	}
	if cfg.DepthLevels <= 0 {
		cfg.DepthLevels = 5
	}
	if cfg.BasePrice <= 0 {
		cfg.BasePrice = 100.0
	}
	return &Generator{cfg: cfg, nowNs: cfg.StartNs}
}

// Next returns the next synthetic event.
func (g *Generator) Next() eventlog.Event {
	g.seq++
	g.nowNs += g.cfg.IntervalNs

	common := eventlog.Event{
		TsEventNs:     g.nowNs,
		TsReceiveNs:   g.nowNs + 1000,
		TsMonotonicNs: eventlog.MonotonicNowNanos(),
		Venue:         g.cfg.Venue,
		Symbol:        g.cfg.Symbol,
		Source:        g.cfg.Source,
		Seq:           g.seq,
	}

	switch g.seq % 50 {
	case 0:
		common.Type = eventlog.EventTypeHeartbeat
		return common
	case 1, 2, 3:
		common.Type = eventlog.EventTypeTrade
		common.Aggressor = eventlog.AggressorBuy
		if g.seq%2 == 0 {
			common.Aggressor = eventlog.AggressorSell
		}
		common.TradePx = g.cfg.BasePrice + float64(g.seq%7)*0.01
		common.TradeSize = float64(10 + g.seq%20)
		return common
	case 4, 5:
		g.orderID++
		common.Type = eventlog.EventTypeOrder
		common.OrderID = orderIDString(g.orderID)
		common.OrderState = eventlog.OrderStateNew
		common.OrderPx = g.cfg.BasePrice - 0.05
		common.OrderSize = 100
		common.OrderFilled = 0
		return common
	case 6:
		common.Type = eventlog.EventTypeBar
		common.TsOpenNs = g.nowNs - g.cfg.IntervalNs*10
		common.TsCloseNs = g.nowNs
		common.BarOpen = g.cfg.BasePrice
		common.BarHigh = g.cfg.BasePrice + 0.10
		common.BarLow = g.cfg.BasePrice - 0.10
		common.BarClose = g.cfg.BasePrice + 0.02
		common.BarVolume = 1000
		return common
	default:
		common.Type = eventlog.EventTypeDepth
		common.Side = eventlog.SideBid
		if g.seq%2 == 0 {
			common.Side = eventlog.SideAsk
		}
		common.Op = eventlog.DepthOpAdd
		common.Level = int32(g.seq % uint64(g.cfg.DepthLevels))
		common.DepthPx = g.cfg.BasePrice - float64(common.Level)*0.01
		common.DepthSize = float64(50 + g.seq%100)
		return common
	}
}

func orderIDString(n int) string {
	const digits = "0123456789"
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = digits[n%10]
		n /= 10
	}
	return "ORD" + string(buf[i:])
}
