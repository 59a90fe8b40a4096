// Copyright (c) 2025 Neomantra Corp

package eventlog_test

import (
	"github.com/marketlogio/eventlog"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const testBaseTsNs = int64(1_700_000_000_000_000_000)

func baseEvent() eventlog.Event {
	return eventlog.Event{
		TsEventNs:     testBaseTsNs,
		TsReceiveNs:   testBaseTsNs + 500,
		TsMonotonicNs: 5_000_000,
		Venue:         "XNAS",
		Symbol:        "AAPL",
		Source:        "feedsim",
		Seq:           1,
	}
}

var _ = Describe("Validator", func() {
	var v *eventlog.Validator

	BeforeEach(func() {
		v = eventlog.NewValidator()
	})

	Context("common invariants", func() {
		It("rejects an empty symbol", func() {
			e := baseEvent()
			e.Symbol = ""
			e.Type = eventlog.EventTypeHeartbeat
			Expect(v.Validate(&e)).To(HaveOccurred())
		})
		It("accepts ts_receive_ns trailing ts_event_ns within the 60s skew bound", func() {
			e := baseEvent()
			e.TsReceiveNs = e.TsEventNs - 1
			e.Type = eventlog.EventTypeHeartbeat
			Expect(v.Validate(&e)).NotTo(HaveOccurred())
		})
		It("rejects ts_receive_ns trailing ts_event_ns by more than 60s", func() {
			e := baseEvent()
			e.TsReceiveNs = e.TsEventNs - 61_000_000_000
			e.Type = eventlog.EventTypeHeartbeat
			Expect(v.Validate(&e)).To(HaveOccurred())
		})
		It("rejects a timestamp outside [2020-01-01, 2050-01-01)", func() {
			e := baseEvent()
			e.TsEventNs = 1_000
			e.Type = eventlog.EventTypeHeartbeat
			Expect(v.Validate(&e)).To(HaveOccurred())
		})
		It("rejects seq == 0", func() {
			e := baseEvent()
			e.Seq = 0
			e.Type = eventlog.EventTypeHeartbeat
			Expect(v.Validate(&e)).To(HaveOccurred())
		})
		It("rejects a non-increasing seq within a stream", func() {
			e1 := baseEvent()
			e1.Type = eventlog.EventTypeHeartbeat
			Expect(v.Validate(&e1)).NotTo(HaveOccurred())
			v.Accept(&e1)

			e2 := baseEvent()
			e2.Type = eventlog.EventTypeHeartbeat
			e2.Seq = 1
			Expect(v.Validate(&e2)).To(HaveOccurred())
		})
		It("accepts a strictly increasing seq", func() {
			e1 := baseEvent()
			e1.Type = eventlog.EventTypeHeartbeat
			Expect(v.Validate(&e1)).NotTo(HaveOccurred())
			v.Accept(&e1)

			e2 := baseEvent()
			e2.Type = eventlog.EventTypeHeartbeat
			e2.Seq = 2
			e2.TsEventNs = e1.TsEventNs + 1
			e2.TsReceiveNs = e1.TsReceiveNs + 1
			e2.TsMonotonicNs = e1.TsMonotonicNs + 1
			Expect(v.Validate(&e2)).NotTo(HaveOccurred())
		})
		It("rejects a decreasing ts_monotonic_ns within a stream", func() {
			e1 := baseEvent()
			e1.Type = eventlog.EventTypeHeartbeat
			Expect(v.Validate(&e1)).NotTo(HaveOccurred())
			v.Accept(&e1)

			e2 := baseEvent()
			e2.Type = eventlog.EventTypeHeartbeat
			e2.Seq = 2
			e2.TsMonotonicNs = e1.TsMonotonicNs - 1
			Expect(v.Validate(&e2)).To(HaveOccurred())
		})
	})

	Context("depth events", func() {
		It("requires a known side", func() {
			e := baseEvent()
			e.Type = eventlog.EventTypeDepth
			e.Op = eventlog.DepthOpAdd
			e.DepthPx = 10
			e.DepthSize = 1
			Expect(v.Validate(&e)).To(HaveOccurred())
		})
		It("accepts a well-formed add", func() {
			e := baseEvent()
			e.Type = eventlog.EventTypeDepth
			e.Side = eventlog.SideBid
			e.Op = eventlog.DepthOpAdd
			e.Level = 0
			e.DepthPx = 10
			e.DepthSize = 1
			Expect(v.Validate(&e)).NotTo(HaveOccurred())
		})
		It("rejects a level at or above 1000", func() {
			e := baseEvent()
			e.Type = eventlog.EventTypeDepth
			e.Side = eventlog.SideBid
			e.Op = eventlog.DepthOpAdd
			e.Level = 1000
			e.DepthPx = 10
			e.DepthSize = 1
			Expect(v.Validate(&e)).To(HaveOccurred())
		})
	})

	Context("trade events", func() {
		It("rejects a non-positive trade size", func() {
			e := baseEvent()
			e.Type = eventlog.EventTypeTrade
			e.Aggressor = eventlog.AggressorBuy
			e.TradePx = 10
			e.TradeSize = 0
			Expect(v.Validate(&e)).To(HaveOccurred())
		})
	})

	Context("order events", func() {
		It("rejects filled quantity exceeding order size", func() {
			e := baseEvent()
			e.Type = eventlog.EventTypeOrder
			e.OrderID = "ORD1"
			e.OrderState = eventlog.OrderStateFilled
			e.OrderSize = 10
			e.OrderFilled = 11
			Expect(v.Validate(&e)).To(HaveOccurred())
		})
	})

	Context("bar events", func() {
		It("rejects a bar whose close falls outside [low, high]", func() {
			e := baseEvent()
			e.Type = eventlog.EventTypeBar
			e.TsOpenNs = 0
			e.TsCloseNs = 100
			e.BarOpen = 10
			e.BarHigh = 12
			e.BarLow = 9
			e.BarClose = 20
			Expect(v.Validate(&e)).To(HaveOccurred())
		})
		It("accepts a well-formed bar", func() {
			e := baseEvent()
			e.Type = eventlog.EventTypeBar
			e.TsOpenNs = 0
			e.TsCloseNs = 100
			e.BarOpen = 10
			e.BarHigh = 12
			e.BarLow = 9
			e.BarClose = 11
			e.BarVolume = 500
			Expect(v.Validate(&e)).NotTo(HaveOccurred())
		})
	})
})
