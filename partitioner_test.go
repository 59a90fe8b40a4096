// Copyright (c) 2025 Neomantra Corp

package eventlog_test

import (
	"time"

	"github.com/marketlogio/eventlog"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Partitioner", func() {
	var p *eventlog.Partitioner

	BeforeEach(func() {
		p = eventlog.NewPartitioner("/data/eventlog")
	})

	Context("PathFor", func() {
		It("builds the canonical {SYMBOL}/{YYYY}/{MM}/{DD} layout", func() {
			t := time.Date(2026, 3, 4, 15, 0, 0, 0, time.UTC)
			path := p.PathFor("aapl", t.UnixNano())
			Expect(path).To(Equal("/data/eventlog/AAPL/2026/03/04" + eventlog.FileExtension))
		})
	})

	Context("ExtractSymbol and ExtractDate", func() {
		It("round-trips a path produced by PathFor", func() {
			t := time.Date(2026, 3, 4, 15, 0, 0, 0, time.UTC)
			path := p.PathFor("MSFT", t.UnixNano())

			sym, err := p.ExtractSymbol(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(sym).To(Equal("MSFT"))

			date, err := p.ExtractDate(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(date).To(Equal(t.Truncate(24 * time.Hour)))
		})
		It("errors on a malformed path", func() {
			_, err := p.ExtractSymbol("/data/eventlog/AAPL")
			Expect(err).To(HaveOccurred())
		})
	})
})
