// Copyright (c) 2025 Neomantra Corp

package eventlog_test

import (
	"github.com/marketlogio/eventlog"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Decimal", func() {
	Context("round-trip", func() {
		It("encodes and decodes a price at scale 6", func() {
			d, err := eventlog.EncodeDecimal(123.456789, eventlog.PriceScale)
			Expect(err).NotTo(HaveOccurred())
			Expect(eventlog.DecodeDecimal(d, eventlog.PriceScale)).To(BeNumerically("~", 123.456789, 1e-6))
		})
		It("encodes and decodes a size at scale 3", func() {
			d, err := eventlog.EncodeDecimal(42.125, eventlog.SizeScale)
			Expect(err).NotTo(HaveOccurred())
			Expect(eventlog.DecodeDecimal(d, eventlog.SizeScale)).To(BeNumerically("~", 42.125, 1e-3))
		})
		It("round-trips zero", func() {
			d, err := eventlog.EncodeDecimal(0, eventlog.PriceScale)
			Expect(err).NotTo(HaveOccurred())
			Expect(eventlog.DecodeDecimal(d, eventlog.PriceScale)).To(Equal(0.0))
		})
		It("round-trips negative values", func() {
			d, err := eventlog.EncodeDecimal(-99.5, eventlog.SizeScale)
			Expect(err).NotTo(HaveOccurred())
			Expect(eventlog.DecodeDecimal(d, eventlog.SizeScale)).To(BeNumerically("~", -99.5, 1e-3))
		})
		It("does not carry binary float error into the stored coefficient", func() {
			d, err := eventlog.EncodeDecimal(0.1+0.2, eventlog.PriceScale)
			Expect(err).NotTo(HaveOccurred())
			Expect(eventlog.DecodeDecimal(d, eventlog.PriceScale)).To(BeNumerically("~", 0.3, 1e-6))
		})
	})
})
