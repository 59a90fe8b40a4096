// Copyright (c) 2025 Neomantra Corp

package eventlog_test

import (
	"time"

	"github.com/marketlogio/eventlog"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Time source", func() {
	Context("timestamp round-trip", func() {
		It("parses and formats ISO-8601 losslessly to the nanosecond", func() {
			t := time.Date(2026, 3, 4, 12, 30, 0, 123456789, time.UTC)
			s := eventlog.FormatTimestamp(t.UnixNano())
			parsed, err := eventlog.ParseTimestamp(s)
			Expect(err).NotTo(HaveOccurred())
			Expect(parsed).To(Equal(t.UnixNano()))
		})
		It("rejects malformed timestamps", func() {
			_, err := eventlog.ParseTimestamp("not-a-timestamp")
			Expect(err).To(HaveOccurred())
		})
	})
	Context("date truncation", func() {
		It("truncates to UTC midnight", func() {
			t := time.Date(2026, 3, 4, 23, 59, 59, 0, time.UTC)
			d := eventlog.DateOf(t.UnixNano())
			Expect(d).To(Equal(time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)))
		})
	})
	Context("monotonic clock", func() {
		It("never goes backwards", func() {
			a := eventlog.MonotonicNowNanos()
			b := eventlog.MonotonicNowNanos()
			Expect(b).To(BeNumerically(">=", a))
		})
	})
})
