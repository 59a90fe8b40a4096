// Copyright (c) 2025 Neomantra Corp

package eventlog_test

import (
	"os"
	"path/filepath"

	"github.com/marketlogio/eventlog"
	"github.com/marketlogio/eventlog/internal/feedsim"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Writer and Reader", func() {
	var dir string

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "eventlog-test-*")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		os.RemoveAll(dir)
	})

	Context("round trip", func() {
		It("writes events across several row groups and reads them back in order", func() {
			path := filepath.Join(dir, "AAPL.eventlog.parquet")
			w, err := eventlog.CreateWriter(path, "AAPL", eventlog.WriterOptions{
				Venue:           "XNAS",
				Source:          "feedsim",
				MaxRowsPerFlush: 100,
			})
			Expect(err).NotTo(HaveOccurred())

			gen := feedsim.New(feedsim.Config{Venue: "XNAS", Symbol: "AAPL", Source: "feedsim", StartNs: 1_700_000_000_000_000_000})
			const total = 1000
			for i := 0; i < total; i++ {
				Expect(w.Append(gen.Next())).NotTo(HaveOccurred())
			}
			Expect(w.Close()).NotTo(HaveOccurred())

			stats := w.Stats()
			Expect(stats.EventsReceived).To(Equal(int64(total)))
			Expect(stats.RowGroupsWritten).To(BeNumerically(">=", total/100))

			r, err := eventlog.OpenReader(path)
			Expect(err).NotTo(HaveOccurred())
			defer r.Close()

			meta := r.Metadata()
			Expect(meta.WriteComplete).To(BeTrue())
			Expect(meta.Symbol).To(Equal("AAPL"))
			Expect(meta.SchemaVersion).To(Equal(eventlog.SchemaVersion))

			var lastSeq uint64
			count := 0
			for {
				e, ok, err := r.Next()
				Expect(err).NotTo(HaveOccurred())
				if !ok {
					break
				}
				Expect(e.Seq).To(BeNumerically(">", lastSeq))
				lastSeq = e.Seq
				count++
			}
			Expect(count).To(Equal(total))
		})

		It("prunes row groups outside a seq filter", func() {
			path := filepath.Join(dir, "MSFT.eventlog.parquet")
			w, err := eventlog.CreateWriter(path, "MSFT", eventlog.WriterOptions{
				Venue:           "XNAS",
				Source:          "feedsim",
				MaxRowsPerFlush: 50,
			})
			Expect(err).NotTo(HaveOccurred())

			gen := feedsim.New(feedsim.Config{Venue: "XNAS", Symbol: "MSFT", Source: "feedsim", StartNs: 1_700_000_000_000_000_000})
			const total = 500
			for i := 0; i < total; i++ {
				Expect(w.Append(gen.Next())).NotTo(HaveOccurred())
			}
			Expect(w.Close()).NotTo(HaveOccurred())

			r, err := eventlog.OpenReader(path)
			Expect(err).NotTo(HaveOccurred())
			defer r.Close()

			r.SetSeqRange(1, 10)
			count := 0
			for {
				e, ok, err := r.Next()
				Expect(err).NotTo(HaveOccurred())
				if !ok {
					break
				}
				Expect(e.Seq).To(BeNumerically(">=", 1))
				Expect(e.Seq).To(BeNumerically("<=", 10))
				count++
			}
			Expect(count).To(Equal(10))
			Expect(r.RowGroupsTouched()).To(BeNumerically("<", total/50))
		})

		It("rejects out-of-order seq in strict disposition", func() {
			path := filepath.Join(dir, "BADSEQ.eventlog.parquet")
			w, err := eventlog.CreateWriter(path, "BADSEQ", eventlog.WriterOptions{
				Venue:       "XNAS",
				Source:      "feedsim",
				Disposition: eventlog.DispositionStrict,
			})
			Expect(err).NotTo(HaveOccurred())
			defer w.Close()

			e1 := eventlog.Event{TsEventNs: 1_700_000_000_000_000_000, TsReceiveNs: 1_700_000_000_000_000_000, Venue: "XNAS", Symbol: "BADSEQ", Source: "feedsim", Seq: 5, Type: eventlog.EventTypeHeartbeat}
			Expect(w.Append(e1)).NotTo(HaveOccurred())

			e2 := e1
			e2.Seq = 4
			Expect(w.Append(e2)).To(HaveOccurred())
		})

		It("skips but does not fail on a bad event in permissive disposition", func() {
			path := filepath.Join(dir, "PERMISSIVE.eventlog.parquet")
			w, err := eventlog.CreateWriter(path, "PERMISSIVE", eventlog.WriterOptions{
				Venue:       "XNAS",
				Source:      "feedsim",
				Disposition: eventlog.DispositionPermissive,
			})
			Expect(err).NotTo(HaveOccurred())

			e1 := eventlog.Event{TsEventNs: 1_700_000_000_000_000_000, TsReceiveNs: 1_700_000_000_000_000_000, Venue: "XNAS", Symbol: "PERMISSIVE", Source: "feedsim", Seq: 5, Type: eventlog.EventTypeHeartbeat}
			Expect(w.Append(e1)).NotTo(HaveOccurred())

			e2 := e1
			e2.Seq = 4
			Expect(w.Append(e2)).NotTo(HaveOccurred())

			Expect(w.Close()).NotTo(HaveOccurred())
			Expect(w.Stats().ValidationErrors).To(Equal(int64(1)))
		})
	})
})
