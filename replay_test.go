// Copyright (c) 2025 Neomantra Corp

package eventlog_test

import (
	"context"
	"os"
	"path/filepath"

	"github.com/marketlogio/eventlog"
	"github.com/marketlogio/eventlog/internal/feedsim"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Replay", func() {
	var dir string

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "eventlog-replay-*")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		os.RemoveAll(dir)
	})

	It("orders events by seq across multiple per-day files of one stream", func() {
		var files []string
		var seqCursor uint64
		startNs := int64(1_700_000_000_000_000_000)

		for day := 0; day < 3; day++ {
			path := filepath.Join(dir, "AAPL."+string(rune('0'+day))+".eventlog.parquet")
			w, err := eventlog.CreateWriter(path, "AAPL", eventlog.WriterOptions{Venue: "XNAS", Source: "feedsim"})
			Expect(err).NotTo(HaveOccurred())

			gen := feedsim.New(feedsim.Config{Venue: "XNAS", Symbol: "AAPL", Source: "feedsim", StartNs: startNs + int64(day)*86_400_000_000_000})
			for i := 0; i < 100; i++ {
				e := gen.Next()
				e.Seq += seqCursor
				Expect(w.Append(e)).NotTo(HaveOccurred())
			}
			seqCursor += 100
			Expect(w.Close()).NotTo(HaveOccurred())
			files = append(files, path)
		}

		replay := eventlog.NewReplay("feedsim", "AAPL", files)
		Expect(replay.Open(context.Background())).NotTo(HaveOccurred())
		defer replay.Close()

		var lastSeq uint64
		count := 0
		for {
			e, ok, err := replay.Next()
			Expect(err).NotTo(HaveOccurred())
			if !ok {
				break
			}
			Expect(e.Seq).To(BeNumerically(">", lastSeq))
			lastSeq = e.Seq
			count++
		}
		Expect(count).To(Equal(300))
	})
})
