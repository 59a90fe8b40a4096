// Copyright (c) 2025 Neomantra Corp

package feedsim_test

import (
	"testing"

	"github.com/marketlogio/eventlog/internal/feedsim"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestFeedsim(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "feedsim suite")
}

var _ = Describe("Generator", func() {
	It("produces a strictly increasing seq for the same config", func() {
		gen := feedsim.New(feedsim.Config{Venue: "XNAS", Symbol: "AAPL", Source: "feedsim", StartNs: 1000})
		var lastSeq uint64
		for i := 0; i < 200; i++ {
			e := gen.Next()
			Expect(e.Seq).To(BeNumerically(">", lastSeq))
			lastSeq = e.Seq
			Expect(e.Symbol).To(Equal("AAPL"))
		}
	})

	It("is deterministic across independent generators with the same config", func() {
		cfg := feedsim.Config{Venue: "XNAS", Symbol: "AAPL", Source: "feedsim", StartNs: 1000}
		g1 := feedsim.New(cfg)
		g2 := feedsim.New(cfg)
		for i := 0; i < 50; i++ {
			e1 := g1.Next()
			e2 := g2.Next()
			Expect(e1.Type).To(Equal(e2.Type))
			Expect(e1.Seq).To(Equal(e2.Seq))
			Expect(e1.TsEventNs).To(Equal(e2.TsEventNs))
		}
	})

	It("emits a heartbeat every 50 events", func() {
		gen := feedsim.New(feedsim.Config{Venue: "XNAS", Symbol: "AAPL", Source: "feedsim", StartNs: 1000})
		var sawHeartbeat bool
		for i := 0; i < 50; i++ {
			if gen.Next().Type.String() == "heartbeat" {
				sawHeartbeat = true
			}
		}
		Expect(sawHeartbeat).To(BeTrue())
	})
})
