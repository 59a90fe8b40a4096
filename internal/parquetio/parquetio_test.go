// Copyright (c) 2025 Neomantra Corp

package parquetio_test

import (
	"os"
	"path/filepath"
	"testing"

	pqfile "github.com/apache/arrow-go/v18/parquet/file"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/marketlogio/eventlog/internal/parquetio"
)

func TestParquetio(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "parquetio suite")
}

func ptr[T any](v T) *T { return &v }

var _ = Describe("WriteRowGroup and ReadRowGroup", func() {
	var dir, path string

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "parquetio-test-*")
		Expect(err).NotTo(HaveOccurred())
		path = filepath.Join(dir, "rows.parquet")
	})

	AfterEach(func() {
		os.RemoveAll(dir)
	})

	It("round-trips a mix of required and optional columns through one row group", func() {
		rows := []parquetio.Row{
			{
				TsEventNs: 100, TsReceiveNs: 150, TsMonotonicNs: 1, EventType: 0,
				Venue: "XNAS", Symbol: "AAPL", Source: "feedsim", Seq: 1,
			},
			{
				TsEventNs: 200, TsReceiveNs: 250, TsMonotonicNs: 2, EventType: 1,
				Venue: "XNAS", Symbol: "AAPL", Source: "feedsim", Seq: 2,
				Side: ptr(int8(0)), Op: ptr(int8(0)), Level: ptr(int32(0)),
				DepthPriceF: ptr(10.5), DepthPriceD: ptr(parquetio.Decimal128{}),
				DepthSizeF: ptr(3.0), DepthSizeD: ptr(parquetio.Decimal128{}),
			},
			{
				TsEventNs: 300, TsReceiveNs: 350, TsMonotonicNs: 3, EventType: 3,
				Venue: "XNAS", Symbol: "AAPL", Source: "feedsim", Seq: 3,
				OrderID: ptr("ORD1"), OrderState: ptr(int8(0)),
				OrderReason: ptr("because"),
			},
		}

		f, err := os.Create(path)
		Expect(err).NotTo(HaveOccurred())
		pw := pqfile.NewParquetWriter(f, parquetio.GroupNode(), pqfile.WithWriterProps(parquetio.WriterProperties()))
		rgw := pw.AppendBufferedRowGroup()
		Expect(parquetio.WriteRowGroup(rgw, rows)).NotTo(HaveOccurred())
		Expect(rgw.Close()).NotTo(HaveOccurred())
		Expect(pw.FlushWithFooter()).NotTo(HaveOccurred())
		Expect(pw.Close()).NotTo(HaveOccurred())
		Expect(f.Close()).NotTo(HaveOccurred())

		pf, err := pqfile.OpenParquetFile(path, false)
		Expect(err).NotTo(HaveOccurred())
		defer pf.Close()

		Expect(pf.NumRowGroups()).To(Equal(1))
		got, err := parquetio.ReadRowGroup(pf, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(HaveLen(3))

		Expect(got[0].Seq).To(Equal(uint64(1)))
		Expect(got[0].Side).To(BeNil())
		Expect(got[0].OrderID).To(BeNil())

		Expect(got[1].Seq).To(Equal(uint64(2)))
		Expect(*got[1].Side).To(Equal(int8(0)))
		Expect(*got[1].DepthPriceF).To(Equal(10.5))

		Expect(got[2].Seq).To(Equal(uint64(3)))
		Expect(*got[2].OrderID).To(Equal("ORD1"))
		Expect(*got[2].OrderReason).To(Equal("because"))
	})

	It("reports ts_event_ns and seq row-group statistics for pruning", func() {
		rows := []parquetio.Row{
			{TsEventNs: 100, TsReceiveNs: 100, Venue: "X", Symbol: "A", Source: "s", Seq: 5},
			{TsEventNs: 300, TsReceiveNs: 300, Venue: "X", Symbol: "A", Source: "s", Seq: 9},
		}
		f, err := os.Create(path)
		Expect(err).NotTo(HaveOccurred())
		pw := pqfile.NewParquetWriter(f, parquetio.GroupNode(), pqfile.WithWriterProps(parquetio.WriterProperties()))
		rgw := pw.AppendBufferedRowGroup()
		Expect(parquetio.WriteRowGroup(rgw, rows)).NotTo(HaveOccurred())
		Expect(rgw.Close()).NotTo(HaveOccurred())
		Expect(pw.FlushWithFooter()).NotTo(HaveOccurred())
		Expect(pw.Close()).NotTo(HaveOccurred())
		Expect(f.Close()).NotTo(HaveOccurred())

		pf, err := pqfile.OpenParquetFile(path, false)
		Expect(err).NotTo(HaveOccurred())
		defer pf.Close()

		tsRange := parquetio.TsEventRange(pf, 0)
		Expect(tsRange.HasStats).To(BeTrue())
		Expect(tsRange.Min).To(Equal(int64(100)))
		Expect(tsRange.Max).To(Equal(int64(300)))

		seqRange := parquetio.SeqRange(pf, 0)
		Expect(seqRange.HasStats).To(BeTrue())
		Expect(seqRange.Min).To(Equal(int64(5)))
		Expect(seqRange.Max).To(Equal(int64(9)))
	})
})
