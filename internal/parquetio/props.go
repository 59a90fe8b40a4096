// Copyright (c) 2025 Neomantra Corp

package parquetio

import (
	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/compress"
)

// WriterProperties returns the parquet.WriterProperties shared by
// every EventLog file: Parquet format version 2 and zstd page
// compression (Arrow-go's zstd codec, backed by the same
// klauspost/compress family already used for the plain-file zstd
// helpers in compressed_io.go).
func WriterProperties() *parquet.WriterProperties {
	return parquet.NewWriterProperties(
		parquet.WithVersion(parquet.V2_LATEST),
		parquet.WithCompression(compress.Codecs.Zstd),
		parquet.WithDictionaryDefault(true),
	)
}
