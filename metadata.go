// Copyright (c) 2025 Neomantra Corp

package eventlog

import (
	"fmt"
	"os"
	"strconv"

	pqfile "github.com/apache/arrow-go/v18/parquet/file"
	"github.com/apache/arrow-go/v18/parquet/metadata"
	"github.com/google/uuid"
)

// FileMetadata is the per-file footer record described in
// SPEC_FULL.md §4.5: enough to identify, audit and reconcile a single
// EventLog partition file without opening a second source of truth.
type FileMetadata struct {
	SchemaVersion   string
	WriterVersion   string
	IngestSessionID string
	IngestHost      string
	IngestStartNs   int64
	IngestEndNs     int64
	Symbol          string
	Venue           string
	Source          string
	FeedMode        string
	WriteComplete   bool
}

const (
	keySchemaVersion = "eventlog.schema_version"
	keyWriterVersion = "eventlog.writer_version"
	keyIngestSession = "eventlog.ingest_session_id"
	keyIngestHost    = "eventlog.ingest_host"
	keyIngestStartNs = "eventlog.ingest_start_ns"
	keyIngestEndNs   = "eventlog.ingest_end_ns"
	keySymbol        = "eventlog.symbol"
	keyVenue         = "eventlog.venue"
	keySource        = "eventlog.source"
	keyFeedMode      = "eventlog.feed_mode"
	keyWriteComplete = "eventlog.write_complete"
)

// newIngestSessionID mints a fresh session identifier, one per opened
// Writer, the same way the teacher's dependency set already carries
// google/uuid for interval/session identifiers.
func newIngestSessionID() string {
	return uuid.NewString()
}

func ingestHost() string {
	host, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return host
}

// toKeyValueMetadata renders m as footer key-value pairs.
func (m FileMetadata) toKeyValueMetadata() *metadata.KeyValueMetadata {
	kv := metadata.NewKeyValueMetadata()
	kv.Append(keySchemaVersion, m.SchemaVersion)
	kv.Append(keyWriterVersion, m.WriterVersion)
	kv.Append(keyIngestSession, m.IngestSessionID)
	kv.Append(keyIngestHost, m.IngestHost)
	kv.Append(keyIngestStartNs, strconv.FormatInt(m.IngestStartNs, 10))
	kv.Append(keyIngestEndNs, strconv.FormatInt(m.IngestEndNs, 10))
	kv.Append(keySymbol, m.Symbol)
	kv.Append(keyVenue, m.Venue)
	kv.Append(keySource, m.Source)
	kv.Append(keyFeedMode, m.FeedMode)
	kv.Append(keyWriteComplete, strconv.FormatBool(m.WriteComplete))
	return kv
}

// readFileMetadata extracts FileMetadata from an open Parquet
// reader's footer key-value metadata.
func readFileMetadata(pf *pqfile.Reader) (FileMetadata, error) {
	kv := pf.MetaData().KeyValueMetadata()
	if kv == nil {
		return FileMetadata{}, newFormatError("file has no eventlog footer metadata")
	}
	get := func(key string) string {
		if v := kv.FindValue(key); v != nil {
			return *v
		}
		return ""
	}
	startNs, _ := strconv.ParseInt(get(keyIngestStartNs), 10, 64)
	endNs, _ := strconv.ParseInt(get(keyIngestEndNs), 10, 64)
	complete, _ := strconv.ParseBool(get(keyWriteComplete))

	m := FileMetadata{
		SchemaVersion:   get(keySchemaVersion),
		WriterVersion:   get(keyWriterVersion),
		IngestSessionID: get(keyIngestSession),
		IngestHost:      get(keyIngestHost),
		IngestStartNs:   startNs,
		IngestEndNs:     endNs,
		Symbol:          get(keySymbol),
		Venue:           get(keyVenue),
		Source:          get(keySource),
		FeedMode:        get(keyFeedMode),
		WriteComplete:   complete,
	}
	if m.SchemaVersion == "" {
		return m, newFormatError("missing schema_version in footer metadata")
	}
	if m.SchemaVersion != SchemaVersion {
		return m, newFormatError(fmt.Sprintf("unsupported schema_version %q, want %q", m.SchemaVersion, SchemaVersion))
	}
	return m, nil
}
