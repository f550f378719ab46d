// Package input turns files and byte streams into the line sequence consumed
// by the aggregation pipeline, transparently decompressing compressed traces.
//
// Trace archives show up in whatever format the capture pipeline happened to
// use, so the compression format is sniffed from the stream's leading magic
// bytes rather than the file name. Detection only peeks; it works on
// non-seekable streams such as pipes, which keeps `zcat log.gz | tool` and
// `tool --input log.gz` equivalent.
//
// Supported formats: plain text, gzip, zstd, xz, bzip2, lz4, and s2/snappy
// framed streams. The zstd decoder is selected at build time: the default is
// the pure Go decoder, the cgozstd build tag switches to the cgo bindings.
package input
