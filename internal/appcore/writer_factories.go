package appcore

import (
	"io"

	"seqlab/internal/output"
	"seqlab/internal/writers"
	"seqlab/pkg/api"
)

// ---------------- Report writer ----------------

type ReportWriterFactory struct {
	Format string
	Opts   writers.Options
}

func NewReportWriterFactory(format string, o writers.Options) ReportWriterFactory {
	return ReportWriterFactory{Format: format, Opts: o}
}

func (w ReportWriterFactory) Start(out io.Writer, bufSize int) (chan<- api.ExportV1, <-chan error) {
	return writers.StartReportWriter(out, w.Format, w.Opts, bufSize)
}

// ---------------- ORF writer ----------------

type ORFWriterFactory struct {
	Format string
	Opts   writers.Options
}

func NewORFWriterFactory(format string, o writers.Options) ORFWriterFactory {
	return ORFWriterFactory{Format: format, Opts: o}
}

func (w ORFWriterFactory) Start(out io.Writer, bufSize int) (chan<- output.ORFRecord, <-chan error) {
	return writers.StartORFWriter(out, w.Format, w.Opts, bufSize)
}
