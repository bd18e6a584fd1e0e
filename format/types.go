package format

type (
	FormatType      uint8
	CompressionType uint8
)

const (
	FormatCSV     FormatType = 0x1 // FormatCSV represents comma-separated values output.
	FormatGnuplot FormatType = 0x2 // FormatGnuplot represents gnuplot space-separated columns output.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (f FormatType) String() string {
	switch f {
	case FormatCSV:
		return "CSV"
	case FormatGnuplot:
		return "Gnuplot"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
