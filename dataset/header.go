package dataset

import (
	"fmt"

	"github.com/arloliu/linefit/endian"
	"github.com/arloliu/linefit/errs"
	"github.com/arloliu/linefit/format"
)

const (
	// HeaderSize is the fixed size of a dataset blob header in bytes.
	HeaderSize = 20
	// Magic identifies a dataset blob ("LF").
	Magic uint16 = 0x4C46
	// Version is the blob format version written by Encode.
	Version uint8 = 1

	// pointSize is the payload size of one point: x and y as float64.
	pointSize = 16

	flagBigEndian uint8 = 0x01
)

// Header is the fixed-size section at the start of a dataset blob.
type Header struct {
	Version     uint8                  // byte offset 2
	Compression format.CompressionType // byte offset 3
	Flags       uint8                  // byte offset 4
	PointCount  uint32                 // byte offset 8-11
	Checksum    uint64                 // byte offset 12-19
}

// Engine returns the byte order selected by the header flags.
func (h *Header) Engine() endian.EndianEngine {
	if h.Flags&flagBigEndian != 0 {
		return endian.GetBigEndianEngine()
	}

	return endian.GetLittleEndianEngine()
}

// Bytes serializes the header.
func (h *Header) Bytes() []byte {
	b := make([]byte, HeaderSize)
	engine := h.Engine()

	engine.PutUint16(b[0:2], Magic)
	b[2] = h.Version
	b[3] = byte(h.Compression)
	b[4] = h.Flags
	engine.PutUint32(b[8:12], h.PointCount)
	engine.PutUint64(b[12:20], h.Checksum)

	return b
}

// Parse parses the header from the start of data.
//
// The flags byte is read first because it decides how the multi-byte fields,
// including the magic number, are laid out.
func (h *Header) Parse(data []byte) error {
	if len(data) < HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	h.Flags = data[4]
	engine := h.Engine()

	if engine.Uint16(data[0:2]) != Magic {
		return errs.ErrInvalidMagic
	}

	h.Version = data[2]
	if h.Version != Version {
		return fmt.Errorf("%w: %d", errs.ErrUnsupportedVersion, h.Version)
	}

	h.Compression = format.CompressionType(data[3])
	if !h.Compression.Valid() {
		return fmt.Errorf("invalid compression type in header: %d", data[3])
	}

	h.PointCount = engine.Uint32(data[8:12])
	h.Checksum = engine.Uint64(data[12:20])

	return nil
}

// ParseHeader parses a Header from the start of data.
func ParseHeader(data []byte) (Header, error) {
	h := Header{}
	if err := h.Parse(data); err != nil {
		return Header{}, err
	}

	return h, nil
}
