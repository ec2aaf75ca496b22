package velmod

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"

	"gonum.org/v1/gonum/mat"
)

// SEG-Y rev 1 fixed layout: 3200-byte textual header, 400-byte binary
// header, then traces of a 240-byte header plus ns 4-byte samples.
// All multi-byte fields are big-endian.
const (
	segyTextHeaderLen   = 3200
	segyBinaryHeaderLen = 400
	segyTraceHeaderLen  = 240

	// Binary-header field offsets from the start of the file.
	segySamplesPerTraceOff = 3220 // int16, samples per data trace
	segyFormatCodeOff      = 3224 // int16, data sample format code
)

// Data sample format codes.
const (
	segyFormatIBMFloat  = 1
	segyFormatIEEEFloat = 5
)

// Sanity caps. Real survey lines run to a few thousand samples per
// trace and at most tens of thousands of traces; these bounds only
// reject nonsense headers before any allocation.
const (
	segyMaxSamplesPerTrace = 1 << 16
	segyMaxTraces          = 1 << 20
)

// readSEGY decodes the trace data of a SEG-Y file into a dense matrix
// in the format's native layout: one row per depth sample, one column
// per trace. Sample formats 1 (IBM float) and 5 (IEEE float) are
// supported.
func readSEGY(path string) (*mat.Dense, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("segy %s: %w", path, err)
	}
	if len(raw) < segyTextHeaderLen+segyBinaryHeaderLen {
		return nil, fmt.Errorf("segy %s: file shorter than the 3600-byte header (%d bytes)",
			path, len(raw))
	}

	ns := int(int16(binary.BigEndian.Uint16(raw[segySamplesPerTraceOff:])))
	format := int(int16(binary.BigEndian.Uint16(raw[segyFormatCodeOff:])))
	if ns <= 0 || ns > segyMaxSamplesPerTrace {
		return nil, fmt.Errorf("segy %s: implausible samples per trace %d", path, ns)
	}
	if format != segyFormatIBMFloat && format != segyFormatIEEEFloat {
		return nil, fmt.Errorf("segy %s: unsupported sample format %d (supported: 1=IBM float, 5=IEEE float)",
			path, format)
	}

	body := raw[segyTextHeaderLen+segyBinaryHeaderLen:]
	traceLen := segyTraceHeaderLen + 4*ns
	if len(body) == 0 || len(body)%traceLen != 0 {
		return nil, fmt.Errorf("segy %s: %d bytes of trace data is not a whole number of %d-byte traces",
			path, len(body), traceLen)
	}
	ntraces := len(body) / traceLen
	if ntraces > segyMaxTraces {
		return nil, fmt.Errorf("segy %s: implausible trace count %d", path, ntraces)
	}

	m := mat.NewDense(ns, ntraces, nil)
	for t := 0; t < ntraces; t++ {
		samples := body[t*traceLen+segyTraceHeaderLen : (t+1)*traceLen]
		for s := 0; s < ns; s++ {
			bits := binary.BigEndian.Uint32(samples[4*s:])
			if format == segyFormatIBMFloat {
				m.Set(s, t, ibmToFloat64(bits))
			} else {
				m.Set(s, t, float64(math.Float32frombits(bits)))
			}
		}
	}
	return m, nil
}

// ibmToFloat64 converts an IBM System/360 hexadecimal float: 1 sign
// bit, 7-bit excess-64 base-16 exponent, 24-bit mantissa in [1/16, 1).
func ibmToFloat64(bits uint32) float64 {
	mant := float64(bits&0x00ffffff) / float64(1<<24)
	exp := int(bits>>24&0x7f) - 64
	v := mant * math.Pow(16, float64(exp))
	if bits&0x80000000 != 0 {
		return -v
	}
	return v
}
