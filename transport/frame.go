package transport

import (
	"encoding/binary"
	"math"
)

// FrameKind distinguishes the two message shapes a Broadcaster emits.
type FrameKind byte

const (
	// FramePoints carries the current point cloud as interleaved
	// (x, y) float64 pairs.
	FramePoints FrameKind = 1
	// FrameTriangles carries the latest triangulation as flat uint32
	// vertex-index triples.
	FrameTriangles FrameKind = 2
)

const headerLen = 1 + 4 // kind byte + uint32 length prefix

// encodePoints serializes coords (interleaved x, y) into a FramePoints
// wire message: kind byte, big-endian uint32 byte length, then 8 bytes
// per float64 in big-endian IEEE 754 order.
func encodePoints(coords []float64) []byte {
	payload := make([]byte, 8*len(coords))
	for i, v := range coords {
		binary.BigEndian.PutUint64(payload[i*8:], math.Float64bits(v))
	}
	return encodeFrame(FramePoints, payload)
}

// encodeTriangles serializes triangles into a FrameTriangles wire
// message: kind byte, big-endian uint32 byte length, then 4 bytes per
// vertex index (3 per triangle) in big-endian order.
func encodeTriangles(triangles [][3]int) []byte {
	payload := make([]byte, 12*len(triangles))
	for i, tri := range triangles {
		base := i * 12
		binary.BigEndian.PutUint32(payload[base:], uint32(tri[0]))
		binary.BigEndian.PutUint32(payload[base+4:], uint32(tri[1]))
		binary.BigEndian.PutUint32(payload[base+8:], uint32(tri[2]))
	}
	return encodeFrame(FrameTriangles, payload)
}

func encodeFrame(kind FrameKind, payload []byte) []byte {
	out := make([]byte, headerLen+len(payload))
	out[0] = byte(kind)
	binary.BigEndian.PutUint32(out[1:], uint32(len(payload)))
	copy(out[headerLen:], payload)
	return out
}

// DecodeFrame splits a raw received message into its kind and payload,
// validating the length prefix against the actual message length. It is
// the receive-side counterpart a test harness (or test code in this
// repository) uses to verify what a Broadcaster sent.
func DecodeFrame(msg []byte) (kind FrameKind, payload []byte, err error) {
	if len(msg) < headerLen {
		return 0, nil, transportErrorf("DecodeFrame", ErrShortFrame)
	}
	kind = FrameKind(msg[0])
	n := binary.BigEndian.Uint32(msg[1:headerLen])
	if int(n) != len(msg)-headerLen {
		return 0, nil, transportErrorf("DecodeFrame", ErrLengthMismatch)
	}
	return kind, msg[headerLen:], nil
}

// DecodePoints decodes a FramePoints payload back into interleaved
// (x, y) float64 pairs.
func DecodePoints(payload []byte) []float64 {
	out := make([]float64, len(payload)/8)
	for i := range out {
		out[i] = math.Float64frombits(binary.BigEndian.Uint64(payload[i*8:]))
	}
	return out
}

// DecodeTriangles decodes a FrameTriangles payload back into triangle
// vertex-index triples.
func DecodeTriangles(payload []byte) [][3]int {
	out := make([][3]int, len(payload)/12)
	for i := range out {
		base := i * 12
		out[i] = [3]int{
			int(binary.BigEndian.Uint32(payload[base:])),
			int(binary.BigEndian.Uint32(payload[base+4:])),
			int(binary.BigEndian.Uint32(payload[base+8:])),
		}
	}
	return out
}
