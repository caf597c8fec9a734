package transport

import "net"

// Broadcaster sends point-cloud and triangulation frames to a single
// UDP destination. It holds no domain state of its own; callers pass
// the current values from engine.Engine on every call.
type Broadcaster struct {
	conn   *net.UDPConn
	closed bool
}

// Dial resolves addr (host:port) and returns a Broadcaster that writes
// to it over UDP. Dial uses net.DialUDP, so the socket is connected to
// addr and every subsequent Write goes there without a repeated address
// lookup.
func Dial(addr string) (*Broadcaster, error) {
	raddr, err := net.ResolveUDPAddr("udp", addr)
	if err != nil {
		return nil, transportErrorf("Dial", err)
	}
	conn, err := net.DialUDP("udp", nil, raddr)
	if err != nil {
		return nil, transportErrorf("Dial", err)
	}
	return &Broadcaster{conn: conn}, nil
}

// SendPoints encodes coords (the interleaved x, y pairs from
// engine.Engine.Points) as a FramePoints message and writes it.
func (b *Broadcaster) SendPoints(coords []float64) error {
	if b.closed {
		return transportErrorf("SendPoints", ErrClosed)
	}
	_, err := b.conn.Write(encodePoints(coords))
	if err != nil {
		return transportErrorf("SendPoints", err)
	}
	return nil
}

// SendTriangles encodes triangles (from engine.Engine.Triangles) as a
// FrameTriangles message and writes it.
func (b *Broadcaster) SendTriangles(triangles [][3]int) error {
	if b.closed {
		return transportErrorf("SendTriangles", ErrClosed)
	}
	_, err := b.conn.Write(encodeTriangles(triangles))
	if err != nil {
		return transportErrorf("SendTriangles", err)
	}
	return nil
}

// Close releases the underlying UDP socket. Further Send calls return
// ErrClosed.
func (b *Broadcaster) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	return b.conn.Close()
}
