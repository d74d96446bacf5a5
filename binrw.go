package binrw

import "io"

// Stream is the byte-stream capability consumed by the read engine: a
// positioned read plus absolute and relative seeking. It is satisfied by
// *bytes.Reader, *os.File, and anything else implementing io.ReadSeeker.
//
// The engine only borrows a Stream. It never closes one, and it queries the
// current offset via Seek(0, io.SeekCurrent).
type Stream interface {
	io.Reader
	io.Seeker
}
