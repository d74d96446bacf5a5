package binread

import (
	"io"

	"github.com/Holzhaus/binrw/errors"
)

// streamPos reports the current stream offset.
func streamPos(s Stream) (int64, error) {
	return s.Seek(0, io.SeekCurrent)
}

// readRestoring fills buf from the stream. On failure the stream position is
// restored to where it was before the attempt, so no partial consumption is
// observable. This is the read used by the fixed-width primitives.
func readRestoring(s Stream, buf []byte, typeName string) error {
	pos, err := streamPos(s)
	if err != nil {
		return errors.IO(errors.PhaseDecode, -1, err)
	}
	n, err := io.ReadFull(s, buf)
	if err != nil {
		if _, serr := s.Seek(pos, io.SeekStart); serr != nil {
			return errors.IO(errors.PhaseDecode, pos, serr)
		}
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return errors.ShortRead(errors.PhaseDecode, typeName, pos, len(buf), n)
		}
		return errors.IO(errors.PhaseDecode, pos, err)
	}
	return nil
}
