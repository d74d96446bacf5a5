package binread

import (
	binrw "github.com/Holzhaus/binrw"
)

// Stream is the seekable byte-stream capability the engine decodes from.
type Stream = binrw.Stream
