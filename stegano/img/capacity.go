package img
import (
	"fmt"
	"pixelsteg/stegano/util"
)

// one payload bit per pixel.
func Capacity( cover Cover ) int {
	return cover.Height() * cover.Width()
}

func HasCapacity( cover Cover, bits []bool ) bool {
	return len(bits) <= Capacity( cover )
}

// how many characters of text fit into the cover.
func TextCapacity( cover Cover ) int {
	return Capacity( cover ) / util.CharSize
}

// true if the framed form of m fits into the cover.
func ImageFits( cover Cover, m Mono ) bool {
	return HeaderSize + m.Height() * m.Width() <= Capacity( cover )
}

func checkCapacity( cover Cover, bits []bool ) error {
	if HasCapacity( cover, bits ) == false {
		return fmt.Errorf("%w: %d bits into %dx%d cover (%d bits)",
			util.ErrCapacityExceeded, len(bits), cover.Height(), cover.Width(), Capacity( cover ))
	}
	return nil
}
