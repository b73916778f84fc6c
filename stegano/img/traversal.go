package img
import (
	"image"
)

/*
 * Traversal orders. Embedding and revealing walk the very same
 * sequence, so extraction order always mirrors embedding order.
 * Points are image coordinates: X is the column, Y the row.
 */

func RowMajor( height, width int ) []image.Point {
	if height <= 0 || width <= 0 {
		return nil
	}
	points := make( []image.Point, 0, height * width )
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			points = append( points, image.Pt(x, y) )
		}
	}
	return points
}

// concentric rings, outermost first, each traced clockwise from its top-left corner.
func SpiralOrder( height, width int ) []image.Point {
	if height <= 0 || width <= 0 {
		return nil
	}
	points := make( []image.Point, 0, height * width )
	for i := 0; i < height - i && i < width - i; i++ {
		top, bottom := i, height - i - 1
		left, right := i, width - i - 1

		for x := left; x <= right; x++ {
			points = append( points, image.Pt(x, top) )
		}
		for y := top + 1; y <= bottom; y++ {
			points = append( points, image.Pt(right, y) )
		}
		// a single remaining row was already covered by the top edge
		if bottom != top {
			for x := right - 1; x >= left; x-- {
				points = append( points, image.Pt(x, bottom) )
			}
		}
		// same for a single remaining column and the right edge
		if right != left {
			for y := bottom - 1; y >= top + 1; y-- {
				points = append( points, image.Pt(left, y) )
			}
		}
	}
	return points
}
