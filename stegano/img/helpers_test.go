package img

// deterministic cover with varied high bits.
func testCover( height, width int ) Cover {
	c := NewCover( height, width )
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c[y][x] = RGB( (x * 17) ^ (y * 31), (x * 43) + (y * 13), (x * 7) ^ (y * 11) )
		}
	}
	return c
}

func testBits( n int ) []bool {
	bits := make( []bool, n )
	for i := range bits {
		bits[i] = (i * 7 + i / 3) % 5 < 2
	}
	return bits
}

func testMono( height, width int ) Mono {
	m := NewMono( height, width )
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			m[y][x] = (x + 2 * y) % 3 == 0
		}
	}
	return m
}

func equalBits( a, b []bool ) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
