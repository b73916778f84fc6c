package img

/*
 * Helpers to prepare payloads: packed 0xRRGGBB <-> channels,
 * grayscale and black & white conversions. They are not part of
 * the embedding itself.
 */

func Red( rgb Pixel ) int {
	return int( (rgb & 0xff0000) >> 16 )
}

func Green( rgb Pixel ) int {
	return int( (rgb & 0xff00) >> 8 )
}

func Blue( rgb Pixel ) int {
	return int( rgb & 0xff )
}

// mean of the three channels.
func Gray( rgb Pixel ) int {
	return ( clampColor( Red( rgb ) ) + clampColor( Green( rgb ) ) + clampColor( Blue( rgb ) ) ) / 3
}

// true (white) if gray is strictly above threshold.
func BW( gray, threshold int ) bool {
	return gray > threshold
}

func RGB( red, green, blue int ) Pixel {
	return Pixel( clampColor(red) << 16 | clampColor(green) << 8 | clampColor(blue) )
}

func GrayRGB( gray int ) Pixel {
	return RGB( gray, gray, gray )
}

func BoolRGB( white bool ) Pixel {
	if white {
		return 0xffffff
	}
	return 0
}

func clampColor( value int ) int {
	if value > 0xff {
		return 0xff
	}
	if value < 0 {
		return 0
	}
	return value
}

func ToGray( c Cover ) Cover {
	gray := NewCover( c.Height(), c.Width() )
	for y := range c {
		for x := range c[y] {
			gray[y][x] = GrayRGB( Gray( c[y][x] ) )
		}
	}
	return gray
}

func ToBW( c Cover, threshold int ) Mono {
	bw := NewMono( c.Height(), c.Width() )
	for y := range c {
		for x := range c[y] {
			bw[y][x] = BW( Gray( c[y][x] ), threshold )
		}
	}
	return bw
}

func MonoToRGB( m Mono ) Cover {
	rgb := NewCover( m.Height(), m.Width() )
	for y := range m {
		for x := range m[y] {
			rgb[y][x] = BoolRGB( m[y][x] )
		}
	}
	return rgb
}
