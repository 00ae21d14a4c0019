package hal

import "image"

func rgb888From565(p uint16) (r, g, b uint8) {
	rr := (p >> 11) & 0x1F
	gg := (p >> 5) & 0x3F
	bb := p & 0x1F

	r = uint8((rr * 255) / 31)
	g = uint8((gg * 255) / 63)
	b = uint8((bb * 255) / 31)
	return r, g, b
}

// clipRegion bounds r to a w x h framebuffer. An empty result with a nil error
// means there is nothing to present.
func clipRegion(r image.Rectangle, w, h int) (image.Rectangle, error) {
	r = r.Canon()
	if r.Empty() {
		return image.Rectangle{}, nil
	}
	c := r.Intersect(image.Rect(0, 0, w, h))
	if c.Empty() {
		return image.Rectangle{}, ErrBadRegion
	}
	return c, nil
}
