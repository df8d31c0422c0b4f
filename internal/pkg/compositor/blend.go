package compositor

// BlendFunc combines a source pixel with the pixel already on the canvas.
// Channels are straight (non-premultiplied) alpha, 0-255.
type BlendFunc func(sr, sg, sb, sa, dr, dg, db, da uint8) (r, g, b, a uint8)

// BlendNormal is plain source-over compositing.
func BlendNormal(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return mixOver(sr, sg, sb, sa, dr, dg, db, da)
}

// BlendOverlay multiplies dark regions and screens light ones,
// based on the destination channel.
func BlendOverlay(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return mixOver(overlayChan(sr, dr), overlayChan(sg, dg), overlayChan(sb, db), sa, dr, dg, db, da)
}

// BlendScreen inverts, multiplies and inverts back: result is always
// at least as light as either input.
func BlendScreen(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return mixOver(screenChan(sr, dr), screenChan(sg, dg), screenChan(sb, db), sa, dr, dg, db, da)
}

// BlendLighten keeps the lighter channel of the two.
func BlendLighten(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return mixOver(maxChan(sr, dr), maxChan(sg, dg), maxChan(sb, db), sa, dr, dg, db, da)
}

// BlendDifference takes the absolute per-channel difference.
func BlendDifference(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return mixOver(diffChan(sr, dr), diffChan(sg, dg), diffChan(sb, db), sa, dr, dg, db, da)
}

// mixOver композитит уже смешанный цвет поверх холста по альфе источника
func mixOver(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	if sa == 255 {
		return sr, sg, sb, 255
	}
	if sa == 0 {
		return dr, dg, db, da
	}
	a := uint32(sa)
	inv := 255 - a
	r := uint8((uint32(sr)*a + uint32(dr)*inv + 127) / 255)
	g := uint8((uint32(sg)*a + uint32(dg)*inv + 127) / 255)
	b := uint8((uint32(sb)*a + uint32(db)*inv + 127) / 255)
	outA := uint32(da) + (a*(255-uint32(da))+127)/255
	if outA > 255 {
		outA = 255
	}
	return r, g, b, uint8(outA)
}

func overlayChan(s, d uint8) uint8 {
	if d < 128 {
		return uint8((2 * uint32(s) * uint32(d)) / 255)
	}
	v := 255 - (2*uint32(255-s)*uint32(255-d))/255
	return uint8(v)
}

func screenChan(s, d uint8) uint8 {
	return uint8(255 - (uint32(255-s)*uint32(255-d))/255)
}

func maxChan(s, d uint8) uint8 {
	if s > d {
		return s
	}
	return d
}

func diffChan(s, d uint8) uint8 {
	if s > d {
		return s - d
	}
	return d - s
}
