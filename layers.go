package sprig

// LayerMask returns a 32-bit mask with one bit set per layer index, layer 0
// being the lowest bit. Indices of 32 and above panic in debug mode and are
// dropped otherwise.
func LayerMask(layers ...uint8) uint32 {
	var mask uint32
	for _, l := range layers {
		debugCheckLayer(l)
		if l < 32 {
			mask |= 1 << l
		}
	}
	return mask
}

// HasLayer reports whether layer is set in mask.
func HasLayer(mask uint32, layer uint8) bool {
	return layer < 32 && mask&(1<<layer) != 0
}
