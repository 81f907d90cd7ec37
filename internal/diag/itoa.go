package diag

// Itoa renders v in decimal into the tail of buf and returns the slice of
// buf holding the digits. buf must be at least 20 bytes, the width of the
// most negative 64-bit value. It does not allocate.
func Itoa(buf []byte, v int64) []byte {
	// Negate in unsigned space so the most negative value survives.
	u := uint64(v)
	if v < 0 {
		u = -u
	}
	i := len(buf)
	for {
		i--
		buf[i] = byte('0' + u%10)
		u /= 10
		if u == 0 {
			break
		}
	}
	if v < 0 {
		i--
		buf[i] = '-'
	}
	return buf[i:]
}
