package fsutils

import "strconv"

const sizeUnits = "KMGT"

// SizeText returns a short human readable size, e.g. "12KB".
func SizeText(size int64) string {
	const unit = 1024
	if size < unit {
		return strconv.FormatInt(size, 10) + "B"
	}
	div := int64(unit)
	i := 0
	for size/div >= unit && i < len(sizeUnits)-1 {
		div *= unit
		i++
	}
	v := (size + div/2) / div // round to nearest
	if v >= unit && i < len(sizeUnits)-1 {
		v /= unit
		i++
	}
	return strconv.FormatInt(v, 10) + string(sizeUnits[i]) + "B"
}
