package charset

// BestFit returns the first ECI able to encode content: ISO-8859-1, then the
// remaining table entries in ECI value order, then UTF-8.
func BestFit(content string) *ECI {
	for _, eci := range allECIs {
		if eci == ECIUTF8 {
			continue
		}
		if eci.CanEncode(content) {
			return eci
		}
	}
	return ECIUTF8
}
