package osstr

// wellFormedUTF16 reports whether s contains no unpaired surrogates.
func wellFormedUTF16(s []uint16) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c < 0xd800 || c > 0xdfff:
		case c < 0xdc00 && i+1 < len(s) && s[i+1] >= 0xdc00 && s[i+1] <= 0xdfff:
			i++
		default:
			return false
		}
	}
	return true
}
