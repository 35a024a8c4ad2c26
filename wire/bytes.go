package wire

// BytesLen returns the encoded length of data as a length-delimited
// record: the varint length prefix plus the raw bytes themselves.
func BytesLen(data []byte) int {
	return VarintLen(uint64(len(data))) + len(data)
}

// StringLen is BytesLen for a string argument.
func StringLen(s string) int {
	return BytesLen([]byte(s))
}
