package analyzer

import "bytes"

// trimToJSON strips tool banner noise surrounding a JSON document.
// Package runners commonly print progress lines before the payload.
func trimToJSON(output []byte) []byte {
	objStart := bytes.IndexByte(output, '{')
	arrStart := bytes.IndexByte(output, '[')

	start := objStart
	end := bytes.LastIndexByte(output, '}')
	if arrStart >= 0 && (objStart < 0 || arrStart < objStart) {
		start = arrStart
		end = bytes.LastIndexByte(output, ']')
	}

	if start < 0 || end < start {
		return output
	}
	return output[start : end+1]
}
