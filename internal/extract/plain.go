package extract

import "strings"

// plainText returns data as a string. Invalid UTF-8 sequences are replaced
// with the replacement character so downstream tokenization stays safe.
func plainText(data []byte) string {
	return strings.ToValidUTF8(string(data), "�")
}
