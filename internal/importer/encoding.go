package importer

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// decodePayload normalizes a raw import payload to UTF-8. Exported CSV files
// from Japanese spreadsheet tools commonly arrive in Shift_JIS or EUC-JP, so
// the encoding is detected rather than assumed:
//
//  1. an ESC byte suggests ISO-2022-JP, which is 7-bit and would otherwise
//     pass the UTF-8 check undecoded,
//  2. a BOM or already-valid UTF-8 wins,
//  3. otherwise Shift_JIS and EUC-JP are both tried and the decode with the
//     fewest replacement runes is kept.
func decodePayload(raw []byte) string {
	raw = bytes.TrimPrefix(raw, utf8BOM)

	if bytes.IndexByte(raw, 0x1b) >= 0 {
		if out, _, err := transform.Bytes(japanese.ISO2022JP.NewDecoder(), raw); err == nil && utf8.Valid(out) {
			return string(out)
		}
	}
	if utf8.Valid(raw) {
		return string(raw)
	}

	sjis, _, errSJIS := transform.Bytes(japanese.ShiftJIS.NewDecoder(), raw)
	eucjp, _, errEUC := transform.Bytes(japanese.EUCJP.NewDecoder(), raw)

	switch {
	case errSJIS != nil && errEUC != nil:
		// Nothing decoded cleanly; fall back to a lossy UTF-8 read.
		return strings.ToValidUTF8(string(raw), string(utf8.RuneError))
	case errSJIS != nil:
		return string(eucjp)
	case errEUC != nil:
		return string(sjis)
	}

	if replacementCount(eucjp) < replacementCount(sjis) {
		return string(eucjp)
	}
	return string(sjis)
}

func replacementCount(b []byte) int {
	return bytes.Count(b, []byte(string(utf8.RuneError)))
}
