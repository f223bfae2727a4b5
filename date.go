package md2doc

import "fmt"

// rcsPrefixLen is the fixed width of the keyword-expansion marker that
// opens an RCS date tag ("$Date: ").
const rcsPrefixLen = 7

// normalizeDate canonicalizes a metadata date given as three unsigned
// integers separated by "/" or "-" (year, month, day). The result keeps
// the year unpadded and zero-pads month and day to two digits. Malformed
// input logs a warning and reports ok=false; it never aborts a
// conversion.
func (c *Converter) normalizeDate(v string) (string, bool) {
	var y, m, d uint
	if n, _ := fmt.Sscanf(v, "%d/%d/%d", &y, &m, &d); n != 3 {
		if n, _ = fmt.Sscanf(v, "%d-%d-%d", &y, &m, &d); n != 3 {
			c.cfg.logger.Warn("malformed ISO-8601 date", "value", v)
			return "", false
		}
	}
	return fmt.Sprintf("%d-%02d-%02d", y, m, d), true
}

// normalizeRCSDate canonicalizes an RCS-style date tag such as
// "$Date: 2021/03/05 10:11:12 $". The first rcsPrefixLen bytes are an
// opaque tag prefix and are skipped unconditionally; the remainder must
// carry all six date/time fields, of which only year, month, and day are
// kept. Same failure behavior as normalizeDate.
func (c *Converter) normalizeRCSDate(v string) (string, bool) {
	if len(v) < rcsPrefixLen {
		c.cfg.logger.Warn("malformed RCS date", "value", v)
		return "", false
	}
	var y, m, d, hh, mm, ss uint
	n, _ := fmt.Sscanf(v[rcsPrefixLen:], "%d/%d/%d %d:%d:%d",
		&y, &m, &d, &hh, &mm, &ss)
	if n != 6 {
		c.cfg.logger.Warn("malformed RCS date", "value", v)
		return "", false
	}
	return fmt.Sprintf("%d-%02d-%02d", y, m, d), true
}
