package lib

import "errors"
import "fmt"
import "strconv"
import "strings"

// Number of fractional digits of transmitted fixed-point numbers.
const fixedDigits = 3

// RSSIOffset - offset subtracted from the RSSI reported by the radio.
const RSSIOffset = 45

var ErrEmptyPayload = errors.New("empty payload")

// ParseFixed decodes a transmitted "<int>.<fff>" fixed-point number.
// Only the first three fractional digits are significant, shorter
// fractions are padded with zeros.
func ParseFixed(s string) (float64, error) {
	s = strings.TrimSpace(s)
	intPart, fracPart, _ := strings.Cut(s, ".")
	negative := strings.HasPrefix(intPart, "-")
	i, err := strconv.Atoi(strings.TrimPrefix(intPart, "-"))
	if err != nil {
		return 0, fmt.Errorf("cannot parse fixed-point number %q: %w", s, err)
	}
	if len(fracPart) > fixedDigits {
		fracPart = fracPart[:fixedDigits]
	}
	frac := 0
	if fracPart != "" {
		for len(fracPart) < fixedDigits {
			fracPart += "0"
		}
		frac, err = strconv.Atoi(fracPart)
		if err != nil || frac < 0 {
			return 0, fmt.Errorf("cannot parse fraction of %q", s)
		}
	}
	v := float64(i*1000+frac) / 1000
	if negative {
		v = -v
	}
	return v, nil
}

// FormatFixed encodes v the way ParseFixed expects it.
func FormatFixed(v float64) string {
	return strconv.FormatFloat(v, 'f', fixedDigits, 64)
}

// IsAnnouncement tells if payload is a power announcement rather than
// a position broadcast.
func IsAnnouncement(payload string) bool {
	return strings.HasPrefix(payload, "N")
}

// ParsePosition decodes "x#y" position payload.
func ParsePosition(payload string) (float64, float64, error) {
	if payload == "" {
		return 0, 0, ErrEmptyPayload
	}
	xs, ys, ok := strings.Cut(payload, "#")
	if !ok {
		return 0, 0, fmt.Errorf("missing separator in position %q", payload)
	}
	x, err := ParseFixed(xs)
	if err != nil {
		return 0, 0, err
	}
	ys, _, _ = strings.Cut(ys, "#")
	y, err := ParseFixed(ys)
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

// FormatPosition encodes a position broadcast.
func FormatPosition(x, y float64) string {
	return FormatFixed(x) + "#" + FormatFixed(y)
}
