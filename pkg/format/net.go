// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import (
	"net/mail"
	"net/netip"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/net/idna"
)

func checkIPv4(s string) error {
	addr, err := netip.ParseAddr(s)
	if err != nil || !addr.Is4() {
		return invalid("ipv4", s)
	}
	return nil
}

func checkIPv6(s string) error {
	addr, err := netip.ParseAddr(s)
	if err != nil || !addr.Is6() || addr.Zone() != "" {
		return invalid("ipv6", s)
	}
	return nil
}

// registration is the IDNA profile used for host names.
var registration = sync.OnceValue(func() *idna.Profile {
	return idna.New(idna.ValidateForRegistration())
})

// ideographicStops are the label separators of RFC 3490 section 3.1
// other than '.'.
var ideographicStops = strings.NewReplacer("。", ".", "．", ".", "｡", ".")

// isValidHostname reports whether s is an RFC 1123 host name.
// If idn is true, s may be an RFC 5890 internationalized host name.
func isValidHostname(s string, idn bool) bool {
	if s == "" || strings.Contains(s, "_") {
		return false
	}
	if idn {
		s = ideographicStops.Replace(s)
		if !contextRulesHold(s) {
			return false
		}
	} else if !isASCII(s) {
		return false
	}
	_, err := registration().ToASCII(s)
	return err == nil
}

// contextRulesHold checks the RFC 5892 appendix A contextual rules
// that the idna package leaves to the caller.
func contextRulesHold(s string) bool {
	runes := []rune(s)
	for i, c := range runes {
		var prev, next rune
		if i > 0 {
			prev = runes[i-1]
		}
		if i+1 < len(runes) {
			next = runes[i+1]
		}
		switch c {
		case 'ـ', 'ߺ', '〮', '〯', '〱', '〲',
			'〳', '〴', '〵', '〻':
			return false
		case '·': // MIDDLE DOT, only between two 'l'
			if prev != 'l' || next != 'l' {
				return false
			}
		case '͵': // GREEK LOWER NUMERAL SIGN
			if next == 0 || !unicode.Is(unicode.Greek, next) {
				return false
			}
		case '׳', '״': // HEBREW GERESH and GERSHAYIM
			if prev == 0 || !unicode.Is(unicode.Hebrew, prev) {
				return false
			}
		case '・': // KATAKANA MIDDLE DOT
			if !strings.ContainsFunc(s, func(r rune) bool {
				return r != '・' && unicode.In(r, unicode.Hiragana, unicode.Katakana, unicode.Han)
			}) {
				return false
			}
		}
	}
	return true
}

func isASCII(s string) bool {
	for i := range len(s) {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// isValidEmail reports whether s is an RFC 5321 mailbox.
// If idn is true, s may be an RFC 6531 internationalized mailbox.
func isValidEmail(s string, idn bool) bool {
	// net/mail does not know the "IPv6:" address-literal tag.
	s = strings.Replace(s, "[IPv6:", "[", 1)
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Name != "" {
		return false
	}
	at := strings.LastIndexByte(addr.Address, '@')
	if at < 0 {
		return false
	}
	domain := addr.Address[at+1:]
	if strings.HasPrefix(domain, "[") {
		return true
	}
	if idn {
		return isValidHostname(domain, true)
	}
	return isASCII(domain) && isValidHostname(domain, false)
}
