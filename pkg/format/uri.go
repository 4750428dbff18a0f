// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import (
	"net/netip"
	"net/url"
	"regexp"
	"strings"
)

// isValidURI reports whether s is a valid absolute URI.
// A URI must also contain a colon or a slash;
// this rejects strings that would only be a fragment.
func isValidURI(s string) bool {
	if !strings.ContainsAny(s, "/:") {
		return false
	}
	if !checkURIChars(s) {
		return false
	}
	uri, err := url.Parse(s)
	if err != nil || !uri.IsAbs() {
		return false
	}
	return checkURI(uri, s)
}

// isValidURIReference reports whether s is a valid URI,
// which may be a relative reference.
func isValidURIReference(s string) bool {
	if !checkURIChars(s) {
		return false
	}
	uri, err := url.Parse(s)
	if err != nil {
		return false
	}
	return checkURI(uri, s)
}

// checkURIChars reports whether s only uses characters
// permitted by RFC 3986, with well-formed percent escapes.
func checkURIChars(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9') {
			continue
		}
		switch c {
		// unreserved
		case '-', '.', '_', '~':
		// gen-delims
		case ':', '/', '?', '#', '[', ']', '@':
		// sub-delims
		case '!', '$', '&', '\'', '(', ')', '*', '+', ',', ';', '=':
		case '%':
			if i+2 >= len(s) || !isHex(s[i+1]) || !isHex(s[i+2]) {
				return false
			}
			i += 2
		default:
			return false
		}
	}
	return true
}

// isHex reports whether c is a hexadecimal digit.
func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// checkURI applies the checks that net/url does not.
// raw is the unparsed string.
func checkURI(uri *url.URL, raw string) bool {
	// An IPv6 address should be in square brackets;
	// otherwise the colons can confuse the parse.
	if addr, err := netip.ParseAddr(uri.Host); err == nil && addr.Is6() {
		return false
	}

	// Brackets are only permitted around an IP literal host.
	brackets := strings.Count(raw, "[") + strings.Count(raw, "]")
	if !strings.HasPrefix(uri.Host, "[") {
		return brackets == 0
	}
	if brackets != 2 {
		return false
	}
	addr, err := netip.ParseAddr(uri.Hostname())
	return err == nil && addr.Is6()
}

var (
	fastURIRE          = regexp.MustCompile(`(?i)^(?:[a-z][a-z0-9+\-.]*:)(?:/?/)?[^\s]*$`)
	fastURIReferenceRE = regexp.MustCompile(`(?i)^(?:(?:[a-z][a-z0-9+\-.]*:)?/?/)?(?:[^\\\s#][^\s#]*)?(?:#[^\\\s]*)?$`)
	uriTemplateRE      = regexp.MustCompile(`(?i)^(?:(?:[^\x00-\x20"'<>%\\^` + "`" + `{|}]|%[0-9a-f]{2})|\{[+#./;?&=,!@|]?(?:[a-z0-9_]|%[0-9a-f]{2})+(?::[1-9][0-9]{0,3}|\*)?(?:,(?:[a-z0-9_]|%[0-9a-f]{2})+(?::[1-9][0-9]{0,3}|\*)?)*\})*$`)
)

func fastURI(s string) bool          { return fastURIRE.MatchString(s) }
func fastURIReference(s string) bool { return fastURIReferenceRE.MatchString(s) }

// isValidURITemplate reports whether s is shaped like a RFC 6570 template.
func isValidURITemplate(s string) bool {
	return uriTemplateRE.MatchString(s)
}
