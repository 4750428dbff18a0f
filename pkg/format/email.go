// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import (
	"net/mail"
	"regexp"
	"strings"
)

var (
	// emailRE is a dot-atom local part and a dotted domain.
	emailRE = regexp.MustCompile("(?i)^[a-z0-9!#$%&'*+/=?^_`{|}~-]+(?:\\.[a-z0-9!#$%&'*+/=?^_`{|}~-]+)*@(?:[a-z0-9](?:[a-z0-9-]*[a-z0-9])?\\.)+[a-z0-9](?:[a-z0-9-]*[a-z0-9])?$")

	// fastEmailRE accepts dots anywhere in the local part
	// and a single-label domain.
	fastEmailRE = regexp.MustCompile("(?i)^[a-z0-9.!#$%&'*+/=?^_`{|}~-]+@[a-z0-9](?:[a-z0-9-]{0,61}[a-z0-9])?(?:\\.[a-z0-9](?:[a-z0-9-]{0,61}[a-z0-9])?)*$")
)

// isValidEmail reports whether s is a valid email address.
func isValidEmail(s string) bool {
	// Mailbox          = Local-part "@" Domain
	// Local-part       = Dot-string
	// Dot-string       = Atom *("."  Atom)
	// Atom             = 1*atext
	// Domain           = sub-domain *("." sub-domain)
	// sub-domain       = Let-dig [Ldh-str]
	//
	// Quoted local parts and address literals are not accepted.
	if !emailRE.MatchString(s) {
		return false
	}

	domain := s[strings.LastIndexByte(s, '@')+1:]
	if len(domain) > 253 {
		return false
	}
	for label := range strings.SplitSeq(domain, ".") {
		if len(label) > 63 {
			return false
		}
	}

	// Double-check with net/mail, which must see a bare address.
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Name == "" && addr.Address == s
}

func fastEmail(s string) bool { return fastEmailRE.MatchString(s) }
