// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import "regexp"

// byteRE is standard base64 with padding.
// encoding/base64 is not used as it ignores newlines.
var byteRE = regexp.MustCompile(`^(?:[A-Za-z0-9+/]{4})*(?:[A-Za-z0-9+/]{2}==|[A-Za-z0-9+/]{3}=)?$`)

// isValidByte reports whether s is base64 encoded data.
func isValidByte(s string) bool {
	return byteRE.MatchString(s)
}
