// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import (
	"encoding/json"
	"math"
	"slices"
	"testing"
)

func TestNames(t *testing.T) {
	want := []string{
		"binary", "byte", "date", "date-time", "double", "duration",
		"email", "float", "hostname", "int32", "int64", "ipv4", "ipv6",
		"json-pointer", "json-pointer-uri-fragment", "password", "regex",
		"relative-json-pointer", "time", "uri", "uri-reference",
		"uri-template", "uuid",
	}
	if got := Names(); !slices.Equal(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
	for _, name := range want {
		for _, tier := range []Tier{Full, Fast} {
			if _, ok := Lookup(name, tier); !ok {
				t.Errorf("Lookup(%q, %v) not found", name, tier)
			}
		}
	}
	if _, ok := Lookup("color", Full); ok {
		t.Error("Lookup(\"color\", Full) found an unknown format")
	}
}

func TestSharedDefinitions(t *testing.T) {
	tiered := []string{"date", "time", "date-time", "uri", "uri-reference", "email"}
	for _, name := range Names() {
		full, _ := Lookup(name, Full)
		fast, _ := Lookup(name, Fast)
		if shared := full == fast; shared == slices.Contains(tiered, name) {
			t.Errorf("%s: shared between tiers = %t", name, shared)
		}
	}
}

func TestParseTier(t *testing.T) {
	for _, test := range []struct {
		in   string
		want Tier
		err  bool
	}{
		{"", Full, false},
		{"full", Full, false},
		{"fast", Fast, false},
		{"quick", Full, true},
	} {
		got, err := ParseTier(test.in)
		if (err != nil) != test.err || got != test.want {
			t.Errorf("ParseTier(%q) = %v, %v", test.in, got, err)
		}
	}
}

type formatTest struct {
	format string
	value  any
	want   bool
}

var formatTests = []formatTest{
	{"date", "2024-02-29", true},
	{"date", "2023-02-29", false},
	{"date", "2000-02-29", true},
	{"date", "1900-02-29", false},
	{"date", "2023-04-31", false},
	{"date", "2023-13-01", false},
	{"date", "2023-1-01", false},
	{"date", "+123-01-01", false},

	{"time", "10:00:00", true},
	{"time", "10:00:00.123Z", true},
	{"time", "10:00:00+02:00", true},
	{"time", "10:00:00+0200", true},
	{"time", "10:00:00-02", true},
	{"time", "23:59:60Z", true},
	{"time", "22:59:60Z", false},
	{"time", "24:00:00Z", false},
	{"time", "10:60:00Z", false},
	{"time", "10:00:00+24:00", false},
	{"time", "10:00:00.Z", false},

	{"date-time", "2023-05-01T10:00:00Z", true},
	{"date-time", "2023-05-01t10:00:00z", true},
	{"date-time", "2023-05-01 10:00:00+01:00", true},
	{"date-time", "2023-02-30T10:00:00Z", false},
	{"date-time", "2023-05-01T10:00:00", false},
	{"date-time", "2023-05-01", false},
	{"date-time", "2023-05-01TT10:00:00Z", false},

	{"duration", "P1Y2M3DT4H5M6S", true},
	{"duration", "P4W", true},
	{"duration", "PT1S", true},
	{"duration", "P", false},
	{"duration", "PT", false},
	{"duration", "P1DT", false},
	{"duration", "P1W1D", false},

	{"uri", "http://example.com/a?b=c#d", true},
	{"uri", "urn:isbn:0451450523", true},
	{"uri", "http://[::1]:8080/", true},
	{"uri", "not a uri", false},
	{"uri", "example", false},
	{"uri", "/relative/path", false},
	{"uri", "http://example.com/%zz", false},
	{"uri", "http://exa[mple.com/", false},

	{"uri-reference", "/relative/path", true},
	{"uri-reference", "#fragment", true},
	{"uri-reference", "", true},
	{"uri-reference", "has space", false},

	{"uri-template", "http://example.com/{id}", true},
	{"uri-template", "http://example.com/{+path,x:3}", true},
	{"uri-template", "http://example.com/{id", false},

	{"email", "joe.bloggs@example.com", true},
	{"email", "a+b@sub.example.org", true},
	{"email", "joe..bloggs@example.com", false},
	{"email", "joe@localhost", false},
	{"email", "<joe@example.com>", false},
	{"email", "Joe <joe@example.com>", false},

	{"hostname", "example.com", true},
	{"hostname", "a-b.example", true},
	{"hostname", "-example.com", false},
	{"hostname", "exa_mple.com", false},
	{"hostname", "bücher.example", false},

	{"ipv4", "192.168.0.1", true},
	{"ipv4", "256.0.0.1", false},
	{"ipv4", "::1", false},
	{"ipv6", "::1", true},
	{"ipv6", "fe80::1%eth0", false},
	{"ipv6", "192.168.0.1", false},

	{"regex", `^[a-z]+$`, true},
	{"regex", `abc\\Z`, true},
	{"regex", `abc\Z`, false},
	{"regex", `(`, false},

	{"uuid", "123e4567-e89b-12d3-a456-426614174000", true},
	{"uuid", "urn:uuid:123e4567-e89b-12d3-a456-426614174000", true},
	{"uuid", "123e4567e89b12d3a456426614174000", false},
	{"uuid", "123e4567-e89b-12d3-a456-42661417400g", false},

	{"json-pointer", "", true},
	{"json-pointer", "/a~0b/c~1d/0", true},
	{"json-pointer", "a/b", false},
	{"json-pointer", "/a~2", false},
	{"json-pointer-uri-fragment", "#/a/%25b", true},
	{"json-pointer-uri-fragment", "/a", false},
	{"relative-json-pointer", "0", true},
	{"relative-json-pointer", "1/a", true},
	{"relative-json-pointer", "2#", true},
	{"relative-json-pointer", "01", false},
	{"relative-json-pointer", "/a", false},

	{"byte", "", true},
	{"byte", "aGVsbG8=", true},
	{"byte", "aGVsbA==", true},
	{"byte", "aGVsbG8", false},
	{"byte", "aGVs\nbG8=", false},

	{"int32", float64(math.MaxInt32), true},
	{"int32", float64(math.MaxInt32 + 1), false},
	{"int32", float64(math.MinInt32), true},
	{"int32", 1.5, false},
	{"int32", int64(7), true},
	{"int64", -5.0, true},
	{"int64", 9007199254740992.0, true},
	{"int64", json.Number("12"), true},
	{"int64", 0.5, false},
	{"float", 1.5, true},
	{"double", math.Inf(1), false},
	{"double", math.NaN(), false},

	{"password", "anything", true},
	{"binary", "", true},

	// Instances of another kind always pass.
	{"date", 12.0, true},
	{"int32", "not a number", true},
	{"email", nil, true},
}

func TestValidate(t *testing.T) {
	for _, test := range formatTests {
		for _, tier := range []Tier{Full, Fast} {
			got, known := Validate(test.format, tier, test.value)
			if !known {
				t.Fatalf("Validate(%q, %v): unknown format", test.format, tier)
			}
			if tier == Fast && test.want {
				// The fast tier accepts everything the full tier does.
				if !got {
					t.Errorf("Validate(%q, fast, %#v) = false, want true", test.format, test.value)
				}
				continue
			}
			if tier == Full && got != test.want {
				t.Errorf("Validate(%q, full, %#v) = %t, want %t", test.format, test.value, got, test.want)
			}
		}
	}
}

func TestValidateUnknown(t *testing.T) {
	if ok, known := Validate("color", Full, "red"); ok || known {
		t.Errorf("Validate(\"color\") = %t, %t, want false, false", ok, known)
	}
}

func TestFastLooser(t *testing.T) {
	// Values the fast tier accepts but the full tier rejects.
	for _, test := range []formatTest{
		{"date", "2023-02-30", false},
		{"date-time", "2023-02-30T10:00:00Z", false},
		{"email", "joe..bloggs@example.com", false},
	} {
		if ok, _ := Validate(test.format, Full, test.value); ok {
			t.Errorf("Validate(%q, full, %q) = true", test.format, test.value)
		}
		if ok, _ := Validate(test.format, Fast, test.value); !ok {
			t.Errorf("Validate(%q, fast, %q) = false", test.format, test.value)
		}
	}
}

func TestCompare(t *testing.T) {
	for _, test := range []struct {
		format string
		a, b   string
		want   int
		ok     bool
	}{
		{"date", "2023-01-01", "2023-01-02", -1, true},
		{"date", "2023-01-02", "2023-01-02", 0, true},
		{"date", "2024-01-01", "2023-12-31", 1, true},
		{"date", "2023-02-30", "2023-01-01", 0, false},
		{"time", "10:00:00Z", "10:00:01Z", -1, true},
		{"time", "10:00:00.5", "10:00:00.25", 1, true},
		{"time", "25:00:00", "10:00:00", 0, false},
		{"time", "10:00:00Z", "10:00:00+02:00", 1, true},
		{"time", "10:00:00+02:00", "08:00:00Z", 0, true},
		{"time", "10:00:00-0130", "11:30:00z", 0, true},
		{"time", "10:00:00", "10:00:00.0", 0, true},
		{"time", "10:00:00.50", "10:00:00.5Z", 0, true},
		{"time", "10:00:00.05", "10:00:00.5", -1, true},
		{"date-time", "2023-05-01T10:00:00Z", "2023-05-01T09:00:00Z", 1, true},
		{"date-time", "2023-05-01T10:00:00Z", "2023-05-02T09:00:00Z", -1, true},
		{"date-time", "2023-05-01T10:00:00Z", "2023-05-01 10:00:00Z", 0, true},
		{"date-time", "2023-05-01", "2023-05-01T10:00:00Z", 0, false},
		{"date-time", "2023-05-01T10:00:00", "2023-05-01T11:00:00Z", 0, false},
		{"date-time", "2023-05-01T11:00:00Z", "2023-05-01T10:00:00", 0, false},
		{"date-time", "2023-05-01T01:00:00+02:00", "2023-04-30T23:00:00Z", 0, true},
		{"date-time", "2023-05-01T01:00:00+02:00", "2023-04-30T23:30:00Z", -1, true},
		{"date-time", "2023-05-01T10:00:00.100Z", "2023-05-01T10:00:00.1z", 0, true},
		{"date-time", "2023-02-30T10:00:00Z", "2023-03-01T10:00:00Z", 0, false},
		{"uri", "a:b", "a:c", 0, false},
	} {
		for _, tier := range []Tier{Full, Fast} {
			got, ok := Compare(test.format, tier, test.a, test.b)
			if got != test.want || ok != test.ok {
				t.Errorf("Compare(%q, %v, %q, %q) = %d, %t, want %d, %t",
					test.format, tier, test.a, test.b, got, ok, test.want, test.ok)
			}
		}
	}
}
