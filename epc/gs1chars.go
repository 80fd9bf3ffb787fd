/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc

import (
	"strings"
)

var (
	gs1Escaper = strings.NewReplacer(
		`"`, "%22",
		`#`, "%23",
		`%`, "%25",
		`&`, "%26",
		`/`, "%2F",
		`<`, "%3C",
		`>`, "%3E",
		`?`, "%3F",
	)

	gs1Unescaper = strings.NewReplacer(
		"%22", `"`,
		"%23", `#`,
		"%25", `%`,
		"%26", `&`,
		"%2F", `/`,
		"%3C", `<`,
		"%3E", `>`,
		"%3F", `?`,
	)

	// valid characters for GS1 Application Identifiers
	gs1AICharSet = [128]bool{
		'!': true, '"': true, '%': true, '&': true, '\'': true, '(': true, ')': true,
		'*': true, '+': true, ',': true, '-': true, '.': true, '/': true,
		':': true, ';': true, '<': true, '=': true, '>': true, '?': true, '_': true,
		'0': true, '1': true, '2': true, '3': true, '4': true,
		'5': true, '6': true, '7': true, '8': true, '9': true,
		'A': true, 'B': true, 'C': true, 'D': true, 'E': true, 'F': true, 'G': true,
		'H': true, 'I': true, 'J': true, 'K': true, 'L': true, 'M': true, 'N': true,
		'O': true, 'P': true, 'Q': true, 'R': true, 'S': true, 'T': true, 'U': true,
		'V': true, 'W': true, 'X': true, 'Y': true, 'Z': true,
		'a': true, 'b': true, 'c': true, 'd': true, 'e': true, 'f': true, 'g': true,
		'h': true, 'i': true, 'j': true, 'k': true, 'l': true, 'm': true, 'n': true,
		'o': true, 'p': true, 'q': true, 'r': true, 's': true, 't': true, 'u': true,
		'v': true, 'w': true, 'x': true, 'y': true, 'z': true,
	}
)

// EscapeGS1 returns s with the characters that can't appear literally in an
// EPC URI replaced by their GS1 escape sequences:
// - `"` -> "%22"
// - `#` -> "%23"
// - `%` -> "%25"
// - `&` -> "%26"
// - `/` -> "%2F"
// - `<` -> "%3C"
// - `>` -> "%3E"
// - `?` -> "%3F"
func EscapeGS1(s string) string {
	return gs1Escaper.Replace(s)
}

// UnescapeGS1 reverses EscapeGS1. Other '%' sequences are left alone.
func UnescapeGS1(s string) string {
	return gs1Unescaper.Replace(s)
}

// IsGS1AIEncodable returns true if the string contains only characters allowed
// in the GS1 Application Identifier character set 82.
func IsGS1AIEncodable(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 128 || !gs1AICharSet[s[i]] {
			return false
		}
	}
	return true
}
