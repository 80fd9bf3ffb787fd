/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc

const (
	gtinStemDigits = 13
	ssccStemDigits = 17
)

// CheckDigit returns the GS1 mod-10 check digit of the digits in s, ignoring
// any other characters.
//
// Counting from the right, the 1st, 3rd, 5th... digits are weighted by 3 and
// the rest by 1; the check digit is the weighted sum's additive inverse mod 10.
// That places the weight 3 on the digit immediately left of where the check
// digit will go, regardless of the length of s.
func CheckDigit(s string) int {
	sum := 0
	pos := 0
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] < '0' || s[i] > '9' {
			continue
		}
		d := int(s[i] - '0')
		if pos&1 == 0 {
			sum += 3 * d
		} else {
			sum += d
		}
		pos++
	}
	// mod 10 additive inverse
	return (10 - (sum % 10)) % 10
}

// ValidCheckDigit returns true if the final digit of code is the GS1 check
// digit of the digits before it.
func ValidCheckDigit(code string) bool {
	if len(code) < 2 || !isDigits(code) {
		return false
	}
	return CheckDigit(code[:len(code)-1]) == int(code[len(code)-1]-'0')
}

// GTIN14 appends the check digit to a 13 digit GTIN stem, after removing
// non-digits and left-padding it with '0's to 13 digits.
func GTIN14(stem string) string {
	return withCheckDigit(stem, gtinStemDigits)
}

// SSCC18 appends the check digit to a 17 digit SSCC stem, after removing
// non-digits and left-padding it with '0's to 17 digits.
func SSCC18(stem string) string {
	return withCheckDigit(stem, ssccStemDigits)
}

func withCheckDigit(stem string, width int) string {
	b := make([]byte, 0, len(stem)+1)
	for i := 0; i < len(stem); i++ {
		if stem[i] >= '0' && stem[i] <= '9' {
			b = append(b, stem[i])
		}
	}
	digits := leftPad(string(b), width)
	return digits + string(rune('0'+CheckDigit(digits)))
}
