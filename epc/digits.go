/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// pow10[n] is 10^n; 10^19 is the largest power of 10 in a uint64.
var pow10 = func() (p [20]uint64) {
	p[0] = 1
	for i := 1; i < len(p); i++ {
		p[i] = p[i-1] * 10
	}
	return
}()

// formatDigits returns v in base 10, left-padded with '0's to width digits.
// It fails if v needs more than width digits.
func formatDigits(v uint64, width int) (string, error) {
	if width < len(pow10) && v >= pow10[width] {
		return "", errors.Wrapf(ErrFieldRange,
			"%d has more than %d digits", v, width)
	}
	s := strconv.FormatUint(v, 10)
	if len(s) >= width {
		return s, nil
	}
	return strings.Repeat("0", width-len(s)) + s, nil
}

// parseDigits converts a string of exactly width decimal digits.
func parseDigits(s string, width int) (uint64, error) {
	if len(s) != width {
		return 0, errors.Wrapf(ErrMalformedKey,
			"%q should have %d digits, but has %d", s, width, len(s))
	}
	if !isDigits(s) {
		return 0, errors.Wrapf(ErrMalformedKey,
			"%q contains non-digit characters", s)
	}
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrMalformedKey, "%q: %v", s, err)
	}
	return v, nil
}

// parseSerial converts a numeric serial. Like the EPC Tag Data Standard, it
// rejects leading '0's, except for the single value "0".
func parseSerial(s string) (uint64, error) {
	if s == "" || !isDigits(s) {
		return 0, errors.Wrapf(ErrMalformedKey,
			"serial %q must be a non-empty string of digits", s)
	}
	if s[0] == '0' && s != "0" {
		return 0, errors.Wrapf(ErrMalformedKey,
			"serial %q cannot have leading '0's", s)
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrValueOverflow, "serial %q: %v", s, err)
	}
	return v, nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// leftPad pads s with '0's to width characters. Longer strings are returned
// unchanged.
func leftPad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

// trimZeros strips leading '0's, leaving "0" if nothing remains.
func trimZeros(s string) string {
	s = strings.TrimLeft(s, "0")
	if s == "" {
		return "0"
	}
	return s
}
