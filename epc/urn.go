/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc

import (
	"strings"

	"github.com/pkg/errors"
)

// URN holds the components of an EPC Pure Identity URI, independent of any
// binary encoding.
//
// For GID, CompanyPrefix holds the General Manager Number and Reference holds
// the Object Class. For SSCC, Serial is empty. Serial is unescaped.
type URN struct {
	Scheme        Scheme
	CompanyPrefix string
	Reference     string
	Serial        string
}

// String returns the Pure Identity URI. SSCC URIs have two components, with
// leading '0's removed; all others have three, and the serial is escaped.
func (u URN) String() string {
	if u.Scheme == SSCC96 {
		return pureURI(SSCC96, trimZeros(u.CompanyPrefix), trimZeros(u.Reference))
	}
	return pureURI(u.Scheme, u.CompanyPrefix, u.Reference, EscapeGS1(u.Serial))
}

// GTIN returns the GTIN-14 of an SGTIN URN, or "" for other schemes. The
// item reference's leading indicator digit becomes the GTIN's first digit,
// so the result matches the GTIN14 of the decoded tag.
func (u URN) GTIN() string {
	if u.Scheme != SGTIN96 {
		return ""
	}
	stem := u.CompanyPrefix
	if u.Reference != "" {
		stem = u.Reference[:1] + u.CompanyPrefix + u.Reference[1:]
	}
	return GTIN14(stem)
}

// Encode packs the URN into the upper-case hex of its 96-bit EPC.
func (u URN) Encode(filter FilterValue) (string, error) {
	return Encode(u.Scheme, filter, u.CompanyPrefix, u.Reference, u.Serial)
}

// urnSchemes are the schemes ParseURN recognizes, with their URI component
// counts.
var urnSchemes = []struct {
	scheme Scheme
	parts  int
}{
	{SGTIN96, 3},
	{SGLN96, 3},
	{GRAI96, 3},
	{GIAI96, 3},
	{GID96, 3},
	{SSCC96, 2},
}

// ParseURN splits an EPC Pure Identity URI into its components.
//
// The scheme prefix is matched without regard to case. The company prefix and
// reference must be non-empty strings of digits; the serial is unescaped and
// must use only the GS1 AI encodable character set. Parsing accepts serials
// that the 96-bit schemes can't hold: Encode still fails with ErrMalformedKey
// unless the serial is a decimal number without leading '0's.
func ParseURN(uri string) (URN, error) {
	uri = strings.TrimSpace(uri)
	for _, us := range urnSchemes {
		prefix := us.scheme.URIPrefix()
		if len(uri) < len(prefix) || !strings.EqualFold(uri[:len(prefix)], prefix) {
			continue
		}

		parts := strings.Split(uri[len(prefix):], ".")
		if len(parts) != us.parts {
			return URN{}, errors.Wrapf(ErrMalformedURN, "%s URIs have %d "+
				"'.' separated components, but %q has %d",
				us.scheme, us.parts, uri, len(parts))
		}
		for i := 0; i < 2; i++ {
			if parts[i] == "" || !isDigits(parts[i]) {
				return URN{}, errors.Wrapf(ErrMalformedURN, "component %d "+
					"of %q is empty or contains non-numeric characters", i, uri)
			}
		}

		u := URN{Scheme: us.scheme, CompanyPrefix: parts[0], Reference: parts[1]}
		if us.parts == 3 {
			u.Serial = UnescapeGS1(parts[2])
			if u.Serial == "" || !IsGS1AIEncodable(u.Serial) {
				return URN{}, errors.Wrapf(ErrMalformedURN, "serial of %q is "+
					"empty or has characters outside the GS1 AI set", uri)
			}
		}
		return u, nil
	}
	return URN{}, errors.Wrapf(ErrMalformedURN, "%q does not start with a "+
		"supported %s<scheme>: prefix", uri, PureURIPrefix)
}

// EncodeURN is a convenience method that parses a Pure Identity URI and
// encodes it as the upper-case hex of its 96-bit EPC.
func EncodeURN(uri string, filter FilterValue) (string, error) {
	u, err := ParseURN(uri)
	if err != nil {
		return "", err
	}
	return u.Encode(filter)
}
