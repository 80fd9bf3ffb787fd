/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc

import (
	"fmt"
	"testing"

	"github.com/intel/rsp-sw-toolkit-im-suite-expect"
	"github.com/pkg/errors"
)

func TestParseURN(t *testing.T) {
	type urnTest struct {
		name, uri string
		exp       URN
		invalid   bool
	}

	pass := func(n, uri string, s Scheme, cp, ref, serial string) urnTest {
		return urnTest{name: n, uri: uri, exp: URN{s, cp, ref, serial}}
	}

	fail := func(n, uri string) urnTest {
		return urnTest{name: n, uri: uri, invalid: true}
	}

	for i, tt := range []urnTest{
		pass("sgtin", "urn:epc:id:sgtin:0614141.812345.6789",
			SGTIN96, "0614141", "812345", "6789"),
		pass("sgtin upper case prefix", "URN:EPC:ID:SGTIN:0614141.812345.6789",
			SGTIN96, "0614141", "812345", "6789"),
		pass("sgtin escaped serial", "urn:epc:id:sgtin:0614141.812345.A%2FB",
			SGTIN96, "0614141", "812345", "A/B"),
		pass("sgln", "urn:epc:id:sgln:0614141.012345.0",
			SGLN96, "0614141", "012345", "0"),
		pass("grai", "urn:epc:id:grai:0614141.012345.5678",
			GRAI96, "0614141", "012345", "5678"),
		pass("giai", "urn:epc:id:giai:0614141.012345.5678",
			GIAI96, "0614141", "012345", "5678"),
		pass("gid", "urn:epc:id:gid:95100000.12345.400",
			GID96, "95100000", "12345", "400"),
		pass("sscc", "urn:epc:id:sscc:614141.1234567890",
			SSCC96, "614141", "1234567890", ""),
		pass("surrounding space", " urn:epc:id:giai:0614141.012345.5678\n",
			GIAI96, "0614141", "012345", "5678"),

		fail("empty", ""),
		fail("unknown scheme", "urn:epc:id:usdod:CAGE1.5678"),
		fail("not an epc", "tag:test.com,2019-01-01:15.12.5330"),
		fail("prefix only", "urn:epc:id:sgtin:"),
		fail("two parts", "urn:epc:id:sgtin:0614141.812345"),
		fail("four parts", "urn:epc:id:sgtin:0614141.812345.6789.1"),
		fail("sscc three parts", "urn:epc:id:sscc:0614141.1234567890.0"),
		fail("empty prefix", "urn:epc:id:sgtin:.812345.6789"),
		fail("empty reference", "urn:epc:id:grai:0614141..6789"),
		fail("empty serial", "urn:epc:id:sgtin:0614141.812345."),
		fail("alpha prefix", "urn:epc:id:sgtin:A614141.812345.6789"),
		fail("serial with space", "urn:epc:id:sgtin:0614141.812345.67 89"),
		fail("pattern URI", "urn:epc:idpat:sgtin:0614141.812345.*"),
	} {
		t.Run(fmt.Sprintf("%02d_%s", i, tt.name), func(t *testing.T) {
			w := expect.WrapT(t)
			u, err := ParseURN(tt.uri)
			if tt.invalid {
				w.Logf("%+v", err)
				w.ShouldFail(err)
				w.ShouldBeTrue(errors.Is(err, ErrMalformedURN))
				return
			}
			w.ShouldSucceed(err)
			w.ShouldBeEqual(u, tt.exp)
		})
	}
}

func TestURN_String(t *testing.T) {
	w := expect.WrapT(t)
	w.ShouldBeEqual(URN{SGTIN96, "0614141", "812345", "A/B"}.String(),
		"urn:epc:id:sgtin:0614141.812345.A%2FB")
	w.ShouldBeEqual(URN{SSCC96, "0614141", "0000000001", ""}.String(),
		"urn:epc:id:sscc:614141.1")
	w.ShouldBeEqual(URN{GID96, "1", "2", "3"}.String(), "urn:epc:id:gid:1.2.3")

	for _, uri := range []string{
		"urn:epc:id:sgtin:0614141.812345.6789",
		"urn:epc:id:sgln:0614141.012345.0",
		"urn:epc:id:sscc:614141.1234567890",
		"urn:epc:id:gid:95100000.12345.400",
	} {
		u := w.ShouldHaveResult(ParseURN(uri)).(URN)
		w.ShouldBeEqual(u.String(), uri)
	}
}

func TestURN_GTIN(t *testing.T) {
	w := expect.WrapT(t)
	u := w.ShouldHaveResult(ParseURN("urn:epc:id:sgtin:0614141.812345.6789")).(URN)
	w.ShouldBeEqual(u.GTIN(), "80614141123458")
	w.ShouldNotBeEqual(u.GTIN(), GTIN14(u.CompanyPrefix+u.Reference))

	// same GTIN as the tag the URN encodes to
	tag := w.ShouldHaveResult(DecodeString("3034257BF7194E4000001A85")).(SGTIN)
	w.ShouldBeEqual(u.GTIN(), tag.GTIN())

	u = w.ShouldHaveResult(ParseURN("urn:epc:id:sgtin:000000000001.1.1")).(URN)
	w.ShouldBeEqual(u.GTIN(), "10000000000014")

	u = w.ShouldHaveResult(ParseURN("urn:epc:id:grai:0614141.012345.5678")).(URN)
	w.ShouldBeEqual(u.GTIN(), "")
}

func TestParseURN_NonNumericSerial(t *testing.T) {
	w := expect.WrapT(t)
	u := w.ShouldHaveResult(ParseURN("urn:epc:id:sgtin:0614141.812345.A%2F")).(URN)
	w.ShouldBeEqual(u.Serial, "A/")

	_, err := u.Encode(POS)
	w.ShouldFail(err)
	w.ShouldBeTrue(errors.Is(err, ErrMalformedKey))
}

func TestEncodeURN(t *testing.T) {
	for i, tt := range []struct {
		uri    string
		filter FilterValue
		epc    string
		expErr error
	}{
		{"urn:epc:id:sgtin:0614141.812345.6789", POS, "3034257BF7194E4000001A85", nil},
		{"urn:epc:id:sgtin:0888446.067142.193853396487", Other, "30143639F84191AD22901607", nil},
		{"urn:epc:id:sgln:0614141.012345.5678", reserved1, "3274257BF40C0E400000162E", nil},
		{"urn:epc:id:grai:0614141.012345.5678", Other, "3314257BF40C0E400000162E", nil},
		{"urn:epc:id:giai:0614141.012345.5678", Other, "3414257BF40C0E400000162E", nil},
		{"urn:epc:id:gid:95100000.12345.400", UnitPack, "355AB1C60003039000000190", nil},
		{"urn:epc:id:sscc:8614141.1234567890", Other, "31160DC3F4499602D2000000", nil},
		{"urn:epc:id:sscc:61414.1", Other, "", ErrInvalidPrefixLength},

		{"urn:epc:id:sgtin:0614141.812345.A%2FB", POS, "", ErrMalformedKey},
		{"urn:epc:id:sgtin:0614141.812345.06789", POS, "", ErrMalformedKey},
		{"urn:epc:id:sgtin:06141.812345.6789", POS, "", ErrInvalidPrefixLength},
		{"urn:epc:id:sgtin:0614141.8123456.6789", POS, "", ErrMalformedKey},
		{"urn:epc:id:sgtin:0614141.812345.274877906944", POS, "", ErrValueOverflow},
		{"urn:epc:id:sgtin:0614141.812345", POS, "", ErrMalformedURN},
	} {
		t.Run(fmt.Sprintf("%02d", i), func(t *testing.T) {
			w := expect.WrapT(t)
			epc, err := EncodeURN(tt.uri, tt.filter)
			if tt.expErr != nil {
				w.Logf("%+v", err)
				w.As(tt.uri).ShouldFail(err)
				w.As(tt.uri).ShouldBeTrue(errors.Is(err, tt.expErr))
				return
			}
			w.As(tt.uri).ShouldSucceed(err)
			w.ShouldBeEqual(epc, tt.epc)
		})
	}
}
