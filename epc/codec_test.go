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

func TestDecodeSSCC(t *testing.T) {
	w := expect.WrapT(t)

	b := w.ShouldHaveResult(ParseHex("3114257BF4499602D2000000")).([]byte)
	s := w.ShouldHaveResult(DecodeSSCC(b)).(SSCC)
	w.ShouldBeEqual(s.Filter(), Other)
	w.ShouldBeEqual(s.Partition(), 5)
	w.ShouldBeEqual(s.CompanyPrefix(), "0614141")
	w.ShouldBeEqual(s.SerialReference(), "1234567890")
	w.ShouldBeEqual(s.Serial(), "")
	w.ShouldBeEqual(s.SSCC(), "106141412345678908")
	w.ShouldBeEqual(s.URI(), "urn:epc:id:sscc:614141.1234567890")

	// reserved bits are ignored
	b = w.ShouldHaveResult(ParseHex("3114257BF4499602D2ABCDEF")).([]byte)
	w.ShouldBeEqual(w.ShouldHaveResult(DecodeSSCC(b)), s)

	b = w.ShouldHaveResult(ParseHex("31783BF98000000001000000")).([]byte)
	s = w.ShouldHaveResult(DecodeSSCC(b)).(SSCC)
	w.ShouldBeEqual(s.Filter(), reserved1)
	w.ShouldBeEqual(s.Partition(), 6)
	w.ShouldBeEqual(s.CompanyPrefix(), "061414")
	w.ShouldBeEqual(s.SerialReference(), "00000000001")
	w.ShouldBeEqual(s.SSCC(), "006141400000000013")
	w.ShouldBeEqual(s.URI(), "urn:epc:id:sscc:61414.1")

	b = w.ShouldHaveResult(ParseHex("310000000000000000000000")).([]byte)
	s = w.ShouldHaveResult(DecodeSSCC(b)).(SSCC)
	w.ShouldBeEqual(s.URI(), "urn:epc:id:sscc:0.0")

	// serial reference has 6 digits, but partition 0 allows 5
	b = w.ShouldHaveResult(ParseHex("31000000000007FFFF000000")).([]byte)
	_, err := DecodeSSCC(b)
	w.ShouldFail(err)
	w.ShouldBeTrue(errors.Is(err, ErrFieldRange))
}

func TestEncodeSSCC(t *testing.T) {
	w := expect.WrapT(t)
	w.ShouldBeEqual(w.ShouldHaveResult(EncodeSSCC(Other, "0614141", "1234567890")),
		"3114257BF4499602D2000000")
	w.ShouldBeEqual(w.ShouldHaveResult(EncodeSSCC(reserved1, "061414", "1")),
		"31783BF98000000001000000")

	u := w.ShouldHaveResult(SSCCFromCode("106141412345678908", 7)).(URN)
	w.ShouldBeEqual(u.Scheme, SSCC96)
	w.ShouldBeEqual(u.CompanyPrefix, "0614141")
	w.ShouldBeEqual(u.Reference, "1234567890")
	w.ShouldBeEqual(u.Serial, "")
	w.ShouldBeEqual(u.String(), "urn:epc:id:sscc:614141.1234567890")
	w.ShouldBeEqual(w.ShouldHaveResult(u.Encode(Other)), "3114257BF4499602D2000000")

	_, err := EncodeSSCC(Other, "0614141", "12345678901")
	w.ShouldBeTrue(errors.Is(err, ErrMalformedKey))
	_, err = SSCCFromCode("1061414123456789080", 7)
	w.ShouldBeTrue(errors.Is(err, ErrMalformedKey))
}

func TestSGLN(t *testing.T) {
	w := expect.WrapT(t)

	u := w.ShouldHaveResult(SGLNFromGLN("0614141123452", "5678", 7)).(URN)
	w.ShouldBeEqual(u.Scheme, SGLN96)
	w.ShouldBeEqual(u.CompanyPrefix, "0614141")
	w.ShouldBeEqual(u.Reference, "012345")
	w.ShouldBeEqual(u.Serial, "5678")

	epc := w.ShouldHaveResult(u.Encode(reserved1)).(string)
	w.ShouldBeEqual(epc, "3274257BF40C0E400000162E")

	b := w.ShouldHaveResult(ParseHex(epc)).([]byte)
	s := w.ShouldHaveResult(DecodeSGLN(b)).(SGLN)
	w.ShouldBeEqual(s.Filter(), reserved1)
	w.ShouldBeEqual(s.CompanyPrefix(), "0614141")
	w.ShouldBeEqual(s.LocationReference(), "012345")
	w.ShouldBeEqual(s.Extension(), "5678")
	w.ShouldBeEqual(s.Serial(), "5678")
	w.ShouldBeEqual(s.URI(), "urn:epc:id:sgln:0614141.012345.5678")

	// every prefix length keeps 13 digits between the two fields
	for l := minPrefixDigits; l <= maxPrefixDigits; l++ {
		u := w.ShouldHaveResult(SGLNFromGLN("0614141123452", "0", l)).(URN)
		w.ShouldBeEqual(len(u.CompanyPrefix)+len(u.Reference), gtinStemDigits)
		w.ShouldBeEqual(u.CompanyPrefix+u.Reference[1:], "061414112345")
	}

	w.ShouldBeEqual(w.ShouldHaveResult(EncodeSGLN(POS, "0614141", "012345", "0")),
		"3234257BF40C0E4000000000")
	_, err := EncodeSGLN(POS, "0614141", "012345", "01")
	w.ShouldBeTrue(errors.Is(err, ErrMalformedKey))
}

func TestGRAI(t *testing.T) {
	w := expect.WrapT(t)

	u := w.ShouldHaveResult(GRAIFromCode("00614141123452", "5678", 7)).(URN)
	w.ShouldBeEqual(u.Scheme, GRAI96)
	w.ShouldBeEqual(u.CompanyPrefix, "0614141")
	w.ShouldBeEqual(u.Reference, "012345")

	epc := w.ShouldHaveResult(u.Encode(Other)).(string)
	w.ShouldBeEqual(epc, "3314257BF40C0E400000162E")

	b := w.ShouldHaveResult(ParseHex(epc)).([]byte)
	g := w.ShouldHaveResult(DecodeGRAI(b)).(GRAI)
	w.ShouldBeEqual(g.AssetType(), "012345")
	w.ShouldBeEqual(g.Serial(), "5678")
	w.ShouldBeEqual(g.URI(), "urn:epc:id:grai:0614141.012345.5678")

	rec := g.Record()
	w.ShouldBeEqual(rec.AssetType, "012345")
	w.ShouldBeEqual(rec.ItemReference, "")
}

func TestGIAI(t *testing.T) {
	w := expect.WrapT(t)

	epc := w.ShouldHaveResult(EncodeGIAI(Other, "0614141", "012345", "5678")).(string)
	w.ShouldBeEqual(epc, "3414257BF40C0E400000162E")

	b := w.ShouldHaveResult(ParseHex(epc)).([]byte)
	g := w.ShouldHaveResult(DecodeGIAI(b)).(GIAI)
	w.ShouldBeEqual(g.AssetReference(), "012345")
	w.ShouldBeEqual(g.Serial(), "5678")
	w.ShouldBeEqual(g.URI(), "urn:epc:id:giai:0614141.012345.5678")
	w.ShouldBeEqual(g.Record().Reference, "012345")

	// GRAI and GIAI share a layout but not a header
	_, err := DecodeGRAI(b)
	w.ShouldBeTrue(errors.Is(err, ErrHeaderMismatch))
}

func TestGID(t *testing.T) {
	w := expect.WrapT(t)

	epc := w.ShouldHaveResult(EncodeGID("95100000", "12345", "400")).(string)
	w.ShouldBeEqual(epc, "355AB1C60003039000000190")

	b := w.ShouldHaveResult(ParseHex(epc)).([]byte)
	g := w.ShouldHaveResult(DecodeGID(b)).(GID)
	w.ShouldBeEqual(g.GeneralManager(), "95100000")
	w.ShouldBeEqual(g.ObjectClass(), "12345")
	w.ShouldBeEqual(g.Serial(), "400")
	w.ShouldBeEqual(g.URI(), "urn:epc:id:gid:95100000.12345.400")

	rec := g.Record()
	w.ShouldBeEqual(rec.Scheme, "gid-96")
	w.ShouldBeTrue(rec.Filter == nil)
	w.ShouldBeTrue(rec.Partition == nil)

	b = w.ShouldHaveResult(ParseHex("35FFFFFFFFFFFFFFFFFFFFFF")).([]byte)
	g = w.ShouldHaveResult(DecodeGID(b)).(GID)
	w.ShouldBeEqual(g.URI(), "urn:epc:id:gid:268435455.16777215.68719476735")
	w.ShouldBeEqual(w.ShouldHaveResult(EncodeGID("268435455", "16777215", "68719476735")),
		"35FFFFFFFFFFFFFFFFFFFFFF")

	for _, tc := range [][3]string{
		{"268435456", "0", "0"},
		{"0", "16777216", "0"},
		{"0", "0", "68719476736"},
	} {
		_, err := EncodeGID(tc[0], tc[1], tc[2])
		w.As(fmt.Sprint(tc)).ShouldBeTrue(errors.Is(err, ErrValueOverflow))
	}
	_, err := EncodeGID("0", "007", "0")
	w.ShouldBeTrue(errors.Is(err, ErrMalformedKey))
}

func TestEncode_RoundTrip(t *testing.T) {
	for _, scheme := range []Scheme{SGTIN96, SSCC96, SGLN96, GRAI96, GIAI96} {
		for _, row := range *scheme.Partitions() {
			scheme, row := scheme, row
			t.Run(fmt.Sprintf("%s_partition%d", scheme, row.Index), func(t *testing.T) {
				w := expect.WrapT(t)
				for _, tc := range []struct {
					filter          FilterValue
					cp, ref, serial string
				}{
					{Other, zeros(row.CompanyPrefixDigits), zeros(row.OtherDigits), "0"},
					{UnitPack, nines(row.CompanyPrefixDigits), nines(row.OtherDigits), "274877906943"},
					{POS, digits(row.CompanyPrefixDigits, 1), digits(row.OtherDigits, 7), "42"},
				} {
					epc := w.ShouldHaveResult(Encode(scheme, tc.filter, tc.cp, tc.ref, tc.serial)).(string)
					w.ShouldHaveLength(epc, 2*EPC96NumBytes)

					id := w.ShouldHaveResult(DecodeString(epc)).(Identifier)
					w.ShouldBeEqual(id.Scheme(), scheme)
					w.ShouldBeEqual(id.Header(), scheme.Header())

					p, ok := id.(Partitioned)
					w.StopOnMismatch().ShouldBeTrue(ok)
					w.ShouldBeEqual(p.Filter(), tc.filter)
					w.ShouldBeEqual(p.Partition(), row.Index)
					w.ShouldBeEqual(p.CompanyPrefix(), tc.cp)
					if scheme != SSCC96 {
						w.ShouldBeEqual(id.Serial(), tc.serial)
					}

					// SSCC URIs drop leading '0's, so the prefix length is
					// only recoverable from the SSCC-18
					var u URN
					switch v := id.(type) {
					case SSCC:
						u = w.ShouldHaveResult(SSCCFromCode(v.SSCC(), row.CompanyPrefixDigits)).(URN)
					case SGTIN:
						u = w.ShouldHaveResult(SGTINFromGTIN(v.GTIN(), v.Serial(), row.CompanyPrefixDigits)).(URN)
						w.ShouldBeEqual(u.String(), v.URI())
					default:
						u = w.ShouldHaveResult(ParseURN(id.URI())).(URN)
					}
					w.ShouldBeEqual(w.ShouldHaveResult(u.Encode(tc.filter)), epc)
				}
			})
		}
	}
}

func TestEncode_UnknownScheme(t *testing.T) {
	w := expect.WrapT(t)
	_, err := Encode(Scheme(42), POS, "0614141", "812345", "1")
	w.ShouldFail(err)
}
