/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc

import (
	"strconv"

	"github.com/pkg/errors"
)

// GRAI is a GS1 Global Returnable Asset Identifier: an asset type and a
// serial for the specific returnable asset.
type GRAI struct {
	tagFields
	serial uint64
}

func (GRAI) Scheme() Scheme {
	return GRAI96
}

func (GRAI) Header() byte {
	return GRAI96Header
}

// AssetType returns the asset type, zero-padded to the number of digits its
// partition allows.
func (g GRAI) AssetType() string {
	return g.reference
}

func (g GRAI) Serial() string {
	return strconv.FormatUint(g.serial, 10)
}

// URI returns the EPC Pure Identity URI of the form
//	urn:epc:id:grai:CompanyPrefix.AssetType.SerialNumber
func (g GRAI) URI() string {
	return pureURI(GRAI96, g.companyPrefix, g.reference, g.Serial())
}

func (g GRAI) Record() Record {
	r := g.record(GRAI96)
	r.AssetType = g.reference
	r.Serial = g.Serial()
	r.URN = g.URI()
	return r
}

// DecodeGRAI decodes a GRAI-96 encoded EPC.
func DecodeGRAI(b []byte) (GRAI, error) {
	f, r, err := decodePartitioned(GRAI96, b)
	if err != nil {
		return GRAI{}, err
	}
	serial, err := r.ReadBits(serial96Len)
	if err != nil {
		return GRAI{}, err
	}
	return GRAI{tagFields: f, serial: serial}, nil
}

// EncodeGRAI returns the upper-case hex GRAI-96 encoding of the company
// prefix, asset type and serial.
func EncodeGRAI(filter FilterValue, companyPrefix, assetType, serial string) (string, error) {
	sn, err := parseSerial(serial)
	if err != nil {
		return "", err
	}
	w, err := encodePartitioned(GRAI96, filter, companyPrefix, assetType)
	if err != nil {
		return "", err
	}
	if err := w.WriteBits(sn, serial96Len); err != nil {
		return "", errors.WithMessage(err, "GRAI-96 serial")
	}
	return finish(w)
}

// GRAIFromCode splits the asset type part of a GRAI (AI 8003: a leading '0',
// company prefix, asset type and check digit) into the parts of a GRAI Pure
// Identity URI.
//
// The code is left-padded to 14 digits; the leading digit and check digit
// are dropped, and the asset type is zero-padded to the width the partition
// gives it.
func GRAIFromCode(grai, serial string, prefixLen int) (URN, error) {
	grai, err := gs1Key(grai, gtinStemDigits+1, prefixLen)
	if err != nil {
		return URN{}, err
	}
	return URN{
		Scheme:        GRAI96,
		CompanyPrefix: grai[1 : 1+prefixLen],
		Reference:     leftPad(grai[1+prefixLen:gtinStemDigits], gtinStemDigits-prefixLen),
		Serial:        serial,
	}, nil
}
