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

// GIAI is a GS1 Global Individual Asset Identifier: a company prefix, an
// asset reference and a serial.
type GIAI struct {
	tagFields
	serial uint64
}

func (GIAI) Scheme() Scheme {
	return GIAI96
}

func (GIAI) Header() byte {
	return GIAI96Header
}

// AssetReference returns the individual asset reference, zero-padded to the
// number of digits its partition allows.
func (g GIAI) AssetReference() string {
	return g.reference
}

func (g GIAI) Serial() string {
	return strconv.FormatUint(g.serial, 10)
}

// URI returns the EPC Pure Identity URI of the form
//	urn:epc:id:giai:CompanyPrefix.AssetReference.SerialNumber
func (g GIAI) URI() string {
	return pureURI(GIAI96, g.companyPrefix, g.reference, g.Serial())
}

func (g GIAI) Record() Record {
	r := g.record(GIAI96)
	r.Reference = g.reference
	r.Serial = g.Serial()
	r.URN = g.URI()
	return r
}

// DecodeGIAI decodes a GIAI-96 encoded EPC.
func DecodeGIAI(b []byte) (GIAI, error) {
	f, r, err := decodePartitioned(GIAI96, b)
	if err != nil {
		return GIAI{}, err
	}
	serial, err := r.ReadBits(serial96Len)
	if err != nil {
		return GIAI{}, err
	}
	return GIAI{tagFields: f, serial: serial}, nil
}

// EncodeGIAI returns the upper-case hex GIAI-96 encoding of the company
// prefix, asset reference and serial.
func EncodeGIAI(filter FilterValue, companyPrefix, assetRef, serial string) (string, error) {
	sn, err := parseSerial(serial)
	if err != nil {
		return "", err
	}
	w, err := encodePartitioned(GIAI96, filter, companyPrefix, assetRef)
	if err != nil {
		return "", err
	}
	if err := w.WriteBits(sn, serial96Len); err != nil {
		return "", errors.WithMessage(err, "GIAI-96 serial")
	}
	return finish(w)
}
