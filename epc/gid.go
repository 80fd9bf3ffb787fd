/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc

import (
	"strconv"

	"github.com/intel/rsp-sw-toolkit-im-suite-epccodec/bitextract"
	"github.com/pkg/errors"
)

const (
	gidManagerLen = 28
	gidClassLen   = 24
	gidSerialLen  = 36
)

// GID is a General Identifier. Unlike the GS1 schemes, it has no filter or
// partition: after the header come a 28 bit General Manager Number, a 24 bit
// Object Class and a 36 bit serial.
type GID struct {
	manager, class, serial uint64
}

func (GID) Scheme() Scheme {
	return GID96
}

func (GID) Header() byte {
	return GID96Header
}

func (g GID) GeneralManager() string {
	return strconv.FormatUint(g.manager, 10)
}

func (g GID) ObjectClass() string {
	return strconv.FormatUint(g.class, 10)
}

func (g GID) Serial() string {
	return strconv.FormatUint(g.serial, 10)
}

// URI returns the EPC Pure Identity URI of the form
//	urn:epc:id:gid:GeneralManager.ObjectClass.SerialNumber
func (g GID) URI() string {
	return pureURI(GID96, g.GeneralManager(), g.ObjectClass(), g.Serial())
}

func (g GID) Record() Record {
	return Record{
		Scheme:         GID96.String(),
		Header:         GID96Header,
		GeneralManager: g.GeneralManager(),
		ObjectClass:    g.ObjectClass(),
		Serial:         g.Serial(),
		URN:            g.URI(),
	}
}

// DecodeGID decodes a GID-96 encoded EPC.
func DecodeGID(b []byte) (GID, error) {
	if err := checkLength(GID96, b); err != nil {
		return GID{}, err
	}
	r := bitextract.NewBitReader(b)
	if err := readHeader(r, GID96); err != nil {
		return GID{}, err
	}

	var g GID
	var err error
	if g.manager, err = r.ReadBits(gidManagerLen); err != nil {
		return GID{}, err
	}
	if g.class, err = r.ReadBits(gidClassLen); err != nil {
		return GID{}, err
	}
	if g.serial, err = r.ReadBits(gidSerialLen); err != nil {
		return GID{}, err
	}
	return g, nil
}

// EncodeGID returns the upper-case hex GID-96 encoding of the decimal general
// manager number, object class and serial.
func EncodeGID(manager, class, serial string) (string, error) {
	var vals [3]uint64
	for i, s := range []string{manager, class, serial} {
		v, err := parseSerial(s)
		if err != nil {
			return "", errors.WithMessagef(err, "GID-96 field %d", i)
		}
		vals[i] = v
	}

	w := bitextract.NewBitWriter(epc96NumBits)
	if err := writeFields(w,
		field{GID96Header, headerLen},
		field{vals[0], gidManagerLen},
		field{vals[1], gidClassLen},
		field{vals[2], gidSerialLen},
	); err != nil {
		return "", errors.WithMessage(err, "GID-96")
	}
	return finish(w)
}
