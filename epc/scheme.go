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

const (
	// EPC96NumBytes is the length of every tag this package handles.
	EPC96NumBytes = 12
	epc96NumBits  = EPC96NumBytes * 8

	SGTIN96Header = 0x30
	SSCC96Header  = 0x31
	SGLN96Header  = 0x32
	GRAI96Header  = 0x33
	GIAI96Header  = 0x34
	GID96Header   = 0x35

	PureURIPrefix = "urn:epc:id:"

	headerLen    = 8
	filterLen    = 3
	partitionLen = 3
	serial96Len  = 38
	ssccReserved = 24
)

// Scheme identifies one of the 96-bit EPC binary encodings.
type Scheme int

const (
	SGTIN96 Scheme = iota
	SSCC96
	SGLN96
	GRAI96
	GIAI96
	GID96
)

type schemeInfo struct {
	name, uriScheme string
	header          byte
	partitions      *PartitionTable
}

var schemes = [...]schemeInfo{
	SGTIN96: {"sgtin-96", "sgtin", SGTIN96Header, &StandardPartitions},
	SSCC96:  {"sscc-96", "sscc", SSCC96Header, &SSCCPartitions},
	SGLN96:  {"sgln-96", "sgln", SGLN96Header, &StandardPartitions},
	GRAI96:  {"grai-96", "grai", GRAI96Header, &StandardPartitions},
	GIAI96:  {"giai-96", "giai", GIAI96Header, &StandardPartitions},
	GID96:   {"gid-96", "gid", GID96Header, nil},
}

func (s Scheme) valid() bool {
	return s >= SGTIN96 && s <= GID96
}

// String returns the lower-case TDS name of the scheme, e.g. "sgtin-96".
func (s Scheme) String() string {
	if !s.valid() {
		return "unknown scheme " + strconv.Itoa(int(s))
	}
	return schemes[s].name
}

// Header returns the scheme's EPC header byte.
func (s Scheme) Header() byte {
	if !s.valid() {
		return 0
	}
	return schemes[s].header
}

// URIPrefix returns the Pure Identity URI prefix of the scheme, including the
// trailing ':', e.g. "urn:epc:id:sgtin:".
func (s Scheme) URIPrefix() string {
	if !s.valid() {
		return ""
	}
	return PureURIPrefix + schemes[s].uriScheme + ":"
}

// Partitions returns the scheme's partition table, or nil for GID-96, which
// has no partition field.
func (s Scheme) Partitions() *PartitionTable {
	if !s.valid() {
		return nil
	}
	return schemes[s].partitions
}

// ParseScheme accepts scheme names like "SGTIN-96", "sgtin-96" or "sgtin".
func ParseScheme(name string) (Scheme, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for s, info := range schemes {
		if n == info.name || n == info.uriScheme {
			return Scheme(s), nil
		}
	}
	return 0, errors.Errorf("unknown EPC scheme %q", name)
}

// FilterValue is the 3 bit filter of a tag. The codec passes it through
// unchanged; the names below are the GS1 meanings for SGTIN.
type FilterValue int

const (
	Other     = FilterValue(0)
	POS       = FilterValue(1)
	FullCase  = FilterValue(2)
	reserved1 = FilterValue(3)
	InnerPack = FilterValue(4)
	reserved2 = FilterValue(5)
	UnitLoad  = FilterValue(6)
	UnitPack  = FilterValue(7)

	// DefaultFilter is used when an encode request doesn't name a filter.
	DefaultFilter = POS
)

// IsValid returns false if the FilterValue is outside the available range of
// filter values, or if it equals one of the GS1 reserved filter values; other-
// wise it returns true.
func (fv FilterValue) IsValid() bool {
	return fv >= Other && fv <= UnitPack &&
		!(fv == reserved1 || fv == reserved2)
}

func (fv FilterValue) String() string {
	switch fv {
	case Other:
		return "Other"
	case POS:
		return "POS"
	case FullCase:
		return "Full Case"
	case InnerPack:
		return "Inner Pack"
	case UnitLoad:
		return "Unit Load"
	case UnitPack:
		return "Unit Pack"
	case reserved1, reserved2:
		return "Reserved"
	}
	return "Unknown filter value: " + strconv.Itoa(int(fv))
}
