/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc

import (
	"github.com/intel/rsp-sw-toolkit-im-suite-epccodec/bitextract"
	"github.com/pkg/errors"
)

// tagFields are the fields every partitioned scheme shares. reference is the
// scheme's secondary field: item reference (with indicator), serial reference
// (with extension digit), location reference, asset type or asset reference.
type tagFields struct {
	filter        FilterValue
	partition     int
	companyPrefix string
	reference     string
}

func (f tagFields) Filter() FilterValue {
	return f.filter
}

func (f tagFields) Partition() int {
	return f.partition
}

// CompanyPrefix returns the GS1 Company Prefix, zero-padded to the number of
// digits its partition allows.
func (f tagFields) CompanyPrefix() string {
	return f.companyPrefix
}

func (f tagFields) record(s Scheme) Record {
	filter, partition := f.filter, f.partition
	return Record{
		Scheme:        s.String(),
		Header:        s.Header(),
		Filter:        &filter,
		Partition:     &partition,
		CompanyPrefix: f.companyPrefix,
	}
}

func pureURI(s Scheme, parts ...string) string {
	uri := s.URIPrefix()
	for i, p := range parts {
		if i > 0 {
			uri += "."
		}
		uri += p
	}
	return uri
}

func checkLength(s Scheme, b []byte) error {
	if len(b) != EPC96NumBytes {
		return errors.Wrapf(ErrUnsupportedLength, "%s should have %d bytes, "+
			"but this has %d bytes", s, EPC96NumBytes, len(b))
	}
	return nil
}

func readHeader(r *bitextract.BitReader, s Scheme) error {
	h, err := r.ReadBits(headerLen)
	if err != nil {
		return err
	}
	if byte(h) != s.Header() {
		return errors.Wrapf(ErrHeaderMismatch, "%s header is 0x%02X, "+
			"but this is 0x%02X", s, s.Header(), h)
	}
	return nil
}

// decodePartitioned reads the header, filter, partition, company prefix and
// secondary field of a partitioned scheme, and returns the reader positioned
// at the first bit after them.
func decodePartitioned(s Scheme, b []byte) (f tagFields, r *bitextract.BitReader, err error) {
	if err = checkLength(s, b); err != nil {
		return
	}
	r = bitextract.NewBitReader(b)
	if err = readHeader(r, s); err != nil {
		return
	}

	filter, err := r.ReadBits(filterLen)
	if err != nil {
		return
	}
	f.filter = FilterValue(filter)

	// most values we can format without knowing they're valid, but if the
	// partition isn't, we don't know how to split the other fields.
	partition, err := r.ReadBits(partitionLen)
	if err != nil {
		return
	}
	row, err := s.Partitions().Row(int(partition))
	if err != nil {
		return
	}
	f.partition = row.Index

	cp, err := r.ReadBits(row.CompanyPrefixBits)
	if err != nil {
		return
	}
	if f.companyPrefix, err = formatDigits(cp, row.CompanyPrefixDigits); err != nil {
		err = errors.WithMessagef(err, "company prefix in partition %d", row.Index)
		return
	}

	ref, err := r.ReadBits(row.OtherBits)
	if err != nil {
		return
	}
	if f.reference, err = formatDigits(ref, row.OtherDigits); err != nil {
		err = errors.WithMessagef(err, "%s reference in partition %d", s, row.Index)
		return
	}

	return f, r, nil
}

// encodePartitioned writes the header, filter, partition, company prefix and
// secondary field of a partitioned scheme. The partition is chosen by the
// number of digits in companyPrefix; reference may be shorter than the digits
// its field allows, in which case it is left-padded with '0's.
func encodePartitioned(s Scheme, filter FilterValue, companyPrefix, reference string) (*bitextract.BitWriter, error) {
	if filter < 0 || filter > UnitPack {
		return nil, errors.Wrapf(ErrValueOverflow,
			"filter must be in [0,%d], but is %d", UnitPack, filter)
	}

	row, err := s.Partitions().ByPrefixDigits(len(companyPrefix))
	if err != nil {
		return nil, err
	}
	cp, err := parseDigits(companyPrefix, row.CompanyPrefixDigits)
	if err != nil {
		return nil, errors.WithMessage(err, "company prefix")
	}
	if len(reference) > row.OtherDigits {
		return nil, errors.Wrapf(ErrMalformedKey, "a %d digit company prefix "+
			"leaves %d digits for the %s reference, but %q has %d",
			row.CompanyPrefixDigits, row.OtherDigits, s, reference, len(reference))
	}
	ref, err := parseDigits(leftPad(reference, row.OtherDigits), row.OtherDigits)
	if err != nil {
		return nil, errors.WithMessagef(err, "%s reference", s)
	}

	w := bitextract.NewBitWriter(epc96NumBits)
	if err := writeFields(w,
		field{uint64(s.Header()), headerLen},
		field{uint64(filter), filterLen},
		field{uint64(row.Index), partitionLen},
		field{cp, row.CompanyPrefixBits},
		field{ref, row.OtherBits},
	); err != nil {
		return nil, err
	}
	return w, nil
}

type field struct {
	value uint64
	bits  int
}

func writeFields(w *bitextract.BitWriter, fields ...field) error {
	for _, f := range fields {
		if err := w.WriteBits(f.value, f.bits); err != nil {
			return err
		}
	}
	return nil
}

// finish checks the writer holds exactly 96 bits and returns them as hex.
func finish(w *bitextract.BitWriter) (string, error) {
	if w.Len() != epc96NumBits {
		return "", errors.Errorf("encoded %d bits instead of %d",
			w.Len(), epc96NumBits)
	}
	return w.String(), nil
}
