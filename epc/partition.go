/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc

import (
	"github.com/pkg/errors"
)

const (
	numPartitions = 7
	maxPartition  = numPartitions - 1

	minPrefixDigits = 6
	maxPrefixDigits = 12
)

// PartitionRow describes how one partition value splits the space after the
// partition field between the GS1 Company Prefix and the scheme's secondary
// field (item reference, serial reference, location reference, asset type or
// individual asset reference).
type PartitionRow struct {
	Index               int
	CompanyPrefixBits   int
	OtherBits           int
	CompanyPrefixDigits int
	OtherDigits         int
}

// PartitionTable holds the 7 rows of a scheme, indexed by partition value.
type PartitionTable [numPartitions]PartitionRow

var (
	// StandardPartitions is shared by SGTIN-96, SGLN-96, GRAI-96 and GIAI-96.
	// Every row has 44 bits and 13 digits between the two fields; the 38 bit
	// serial follows.
	StandardPartitions = PartitionTable{
		{0, 40, 4, 12, 1},
		{1, 37, 7, 11, 2},
		{2, 34, 10, 10, 3},
		{3, 30, 14, 9, 4},
		{4, 27, 17, 8, 5},
		{5, 24, 20, 7, 6},
		{6, 20, 24, 6, 7},
	}

	// SSCCPartitions splits 58 bits and 17 digits; the serial reference
	// includes the SSCC extension digit. 24 reserved bits follow.
	SSCCPartitions = PartitionTable{
		{0, 40, 18, 12, 5},
		{1, 37, 21, 11, 6},
		{2, 34, 24, 10, 7},
		{3, 30, 28, 9, 8},
		{4, 27, 31, 8, 9},
		{5, 24, 34, 7, 10},
		{6, 20, 38, 6, 11},
	}
)

// Row returns the row for the partition value.
func (pt *PartitionTable) Row(partition int) (PartitionRow, error) {
	if partition < 0 || partition > maxPartition {
		return PartitionRow{}, errors.Wrapf(ErrInvalidPartition,
			"partition must be in [0,%d], but is %d", maxPartition, partition)
	}
	return pt[partition], nil
}

// ByPrefixDigits returns the row whose company prefix has n digits.
func (pt *PartitionTable) ByPrefixDigits(n int) (PartitionRow, error) {
	for _, row := range pt {
		if row.CompanyPrefixDigits == n {
			return row, nil
		}
	}
	return PartitionRow{}, errors.Wrapf(ErrInvalidPrefixLength,
		"company prefixes have %d to %d digits, not %d",
		minPrefixDigits, maxPrefixDigits, n)
}
