/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Package epc converts between GS1 keys, EPC Pure Identity URIs, and the 96 bit
// binary EPC encodings defined by the EPC Tag Data Standard: SGTIN-96,
// SSCC-96, SGLN-96, GRAI-96, GIAI-96 and GID-96.
//
// Every scheme starts with an 8 bit header that selects the layout of the
// other 88 bits. All but GID follow it with a 3 bit filter and a 3 bit
// partition; the partition selects a row of the scheme's PartitionTable, which
// splits the next field between the GS1 Company Prefix and the scheme's
// secondary field (item reference, serial reference, location reference, asset
// type or asset reference). A 38 bit serial or extension fills the rest,
// except for SSCC-96, which ends with 24 reserved bits.
//
// GS1 recommends converting tag data to a URI as soon as possible:
//
//	"The canonical representation of an EPC is the pure-identity URI
//	representation, which is intended for communicating and storing EPCs in
//	information systems, databases and applications, in order to insulate
//	them from knowledge about the physical nature of the tag..."
//		- GS1 EPCglobal Tag Data Translation (TDT) 1.6
//
// Decode and DecodeString return an Identifier, whose URI method gives that
// representation. Two EPCs are the same if and only if their Pure Identity URIs
// are identical, so prefer comparing URIs over comparing tag data or decoded
// fields. Keep in mind that an RFID tag's EPC bank may hold 96 bits that merely
// happen to look like one of these encodings; decoding them proves nothing
// about what the tag's owner meant them to be.
//
// In the other direction, EncodeBarcode translates a GS1 element string (a
// GTIN, SSCC, GLN or GRAI) plus a serial into tag data, and EncodeURN does the
// same for a Pure Identity URI. Both need the company prefix's length, since
// it isn't recoverable from the key's digits: a URI carries it in the width of
// its first component, while a barcode request names it explicitly. SSCC URIs
// drop leading '0's, so an SSCC whose company prefix starts with '0' must be
// encoded from the SSCC itself.
//
// Nothing here is cached or shared between calls, so every function is safe
// for concurrent use.
//
// Links to the relevant GS1 standards:
//   - https://www.gs1.org/sites/default/files/docs/barcodes/GS1_General_Specifications.pdf
//   - https://www.gs1.org/standards/epcrfid-epcis-id-keys/epc-rfid-tds/1-12
//   - https://www.gs1.org/sites/default/files/docs/epc/GS1_EPC_TDS_i1_12.pdf
package epc
