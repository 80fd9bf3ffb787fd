/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc

// Identifier is an EPC decoded from one of the 96-bit schemes. The concrete
// type is one of SGTIN, SSCC, SGLN, GRAI, GIAI or GID; use a type switch to
// reach scheme specific fields.
type Identifier interface {
	Scheme() Scheme
	Header() byte
	// Serial returns the serial number, or the extension for SGLN. SSCCs have
	// no serial and return "".
	Serial() string
	// URI returns the EPC Pure Identity URI.
	URI() string
	// Record returns the identifier's fields as a flat structure suitable for
	// serialization.
	Record() Record
}

// Partitioned is implemented by every Identifier except GID.
type Partitioned interface {
	Identifier
	Filter() FilterValue
	Partition() int
	CompanyPrefix() string
}

// Record is a flat view of an Identifier. Fields that don't apply to the
// scheme are left empty.
type Record struct {
	Scheme            string       `json:"scheme"`
	Header            byte         `json:"header"`
	Filter            *FilterValue `json:"filter,omitempty"`
	Partition         *int         `json:"partition,omitempty"`
	CompanyPrefix     string       `json:"company_prefix,omitempty"`
	ItemReference     string       `json:"item_reference,omitempty"`
	SerialReference   string       `json:"serial_reference,omitempty"`
	LocationReference string       `json:"location_reference,omitempty"`
	AssetType         string       `json:"asset_type,omitempty"`
	Reference         string       `json:"reference,omitempty"`
	GeneralManager    string       `json:"general_manager,omitempty"`
	ObjectClass       string       `json:"object_class,omitempty"`
	Serial            string       `json:"serial,omitempty"`
	URN               string       `json:"urn"`
	GTIN14            string       `json:"gtin14,omitempty"`
	SSCC              string       `json:"sscc,omitempty"`
}
