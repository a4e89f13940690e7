package models

import "strings"

// UnknownNetwork is the network name recorded when the source leaves it blank.
const UnknownNetwork = "unknown"

// Record is one network operator entry. It is a value type: copies never
// share state, so a Record handed out by the store cannot alter it.
type Record struct {
	MCC     string `json:"MCC"`
	MNC     string `json:"MNC"`
	ISO     string `json:"ISO"`
	Country string `json:"COUNTRY"`
	CC      string `json:"CC"`
	Network string `json:"NETWORK"`
}

// NewRecord builds a Record from raw source fields. Every field is trimmed and
// an empty network becomes UnknownNetwork.
func NewRecord(mcc, mnc, iso, country, cc, network string) Record {
	r := Record{
		MCC:     strings.TrimSpace(mcc),
		MNC:     strings.TrimSpace(mnc),
		ISO:     strings.TrimSpace(iso),
		Country: strings.TrimSpace(country),
		CC:      strings.TrimSpace(cc),
		Network: strings.TrimSpace(network),
	}
	if r.Network == "" {
		r.Network = UnknownNetwork
	}
	return r
}

// PLMN returns the natural key of the record, MCC followed by MNC.
func (r Record) PLMN() string {
	return r.MCC + r.MNC
}
