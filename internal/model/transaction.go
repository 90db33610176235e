// Package model defines domain models for nonce reuse auditing.
package model

import "encoding/json"

// AddressPage is a single page of the provider's address endpoint.
type AddressPage struct {
	NTx int64         `json:"n_tx"`
	Txs []Transaction `json:"txs"`
}

// Transaction is a transaction record as returned by the provider.
type Transaction struct {
	Hash    string   `json:"hash"`
	Inputs  []Input  `json:"inputs"`
	Outputs []Output `json:"out"`
}

// Input is a transaction input; Script is nil when the provider omitted the field.
type Input struct {
	Script *string `json:"script,omitempty"`
}

// Output is a transaction output; Script is nil when the provider omitted the field.
type Output struct {
	Script *string `json:"script,omitempty"`
}

// DecodeAddressPage parses a raw provider response.
func DecodeAddressPage(raw []byte) (*AddressPage, error) {
	var page AddressPage
	if err := json.Unmarshal(raw, &page); err != nil {
		return nil, err
	}
	return &page, nil
}
