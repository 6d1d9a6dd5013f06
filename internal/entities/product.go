package entities

import (
	"bytes"
	"encoding/gob"
)

// Product is a read-only catalog entry. The pricer trusts only this source
// for unit prices, never client input.
type Product struct {
	ID         string
	Title      string
	PriceCents int64
}

func (p *Product) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(p); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (p *Product) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	return dec.Decode(p)
}

func init() {
	gob.Register(Product{})
}
