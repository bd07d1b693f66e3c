// Package refcode turns ledger row ids into short registration reference
// codes shown to attendees in the confirmation email.
package refcode

import (
	hashids "github.com/speps/go-hashids/v2"
)

// Alphabet leaves out 0/O/1/I so codes survive being read over the phone.
const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

type Generator struct {
	h *hashids.HashID
}

func New(salt string) (*Generator, error) {
	data := hashids.NewData()
	data.Salt = salt
	data.MinLength = 8
	data.Alphabet = alphabet

	h, err := hashids.NewWithData(data)
	if err != nil {
		return nil, err
	}
	return &Generator{h: h}, nil
}

func (g *Generator) FromID(id int64) (string, error) {
	return g.h.EncodeInt64([]int64{id})
}
