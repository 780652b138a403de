package codes

import (
	"math/rand"
	"time"

	hashids "github.com/speps/go-hashids/v2"
)

// Generator produces short opaque share codes for events. Codes are derived
// from the organizer ID plus a timestamp and a random component, so they leak
// neither sequential event IDs nor creation order.
type Generator struct {
	h *hashids.HashID
}

func NewGenerator(salt string) (*Generator, error) {
	hd := hashids.NewData()
	hd.Salt = salt
	hd.MinLength = 8

	h, err := hashids.NewWithData(hd)
	if err != nil {
		return nil, err
	}

	return &Generator{h: h}, nil
}

func (g *Generator) Generate(organizerID int64) (string, error) {
	return g.h.EncodeInt64([]int64{
		organizerID,
		time.Now().UnixMilli(),
		rand.Int63n(1 << 16),
	})
}
