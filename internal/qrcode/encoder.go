// Package qrcode renders check-in links as PNG QR codes.
package qrcode

import (
	"errors"
	"strings"

	goqrcode "github.com/skip2/go-qrcode"
)

const DefaultSize = 256

type Encoder struct {
	size  int
	level goqrcode.RecoveryLevel
}

func NewEncoder(size int) *Encoder {
	if size <= 0 {
		size = DefaultSize
	}
	return &Encoder{size: size, level: goqrcode.Medium}
}

func (encoder *Encoder) EncodePNG(content string) ([]byte, error) {
	if strings.TrimSpace(content) == "" {
		return nil, errors.New("qr content is empty")
	}
	return goqrcode.Encode(content, encoder.level, encoder.size)
}
