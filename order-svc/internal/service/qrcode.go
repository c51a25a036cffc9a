package service

import (
	"fmt"
	"net/url"

	"github.com/skip2/go-qrcode"
)

// DefaultQRGenerator encodes a link to the order tracking page.
type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Generate(orderID string) ([]byte, error) {
	link := fmt.Sprintf("%s/track.html?order_id=%s", g.BaseURL, url.QueryEscape(orderID))
	return qrcode.Encode(link, qrcode.Medium, 256)
}
