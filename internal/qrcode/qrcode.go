// Package qrcode renders room join links as scannable PNGs.
package qrcode

import qr "github.com/skip2/go-qrcode"

const size = 300 // px, comfortable for phone cameras across a table

// Generate creates a QR code PNG for the given join URL.
func Generate(url string) ([]byte, error) {
	return qr.Encode(url, qr.Medium, size)
}
