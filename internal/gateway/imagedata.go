package gateway

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strings"
)

var dataURIPrefix = []byte("data:")

// StripDataURI убирает префикс вида "data:image/jpeg;base64," и декодирует содержимое.
// Сырые байты без префикса возвращаются как есть. Второе значение - MIME из префикса,
// если он там был.
func StripDataURI(payload []byte) ([]byte, string, error) {
	if !bytes.HasPrefix(payload, dataURIPrefix) {
		return payload, "", nil
	}

	comma := bytes.IndexByte(payload, ',')
	if comma < 0 {
		return nil, "", fmt.Errorf("%w: data URI without payload", ErrValidation)
	}

	header := string(payload[len(dataURIPrefix):comma])
	body := payload[comma+1:]

	mimeType, params, _ := strings.Cut(header, ";")
	if !strings.Contains(params, "base64") {
		return body, mimeType, nil
	}

	decoded := make([]byte, base64.StdEncoding.DecodedLen(len(body)))
	n, err := base64.StdEncoding.Decode(decoded, bytes.TrimSpace(body))
	if err != nil {
		return nil, "", fmt.Errorf("%w: invalid base64 image payload: %v", ErrValidation, err)
	}
	return decoded[:n], mimeType, nil
}
