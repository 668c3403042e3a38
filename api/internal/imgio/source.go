package imgio

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"
)

// Source is one of the four input modalities a recognition request can carry.
// Exactly one variant is populated per request; Resolve dispatches on it.
type Source interface{ isSource() }

// Path references an image on the local filesystem.
type Path string

// Base64 carries base64-encoded image bytes, optionally as a data: URL.
type Base64 string

// Upload carries the filename and content of a multipart file upload.
type Upload struct {
	Filename string
	Data     []byte
}

// URL references an image to fetch over HTTP.
type URL string

func (Path) isSource()   {}
func (Base64) isSource() {}
func (Upload) isSource() {}
func (URL) isSource()    {}

// Resolver turns a Source into a canonical Image, applying the gate rules the
// variant calls for before any decode work happens.
type Resolver struct {
	httpc *http.Client
}

func NewResolver(fetchTimeout time.Duration) *Resolver {
	return &Resolver{httpc: &http.Client{Timeout: fetchTimeout}}
}

// Resolve validates and decodes one input. Filename-identified sources are
// extension-checked first; every byte buffer is signature-checked before
// decode regardless of where it came from.
func (r *Resolver) Resolve(ctx context.Context, src Source) (*Image, error) {
	switch s := src.(type) {
	case Path:
		if err := CheckExt(string(s)); err != nil {
			return nil, err
		}
		b, err := os.ReadFile(string(s))
		if err != nil {
			return nil, &DecodeError{Cause: err}
		}
		return gateAndDecode(b)

	case Base64:
		b, err := decodeBase64(string(s))
		if err != nil {
			return nil, &DecodeError{Cause: err}
		}
		return gateAndDecode(b)

	case Upload:
		if err := CheckExt(s.Filename); err != nil {
			return nil, err
		}
		return gateAndDecode(s.Data)

	case URL:
		b, err := r.fetch(ctx, string(s))
		if err != nil {
			return nil, err
		}
		return gateAndDecode(b)

	default:
		return nil, fmt.Errorf("unknown image source %T", src)
	}
}

func gateAndDecode(b []byte) (*Image, error) {
	if err := CheckSignature(b); err != nil {
		return nil, err
	}
	return Decode(b)
}

// decodeBase64 accepts standard and URL-safe alphabets and tolerates a
// data:<mime>;base64, prefix.
func decodeBase64(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(strings.ToLower(s), "data:") {
		if i := strings.IndexByte(s, ','); i > 0 {
			s = s[i+1:]
		}
	}
	if b, err := base64.StdEncoding.DecodeString(s); err == nil {
		return b, nil
	}
	return base64.URLEncoding.DecodeString(s)
}
