// Package codec is the JSON wire format of the API.
//
// Decoding is strict: unknown fields and trailing data are rejected and every
// decoding failure is reported as a domain InvalidInput error.
package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"github.com/labstack/echo/v4"

	"github.com/sysadmin/sysadmin-api/internal/core/domain"
)

func Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func Unmarshal(data []byte, v any) error {
	return decode(bytes.NewReader(data), v)
}

func decode(r io.Reader, v any) error {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		return malformed(err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return domain.InvalidInput("malformed JSON: unexpected data after top-level value")
	}
	return nil
}

func malformed(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return &domain.Error{
			Kind:    domain.KindInvalidInput,
			Code:    400,
			Message: "malformed JSON: field " + typeErr.Field + " must be " + typeErr.Type.String(),
			Err:     err,
		}
	}
	if errors.Is(err, io.EOF) {
		return domain.InvalidInput("malformed JSON: empty body")
	}
	return &domain.Error{Kind: domain.KindInvalidInput, Code: 400, Message: "malformed JSON", Err: err}
}

// Serializer plugs the codec into Echo as its JSONSerializer.
type Serializer struct{}

func (Serializer) Serialize(c echo.Context, i interface{}, indent string) error {
	enc := json.NewEncoder(c.Response())
	if indent != "" {
		enc.SetIndent("", indent)
	}
	return enc.Encode(i)
}

func (Serializer) Deserialize(c echo.Context, i interface{}) error {
	return decode(c.Request().Body, i)
}

var _ echo.JSONSerializer = Serializer{}
