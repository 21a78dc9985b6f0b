package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"pet-adoption-api/internal/domain"
)

const maxBodyBytes = 1 << 20

var validate = validator.New(validator.WithRequiredStructEnabled())

func init() {
	// Reportar nombres JSON, no nombres de campos Go.
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// DecodeJSON lee un body JSON en v y lo valida. Todo error envuelve
// domain.ErrInvalidInput.
func DecodeJSON(r *http.Request, v any) error {
	raw, err := readBody(r)
	if err != nil {
		return err
	}
	if len(raw) == 0 {
		return fmt.Errorf("%w: request body is empty", domain.ErrInvalidInput)
	}
	return unmarshalValid(raw, v)
}

// DecodeOptionalJSON es DecodeJSON para rutas donde el body es opcional.
// Indica si vino body; si no vino, v queda intacto.
func DecodeOptionalJSON(r *http.Request, v any) (bool, error) {
	raw, err := readBody(r)
	if err != nil || len(raw) == 0 {
		return false, err
	}
	return true, unmarshalValid(raw, v)
}

// DecodeJSONFields decodifica igual que DecodeJSON y además devuelve los
// miembros de primer nivel, para conservar campos que v no declara.
func DecodeJSONFields(r *http.Request, v any) (map[string]json.RawMessage, error) {
	raw, err := readBody(r)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: request body is empty", domain.ErrInvalidInput)
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("%w: invalid json", domain.ErrInvalidInput)
	}
	if err := unmarshalValid(raw, v); err != nil {
		return nil, err
	}
	return fields, nil
}

// readBody devuelve el body sin espacios alrededor, limitado a maxBodyBytes.
func readBody(r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return nil, nil
	}
	raw, err := io.ReadAll(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, fmt.Errorf("%w: request body too large", domain.ErrInvalidInput)
		}
		return nil, fmt.Errorf("%w: read body: %v", domain.ErrInvalidInput, err)
	}
	return bytes.TrimSpace(raw), nil
}

func unmarshalValid(raw []byte, v any) error {
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%w: invalid json", domain.ErrInvalidInput)
	}
	return Validate(v)
}

// Validate corre la validación de struct sobre v.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		parts := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			parts = append(parts, fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag()))
		}
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(parts, "; "))
	}
	return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
}
