package postharvest

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/go-viper/mapstructure/v2"

	"github.com/diwise/postharvest/internal/pkg/infrastructure/database"
	phErrors "github.com/diwise/postharvest/pkg/postharvest/errors"
)

// decodeChanges reads a json object into changes in the order the keys
// appear. A repeated key keeps its first position and its last value.
func decodeChanges(r *http.Request) (database.Changes, error) {
	defer r.Body.Close()
	return readChanges(io.LimitReader(r.Body, maxBodySize))
}

func readChanges(body io.Reader) (database.Changes, error) {
	dec := json.NewDecoder(body)
	dec.UseNumber()

	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}

	changes := database.Changes{}
	index := map[string]int{}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, invalidPayload(err)
		}

		key, ok := tok.(string)
		if !ok {
			return nil, phErrors.NewInvalidArgumentError("unexpected token in request payload")
		}

		var value any
		if err := dec.Decode(&value); err != nil {
			return nil, invalidPayload(err)
		}

		if i, seen := index[key]; seen {
			changes[i].Value = value
			continue
		}

		index[key] = len(changes)
		changes = append(changes, database.Change{Field: key, Value: value})
	}

	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}

	return changes, nil
}

func expectDelim(dec *json.Decoder, delim json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return invalidPayload(err)
	}

	if d, ok := tok.(json.Delim); !ok || d != delim {
		return phErrors.NewInvalidArgumentError("request payload must be a json object")
	}

	return nil
}

func invalidPayload(err error) error {
	return phErrors.NewInvalidArgumentError(fmt.Sprintf("unable to decode request payload: %s", err.Error()))
}

// decodeData converts a loosely typed json object into T. Numbers are
// accepted for text fields.
func decodeData[T any](data map[string]any) (T, error) {
	var result T

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           &result,
	})
	if err != nil {
		return result, err
	}

	if err := decoder.Decode(data); err != nil {
		return result, phErrors.NewInvalidArgumentError(fmt.Sprintf("invalid data: %s", err.Error()))
	}

	return result, nil
}
