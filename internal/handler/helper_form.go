package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/mitchellh/mapstructure"
	"github.com/wmsdemo/wms/pkg/model"
)

// DecodeForm decodes a form or JSON request body into out. Form values
// are weakly typed, "100" decodes into an int field. Fields listed in
// required must be present and not empty.
func DecodeForm(r *http.Request, out interface{}, required ...string) error {
	values := make(map[string]interface{})

	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		err := json.NewDecoder(r.Body).Decode(&values)
		if err != nil {
			return err
		}
	} else {
		err := r.ParseForm()
		if err != nil {
			return err
		}
		for key := range r.PostForm {
			values[key] = strings.TrimSpace(r.PostForm.Get(key))
		}
	}

	// the id is always taken from the path
	delete(values, "id")

	var missing []string
	for _, name := range required {
		if v, ok := values[name]; !ok || v == nil || v == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return &model.MissingFieldsError{Fields: missing}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(values)
}

func PathID(r *http.Request) (int, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}
