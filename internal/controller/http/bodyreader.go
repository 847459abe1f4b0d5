package http

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
)

const maxFormMemory = 1 << 20

// readForm - читает поля формы из urlencoded, multipart или плоского JSON тела.
// Для PUT и PATCH тело разбирается так же, как для POST.
func readForm(r *http.Request) (url.Values, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	switch mediaType {
	case "application/json":
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to read request body: %w", err)
		}
		defer r.Body.Close()

		fields := make(map[string]any)
		if len(bodyBytes) > 0 {
			if err := json.Unmarshal(bodyBytes, &fields); err != nil {
				return nil, fmt.Errorf("failed to read request body %s: %w", mediaType, err)
			}
		}

		values := make(url.Values, len(fields))
		for key, value := range fields {
			switch v := value.(type) {
			case string:
				values.Set(key, v)
			case nil:
			default:
				// вложенный объект передаем как исходный JSON
				raw, err := json.Marshal(v)
				if err != nil {
					return nil, fmt.Errorf("failed to read request body field %s: %w", key, err)
				}
				values.Set(key, string(raw))
			}
		}

		return values, nil
	case "multipart/form-data":
		if err := r.ParseMultipartForm(maxFormMemory); err != nil {
			return nil, fmt.Errorf("failed to read request body %s: %w", mediaType, err)
		}
		return r.PostForm, nil
	}

	if err := r.ParseForm(); err != nil {
		return nil, fmt.Errorf("failed to read request body %s: %w", mediaType, err)
	}

	return r.PostForm, nil
}
