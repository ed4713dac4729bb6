package http

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/MKhiriev/go-pass-vault/internal/passgen"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

// generatePassword serves GET /api/generator/password. Omitted query
// parameters fall back to passgen.DefaultOptions.
func (h *Handler) generatePassword(w http.ResponseWriter, r *http.Request) {
	opts, err := passwordOptionsFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, r, err, "*Handler.generatePassword")
		return
	}

	generated, err := h.services.GeneratorService.Generate(r.Context(), opts)
	if err != nil {
		writeError(w, r, err, "*Handler.generatePassword")
		return
	}

	utils.WriteJSON(w, generated, http.StatusOK)
}

func passwordOptionsFromQuery(q url.Values) (models.PasswordOptions, error) {
	opts := passgen.DefaultOptions()

	if v := q.Get("length"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return models.PasswordOptions{}, fmt.Errorf("%w: length: %w", ErrInvalidQuery, err)
		}
		opts.Length = n
	}

	for name, dst := range map[string]*bool{
		"upper":          &opts.Uppercase,
		"lower":          &opts.Lowercase,
		"digits":         &opts.Digits,
		"symbols":        &opts.Symbols,
		"excludeSimilar": &opts.ExcludeSimilar,
	} {
		v := q.Get(name)
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return models.PasswordOptions{}, fmt.Errorf("%w: %s: %w", ErrInvalidQuery, name, err)
		}
		*dst = b
	}

	return opts, nil
}
