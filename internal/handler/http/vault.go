// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

// maxBodyBytes bounds every JSON request body.
const maxBodyBytes = 1 << 20

func (h *Handler) listVaultItems(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoUserInContext, "*Handler.listVaultItems")
		return
	}

	items, err := h.services.VaultService.List(r.Context(), userID)
	if err != nil {
		writeError(w, r, err, "*Handler.listVaultItems")
		return
	}

	utils.WriteJSON(w, items, http.StatusOK)
}

func (h *Handler) createVaultItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoUserInContext, "*Handler.createVaultItem")
		return
	}

	fields, err := decodeVaultItemFields(w, r)
	if err != nil {
		writeError(w, r, err, "*Handler.createVaultItem")
		return
	}

	id, err := h.services.VaultService.Create(r.Context(), userID, fields)
	if err != nil {
		writeError(w, r, err, "*Handler.createVaultItem")
		return
	}

	logger.FromRequest(r).Debug().Str("id", id).Str("owner_id", userID).Msg("vault item created")
	utils.WriteJSON(w, models.CreatedResponse{ID: id}, http.StatusCreated)
}

func (h *Handler) updateVaultItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoUserInContext, "*Handler.updateVaultItem")
		return
	}

	fields, err := decodeVaultItemFields(w, r)
	if err != nil {
		writeError(w, r, err, "*Handler.updateVaultItem")
		return
	}

	if err = h.services.VaultService.Update(r.Context(), userID, chi.URLParam(r, "id"), fields); err != nil {
		writeError(w, r, err, "*Handler.updateVaultItem")
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "vault item updated"}, http.StatusOK)
}

func (h *Handler) deleteVaultItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoUserInContext, "*Handler.deleteVaultItem")
		return
	}

	if err := h.services.VaultService.Delete(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err, "*Handler.deleteVaultItem")
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "vault item deleted"}, http.StatusOK)
}

// decodeVaultItemFields reads the five editable fields. Anything else in
// the body, an owner id included, is ignored.
func decodeVaultItemFields(w http.ResponseWriter, r *http.Request) (models.VaultItemFields, error) {
	var fields models.VaultItemFields
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&fields); err != nil {
		return models.VaultItemFields{}, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return fields, nil
}
