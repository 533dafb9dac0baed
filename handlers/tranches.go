package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/satheeshds/commissions/models"
	"github.com/satheeshds/commissions/repository"
)

// ListTranches lists the tranches of a transaction
// @Summary      List tranches
// @Description  Get the installments of a property deal in storage order.
// @Tags         tranches
// @Produce      json
// @Param        id   path      int  true  "Transaction ID"
// @Success      200  {object}  Response{data=[]models.Tranche}
// @Failure      404  {object}  Response{error=string}
// @Router       /transactions/{id}/tranches [get]
// @Security     BasicAuth
func ListTranches(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if _, err := Repo.GetTransaction(r.Context(), id); err != nil {
		writeStoreError(w, r, err, "transaction")
		return
	}
	tranches, err := Repo.ListTranchesFor(r.Context(), id)
	if err != nil {
		writeStoreError(w, r, err, "transaction")
		return
	}
	writeJSON(w, http.StatusOK, tranches)
}

// ReplaceTranches replaces the tranche set of a transaction
// @Summary      Replace tranches
// @Description  Replace every installment of a property deal. The deal's net commission becomes the sum of the new amounts. On failure the response carries the persisted set alongside the error.
// @Tags         tranches
// @Accept       json
// @Produce      json
// @Param        id        path      int                    true  "Transaction ID"
// @Param        tranches  body      []models.TrancheInput  true  "Complete new tranche set"
// @Success      200       {object}  Response{data=[]models.Tranche}
// @Failure      400       {object}  Response{error=string}
// @Failure      404       {object}  Response{error=string}
// @Failure      500       {object}  Response{data=[]models.Tranche,error=string}
// @Router       /transactions/{id}/tranches [put]
// @Security     BasicAuth
func ReplaceTranches(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	var inputs []models.TrancheInput
	if err := json.NewDecoder(r.Body).Decode(&inputs); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	for i := range inputs {
		if msg := inputs[i].Validate(); msg != "" {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("tranche %d: %s", i, msg))
			return
		}
	}

	tranches, err := Dashboard.ReplaceTranches(r.Context(), id, inputs)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "transaction not found")
			return
		}
		writeResponse(w, http.StatusInternalServerError, Response{Data: tranches, Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, tranches)
}
