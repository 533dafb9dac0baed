package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/satheeshds/commissions/models"
)

// ListTransactions lists transactions
// @Summary      List transactions
// @Description  Get all property deals, optionally only those dated in a year or paying out in it.
// @Tags         transactions
// @Produce      json
// @Param        year  query     int  false  "Filter by deal or tranche year"
// @Success      200   {object}  Response{data=[]models.Transaction}
// @Router       /transactions [get]
// @Security     BasicAuth
func ListTransactions(w http.ResponseWriter, r *http.Request) {
	var years []int
	if y := r.URL.Query().Get("year"); y != "" {
		year, err := strconv.Atoi(y)
		if err != nil {
			writeError(w, http.StatusBadRequest, "year must be an integer")
			return
		}
		years = append(years, year)
	}

	txns, err := Repo.ListTransactions(r.Context(), years)
	if err != nil {
		writeStoreError(w, r, err, "transaction")
		return
	}
	writeJSON(w, http.StatusOK, txns)
}

// GetTransaction retrieves a single transaction by ID
// @Summary      Get transaction
// @Description  Get details of a specific property deal.
// @Tags         transactions
// @Produce      json
// @Param        id   path      int  true  "Transaction ID"
// @Success      200  {object}  Response{data=models.Transaction}
// @Failure      404  {object}  Response{error=string}
// @Router       /transactions/{id} [get]
// @Security     BasicAuth
func GetTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	t, err := Repo.GetTransaction(r.Context(), id)
	if err != nil {
		writeStoreError(w, r, err, "transaction")
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// CreateTransaction creates a new transaction
// @Summary      Create transaction
// @Description  Record a new property deal. Amounts are in cents.
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        transaction  body      models.TransactionInput  true  "Transaction contents"
// @Success      201          {object}  Response{data=models.Transaction}
// @Failure      400          {object}  Response{error=string}
// @Router       /transactions [post]
// @Security     BasicAuth
func CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var input models.TransactionInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if msg := input.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	t, err := Repo.CreateTransaction(r.Context(), input)
	if err != nil {
		writeStoreError(w, r, err, "transaction")
		return
	}
	invalidateDashboard()
	writeJSON(w, http.StatusCreated, t)
}

// UpdateTransaction updates an existing transaction
// @Summary      Update transaction
// @Description  Replace every mutable field of a property deal.
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        id           path      int                      true  "Transaction ID"
// @Param        transaction  body      models.TransactionInput  true  "Transaction contents"
// @Success      200          {object}  Response{data=models.Transaction}
// @Failure      400          {object}  Response{error=string}
// @Failure      404          {object}  Response{error=string}
// @Router       /transactions/{id} [put]
// @Security     BasicAuth
func UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	var input models.TransactionInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if msg := input.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	t, err := Repo.UpdateTransaction(r.Context(), id, input)
	if err != nil {
		writeStoreError(w, r, err, "transaction")
		return
	}
	invalidateDashboard()
	writeJSON(w, http.StatusOK, t)
}

// DeleteTransaction deletes a transaction
// @Summary      Delete transaction
// @Description  Remove a property deal together with its tranches.
// @Tags         transactions
// @Produce      json
// @Param        id   path      int  true  "Transaction ID"
// @Success      200  {object}  Response{data=map[string]string}
// @Failure      404  {object}  Response{error=string}
// @Router       /transactions/{id} [delete]
// @Security     BasicAuth
func DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := Repo.DeleteTransaction(r.Context(), id); err != nil {
		writeStoreError(w, r, err, "transaction")
		return
	}
	invalidateDashboard()
	writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
}
