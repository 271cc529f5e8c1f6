package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/joycesaquino/customer/internal/logger"
	"github.com/joycesaquino/customer/internal/utils"
	"github.com/joycesaquino/customer/models"
)

func (h *Handler) listCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.services.CustomerService.ListCustomers(r.Context())
	if err != nil {
		h.writeError(w, r, "*Handler.listCustomers", err)
		return
	}

	if customers == nil {
		customers = []models.CustomerDTO{}
	}
	utils.WriteJSON(w, customers, http.StatusOK)
}

func (h *Handler) getCustomerByID(w http.ResponseWriter, r *http.Request) {
	id, err := customerIDFromPath(r)
	if err != nil {
		h.writeError(w, r, "*Handler.getCustomerByID", err)
		return
	}

	customer, err := h.services.CustomerService.GetCustomerByID(r.Context(), id)
	if err != nil {
		h.writeError(w, r, "*Handler.getCustomerByID", err)
		return
	}
	if customer == nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, customer, http.StatusOK)
}

func (h *Handler) getCustomerByEmail(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if !query.Has("email") {
		h.writeError(w, r, "*Handler.getCustomerByEmail", ErrMissingEmailParam)
		return
	}

	customer, err := h.services.CustomerService.GetCustomerByEmail(r.Context(), query.Get("email"))
	if err != nil {
		h.writeError(w, r, "*Handler.getCustomerByEmail", err)
		return
	}
	if customer == nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, customer, http.StatusOK)
}

// createCustomer checks the email before inserting. The two calls are not
// atomic; a duplicate inserted in between is reported by the store and
// mapped to 409 as well.
func (h *Handler) createCustomer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var input models.CustomerCreate
	if err := utils.DecodeJSON(r.Body, &input); err != nil {
		h.writeDecodeError(w, r, "*Handler.createCustomer", err)
		return
	}

	exists, err := h.services.CustomerService.ExistsByEmail(ctx, input.Email)
	if err != nil {
		h.writeError(w, r, "*Handler.createCustomer", err)
		return
	}
	if exists {
		logger.FromRequest(r).Debug().Str("email", input.Email).Msg("email already exists")
		w.WriteHeader(http.StatusConflict)
		return
	}

	created, err := h.services.CustomerService.CreateCustomer(ctx, &input)
	if err != nil {
		h.writeError(w, r, "*Handler.createCustomer", err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := customerIDFromPath(r)
	if err != nil {
		h.writeError(w, r, "*Handler.updateCustomer", err)
		return
	}

	var input models.CustomerUpdate
	if err = utils.DecodeJSON(r.Body, &input); err != nil {
		h.writeDecodeError(w, r, "*Handler.updateCustomer", err)
		return
	}

	updated, err := h.services.CustomerService.UpdateCustomer(r.Context(), id, &input)
	if err != nil {
		h.writeError(w, r, "*Handler.updateCustomer", err)
		return
	}
	if updated == nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

// deleteCustomer looks the customer up first so that a missing id can be
// reported as 404; the delete itself is unconditional.
func (h *Handler) deleteCustomer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := customerIDFromPath(r)
	if err != nil {
		h.writeError(w, r, "*Handler.deleteCustomer", err)
		return
	}

	existing, err := h.services.CustomerService.GetCustomerByID(ctx, id)
	if err != nil {
		h.writeError(w, r, "*Handler.deleteCustomer", err)
		return
	}
	if existing == nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	if err = h.services.CustomerService.DeleteCustomer(ctx, id); err != nil {
		h.writeError(w, r, "*Handler.deleteCustomer", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func customerIDFromPath(r *http.Request) (models.CustomerID, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, ErrInvalidCustomerID
	}
	return models.CustomerID(id), nil
}

// writeDecodeError answers 400 for any body that cannot be decoded into the
// input shape, including unknown status values.
func (h *Handler) writeDecodeError(w http.ResponseWriter, r *http.Request, fn string, err error) {
	logger.FromRequest(r).Debug().Err(err).Str("func", fn).Msg("invalid JSON was passed")

	msg := "invalid JSON was passed"
	if errors.Is(err, models.ErrInvalidCustomerStatus) {
		msg = models.ErrInvalidCustomerStatus.Error()
	}
	http.Error(w, msg, http.StatusBadRequest)
}

// writeError maps err to a status code. Not-found and conflict responses
// have an empty body; server errors hide the cause from the client.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, fn string, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	switch {
	case status == http.StatusNotFound || status == http.StatusConflict:
		log.Debug().Err(err).Str("func", fn).Int("status", status).Send()
		w.WriteHeader(status)
	case status >= http.StatusInternalServerError:
		log.Err(err).Str("func", fn).Int("status", status).Msg("request failed")
		http.Error(w, http.StatusText(status), status)
	default:
		log.Warn().Err(err).Str("func", fn).Int("status", status).Send()
		http.Error(w, err.Error(), status)
	}
}
