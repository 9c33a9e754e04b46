package http

import (
	"net/http"

	"github.com/DRSN-tech/billing-backend/internal/usecase"
	"github.com/DRSN-tech/billing-backend/pkg/logger"
	"github.com/google/uuid"
)

type CustomerHandler struct {
	customerUsecase usecase.CustomerUC
	logger          logger.Logger
}

func NewCustomerHandler(customerUsecase usecase.CustomerUC, logger logger.Logger) *CustomerHandler {
	return &CustomerHandler{customerUsecase: customerUsecase, logger: logger}
}

// listCustomers
//
//	@Summary		Список клиентов
//	@Tags			customers
//	@Produce		json
//	@Param			X-User-ID	header		string	true	"Идентификатор пользователя"
//	@Success		200			{array}		CustomerResponse
//	@Failure		401			{object}	ErrorResponse
//	@Router			/customers [get]
func (h *CustomerHandler) listCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.customerUsecase.List(r.Context())
	if err != nil {
		h.logger.Warnf("list customers: %s", err.Error())
		WriteError(w, err)
		return
	}

	resp := make([]CustomerResponse, 0, len(customers))
	for i := range customers {
		resp = append(resp, toCustomerResponse(&customers[i]))
	}

	WriteSuccess(w, http.StatusOK, resp)
}

// getCustomer
//
//	@Summary		Клиент по идентификатору
//	@Tags			customers
//	@Produce		json
//	@Param			X-User-ID	header		string	true	"Идентификатор пользователя"
//	@Param			id			path		string	true	"ID клиента"
//	@Success		200			{object}	CustomerResponse
//	@Failure		404			{object}	ErrorResponse
//	@Router			/customers/{id} [get]
func (h *CustomerHandler) getCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	customer, err := h.customerUsecase.Get(r.Context(), id)
	if err != nil {
		h.logger.Warnf("get customer %s: %s", id, err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCustomerResponse(customer))
}

// createCustomer
//
//	@Summary		Создание клиента
//	@Description	Открывает пустую форму клиента, заполняет её и сохраняет. Обязательны name и корректный email.
//	@Tags			customers
//	@Accept			json
//	@Produce		json
//	@Param			X-User-ID	header		string			true	"Идентификатор пользователя"
//	@Param			customer	body		CustomerRequest	true	"Поля формы"
//	@Success		201			{object}	CustomerResponse
//	@Failure		400			{object}	ErrorResponse	"Ошибка валидации"
//	@Router			/customers [post]
func (h *CustomerHandler) createCustomer(w http.ResponseWriter, r *http.Request) {
	var req CustomerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.logger.Warnf("%d %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	h.submitForm(w, r, nil, &req, http.StatusCreated)
}

// updateCustomer
//
//	@Summary		Редактирование клиента
//	@Description	Открывает форму с текущими значениями клиента, применяет присланные поля и сохраняет.
//	@Tags			customers
//	@Accept			json
//	@Produce		json
//	@Param			X-User-ID	header		string			true	"Идентификатор пользователя"
//	@Param			id			path		string			true	"ID клиента"
//	@Param			customer	body		CustomerRequest	true	"Изменённые поля формы"
//	@Success		200			{object}	CustomerResponse
//	@Failure		400			{object}	ErrorResponse	"Ошибка валидации"
//	@Failure		404			{object}	ErrorResponse
//	@Router			/customers/{id} [put]
func (h *CustomerHandler) updateCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	var req CustomerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.logger.Warnf("%d %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	h.submitForm(w, r, &id, &req, http.StatusOK)
}

// deleteCustomer
//
//	@Summary		Удаление клиента
//	@Tags			customers
//	@Param			X-User-ID	header	string	true	"Идентификатор пользователя"
//	@Param			id			path	string	true	"ID клиента"
//	@Success		204
//	@Failure		404	{object}	ErrorResponse
//	@Router			/customers/{id} [delete]
func (h *CustomerHandler) deleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.customerUsecase.Delete(r.Context(), id); err != nil {
		h.logger.Warnf("delete customer %s: %s", id, err.Error())
		WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *CustomerHandler) submitForm(w http.ResponseWriter, r *http.Request, id *uuid.UUID, req *CustomerRequest, status int) {
	form, err := h.customerUsecase.OpenForm(r.Context(), id)
	if err != nil {
		h.logger.Warnf("open customer form: %s", err.Error())
		WriteError(w, err)
		return
	}

	form.Apply(req.toFormInput())

	customer, err := form.Submit(r.Context())
	if err != nil {
		h.logger.Warnf("submit customer form: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, status, toCustomerResponse(customer))
}
