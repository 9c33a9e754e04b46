package http

import (
	"mime"
	"net/http"
	"strconv"

	"github.com/DRSN-tech/billing-backend/internal/usecase"
	"github.com/DRSN-tech/billing-backend/pkg/logger"
)

type InvoiceHandler struct {
	invoiceUsecase usecase.InvoiceUC
	logger         logger.Logger
}

func NewInvoiceHandler(invoiceUsecase usecase.InvoiceUC, logger logger.Logger) *InvoiceHandler {
	return &InvoiceHandler{invoiceUsecase: invoiceUsecase, logger: logger}
}

// createInvoice
//
//	@Summary		Создание счёта
//	@Description	Сохраняет счёт и его позиции. Суммы не пересчитываются. Пропущенная ставка НДС позиции равна 0, статус по умолчанию draft.
//	@Tags			invoices
//	@Accept			json
//	@Produce		json
//	@Param			X-User-ID	header		string			true	"Идентификатор пользователя"
//	@Param			invoice		body		InvoiceRequest	true	"Счёт"
//	@Success		201			{object}	InvoiceResponse
//	@Failure		400			{object}	ErrorResponse	"Ошибка валидации"
//	@Failure		500			{object}	ErrorResponse
//	@Router			/invoices [post]
func (i *InvoiceHandler) createInvoice(w http.ResponseWriter, r *http.Request) {
	var body InvoiceRequest
	if err := decodeJSON(w, r, &body); err != nil {
		i.logger.Warnf("%d %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	req, err := body.toCreateReq()
	if err != nil {
		i.logger.Warnf("%d %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	invoice, err := i.invoiceUsecase.Create(r.Context(), req)
	if err != nil {
		i.logger.Warnf("create invoice: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toInvoiceResponse(invoice))
}

// listInvoices
//
//	@Summary		Список счетов
//	@Tags			invoices
//	@Produce		json
//	@Param			X-User-ID	header		string	true	"Идентификатор пользователя"
//	@Success		200			{array}		InvoiceResponse
//	@Router			/invoices [get]
func (i *InvoiceHandler) listInvoices(w http.ResponseWriter, r *http.Request) {
	invoices, err := i.invoiceUsecase.List(r.Context())
	if err != nil {
		i.logger.Warnf("list invoices: %s", err.Error())
		WriteError(w, err)
		return
	}

	resp := make([]InvoiceResponse, 0, len(invoices))
	for k := range invoices {
		resp = append(resp, toInvoiceResponse(&invoices[k]))
	}

	WriteSuccess(w, http.StatusOK, resp)
}

// getInvoice
//
//	@Summary		Счёт с позициями
//	@Tags			invoices
//	@Produce		json
//	@Param			X-User-ID	header		string	true	"Идентификатор пользователя"
//	@Param			id			path		string	true	"ID счёта"
//	@Success		200			{object}	InvoiceResponse
//	@Failure		404			{object}	ErrorResponse
//	@Router			/invoices/{id} [get]
func (i *InvoiceHandler) getInvoice(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	invoice, err := i.invoiceUsecase.Get(r.Context(), id)
	if err != nil {
		i.logger.Warnf("get invoice %s: %s", id, err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toInvoiceResponse(invoice))
}

// invoicePDF
//
//	@Summary		PDF счёта
//	@Description	Отрисовывает счёт в PDF и кладёт копию в архив.
//	@Tags			invoices
//	@Produce		application/pdf
//	@Param			X-User-ID	header		string	true	"Идентификатор пользователя"
//	@Param			id			path		string	true	"ID счёта"
//	@Success		200			{file}		binary
//	@Failure		404			{object}	ErrorResponse
//	@Router			/invoices/{id}/pdf [get]
func (i *InvoiceHandler) invoicePDF(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	doc, err := i.invoiceUsecase.RenderDocument(r.Context(), id)
	if err != nil {
		i.logger.Warnf("render invoice %s: %s", id, err.Error())
		WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": doc.FileName}))
	w.Header().Set("Content-Length", strconv.Itoa(len(doc.Data)))
	if doc.ArchiveKey != "" {
		w.Header().Set("X-Archive-Key", doc.ArchiveKey)
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc.Data)
}
