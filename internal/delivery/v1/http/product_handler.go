package http

import (
	"net/http"
	"strconv"

	"github.com/DRSN-tech/billing-backend/internal/usecase"
	"github.com/DRSN-tech/billing-backend/pkg/logger"
)

type ProductHandler struct {
	productUsecase usecase.ProductUC
	logger         logger.Logger
}

func NewProductHandler(productUsecase usecase.ProductUC, logger logger.Logger) *ProductHandler {
	return &ProductHandler{productUsecase: productUsecase, logger: logger}
}

// listProducts
//
//	@Summary		Каталог продуктов
//	@Description	Возвращает продукты арендатора. Параметр category фильтрует по точному совпадению.
//	@Tags			products
//	@Produce		json
//	@Param			X-User-ID	header		string	true	"Идентификатор пользователя"
//	@Param			category	query		string	false	"Категория"
//	@Success		200			{array}		ProductResponse
//	@Failure		401			{object}	ErrorResponse
//	@Router			/products [get]
func (p *ProductHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := p.productUsecase.List(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		p.logger.Warnf("list products: %s", err.Error())
		WriteError(w, err)
		return
	}

	resp := make([]ProductResponse, 0, len(products))
	for i := range products {
		resp = append(resp, toProductResponse(&products[i]))
	}

	WriteSuccess(w, http.StatusOK, resp)
}

// createProduct
//
//	@Summary		Создание продукта
//	@Description	Цена обязательна и больше 0, ставка НДС от 0 до 100 (по умолчанию 8.1). Изображение передаётся как data URI до 5MB.
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			X-User-ID	header		string			true	"Идентификатор пользователя"
//	@Param			product		body		ProductRequest	true	"Продукт"
//	@Success		201			{object}	ProductResponse
//	@Failure		400			{object}	ErrorResponse	"Ошибка валидации"
//	@Failure		413			{object}	ErrorResponse	"Изображение больше 5MB"
//	@Failure		503			{object}	ErrorResponse	"Хранилище недоступно"
//	@Router			/products [post]
func (p *ProductHandler) createProduct(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := decodeJSON(w, r, &req); err != nil {
		p.logger.Warnf("%d %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	saveReq, err := req.toSaveReq(nil)
	if err != nil {
		p.logger.Warnf("%d %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	p.save(w, r, saveReq, http.StatusCreated)
}

// updateProduct
//
//	@Summary		Редактирование продукта
//	@Description	Значения формы заменяют сохранённые. Если taxRate не передан, ставка НДС продукта не меняется.
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			X-User-ID	header		string			true	"Идентификатор пользователя"
//	@Param			id			path		string			true	"ID продукта"
//	@Param			product		body		ProductRequest	true	"Продукт"
//	@Success		200			{object}	ProductResponse
//	@Failure		400			{object}	ErrorResponse	"Ошибка валидации"
//	@Failure		404			{object}	ErrorResponse
//	@Router			/products/{id} [put]
func (p *ProductHandler) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	var req ProductRequest
	if err := decodeJSON(w, r, &req); err != nil {
		p.logger.Warnf("%d %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	saveReq, err := req.toSaveReq(&id)
	if err != nil {
		p.logger.Warnf("%d %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	p.save(w, r, saveReq, http.StatusOK)
}

// deleteProduct
//
//	@Summary		Удаление продукта
//	@Description	Удаление выполняется только с подтверждением confirm=true.
//	@Tags			products
//	@Param			X-User-ID	header	string	true	"Идентификатор пользователя"
//	@Param			id			path	string	true	"ID продукта"
//	@Param			confirm		query	bool	true	"Подтверждение удаления"
//	@Success		204
//	@Failure		404	{object}	ErrorResponse
//	@Failure		428	{object}	ErrorResponse	"Удаление не подтверждено"
//	@Router			/products/{id} [delete]
func (p *ProductHandler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	confirmed, _ := strconv.ParseBool(r.URL.Query().Get("confirm"))

	if err := p.productUsecase.Delete(r.Context(), id, confirmed); err != nil {
		p.logger.Warnf("delete product %s: %s", id, err.Error())
		WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (p *ProductHandler) save(w http.ResponseWriter, r *http.Request, req *usecase.SaveProductReq, status int) {
	product, err := p.productUsecase.Save(r.Context(), req)
	if err != nil {
		p.logger.Warnf("save product: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, status, toProductResponse(product))
}

