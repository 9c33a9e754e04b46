package http

import (
	"net/http"
	"net/url"

	"github.com/DRSN-tech/billing-backend/internal/domain"
	"github.com/DRSN-tech/billing-backend/internal/usecase"
	"github.com/DRSN-tech/billing-backend/pkg/e"
	"github.com/DRSN-tech/billing-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type CategoryHandler struct {
	categoryUsecase usecase.CategoryUC
	logger          logger.Logger
}

func NewCategoryHandler(categoryUsecase usecase.CategoryUC, logger logger.Logger) *CategoryHandler {
	return &CategoryHandler{categoryUsecase: categoryUsecase, logger: logger}
}

// listCategories
//
//	@Summary		Категории продуктов
//	@Description	Пустой список при первом обращении заполняется категориями по умолчанию.
//	@Tags			categories
//	@Produce		json
//	@Param			X-User-ID	header		string	true	"Идентификатор пользователя"
//	@Success		200			{object}	CategoriesResponse
//	@Router			/categories [get]
func (c *CategoryHandler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := c.categoryUsecase.List(r.Context())
	if err != nil {
		c.logger.Warnf("list categories: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCategoriesResponse(categories))
}

// addCategory
//
//	@Summary		Добавление категории
//	@Tags			categories
//	@Accept			json
//	@Produce		json
//	@Param			X-User-ID	header		string			true	"Идентификатор пользователя"
//	@Param			category	body		CategoryRequest	true	"Название"
//	@Success		201			{object}	CategoriesResponse
//	@Failure		400			{object}	ErrorResponse	"Пустое название"
//	@Failure		409			{object}	ErrorResponse	"Категория уже существует"
//	@Router			/categories [post]
func (c *CategoryHandler) addCategory(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		c.logger.Warnf("%d %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	categories, err := c.categoryUsecase.Add(r.Context(), req.Name)
	if err != nil {
		c.logger.Warnf("add category: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toCategoriesResponse(categories))
}

// deleteCategory
//
//	@Summary		Удаление категории
//	@Description	Последнюю категорию удалить нельзя.
//	@Tags			categories
//	@Produce		json
//	@Param			X-User-ID	header		string	true	"Идентификатор пользователя"
//	@Param			name		path		string	true	"Название"
//	@Success		200			{object}	CategoriesResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		409			{object}	ErrorResponse	"Последняя категория"
//	@Router			/categories/{name} [delete]
func (c *CategoryHandler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	name, err := url.PathUnescape(chi.URLParam(r, "name"))
	if err != nil {
		WriteError(w, e.Generic(e.ErrStatusBadRequest, err))
		return
	}

	categories, err := c.categoryUsecase.Delete(r.Context(), name)
	if err != nil {
		c.logger.Warnf("delete category: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCategoriesResponse(categories))
}

func toCategoriesResponse(c domain.Categories) CategoriesResponse {
	return CategoriesResponse{Categories: append([]string{}, c...)}
}
