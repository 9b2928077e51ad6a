package handler

import (
	"net/http"

	"github.com/SergeyBogomolovv/orinoco-shop/pkg/utils"
)

// GetBasket возвращает сегодняшнюю корзину покупателя.
// @Summary      Сегодняшняя корзина
// @Description  Строки корзины с номерами, товарами, продавцами и итоговой суммой. Если корзины нет, возвращается пустая.
// @Tags         basket
// @Produce      json
// @Param        shopper_id  path  int  true  "Идентификатор покупателя"
// @Success      200  {object}  Basket
// @Failure      404  {object}  utils.ErrorResponse "Покупатель не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /shoppers/{shopper_id}/basket [get]
func (h *HTTPHandler) GetBasket(w http.ResponseWriter, r *http.Request) {
	view, err := h.basket.TodaysBasket(r.Context(), shopperFromContext(r.Context()))
	if err != nil {
		h.writeServiceError(w, r, err, "failed to get basket")
		return
	}
	utils.WriteJSON(w, BasketEntityToJSON(view), http.StatusOK)
}

// AddItem кладет товар в корзину.
// @Summary      Добавить товар в корзину
// @Description  Цена фиксируется на момент добавления. Корзина на сегодня создается при первом добавлении.
// @Tags         basket
// @Accept       json
// @Produce      json
// @Param        shopper_id  path  int             true  "Идентификатор покупателя"
// @Param        item        body  AddItemRequest  true  "Товар"
// @Success      201  {object}  AddItemResponse
// @Failure      400  {object}  utils.ValidationErrorResponse "Невалидный запрос"
// @Failure      404  {object}  utils.ErrorResponse "Продавец не продает этот товар"
// @Failure      409  {object}  utils.ErrorResponse "Товар уже в корзине или корзина уже оформлена"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /shoppers/{shopper_id}/basket/items [post]
func (h *HTTPHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	basketID, err := h.basket.AddProduct(r.Context(), shopperFromContext(r.Context()), req.ProductID, req.SellerID, req.Quantity)
	basketOperations.WithLabelValues("add", resultLabel(err)).Inc()
	if err != nil {
		h.writeServiceError(w, r, err, "failed to add item")
		return
	}
	utils.WriteJSON(w, AddItemResponse{BasketID: basketID}, http.StatusCreated)
}

// ChangeQuantity меняет количество товара в корзине.
// @Summary      Изменить количество
// @Tags         basket
// @Accept       json
// @Param        shopper_id  path  int                    true  "Идентификатор покупателя"
// @Param        product_id  path  int                    true  "Идентификатор товара"
// @Param        quantity    body  ChangeQuantityRequest  true  "Новое количество"
// @Success      204
// @Failure      400  {object}  utils.ValidationErrorResponse "Невалидный запрос"
// @Failure      404  {object}  utils.ErrorResponse "Товара нет в корзине"
// @Failure      409  {object}  utils.ErrorResponse "Корзина уже оформлена"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /shoppers/{shopper_id}/basket/items/{product_id} [patch]
func (h *HTTPHandler) ChangeQuantity(w http.ResponseWriter, r *http.Request) {
	productID, ok := utils.URLParamID(r, "product_id")
	if !ok {
		utils.WriteError(w, "invalid product id", http.StatusBadRequest)
		return
	}

	var req ChangeQuantityRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	err := h.basket.ChangeQuantity(r.Context(), shopperFromContext(r.Context()), productID, req.Quantity)
	basketOperations.WithLabelValues("change_quantity", resultLabel(err)).Inc()
	if err != nil {
		h.writeServiceError(w, r, err, "failed to change quantity")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RemoveItem удаляет товар из корзины.
// @Summary      Удалить товар из корзины
// @Description  Вместе с последним товаром удаляется и сама корзина.
// @Tags         basket
// @Produce      json
// @Param        shopper_id  path  int  true  "Идентификатор покупателя"
// @Param        product_id  path  int  true  "Идентификатор товара"
// @Success      200  {object}  RemoveItemResponse
// @Failure      404  {object}  utils.ErrorResponse "Товара нет в корзине"
// @Failure      409  {object}  utils.ErrorResponse "Корзина уже оформлена"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /shoppers/{shopper_id}/basket/items/{product_id} [delete]
func (h *HTTPHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID, ok := utils.URLParamID(r, "product_id")
	if !ok {
		utils.WriteError(w, "invalid product id", http.StatusBadRequest)
		return
	}

	closed, err := h.basket.RemoveItem(r.Context(), shopperFromContext(r.Context()), productID)
	basketOperations.WithLabelValues("remove", resultLabel(err)).Inc()
	if err != nil {
		h.writeServiceError(w, r, err, "failed to remove item")
		return
	}
	utils.WriteJSON(w, RemoveItemResponse{BasketClosed: closed}, http.StatusOK)
}

// EmptyBasket удаляет все товары и саму корзину.
// @Summary      Очистить корзину
// @Tags         basket
// @Param        shopper_id  path  int  true  "Идентификатор покупателя"
// @Success      204
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /shoppers/{shopper_id}/basket [delete]
func (h *HTTPHandler) EmptyBasket(w http.ResponseWriter, r *http.Request) {
	err := h.basket.EmptyBasket(r.Context(), shopperFromContext(r.Context()))
	basketOperations.WithLabelValues("empty", resultLabel(err)).Inc()
	if err != nil {
		h.writeServiceError(w, r, err, "failed to empty basket")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
