package handler

import (
	"net/http"
	"time"

	"github.com/SergeyBogomolovv/orinoco-shop/pkg/utils"
)

// Checkout оформляет сегодняшнюю корзину.
// @Summary      Оформить заказ
// @Description  Создает заказ из сегодняшней корзины и удаляет корзину. Повторный вызов после сбоя не создает второй заказ.
// @Tags         orders
// @Produce      json
// @Param        shopper_id  path  int  true  "Идентификатор покупателя"
// @Success      201  {object}  CheckoutResponse
// @Failure      404  {object}  utils.ErrorResponse "Покупатель не найден"
// @Failure      409  {object}  utils.ErrorResponse "Корзина пуста"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /shoppers/{shopper_id}/checkout [post]
func (h *HTTPHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	orderID, err := h.checkout.CheckoutToday(r.Context(), shopperFromContext(r.Context()))
	checkoutDuration.Observe(time.Since(start).Seconds())
	checkoutsTotal.WithLabelValues(resultLabel(err)).Inc()
	if err != nil {
		h.writeServiceError(w, r, err, "failed to checkout")
		return
	}
	utils.WriteJSON(w, CheckoutResponse{OrderID: orderID}, http.StatusCreated)
}

// OrderHistory возвращает заказы покупателя.
// @Summary      История заказов
// @Tags         orders
// @Produce      json
// @Param        shopper_id  path  int  true  "Идентификатор покупателя"
// @Success      200  {array}   Order
// @Failure      404  {object}  utils.ErrorResponse "Покупатель не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /shoppers/{shopper_id}/orders [get]
func (h *HTTPHandler) OrderHistory(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.OrderHistory(r.Context(), shopperFromContext(r.Context()))
	if err != nil {
		h.writeServiceError(w, r, err, "failed to get order history")
		return
	}
	utils.WriteJSON(w, OrdersEntityToJSON(orders), http.StatusOK)
}

// GetOrderByID возвращает заказ по его ID.
// @Summary      Получить заказ
// @Tags         orders
// @Produce      json
// @Param        order_id  path  int  true  "Идентификатор заказа"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ErrorResponse "Невалидный ID"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders/{order_id} [get]
func (h *HTTPHandler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	orderID, ok := utils.URLParamID(r, "order_id")
	if !ok {
		utils.WriteError(w, "invalid order id", http.StatusBadRequest)
		return
	}

	order, err := h.orders.GetOrderByID(r.Context(), orderID)
	if err != nil {
		h.writeServiceError(w, r, err, "failed to get order")
		return
	}
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}
