package handler

import (
	"net/http"

	"github.com/SergeyBogomolovv/orinoco-shop/pkg/utils"
)

// ListCategories возвращает список категорий.
// @Summary      Категории товаров
// @Tags         catalog
// @Success      200  {array}   Category
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /categories [get]
func (h *HTTPHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalog.Categories(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err, "failed to list categories")
		return
	}
	utils.WriteJSON(w, CategoriesEntityToJSON(categories), http.StatusOK)
}

// ListCategoryProducts возвращает товары категории.
// @Summary      Товары категории
// @Tags         catalog
// @Param        category_id  path  int  true  "Идентификатор категории"
// @Success      200  {array}   Product
// @Failure      400  {object}  utils.ErrorResponse
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /categories/{category_id}/products [get]
func (h *HTTPHandler) ListCategoryProducts(w http.ResponseWriter, r *http.Request) {
	categoryID, ok := utils.URLParamID(r, "category_id")
	if !ok {
		utils.WriteError(w, "invalid category id", http.StatusBadRequest)
		return
	}

	products, err := h.catalog.CategoryProducts(r.Context(), categoryID)
	if err != nil {
		h.writeServiceError(w, r, err, "failed to list products")
		return
	}
	utils.WriteJSON(w, ProductsEntityToJSON(products), http.StatusOK)
}

// ListProductSellers возвращает продавцов товара и их цены.
// @Summary      Продавцы товара
// @Tags         catalog
// @Param        product_id  path  int  true  "Идентификатор товара"
// @Success      200  {array}   Seller
// @Failure      400  {object}  utils.ErrorResponse
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /products/{product_id}/sellers [get]
func (h *HTTPHandler) ListProductSellers(w http.ResponseWriter, r *http.Request) {
	productID, ok := utils.URLParamID(r, "product_id")
	if !ok {
		utils.WriteError(w, "invalid product id", http.StatusBadRequest)
		return
	}

	offers, err := h.catalog.ProductSellers(r.Context(), productID)
	if err != nil {
		h.writeServiceError(w, r, err, "failed to list sellers")
		return
	}
	utils.WriteJSON(w, OffersEntityToJSON(offers), http.StatusOK)
}

// GetShopper проверяет, что покупатель существует.
// @Summary      Проверить покупателя
// @Tags         shoppers
// @Param        shopper_id  path  int  true  "Идентификатор покупателя"
// @Success      200  {object}  ShopperResponse
// @Failure      404  {object}  utils.ErrorResponse "Покупатель не найден"
// @Router       /shoppers/{shopper_id} [get]
func (h *HTTPHandler) GetShopper(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, ShopperResponse{ShopperID: shopperFromContext(r.Context())}, http.StatusOK)
}
