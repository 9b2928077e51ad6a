package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/SergeyBogomolovv/orinoco-shop/internal/entities"
	"github.com/SergeyBogomolovv/orinoco-shop/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type ShopperValidator interface {
	ValidateShopper(ctx context.Context, shopperID int64) (int64, error)
}

type Catalog interface {
	Categories(ctx context.Context) ([]entities.Category, error)
	CategoryProducts(ctx context.Context, categoryID int64) ([]entities.Product, error)
	ProductSellers(ctx context.Context, productID int64) ([]entities.Offer, error)
}

type BasketManager interface {
	TodaysBasket(ctx context.Context, shopperID int64) (entities.BasketView, error)
	AddProduct(ctx context.Context, shopperID, productID, sellerID int64, quantity int) (int64, error)
	ChangeQuantity(ctx context.Context, shopperID, productID int64, quantity int) error
	RemoveItem(ctx context.Context, shopperID, productID int64) (bool, error)
	EmptyBasket(ctx context.Context, shopperID int64) error
}

type Checkout interface {
	CheckoutToday(ctx context.Context, shopperID int64) (int64, error)
}

type Orders interface {
	GetOrderByID(ctx context.Context, orderID int64) (entities.Order, error)
	OrderHistory(ctx context.Context, shopperID int64) ([]entities.Order, error)
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate

	shoppers ShopperValidator
	catalog  Catalog
	basket   BasketManager
	checkout Checkout
	orders   Orders
}

func NewHTTPHandler(
	logger *slog.Logger,
	shoppers ShopperValidator,
	catalog Catalog,
	basket BasketManager,
	checkout Checkout,
	orders Orders,
) *HTTPHandler {
	validate := validator.New()
	validate.RegisterTagNameFunc(jsonFieldName)

	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: validate,
		shoppers: shoppers,
		catalog:  catalog,
		basket:   basket,
		checkout: checkout,
		orders:   orders,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Get("/categories", h.ListCategories)
	r.Get("/categories/{category_id}/products", h.ListCategoryProducts)
	r.Get("/products/{product_id}/sellers", h.ListProductSellers)
	r.Get("/orders/{order_id}", h.GetOrderByID)

	r.Route("/shoppers/{shopper_id}", func(r chi.Router) {
		r.Use(h.shopperCtx)

		r.Get("/", h.GetShopper)
		r.Get("/orders", h.OrderHistory)

		r.Get("/basket", h.GetBasket)
		r.Delete("/basket", h.EmptyBasket)
		r.Post("/basket/items", h.AddItem)
		r.Patch("/basket/items/{product_id}", h.ChangeQuantity)
		r.Delete("/basket/items/{product_id}", h.RemoveItem)

		r.Post("/checkout", h.Checkout)
	})
}

type shopperKey struct{}

// shopperCtx проверяет, что покупатель существует, до выполнения любых операций с корзиной.
func (h *HTTPHandler) shopperCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := utils.URLParamID(r, "shopper_id")
		if !ok {
			utils.WriteError(w, "invalid shopper id", http.StatusBadRequest)
			return
		}

		shopperID, err := h.shoppers.ValidateShopper(r.Context(), id)
		if err != nil {
			h.writeServiceError(w, r, err, "failed to validate shopper")
			return
		}

		ctx := context.WithValue(r.Context(), shopperKey{}, shopperID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func shopperFromContext(ctx context.Context) int64 {
	id, _ := ctx.Value(shopperKey{}).(int64)
	return id
}

// writeServiceError переводит категорию ошибки в HTTP статус.
func (h *HTTPHandler) writeServiceError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	switch {
	case errors.Is(err, entities.ErrNotFound):
		utils.WriteError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, entities.ErrInvalidInput):
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, entities.ErrPreconditionViolation):
		utils.WriteError(w, err.Error(), http.StatusConflict)
	default:
		h.logger.ErrorContext(r.Context(), msg, slog.Any("error", err), slog.String("path", r.URL.Path))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}
