package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/catalog-editor/internal/api/middleware"
	"github.com/aaravmahajanofficial/catalog-editor/internal/errors"
	service "github.com/aaravmahajanofficial/catalog-editor/internal/services"
	"github.com/aaravmahajanofficial/catalog-editor/internal/utils"
	"github.com/aaravmahajanofficial/catalog-editor/internal/utils/response"
)

type ProductHandler struct {
	boardService service.BoardService
}

func NewProductHandler(boardService service.BoardService) *ProductHandler {
	return &ProductHandler{boardService: boardService}
}

// GET /api/v1/products
func (h *ProductHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		ctx, cancel := utils.WithRequestTimeout(r.Context())
		defer cancel()

		products, err := h.boardService.List(ctx)
		if err != nil {
			logger.Error("Failed to fetch products", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Products listed", slog.Int("count", len(products)))
		response.Success(w, http.StatusOK, products)
	}
}

// DELETE /api/v1/products/{id}
func (h *ProductHandler) DeleteProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid product id", slog.String("error", err.Error()))
			response.Error(w, errors.BadRequestError("Invalid product id"))
			return
		}

		ctx, cancel := utils.WithRequestTimeout(r.Context())
		defer cancel()

		if err := h.boardService.Delete(ctx, id); err != nil {
			logger.Error("Failed to delete product", slog.Int64("productId", id), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Product deleted", slog.Int64("productId", id))
		response.Success(w, http.StatusOK, map[string]int64{"id": id})
	}
}
