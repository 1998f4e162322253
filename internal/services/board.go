package service

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/aaravmahajanofficial/catalog-editor/internal/cache"
	"github.com/aaravmahajanofficial/catalog-editor/internal/errors"
	"github.com/aaravmahajanofficial/catalog-editor/internal/models"
	"github.com/aaravmahajanofficial/catalog-editor/pkg/catalog"
)

// BoardService owns the product list the editors report into.
type BoardService interface {
	List(ctx context.Context) ([]models.Product, error)
	Get(ctx context.Context, id int64) (*models.Product, error)
	LastID(ctx context.Context) (int64, error)
	Add(ctx context.Context, product models.Product)
	Replace(ctx context.Context, product models.Product)
	Delete(ctx context.Context, id int64) error
}

var boardKey = cache.Key(cache.BoardKeyPrefix, "products")

type boardService struct {
	catalog catalog.Client
	cache   cache.Cache
	logger  *slog.Logger

	mu       sync.RWMutex
	loaded   bool
	products []models.Product
	pending  []models.Product
}

func NewBoardService(catalogClient catalog.Client, c cache.Cache, logger *slog.Logger) BoardService {
	if logger == nil {
		logger = slog.Default()
	}

	return &boardService{catalog: catalogClient, cache: c, logger: logger}
}

// ensureLoaded fills the board from the cached snapshot, or from the catalog on a miss.
func (s *boardService) ensureLoaded(ctx context.Context) error {
	s.mu.RLock()
	loaded := s.loaded
	s.mu.RUnlock()

	if loaded {
		return nil
	}

	var products []models.Product

	found, err := s.cache.Get(ctx, boardKey, &products)
	if err != nil {
		s.logger.Warn("Board snapshot unavailable", slog.String("error", err.Error()))
	}

	if !found {
		products, err = s.catalog.ListProducts(ctx)
		if err != nil {
			return errors.ThirdPartyError("Failed to fetch products").WithError(err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// another caller may have loaded meanwhile
	if s.loaded {
		return nil
	}

	s.products = slices.Clone(products)
	s.loaded = true
	for _, p := range s.pending {
		s.putLocked(p)
	}
	if !found || len(s.pending) > 0 {
		s.persistLocked(ctx)
	}
	s.pending = nil

	return nil
}

func (s *boardService) persistLocked(ctx context.Context) {
	if err := s.cache.Set(ctx, boardKey, s.products, 0); err != nil {
		s.logger.Warn("Failed to save board snapshot", slog.String("error", err.Error()))
	}
}

func (s *boardService) List(ctx context.Context) ([]models.Product, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.products), nil
}

func (s *boardService) Get(ctx context.Context, id int64) (*models.Product, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexLocked(id)
	if i < 0 {
		return nil, errors.NotFoundError("Product not found")
	}

	product := s.products[i]
	return &product, nil
}

// LastID is the highest id on the board, the create hint for new products.
func (s *boardService) LastID(ctx context.Context) (int64, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return 0, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var last int64
	for _, p := range s.products {
		last = max(last, p.ID)
	}

	return last, nil
}

// Add receives products created by an editor.
func (s *boardService) Add(ctx context.Context, product models.Product) {
	s.upsert(ctx, product)
	s.logger.Info("Product added to board", slog.Int64("productId", product.ID))
}

// Replace receives products edited by an editor.
func (s *boardService) Replace(ctx context.Context, product models.Product) {
	s.upsert(ctx, product)
	s.logger.Info("Product replaced on board", slog.Int64("productId", product.ID))
}

func (s *boardService) upsert(ctx context.Context, product models.Product) {
	err := s.ensureLoaded(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil || !s.loaded {
		// applied on the next successful load
		s.logger.Warn("Board not loaded, queueing product", slog.Int64("productId", product.ID))
		s.pending = append(s.pending, product)
		return
	}

	s.putLocked(product)
	s.persistLocked(ctx)
}

func (s *boardService) putLocked(product models.Product) {
	if i := s.indexLocked(product.ID); i >= 0 {
		s.products[i] = product
	} else {
		s.products = append(s.products, product)
	}
}

func (s *boardService) Delete(ctx context.Context, id int64) error {
	if err := s.catalog.DeleteProduct(ctx, id); err != nil {
		return errors.OperationFailedError("Failed to delete product").WithError(err)
	}

	if err := s.ensureLoaded(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexLocked(id); i >= 0 {
		s.products = slices.Delete(s.products, i, i+1)
		s.persistLocked(ctx)
	}

	s.logger.Info("Product deleted", slog.Int64("productId", id))

	return nil
}

func (s *boardService) indexLocked(id int64) int {
	return slices.IndexFunc(s.products, func(p models.Product) bool { return p.ID == id })
}
