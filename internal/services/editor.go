package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/aaravmahajanofficial/catalog-editor/internal/editor"
	"github.com/aaravmahajanofficial/catalog-editor/internal/errors"
	"github.com/aaravmahajanofficial/catalog-editor/internal/metrics"
	"github.com/aaravmahajanofficial/catalog-editor/internal/models"
	"github.com/google/uuid"
)

const (
	defaultReadyTimeout = 5 * time.Second
	boardUpdateTimeout  = 5 * time.Second
	defaultMaxSessions  = 1000
)

type EditorService interface {
	OpenSession(ctx context.Context, req *models.OpenSessionRequest) (*models.EditorSession, error)
	ReopenSession(ctx context.Context, id uuid.UUID, req *models.OpenSessionRequest) (*models.EditorSession, error)
	GetSession(ctx context.Context, id uuid.UUID) (*models.EditorSession, error)
	ChangeValues(ctx context.Context, id uuid.UUID, values models.FormValues) (*models.EditorSession, error)
	Submit(ctx context.Context, id uuid.UUID, values models.FormValues) (*models.Product, error)
	CloseSession(ctx context.Context, id uuid.UUID) (*models.EditorSession, error)
	DiscardSession(ctx context.Context, id uuid.UUID) error
	Shutdown()
}

type EditorOption func(*editorService)

// WithReadyTimeout bounds how long open and submit wait for reference data.
func WithReadyTimeout(d time.Duration) EditorOption {
	return func(s *editorService) {
		s.readyTimeout = d
	}
}

func WithMaxSessions(n int) EditorOption {
	return func(s *editorService) {
		s.maxSessions = n
	}
}

type editorService struct {
	catalog      editor.Catalog
	board        BoardService
	logger       *slog.Logger
	readyTimeout time.Duration
	maxSessions  int

	mu       sync.RWMutex
	sessions map[uuid.UUID]*editor.Dialog
}

func NewEditorService(catalog editor.Catalog, board BoardService, logger *slog.Logger, opts ...EditorOption) EditorService {
	if logger == nil {
		logger = slog.Default()
	}

	s := &editorService{
		catalog:      catalog,
		board:        board,
		logger:       logger,
		readyTimeout: defaultReadyTimeout,
		maxSessions:  defaultMaxSessions,
		sessions:     make(map[uuid.UUID]*editor.Dialog),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *editorService) OpenSession(ctx context.Context, req *models.OpenSessionRequest) (*models.EditorSession, error) {
	activation, err := s.activation(ctx, req)
	if err != nil {
		return nil, err
	}

	id := uuid.New()
	logger := s.logger.With(slog.String("sessionId", id.String()))
	dialog := editor.New(s.catalog, s.callbacks(logger), editor.WithLogger(logger))

	s.mu.Lock()
	if len(s.sessions) >= s.maxSessions {
		s.mu.Unlock()
		return nil, errors.ResourceExhaustedError("Too many open editor sessions")
	}
	s.sessions[id] = dialog
	count := len(s.sessions)
	s.mu.Unlock()

	metrics.SetEditorSessions(count)

	dialog.Open(ctx, activation)
	s.waitReady(ctx, dialog)

	return snapshot(id, dialog), nil
}

// ReopenSession activates an existing session again. A closed editor reloads
// its reference data; an open one only re-resolves when the inputs changed.
func (s *editorService) ReopenSession(ctx context.Context, id uuid.UUID, req *models.OpenSessionRequest) (*models.EditorSession, error) {
	dialog, err := s.session(id)
	if err != nil {
		return nil, err
	}

	activation, err := s.activation(ctx, req)
	if err != nil {
		return nil, err
	}

	dialog.Open(ctx, activation)
	s.waitReady(ctx, dialog)

	return snapshot(id, dialog), nil
}

func (s *editorService) GetSession(_ context.Context, id uuid.UUID) (*models.EditorSession, error) {
	dialog, err := s.session(id)
	if err != nil {
		return nil, err
	}

	return snapshot(id, dialog), nil
}

func (s *editorService) ChangeValues(_ context.Context, id uuid.UUID, values models.FormValues) (*models.EditorSession, error) {
	dialog, err := s.session(id)
	if err != nil {
		return nil, err
	}

	if _, err := dialog.Change(values); err != nil {
		return nil, err
	}

	return snapshot(id, dialog), nil
}

func (s *editorService) Submit(ctx context.Context, id uuid.UUID, values models.FormValues) (*models.Product, error) {
	dialog, err := s.session(id)
	if err != nil {
		return nil, err
	}

	// validation needs the reference lists
	s.waitReady(ctx, dialog)

	return dialog.Submit(ctx, values)
}

func (s *editorService) CloseSession(_ context.Context, id uuid.UUID) (*models.EditorSession, error) {
	dialog, err := s.session(id)
	if err != nil {
		return nil, err
	}

	dialog.Close()

	return snapshot(id, dialog), nil
}

func (s *editorService) DiscardSession(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	dialog, ok := s.sessions[id]
	delete(s.sessions, id)
	count := len(s.sessions)
	s.mu.Unlock()

	if !ok {
		return errors.NotFoundError("Editor session not found")
	}

	dialog.Close()
	metrics.SetEditorSessions(count)

	return nil
}

// Shutdown closes every session, cancelling outstanding reference fetches.
func (s *editorService) Shutdown() {
	s.mu.Lock()
	sessions := s.sessions
	s.sessions = make(map[uuid.UUID]*editor.Dialog)
	s.mu.Unlock()

	for _, dialog := range sessions {
		dialog.Close()
	}

	metrics.SetEditorSessions(0)
}

func (s *editorService) session(id uuid.UUID) (*editor.Dialog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	dialog, ok := s.sessions[id]
	if !ok {
		return nil, errors.NotFoundError("Editor session not found")
	}

	return dialog, nil
}

// activation fills what the caller left out from the board: the product for
// an edit opened by id, and the last known id for a create.
func (s *editorService) activation(ctx context.Context, req *models.OpenSessionRequest) (models.Activation, error) {
	a := models.Activation{ID: req.ID, Product: req.Product}

	if a.ID != nil && a.Product == nil {
		product, err := s.board.Get(ctx, *a.ID)
		if err != nil {
			return a, err
		}
		a.Product = product
	}

	if req.LastKnownID != nil {
		a.LastKnownID = *req.LastKnownID
		return a, nil
	}

	if a.ID == nil {
		last, err := s.board.LastID(ctx)
		if err != nil {
			return a, err
		}
		a.LastKnownID = last
	}

	return a, nil
}

func (s *editorService) callbacks(logger *slog.Logger) editor.Callbacks {
	return editor.Callbacks{
		OnClose: func() {
			logger.Debug("Editor session closed")
		},
		OnProductAdded: func(p models.Product) {
			ctx, cancel := context.WithTimeout(context.Background(), boardUpdateTimeout)
			defer cancel()

			s.board.Add(ctx, p)
		},
		OnProductEdited: func(p models.Product) {
			ctx, cancel := context.WithTimeout(context.Background(), boardUpdateTimeout)
			defer cancel()

			s.board.Replace(ctx, p)
		},
	}
}

func (s *editorService) waitReady(ctx context.Context, dialog *editor.Dialog) {
	ctx, cancel := context.WithTimeout(ctx, s.readyTimeout)
	defer cancel()

	if err := dialog.WaitReady(ctx); err != nil {
		s.logger.Warn("Reference data not ready", slog.String("error", err.Error()))
	}
}

func snapshot(id uuid.UUID, dialog *editor.Dialog) *models.EditorSession {
	return &models.EditorSession{ID: id.String(), View: dialog.View()}
}
