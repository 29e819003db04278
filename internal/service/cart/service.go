package cart

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"

	"perfume-storefront/internal/domain"
	cartrepo "perfume-storefront/internal/repository/cart"
)

// inputError is a rejected request; it matches domain.ErrInvalidInput.
type inputError string

func (e inputError) Error() string { return string(e) }

func (e inputError) Is(target error) bool { return target == domain.ErrInvalidInput }

// Service owns session carts. Writes to one session are serialised so that
// concurrent requests from the same shopper do not overwrite each other.
type Service struct {
	store       cartrepo.Store
	productRepo productRepo
	logger      *log.Logger
	locks       *sessionLocks
}

type productRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

func New(store cartrepo.Store, productRepo productRepo, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{store: store, productRepo: productRepo, logger: logger, locks: newSessionLocks()}
}

// LineInput addresses one cart line. Size is a raw size tag; empty means no
// size selected.
type LineInput struct {
	ProductID string `json:"productId"`
	Size      string `json:"size,omitempty"`
	Quantity  int    `json:"quantity"`
}

// UpdateInput applies a batch of actions in order. Supported actions are
// addLine, changeLineQuantity, removeLine and clear.
type UpdateInput struct {
	Actions []UpdateAction `json:"actions"`
}

type UpdateAction struct {
	Action string `json:"action"`
	LineInput
}

func (s *Service) Get(ctx context.Context, sessionID string) (*domain.Cart, error) {
	return s.store.Get(ctx, sessionID)
}

// Add adds quantity items of a catalog product in size, merging into an
// existing line with the same product and size.
func (s *Service) Add(ctx context.Context, sessionID string, in LineInput) (*domain.Cart, error) {
	return s.Update(ctx, sessionID, UpdateInput{Actions: []UpdateAction{{Action: "addLine", LineInput: in}}})
}

// UpdateQuantity sets the quantity of a line; zero removes it.
func (s *Service) UpdateQuantity(ctx context.Context, sessionID string, in LineInput) (*domain.Cart, error) {
	return s.Update(ctx, sessionID, UpdateInput{Actions: []UpdateAction{{Action: "changeLineQuantity", LineInput: in}}})
}

func (s *Service) Remove(ctx context.Context, sessionID string, in LineInput) (*domain.Cart, error) {
	return s.Update(ctx, sessionID, UpdateInput{Actions: []UpdateAction{{Action: "removeLine", LineInput: in}}})
}

func (s *Service) Clear(ctx context.Context, sessionID string) error {
	defer s.locks.lock(sessionID)()
	if err := s.store.Delete(ctx, sessionID); err != nil {
		s.logger.Printf("cart service: clear session=%s error=%v", sessionID, err)
		return err
	}
	return nil
}

// Update validates every action before touching the cart, then applies them
// and saves once. A failing action leaves the stored cart unchanged.
func (s *Service) Update(ctx context.Context, sessionID string, in UpdateInput) (*domain.Cart, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, inputError("session required")
	}
	if len(in.Actions) == 0 {
		return nil, inputError("actions required")
	}

	defer s.locks.lock(sessionID)()
	cart, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	for _, action := range in.Actions {
		if err := s.apply(ctx, cart, action); err != nil {
			return nil, err
		}
	}

	if err := s.store.Save(ctx, sessionID, cart); err != nil {
		s.logger.Printf("cart service: save session=%s error=%v", sessionID, err)
		return nil, err
	}
	return cart, nil
}

func (s *Service) apply(ctx context.Context, cart *domain.Cart, action UpdateAction) error {
	name := strings.ToLower(strings.TrimSpace(action.Action))
	if name == "clear" {
		cart.Clear()
		return nil
	}

	productID := strings.TrimSpace(action.ProductID)
	if productID == "" {
		return inputError("productId required")
	}
	size, ok := domain.ParseSize(action.Size)
	if !ok {
		return domain.ErrInvalidSize
	}

	switch name {
	case "addline":
		if action.Quantity < 1 {
			return domain.ErrInvalidQuantity
		}
		if s.productRepo == nil {
			return errors.New("product repository unavailable")
		}
		product, err := s.productRepo.GetByID(ctx, productID)
		if err != nil {
			return err
		}
		return cart.Add(product, action.Quantity, size)
	case "changelinequantity":
		return cart.UpdateQuantity(productID, action.Quantity, size)
	case "removeline":
		cart.Remove(productID, size)
		return nil
	default:
		return inputError("unsupported action")
	}
}
