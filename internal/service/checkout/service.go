package checkout

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"perfume-storefront/internal/domain"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ValidationError carries the customer fields that failed validation.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing or invalid fields: " + strings.Join(e.Fields, ", ")
}

type cartSource interface {
	Get(ctx context.Context, sessionID string) (*domain.Cart, error)
	Clear(ctx context.Context, sessionID string) error
}

type productSource interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

// Publisher hands a submitted order to the back office.
type Publisher interface {
	PublishOrder(ctx context.Context, order domain.OrderDraft) error
}

type Service struct {
	carts     cartSource
	products  productSource
	publisher Publisher
	validate  *validator.Validate
	phone     string
	logger    *log.Logger
	now       func() time.Time
}

// New wires the checkout service. publisher may be nil when no order events
// are configured.
func New(carts cartSource, products productSource, publisher Publisher, phone string, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{
		carts:     carts,
		products:  products,
		publisher: publisher,
		validate:  validator.New(),
		phone:     phone,
		logger:    logger,
		now:       time.Now,
	}
}

// Result is what the storefront needs to hand the order to the messaging app.
type Result struct {
	Reference  string            `json:"reference"`
	Message    string            `json:"message"`
	Link       string            `json:"link"`
	TotalCents int64             `json:"totalCents"`
	Lines      []domain.CartLine `json:"lines"`
}

// Submit composes the order for the session's cart, publishes it and clears
// the cart. Nothing is persisted.
func (s *Service) Submit(ctx context.Context, sessionID string, customer domain.Customer) (*Result, error) {
	customer = trimCustomer(customer)
	if err := s.validateCustomer(customer); err != nil {
		return nil, err
	}

	cart, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, domain.ErrEmptyCart
	}

	draft := domain.OrderDraft{
		Reference:  uuid.NewString(),
		SessionID:  sessionID,
		Customer:   customer,
		Lines:      cart.Snapshot(),
		TotalCents: cart.TotalPrice(),
		CreatedAt:  s.now().UTC(),
	}
	message := ComposeOrderMessage(draft.Customer, draft.Lines, draft.TotalCents)

	if s.publisher != nil {
		if err := s.publisher.PublishOrder(ctx, draft); err != nil {
			s.logger.Printf("checkout service: publish ref=%s error=%v", draft.Reference, err)
			return nil, fmt.Errorf("publish order: %w", err)
		}
	}

	if err := s.carts.Clear(ctx, sessionID); err != nil {
		s.logger.Printf("checkout service: clear cart session=%s error=%v", sessionID, err)
	}
	s.logger.Printf("checkout service: submitted ref=%s lines=%d total=%d", draft.Reference, len(draft.Lines), draft.TotalCents)

	return &Result{
		Reference:  draft.Reference,
		Message:    message,
		Link:       MessageLink(s.phone, message),
		TotalCents: draft.TotalCents,
		Lines:      draft.Lines,
	}, nil
}

// InquiryInput asks about one product before buying.
type InquiryInput struct {
	ProductID string
	Size      string
	Quantity  int
}

type InquiryResult struct {
	Message string `json:"message"`
	Link    string `json:"link"`
}

// Inquiry composes the product question message. An empty size means the
// default bottle size and a non-positive quantity means one.
func (s *Service) Inquiry(ctx context.Context, in InquiryInput) (*InquiryResult, error) {
	size, ok := domain.ParseSize(in.Size)
	if !ok {
		return nil, domain.ErrInvalidSize
	}
	if size == "" {
		size = domain.DefaultSize
	}
	quantity := in.Quantity
	if quantity < 1 {
		quantity = 1
	}

	product, err := s.products.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}

	message := ComposeInquiryMessage(Inquiry{
		Product:    *product,
		Size:       size,
		PriceCents: product.ResolvePrice(size),
		Quantity:   quantity,
	})
	return &InquiryResult{Message: message, Link: MessageLink(s.phone, message)}, nil
}

func (s *Service) validateCustomer(c domain.Customer) error {
	err := s.validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, jsonFieldName(fe.Field()))
		}
		return &ValidationError{Fields: fields}
	}
	return err
}

func trimCustomer(c domain.Customer) domain.Customer {
	c.FullName = strings.TrimSpace(c.FullName)
	c.Phone = strings.TrimSpace(c.Phone)
	c.Address = strings.TrimSpace(c.Address)
	c.City = strings.TrimSpace(c.City)
	return c
}

func jsonFieldName(field string) string {
	if field == "" {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}
