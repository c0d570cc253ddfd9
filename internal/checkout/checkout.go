// Package checkout sequences session, cart, order creation and payment.
// Every step short-circuits on failure and nothing is rolled back: a
// created order whose payment fails stays on the books unpaid.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"storefront-gateway/internal/domain"
	"storefront-gateway/internal/upstream"
)

var (
	// ErrMissingCardDetails is returned when any card field is blank.
	ErrMissingCardDetails = errors.New("please fill in all payment details")
	// ErrInvalidCardNumber is returned for card numbers outside 13-19 digits.
	ErrInvalidCardNumber = errors.New("invalid card number")
)

// PaymentError marks a checkout that created an order but failed to pay
// for it. The order id lets callers surface the inconsistency instead of
// hiding it.
type PaymentError struct {
	OrderID int
	Err     error
}

func (e *PaymentError) Error() string {
	return fmt.Sprintf("payment failed for order %d: %v", e.OrderID, e.Err)
}

func (e *PaymentError) Unwrap() error { return e.Err }

// CardDetails is collected from the payment form. Only the holder name and
// the last four digits of the number are ever sent upstream.
type CardDetails struct {
	Name   string `json:"card_name"`
	Number string `json:"card_number"`
	Expiry string `json:"expiry_date"`
	CVV    string `json:"cvv"`
}

// Result reports a completed checkout.
type Result struct {
	Order  *domain.Order `json:"order"`
	Amount float64       `json:"amount"`
}

type sessionState interface {
	LoggedIn() bool
	Token() string
}

type cartState interface {
	Items() []domain.LineItem
	ItemCount() int
	Total() float64
	Clear(ctx context.Context)
}

type orderSubmitter interface {
	Submit(ctx context.Context, items []domain.LineItem) (*domain.Order, error)
}

type paymentAPI interface {
	ProcessPayment(ctx context.Context, token string, in upstream.PaymentInput) (*domain.Order, error)
}

// Orchestrator turns a cart into a paid order.
type Orchestrator struct {
	session  sessionState
	cart     cartState
	orders   orderSubmitter
	payments paymentAPI
}

func New(session sessionState, cart cartState, orders orderSubmitter, payments paymentAPI) *Orchestrator {
	return &Orchestrator{session: session, cart: cart, orders: orders, payments: payments}
}

// Checkout runs the full sequence. Preconditions fail before any upstream
// call: an anonymous session or an empty cart never creates an order.
// There is no in-flight de-duplication; a double submit creates two orders.
func (o *Orchestrator) Checkout(ctx context.Context, card CardDetails) (*Result, error) {
	if !o.session.LoggedIn() {
		return nil, domain.ErrNotAuthenticated
	}
	if o.cart.ItemCount() == 0 {
		return nil, domain.ErrEmptyCart
	}
	number, err := validateCard(card)
	if err != nil {
		return nil, err
	}

	order, err := o.orders.Submit(ctx, o.cart.Items())
	if err != nil {
		return nil, err
	}

	total := o.cart.Total()
	paid, err := o.payments.ProcessPayment(ctx, o.session.Token(), upstream.PaymentInput{
		OrderID:    order.ID,
		Amount:     total,
		CardNumber: lastFour(number),
		CardName:   card.Name,
	})
	if err != nil {
		return nil, &PaymentError{OrderID: order.ID, Err: err}
	}

	o.cart.Clear(ctx)
	return &Result{Order: paid, Amount: total}, nil
}

func validateCard(card CardDetails) (string, error) {
	if card.Name == "" || card.Number == "" || card.Expiry == "" || card.CVV == "" {
		return "", ErrMissingCardDetails
	}
	number := strings.ReplaceAll(card.Number, " ", "")
	if len(number) < 13 || len(number) > 19 {
		return "", ErrInvalidCardNumber
	}
	for _, r := range number {
		if r < '0' || r > '9' {
			return "", ErrInvalidCardNumber
		}
	}
	return number, nil
}

func lastFour(number string) string {
	if len(number) <= 4 {
		return number
	}
	return number[len(number)-4:]
}
