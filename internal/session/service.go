package session

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/taazafoods/chatbot-backend/internal/cart"
	"github.com/taazafoods/chatbot-backend/internal/order"
	"github.com/taazafoods/chatbot-backend/pkg/billing"
	pkgerrors "github.com/taazafoods/chatbot-backend/pkg/errors"
	"github.com/taazafoods/chatbot-backend/pkg/logger"
)

const defaultCountryCode = "+92"

// BillingSubmitter forwards an assembled order to the billing upstream.
type BillingSubmitter interface {
	Submit(ctx context.Context, payload any) (billing.Result, error)
}

type checkoutObserver interface {
	IncOrdersSubmitted()
}

// CreateInput is the validated profile arriving from the boundary layer.
type CreateInput struct {
	Name        string
	Mobile      string
	Address     string
	CountryCode string
}

// CheckoutResult reports a successful submission: what was sent and what the
// upstream answered.
type CheckoutResult struct {
	Status  int
	Payload order.Payload
}

// Service exposes the session/cart operations the API handlers consume.
type Service interface {
	Create(ctx context.Context, input CreateInput) (Snapshot, error)
	AddItem(ctx context.Context, id, name string, price float64, qty int) (Snapshot, error)
	RemoveItem(ctx context.Context, id, name string, qty int) (Snapshot, cart.Outcome, error)
	View(ctx context.Context, id string) (Snapshot, error)
	Checkout(ctx context.Context, id, paymentMethod string) (CheckoutResult, error)
	Reset(ctx context.Context, id string) bool
	CacheCategories(id string, raw json.RawMessage)
	SelectCategory(id, category string)
}

type service struct {
	store    *Store
	billing  BillingSubmitter
	logg     *logger.Logger
	observer checkoutObserver
}

// NewService wires the store to the billing upstream. The observer is
// optional.
func NewService(store *Store, submitter BillingSubmitter, logg *logger.Logger, observer checkoutObserver) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("session store required")
	}
	if submitter == nil {
		return nil, fmt.Errorf("billing submitter required")
	}
	return &service{
		store:    store,
		billing:  submitter,
		logg:     logg,
		observer: observer,
	}, nil
}

// Create normalizes the profile and opens a session. Validation already
// happened at the boundary.
func (s *service) Create(ctx context.Context, input CreateInput) (Snapshot, error) {
	countryCode := strings.TrimSpace(input.CountryCode)
	if countryCode == "" {
		countryCode = defaultCountryCode
	}
	user := User{
		Name:    strings.TrimSpace(input.Name),
		Mobile:  countryCode + strings.TrimSpace(input.Mobile),
		Address: strings.TrimSpace(input.Address),
	}

	snap, err := s.store.Create(user)
	if err != nil {
		return Snapshot{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create session")
	}

	if s.logg != nil {
		s.logg.Info(s.logg.WithSessionID(ctx, snap.ID), "session.created")
	}
	return snap, nil
}

func (s *service) AddItem(ctx context.Context, id, name string, price float64, qty int) (Snapshot, error) {
	snap, ok := s.store.Update(id, func(sess *Session) {
		sess.Cart.Add(name, price, qty)
	})
	if !ok {
		return Snapshot{}, errSessionNotFound()
	}
	return snap, nil
}

func (s *service) RemoveItem(ctx context.Context, id, name string, qty int) (Snapshot, cart.Outcome, error) {
	var outcome cart.Outcome
	snap, ok := s.store.Update(id, func(sess *Session) {
		outcome = sess.Cart.Remove(name, qty)
	})
	if !ok {
		return Snapshot{}, cart.OutcomeNotFound, errSessionNotFound()
	}
	return snap, outcome, nil
}

func (s *service) View(ctx context.Context, id string) (Snapshot, error) {
	snap, ok := s.store.Get(id)
	if !ok {
		return Snapshot{}, errSessionNotFound()
	}
	return snap, nil
}

// Checkout assembles the order, forwards it, and on upstream acceptance
// clears the cart and shortens the session's life to the grace window. Any
// failure leaves the session exactly as it was so the user can retry.
func (s *service) Checkout(ctx context.Context, id, paymentMethod string) (CheckoutResult, error) {
	snap, ok := s.store.Get(id)
	if !ok {
		return CheckoutResult{}, errSessionNotFound()
	}

	payload, err := order.Assemble(order.Customer{
		Name:    snap.User.Name,
		Mobile:  snap.User.Mobile,
		Address: snap.User.Address,
	}, snap.Cart, paymentMethod)
	if err != nil {
		return CheckoutResult{}, err
	}

	result, err := s.billing.Submit(ctx, payload)
	if err != nil {
		return CheckoutResult{}, err
	}

	if !result.Accepted() {
		return CheckoutResult{}, pkgerrors.New(pkgerrors.CodeUpstream, "billing api rejected the order").
			WithDetails(map[string]any{
				"billing_status":   result.Status,
				"billing_response": result.BodyJSON(),
			})
	}

	// The session may have expired while the billing call was in flight;
	// the order already went through, so a vanished session is not an error.
	s.store.Update(id, func(sess *Session) {
		sess.Cart = cart.Cart{}
	})
	s.store.ScheduleGrace(id)

	if s.observer != nil {
		s.observer.IncOrdersSubmitted()
	}
	if s.logg != nil {
		ctx := s.logg.WithFields(ctx, map[string]any{"session_id": id, "billing_status": result.Status})
		s.logg.Info(ctx, "checkout.submitted")
	}

	return CheckoutResult{Status: result.Status, Payload: payload}, nil
}

// Reset deletes the session. Unknown ids are not an error; the boolean says
// whether anything was removed.
func (s *service) Reset(ctx context.Context, id string) bool {
	return s.store.Delete(id)
}

// CacheCategories stores the fetched category list on the session. A missing
// session is ignored; the proxy result still goes to the caller.
func (s *service) CacheCategories(id string, raw json.RawMessage) {
	if id == "" {
		return
	}
	s.store.Update(id, func(sess *Session) {
		sess.Categories = raw
	})
}

// SelectCategory records which category the shopper is browsing.
func (s *service) SelectCategory(id, category string) {
	if id == "" {
		return
	}
	s.store.Update(id, func(sess *Session) {
		sess.SelectedCategory = category
	})
}

func errSessionNotFound() *pkgerrors.Error {
	return pkgerrors.New(pkgerrors.CodeNotFound, "session not found")
}
