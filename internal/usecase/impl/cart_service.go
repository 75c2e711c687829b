// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	deliverycontext "mycomart/internal/delivery/context"
	"mycomart/internal/domain/constants"
	"mycomart/internal/domain/entity"
	domainerrors "mycomart/internal/domain/errors"
	"mycomart/internal/domain/repository"
	"mycomart/internal/domain/service"
	"mycomart/internal/usecase"

	"github.com/pkg/errors"
)

// cartService implements the CartUsecase interface. Guest operations take the
// service mutex and re-read the persisted cart before every mutation, so
// concurrent components observe each other's writes instead of clobbering
// them with stale copies.
type cartService struct {
	guestRepo   repository.GuestCartRepository
	sessionRepo repository.SessionRepository
	cartAPI     repository.CartAPI
	catalogAPI  repository.CatalogAPI
	publisher   service.EventPublisher
	logger      *slog.Logger

	mu sync.Mutex

	// guestCache is the in-memory fallback when local persistence fails;
	// guestDirty marks it as ahead of the stored record. Guarded by mu.
	guestCache *entity.Cart
	guestDirty bool
}

// NewCartService is the constructor for cartService.
func NewCartService(
	guestRepo repository.GuestCartRepository,
	sessionRepo repository.SessionRepository,
	cartAPI repository.CartAPI,
	catalogAPI repository.CatalogAPI,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.CartUsecase {
	return &cartService{
		guestRepo:   guestRepo,
		sessionRepo: sessionRepo,
		cartAPI:     cartAPI,
		catalogAPI:  catalogAPI,
		publisher:   publisher,
		logger:      logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// session returns the active session, or nil for guests.
func (srv *cartService) session(ctx context.Context) *entity.Session {
	session, err := srv.sessionRepo.Load(ctx)
	if err != nil {
		if !errors.Is(err, repository.ErrRecordNotFound) {
			srv.log(ctx).Warn("Failed to load session, treating as guest", slog.Any("error", err))
		}

		return nil
	}

	if !session.IsAuthenticated() {
		return nil
	}

	return session
}

// loadGuest reads the persisted guest cart. An absent record is an empty
// cart; a broken store falls back to the in-memory copy. Callers hold mu.
func (srv *cartService) loadGuest(ctx context.Context) *entity.Cart {
	if srv.guestDirty && srv.guestCache != nil {
		return srv.guestCache.Clone()
	}

	cart, err := srv.guestRepo.Load(ctx)
	if err != nil {
		if !errors.Is(err, repository.ErrRecordNotFound) {
			srv.log(ctx).Warn("Failed to load guest cart, using in-memory copy", slog.Any("error", err))
			if srv.guestCache != nil {
				return srv.guestCache.Clone()
			}
		}

		return &entity.Cart{}
	}

	return cart
}

// saveGuest writes the cart back. A failed write is non-fatal: the cart keeps
// working from memory and the next successful write catches up. Callers hold mu.
func (srv *cartService) saveGuest(ctx context.Context, cart *entity.Cart) {
	srv.guestCache = cart
	if err := srv.guestRepo.Save(ctx, cart); err != nil {
		srv.guestDirty = true
		srv.log(ctx).Warn("Failed to persist guest cart, keeping it in memory", slog.Any("error", err))

		return
	}

	srv.guestDirty = false
}

// Get returns the current cart for whichever mode is active.
func (srv *cartService) Get(ctx context.Context) (*entity.Cart, error) {
	if srv.session(ctx) != nil {
		cart, err := srv.cartAPI.Fetch(ctx)
		if err != nil {
			srv.log(ctx).Error("Failed to fetch remote cart", slog.Any("error", err))

			return nil, errors.Wrap(err, "failed to fetch cart")
		}

		return cart, nil
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.loadGuest(ctx), nil
}

// AddItem adds a product to the cart.
func (srv *cartService) AddItem(ctx context.Context, productID int64, quantity int) (*entity.Cart, error) {
	if quantity < 1 {
		return nil, errors.WithStack(domainerrors.ErrInvalidQuantity)
	}

	if srv.session(ctx) != nil {
		cart, err := srv.cartAPI.AddItem(ctx, productID, quantity)
		if err != nil {
			srv.log(ctx).Error("Failed to add item to remote cart",
				slog.Int64("product_id", productID),
				slog.Any("error", err),
			)

			return nil, errors.Wrap(err, "failed to add item")
		}

		return cart, nil
	}

	// 1. Snapshot the product at add time; the guest line keeps this price
	product, err := srv.catalogAPI.GetProduct(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up product")
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	// 2. Re-read, mutate, write back as one record
	cart := srv.loadGuest(ctx)
	cart.AddItem(*product, quantity)
	srv.saveGuest(ctx, cart)

	srv.log(ctx).Debug("Added item to guest cart",
		slog.Int64("product_id", productID),
		slog.Int("quantity", quantity),
	)

	return cart, nil
}

// UpdateQuantity overwrites one line's quantity. Quantities below 1 leave the
// cart unchanged, mirroring the input guard the cart views always had.
func (srv *cartService) UpdateQuantity(ctx context.Context, itemID string, quantity int) (*entity.Cart, error) {
	if quantity < 1 {
		srv.log(ctx).Debug("Ignoring quantity below 1", slog.String("item_id", itemID))

		return srv.Get(ctx)
	}

	if srv.session(ctx) != nil {
		cart, err := srv.cartAPI.UpdateQuantity(ctx, itemID, quantity)
		if err != nil {
			return nil, errors.Wrap(err, "failed to update quantity")
		}

		return cart, nil
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	cart := srv.loadGuest(ctx)
	if !cart.UpdateQuantity(itemID, quantity) {
		return nil, errors.WithStack(domainerrors.ErrCartItemNotFound)
	}
	srv.saveGuest(ctx, cart)

	return cart, nil
}

// RemoveItem deletes one line from the cart.
func (srv *cartService) RemoveItem(ctx context.Context, itemID string) (*entity.Cart, error) {
	if srv.session(ctx) != nil {
		cart, err := srv.cartAPI.RemoveItem(ctx, itemID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to remove item")
		}

		return cart, nil
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	cart := srv.loadGuest(ctx)
	if !cart.RemoveItem(itemID) {
		return nil, errors.WithStack(domainerrors.ErrCartItemNotFound)
	}
	srv.saveGuest(ctx, cart)

	return cart, nil
}

// Clear empties the cart.
func (srv *cartService) Clear(ctx context.Context) error {
	if srv.session(ctx) != nil {
		if _, err := srv.cartAPI.Clear(ctx); err != nil {
			return errors.Wrap(err, "failed to clear remote cart")
		}

		return nil
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	if err := srv.guestRepo.Delete(ctx); err != nil {
		// The record may survive, but the cart the app sees is empty.
		srv.guestCache = &entity.Cart{}
		srv.guestDirty = true
		srv.log(ctx).Warn("Failed to delete guest cart record, cleared in memory", slog.Any("error", err))

		return nil
	}

	srv.guestCache = nil
	srv.guestDirty = false

	return nil
}

// Totals derives item count and total price from the current cart.
func (srv *cartService) Totals(ctx context.Context) (entity.CartTotals, error) {
	cart, err := srv.Get(ctx)
	if err != nil {
		return entity.CartTotals{}, err
	}

	return cart.Totals(), nil
}

// ReconcileGuestCart pushes the guest cart to the backend in one bulk sync.
func (srv *cartService) ReconcileGuestCart(ctx context.Context) error {
	// 1. Snapshot what the guest accumulated. The lock is released before
	//    the sync request: a 401 on it forces a logout, and the logout path
	//    takes this same lock to clear the guest cart.
	srv.mu.Lock()
	cart := srv.loadGuest(ctx)
	srv.mu.Unlock()

	if cart.IsEmpty() {
		srv.log(ctx).Debug("No guest cart to reconcile")

		return nil
	}

	// 2. Flatten to product/quantity pairs and sync in one request
	items := make([]repository.SyncItem, len(cart.Items))
	for i, item := range cart.Items {
		items[i] = repository.SyncItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		}
	}

	if err := srv.cartAPI.SyncGuestCart(ctx, items); err != nil {
		srv.log(ctx).Warn("Guest cart sync failed, keeping local record",
			slog.Int("item_count", len(items)),
			slog.Any("error", err),
		)

		return errors.Wrap(err, "failed to sync guest cart")
	}

	// 3. Delete the local record only now that the backend confirmed. A
	//    failed delete leaves a duplicate-prone record, so it is logged
	//    loudly, but the sync itself has succeeded.
	srv.mu.Lock()
	srv.guestCache = nil
	srv.guestDirty = false
	if err := srv.guestRepo.Delete(ctx); err != nil {
		srv.log(ctx).Error("Failed to delete guest cart after sync", slog.Any("error", err))
	}
	srv.mu.Unlock()

	// 4. Broadcast so mounted cart views re-fetch the merged cart
	totals := cart.Totals()
	event := &service.StorefrontEvent{
		Type:       constants.EventCartSynced,
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		ItemCount:  totals.ItemCount,
		TotalPrice: totals.TotalPrice,
		OccurredAt: time.Now(),
	}
	if session := srv.session(ctx); session != nil {
		event.UserEmail = session.User.Email
	}
	if err := srv.publisher.PublishStorefrontEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish cart synced event", slog.Any("error", err))
	}

	srv.log(ctx).Info("Guest cart reconciled", slog.Int("item_count", totals.ItemCount))

	return nil
}
