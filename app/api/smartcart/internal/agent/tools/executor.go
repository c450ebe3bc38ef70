package tools

import (
	"context"
	"fmt"
	"strings"
	"time"

	"SmartCart/app/api/smartcart/internal/agent/intent"
	"SmartCart/app/common/snowflake"
	"SmartCart/app/dal/cartitem"
	"SmartCart/app/dal/product"

	"github.com/zeromicro/go-zero/core/logx"
)

// Outcome markers. The composer reads these for tone only, it never branches
// on them.
const (
	successMark     = "✅"
	cartMissMark    = "⚠️"
	catalogMissMark = "❌"
)

type Executor struct {
	log      logx.Logger
	products product.ProductsModel
	items    cartitem.CartItemsModel
}

func NewExecutor(log logx.Logger, products product.ProductsModel, items cartitem.CartItemsModel) *Executor {
	return &Executor{
		log:      log,
		products: products,
		items:    items,
	}
}

// Dispatch runs at most one cart mutation for the classified intent and
// reports the outcome as a human-readable string. An empty outcome with a
// nil error means there was nothing to do.
func (e *Executor) Dispatch(ctx context.Context, decision intent.Decision) (string, error) {
	if !decision.Actionable() {
		return "", nil
	}

	switch decision.Intent {
	case intent.IntentAdd:
		return e.SearchAndAdd(ctx, decision.Product, 1)
	case intent.IntentRemove:
		return e.SearchAndDelete(ctx, decision.Product)
	default:
		e.log.Infof("unhandled intent keyword %q", decision.Intent)
		return "Unknown intent.", nil
	}
}

// SearchAndAdd looks a product up by name and adds the first match to the
// cart, incrementing the quantity when a line for it already exists. The
// existence check is not serialized against concurrent adds; last write wins
// on the quantity.
func (e *Executor) SearchAndAdd(ctx context.Context, name string, quantity int64) (string, error) {
	matches, err := e.products.FindByNameLike(ctx, name)
	if err != nil && err != product.ErrNotFound {
		return "", err
	}
	if len(matches) == 0 {
		return fmt.Sprintf("%s No local product found for '%s'.", catalogMissMark, name), nil
	}

	p := matches[0]
	line, err := e.items.FindOneByProductId(ctx, p.Id)
	switch err {
	case nil:
		line.Quantity += quantity
		if err := e.items.Update(ctx, line); err != nil {
			return "", err
		}
		return fmt.Sprintf("%s Updated %s in cart to quantity %d.", successMark, p.Name, line.Quantity), nil
	case cartitem.ErrNotFound:
		newLine := &cartitem.CartItems{
			Id:        snowflake.Next(),
			ProductId: p.Id,
			Quantity:  quantity,
			AddedAt:   time.Now().UTC(),
		}
		if _, err := e.items.Insert(ctx, newLine); err != nil {
			return "", err
		}
		return fmt.Sprintf("%s Added %s (id %d) to cart with quantity %d.", successMark, p.Name, p.Id, quantity), nil
	default:
		return "", err
	}
}

// SearchAndDelete removes the first cart line whose product name contains
// the query, deleting once at most.
func (e *Executor) SearchAndDelete(ctx context.Context, name string) (string, error) {
	lines, err := e.items.ListAll(ctx)
	if err != nil && err != cartitem.ErrNotFound {
		return "", err
	}

	needle := strings.ToLower(name)
	for _, line := range lines {
		p, err := e.products.FindOne(ctx, line.ProductId)
		if err != nil {
			return "", err
		}
		if strings.Contains(strings.ToLower(p.Name), needle) {
			if err := e.items.Delete(ctx, line.Id); err != nil {
				return "", err
			}
			return fmt.Sprintf("%s Deleted '%s' from the cart (cart_item_id=%d).", successMark, p.Name, line.Id), nil
		}
	}

	return fmt.Sprintf("%s No item matching '%s' found in the cart.", cartMissMark, name), nil
}

// AddIngredients runs search-and-add once per ingredient and collects the
// per-ingredient outcomes in order.
func (e *Executor) AddIngredients(ctx context.Context, ingredients []string) ([]string, error) {
	outcomes := make([]string, 0, len(ingredients))
	for _, ing := range ingredients {
		outcome, err := e.SearchAndAdd(ctx, ing, 1)
		if err != nil {
			return nil, err
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes, nil
}
