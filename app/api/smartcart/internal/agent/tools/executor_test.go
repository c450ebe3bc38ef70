package tools

import (
	"context"
	"strings"
	"testing"
	"time"

	"SmartCart/app/api/smartcart/internal/agent/intent"
	"SmartCart/app/dal/cartitem"
	"SmartCart/app/dal/daltest"
	"SmartCart/app/dal/product"

	"github.com/zeromicro/go-zero/core/logx"
)

func newTestExecutor(t *testing.T) (*Executor, *daltest.MemProducts, *daltest.MemCartItems) {
	t.Helper()
	products := daltest.NewMemProducts()
	items := daltest.NewMemCartItems()
	exec := NewExecutor(logx.WithContext(context.Background()), products, items)
	return exec, products, items
}

func seedProduct(t *testing.T, products *daltest.MemProducts, id int64, name string) {
	t.Helper()
	if _, err := products.Insert(context.Background(), &product.Products{Id: id, Name: name, Price: 1.5}); err != nil {
		t.Fatalf("seed product %q: %v", name, err)
	}
}

func TestSearchAndAddNewLine(t *testing.T) {
	exec, products, items := newTestExecutor(t)
	ctx := context.Background()
	seedProduct(t, products, 3, "Milk")

	got, err := exec.SearchAndAdd(ctx, "milk", 1)
	if err != nil {
		t.Fatalf("SearchAndAdd: %v", err)
	}
	if got != "✅ Added Milk (id 3) to cart with quantity 1." {
		t.Errorf("unexpected outcome: %q", got)
	}

	lines, _ := items.ListAll(ctx)
	if len(lines) != 1 || lines[0].ProductId != 3 || lines[0].Quantity != 1 {
		t.Errorf("cart state wrong after add: %+v", lines)
	}
}

func TestSearchAndAddIncrementsExistingLine(t *testing.T) {
	exec, products, items := newTestExecutor(t)
	ctx := context.Background()
	seedProduct(t, products, 3, "Milk")

	if _, err := exec.SearchAndAdd(ctx, "milk", 1); err != nil {
		t.Fatalf("first add: %v", err)
	}
	got, err := exec.SearchAndAdd(ctx, "milk", 1)
	if err != nil {
		t.Fatalf("second add: %v", err)
	}
	if got != "✅ Updated Milk in cart to quantity 2." {
		t.Errorf("unexpected outcome: %q", got)
	}

	lines, _ := items.ListAll(ctx)
	if len(lines) != 1 {
		t.Fatalf("repeat add created a second line: %+v", lines)
	}
	if lines[0].Quantity != 2 {
		t.Errorf("quantity = %d, want 2", lines[0].Quantity)
	}
}

func TestSearchAndAddFirstMatchWins(t *testing.T) {
	exec, products, _ := newTestExecutor(t)
	ctx := context.Background()
	seedProduct(t, products, 1, "Almond Milk")
	seedProduct(t, products, 2, "Oat Milk")

	got, err := exec.SearchAndAdd(ctx, "milk", 1)
	if err != nil {
		t.Fatalf("SearchAndAdd: %v", err)
	}
	if !strings.Contains(got, "Almond Milk") {
		t.Errorf("expected the earliest catalog match, got %q", got)
	}
}

func TestSearchAndAddNoCatalogMatch(t *testing.T) {
	exec, _, items := newTestExecutor(t)
	ctx := context.Background()

	got, err := exec.SearchAndAdd(ctx, "plutonium", 1)
	if err != nil {
		t.Fatalf("SearchAndAdd: %v", err)
	}
	if got != "❌ No local product found for 'plutonium'." {
		t.Errorf("unexpected outcome: %q", got)
	}

	lines, _ := items.ListAll(ctx)
	if len(lines) != 0 {
		t.Errorf("catalog miss must not touch the cart: %+v", lines)
	}
}

func TestSearchAndDeleteFirstMatchOnly(t *testing.T) {
	exec, products, items := newTestExecutor(t)
	ctx := context.Background()
	seedProduct(t, products, 1, "Almond Milk")
	seedProduct(t, products, 2, "Oat Milk")

	now := time.Now().UTC()
	items.Insert(ctx, &cartitem.CartItems{Id: 10, ProductId: 1, Quantity: 1, AddedAt: now})
	items.Insert(ctx, &cartitem.CartItems{Id: 11, ProductId: 2, Quantity: 1, AddedAt: now})

	got, err := exec.SearchAndDelete(ctx, "milk")
	if err != nil {
		t.Fatalf("SearchAndDelete: %v", err)
	}
	if got != "✅ Deleted 'Almond Milk' from the cart (cart_item_id=10)." {
		t.Errorf("unexpected outcome: %q", got)
	}

	lines, _ := items.ListAll(ctx)
	if len(lines) != 1 || lines[0].Id != 11 {
		t.Errorf("only the first matching line should be deleted: %+v", lines)
	}
}

func TestSearchAndDeleteCartMiss(t *testing.T) {
	exec, products, items := newTestExecutor(t)
	ctx := context.Background()
	seedProduct(t, products, 1, "Milk")
	items.Insert(ctx, &cartitem.CartItems{Id: 10, ProductId: 1, Quantity: 1, AddedAt: time.Now().UTC()})

	got, err := exec.SearchAndDelete(ctx, "sugar")
	if err != nil {
		t.Fatalf("SearchAndDelete: %v", err)
	}
	if got != "⚠️ No item matching 'sugar' found in the cart." {
		t.Errorf("unexpected outcome: %q", got)
	}

	lines, _ := items.ListAll(ctx)
	if len(lines) != 1 {
		t.Errorf("miss must not touch the cart: %+v", lines)
	}
}

func TestDispatchNotActionable(t *testing.T) {
	exec, _, _ := newTestExecutor(t)

	got, err := exec.Dispatch(context.Background(), intent.Decision{Intent: intent.IntentNone})
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if got != "" {
		t.Errorf("non-actionable decision should produce no outcome, got %q", got)
	}
}

func TestDispatchUnknownKeyword(t *testing.T) {
	exec, _, items := newTestExecutor(t)

	got, err := exec.Dispatch(context.Background(), intent.Decision{Intent: "swap", Product: "milk"})
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if got != "Unknown intent." {
		t.Errorf("unexpected outcome: %q", got)
	}

	lines, _ := items.ListAll(context.Background())
	if len(lines) != 0 {
		t.Errorf("unknown keyword must not mutate the cart: %+v", lines)
	}
}

func TestAddIngredientsCollectsOutcomesInOrder(t *testing.T) {
	exec, products, _ := newTestExecutor(t)
	ctx := context.Background()
	seedProduct(t, products, 1, "Rice")
	seedProduct(t, products, 2, "Eggs")

	outcomes, err := exec.AddIngredients(ctx, []string{"rice", "caviar", "eggs"})
	if err != nil {
		t.Fatalf("AddIngredients: %v", err)
	}
	if len(outcomes) != 3 {
		t.Fatalf("expected 3 outcomes, got %d", len(outcomes))
	}
	if !strings.HasPrefix(outcomes[0], "✅") || !strings.Contains(outcomes[0], "Rice") {
		t.Errorf("outcome[0] = %q", outcomes[0])
	}
	if !strings.HasPrefix(outcomes[1], "❌") {
		t.Errorf("outcome[1] = %q", outcomes[1])
	}
	if !strings.HasPrefix(outcomes[2], "✅") || !strings.Contains(outcomes[2], "Eggs") {
		t.Errorf("outcome[2] = %q", outcomes[2])
	}
}
