package cart

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"SmartCart/app/api/smartcart/internal/svc"
	"SmartCart/app/api/smartcart/internal/types"
	"SmartCart/app/common/consts/errno"
	"SmartCart/app/dal/cartitem"
	"SmartCart/app/dal/daltest"
	"SmartCart/app/dal/product"

	xerrors "github.com/zeromicro/x/errors"
)

func newTestSvcCtx() (*svc.ServiceContext, *daltest.MemProducts, *daltest.MemCartItems) {
	products := daltest.NewMemProducts()
	items := daltest.NewMemCartItems()
	return &svc.ServiceContext{
		ProductsModel:  products,
		CartItemsModel: items,
	}, products, items
}

func insertProduct(t *testing.T, products *daltest.MemProducts, id int64, name string) {
	t.Helper()
	if _, err := products.Insert(context.Background(), &product.Products{
		Id:         id,
		Name:       name,
		Price:      9.5,
		ExpiryDays: 7,
		GreenScore: 60,
	}); err != nil {
		t.Fatalf("insert product %q: %v", name, err)
	}
}

func assertCode(t *testing.T, err error, code int) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error")
	}
	var cm *xerrors.CodeMsg
	if !stderrors.As(err, &cm) {
		t.Fatalf("expected coded error, got %v", err)
	}
	if cm.Code != code {
		t.Errorf("code = %d, want %d (%v)", cm.Code, code, err)
	}
}

func TestAddCartItem(t *testing.T) {
	svcCtx, products, items := newTestSvcCtx()
	insertProduct(t, products, 3, "Milk")

	l := NewAddCartItemLogic(context.Background(), svcCtx)
	resp, err := l.AddCartItem(&types.AddCartItemRequest{ProductId: 3, Quantity: 2})
	if err != nil {
		t.Fatalf("AddCartItem: %v", err)
	}
	if resp.StatusCode != errno.StatusOK {
		t.Errorf("code = %d", resp.StatusCode)
	}
	if resp.Item.ProductId != 3 || resp.Item.Quantity != 2 {
		t.Errorf("item view = %+v", resp.Item)
	}
	if resp.Item.Id == 0 {
		t.Error("item id not assigned")
	}

	lines, _ := items.ListAll(context.Background())
	if len(lines) != 1 {
		t.Fatalf("cart lines = %+v", lines)
	}
}

func TestAddCartItemUnknownProduct(t *testing.T) {
	svcCtx, _, _ := newTestSvcCtx()

	l := NewAddCartItemLogic(context.Background(), svcCtx)
	_, err := l.AddCartItem(&types.AddCartItemRequest{ProductId: 99, Quantity: 1})
	assertCode(t, err, errno.ProductNotFound)
}

func TestAddCartItemInvalidPayload(t *testing.T) {
	svcCtx, _, _ := newTestSvcCtx()

	l := NewAddCartItemLogic(context.Background(), svcCtx)
	_, err := l.AddCartItem(&types.AddCartItemRequest{ProductId: 1, Quantity: 0})
	assertCode(t, err, errno.InvalidParam)
}

func TestGetCartResolvesProducts(t *testing.T) {
	svcCtx, products, items := newTestSvcCtx()
	insertProduct(t, products, 3, "Milk")
	insertProduct(t, products, 4, "Rice")

	now := time.Now().UTC()
	items.Insert(context.Background(), &cartitem.CartItems{Id: 10, ProductId: 3, Quantity: 1, AddedAt: now})
	items.Insert(context.Background(), &cartitem.CartItems{Id: 11, ProductId: 4, Quantity: 2, AddedAt: now})

	l := NewGetCartLogic(context.Background(), svcCtx)
	resp, err := l.GetCart()
	if err != nil {
		t.Fatalf("GetCart: %v", err)
	}
	if resp.Total != 2 || len(resp.Items) != 2 {
		t.Fatalf("resp = %+v", resp)
	}
	if resp.Items[0].CartItemId != 10 || resp.Items[0].Product.Name != "Milk" {
		t.Errorf("first line = %+v", resp.Items[0])
	}
	if resp.Items[1].CartItemId != 11 || resp.Items[1].Quantity != 2 {
		t.Errorf("second line = %+v", resp.Items[1])
	}

	expiry, err := time.Parse(time.RFC3339, resp.Items[0].Product.ExpiryDate)
	if err != nil {
		t.Fatalf("expiry date not RFC3339: %v", err)
	}
	if d := time.Until(expiry); d < 6*24*time.Hour || d > 8*24*time.Hour {
		t.Errorf("expiry %s not about 7 days out", resp.Items[0].Product.ExpiryDate)
	}
	if resp.Items[0].Product.Alternatives == nil {
		t.Error("alternatives should decode to an empty map, not nil")
	}
}

func TestGetCartEmpty(t *testing.T) {
	svcCtx, _, _ := newTestSvcCtx()

	l := NewGetCartLogic(context.Background(), svcCtx)
	resp, err := l.GetCart()
	if err != nil {
		t.Fatalf("GetCart: %v", err)
	}
	if resp.Total != 0 || len(resp.Items) != 0 {
		t.Errorf("resp = %+v", resp)
	}
}

func TestDeleteCartItemTwice(t *testing.T) {
	svcCtx, products, items := newTestSvcCtx()
	insertProduct(t, products, 3, "Milk")
	items.Insert(context.Background(), &cartitem.CartItems{Id: 10, ProductId: 3, Quantity: 1, AddedAt: time.Now().UTC()})

	l := NewDeleteCartItemLogic(context.Background(), svcCtx)
	resp, err := l.DeleteCartItem(&types.DeleteCartItemRequest{ItemId: 10})
	if err != nil {
		t.Fatalf("DeleteCartItem: %v", err)
	}
	if resp.Status != "deleted" || resp.ItemId != 10 {
		t.Errorf("resp = %+v", resp)
	}

	_, err = l.DeleteCartItem(&types.DeleteCartItemRequest{ItemId: 10})
	assertCode(t, err, errno.CartItemNotFound)
}

func TestUpdateCartItem(t *testing.T) {
	svcCtx, products, items := newTestSvcCtx()
	insertProduct(t, products, 3, "Milk")
	items.Insert(context.Background(), &cartitem.CartItems{Id: 10, ProductId: 3, Quantity: 1, AddedAt: time.Now().UTC()})

	l := NewUpdateCartItemLogic(context.Background(), svcCtx)
	resp, err := l.UpdateCartItem(&types.UpdateCartItemRequest{Id: 10, Quantity: 5})
	if err != nil {
		t.Fatalf("UpdateCartItem: %v", err)
	}
	if resp.Item.Quantity != 5 {
		t.Errorf("item view = %+v", resp.Item)
	}

	line, _ := items.FindOne(context.Background(), 10)
	if line.Quantity != 5 {
		t.Errorf("stored quantity = %d", line.Quantity)
	}
}

func TestUpdateCartItemMissing(t *testing.T) {
	svcCtx, _, _ := newTestSvcCtx()

	l := NewUpdateCartItemLogic(context.Background(), svcCtx)
	_, err := l.UpdateCartItem(&types.UpdateCartItemRequest{Id: 10, Quantity: 5})
	assertCode(t, err, errno.CartItemNotFound)
}

func TestSwapCartItemKeepsQuantity(t *testing.T) {
	svcCtx, products, items := newTestSvcCtx()
	insertProduct(t, products, 3, "Mozzarella Cheese")
	insertProduct(t, products, 4, "Cheddar Cheese")
	items.Insert(context.Background(), &cartitem.CartItems{Id: 10, ProductId: 3, Quantity: 4, AddedAt: time.Now().UTC()})

	l := NewSwapCartItemLogic(context.Background(), svcCtx)
	resp, err := l.SwapCartItem(&types.SwapCartItemRequest{CartItemId: 10, Alternative: "cheddar cheese"})
	if err != nil {
		t.Fatalf("SwapCartItem: %v", err)
	}
	if resp.Product.Id != 4 || resp.Product.Name != "Cheddar Cheese" {
		t.Errorf("swap resolved wrong product: %+v", resp.Product)
	}
	if resp.Quantity != 4 {
		t.Errorf("quantity = %d, want 4", resp.Quantity)
	}

	line, _ := items.FindOne(context.Background(), 10)
	if line.ProductId != 4 || line.Quantity != 4 {
		t.Errorf("stored line = %+v", line)
	}
}

func TestSwapCartItemUnknownAlternative(t *testing.T) {
	svcCtx, products, items := newTestSvcCtx()
	insertProduct(t, products, 3, "Milk")
	items.Insert(context.Background(), &cartitem.CartItems{Id: 10, ProductId: 3, Quantity: 1, AddedAt: time.Now().UTC()})

	l := NewSwapCartItemLogic(context.Background(), svcCtx)
	_, err := l.SwapCartItem(&types.SwapCartItemRequest{CartItemId: 10, Alternative: "unobtainium"})
	assertCode(t, err, errno.AlternativeNotFound)

	line, _ := items.FindOne(context.Background(), 10)
	if line.ProductId != 3 {
		t.Errorf("failed swap must not repoint the line: %+v", line)
	}
}

func TestSwapCartItemMissingLine(t *testing.T) {
	svcCtx, products, _ := newTestSvcCtx()
	insertProduct(t, products, 3, "Milk")

	l := NewSwapCartItemLogic(context.Background(), svcCtx)
	_, err := l.SwapCartItem(&types.SwapCartItemRequest{CartItemId: 10, Alternative: "Milk"})
	assertCode(t, err, errno.CartItemNotFound)
}

func TestSeedProductsIdempotent(t *testing.T) {
	svcCtx, products, _ := newTestSvcCtx()

	l := NewSeedProductsLogic(context.Background(), svcCtx)
	resp, err := l.SeedProducts()
	if err != nil {
		t.Fatalf("SeedProducts: %v", err)
	}
	if resp.Seeded != len(seedCatalog()) {
		t.Errorf("seeded = %d, want %d", resp.Seeded, len(seedCatalog()))
	}

	total, _ := products.Count(context.Background())
	if total != int64(len(seedCatalog())) {
		t.Errorf("catalog size = %d", total)
	}

	again, err := l.SeedProducts()
	if err != nil {
		t.Fatalf("second SeedProducts: %v", err)
	}
	if again.Seeded != 0 || again.StatusMsg != "products already seeded" {
		t.Errorf("second call should be a no-op: %+v", again)
	}

	totalAfter, _ := products.Count(context.Background())
	if totalAfter != total {
		t.Errorf("catalog grew on reseed: %d -> %d", total, totalAfter)
	}
}
