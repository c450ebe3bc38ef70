package cart

import (
	"encoding/json"
	"time"

	"SmartCart/app/api/smartcart/internal/types"
	"SmartCart/app/dal/cartitem"
	"SmartCart/app/dal/product"
)

// productSnapshot builds the client-facing view of a product. The expiry
// date is computed from the expiry window on every read, never persisted.
func productSnapshot(p *product.Products) types.ProductSnapshot {
	snap := types.ProductSnapshot{
		Id:         p.Id,
		Name:       p.Name,
		Price:      p.Price,
		GreenScore: p.GreenScore,
		ExpiryDate: time.Now().UTC().Add(time.Duration(p.ExpiryDays) * 24 * time.Hour).Format(time.RFC3339),
	}
	if p.Image.Valid {
		snap.Image = p.Image.String
	}

	snap.Alternatives = map[string]map[string]any{}
	if p.Alternatives != "" {
		alts := make(map[string]map[string]any)
		if err := json.Unmarshal([]byte(p.Alternatives), &alts); err == nil {
			snap.Alternatives = alts
		}
	}
	return snap
}

func itemView(line *cartitem.CartItems) types.CartItemView {
	return types.CartItemView{
		Id:        line.Id,
		ProductId: line.ProductId,
		Quantity:  line.Quantity,
		AddedAt:   line.AddedAt.UTC().Format(time.RFC3339),
	}
}
