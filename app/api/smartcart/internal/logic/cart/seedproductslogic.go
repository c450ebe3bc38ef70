// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package cart

import (
	"context"
	"database/sql"
	"encoding/json"

	"SmartCart/app/api/smartcart/internal/svc"
	"SmartCart/app/api/smartcart/internal/types"
	"SmartCart/app/common/consts/errno"
	"SmartCart/app/common/snowflake"
	"SmartCart/app/dal/product"

	"github.com/zeromicro/go-zero/core/logx"
)

type SeedProductsLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewSeedProductsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SeedProductsLogic {
	return &SeedProductsLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// SeedProducts loads the starter catalog once. A non-empty catalog makes it
// a no-op, so the endpoint is idempotent.
func (l *SeedProductsLogic) SeedProducts() (resp *types.SeedProductsResponse, err error) {
	total, err := l.svcCtx.ProductsModel.Count(l.ctx)
	if err != nil {
		l.Logger.Errorf("count products failed: %v", err)
		return nil, err
	}
	if total > 0 {
		return &types.SeedProductsResponse{
			StatusCode: errno.StatusOK,
			StatusMsg:  "products already seeded",
		}, nil
	}

	catalog := seedCatalog()
	for _, item := range catalog {
		alternatives := "{}"
		if len(item.Alternatives) > 0 {
			raw, err := json.Marshal(item.Alternatives)
			if err != nil {
				l.Logger.Errorf("marshal alternatives for %q failed: %v", item.Name, err)
				return nil, err
			}
			alternatives = string(raw)
		}

		p := &product.Products{
			Id:           snowflake.Next(),
			Name:         item.Name,
			Price:        item.Price,
			Image:        sql.NullString{String: item.Image, Valid: item.Image != ""},
			ExpiryDays:   item.ExpiryDays,
			GreenScore:   item.GreenScore,
			Alternatives: alternatives,
		}
		if _, err := l.svcCtx.ProductsModel.Insert(l.ctx, p); err != nil {
			l.Logger.Errorf("seed product %q failed: %v", item.Name, err)
			return nil, err
		}
	}

	l.Logger.Infof("seeded %d products", len(catalog))
	resp = &types.SeedProductsResponse{
		StatusCode: errno.StatusOK,
		StatusMsg:  "ok",
		Seeded:     len(catalog),
	}

	return
}
