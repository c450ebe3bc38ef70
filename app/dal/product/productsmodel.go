package product

import (
	"context"
	"fmt"

	"github.com/zeromicro/go-zero/core/stores/cache"
	"github.com/zeromicro/go-zero/core/stores/sqlc"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

var _ ProductsModel = (*customProductsModel)(nil)

type (
	// ProductsModel is an interface to be customized, add more methods here,
	// and implement the added methods in customProductsModel.
	ProductsModel interface {
		productsModel
		FindByNameLike(ctx context.Context, name string) ([]*Products, error)
		FindOneByName(ctx context.Context, name string) (*Products, error)
		Count(ctx context.Context) (int64, error)
	}

	customProductsModel struct {
		*defaultProductsModel
	}
)

// NewProductsModel returns a model for the database table.
func NewProductsModel(conn sqlx.SqlConn, c cache.CacheConf, opts ...cache.Option) ProductsModel {
	return &customProductsModel{
		defaultProductsModel: newProductsModel(conn, c, opts...),
	}
}

// FindByNameLike matches products whose name contains the query,
// case-insensitive, ordered by id so the first match is stable.
func (m *customProductsModel) FindByNameLike(ctx context.Context, name string) ([]*Products, error) {
	query := fmt.Sprintf("select %s from %s where lower(`name`) like lower(?) order by `id`", productsRows, m.table)
	var resp []*Products
	err := m.QueryRowsNoCacheCtx(ctx, &resp, query, "%"+name+"%")
	switch err {
	case nil:
		return resp, nil
	case sqlc.ErrNotFound:
		return nil, ErrNotFound
	default:
		return nil, err
	}
}

// FindOneByName matches a product by exact name, case-insensitive.
func (m *customProductsModel) FindOneByName(ctx context.Context, name string) (*Products, error) {
	query := fmt.Sprintf("select %s from %s where lower(`name`) = lower(?) limit 1", productsRows, m.table)
	var resp Products
	err := m.QueryRowNoCacheCtx(ctx, &resp, query, name)
	switch err {
	case nil:
		return &resp, nil
	case sqlc.ErrNotFound:
		return nil, ErrNotFound
	default:
		return nil, err
	}
}

func (m *customProductsModel) Count(ctx context.Context) (int64, error) {
	query := fmt.Sprintf("select count(*) from %s", m.table)
	var total int64
	if err := m.QueryRowNoCacheCtx(ctx, &total, query); err != nil {
		return 0, err
	}
	return total, nil
}
