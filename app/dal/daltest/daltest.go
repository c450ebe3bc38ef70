// Package daltest provides in-memory implementations of the dal model
// interfaces so logic and agent tests can run without a database. Rows are
// kept in insertion order, matching the id ordering of the real queries.
package daltest

import (
	"context"
	"database/sql"
	"strings"
	"sync"

	"SmartCart/app/dal/cartitem"
	"SmartCart/app/dal/product"
)

type result struct{ id int64 }

func (r result) LastInsertId() (int64, error) { return r.id, nil }
func (r result) RowsAffected() (int64, error) { return 1, nil }

type MemProducts struct {
	mu   sync.Mutex
	rows []*product.Products
}

var _ product.ProductsModel = (*MemProducts)(nil)

func NewMemProducts() *MemProducts {
	return &MemProducts{}
}

func (m *MemProducts) Insert(_ context.Context, data *product.Products) (sql.Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row := *data
	m.rows = append(m.rows, &row)
	return result{id: data.Id}, nil
}

func (m *MemProducts) FindOne(_ context.Context, id int64) (*product.Products, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, row := range m.rows {
		if row.Id == id {
			out := *row
			return &out, nil
		}
	}
	return nil, product.ErrNotFound
}

func (m *MemProducts) Update(_ context.Context, data *product.Products) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, row := range m.rows {
		if row.Id == data.Id {
			updated := *data
			m.rows[i] = &updated
			return nil
		}
	}
	return nil
}

func (m *MemProducts) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, row := range m.rows {
		if row.Id == id {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *MemProducts) FindByNameLike(_ context.Context, name string) ([]*product.Products, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	needle := strings.ToLower(name)
	var out []*product.Products
	for _, row := range m.rows {
		if strings.Contains(strings.ToLower(row.Name), needle) {
			copied := *row
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (m *MemProducts) FindOneByName(_ context.Context, name string) (*product.Products, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, row := range m.rows {
		if strings.EqualFold(row.Name, name) {
			out := *row
			return &out, nil
		}
	}
	return nil, product.ErrNotFound
}

func (m *MemProducts) Count(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.rows)), nil
}

type MemCartItems struct {
	mu   sync.Mutex
	rows []*cartitem.CartItems
}

var _ cartitem.CartItemsModel = (*MemCartItems)(nil)

func NewMemCartItems() *MemCartItems {
	return &MemCartItems{}
}

func (m *MemCartItems) Insert(_ context.Context, data *cartitem.CartItems) (sql.Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row := *data
	m.rows = append(m.rows, &row)
	return result{id: data.Id}, nil
}

func (m *MemCartItems) FindOne(_ context.Context, id int64) (*cartitem.CartItems, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, row := range m.rows {
		if row.Id == id {
			out := *row
			return &out, nil
		}
	}
	return nil, cartitem.ErrNotFound
}

func (m *MemCartItems) Update(_ context.Context, data *cartitem.CartItems) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, row := range m.rows {
		if row.Id == data.Id {
			updated := *data
			m.rows[i] = &updated
			return nil
		}
	}
	return nil
}

func (m *MemCartItems) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, row := range m.rows {
		if row.Id == id {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *MemCartItems) ListAll(_ context.Context) ([]*cartitem.CartItems, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*cartitem.CartItems, 0, len(m.rows))
	for _, row := range m.rows {
		copied := *row
		out = append(out, &copied)
	}
	return out, nil
}

func (m *MemCartItems) FindOneByProductId(_ context.Context, productId int64) (*cartitem.CartItems, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, row := range m.rows {
		if row.ProductId == productId {
			out := *row
			return &out, nil
		}
	}
	return nil, cartitem.ErrNotFound
}
