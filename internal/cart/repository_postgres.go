package cart

import (
	"database/sql"

	"github.com/lib/pq"

	"ecommerce-backend/internal/item"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	getCartQuery = `
		SELECT cart_id, user_id, items, total
		FROM carts
		WHERE cart_id = $1
	`
	// resolves the distinct item ids referenced by a cart; duplicates are
	// expanded afterwards from the stored id sequence
	getCartItemsQuery = `
		SELECT item_id, name, description, price
		FROM items
		WHERE item_id = ANY($1::int[])
	`
	saveCartQuery = `
		UPDATE carts
		SET items = $1, total = $2
		WHERE cart_id = $3
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByID(cartID int) (Cart, error) {
	c := Cart{}
	var ids []int64
	if err := r.db.QueryRow(getCartQuery, cartID).Scan(&c.ID, &c.UserID, pq.Array(&ids), &c.Total); err != nil {
		if err == sql.ErrNoRows {
			return Cart{}, ErrNotFound
		}
		return Cart{}, err
	}

	items, err := r.resolveItems(ids)
	if err != nil {
		return Cart{}, err
	}
	c.Items = items
	return c, nil
}

func (r *PostgresRepository) Save(c Cart) (Cart, error) {
	ids := make([]int64, 0, len(c.Items))
	for _, entry := range c.Items {
		ids = append(ids, int64(entry.ID))
	}

	result, err := r.db.Exec(saveCartQuery, pq.Array(ids), c.Total, c.ID)
	if err != nil {
		return Cart{}, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return Cart{}, err
	}
	if affected == 0 {
		return Cart{}, ErrNotFound
	}

	return c, nil
}

// resolveItems turns the stored id sequence back into full items, preserving
// both order and duplicates.
func (r *PostgresRepository) resolveItems(ids []int64) ([]item.Item, error) {
	items := make([]item.Item, 0, len(ids))
	if len(ids) == 0 {
		return items, nil
	}

	rows, err := r.db.Query(getCartItemsQuery, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byID := make(map[int]item.Item)
	for rows.Next() {
		var it item.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Description, &it.Price); err != nil {
			return nil, err
		}
		byID[it.ID] = it
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, id := range ids {
		if it, ok := byID[int(id)]; ok {
			items = append(items, it)
		}
	}
	return items, nil
}
