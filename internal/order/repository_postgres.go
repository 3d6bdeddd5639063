package order

import (
	"database/sql"

	"github.com/lib/pq"

	"ecommerce-backend/internal/item"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	insertOrderQuery = `
		INSERT INTO orders (user_id, items, total, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING order_id
	`
	listOrdersByUserQuery = `
		SELECT order_id, user_id, items, total, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY order_id
	`
	getOrderItemsQuery = `
		SELECT item_id, name, description, price
		FROM items
		WHERE item_id = ANY($1::int[])
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(o Order) (Order, error) {
	ids := make([]int64, 0, len(o.Items))
	for _, entry := range o.Items {
		ids = append(ids, int64(entry.ID))
	}

	var id int
	err := r.db.QueryRow(insertOrderQuery, o.UserID, pq.Array(ids), o.Total, o.CreatedAt).Scan(&id)
	if err != nil {
		return Order{}, err
	}

	o.ID = id
	return o, nil
}

func (r *PostgresRepository) ListByUser(userID int) ([]Order, error) {
	rows, err := r.db.Query(listOrdersByUserQuery, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]Order, 0)
	idSeqs := make([][]int64, 0)
	for rows.Next() {
		var o Order
		var ids []int64
		var createdAt sql.NullString
		if err := rows.Scan(&o.ID, &o.UserID, pq.Array(&ids), &o.Total, &createdAt); err != nil {
			return nil, err
		}
		if createdAt.Valid {
			o.CreatedAt = createdAt.String
		}
		orders = append(orders, o)
		idSeqs = append(idSeqs, ids)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.hydrateItems(orders, idSeqs); err != nil {
		return nil, err
	}
	return orders, nil
}

// hydrateItems resolves every distinct item id referenced by the orders in a
// single query, then expands each order's stored id sequence so duplicates
// and ordering survive the round trip.
func (r *PostgresRepository) hydrateItems(orders []Order, idSeqs [][]int64) error {
	seen := make(map[int64]struct{})
	distinct := make([]int64, 0)
	for _, ids := range idSeqs {
		for _, id := range ids {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			distinct = append(distinct, id)
		}
	}
	if len(distinct) == 0 {
		for i := range orders {
			orders[i].Items = make([]item.Item, 0)
		}
		return nil
	}

	rows, err := r.db.Query(getOrderItemsQuery, pq.Array(distinct))
	if err != nil {
		return err
	}
	defer rows.Close()

	byID := make(map[int64]item.Item)
	for rows.Next() {
		var it item.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Description, &it.Price); err != nil {
			return err
		}
		byID[int64(it.ID)] = it
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for i, ids := range idSeqs {
		items := make([]item.Item, 0, len(ids))
		for _, id := range ids {
			if it, ok := byID[id]; ok {
				items = append(items, it)
			}
		}
		orders[i].Items = items
	}
	return nil
}
