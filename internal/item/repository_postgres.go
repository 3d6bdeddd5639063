package item

import (
	"database/sql"
)

type PostgresRepository struct {
	db *sql.DB
}

type rowScanner interface {
	Scan(dest ...any) error
}

const (
	listItemsQuery = `
		SELECT item_id, name, description, price
		FROM items
		ORDER BY item_id
	`
	getItemByIDQuery = `
		SELECT item_id, name, description, price
		FROM items
		WHERE item_id = $1
	`
	listItemsByNameQuery = `
		SELECT item_id, name, description, price
		FROM items
		WHERE name = $1
		ORDER BY item_id
	`
	insertItemQuery = `
		INSERT INTO items (name, description, price)
		VALUES ($1, $2, $3)
		RETURNING item_id
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() []Item {
	rows, err := r.db.Query(listItemsQuery)
	if err != nil {
		return []Item{}
	}
	defer rows.Close()

	items := make([]Item, 0)
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			continue
		}
		items = append(items, it)
	}

	return items
}

func (r *PostgresRepository) GetByID(id int) (Item, error) {
	row := r.db.QueryRow(getItemByIDQuery, id)
	it, err := scanItem(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return Item{}, ErrNotFound
		}
		return Item{}, err
	}

	return it, nil
}

func (r *PostgresRepository) ListByName(name string) []Item {
	rows, err := r.db.Query(listItemsByNameQuery, name)
	if err != nil {
		return []Item{}
	}
	defer rows.Close()

	items := make([]Item, 0)
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			continue
		}
		items = append(items, it)
	}

	return items
}

func (r *PostgresRepository) Create(it Item) (Item, error) {
	var id int
	err := r.db.QueryRow(insertItemQuery, it.Name, it.Description, it.Price).Scan(&id)
	if err != nil {
		return Item{}, err
	}

	it.ID = id
	return it, nil
}

func scanItem(scanner rowScanner) (Item, error) {
	it := Item{}
	if err := scanner.Scan(&it.ID, &it.Name, &it.Description, &it.Price); err != nil {
		return Item{}, err
	}
	return it, nil
}
