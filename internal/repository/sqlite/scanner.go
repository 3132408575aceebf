package sqlite

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanItem scans a single storage item from a database row
func ScanItem(scanner Scanner) (*StorageItem, error) {
	item := &StorageItem{}
	var updatedAt string

	if err := scanner.Scan(&item.Key, &item.Value, &updatedAt); err != nil {
		return nil, err
	}

	if updatedAt != "" {
		t, err := ParseTimeFromDB(updatedAt)
		if err != nil {
			return nil, err
		}
		item.UpdatedAt = t
	}

	return item, nil
}

// ScanItems scans multiple storage items from database rows
func ScanItems(rows Rows) ([]*StorageItem, error) {
	var items []*StorageItem
	for rows.Next() {
		item, err := ScanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
