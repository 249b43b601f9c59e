package store

import "database/sql"

// GetSVG 读取缓存的 SVG 内容
func (s *Store) GetSVG(path string) (string, bool, error) {
	var body string
	err := s.db.QueryRow("SELECT body FROM svg_cache WHERE path = ?", path).Scan(&body)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, err
	}
	return body, true, nil
}

// PutSVG 写入 SVG 缓存
func (s *Store) PutSVG(path, body string) error {
	_, err := s.db.Exec(`
		INSERT INTO svg_cache (path, body) VALUES (?, ?)
		ON CONFLICT(path) DO UPDATE SET body = excluded.body, fetched_at = CURRENT_TIMESTAMP
	`, path, body)
	return err
}

// CountSVG 缓存的 SVG 数量
func (s *Store) CountSVG() (int, error) {
	var n int
	err := s.db.QueryRow("SELECT COUNT(*) FROM svg_cache").Scan(&n)
	return n, err
}

// GetCatalogSnapshot 读取目录快照
func (s *Store) GetCatalogSnapshot() (string, bool, error) {
	var body string
	err := s.db.QueryRow("SELECT body FROM catalog_snapshot WHERE id = 1").Scan(&body)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, err
	}
	return body, true, nil
}

// PutCatalogSnapshot 写入目录快照
func (s *Store) PutCatalogSnapshot(body string) error {
	_, err := s.db.Exec(`
		INSERT INTO catalog_snapshot (id, body) VALUES (1, ?)
		ON CONFLICT(id) DO UPDATE SET body = excluded.body, fetched_at = CURRENT_TIMESTAMP
	`, body)
	return err
}
