package service

const (
	defaultPageSize = 10
	maxPageSize     = 100

	defaultHistoryLimit = 30
	maxHistoryLimit     = 100
)

// normalizePage page 从 1 开始
func normalizePage(page, size int) (int, int) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	return page, size
}

func offsetOf(page, size int) int { return (page - 1) * size }

func normalizeLimit(limit int) int {
	if limit < 1 {
		return defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		return maxHistoryLimit
	}
	return limit
}
