package presenter

// ページング付き一覧のレスポンス
type Page struct {
	Items       any `json:"items"`
	CurrentPage int `json:"currentPage"`
	LastPage    int `json:"lastPage"`
}

// 件数0でもlastPageは1
func LastPage(total int64, limit int) int {
	if limit <= 0 || total <= 0 {
		return 1
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

// nestedItemsなら各要素を[item]で包む（既存フロントの読み方に合わせる）
func NewPage[T any](p *Presenter, items []T, page int, total int64, limit int) Page {
	out := Page{CurrentPage: page, LastPage: LastPage(total, limit)}
	if !p.nestedItems {
		out.Items = items
		return out
	}

	wrapped := make([][]T, 0, len(items))
	for _, it := range items {
		wrapped = append(wrapped, []T{it})
	}
	out.Items = wrapped
	return out
}
