package qiitaapi

// Article is one Qiita item with the engagement counts used for scoring.
type Article struct {
	LikesCount     int `json:"likes_count"`
	PageViewsCount int `json:"page_views_count"`
}
