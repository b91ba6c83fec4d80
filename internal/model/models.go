package model

// MovieTile 画廊中的一个电影卡片
type MovieTile struct {
	ID               int    `json:"id"` // 在清单中的位置（从 0 开始）
	Movie            Movie  `json:"movie"`
	TrailerYouTubeID string `json:"trailer_youtube_id"`
	DetailURL        string `json:"detail_url,omitempty"`
}

// GalleryPage 画廊页面渲染数据
type GalleryPage struct {
	SiteName    string
	Title       string
	Movies      []MovieTile
	LinkDetails bool // 预览服务器模式下卡片链接到详情页
}
