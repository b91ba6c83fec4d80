package service

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/user/moviecenter/internal/model"
)

// ParseGalleryPage 读取已生成的画廊页面，按文档顺序返回电影卡片
func ParseGalleryPage(r io.Reader) ([]model.MovieTile, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("解析画廊页面失败: %w", err)
	}

	var (
		tiles    []model.MovieTile
		parseErr error
	)
	doc.Find(".movie-tile").EachWithBreak(func(i int, s *goquery.Selection) bool {
		idAttr, _ := s.Attr("data-movie-id")
		id, err := strconv.Atoi(idAttr)
		if err != nil {
			parseErr = fmt.Errorf("第 %d 个卡片的 data-movie-id 无效: %q", i+1, idAttr)
			return false
		}
		ytID, _ := s.Attr("data-trailer-youtube-id")
		trailer, _ := s.Attr("data-trailer-url")
		poster, _ := s.Find("img").First().Attr("src")
		detail, _ := s.Find("a.movie-detail-link").Attr("href")

		tiles = append(tiles, model.MovieTile{
			ID: id,
			Movie: model.Movie{
				Title:             strings.TrimSpace(s.Find("h2").First().Text()),
				Storyline:         strings.TrimSpace(s.Find("p.storyline").First().Text()),
				PosterImageURL:    poster,
				TrailerYouTubeURL: trailer,
			},
			TrailerYouTubeID: ytID,
			DetailURL:        detail,
		})
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return tiles, nil
}
