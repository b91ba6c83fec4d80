package utils

import (
	"net/url"
	"regexp"
	"strings"
)

// 视频 ID 只包含字母、数字、- 和 _
var reVideoID = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// YouTubeID 从预告片链接中提取 YouTube 视频 ID，提取不到返回空串
// 支持 youtube.com/watch?v=、youtube.com/embed/、youtube.com/shorts/、youtu.be/，其他站点一律返回空串
func YouTubeID(trailerURL string) string {
	u, err := url.Parse(strings.TrimSpace(trailerURL))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return ""
	}

	host := strings.ToLower(u.Hostname())
	host = strings.TrimPrefix(host, "www.")
	host = strings.TrimPrefix(host, "m.")

	var id string
	switch host {
	case "youtu.be":
		id = firstSegment(u.Path)
	case "youtube.com", "youtube-nocookie.com":
		switch {
		case u.Path == "/watch" || u.Path == "/watch/":
			id = u.Query().Get("v")
		case strings.HasPrefix(u.Path, "/embed/"):
			id = firstSegment(strings.TrimPrefix(u.Path, "/embed"))
		case strings.HasPrefix(u.Path, "/shorts/"):
			id = firstSegment(strings.TrimPrefix(u.Path, "/shorts"))
		}
	}

	if !reVideoID.MatchString(id) {
		return ""
	}
	return id
}

func firstSegment(p string) string {
	p = strings.TrimPrefix(p, "/")
	if i := strings.IndexByte(p, '/'); i >= 0 {
		p = p[:i]
	}
	return p
}

// YouTubeEmbedURL 生成嵌入播放地址
func YouTubeEmbedURL(id string) string {
	if id == "" {
		return ""
	}
	return "https://www.youtube.com/embed/" + url.PathEscape(id) + "?autoplay=1&html5=1"
}
