package router

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gin-gonic/gin"
	"github.com/user/moviecenter/internal/config"
	"github.com/user/moviecenter/internal/handler"
	"github.com/user/moviecenter/internal/model"
	"github.com/user/moviecenter/internal/repository"
	"github.com/user/moviecenter/internal/service"
)

type apiResponse struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Data    []model.MovieTile `json:"data"`
	Success bool              `json:"success"`
}

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	movies, err := repository.DefaultMovies()
	if err != nil {
		t.Fatal(err)
	}
	return newTestEngineWith(t, movies)
}

func newTestEngineWith(t *testing.T, movies []model.Movie) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		SiteName:  "Test Trailers",
		AppSecret: "test-secret",
		PageCache: time.Minute,
	}
	gallery, err := service.NewGalleryService(cfg)
	if err != nil {
		t.Fatal(err)
	}
	h := handler.NewHandler(repository.NewRepositories(movies), cfg, gallery)
	return NewEngine(cfg, h)
}

func get(t *testing.T, r http.Handler, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) apiResponse {
	t.Helper()
	var resp apiResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json %q: %v", rr.Body.String(), err)
	}
	return resp
}

func TestHealth(t *testing.T) {
	rr := get(t, newTestEngine(t), "/health")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var body struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil || body.Status != "ok" {
		t.Fatalf("unexpected body %q", rr.Body.String())
	}
}

func TestHome_GalleryWithDetailLinks(t *testing.T) {
	r := newTestEngine(t)
	for i := 0; i < 2; i++ { // 第二次走缓存
		rr := get(t, r, "/")
		if rr.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rr.Code)
		}
		if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
			t.Fatalf("unexpected content type %q", ct)
		}
		tiles, err := service.ParseGalleryPage(rr.Body)
		if err != nil {
			t.Fatal(err)
		}
		if len(tiles) != 6 {
			t.Fatalf("expected 6 tiles, got %d", len(tiles))
		}
		if tiles[0].Movie.Title != "Toy Story" || tiles[0].DetailURL != "/movie/0" {
			t.Fatalf("unexpected first tile %+v", tiles[0])
		}
	}
}

func TestMovie_DetailPage(t *testing.T) {
	rr := get(t, newTestEngine(t), "/movie/1")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	doc, err := goquery.NewDocumentFromReader(rr.Body)
	if err != nil {
		t.Fatal(err)
	}
	if got := doc.Find(".movie-detail h1").Text(); got != "Avatar" {
		t.Fatalf("title: got %q", got)
	}
	src, _ := doc.Find("#detail-trailer").Attr("src")
	if src != "https://www.youtube.com/embed/cRdxXPV9GNQ?autoplay=1&html5=1" {
		t.Fatalf("embed src: got %q", src)
	}
	if got := doc.Find("title").Text(); got != "Avatar - Test Trailers" {
		t.Fatalf("page title: got %q", got)
	}
}

func TestMovie_NotFound(t *testing.T) {
	r := newTestEngine(t)
	for _, path := range []string{"/movie/6", "/movie/-1", "/movie/abc", "/nope"} {
		rr := get(t, r, path)
		if rr.Code != http.StatusNotFound {
			t.Fatalf("%s: expected 404, got %d", path, rr.Code)
		}
		if !strings.Contains(rr.Body.String(), "not-found") {
			t.Fatalf("%s: expected 404 page, got %q", path, rr.Body.String())
		}
	}
}

func TestAPI_MovieList(t *testing.T) {
	rr := get(t, newTestEngine(t), "/api/movies")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	resp := decode(t, rr)
	if !resp.Success || len(resp.Data) != 6 {
		t.Fatalf("unexpected response %+v", resp)
	}
	want := []string{"Toy Story", "Avatar", "Rurouni Kenshin", "The Hunger Games", "Taken", "Gone Girl"}
	for i, title := range want {
		if resp.Data[i].Movie.Title != title || resp.Data[i].ID != i {
			t.Fatalf("item %d: got %+v", i, resp.Data[i])
		}
	}
	if resp.Data[5].TrailerYouTubeID != "2-_-1nJf8Vg" {
		t.Fatalf("youtube id: got %q", resp.Data[5].TrailerYouTubeID)
	}
}

func TestAPI_Suggest(t *testing.T) {
	r := newTestEngine(t)

	rr := get(t, r, "/api/movies/suggest")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without keyword, got %d", rr.Code)
	}

	for i := 0; i < 2; i++ { // 第二次命中 LRU 缓存
		rr = get(t, r, "/api/movies/suggest?q=Games")
		if rr.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rr.Code)
		}
		resp := decode(t, rr)
		if len(resp.Data) != 1 || resp.Data[0].ID != 3 || resp.Data[0].DetailURL != "/movie/3" {
			t.Fatalf("unexpected suggestions %+v", resp.Data)
		}
	}

	rr = get(t, r, "/api/movies/suggest?q=zzz")
	if resp := decode(t, rr); resp.Data == nil || len(resp.Data) != 0 {
		t.Fatalf("expected empty list, got %+v", resp.Data)
	}
}

func TestAPI_SuggestKeywordLength(t *testing.T) {
	r := newTestEngine(t)

	tests := []struct {
		keyword string
		code    int
	}{
		{strings.Repeat("a", 100), http.StatusOK},
		{strings.Repeat("电", 100), http.StatusOK},
		{strings.Repeat("a", 101), http.StatusBadRequest},
		{strings.Repeat("电", 101), http.StatusBadRequest},
	}
	for _, tt := range tests {
		rr := get(t, r, "/api/movies/suggest?q="+url.QueryEscape(tt.keyword))
		if rr.Code != tt.code {
			t.Fatalf("keyword of %d runes: got %d, want %d", len([]rune(tt.keyword)), rr.Code, tt.code)
		}
	}
}

func TestAPI_History(t *testing.T) {
	r := newTestEngine(t)

	rr := get(t, r, "/api/history")
	if resp := decode(t, rr); len(resp.Data) != 0 {
		t.Fatalf("expected empty history, got %+v", resp.Data)
	}

	var cookies []*http.Cookie
	for _, path := range []string{"/movie/2", "/movie/0", "/movie/2"} {
		rr := get(t, r, path, cookies...)
		if rr.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, rr.Code)
		}
		if c := rr.Result().Cookies(); len(c) > 0 {
			cookies = c
		}
	}
	if len(cookies) == 0 {
		t.Fatalf("no session cookie set")
	}

	resp := decode(t, get(t, r, "/api/history", cookies...))
	if len(resp.Data) != 2 || resp.Data[0].ID != 2 || resp.Data[1].ID != 0 {
		t.Fatalf("expected history [2 0], got %+v", resp.Data)
	}
}

func TestAPI_HistoryKeepsTenMostRecent(t *testing.T) {
	var movies []model.Movie
	for i := 0; i < 12; i++ {
		m, err := model.NewMovie(
			fmt.Sprintf("Movie %d", i),
			"storyline",
			fmt.Sprintf("https://img.test/%d.jpg", i),
			fmt.Sprintf("https://www.youtube.com/watch?v=id%d", i),
		)
		if err != nil {
			t.Fatal(err)
		}
		movies = append(movies, m)
	}
	r := newTestEngineWith(t, movies)

	var cookies []*http.Cookie
	for i := range movies {
		rr := get(t, r, fmt.Sprintf("/movie/%d", i), cookies...)
		if rr.Code != http.StatusOK {
			t.Fatalf("/movie/%d: expected 200, got %d", i, rr.Code)
		}
		if c := rr.Result().Cookies(); len(c) > 0 {
			cookies = c
		}
	}

	resp := decode(t, get(t, r, "/api/history", cookies...))
	want := []int{11, 10, 9, 8, 7, 6, 5, 4, 3, 2}
	if len(resp.Data) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(resp.Data))
	}
	for i, id := range want {
		if resp.Data[i].ID != id {
			t.Fatalf("entry %d: got id %d, want %d", i, resp.Data[i].ID, id)
		}
	}
}

func TestAPI_MovieDetail(t *testing.T) {
	r := newTestEngine(t)

	rr := get(t, r, "/api/movies/5")
	if rr.Code != http.StatusOK {
		t.Fatalf("status: %d", rr.Code)
	}
	var body struct {
		Data model.MovieTile `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Data.Movie.Title != "Gone Girl" || body.Data.TrailerYouTubeID != "2-_-1nJf8Vg" || body.Data.DetailURL != "/movie/5" {
		t.Fatalf("unexpected tile: %+v", body.Data)
	}

	for _, path := range []string{"/api/movies/6", "/api/movies/abc"} {
		rr := get(t, r, path)
		if rr.Code != http.StatusNotFound {
			t.Fatalf("%s: status %d", path, rr.Code)
		}
		if !strings.Contains(rr.Body.String(), "电影不存在") {
			t.Fatalf("%s: body %s", path, rr.Body.String())
		}
	}
}
