package repository

import (
	"fmt"

	"github.com/user/moviecenter/internal/model"
)

// DefaultMovies 构造内置电影清单，顺序即页面展示顺序
func DefaultMovies() ([]model.Movie, error) {
	entries := [][4]string{
		{
			"Toy Story",
			"A story of a boy and his toys that come to life",
			"http://upload.wikimedia.org/wikipedia/en/1/13/Toy_Story.jpg",
			"https://www.youtube.com/watch?v=KYz2wyBy3kc",
		},
		{
			"Avatar",
			"A marine on an alien planet",
			"http://upload.wikimedia.org/wikipedia/en/b/b0/Avatar-Teaser-Poster.jpg",
			"https://www.youtube.com/watch?v=cRdxXPV9GNQ",
		},
		{
			"Rurouni Kenshin",
			"The story of a wanderer named Himura Kenshin, formerly known as the assassin Hitokiri Battosai",
			"http://upload.wikimedia.org/wikipedia/en/f/f6/Rurouni_Kenshin_%282012_film%29_poster.jpg",
			"https://www.youtube.com/watch?v=lc_JmcRxdx8",
		},
		{
			"The Hunger Games",
			"A real reality show",
			"http://upload.wikimedia.org/wikipedia/en/4/42/HungerGamesPoster.jpg",
			"https://www.youtube.com/watch?v=4S9a5V9ODuY",
		},
		{
			"Taken",
			"A former CIA operative named Bryan Mills who sets about tracking down his daughter after she is kidnapped by human traffickers for sexual slavery while travelling in France",
			"http://upload.wikimedia.org/wikipedia/en/e/ed/Taken_film_poster.jpg",
			"https://www.youtube.com/watch?v=wCbDUREBwUg",
		},
		{
			"Gone Girl",
			"A mystery about a man whose wife has gone missing and the events after",
			"http://upload.wikimedia.org/wikipedia/en/0/05/Gone_Girl_Poster.jpg",
			"https://www.youtube.com/watch?v=2-_-1nJf8Vg",
		},
	}

	movies := make([]model.Movie, 0, len(entries))
	for i, e := range entries {
		m, err := model.NewMovie(e[0], e[1], e[2], e[3])
		if err != nil {
			return nil, fmt.Errorf("内置清单第 %d 条: %w", i+1, err)
		}
		movies = append(movies, m)
	}
	return movies, nil
}
