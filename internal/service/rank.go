package service

// RankForPoints возвращает косметический ранг пользователя по очкам
func RankForPoints(points int) string {
	switch {
	case points < 20:
		return "rabbit"
	case points < 50:
		return "cat"
	case points < 100:
		return "fox"
	case points < 200:
		return "lama"
	case points < 400:
		return "rhino"
	case points < 700:
		return "buffalo"
	case points < 1000:
		return "crocodile"
	default:
		return "lion"
	}
}
