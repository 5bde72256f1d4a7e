package model

// Game 支持的游戏标识枚举
type Game string

const (
	GameDota2            Game = "dota2"
	GameCounterStrike    Game = "counterstrike"
	GameHearthstone      Game = "hearthstone"
	GameHeroesOfTheStorm Game = "heroesofthestorm"
	GameLol              Game = "lol"
	GameOverwatch        Game = "overwatch"
	GameStarcraft2       Game = "starcraft2"
	GameAll              Game = "all" // 聚合视图：映射为空路径段，返回不过滤的混合列表
)

// TickerGames 比赛源（gosugamers）支持的完整游戏集合。
// 顺序即"all"聚合列表里按URL子串判定每行游戏时的匹配顺序，首个命中者生效。
var TickerGames = []Game{
	GameDota2,
	GameCounterStrike,
	GameHearthstone,
	GameHeroesOfTheStorm,
	GameLol,
	GameOverwatch,
	GameStarcraft2,
	GameAll,
}

// TournamentGames 赛事源（liquidpedia）支持的子集
var TournamentGames = []Game{
	GameDota2,
	GameCounterStrike,
	GameOverwatch,
}

// IsSupported 判断游戏是否在给定集合内
func IsSupported(games []Game, g Game) bool {
	for _, v := range games {
		if v == g {
			return true
		}
	}
	return false
}

// PathSegment 游戏对应的URL路径段；"all"为空段
func (g Game) PathSegment() string {
	if g == GameAll {
		return ""
	}
	return string(g)
}
