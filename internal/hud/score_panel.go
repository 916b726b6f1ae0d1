// internal/hud/score_panel.go
package hud

import (
	"fmt"
	"strconv"

	"go-pacman/internal/config"
	"go-pacman/internal/level"
)

// ScoreFormatter превращает счёт игрока в строку панели
type ScoreFormatter func(player *level.Player) string

// LivesFormatter превращает жизни игрока в строку панели.
// Для мёртвого игрока не вызывается: панель показывает config.DiedText.
type LivesFormatter func(player *level.Player) string

var (
	// DefaultScoreFormatter — "Score: N"
	DefaultScoreFormatter ScoreFormatter = func(player *level.Player) string {
		return fmt.Sprintf("Score: %d", player.Score())
	}
	// DefaultLivesFormatter — "Lives: N"
	DefaultLivesFormatter LivesFormatter = func(player *level.Player) string {
		return fmt.Sprintf("Lives: %d", player.Lives())
	}
)

// ScorePanel — колонка на каждого игрока: заголовок, счёт и жизни.
// Состояние игроков только читает и пересчитывает подписи по Refresh.
type ScorePanel struct {
	players     []*level.Player
	titles      []string
	scoreLabels []string
	livesLabels []string
	dead        []bool

	scoreFormatter ScoreFormatter
	livesFormatter LivesFormatter
}

// NewScorePanel создаёт панель; порядок игроков задаёт порядок колонок
func NewScorePanel(players []*level.Player) *ScorePanel {
	p := &ScorePanel{
		players:        append([]*level.Player(nil), players...),
		titles:         make([]string, len(players)),
		scoreLabels:    make([]string, len(players)),
		livesLabels:    make([]string, len(players)),
		dead:           make([]bool, len(players)),
		scoreFormatter: DefaultScoreFormatter,
		livesFormatter: DefaultLivesFormatter,
	}
	for i := range players {
		p.titles[i] = "Player " + strconv.Itoa(i+1)
		p.scoreLabels[i] = "0"
		p.livesLabels[i] = strconv.Itoa(config.InitialLives)
	}
	return p
}

// Refresh пересчитывает обе подписи каждого игрока
func (p *ScorePanel) Refresh() {
	for i, player := range p.players {
		p.scoreLabels[i] = p.scoreFormatter(player)
		p.dead[i] = !player.IsAlive()
		if p.dead[i] {
			p.livesLabels[i] = config.DiedText
		} else {
			p.livesLabels[i] = p.livesFormatter(player)
		}
	}
}

// SetScoreFormatter заменяет формат счёта. nil — ошибка программиста.
func (p *ScorePanel) SetScoreFormatter(formatter ScoreFormatter) {
	if formatter == nil {
		panic("hud: nil score formatter")
	}
	p.scoreFormatter = formatter
}

// SetLivesFormatter заменяет формат жизней. nil — ошибка программиста.
func (p *ScorePanel) SetLivesFormatter(formatter LivesFormatter) {
	if formatter == nil {
		panic("hud: nil lives formatter")
	}
	p.livesFormatter = formatter
}

func (p *ScorePanel) Len() int                  { return len(p.players) }
func (p *ScorePanel) Player(i int) *level.Player { return p.players[i] }
func (p *ScorePanel) Title(i int) string         { return p.titles[i] }
func (p *ScorePanel) ScoreLabel(i int) string    { return p.scoreLabels[i] }
func (p *ScorePanel) LivesLabel(i int) string    { return p.livesLabels[i] }

// ShowsDead — по последнему Refresh игрок i был мёртв
func (p *ScorePanel) ShowsDead(i int) bool { return p.dead[i] }

// PlayerLabels — подписи одной колонки
type PlayerLabels struct {
	Title string `json:"title"`
	Score string `json:"score"`
	Lives string `json:"lives"`
	Dead  bool   `json:"dead"`
}

// Snapshot — копия последних подписей, её можно отдавать в другие горутины
type Snapshot struct {
	Players []PlayerLabels `json:"players"`
}

// Snapshot возвращает подписи на момент последнего Refresh
func (p *ScorePanel) Snapshot() Snapshot {
	s := Snapshot{Players: make([]PlayerLabels, len(p.players))}
	for i := range p.players {
		s.Players[i] = PlayerLabels{
			Title: p.titles[i],
			Score: p.scoreLabels[i],
			Lives: p.livesLabels[i],
			Dead:  p.dead[i],
		}
	}
	return s
}
