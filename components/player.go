package components

import (
	"github.com/yohamta/donburi"

	cfg "github.com/automoto/pigem/config"
)

type PlayerData struct {
	Facing cfg.Facing
}

var Player = donburi.NewComponentType[PlayerData]()
