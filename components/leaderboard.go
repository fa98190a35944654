package components

import (
	"github.com/automoto/playmates/network"
	"github.com/automoto/playmates/shared/messages"
	"github.com/yohamta/donburi"
)

// LeaderboardData is the singleton view of the remote leaderboard.
type LeaderboardData struct {
	Client  *network.Client
	Entries []messages.PlayerEntry
	Loaded  bool
	State   network.ConnState
}

var Leaderboard = donburi.NewComponentType[LeaderboardData]()
