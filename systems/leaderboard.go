package systems

import (
	"github.com/automoto/playmates/components"
	"github.com/automoto/playmates/network"
	"github.com/yohamta/donburi/ecs"
)

// CreateLeaderboard attaches a client to the scene and starts the first fetch
// and health probe.
func CreateLeaderboard(e *ecs.ECS, client *network.Client) {
	entry := e.World.Entry(e.World.Create(components.Leaderboard))
	components.Leaderboard.SetValue(entry, components.LeaderboardData{Client: client})
	if client == nil {
		return
	}
	client.CheckHealth()
	client.FetchLeaderboard()
}

func leaderboardData(e *ecs.ECS) *components.LeaderboardData {
	entry, ok := components.Leaderboard.First(e.World)
	if !ok {
		return nil
	}
	return components.Leaderboard.Get(entry)
}

func leaderboardClient(e *ecs.ECS) *network.Client {
	if lb := leaderboardData(e); lb != nil {
		return lb.Client
	}
	return nil
}

// UpdateLeaderboard collects results the client delivered since last frame.
func UpdateLeaderboard(e *ecs.ECS) {
	lb := leaderboardData(e)
	if lb == nil || lb.Client == nil {
		return
	}

	if entries, ok := lb.Client.LatestLeaderboard(); ok {
		lb.Entries = entries
		lb.Loaded = true
	}

	for _, res := range lb.Client.DrainSaveResults() {
		if res.Err == nil {
			lb.Entries = res.Leaderboard
			lb.Loaded = true
		}
		finishSave(e, res.Err)
	}

	lb.State = lb.Client.State()
}
