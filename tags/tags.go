package tags

import "github.com/yohamta/donburi"

var (
	Butterfly = donburi.NewTag().SetName("Butterfly")
	Prey      = donburi.NewTag().SetName("Prey")
	Released  = donburi.NewTag().SetName("Released")
	Net       = donburi.NewTag().SetName("Net")
	Cage      = donburi.NewTag().SetName("Cage")
	Confetti  = donburi.NewTag().SetName("Confetti")
	Popup     = donburi.NewTag().SetName("Popup")
)

// Resolv tags for the object space
const (
	ResolvButterfly = "butterfly"
	ResolvCatchable = "catchable"
	ResolvNet       = "net"
	ResolvCage      = "cage"
)
