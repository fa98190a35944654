package components

import (
	"github.com/automoto/playmates/shared/catchnet"
	"github.com/yohamta/donburi"
)

// NetData is the player's draggable net.
type NetData struct {
	*catchnet.Controller
	Hover bool
	// Near is set when a catchable butterfly shares a space cell with the net.
	Near bool
}

var Net = donburi.NewComponentType[NetData]()
