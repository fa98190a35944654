package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData mirrors an entity's on-screen rectangle in the resolv space.
// Object.Data points back at the owning *donburi.Entry.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the singleton resolv space holding every ObjectData.
var Space = donburi.NewComponentType[resolv.Space]()
